// Package pipeline orchestrates contract preparation end to end.
//
// A Pipeline ties the pieces together for one compilation: the external
// parser boundary, the tree-size ceilings, the sanitization and
// instrumentation passes, and the operational surround (structured logging,
// Prometheus metrics, the audit trail). Each compilation gets a unique job
// ID so its log lines and audit record can be correlated.
package pipeline
