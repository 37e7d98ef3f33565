// Package audit records an audit trail of instrumented contracts.
//
// Every successful compilation produces a Record: the job ID, a hash of the
// contract input, the tree size, and the static gamma schedule that was
// inserted. Backends: an in-memory store for tests and one-shot CLI runs,
// and a SQLite store for deployments that need the trail to survive
// restarts. Retention prunes old records on a cron schedule.
package audit
