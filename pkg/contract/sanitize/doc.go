// Package sanitize renames user-supplied identifiers in contract code so the
// contract cannot shadow or overwrite runtime-reserved names (for example,
// zeroing its own gas counter).
//
// The pass is pure and shape-preserving: it consumes one tree, produces an
// independent one, and only ever changes Identifier names. Identifiers in
// the exclusion set (contract lifecycle and intrinsic names) and member
// expressions rooted at the host namespace are left untouched so host API
// calls remain resolvable afterwards.
//
// Sanitization must run before instrumentation, and exactly once: the
// instrumentation pass inserts host-namespace metering calls that must never
// be renamed, and re-sanitizing doubles the prefix.
package sanitize
