// Package instrument rewrites contract trees so every costed computation is
// preceded by a synthetic metering call.
//
// For each statement s in an ordered body, the pass emits the pair
// [Host.chargeGamma(cost(s)), s], recursing depth-first into nested bodies.
// Declaration headers (MethodDefinition, ClassDeclaration) are appended
// without a preceding charge: their nested bodies are already instrumented
// and no computation happens at the header itself. The VM's chargeGamma
// primitive deducts the amount from the running budget and faults on
// underflow, so instrumented code cannot execute without paying.
//
// The pass is not idempotent - running it on its own output doubles every
// charge. Run it exactly once, after sanitization (the synthesized calls are
// rooted at the host namespace and must never be renamed).
package instrument
