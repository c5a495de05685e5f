// Package deconstruct synthesizes Deconstruct extension methods for the types of a program.
//
// # Architecture
//
// A pass runs in five stages over an immutable decl.Program:
//  1. Scanner (scanner.go) shortlists candidate types from syntax alone
//  2. Resolver (resolver.go) computes the ordered accessible-property list, own before inherited
//  3. Conflict detector (conflict.go) drops types that already declare an equivalent Deconstruct
//  4. Sanitizer (naming.go) assigns collision-free parameter names
//  5. Emitter (emitter.go) renders one block per unit; blocks are joined into a single artifact
//
// Stages 2-5 run per candidate in parallel and are memoized across passes by
// the incremental cache (cache.go).
//
// # Design Decisions
//
//   - Deterministic output: blocks appear in host discovery order and every
//     tie-break (own-before-inherited, numeric suffixes) is fixed, so unchanged
//     input yields byte-identical text.
//   - Skips are silent: a type with no accessible properties or with a matching
//     hand-written Deconstruct produces no unit and no diagnostic.
//   - The conflict rule mirrors the host compiler's signature identity
//     (arity + out modifiers), never the return or parameter types.
package deconstruct
