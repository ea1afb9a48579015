// Package governance binds each governance audit domain to the shared
// chain engine.
//
// The four domains — observation evidence, human-decision audit,
// intent-binding audit, and execution evidence linking — historically each
// carried their own copy of the hash-chain logic. Here every domain is a
// chain.Profile (prefix, known record types, field layout) plus typed draft
// constructors; the chaining, validation, and replay machinery lives once
// in pkg/chain and pkg/replay.
package governance
