// Package random provides the uniform deviate sources used by every sampler
// in rskperm.
//
// A Source yields float64 values uniformly distributed in [0,1). Three
// implementations are offered:
//
//   - Crypto / NewCrypto: backed by a cryptographically strong reader
//     (crypto/rand.Reader by default). This is the default for all samplers.
//   - NewSeeded: a deterministic Salsa20 keystream keyed by a 64-bit seed,
//     for reproducible tests, golden files and CLI runs.
//   - FromRand: an adapter over a caller-owned *math/rand.Rand.
//
// RandInt maps a Source onto an inclusive integer range using
// floor(r·(hi−lo+1)) + lo.
//
// Guarantees:
//
//   - A strong source never degrades to a weaker generator: a failed or short
//     read returns ErrEntropyUnavailable.
//   - Sources carry no state beyond their entropy stream; Crypto is safe for
//     concurrent use, NewSeeded and FromRand are not.
package random
