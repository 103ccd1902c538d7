// SPDX-License-Identifier: MIT
// Package: rskperm/random
//
// seeded.go — deterministic Salsa20 keystream source and math/rand adapter.
//
// The seed is written big-endian into the first 8 bytes of the 32-byte key;
// the stream is produced in blocks of seededBlockSize bytes with an
// incrementing 64-bit nonce, so two sources with the same seed emit the same
// sequence of deviates forever.

package random

import (
	"encoding/binary"
	"math/rand"

	"golang.org/x/crypto/salsa20"
)

const seededBlockSize = 4 * 1024

// SeededSource is a reproducible Source. Not safe for concurrent use.
type SeededSource struct {
	key    [32]byte
	nonce  uint64
	zeroes []byte
	buffer []byte
	offset int
}

// NewSeeded returns a SeededSource keyed by seed.
func NewSeeded(seed uint64) *SeededSource {
	s := &SeededSource{
		zeroes: make([]byte, seededBlockSize),
		buffer: make([]byte, seededBlockSize),
	}
	binary.BigEndian.PutUint64(s.key[:8], seed)
	s.fill()

	return s
}

// fill refreshes the keystream buffer with the next nonce block.
func (s *SeededSource) fill() {
	var nonce [8]byte
	binary.BigEndian.PutUint64(nonce[:], s.nonce)
	s.nonce++

	salsa20.XORKeyStream(s.buffer, s.zeroes, nonce[:], &s.key)
	s.offset = 0
}

// Float64 implements Source. It never fails.
func (s *SeededSource) Float64() (float64, error) {
	if s.offset+8 > len(s.buffer) {
		s.fill()
	}
	u := binary.BigEndian.Uint64(s.buffer[s.offset : s.offset+8])
	s.offset += 8

	return bitsToFloat(u), nil
}

// randSource adapts a caller-owned *rand.Rand.
type randSource struct {
	rng *rand.Rand
}

// FromRand adapts r into a Source. Panics on nil.
func FromRand(r *rand.Rand) Source {
	if r == nil {
		panic("random: FromRand(nil)")
	}
	return randSource{rng: r}
}

// Float64 implements Source.
func (s randSource) Float64() (float64, error) {
	return s.rng.Float64(), nil
}
