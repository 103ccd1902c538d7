// SPDX-License-Identifier: MIT
// Package: rskperm/random
//
// crypto.go — Source backed by a cryptographically strong reader.

package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// CryptoSource draws deviates from a strong entropy reader, 8 bytes per draw.
type CryptoSource struct {
	reader io.Reader
}

// Crypto returns a CryptoSource over crypto/rand.Reader.
func Crypto() *CryptoSource {
	return &CryptoSource{reader: crand.Reader}
}

// NewCrypto wraps an explicit strong reader. Panics on nil: a missing entropy
// source is a programmer error and must fail fast.
func NewCrypto(r io.Reader) *CryptoSource {
	if r == nil {
		panic("random: NewCrypto(nil)")
	}
	return &CryptoSource{reader: r}
}

// Float64 implements Source.
// Complexity: O(1), one 8-byte read.
func (s *CryptoSource) Float64() (float64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(s.reader, buf[:]); err != nil {
		return 0, fmt.Errorf("CryptoSource.Float64: %v: %w", err, ErrEntropyUnavailable)
	}

	return bitsToFloat(binary.BigEndian.Uint64(buf[:])), nil
}
