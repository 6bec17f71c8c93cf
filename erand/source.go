// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package erand

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"time"
)

// Source is a seeded pseudo-random stream. The same seed, with the same
// sequence of Uniform/Exp1 draws, produces bit-identical output across
// runs on the same platform and binary build; the underlying PRNG family
// and byte layout are not part of the cross-platform contract (only
// within-platform determinism is), so callers must not depend on any
// particular algorithm beyond that guarantee.
type Source struct {
	rng *rand.Rand
}

// NewSource builds a Source seeded deterministically from seed.
func NewSource(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, 0))}
}

// NewOSSource builds a Source seeded from the operating system's entropy
// pool. Two Sources built this way are vanishingly unlikely to agree, and
// are not reproducible across runs.
func NewOSSource() *Source {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		// crypto/rand failing is effectively unrecoverable on any real
		// platform; fall back to a time-derived seed rather than panic.
		return NewSource(fallbackSeed())
	}
	return NewSource(binary.LittleEndian.Uint64(buf[:]))
}

// Seed reseeds the stream in place, discarding all prior state.
func (s *Source) Seed(seed uint64) {
	s.rng = rand.New(rand.NewPCG(seed, 0))
}

// Uniform returns a pseudo-random real in [0,1).
func (s *Source) Uniform() float64 {
	return s.rng.Float64()
}

// Exp1 returns a pseudo-random real drawn from the standard exponential
// distribution Exp(1), as used for the Direct Method's waiting time.
func (s *Source) Exp1() float64 {
	return s.rng.ExpFloat64()
}

func fallbackSeed() uint64 {
	return uint64(time.Now().UnixNano())
}
