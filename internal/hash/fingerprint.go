// Package hash provides xxHash64-based content fingerprints for numeric
// sequences.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Sequences computes the xxHash64 fingerprint of one or more float64
// sequences. The digest covers the IEEE-754 bit pattern of each value in
// order, with every sequence length-prefixed so that ([1], [2]) and
// ([1, 2], []) produce different fingerprints.
func Sequences(seqs ...[]float64) uint64 {
	var (
		d   xxhash.Digest
		buf [8]byte
	)
	d.Reset()

	for _, seq := range seqs {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(seq)))
		_, _ = d.Write(buf[:])
		for _, v := range seq {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = d.Write(buf[:])
		}
	}

	return d.Sum64()
}
