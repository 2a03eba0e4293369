package game

import (
	"encoding/binary"
	"fmt"

	"github.com/x448/float16"
)

// maxPackedScores is how many values fit in one PackedScores.
const maxPackedScores = 5

// PackedScores is a compact fixed-width encoding of up to five scores,
// stored as little-endian half-precision floats.
type PackedScores [2 * maxPackedScores]byte

// PackScores packs up to five scores into half precision, padding with
// trailing zeros. Scores outside half-precision range lose precision
// but round-trip monotonically, which is all comparisons need.
func PackScores(scores []float64) (PackedScores, error) {
	var packed PackedScores
	if len(scores) > maxPackedScores {
		return packed, fmt.Errorf("cannot pack %d scores; max is %d", len(scores), maxPackedScores)
	}
	for i, s := range scores {
		bits := float16.Fromfloat32(float32(s)).Bits()
		binary.LittleEndian.PutUint16(packed[2*i:], bits)
	}
	return packed, nil
}

// UnpackScores reverses PackScores, always returning five values.
func UnpackScores(packed PackedScores) [maxPackedScores]float64 {
	var scores [maxPackedScores]float64
	for i := range scores {
		bits := binary.LittleEndian.Uint16(packed[2*i:])
		scores[i] = float64(float16.Frombits(bits).Float32())
	}
	return scores
}
