package hamming

import (
	"github.com/nathanhack/hamming74/linearblock"
	mat "github.com/nathanhack/sparsemat"
)

// New creates the matrix form of the hamming(7,4) code, using the same
// non-systematic bit layout as EncodeWord.
func New() *linearblock.LinearBlock {
	H := mat.CSRMat(ParitySymbols, CodewordLength)

	//To make Hamming codes we make the columns the bit versions
	// of every position from 1 to and including 7 (note they're nonzero)
	for p := 1; p <= CodewordLength; p++ {
		vec := mat.CSRVec(ParitySymbols)
		for k := 0; k < ParitySymbols; k++ {
			if p&(1<<k) > 0 {
				vec.Set(k, 1)
			}
		}
		H.SetColumn(p-1, vec)
	}

	// each row of G is the codeword of a unit message
	values := make([]int, 0, MessageLength*CodewordLength)
	for i := 0; i < MessageLength; i++ {
		var unit Word
		unit[i] = 1
		codeword := EncodeWord(unit)
		values = append(values, codeword[:]...)
	}
	G := mat.CSRMat(MessageLength, CodewordLength, values...)

	positions := make([]int, MessageLength)
	for i, p := range dataPositions {
		positions[i] = p - 1
	}

	return &linearblock.LinearBlock{
		H:             H,
		G:             G,
		DataPositions: positions,
	}
}

// ToVector converts a codeword into a sparse vector.
func (c Codeword) ToVector() mat.SparseVector {
	return mat.CSRVec(CodewordLength, c[:]...)
}

// ToVector converts a message into a sparse vector.
func (w Word) ToVector() mat.SparseVector {
	return mat.CSRVec(MessageLength, w[:]...)
}

// SyndromeValue reads a syndrome vector as a little-endian number,
// bit k being the check of parity position 2^k.
func SyndromeValue(syndrome mat.SparseVector) (value int) {
	for k := 0; k < syndrome.Len(); k++ {
		if syndrome.At(k) == 1 {
			value |= 1 << k
		}
	}
	return
}
