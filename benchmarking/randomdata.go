package benchmarking

import (
	"math"
	"math/rand"

	"github.com/nathanhack/hamming74/linearblock/hamming"
	mat2 "gonum.org/v1/gonum/mat"
)

// RandomWord creates a random 4 bit message.
func RandomWord() (message hamming.Word) {
	for i := range message {
		message[i] = rand.Intn(2)
	}
	return
}

// RandomFlipBitCount randomly flips min(numberOfBitsToFlip,7) distinct bits.
func RandomFlipBitCount(input hamming.Codeword, numberOfBitsToFlip int) hamming.Codeword {
	output := input

	flip := make(map[int]bool)
	for len(flip) < numberOfBitsToFlip && len(flip) < len(input) {
		flip[rand.Intn(len(input))] = true
	}

	for i := range flip {
		output[i] ^= 1
	}
	return output
}

// RandomFlipBSC flips each bit independently with probability crossoverProbability.
func RandomFlipBSC(input hamming.Codeword, crossoverProbability float64) hamming.Codeword {
	output := input
	for i := range output {
		if rand.Float64() < crossoverProbability {
			output[i] ^= 1
		}
	}
	return output
}

// RandomNoiseBPSK creates a randomizes version of the bpsk vector using the E_b/N_0 passed in
func RandomNoiseBPSK(bpsk mat2.Vector, E_bPerN_0 float64) mat2.Vector {
	//using  σ^2 = N_0/2 and E_b=1
	// we get  σ = sqrt(1/(2*E_bPerN_0))
	σ := math.Sqrt(1 / (2 * E_bPerN_0))
	result := mat2.NewVecDense(bpsk.Len(), nil)
	for i := 0; i < bpsk.Len(); i++ {
		result.SetVec(i, rand.NormFloat64()*σ)
	}
	result.AddVec(result, bpsk)
	return result
}
