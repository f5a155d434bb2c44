package benchmarking

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"strconv"
	"testing"

	"github.com/nathanhack/hamming74/linearblock/hamming"
	mat2 "gonum.org/v1/gonum/mat"
)

func trialMessage(trial int) hamming.Word {
	t := trial % 16
	var message hamming.Word
	for i := 0; i < hamming.MessageLength; i++ {
		message[i] = (t & (1 << i)) >> i
	}
	return message
}

func ExampleBenchmarkBSC() {
	channel := func(originalCodeword hamming.Codeword) (erroredCodeword hamming.Codeword) {
		//since hamming can fix only one bit wrong we'll just flip one bit per codeword
		return RandomFlipBitCount(originalCodeword, 1)
	}

	checkpoint := func(updatedStats Stats) {}

	stats := BenchmarkBSC(context.Background(), 1000, 4, trialMessage, hamming.EncodeWord, channel, SyndromeCorrection, Metrics, checkpoint, false)

	fmt.Println("Bit Error Probability :", stats)
	//Output:
	// Bit Error Probability : {Codeword:0.00(+/-0.00), Message:0.00(+/-0.00), Parity:0.00(+/-0.00)}
}

func ExampleBenchmarkBPSK() {
	threads := runtime.NumCPU()

	encode := func(message hamming.Word) (codeword mat2.Vector) {
		return BitsToBPSK(hamming.EncodeWord(message))
	}

	channel := func(codeword mat2.Vector) (channelInducedCodeword mat2.Vector) {
		//noise this small never moves a symbol across the boundary
		return RandomNoiseBPSK(codeword, 10_000)
	}

	repair := func(originalCodeword, channelInducedCodeword mat2.Vector) (codeword mat2.Vector) {
		//hard decision of >=0 is 1 and <0 is 0
		fixed, _ := hamming.Correct(BPSKToBits(channelInducedCodeword, 0))
		return BitsToBPSK(fixed)
	}

	metrics := func(message hamming.Word, originalCodeword, fixedChannelInducedCodeword mat2.Vector) (percentFixedCodewordErrors, percentFixedMessageErrors, percentFixedParityErrors float64) {
		return Metrics(message, BPSKToBits(originalCodeword, 0), BPSKToBits(fixedChannelInducedCodeword, 0))
	}

	stats := BenchmarkBPSK(context.Background(), 10_000, threads, trialMessage, encode, channel, repair, metrics, nil, false)

	fmt.Println("Bit Error Probability :", stats)
	//Output:
	// Bit Error Probability : {Codeword:0.00(+/-0.00), Message:0.00(+/-0.00), Parity:0.00(+/-0.00)}
}

func TestBenchmarkBSCContinueStats(t *testing.T) {
	channel := func(originalCodeword hamming.Codeword) hamming.Codeword {
		return RandomFlipBitCount(originalCodeword, 1)
	}

	checkpoints := 0
	checkpoint := func(updatedStats Stats) { checkpoints++ }

	stats := BenchmarkBSC(context.Background(), 100, 2, trialMessage, hamming.EncodeWord, channel, SyndromeCorrection, Metrics, checkpoint, false)
	if stats.ChannelCodewordError.Count != 100 {
		t.Fatalf("expected 100 trials but found %v", stats.ChannelCodewordError.Count)
	}

	stats = BenchmarkBSCContinueStats(context.Background(), 150, 2, trialMessage, hamming.EncodeWord, channel, SyndromeCorrection, Metrics, checkpoint, stats, false)
	if stats.ChannelCodewordError.Count != 150 {
		t.Fatalf("expected 150 trials but found %v", stats.ChannelCodewordError.Count)
	}
	if checkpoints != 150 {
		t.Fatalf("expected 150 checkpoints but found %v", checkpoints)
	}

	// nothing left to run
	again := BenchmarkBSCContinueStats(context.Background(), 150, 2, trialMessage, hamming.EncodeWord, channel, SyndromeCorrection, Metrics, checkpoint, stats, false)
	if again.ChannelCodewordError.Count != 150 || checkpoints != 150 {
		t.Fatalf("expected no new trials but found %v", again.ChannelCodewordError.Count)
	}
}

func TestBenchmarkBSC_TwoBitErrors(t *testing.T) {
	channel := func(originalCodeword hamming.Codeword) hamming.Codeword {
		return RandomFlipBitCount(originalCodeword, 2)
	}

	stats := BenchmarkBSC(context.Background(), 200, 2, trialMessage, hamming.EncodeWord, channel, SyndromeCorrection, Metrics, nil, false)

	// two errors are always miscorrected into three
	if math.Abs(stats.ChannelCodewordError.Mean-3.0/7.0) > 1e-9 {
		t.Fatalf("expected codeword error 3/7 but found %v", stats.ChannelCodewordError.Mean)
	}
}

func TestRandomFlipBitCount(t *testing.T) {
	tests := []struct {
		flips    int
		expected int
	}{
		{0, 0},
		{1, 1},
		{3, 3},
		{7, 7},
		{10, 7},
	}
	original := hamming.EncodeWord(hamming.Word{1, 0, 1, 1})
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual := RandomFlipBitCount(original, test.flips)
			d := HammingDistance(original[:], actual[:])
			if d != test.expected {
				t.Fatalf("expected %v flipped bits but found %v", test.expected, d)
			}
		})
	}
}

func TestRandomFlipBSC(t *testing.T) {
	original := hamming.EncodeWord(hamming.Word{0, 1, 1, 0})

	if actual := RandomFlipBSC(original, 0); actual != original {
		t.Fatalf("expected %v but found %v", original, actual)
	}

	actual := RandomFlipBSC(original, 1)
	if d := HammingDistance(original[:], actual[:]); d != hamming.CodewordLength {
		t.Fatalf("expected every bit flipped but found %v", d)
	}
}

func TestBPSKRoundTrip(t *testing.T) {
	codeword := hamming.EncodeWord(hamming.Word{1, 1, 0, 1})
	actual := BPSKToBits(BitsToBPSK(codeword), 0)
	if actual != codeword {
		t.Fatalf("expected %v but found %v", codeword, actual)
	}
	if d := HammingDistanceBPSK(BitsToBPSK(codeword), BitsToBPSK(actual)); d != 0 {
		t.Fatalf("expected no difference but found %v", d)
	}
}

func TestHammingDistance(t *testing.T) {
	tests := []struct {
		a, b     []int
		expected int
	}{
		{[]int{0, 1, 1}, []int{0, 1, 1}, 0},
		{[]int{0, 1, 1}, []int{1, 1, 0}, 2},
		{[]int{0, 1}, []int{0, 1, 1, 1}, 2},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if actual := HammingDistance(test.a, test.b); actual != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
		})
	}
}
