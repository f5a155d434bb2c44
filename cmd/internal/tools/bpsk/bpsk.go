package bpsk

import (
	"context"
	"fmt"

	"github.com/nathanhack/hamming74/benchmarking"
	"github.com/nathanhack/hamming74/cmd/internal/tools"
	"github.com/nathanhack/hamming74/linearblock/hamming"
	"github.com/spf13/cobra"
	mat2 "gonum.org/v1/gonum/mat"
)

const typeInfo = "BPSK:hamming74/harddecision/syndrome"

var (
	Trials  uint
	EbN0    []float64
	Threads uint
)

var BpskRun = func(cmd *cobra.Command, args []string) {
	for _, e := range EbN0 {
		if e <= 0 {
			fmt.Printf("E_b/N_0 must be >0 but found %v\n", e)
			return
		}
	}

	data, err := tools.LoadOrCreateResults(args[0], typeInfo, hamming.New())
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx, cancel := tools.SignalContext()
	defer cancel()

	tools.RunSimulation(ctx, data, EbN0, int(Trials), tools.Threads(Threads), args[0], Runner)

	err = tools.SaveResults(args[0], data)
	if err != nil {
		fmt.Println(err)
	}
}

// RunBPSK sends random codewords as BPSK symbols through additive white gaussian noise,
// makes a hard decision at 0 and repairs the result with syndrome decoding.
func RunBPSK(ctx context.Context,
	ebN0 float64, trials, threads int,
	previousStats benchmarking.Stats,
	checkpoints benchmarking.Checkpoints,
	showProgress bool) benchmarking.Stats {
	createMessage := func(trial int) hamming.Word {
		return benchmarking.RandomWord()
	}

	encode := func(message hamming.Word) (codeword mat2.Vector) {
		return benchmarking.BitsToBPSK(hamming.EncodeWord(message))
	}

	channel := func(codeword mat2.Vector) (channelInducedCodeword mat2.Vector) {
		return benchmarking.RandomNoiseBPSK(codeword, ebN0)
	}

	repair := func(originalCodeword, channelInducedCodeword mat2.Vector) (codeword mat2.Vector) {
		fixed, _ := hamming.Correct(benchmarking.BPSKToBits(channelInducedCodeword, 0))
		return benchmarking.BitsToBPSK(fixed)
	}

	metrics := func(message hamming.Word, originalCodeword, fixedChannelInducedCodeword mat2.Vector) (percentFixedCodewordErrors, percentFixedMessageErrors, percentFixedParityErrors float64) {
		return benchmarking.Metrics(message, benchmarking.BPSKToBits(originalCodeword, 0), benchmarking.BPSKToBits(fixedChannelInducedCodeword, 0))
	}

	return benchmarking.BenchmarkBPSKContinueStats(ctx, trials, threads, createMessage, encode, channel, repair, metrics, checkpoints, previousStats, showProgress)
}

// Runner adapts RunBPSK for tools.RunSimulation, the parameter being E_b/N_0.
func Runner(ctx context.Context, ebN0 float64, trials, threads int, previousStats benchmarking.Stats, checkpoints benchmarking.Checkpoints) benchmarking.Stats {
	return RunBPSK(ctx, ebN0, trials, threads, previousStats, checkpoints, false)
}
