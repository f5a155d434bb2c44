package bsc

import (
	"context"

	"github.com/nathanhack/hamming74/benchmarking"
	"github.com/nathanhack/hamming74/linearblock/hamming"
)

func RunBSC(ctx context.Context,
	crossoverProbability float64, trials, threads int,
	previousStats benchmarking.Stats,
	checkpoints benchmarking.Checkpoints,
	showProgress bool) benchmarking.Stats {
	createMessage := func(trial int) hamming.Word {
		return benchmarking.RandomWord()
	}

	channel := func(originalCodeword hamming.Codeword) (erroredCodeword hamming.Codeword) {
		return benchmarking.RandomFlipBSC(originalCodeword, crossoverProbability)
	}

	return benchmarking.BenchmarkBSCContinueStats(ctx, trials, threads, createMessage, hamming.EncodeWord, channel, benchmarking.SyndromeCorrection, benchmarking.Metrics, checkpoints, previousStats, showProgress)
}

// Runner adapts RunBSC for tools.RunSimulation, the parameter being the crossover probability.
func Runner(ctx context.Context, crossoverProbability float64, trials, threads int, previousStats benchmarking.Stats, checkpoints benchmarking.Checkpoints) benchmarking.Stats {
	return RunBSC(ctx, crossoverProbability, trials, threads, previousStats, checkpoints, false)
}
