package benchmarking

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/avgstd"
	"github.com/nathanhack/hamming74/linearblock/hamming"
	"github.com/nathanhack/threadpool"
	mat2 "gonum.org/v1/gonum/mat"
)

type Stats struct {
	ChannelCodewordError avgstd.AvgStd // probability of a bit error after channel errors are fixed
	ChannelMessageError  avgstd.AvgStd // probability of a bit error after channel errors are fixed
	ChannelParityError   avgstd.AvgStd // probability of a bit error after channel errors are fixed
}

func (s Stats) String() string {
	return fmt.Sprintf("{Codeword:%0.02f(+/-%0.02f), Message:%0.02f(+/-%0.02f), Parity:%0.02f(+/-%0.02f)}",
		s.ChannelCodewordError.Mean, math.Sqrt(s.ChannelCodewordError.SampledVariance()),
		s.ChannelMessageError.Mean, math.Sqrt(s.ChannelMessageError.SampledVariance()),
		s.ChannelParityError.Mean, math.Sqrt(s.ChannelParityError.SampledVariance()),
	)
}

func (s *Stats) update(percentFixedCodewordErrors, percentFixedMessageErrors, percentFixedParityErrors float64) {
	s.ChannelCodewordError.Update(percentFixedCodewordErrors)
	s.ChannelMessageError.Update(percentFixedMessageErrors)
	s.ChannelParityError.Update(percentFixedParityErrors)
}

type Checkpoints func(updatedStats Stats)

type MessageConstructor func(trial int) (message hamming.Word)

//specific to BSC
type BinarySymmetricChannelEncoder func(message hamming.Word) (codeword hamming.Codeword)
type BinarySymmetricChannel func(codeword hamming.Codeword) (channelInducedCodeword hamming.Codeword)
type BinarySymmetricChannelCorrection func(originalCodeword, channelInducedCodeword hamming.Codeword) (fixedChannelInducedCodeword hamming.Codeword)
type BinarySymmetricChannelMetrics func(originalMessage hamming.Word, originalCodeword, fixedChannelInducedCodeword hamming.Codeword) (percentFixedCodewordErrors, percentFixedMessageErrors, percentFixedParityErrors float64)

//specific to BPSK
type BPSKChannelEncoder func(message hamming.Word) (codeword mat2.Vector)
type BPSKChannel func(codeword mat2.Vector) (channelInducedCodeword mat2.Vector)
type BPSKChannelCorrection func(originalCodeword, channelInducedCodeword mat2.Vector) (fixedChannelInducedCodeword mat2.Vector)
type BPSKChannelMetrics func(originalMessage hamming.Word, originalCodeword, fixedChannelInducedCodeword mat2.Vector) (percentFixedCodewordErrors, percentFixedMessageErrors, percentFixedParityErrors float64)

//SyndromeCorrection repairs a codeword with hamming syndrome decoding
func SyndromeCorrection(originalCodeword, channelInducedCodeword hamming.Codeword) hamming.Codeword {
	fixed, _ := hamming.Correct(channelInducedCodeword)
	return fixed
}

//Metrics measures the fraction of bits still wrong after the repair
func Metrics(originalMessage hamming.Word, originalCodeword, fixedChannelInducedCodeword hamming.Codeword) (percentFixedCodewordErrors, percentFixedMessageErrors, percentFixedParityErrors float64) {
	codewordErrors := HammingDistance(originalCodeword[:], fixedChannelInducedCodeword[:])
	message := hamming.Extract(fixedChannelInducedCodeword)
	messageErrors := HammingDistance(originalMessage[:], message[:])
	parityErrors := codewordErrors - messageErrors

	percentFixedCodewordErrors = float64(codewordErrors) / hamming.CodewordLength
	percentFixedMessageErrors = float64(messageErrors) / hamming.MessageLength
	percentFixedParityErrors = float64(parityErrors) / hamming.ParitySymbols
	return
}

func BenchmarkBSC(ctx context.Context,
	trials int, threads int,
	createMessage MessageConstructor,
	encode BinarySymmetricChannelEncoder,
	channel BinarySymmetricChannel,
	codewordRepair BinarySymmetricChannelCorrection,
	metrics BinarySymmetricChannelMetrics,
	checkpoints Checkpoints,
	showProgress bool) Stats {
	return BenchmarkBSCContinueStats(ctx, trials, threads, createMessage, encode, channel, codewordRepair, metrics, checkpoints, Stats{}, showProgress)
}

func BenchmarkBSCContinueStats(ctx context.Context,
	trials int, threads int,
	createMessage MessageConstructor,
	encode BinarySymmetricChannelEncoder,
	channel BinarySymmetricChannel,
	codewordRepair BinarySymmetricChannelCorrection,
	metrics BinarySymmetricChannelMetrics,
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) Stats {
	trial := func(i int) (float64, float64, float64) {
		//we create a random message
		message := createMessage(i)

		// encode to get our codeword
		codeword := encode(message)

		// send through the channel to get channel induced errors
		channelInducedCodeword := channel(codeword)

		// repair the codeword (if possible)
		repaired := codewordRepair(codeword, channelInducedCodeword)

		return metrics(message, codeword, repaired)
	}

	return run(ctx, trials, threads, trial, checkpoints, previousStats, showProgress)
}

func BenchmarkBPSK(ctx context.Context,
	trials int, threads int,
	createMessage MessageConstructor,
	encode BPSKChannelEncoder,
	channel BPSKChannel,
	codewordRepair BPSKChannelCorrection,
	metrics BPSKChannelMetrics,
	checkpoints Checkpoints, showProgress bool) Stats {
	return BenchmarkBPSKContinueStats(ctx, trials, threads, createMessage, encode, channel, codewordRepair, metrics, checkpoints, Stats{}, showProgress)
}

func BenchmarkBPSKContinueStats(ctx context.Context,
	trials int, threads int,
	createMessage MessageConstructor,
	encode BPSKChannelEncoder,
	channel BPSKChannel,
	codewordRepair BPSKChannelCorrection,
	metrics BPSKChannelMetrics,
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) Stats {
	trial := func(i int) (float64, float64, float64) {
		message := createMessage(i)
		codeword := encode(message)
		channelInducedCodeword := channel(codeword)
		repaired := codewordRepair(codeword, channelInducedCodeword)
		return metrics(message, codeword, repaired)
	}

	return run(ctx, trials, threads, trial, checkpoints, previousStats, showProgress)
}

// run executes the trials not already counted in previousStats on a thread pool
func run(ctx context.Context,
	trials, threads int,
	trial func(i int) (float64, float64, float64),
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) Stats {
	trialsToRun := trials - previousStats.ChannelCodewordError.Count
	if trialsToRun <= 0 {
		return previousStats
	}

	var bar *pb.ProgressBar
	if showProgress {
		bar = pb.StartNew(trialsToRun)
	}

	pool := threadpool.NewFixedSize(ctx, threads, trialsToRun)
	statsMux := sync.Mutex{}

	for i := previousStats.ChannelCodewordError.Count; i < trials; i++ {
		tmp := i
		pool.Add(func() {
			if showProgress {
				bar.Increment()
			}
			percentFixedCodewordErrors, percentFixedMessageErrors, percentFixedParityErrors := trial(tmp)

			statsMux.Lock()
			previousStats.update(percentFixedCodewordErrors, percentFixedMessageErrors, percentFixedParityErrors)
			if checkpoints != nil {
				checkpoints(previousStats) //give them the updated checkpoint
			}
			statsMux.Unlock()
		})
	}
	pool.Wait()
	if showProgress {
		bar.Finish()
	}
	return previousStats
}

//HammingDistance counts the positions where a and b differ.
// If a and b are different sizes it assumes they are
// both aligned with the zero index (the difference is at the end)
func HammingDistance(a, b []int) int {
	min := len(a)
	max := len(b)
	if min > max {
		min, max = max, min
	}

	count := 0
	for i := 0; i < min; i++ {
		if a[i] != b[i] {
			count++
		}
	}
	return max - min + count
}

//BitsToBPSK converts a [0,1] codeword to a [-1,1] vector
func BitsToBPSK(codeword hamming.Codeword) mat2.Vector {
	output := mat2.NewVecDense(len(codeword), nil)

	for i, b := range codeword {
		if b > 0 {
			output.SetVec(i, 1)
		} else {
			output.SetVec(i, -1)
		}
	}

	return output
}

//BPSKToBits converts a BPSK vector [-1,1] to a codeword.
// Values >= boundary will be considered a 1, otherwise a 0.
func BPSKToBits(a mat2.Vector, boundary float64) (codeword hamming.Codeword) {
	if a.Len() != hamming.CodewordLength {
		panic(fmt.Sprintf("vector length == %v required but found %v", hamming.CodewordLength, a.Len()))
	}

	for i := 0; i < a.Len(); i++ {
		if a.AtVec(i) >= boundary {
			codeword[i] = 1
		}
	}
	return
}

//HammingDistanceBPSK calculates number of bits different.
// Assumes >=0 is 1 and <0 is 0
// If a and b are different sizes it assumes they are
// both aligned with the zero index (the difference is at the end)
func HammingDistanceBPSK(a, b mat2.Vector) int {
	min := a.Len()
	max := b.Len()
	if min > max {
		min = b.Len()
		max = a.Len()
	}

	count := 0
	for i := 0; i < min; i++ {
		aOne := a.AtVec(i) >= 0
		bOne := b.AtVec(i) >= 0
		if aOne != bOne {
			count++
		}
	}
	return max - min + count
}
