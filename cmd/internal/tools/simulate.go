package tools

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/hamming74/benchmarking"
	"github.com/sirupsen/logrus"
)

// Runner continues previousStats for one channel parameter until trials have been run.
type Runner func(ctx context.Context, parameter float64, trials, threads int, previousStats benchmarking.Stats, checkpoints benchmarking.Checkpoints) benchmarking.Stats

// SignalContext returns a context cancelled on SIGINT or SIGTERM.
func SignalContext() (context.Context, context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		select {
		case sig := <-sigs:
			fmt.Println()
			fmt.Println(sig)
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigs)
	}()
	return ctx, cancel
}

// RunSimulation interleaves the parameters, growing each one's trials in steps so that
// an interrupted run still has results for all of them. data is saved as it progresses.
func RunSimulation(ctx context.Context, data *SimulationStats, parameters []float64, trials, threads int, outputFilename string, run Runner) {
	checkpointMux := sync.Mutex{}
	checkpointCount := 0

	trialsPerIter := threads * 10
	bar := pb.StartNew(trials * len(parameters))
	for _, p := range parameters {
		bar.Add(min(data.Stats[p].ChannelCodewordError.Count, trials))
	}

trialLoops:
	for t := trialsPerIter; ; t += trialsPerIter {
		select {
		case <-ctx.Done():
			break trialLoops
		default:
		}

		for _, p := range parameters {
			p := p
			checkpoint := func(stats benchmarking.Stats) {
				//we want to save the checkpoint
				checkpointMux.Lock()
				defer checkpointMux.Unlock()

				data.Stats[p] = stats

				if checkpointCount%trialsPerIter == 0 {
					err := SaveResults(outputFilename, data)
					if err != nil {
						fmt.Println(err)
					}
				}
				checkpointCount++
			}

			before := data.Stats[p].ChannelCodewordError.Count
			stats := run(ctx, p, min(t, trials), threads, data.Stats[p], checkpoint)

			checkpointMux.Lock()
			data.Stats[p] = stats
			checkpointMux.Unlock()

			if added := stats.ChannelCodewordError.Count - before; added > 0 {
				bar.Add(added)
			}
		}

		if t >= trials {
			break
		}
	}
	bar.Finish()

	for _, p := range parameters {
		logrus.Debugf("%v: %v", p, data.Stats[p])
	}
}
