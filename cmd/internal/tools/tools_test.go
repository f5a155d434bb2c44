package tools

import (
	"path/filepath"
	"testing"

	"github.com/nathanhack/hamming74/benchmarking"
	"github.com/nathanhack/hamming74/linearblock/hamming"
)

func TestLoadOrCreateResults(t *testing.T) {
	block := hamming.New()
	file := filepath.Join(t.TempDir(), "results.json")

	data, err := LoadOrCreateResults(file, "BSC:test", block)
	if err != nil {
		t.Fatalf("expected no error found :%v", err)
	}
	if len(data.Stats) != 0 {
		t.Fatalf("expected empty results but found %v", data.Stats)
	}

	var stats benchmarking.Stats
	stats.ChannelCodewordError.Update(0.25)
	data.Stats[0.05] = stats
	if err := SaveResults(file, data); err != nil {
		t.Fatalf("expected no error found :%v", err)
	}

	loaded, err := LoadOrCreateResults(file, "BSC:test", block)
	if err != nil {
		t.Fatalf("expected no error found :%v", err)
	}
	actual, has := loaded.Stats[0.05]
	if !has {
		t.Fatalf("expected results for 0.05 but found %v", loaded.Stats)
	}
	if actual.ChannelCodewordError.Count != 1 || actual.ChannelCodewordError.Mean != 0.25 {
		t.Fatalf("expected %v but found %v", stats.ChannelCodewordError, actual.ChannelCodewordError)
	}

	if _, err := LoadOrCreateResults(file, "BPSK:test", block); err == nil {
		t.Fatalf("expected an error for mismatched type info")
	}
}

func TestThreads(t *testing.T) {
	if Threads(3) != 3 {
		t.Fatalf("expected 3 but found %v", Threads(3))
	}
	if Threads(0) < 1 {
		t.Fatalf("expected at least one thread but found %v", Threads(0))
	}
}
