package csv

import (
	"bytes"
	"testing"

	"github.com/nathanhack/hamming74/benchmarking"
	"github.com/nathanhack/hamming74/cmd/internal/tools"
)

func stat(codeword, message float64) benchmarking.Stats {
	var s benchmarking.Stats
	s.ChannelCodewordError.Update(codeword)
	s.ChannelMessageError.Update(message)
	return s
}

func TestWrite(t *testing.T) {
	stats := []*tools.SimulationStats{
		{Stats: map[float64]benchmarking.Stats{0.1: stat(0.5, 0.25), 0.01: stat(0, 0)}},
		{Stats: map[float64]benchmarking.Stats{0.2: stat(1, 1)}},
	}

	buf := &bytes.Buffer{}
	if err := Write(buf, []string{"a.json", "dir/b.json"}, stats); err != nil {
		t.Fatalf("expected no error found :%v", err)
	}

	expected := "Results File,0.01,0.1,0.2\na,0,0.5,\ndir/b,,,1\n"
	if buf.String() != expected {
		t.Fatalf("expected %q but found %q", expected, buf.String())
	}
}

func TestWriteMessageError(t *testing.T) {
	MessageError = true
	defer func() { MessageError = false }()

	stats := []*tools.SimulationStats{
		{Stats: map[float64]benchmarking.Stats{0.1: stat(0.5, 0.25)}},
	}

	buf := &bytes.Buffer{}
	if err := Write(buf, []string{"a.json"}, stats); err != nil {
		t.Fatalf("expected no error found :%v", err)
	}

	expected := "Results File,0.1\na,0.25\n"
	if buf.String() != expected {
		t.Fatalf("expected %q but found %q", expected, buf.String())
	}
}
