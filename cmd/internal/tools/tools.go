package tools

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/nathanhack/hamming74/benchmarking"
	"github.com/nathanhack/hamming74/linearblock"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// SimulationStats holds the results of one channel simulation, keyed by the channel parameter
// (crossover probability or E_b/N_0).
type SimulationStats struct {
	TypeInfo string
	ECCInfo  string
	Stats    map[float64]benchmarking.Stats
}
type simulationStats struct {
	TypeInfo string
	ECCInfo  string
	Stats    map[string]benchmarking.Stats
}

func (s *SimulationStats) MarshalJSON() ([]byte, error) {
	ss := simulationStats{
		TypeInfo: s.TypeInfo,
		ECCInfo:  s.ECCInfo,
		Stats:    map[string]benchmarking.Stats{},
	}

	for f, stat := range s.Stats {
		ss.Stats[fmt.Sprintf("%v", f)] = stat
	}

	return json.Marshal(ss)
}

func (s *SimulationStats) UnmarshalJSON(bytes []byte) error {
	var ss simulationStats

	err := json.Unmarshal(bytes, &ss)
	if err != nil {
		return err
	}

	s.TypeInfo = ss.TypeInfo
	s.ECCInfo = ss.ECCInfo
	s.Stats = map[float64]benchmarking.Stats{}

	for fs, stat := range ss.Stats {
		f, err := strconv.ParseFloat(fs, 64)
		if err != nil {
			return err
		}
		s.Stats[f] = stat
	}
	return nil
}

// Md5Sum identifies the code a result was produced with.
func Md5Sum(l *linearblock.LinearBlock) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(l.H.String()+l.G.String())))
}

// LoadOrCreateResults loads the results at filepath, creating empty results when the file
// does not exist yet. Results produced by another simulator or code are rejected.
func LoadOrCreateResults(filepath, typeInfo string, l *linearblock.LinearBlock) (*SimulationStats, error) {
	data, err := LoadResults(filepath)
	if err != nil {
		return nil, err
	}

	//if data is nil then we create it
	if data == nil {
		logrus.Debugf("creating new results for %v", filepath)
		data = &SimulationStats{
			TypeInfo: typeInfo,
			ECCInfo:  Md5Sum(l),
			Stats:    make(map[float64]benchmarking.Stats),
		}
	}

	//in either case lets validate it
	if data.TypeInfo != typeInfo {
		return nil, fmt.Errorf("results loaded do not match the same type expected %v but found %v", typeInfo, data.TypeInfo)
	}
	if data.ECCInfo != Md5Sum(l) {
		return nil, fmt.Errorf("results loaded do not match the ECC")
	}
	if data.Stats == nil {
		data.Stats = make(map[float64]benchmarking.Stats)
	}
	return data, nil
}

func LoadResults(filepath string) (*SimulationStats, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return nil, nil
	}

	bs, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %w", filepath, err)
	}

	var stat SimulationStats
	err = json.Unmarshal(bs, &stat)
	if err != nil {
		return nil, fmt.Errorf("error while unmarshalling file %v: %w", filepath, err)
	}
	return &stat, nil
}

func SaveResults(filepath string, data *SimulationStats) error {
	bs, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error serializing results: %w", err)
	}

	err = os.WriteFile(filepath, bs, 0644)
	if err != nil {
		return fmt.Errorf("error while saving results to %v: %w", filepath, err)
	}
	return nil
}

// Threads returns the number of threads to use, 0 meaning one per CPU.
func Threads(threads uint) int {
	if threads == 0 {
		return runtime.NumCPU()
	}
	return int(threads)
}

// LoadAllResults loads every results file, all of them must exist.
func LoadAllResults(filepaths []string) ([]*SimulationStats, error) {
	stats := make([]*SimulationStats, len(filepaths))
	for i, resultFile := range filepaths {
		s, err := LoadResults(resultFile)
		if err != nil {
			return nil, err
		}
		if s == nil {
			return nil, fmt.Errorf("results file %v does not exist", resultFile)
		}
		stats[i] = s
	}
	return stats, nil
}

// Parameters returns the sorted union of the channel parameters found in stats.
func Parameters(stats []*SimulationStats) []float64 {
	set := make(map[float64]bool)
	for _, s := range stats {
		for p := range s.Stats {
			set[p] = true
		}
	}

	parameters := maps.Keys(set)
	slices.Sort(parameters)
	return parameters
}
