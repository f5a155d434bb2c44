package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nathanhack/hamming74/cmd/internal/tools"
	"github.com/spf13/cobra"
)

var OutputFile string
var MessageError bool
var ParityError bool

var CSVRun = func(cmd *cobra.Command, args []string) {
	stats, err := tools.LoadAllResults(args)
	if err != nil {
		fmt.Println(err)
		return
	}

	f, err := os.Create(OutputFile)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()

	err = Write(f, args, stats)
	if err != nil {
		fmt.Println(err)
	}
}

// Write writes one row per results file, one column per channel parameter.
func Write(out io.Writer, names []string, stats []*tools.SimulationStats) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	//first write headers
	parameters := tools.Parameters(stats)
	header := []string{"Results File"}
	for _, p := range parameters {
		header = append(header, fmt.Sprintf("%v", p))
	}

	err := w.Write(header)
	if err != nil {
		return err
	}

	for i, s := range stats {
		record := make([]string, len(header))
		record[0] = strings.TrimSuffix(names[i], filepath.Ext(names[i]))

		for j, p := range parameters {
			v, has := s.Stats[p]
			if has {
				switch {
				case MessageError:
					record[j+1] = fmt.Sprintf("%v", v.ChannelMessageError.Mean)
				case ParityError:
					record[j+1] = fmt.Sprintf("%v", v.ChannelParityError.Mean)
				default:
					record[j+1] = fmt.Sprintf("%v", v.ChannelCodewordError.Mean)
				}
			}
		}

		err = w.Write(record)
		if err != nil {
			return err
		}
	}
	return nil
}
