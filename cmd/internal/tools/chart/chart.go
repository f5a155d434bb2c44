package chart

import (
	"fmt"
	"io"
	"os"

	"github.com/nathanhack/hamming74/cmd/internal/tools"
	"github.com/spf13/cobra"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var OutputFile string

var ChartRun = func(cmd *cobra.Command, args []string) {
	// loop through all the results files and collect data needed for displaying
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

	err = Render(f, args, stats)
	if err != nil {
		fmt.Println(err)
	}
}

// Render draws the remaining codeword error of each results file as one line.
func Render(out io.Writer, names []string, stats []*tools.SimulationStats) error {
	xvalues := tools.Parameters(stats)
	xnames := make([]string, len(xvalues))
	for i, x := range xvalues {
		xnames[i] = fmt.Sprint(x)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Results",
			Subtitle: "Hamming(7,4) Error Rates",
			Left:     "20%",
		}),
		charts.WithLegendOpts(opts.Legend{Show: true,
			Orient: "vertical",
			Right:  "0",
			Top:    "top",
			Type:   "scroll",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Channel Parameter",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Remaining Error",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	line.SetXAxis(xnames)
	for i, s := range stats {
		line.AddSeries(names[i], series(s, xvalues))
	}

	return line.Render(out)
}

func series(stat *tools.SimulationStats, values []float64) []opts.LineData {
	results := make([]opts.LineData, len(values))
	null := opts.LineData{Value: nil}
	for i, v := range values {
		x, has := stat.Stats[v]
		if !has {
			results[i] = null
			continue
		}

		results[i] = opts.LineData{
			Value: x.ChannelCodewordError.Mean,
		}
	}
	return results
}
