package cmd

import (
	"github.com/nathanhack/hamming74/cmd/internal/tools/bpsk"
	"github.com/nathanhack/hamming74/cmd/internal/tools/bsc/syndrome"
	"github.com/nathanhack/hamming74/cmd/internal/tools/chart"
	"github.com/nathanhack/hamming74/cmd/internal/tools/csv"

	"github.com/spf13/cobra"
)

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:     "tools",
	Aliases: []string{"t"},
	Short:   "Tools for the Hamming(7,4) code",
	Long:    `Tools for the Hamming(7,4) code`,
}

// toolsChansimCmd represents the chansim command
var toolsChansimCmd = &cobra.Command{
	Use:     "chansim",
	Aliases: []string{"cs", "c"},
	Short:   "Channel simulators",
	Long:    `Channel simulators for the Hamming(7,4) code using hard decisions`,
}

// toolsBscCmd represents the bsc command
var toolsBscCmd = &cobra.Command{
	Use:   "bsc RESULT_JSON",
	Short: "A binary symmetric channel simulator",
	Long:  `A binary symmetric channel simulator, codewords are repaired with syndrome decoding`,
	Args:  cobra.ExactArgs(1),
	Run:   syndrome.SyndromeRun,
}

// toolsBpskCmd represents the bpsk command
var toolsBpskCmd = &cobra.Command{
	Use:   "bpsk RESULT_JSON",
	Short: "A BPSK over AWGN channel simulator",
	Long:  `A BPSK over AWGN channel simulator using a hard decision before syndrome decoding`,
	Args:  cobra.ExactArgs(1),
	Run:   bpsk.BpskRun,
}

// toolsResultsCmd represents the results command
var toolsResultsCmd = &cobra.Command{
	Use:     "results",
	Aliases: []string{"r"},
	Short:   "A tool to organize results for graphing and comparison",
	Long:    `A tool to organize results for graphing and comparison`,
}

// toolsCSVCmd represents the csv command
var toolsCSVCmd = &cobra.Command{
	Use:     "csv RESULTS_JSON [RESULTS_JSON] ...",
	Aliases: []string{"c"},
	Short:   "Export to a CSV file",
	Long:    `Export to a CSV file`,
	Args:    cobra.MinimumNArgs(1),
	Run:     csv.CSVRun,
}

// toolsChartCmd represents the chart command
var toolsChartCmd = &cobra.Command{
	Use:     "chart RESULTS_JSON [RESULTS_JSON] ...",
	Aliases: []string{"ch"},
	Short:   "Export to an HTML chart",
	Long:    `Export the remaining codeword error of each results file to an HTML line chart`,
	Args:    cobra.MinimumNArgs(1),
	Run:     chart.ChartRun,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	toolsCmd.AddCommand(toolsChansimCmd)
	toolsCmd.AddCommand(toolsResultsCmd)

	toolsChansimCmd.AddCommand(toolsBscCmd)
	toolsBscCmd.Flags().UintVarP(&syndrome.Trials, "trials", "t", 1_000_000, "the number of trials per step")
	toolsBscCmd.Flags().Float64SliceVarP(&syndrome.ErrorProbability, "probability", "p", []float64{0.01, 0.05, 0.10, 0.15, 0.20, 0.25, 0.30, 0.35, 0.40, 0.45, 0.50}, "probability of crossover errors to test [0, 0.5]")
	toolsBscCmd.Flags().UintVar(&syndrome.Threads, "threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")

	toolsChansimCmd.AddCommand(toolsBpskCmd)
	toolsBpskCmd.Flags().UintVarP(&bpsk.Trials, "trials", "t", 1_000_000, "the number of trials per step")
	toolsBpskCmd.Flags().Float64SliceVarP(&bpsk.EbN0, "ebn0", "e", []float64{0.5, 1, 2, 4, 8, 16}, "E_b/N_0 ratios to test (>0)")
	toolsBpskCmd.Flags().UintVar(&bpsk.Threads, "threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")

	toolsResultsCmd.AddCommand(toolsCSVCmd)
	toolsCSVCmd.Flags().StringVarP(&csv.OutputFile, "output", "o", "results.csv", "filename of the combined csv")
	toolsCSVCmd.Flags().BoolVarP(&csv.MessageError, "message", "m", false, "outputs the MessageError instead of CodewordError or ParityError")
	toolsCSVCmd.Flags().BoolVarP(&csv.ParityError, "parity", "p", false, "outputs the ParityError instead of CodewordError or MessageError")

	toolsResultsCmd.AddCommand(toolsChartCmd)
	toolsChartCmd.Flags().StringVarP(&chart.OutputFile, "output", "o", "results.html", "filename of the chart")
}
