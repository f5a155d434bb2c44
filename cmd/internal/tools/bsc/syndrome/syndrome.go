package syndrome

import (
	"fmt"

	"github.com/nathanhack/hamming74/cmd/internal/tools"
	"github.com/nathanhack/hamming74/cmd/internal/tools/bsc"
	"github.com/nathanhack/hamming74/linearblock/hamming"
	"github.com/spf13/cobra"
)

const typeInfo = "BSC:hamming74/syndrome"

var (
	Trials           uint
	ErrorProbability []float64
	Threads          uint
)

var SyndromeRun = func(cmd *cobra.Command, args []string) {
	for _, p := range ErrorProbability {
		if p < 0 || p > 1 {
			fmt.Printf("crossover probability must be in [0, 1] but found %v\n", p)
			return
		}
	}

	//next we see if the RESULT_JSON exists if so we load it and validate we're running it against the right thing
	data, err := tools.LoadOrCreateResults(args[0], typeInfo, hamming.New())
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx, cancel := tools.SignalContext()
	defer cancel()

	tools.RunSimulation(ctx, data, ErrorProbability, int(Trials), tools.Threads(Threads), args[0], bsc.Runner)

	err = tools.SaveResults(args[0], data)
	if err != nil {
		fmt.Println(err)
	}
}
