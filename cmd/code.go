package cmd

import (
	"github.com/nathanhack/hamming74/cmd/internal/code"

	"github.com/spf13/cobra"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:     "encode BITS",
	Aliases: []string{"e", "enc"},
	Short:   "Encodes a 4 bit message",
	Long:    `Encodes a 4 bit message into a 7 bit Hamming codeword. BITS may be written as 1010, 1,0,1,0 or 1 0 1 0.`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    code.EncodeRun,
}

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:     "decode BITS",
	Aliases: []string{"d", "dec"},
	Short:   "Decodes a 7 bit codeword",
	Long:    `Decodes a 7 bit Hamming codeword into its 4 bit message, correcting up to one flipped bit.`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    code.DecodeRun,
}

// matricesCmd represents the matrices command
var matricesCmd = &cobra.Command{
	Use:     "matrices",
	Aliases: []string{"m"},
	Short:   "Prints the parity and generator matrices",
	Long:    `Prints the parity check matrix H and generator matrix G of the Hamming(7,4) code.`,
	Args:    cobra.NoArgs,
	RunE:    code.MatricesRun,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)

	rootCmd.AddCommand(matricesCmd)
	matricesCmd.Flags().BoolVarP(&code.JSON, "json", "j", false, "output the matrices as JSON")
}
