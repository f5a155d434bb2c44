package code

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nathanhack/hamming74/linearblock/hamming"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var JSON bool

var EncodeRun = func(cmd *cobra.Command, args []string) error {
	bits, err := ParseBits(args)
	if err != nil {
		return err
	}

	codeword, err := hamming.Encode(bits)
	if err != nil {
		return fmt.Errorf("unable to encode %v: %w", FormatBits(bits), err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), FormatBits(codeword))
	return nil
}

var DecodeRun = func(cmd *cobra.Command, args []string) error {
	bits, err := ParseBits(args)
	if err != nil {
		return err
	}

	message, err := hamming.Decode(bits)
	if err != nil {
		return fmt.Errorf("unable to decode %v: %w", FormatBits(bits), err)
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		var codeword hamming.Codeword
		copy(codeword[:], bits)
		if _, position := hamming.Correct(codeword); position != 0 {
			logrus.Debugf("corrected bit at position %v", position)
		} else {
			logrus.Debugf("no error detected")
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), FormatBits(message))
	return nil
}

var MatricesRun = func(cmd *cobra.Command, args []string) error {
	block := hamming.New()
	if !block.Validate() {
		return fmt.Errorf("generator and parity matrices do not satisfy G*H.T=0")
	}

	if !JSON {
		fmt.Fprint(cmd.OutOrStdout(), block.String())
		return nil
	}

	bs, err := json.Marshal(block)
	if err != nil {
		return fmt.Errorf("unable to serialize the matrices: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(bs))
	return nil
}

// ParseBits reads bits written as "1010", "1,0,1,0" or as separate arguments.
// Digits other than 0 and 1 are kept so validation can report them.
func ParseBits(args []string) ([]int, error) {
	fields := strings.FieldsFunc(strings.Join(args, " "), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("no bits given")
	}

	bits := make([]int, 0, len(args))
	for _, f := range fields {
		for _, r := range f {
			if r < '0' || r > '9' {
				return nil, fmt.Errorf("unable to parse %q: expected digits", f)
			}
			bits = append(bits, int(r-'0'))
		}
	}
	return bits, nil
}

// FormatBits writes bits as a string of digits.
func FormatBits(bits []int) string {
	buf := strings.Builder{}
	for _, b := range bits {
		buf.WriteString(fmt.Sprint(b))
	}
	return buf.String()
}
