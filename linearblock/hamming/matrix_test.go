package hamming

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/nathanhack/hamming74/linearblock"
)

func TestNew(t *testing.T) {
	actual := New()

	if !actual.Validate() {
		t.Fatalf("expected valid linearblock code")
	}
	if actual.MessageLength() != MessageLength {
		t.Fatalf("expected message length %v but found %v", MessageLength, actual.MessageLength())
	}
	if actual.CodewordLength() != CodewordLength {
		t.Fatalf("expected codeword length %v but found %v", CodewordLength, actual.CodewordLength())
	}
	if actual.ParitySymbols() != ParitySymbols {
		t.Fatalf("expected %v parity symbols but found %v", ParitySymbols, actual.ParitySymbols())
	}
}

func TestMatrixEncodeMatchesEncodeWord(t *testing.T) {
	block := New()
	for i, w := range allWords() {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			expected := EncodeWord(w).ToVector()
			actual := block.Encode(w.ToVector())
			if !actual.Equals(expected) {
				t.Fatalf("expected %v but found %v", expected, actual)
			}

			message := block.Decode(actual)
			if !message.Equals(w.ToVector()) {
				t.Fatalf("expected %v but found %v", w.ToVector(), message)
			}
		})
	}
}

func TestMatrixSyndromeMatchesSyndrome(t *testing.T) {
	block := New()
	for i, w := range allWords() {
		codeword := EncodeWord(w)
		if !block.Syndrome(codeword.ToVector()).IsZero() {
			t.Fatalf("expected zero syndrome for %v", codeword)
		}
		for p := 1; p <= CodewordLength; p++ {
			t.Run(strconv.Itoa(i*CodewordLength+p), func(t *testing.T) {
				flipped := codeword
				flipped[p-1] ^= 1

				actual := SyndromeValue(block.Syndrome(flipped.ToVector()))
				if actual != Syndrome(flipped) {
					t.Fatalf("expected %v but found %v", Syndrome(flipped), actual)
				}
			})
		}
	}
}

func TestLinearBlockJSON(t *testing.T) {
	block := New()
	bs, err := json.Marshal(block)
	if err != nil {
		t.Fatalf("expected no error found :%v", err)
	}

	var actual linearblock.LinearBlock
	if err := json.Unmarshal(bs, &actual); err != nil {
		t.Fatalf("expected no error found :%v", err)
	}
	if !actual.H.Equals(block.H) || !actual.G.Equals(block.G) {
		t.Fatalf("expected %v but found %v", block, &actual)
	}
	if !actual.Validate() {
		t.Fatalf("expected valid linearblock code")
	}
}
