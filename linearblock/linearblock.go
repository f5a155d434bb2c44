package linearblock

import (
	"encoding/json"
	"fmt"
	"strings"

	mat "github.com/nathanhack/sparsemat"
)

//LinearBlock contains the parity matrix H and generator matrix G of a code over GF(2).
// The code need not be systematic, DataPositions records which codeword indices carry the message.
type LinearBlock struct {
	H             mat.SparseMat // parity check matrix (ParitySymbols x CodewordLength)
	G             mat.SparseMat // generator matrix (MessageLength x CodewordLength)
	DataPositions []int         // 0-indexed codeword positions of the message bits
}

//// For JSON unmarshalling
type linearblock struct {
	H             mat.CSRMatrix
	G             mat.CSRMatrix
	DataPositions []int
}

//UnmarshalJSON is needed because LinearBlock has a mat.SparseMat and requires special handling
func (l *LinearBlock) UnmarshalJSON(bytes []byte) error {
	var lb linearblock
	err := json.Unmarshal(bytes, &lb)
	if err != nil {
		return err
	}

	l.H = &lb.H
	l.G = &lb.G
	l.DataPositions = lb.DataPositions
	return nil
}

//Encode take in a message and encodes it using the linear block, returning a codeword
func (l *LinearBlock) Encode(message mat.SparseVector) (codeword mat.SparseVector) {
	rows, cols := l.G.Dims()
	if message.Len() != rows {
		panic(fmt.Sprintf("message length == %v is required but found %v", rows, message.Len()))
	}

	codeword = mat.DOKVec(cols)
	codeword.MulMat(message, l.G)
	return codeword
}

//Decode takes in a codeword and returns the message contained in it. No correction is attempted.
func (l *LinearBlock) Decode(codeword mat.SparseVector) (message mat.SparseVector) {
	if codeword.Len() != l.CodewordLength() {
		panic(fmt.Sprintf("codeword length == %v required but found %v", l.CodewordLength(), codeword.Len()))
	}

	message = mat.CSRVec(len(l.DataPositions))
	for i, p := range l.DataPositions {
		message.Set(i, codeword.At(p))
	}
	return message
}

//Syndrome returns H*codeword, the zero vector for a valid codeword
func (l *LinearBlock) Syndrome(codeword mat.SparseVector) (syndrome mat.SparseVector) {
	syndrome = mat.CSRVec(l.ParitySymbols())
	syndrome.MatMul(l.H, codeword)
	return
}

func (l *LinearBlock) MessageLength() int {
	k, _ := l.G.Dims()
	return k
}
func (l *LinearBlock) ParitySymbols() int {
	m, _ := l.H.Dims()
	return m
}
func (l *LinearBlock) CodewordLength() int {
	_, n := l.H.Dims()
	return n
}
func (l *LinearBlock) CodeRate() float64 {
	return float64(l.MessageLength()) / float64(l.CodewordLength())
}

//Validate will test if this linearblock satisfies G*H.T=0, where G is the generator matrix and H.T is the transpose of H
func (l *LinearBlock) Validate() bool {
	return ValidateHGMatrices(l.G, l.H)
}

//ValidateHGMatrices tests if G*H.T ==0 where H.T is the transpose of H
func ValidateHGMatrices(G, H mat.SparseMat) bool {
	rows, gCols := G.Dims()
	cols, hCols := H.Dims()
	if gCols != hCols {
		return false
	}

	cache := make([]mat.SparseVector, cols)
	for i := 0; i < cols; i++ {
		cache[i] = H.Row(i)
	}
	for i := 0; i < rows; i++ {
		row := G.Row(i)
		for j := 0; j < cols; j++ {
			//equiv to G*H.T
			if row.Dot(cache[j]) > 0 {
				return false
			}
		}
	}

	return true
}

func (l *LinearBlock) String() string {
	buf := strings.Builder{}
	buf.WriteString("{\nH:\n")
	buf.WriteString(l.H.String())
	buf.WriteString(fmt.Sprintf("Data positions: %v", l.DataPositions))
	buf.WriteString("\nG:\n")
	buf.WriteString(l.G.String())
	buf.WriteString("\n}\n")
	return buf.String()
}
