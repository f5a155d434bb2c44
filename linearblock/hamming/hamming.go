package hamming

const (
	MessageLength  = 4
	CodewordLength = 7
	ParitySymbols  = 3
)

// Word is a 4 bit message, index 0 being the first bit given by the caller.
type Word [MessageLength]int

// Codeword is a 7 bit block. Index i holds the classical hamming position i+1.
type Codeword [CodewordLength]int

var (
	// parityPositions are the 1-indexed codeword positions of the parity bits (powers of two)
	parityPositions = [ParitySymbols]int{1, 2, 4}
	// dataPositions are the remaining positions, filled in order with the message bits
	dataPositions = [MessageLength]int{3, 5, 6, 7}
	// coverage[k] are the positions checked by the parity bit at 2^k,
	// these are the positions with bit k set
	coverage = [ParitySymbols][4]int{
		{1, 3, 5, 7},
		{2, 3, 6, 7},
		{4, 5, 6, 7},
	}
)

// ParityPositions returns the 1-indexed codeword positions holding parity bits.
func ParityPositions() [ParitySymbols]int { return parityPositions }

// DataPositions returns the 1-indexed codeword positions holding message bits.
func DataPositions() [MessageLength]int { return dataPositions }

// Coverage returns the positions checked by the k'th parity bit (position 2^k).
func Coverage(k int) [4]int { return coverage[k] }

// EncodeWord adds the three parity bits to message.
func EncodeWord(message Word) (codeword Codeword) {
	var parity [ParitySymbols]int
	for i, bit := range message {
		if bit&1 == 0 {
			continue
		}
		// every parity bit covering this position toggles
		pos := dataPositions[i]
		for k := 0; k < ParitySymbols; k++ {
			if pos&(1<<k) != 0 {
				parity[k] ^= 1
			}
		}
	}

	for k, pos := range parityPositions {
		codeword[pos-1] = parity[k]
	}
	for i, pos := range dataPositions {
		codeword[pos-1] = message[i] & 1
	}
	return
}

// Syndrome XORs together the positions of all set bits. Zero means
// no error was detected, otherwise it is the position of the flipped bit
// assuming only one bit was flipped.
func Syndrome(codeword Codeword) (syndrome int) {
	for i, bit := range codeword {
		if bit&1 == 1 {
			syndrome ^= i + 1
		}
	}
	return
}

// Correct flips the bit named by the syndrome. It returns the repaired
// codeword and the 1-indexed position that was flipped, or 0 if none was.
// Two or more flipped bits are miscorrected, hamming(7,4) cannot detect them.
func Correct(codeword Codeword) (Codeword, int) {
	position := Syndrome(codeword)
	if position != 0 {
		codeword[position-1] ^= 1
	}
	return codeword, position
}

// Extract returns the message bits of codeword without any correction.
func Extract(codeword Codeword) (message Word) {
	for i, pos := range dataPositions {
		message[i] = codeword[pos-1]
	}
	return
}

// DecodeWord corrects up to one bit error in codeword and returns its message.
func DecodeWord(codeword Codeword) Word {
	fixed, _ := Correct(codeword)
	return Extract(fixed)
}

// Encode validates input as a list of 4 bits and returns the 7 bit codeword.
// input may be any slice or array of numbers or bools, or a sparsemat vector.
func Encode(input interface{}) ([]int, error) {
	bits, err := binaryList(input)
	if err != nil {
		return nil, err
	}
	if len(bits) != MessageLength {
		return nil, ErrNotFourBits
	}

	var message Word
	copy(message[:], bits)
	codeword := EncodeWord(message)
	return codeword[:], nil
}

// Decode validates input as a list of 7 bits, corrects up to one bit error
// and returns the 4 message bits.
func Decode(input interface{}) ([]int, error) {
	bits, err := binaryList(input)
	if err != nil {
		return nil, err
	}
	if len(bits) != CodewordLength {
		return nil, ErrNotSevenDigits
	}

	var codeword Codeword
	copy(codeword[:], bits)
	message := DecodeWord(codeword)
	return message[:], nil
}
