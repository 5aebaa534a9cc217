package bio

import "fmt"

// AlphabetError reports a symbol which is not a member of an alphabet.
// Pos is the position of the symbol in the offending sequence, or -1
// when the symbol was checked on its own.
type AlphabetError struct {
	Symbol   Symbol
	Pos      int
	Alphabet *Alphabet
}

func (e *AlphabetError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("symbol %q is not in alphabet %s", byte(e.Symbol), e.Alphabet)
	}
	return fmt.Sprintf("symbol %q at position %d is not in alphabet %s", byte(e.Symbol), e.Pos, e.Alphabet)
}

// RangeError reports a position or a half-open range which is out of
// bounds for a sequence of the given length.
type RangeError struct {
	Start, Stop int
	Len         int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("range [%d, %d) is out of bounds for length %d", e.Start, e.Stop, e.Len)
}

// LengthMismatchError reports an operand whose length does not fit the
// operation.
type LengthMismatchError struct {
	Op   string
	Want int
	Got  int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%s: length %d does not match %d", e.Op, e.Got, e.Want)
}
