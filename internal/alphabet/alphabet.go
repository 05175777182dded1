package alphabet

import (
	"fmt"
	"strings"
)

// Symbol is a single input symbol, or the Epsilon pseudo-symbol.
type Symbol rune

const (
	Zero    Symbol = '0'
	One     Symbol = '1'
	Epsilon Symbol = 'ε'
)

// Binary is the input alphabet in ascending order. Epsilon is not part of it.
var Binary = []Symbol{Zero, One}

// Size is the number of input symbols.
const Size = 2

// String returns the symbol as it is written in definitions.
func (s Symbol) String() string {
	if s == Epsilon {
		return "ε"
	}
	return string(rune(s))
}

// IsInput reports whether s is a member of the input alphabet.
func (s Symbol) IsInput() bool {
	return s == Zero || s == One
}

// Index returns the position of an input symbol in Binary, or -1.
func (s Symbol) Index() int {
	switch s {
	case Zero:
		return 0
	case One:
		return 1
	}
	return -1
}

// UnknownSymbolError is returned when a definition names a symbol outside
// the alphabet.
type UnknownSymbolError struct {
	Text string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown symbol %q: must be \"0\", \"1\" or \"eps\"", e.Text)
}

// Parse converts the textual form used in definitions into a Symbol.
// Both "eps" and "ε" name the epsilon pseudo-symbol.
func Parse(text string) (Symbol, error) {
	switch strings.TrimSpace(text) {
	case "0":
		return Zero, nil
	case "1":
		return One, nil
	case "eps", "ε", "epsilon":
		return Epsilon, nil
	}
	return 0, &UnknownSymbolError{Text: text}
}
