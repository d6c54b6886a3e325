package session

import (
	"fmt"
	"strings"
)

// Console selects the interactive backend. The zero value leaves the choice
// to the library, which prefers IPython when it is importable.
type Console string

const (
	ConsoleUnset   Console = ""
	ConsoleIPython Console = "ipython"
	ConsolePython  Console = "python"
)

// Pretty selects the pretty-printing mode.
type Pretty string

const (
	PrettyUnset   Pretty = ""
	PrettyUnicode Pretty = "unicode"
	PrettyASCII   Pretty = "ascii"
	PrettyNo      Pretty = "no"
)

// GroundTypes selects the numeric implementation used by the library.
type GroundTypes string

const (
	GroundTypesUnset  GroundTypes = ""
	GroundTypesGMPY   GroundTypes = "gmpy"
	GroundTypesPython GroundTypes = "python"
	GroundTypesSymPy  GroundTypes = "sympy"
)

// Order selects the monomial ordering used when printing polynomials.
type Order string

const (
	OrderUnset      Order = ""
	OrderLex        Order = "lex"
	OrderGrlex      Order = "grlex"
	OrderGrevlex    Order = "grevlex"
	OrderRevLex     Order = "rev-lex"
	OrderRevGrlex   Order = "rev-grlex"
	OrderRevGrevlex Order = "rev-grevlex"
	OrderOld        Order = "old"
)

var (
	ConsoleChoices     = []string{string(ConsoleIPython), string(ConsolePython)}
	PrettyChoices      = []string{string(PrettyUnicode), string(PrettyASCII), string(PrettyNo)}
	GroundTypesChoices = []string{string(GroundTypesGMPY), string(GroundTypesPython), string(GroundTypesSymPy)}
	OrderChoices       = []string{
		string(OrderLex),
		string(OrderGrlex),
		string(OrderGrevlex),
		string(OrderRevLex),
		string(OrderRevGrlex),
		string(OrderRevGrevlex),
		string(OrderOld),
	}
)

// ChoiceError reports a value outside a flag's closed choice set.
type ChoiceError struct {
	Option  string
	Value   string
	Choices []string
}

func (e *ChoiceError) Error() string {
	quoted := make([]string, len(e.Choices))
	for i, c := range e.Choices {
		quoted[i] = fmt.Sprintf("%q", c)
	}
	return fmt.Sprintf("invalid %s %q (choose from %s)", e.Option, e.Value, strings.Join(quoted, ", "))
}

// CheckChoice returns a *ChoiceError unless value is one of choices. The
// empty string is accepted as "unset".
func CheckChoice(option, value string, choices []string) error {
	if value == "" {
		return nil
	}
	for _, c := range choices {
		if value == c {
			return nil
		}
	}
	return &ChoiceError{Option: option, Value: value, Choices: choices}
}

// Options holds launcher flags as parsed from the command line, before
// translation into a Config.
type Options struct {
	Console     string
	Pretty      string
	GroundTypes string
	Order       string
	Quiet       bool
	Doctest     bool
	NoCache     bool
	Debug       bool
	Args        []string
}
