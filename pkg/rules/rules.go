// Package rules builds hashcat-style rule scripts from a fixed set of
// password mutation flags.
package rules

import (
	"strings"
)

const (
	TokenIdentity   = ":"
	TokenCapitalize = "c"
	TokenLowercase  = "l"
	TokenReverse    = "r"
	TokenDuplicate  = "d"
	TokenToggleCase = "t"
)

// appendDigitTokens are emitted as separate directives, one per digit.
var appendDigitTokens = []string{"$1", "$2", "$3"}

// Flags selects which mutations end up in the script. Marshalled, it is
// the rule metadata: only enabled flags appear, in script order.
type Flags struct {
	Capitalize   bool `json:"capitalize,omitempty"`
	Lowercase    bool `json:"lowercase,omitempty"`
	Reverse      bool `json:"reverse,omitempty"`
	Duplicate    bool `json:"duplicate,omitempty"`
	ToggleCase   bool `json:"toggleCase,omitempty"`
	AppendDigits bool `json:"appendDigits,omitempty"`
}

// FlagsFromMap reads flags from a decoded JSON object, coercing each value
// by truthiness. Unknown keys are ignored.
func FlagsFromMap(body map[string]interface{}) Flags {
	return Flags{
		Capitalize:   Truthy(body["capitalize"]),
		Lowercase:    Truthy(body["lowercase"]),
		Reverse:      Truthy(body["reverse"]),
		Duplicate:    Truthy(body["duplicate"]),
		ToggleCase:   Truthy(body["toggleCase"]),
		AppendDigits: Truthy(body["appendDigits"]),
	}
}

// Truthy mirrors JSON truthiness: false, 0, "" and null are falsy, objects
// and arrays are always truthy.
func Truthy(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case float64:
		return val != 0
	case string:
		return val != ""
	default:
		return true
	}
}

// Script is a built rule file.
type Script struct {
	Text string
	Meta Flags
}

// Build renders the rule script for flags. The identity rule always comes
// first, followed by the enabled mutations in a fixed order.
func Build(flags Flags) Script {
	var b strings.Builder
	writeLine := func(token string) {
		b.WriteString(token)
		b.WriteByte('\n')
	}

	writeLine(TokenIdentity)
	if flags.Capitalize {
		writeLine(TokenCapitalize)
	}
	if flags.Lowercase {
		writeLine(TokenLowercase)
	}
	if flags.Reverse {
		writeLine(TokenReverse)
	}
	if flags.Duplicate {
		writeLine(TokenDuplicate)
	}
	if flags.ToggleCase {
		writeLine(TokenToggleCase)
	}
	if flags.AppendDigits {
		for _, token := range appendDigitTokens {
			writeLine(token)
		}
	}

	return Script{Text: b.String(), Meta: flags}
}

// LineCount counts newline-delimited segments once trailing whitespace is
// trimmed.
func (s Script) LineCount() int {
	trimmed := strings.TrimRight(s.Text, " \t\r\n")
	if trimmed == "" {
		return 0
	}
	return len(strings.Split(trimmed, "\n"))
}

// Lines returns the script's rule lines without terminators.
func (s Script) Lines() []string {
	trimmed := strings.TrimRight(s.Text, " \t\r\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}
