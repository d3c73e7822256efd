package rules_test

import (
	"encoding/json"
	"testing"

	"hashlab/pkg/rules"

	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name          string
		flags         rules.Flags
		expectedText  string
		expectedLines int
		expectedMeta  string
	}{
		{
			name:          "No flags - identity only",
			flags:         rules.Flags{},
			expectedText:  ":\n",
			expectedLines: 1,
			expectedMeta:  `{}`,
		},
		{
			name:          "Capitalize, reverse and append digits",
			flags:         rules.Flags{Capitalize: true, Reverse: true, AppendDigits: true},
			expectedText:  ":\nc\nr\n$1\n$2\n$3\n",
			expectedLines: 6,
			expectedMeta:  `{"capitalize":true,"reverse":true,"appendDigits":true}`,
		},
		{
			name: "All flags keep fixed order",
			flags: rules.Flags{
				Capitalize: true, Lowercase: true, Reverse: true,
				Duplicate: true, ToggleCase: true, AppendDigits: true,
			},
			expectedText:  ":\nc\nl\nr\nd\nt\n$1\n$2\n$3\n",
			expectedLines: 9,
			expectedMeta:  `{"capitalize":true,"lowercase":true,"reverse":true,"duplicate":true,"toggleCase":true,"appendDigits":true}`,
		},
		{
			name:          "Toggle case only",
			flags:         rules.Flags{ToggleCase: true},
			expectedText:  ":\nt\n",
			expectedLines: 2,
			expectedMeta:  `{"toggleCase":true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script := rules.Build(tt.flags)

			assert.Equal(t, tt.expectedText, script.Text)
			assert.Equal(t, tt.expectedLines, script.LineCount())
			assert.Len(t, script.Lines(), tt.expectedLines)

			meta, err := json.Marshal(script.Meta)
			assert.NoError(t, err)
			assert.JSONEq(t, tt.expectedMeta, string(meta))
		})
	}
}

func TestMetaKeepsScriptOrder(t *testing.T) {
	meta, err := json.Marshal(rules.Flags{AppendDigits: true, Capitalize: true})
	assert.NoError(t, err)
	assert.Equal(t, `{"capitalize":true,"appendDigits":true}`, string(meta))
}

func TestFlagsFromMap(t *testing.T) {
	var body map[string]interface{}
	raw := `{"capitalize":"yes","lowercase":0,"reverse":1,"duplicate":null,"toggleCase":[],"appendDigits":false,"unknown":true}`
	assert.NoError(t, json.Unmarshal([]byte(raw), &body))

	flags := rules.FlagsFromMap(body)

	assert.Equal(t, rules.Flags{Capitalize: true, Reverse: true, ToggleCase: true}, flags)
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		value    interface{}
		expected bool
	}{
		{nil, false},
		{false, false},
		{true, true},
		{float64(0), false},
		{float64(-2), true},
		{"", false},
		{"false", true},
		{map[string]interface{}{}, true},
		{[]interface{}{}, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, rules.Truthy(tt.value), "value %#v", tt.value)
	}
}

func TestLineCountIgnoresTrailingWhitespace(t *testing.T) {
	script := rules.Script{Text: ":\nc\n\n  \n"}
	assert.Equal(t, 2, script.LineCount())
	assert.Equal(t, 0, rules.Script{}.LineCount())
}
