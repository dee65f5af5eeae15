package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parse(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected Options
	}{
		{name: "No args starts the TUI", args: []string{}, expected: Options{Type: CommandTUI}},
		{name: "No UI flag", args: []string{"--no-ui"}, expected: Options{Type: CommandTUI, NoUI: true}},
		{name: "Random command", args: []string{"random"}, expected: Options{Type: CommandRandom}},
		{name: "Random alias with json", args: []string{"r", "--json"}, expected: Options{Type: CommandRandom, JSON: true}},
		{name: "Search single word", args: []string{"search", "love"}, expected: Options{Type: CommandSearch, Query: "love"}},
		{name: "Search joins words", args: []string{"s", "love", "and", "war"}, expected: Options{Type: CommandSearch, Query: "love and war"}},
		{name: "Search with json flag first", args: []string{"search", "--json", "cat"}, expected: Options{Type: CommandSearch, Query: "cat", JSON: true}},
		{name: "Init command", args: []string{"init"}, expected: Options{Type: CommandInit}},
		{name: "Init with force and dry run", args: []string{"init", "--force", "--dry-run"}, expected: Options{Type: CommandInit, Force: true, DryRun: true}},
		{name: "Version command", args: []string{"version"}, expected: Options{Type: CommandVersion}},
		{name: "Version flag", args: []string{"--version"}, expected: Options{Type: CommandVersion}},
		{name: "Version short flag", args: []string{"-v"}, expected: Options{Type: CommandVersion}},
		{name: "Help flag", args: []string{"--help"}, expected: Options{Type: CommandHelp}},
		{name: "Help command", args: []string{"help"}, expected: Options{Type: CommandHelp}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(tt.args)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, *result)
		})
	}
}

func Test_Parse_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "Search without query", args: []string{"search"}},
		{name: "Random with args", args: []string{"random", "extra"}},
		{name: "Unknown flag", args: []string{"--bogus"}},
		{name: "Unknown command", args: []string{"bogus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(tt.args)

			assert.Error(t, err)
			assert.Nil(t, result)
		})
	}
}

func Test_Options_Interactive(t *testing.T) {
	assert.True(t, (&Options{Type: CommandTUI}).Interactive())
	assert.False(t, (&Options{Type: CommandTUI, NoUI: true}).Interactive())
	assert.False(t, (&Options{Type: CommandRandom}).Interactive())
	assert.False(t, (&Options{Type: CommandSearch}).Interactive())
}
