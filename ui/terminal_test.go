package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powellquiring/motus/motus"
)

func terminal(input string) (*Terminal, *bytes.Buffer) {
	var out bytes.Buffer
	return NewTerminal(strings.NewReader(input), &out, false), &out
}

func TestSelectWordLength(t *testing.T) {
	tests := []struct {
		min, max int
		input    string
		want     int
	}{
		{7, 12, "8\n", 8},
		{1, 6, "5\n", 5},
		{7, 12, "99\nw\n!\n \n9\n", 9},
		{7, 12, "99\nw\n!\n \n10\n11\n", 10},
	}
	for _, tt := range tests {
		term, out := terminal(tt.input)
		got, err := term.SelectWordLength(tt.min, tt.max)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		if strings.HasPrefix(tt.input, "99") {
			assert.Equal(t, 4, strings.Count(out.String(), "Please select a valid number in range (7-12)"))
		}
	}

	term, _ := terminal("w\n")
	_, err := term.SelectWordLength(5, 12)
	assert.ErrorIs(t, err, io.EOF)
}

func TestPromptGuess(t *testing.T) {
	tests := map[string]string{
		"bateau\n":    "BATEAU",
		" Avion\n":    "AVION",
		"MANGER  \n":  "MANGER",
		"BANG BANG\n": "BANG BANG",
		"!\n":         "!",
		"\n":          "",
		"sans fin":    "SANS FIN",
	}
	for input, want := range tests {
		term, out := terminal(input)
		got, err := term.PromptGuess()
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
		assert.Equal(t, "> ", out.String())
	}
}

func TestAskReplay(t *testing.T) {
	tests := map[string]bool{
		"yes": true, "Yes": true, "yeS": true, "YES": true, "y": true, "Y": true,
		"n": false, "N": false, "no": false, "NO": false,
		"": false, "$": false, "maybe": false,
	}
	for input, want := range tests {
		term, _ := terminal(input + "\n")
		got, err := term.AskReplay()
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	term, _ := terminal("")
	got, err := term.AskReplay()
	require.NoError(t, err)
	assert.False(t, got)
}

func TestInitRound(t *testing.T) {
	term, out := terminal("")
	term.InitRound(6, 'B')
	assert.Equal(t, 6, term.length)
	assert.Equal(t, " B  -  -  -  -  - \n", out.String())
}

func TestCorrection(t *testing.T) {
	tests := []struct {
		guess string
		hint  motus.Hint
		want  string
	}{
		{"BOUNTY", "RWWMWW", "[B] O  U (N) T  Y \n"},
		{"BAN", "WWWWWW", " B  A  N  -  -  - \n"},
		{"BANANAS", "WWWWWW", " B  A  N  A  N  A \n"},
		{"BANANA", "RRRRRR", "[B][A][N][A][N][A]\n"},
	}
	for _, tt := range tests {
		term, out := terminal("")
		term.InitRound(6, 'B')
		out.Reset()
		term.Correction(tt.guess, tt.hint)
		assert.Equal(t, tt.want, out.String(), tt.guess)
	}
}

func TestCorrectionAccents(t *testing.T) {
	term, out := terminal("")
	term.InitRound(5, 'E')
	out.Reset()
	term.Correction("ÉTÉ", "WWWWW")
	assert.Equal(t, " É  T  É  -  - \n", out.String())

	term.InitRound(3, 'E')
	out.Reset()
	term.Correction("ÉLÈVE", "RMW")
	assert.Equal(t, "[É](L) È \n", out.String())
}

func TestCorrectionColors(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader(""), &out, true)
	term.InitRound(5, 'A')
	out.Reset()
	term.Correction("APRES", "RMWWM")
	assert.Contains(t, out.String(), "\033[1m\033[31m[A]\033[0m")
	assert.Contains(t, out.String(), "\033[1m\033[33m(P)\033[0m")
	assert.Contains(t, out.String(), " R ")
}

func TestMessages(t *testing.T) {
	term, out := terminal("")
	term.RightGuess("ASPIC")
	term.Solution("ASPIC")
	term.DisplayScore(1, 2)
	term.NoWords(11)
	assert.Equal(t, "Congratulations, ASPIC was the right answer !\n"+
		"Sorry, the right answer was: ASPIC\n"+
		"You have 1 wins over 2 rounds.\n"+
		"No word of length 11 in the dictionary\n", out.String())
}
