// Package ui is the terminal front end of a motus game.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mitchellh/colorstring"

	"github.com/powellquiring/motus/motus"
)

// ColorEnabled reports whether f is a terminal that can show colors.
func ColorEnabled(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Terminal reads answers from in and writes the game to out.
type Terminal struct {
	in     *bufio.Reader
	out    io.Writer
	color  colorstring.Colorize
	length int
}

func NewTerminal(in io.Reader, out io.Writer, color bool) *Terminal {
	return &Terminal{
		in:  bufio.NewReader(in),
		out: out,
		color: colorstring.Colorize{
			Colors:  colorstring.DefaultColors,
			Disable: !color,
		},
	}
}

// readLine prompts and returns the answer without its line ending. io.EOF is
// returned only when nothing was typed before the input closed.
func (t *Terminal) readLine(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	line, err := t.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (t *Terminal) SelectWordLength(min, max int) (int, error) {
	for {
		answer, err := t.readLine("Select a word length: ")
		if err != nil {
			return 0, err
		}
		if length, err := strconv.Atoi(answer); err == nil && length >= min && length <= max {
			return length, nil
		}
		fmt.Fprintf(t.out, "Please select a valid number in range (%d-%d)\n", min, max)
	}
}

func (t *Terminal) NoWords(length int) {
	fmt.Fprintf(t.out, "No word of length %d in the dictionary\n", length)
}

func (t *Terminal) AskReplay() (bool, error) {
	answer, err := t.readLine("Replay ? (y/N) ")
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	switch strings.ToUpper(answer) {
	case "Y", "YES":
		return true, nil
	}
	return false, nil
}

// PromptGuess returns the typed guess upper-cased and trimmed.
func (t *Terminal) PromptGuess() (string, error) {
	answer, err := t.readLine("> ")
	if err != nil {
		return "", err
	}
	return strings.ToUpper(strings.TrimSpace(answer)), nil
}

func (t *Terminal) InitRound(length int, first byte) {
	t.length = length
	fmt.Fprintln(t.out, " "+string(first)+" "+strings.Repeat(" - ", length-1))
}

// Correction shows guess letter by letter under its hint. The guess is padded
// with '-' or cut to the word length.
func (t *Terminal) Correction(guess string, hint motus.Hint) {
	adjusted := []rune(guess)
	for len(adjusted) < t.length {
		adjusted = append(adjusted, '-')
	}
	adjusted = adjusted[:t.length]

	var b strings.Builder
	for i, mark := range hint.Marks() {
		if i >= len(adjusted) {
			break
		}
		b.WriteString(t.letter(adjusted[i], mark))
	}
	fmt.Fprintln(t.out, b.String())
}

func (t *Terminal) letter(l rune, mark motus.Mark) string {
	switch mark {
	case motus.Right:
		return t.color.Color("[bold][red]") + "[" + string(l) + "]" + t.color.Color("[reset]")
	case motus.Misplaced:
		return t.color.Color("[bold][yellow]") + "(" + string(l) + ")" + t.color.Color("[reset]")
	}
	return " " + string(l) + " "
}

func (t *Terminal) RightGuess(solution string) {
	fmt.Fprintf(t.out, "Congratulations, %s was the right answer !\n", solution)
}

func (t *Terminal) Solution(solution string) {
	fmt.Fprintf(t.out, "Sorry, the right answer was: %s\n", solution)
}

func (t *Terminal) DisplayScore(wins, rounds int) {
	fmt.Fprintf(t.out, "You have %d wins over %d rounds.\n", wins, rounds)
}
