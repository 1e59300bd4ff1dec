// Package motus is the word-constraint engine of the game: scoring a guess
// against a solution and narrowing the words still consistent with the hints.
//
// Words are upper case A-Z only; cleaning happens in package dic before a
// word reaches the engine.
package motus

const alphabetSize = 26

// Evaluate scores guess against solution and reports whether they match.
//
// A guess whose length or first letter differs from the solution is all
// Wrong, without looking at the other letters. The hint then has the
// solution's length.
//
// Otherwise exact positions are resolved before misplaced ones, so a letter
// present k times in the solution is never credited more than k times.
func Evaluate(solution, guess string) (bool, Hint) {
	n := len(solution)
	if len(guess) != n || (n > 0 && guess[0] != solution[0]) {
		return false, repeat(Wrong, n)
	}
	if guess == solution {
		return true, repeat(Right, n)
	}

	marks := make([]byte, n)
	remaining := [alphabetSize]int{}
	for i := 0; i < n; i++ {
		if l, ok := letterIndex(solution[i]); ok {
			remaining[l]++
		}
	}

	// exact positions first
	for i := 0; i < n; i++ {
		if guess[i] == solution[i] {
			marks[i] = byte(Right)
			if l, ok := letterIndex(guess[i]); ok {
				remaining[l]--
			}
		}
	}

	// then misplaced letters, while the solution still has unused copies
	for i := 0; i < n; i++ {
		if marks[i] == byte(Right) {
			continue
		}
		if l, ok := letterIndex(guess[i]); ok && remaining[l] > 0 {
			marks[i] = byte(Misplaced)
			remaining[l]--
		} else {
			marks[i] = byte(Wrong)
		}
	}
	return false, Hint(marks)
}

func letterIndex(b byte) (int, bool) {
	if b < 'A' || b > 'Z' {
		return 0, false
	}
	return int(b - 'A'), true
}
