package optable

import (
	"iter"
	"strings"
)

const (
	CASE_KEYWORD    = "case"  // Introduces a switch case.
	CASE_TERMINATOR = "break" // Ends a switch case.
)

// Fragment is one case of an input, split on the case terminator.
type Fragment struct {
	Name  string // Name of the input.
	Index int    // 1-based ordinal among the retained fragments.
	Text  string // Fragment text, line breaks replaced by spaces.
}

// Fragments splits a switch body into case fragments.
//
// Pieces without a case keyword (blank tails, trailing braces) are dropped.
func Fragments(name string, text string) iter.Seq[Fragment] {
	return func(yield func(Fragment) bool) {
		index := 0
		for _, piece := range strings.Split(text, CASE_TERMINATOR) {
			if !strings.Contains(piece, CASE_KEYWORD) {
				continue
			}
			piece = strings.ReplaceAll(piece, "\r\n", " ")
			piece = strings.ReplaceAll(piece, "\n", " ")

			index++
			if !yield(Fragment{Name: name, Index: index, Text: piece}) {
				return
			}
		}
	}
}
