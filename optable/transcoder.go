// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package optable

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"log"
	"strings"
)

// Transcoder converts case fragments into match arms.
type Transcoder struct {
	Verbose  bool      // If set, logs every fragment and arm.
	Bare     bool      // If set, emits self.MODE() instead of self.MODE_addressing().
	Check    bool      // If set, parses every arm back and validates the opcode.
	Rewriter *Rewriter // Optional rewrite script applied before formatting.
}

// Entry extracts, and optionally rewrites, the entry of a fragment.
func (tc *Transcoder) Entry(frag Fragment) (entry Entry, err error) {
	defer func() {
		if err != nil {
			err = &ErrFragment{Name: frag.Name, Index: frag.Index, Text: strings.TrimSpace(frag.Text), Err: err}
		}
	}()

	entry, err = ParseEntry(frag.Text)
	if err != nil {
		return
	}

	if tc.Rewriter != nil {
		entry, err = tc.Rewriter.Apply(entry)
		if err != nil {
			return
		}
	}

	return
}

// Arm formats an entry according to the transcoder settings.
func (tc *Transcoder) Arm(entry Entry) (arm string, err error) {
	if tc.Bare {
		arm = entry.BareArm()
	} else {
		arm = entry.Arm()
	}

	if !tc.Check {
		return
	}

	_, err = entry.Value()
	if err != nil {
		return
	}

	back, err := ParseArm(arm)
	if err != nil {
		return
	}
	if !back.Equal(entry) {
		err = ErrArmMismatch
		return
	}

	return
}

// Transcode writes one arm per fragment, in fragment order.
//
// Transcoding stops at the first fragment that fails; arms already written
// are left in place, and nothing is written for the failing fragment.
func (tc *Transcoder) Transcode(w io.Writer, frags iter.Seq[Fragment]) (count int, err error) {
	for frag := range frags {
		if tc.Verbose {
			log.Printf("%v:%v: %v", frag.Name, frag.Index, strings.TrimSpace(frag.Text))
		}

		var entry Entry
		entry, err = tc.Entry(frag)
		if err != nil {
			return
		}

		var arm string
		arm, err = tc.Arm(entry)
		if err != nil {
			err = &ErrFragment{Name: frag.Name, Index: frag.Index, Text: strings.TrimSpace(frag.Text), Err: err}
			return
		}

		if tc.Verbose {
			log.Printf("%v:%v: => %v", frag.Name, frag.Index, arm)
		}

		_, err = fmt.Fprintln(w, arm)
		if err != nil {
			return
		}
		count++
	}

	return
}

// TranscodeString transcodes a switch body into its arms.
// On failure, the arms preceding the failing case are returned with the error.
func TranscodeString(text string) (lines []string, err error) {
	tc := &Transcoder{}
	out := &bytes.Buffer{}

	_, err = tc.Transcode(out, Fragments("text", text))

	for line := range strings.Lines(out.String()) {
		lines = append(lines, strings.TrimSuffix(line, "\n"))
	}

	return
}

// MustTranscodeString is TranscodeString, but panics on a malformed case.
func MustTranscodeString(text string) []string {
	lines, err := TranscodeString(text)
	if err != nil {
		panic(err)
	}

	return lines
}
