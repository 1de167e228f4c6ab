// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"errors"
	"flag"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/tebeka/atexit"

	"github.com/ezrec/optrans/internal"
	"github.com/ezrec/optrans/optable"
	"github.com/ezrec/optrans/translate"
)

// inputList collects repeated -i flags.
type inputList []string

func (il *inputList) String() string {
	return strings.Join(*il, ",")
}

func (il *inputList) Set(value string) error {
	*il = append(*il, value)
	return nil
}

// readInput reads a switch body from a file, or stdin for "-".
func readInput(name string) (text string, err error) {
	var data []byte
	if name == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return
	}

	text = string(data)
	return
}

// writeArms transcodes through a buffer. Arms written before a failing
// case still reach w; a failed flush is reported when transcoding succeeded.
func writeArms(tc *optable.Transcoder, w io.Writer, frags iter.Seq[optable.Fragment]) (err error) {
	buffered := bufio.NewWriter(w)

	_, err = tc.Transcode(buffered, frags)

	flushErr := buffered.Flush()
	if err == nil {
		err = flushErr
	}

	return
}

func main() {
	var inputs inputList
	var output string
	var rewrite string
	var bare bool
	var check bool
	var verbose bool
	var lang string

	flag.Var(&inputs, "i", "switch body to transcode, '-' for stdin (repeatable; default is the built-in 6502 table)")
	flag.StringVar(&output, "o", "-", "Arm output")
	flag.StringVar(&rewrite, "r", "", "starlark rewrite script")
	flag.BoolVar(&bare, "b", false, "Call addressing modes by bare name")
	flag.BoolVar(&check, "check", false, "Parse every arm back and validate opcodes")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&lang, "lang", "", "Message language (BCP 47) for errors, default from the environment")

	flag.Parse()

	inputs = append(inputs, flag.Args()...)

	if len(lang) != 0 {
		translate.Use(lang)
	}

	tc := &optable.Transcoder{
		Verbose: verbose,
		Bare:    bare,
		Check:   check,
	}

	if len(rewrite) != 0 {
		src, err := os.ReadFile(rewrite)
		if err != nil {
			atexit.Fatalf("%v: %v", rewrite, err)
		}
		tc.Rewriter, err = optable.NewRewriter(rewrite, string(src))
		if err != nil {
			atexit.Fatalf("%v: %v", rewrite, err)
		}
	}

	var frags []iter.Seq[optable.Fragment]
	if len(inputs) == 0 {
		frags = append(frags, optable.Fragments(optable.TABLE_6502_NAME, optable.Table6502))
	}
	for _, name := range inputs {
		text, err := readInput(name)
		if err != nil {
			atexit.Fatalf("%v: %v", name, err)
		}
		frags = append(frags, optable.Fragments(name, text))
	}

	var ouf io.Writer = os.Stdout
	var file *os.File
	if output != "-" {
		var err error
		file, err = os.Create(output)
		if err != nil {
			atexit.Fatalf("%v: %v", output, err)
		}
		ouf = file
	}

	// Closes the output on a failed run.
	atexit.Register(func() {
		if file != nil {
			file.Close()
		}
	})

	err := writeArms(tc, ouf, internal.Concat(frags...))
	var ef *optable.ErrFragment
	if errors.As(err, &ef) {
		atexit.Fatal(err)
	}
	if err != nil {
		atexit.Fatalf("%v: %v", output, err)
	}

	if file != nil {
		err = file.Close()
		file = nil
		if err != nil {
			atexit.Fatalf("%v: %v", output, err)
		}
	}

	atexit.Exit(0)
}
