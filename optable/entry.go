// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package optable

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Entry is one case of the opcode switch.
type Entry struct {
	Opcode  string // Opcode literal, as written (0x00 - 0xFF).
	Mode    string // Addressing mode, without the _addressing suffix.
	Handler string // Instruction handler.
	Cycles  string // Cycle cost, decimal digits.
}

// ADDRESSING_SUFFIX ends every addressing mode method name.
const ADDRESSING_SUFFIX = "_addressing"

// caseRe matches a normalized case fragment.
//
// Groups: opcode, addressing mode, handler, cycle cost.
var caseRe = regexp.MustCompile(`case\s+(0[xX][0-9A-Fa-f]+)\s*:\s*this->(\w+)_addressing\(\)\s*;\s*this->(\w+)\(\)\s*;\s*cycles\s*-=\s*(\d+)\s*;`)

// armRe matches an emitted arm, with or without the _addressing suffix.
var armRe = regexp.MustCompile(`^\s*(0[xX][0-9A-Fa-f]+) => \{ self\.(\w+?)(?:_addressing)?\(\);\tself\.(\w+)\(\);\tself\.cycles_delay\+=(\d+); \},\s*$`)

// ParseEntry extracts the four fields of a single normalized case fragment.
//
// A fragment holding more than one case, or a mode whose own name ends in
// _addressing, does not have the shape of a single case.
func ParseEntry(text string) (entry Entry, err error) {
	m := caseRe.FindStringSubmatchIndex(text)
	if m == nil {
		err = ErrEntryShape
		return
	}

	if strings.Contains(text[:m[0]], CASE_KEYWORD) || strings.Contains(text[m[1]:], CASE_KEYWORD) {
		err = ErrEntryShape
		return
	}

	entry = Entry{
		Opcode:  text[m[2]:m[3]],
		Mode:    text[m[4]:m[5]],
		Handler: text[m[6]:m[7]],
		Cycles:  text[m[8]:m[9]],
	}

	if strings.HasSuffix(entry.Mode, ADDRESSING_SUFFIX) {
		entry = Entry{}
		err = ErrEntryShape
		return
	}

	return
}

// ParseArm parses an emitted arm back into an entry.
// The handler comes back in the lower case it was emitted in.
func ParseArm(line string) (entry Entry, err error) {
	m := armRe.FindStringSubmatch(line)
	if m == nil {
		err = ErrArmShape
		return
	}

	entry = Entry{
		Opcode:  m[1],
		Mode:    m[2],
		Handler: m[3],
		Cycles:  m[4],
	}

	return
}

// Value decodes the opcode literal.
func (e Entry) Value() (value uint8, err error) {
	v64, err := strconv.ParseUint(e.Opcode, 0, 64)
	if err != nil || v64 > 0xff {
		err = ErrOpcodeRange
		return
	}

	value = uint8(v64)
	return
}

// Arm formats the entry as a match arm calling the full addressing method.
func (e Entry) Arm() string {
	return e.format(e.Mode + ADDRESSING_SUFFIX)
}

// BareArm formats the entry as a match arm calling the addressing mode by
// its bare name, e.g. self.implied().
func (e Entry) BareArm() string {
	return e.format(e.Mode)
}

func (e Entry) format(mode string) string {
	return fmt.Sprintf("%v => { self.%v();\tself.%v();\tself.cycles_delay+=%v; },",
		e.Opcode, mode, strings.ToLower(e.Handler), e.Cycles)
}

// Equal reports whether two entries describe the same case.
// Handlers compare without regard to case.
func (e Entry) Equal(o Entry) bool {
	return e.Opcode == o.Opcode &&
		e.Mode == o.Mode &&
		strings.EqualFold(e.Handler, o.Handler) &&
		e.Cycles == o.Cycles
}
