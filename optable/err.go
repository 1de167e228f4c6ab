package optable

import (
	"github.com/ezrec/optrans/translate"
)

var f = translate.From

// ErrMessage is an en-US message, translated when the error is reported.
type ErrMessage string

func (em ErrMessage) Error() string {
	return f(string(em))
}

const (
	// Extraction errors
	ErrEntryShape  = ErrMessage("case does not match 'case ID: this->MODE_addressing(); this->HANDLER(); cycles -= N;'")
	ErrOpcodeRange = ErrMessage("opcode out of range")

	// Arm errors
	ErrArmShape    = ErrMessage("arm does not match 'ID => { self.MODE(); self.HANDLER(); self.cycles_delay+=N; },'")
	ErrArmMismatch = ErrMessage("arm does not round trip")

	// Rewrite errors
	ErrRewriteMissing = ErrMessage("rewrite script does not define rewrite(entry)")
	ErrRewriteResult  = ErrMessage("rewrite must return a dict of strings or None")
)

// ErrFragment locates a fragment that could not be transcoded.
type ErrFragment struct {
	Name  string // Name of the input.
	Index int    // 1-based ordinal among the retained fragments.
	Text  string // Normalized fragment text.
	Err   error
}

func (err *ErrFragment) Error() string {
	return f("%v: case %d '%v' %v", err.Name, err.Index, err.Text, err.Err)
}

func (err *ErrFragment) Unwrap() error {
	return err.Err
}

// ErrRewrite wraps a failure inside the rewrite script.
type ErrRewrite struct {
	Opcode string
	Err    error
}

func (err *ErrRewrite) Error() string {
	return f("rewrite %v: %v", err.Opcode, err.Err)
}

func (err *ErrRewrite) Unwrap() error {
	return err.Err
}
