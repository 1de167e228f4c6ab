// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package optable

import (
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// REWRITE_FUNC is the function a rewrite script must define.
const REWRITE_FUNC = "rewrite"

// Rewriter passes entries through a starlark rewrite(entry) function.
//
// The entry is a dict with the keys "opcode", "mode", "handler" and "cycles".
// The function returns either None, to keep the entry as is, or a dict whose
// string values replace the matching fields.
//
//	def rewrite(entry):
//	    return {"mode": entry["mode"].replace("absolute", "abs")}
type Rewriter struct {
	thread *starlark.Thread
	fn     starlark.Callable
}

// NewRewriter compiles a rewrite script.
func NewRewriter(filename string, src string) (rw *Rewriter, err error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", filename, msg)
		},
	}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, nil)
	if err != nil {
		return
	}

	fn, ok := globals[REWRITE_FUNC].(starlark.Callable)
	if !ok {
		err = ErrRewriteMissing
		return
	}

	rw = &Rewriter{
		thread: thread,
		fn:     fn,
	}

	return
}

// entryField binds a dict key to an entry field.
type entryField struct {
	key   string
	value *string
}

func fields(entry *Entry) []entryField {
	return []entryField{
		{"opcode", &entry.Opcode},
		{"mode", &entry.Mode},
		{"handler", &entry.Handler},
		{"cycles", &entry.Cycles},
	}
}

// Apply runs the rewrite function over an entry.
func (rw *Rewriter) Apply(entry Entry) (out Entry, err error) {
	defer func() {
		if err != nil {
			err = &ErrRewrite{Opcode: entry.Opcode, Err: err}
		}
	}()

	arg := starlark.NewDict(4)
	for _, field := range fields(&entry) {
		err = arg.SetKey(starlark.String(field.key), starlark.String(*field.value))
		if err != nil {
			return
		}
	}

	rc, err := starlark.Call(rw.thread, rw.fn, starlark.Tuple{arg}, nil)
	if err != nil {
		return
	}

	out = entry

	switch rc := rc.(type) {
	case starlark.NoneType:
		return
	case *starlark.Dict:
		for _, field := range fields(&out) {
			value, found, _err := rc.Get(starlark.String(field.key))
			if _err != nil {
				err = _err
				return
			}
			if !found {
				continue
			}
			str, ok := value.(starlark.String)
			if !ok {
				err = ErrRewriteResult
				return
			}
			*field.value = string(str)
		}
	default:
		err = ErrRewriteResult
	}

	return
}
