package optable

import (
	_ "embed"
)

// Table6502 is the body of the reference 6502 opcode switch.
//
//go:embed table6502.txt
var Table6502 string

// TABLE_6502_NAME names the embedded table in fragments and errors.
const TABLE_6502_NAME = "6502"
