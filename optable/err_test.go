package optable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ezrec/optrans/translate"
)

func TestErrMessage(t *testing.T) {
	assert := assert.New(t)

	defer translate.Use()

	key := string(ErrOpcodeRange)
	assert.NoError(message.SetString(language.AmericanEnglish, key, key))
	assert.NoError(message.SetString(language.German, key, "Opcode außerhalb des Bereichs"))

	translate.Use("en-US")
	assert.Equal("opcode out of range", ErrOpcodeRange.Error())

	err := &ErrFragment{Name: "sw", Index: 2, Text: "case 0x100:", Err: ErrOpcodeRange}
	assert.ErrorIs(err, ErrOpcodeRange)
	assert.NotErrorIs(err, ErrEntryShape)

	// Messages follow a language selected after package initialization.
	translate.Use("de")
	assert.Equal("Opcode außerhalb des Bereichs", ErrOpcodeRange.Error())
	assert.Contains(err.Error(), "Opcode außerhalb des Bereichs")
}
