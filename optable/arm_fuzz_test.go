package optable

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var identRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

func FuzzArmRoundTrip(f *testing.F) {
	f.Add(uint8(0x00), "implied", "BRK", uint8(7))
	f.Add(uint8(0xa9), "immediate", "LDA", uint8(2))
	f.Add(uint8(0xfe), "absolute_x", "INC", uint8(12))

	f.Fuzz(func(t *testing.T, opcode uint8, mode string, handler string, cycles uint8) {
		if !identRe.MatchString(mode) || !identRe.MatchString(handler) {
			t.Skip()
		}
		if strings.HasSuffix(mode, ADDRESSING_SUFFIX) {
			t.Skip()
		}
		if strings.Contains(mode+" "+handler, CASE_TERMINATOR) {
			t.Skip()
		}

		assert := assert.New(t)

		text := fmt.Sprintf("case 0x%02X: this->%v_addressing(); this->%v(); cycles -= %d; break;",
			opcode, mode, handler, cycles)

		lines, err := TranscodeString(text)
		assert.NoError(err, text)
		if len(lines) != 1 {
			t.Fatalf("%v: %d lines", text, len(lines))
		}

		back, err := ParseArm(lines[0])
		assert.NoError(err, lines[0])
		assert.Equal(fmt.Sprintf("0x%02X", opcode), back.Opcode)
		assert.Equal(mode, back.Mode)
		assert.Equal(strings.ToLower(handler), back.Handler)
		assert.Equal(fmt.Sprintf("%d", cycles), back.Cycles)

		value, err := back.Value()
		assert.NoError(err)
		assert.Equal(opcode, value)
	})
}
