package optable

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFragments(t *testing.T) {
	assert := assert.New(t)

	text := "switch (op) {\r\n" +
		"case 0x00: this->implied_addressing();\r\n  this->BRK(); cycles -= 7; break;\n" +
		"\n" +
		"case 0x01: this->indirect_x_addressing();\n  this->ORA(); cycles -= 6; break;\n" +
		"}\n"

	frags := slices.Collect(Fragments("sw", text))
	assert.Equal(2, len(frags))
	if len(frags) != 2 {
		return
	}

	assert.Equal(Fragment{
		Name:  "sw",
		Index: 1,
		Text:  "switch (op) { case 0x00: this->implied_addressing();   this->BRK(); cycles -= 7; ",
	}, frags[0])
	assert.Equal(Fragment{
		Name:  "sw",
		Index: 2,
		Text:  ";  case 0x01: this->indirect_x_addressing();   this->ORA(); cycles -= 6; ",
	}, frags[1])
}

func TestFragmentsEmpty(t *testing.T) {
	assert := assert.New(t)

	assert.Empty(slices.Collect(Fragments("empty", "")))
	assert.Empty(slices.Collect(Fragments("blank", "\n\n  break; break;\n")))
}

func TestFragmentsStop(t *testing.T) {
	assert := assert.New(t)

	count := 0
	for range Fragments(TABLE_6502_NAME, Table6502) {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(3, count)
}
