// Package optable transcodes a C++ style 6502 opcode switch into match arms.
//
// Each case of the switch calls an addressing mode method, an instruction
// handler, and charges a cycle cost:
//
//	case 0xA9: this->immediate_addressing(); this->LDA(); cycles -= 2; break;
//
// The transcoder splits the switch on its case terminator, extracts the four
// fields of every case, optionally passes them through a starlark rewrite
// script, and writes one arm per case:
//
//	0xA9 => { self.immediate_addressing();	self.lda();	self.cycles_delay+=2; },
//
// A case that does not have this shape aborts the run.
package optable
