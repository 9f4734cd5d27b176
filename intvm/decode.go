package intvm

import (
	"fmt"
	"strings"
)

type Mode int8

const (
	ModePositional Mode = iota
	ModeImmediate
	ModeRelative
)

func (m Mode) String() string {
	switch m {
	case ModePositional:
		return "pos"
	case ModeImmediate:
		return "imm"
	case ModeRelative:
		return "rel"
	}
	return fmt.Sprintf("mode(%d)", int8(m))
}

// ModeSet is a bit set of accepted addressing modes.
type ModeSet uint8

const (
	// LegacyModes is the mode set of machines without a relative base.
	LegacyModes ModeSet = 1<<ModePositional | 1<<ModeImmediate
	AllModes    ModeSet = LegacyModes | 1<<ModeRelative
)

func (s ModeSet) Has(m Mode) bool {
	return m >= 0 && m < 8 && s&(1<<m) != 0
}

type Instruction struct {
	Op    OpCode
	Modes [3]Mode
}

// Decode splits an instruction word into its opcode and the addressing modes of its three operands.
func Decode(word int64) (Instruction, error) {
	return decode(word, AllModes)
}

func decode(word int64, accepted ModeSet) (inst Instruction, err error) {
	inst.Op = OpCode(word % 100)
	if !inst.Op.Valid() {
		return inst, fmt.Errorf("word %d: %w", word, ErrUnknownOpCode)
	}
	rest := word / 100
	for i := range inst.Modes {
		mode := Mode(rest % 10)
		if !accepted.Has(mode) {
			return inst, fmt.Errorf("word %d, operand %d: %w", word, i+1, ErrUnknownMode)
		}
		inst.Modes[i] = mode
		rest /= 10
	}
	return inst, nil
}

// Word encodes the instruction back into its numeric form.
func (i Instruction) Word() int64 {
	word := int64(i.Op)
	scale := int64(100)
	for _, mode := range i.Modes {
		word += int64(mode) * scale
		scale *= 10
	}
	return word
}

func (i Instruction) String() string {
	buf := new(strings.Builder)
	buf.WriteString(i.Op.String())
	for n := range i.Op.Params() {
		buf.WriteString(" ")
		buf.WriteString(i.Modes[n].String())
	}
	return buf.String()
}
