package isa

import (
	"errors"

	"github.com/ezrec/isacodec/translate"
)

var f = translate.From

var (
	// Profile layout errors
	ErrProfileWord      = errors.New(f("word wider than 32 bits"))
	ErrProfileOpcode    = errors.New(f("opcode field too narrow"))
	ErrProfileCondition = errors.New(f("condition field too narrow"))
	ErrProfileRegister  = errors.New(f("register fields overlap opcode"))
	ErrProfileImmediate = errors.New(f("immediate field overlaps register"))
	ErrProfileOffset    = errors.New(f("offset field overlaps register"))
	ErrProfileAddress   = errors.New(f("address field overlaps condition"))
	ErrProfileUnknown   = errors.New(f("profile unknown"))

	// Instruction shape errors
	ErrShape = errors.New(f("operands do not match opcode"))
)

// ErrRange is returned when a value does not fit its field.
type ErrRange struct {
	Field string
	Value int64
	Min   int64
	Max   int64
}

func (err ErrRange) Error() string {
	return f("%v %d out of range, expected %d-%d", err.Field, err.Value, err.Min, err.Max)
}

func (err ErrRange) Is(target error) (ok bool) {
	_, ok = target.(ErrRange)
	return
}

// ErrUnknownOpcode is the opcode field of a word that names no instruction.
type ErrUnknownOpcode uint32

func (err ErrUnknownOpcode) Error() string {
	return f("Unknown opcode %d (%#07b)", uint32(err), uint32(err))
}

func (err ErrUnknownOpcode) Is(target error) (ok bool) {
	_, ok = target.(ErrUnknownOpcode)
	return
}

// ErrUnknownCondition is a branch condition index outside of 0-3.
type ErrUnknownCondition uint32

func (err ErrUnknownCondition) Error() string {
	return f("Unknown condition %d (%#05b)", uint32(err), uint32(err))
}

func (err ErrUnknownCondition) Is(target error) (ok bool) {
	_, ok = target.(ErrUnknownCondition)
	return
}

// ErrUnknownLabel is a label missing from the symbol table.
type ErrUnknownLabel string

func (err ErrUnknownLabel) Error() string {
	return f("Unknown label %q", string(err))
}

func (err ErrUnknownLabel) Is(target error) (ok bool) {
	_, ok = target.(ErrUnknownLabel)
	return
}

// ErrWordOverflow is a word with bits set above the profile's word width.
type ErrWordOverflow struct {
	Word Word
	Bits uint
}

func (err ErrWordOverflow) Error() string {
	return f("word %#x wider than %d bits", uint32(err.Word), err.Bits)
}
