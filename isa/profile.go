// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"slices"
)

// Word is a single encoded instruction.
type Word uint32

// Field is a bit field within a Word.
type Field struct {
	Shift uint // Bit position of the least significant bit.
	Width uint // Number of bits.
}

// Mask returns the right-aligned mask of the field.
func (fd Field) Mask() uint32 {
	if fd.Width >= 32 {
		return 0xffffffff
	}
	return (uint32(1) << fd.Width) - 1
}

// Max returns the largest unsigned value of the field.
func (fd Field) Max() uint32 {
	return fd.Mask()
}

// SignedMin returns the smallest two's complement value of the field.
func (fd Field) SignedMin() int32 {
	if fd.Width == 0 {
		return 0
	}
	return -int32(uint32(1) << (fd.Width - 1))
}

// SignedMax returns the largest two's complement value of the field.
func (fd Field) SignedMax() int32 {
	if fd.Width == 0 {
		return 0
	}
	return int32(uint32(1)<<(fd.Width-1)) - 1
}

// Insert places value into the field of word. Bits of value above the field
// width are discarded.
func (fd Field) Insert(word Word, value uint32) Word {
	mask := fd.Mask()
	word &^= Word(mask << fd.Shift)
	return word | Word((value&mask)<<fd.Shift)
}

// Extract returns the unsigned contents of the field.
func (fd Field) Extract(word Word) uint32 {
	return (uint32(word) >> fd.Shift) & fd.Mask()
}

// ExtractSigned returns the sign extended contents of the field.
func (fd Field) ExtractSigned(word Word) int32 {
	value := fd.Extract(word)
	if fd.Width == 0 || fd.Width >= 32 {
		return int32(value)
	}
	if value&(1<<(fd.Width-1)) != 0 {
		value |= ^fd.Mask()
	}
	return int32(value)
}

// Profile describes the field widths of one revision of the ISA.
// Every range and mask in the codec is derived from it.
type Profile struct {
	Name          string
	WordBits      uint // Width of an encoded word.
	OpcodeBits    uint // Most significant bits of the word.
	ConditionBits uint // Directly below the opcode field, branches only.
	RegisterBits  uint // Each of the three register slots.
	ImmediateBits uint // Low bits, register+immediate forms.
	OffsetBits    uint // Low bits, memory access forms.
	AddressBits   uint // Low bits, control-flow forms.
}

var (
	// Profile32 is the 32-bit word revision with 256 registers.
	Profile32 = &Profile{
		Name:          "isa32",
		WordBits:      32,
		OpcodeBits:    5,
		ConditionBits: 3,
		RegisterBits:  8,
		ImmediateBits: 16,
		OffsetBits:    8,
		AddressBits:   24,
	}

	// Profile16 is the compact 16-bit word revision with 8 registers.
	Profile16 = &Profile{
		Name:          "isa16",
		WordBits:      16,
		OpcodeBits:    5,
		ConditionBits: 2,
		RegisterBits:  3,
		ImmediateBits: 6,
		OffsetBits:    3,
		AddressBits:   9,
	}
)

// Profiles lists the built-in profiles.
var Profiles = []*Profile{Profile32, Profile16}

// Lookup returns the built-in profile with the given name.
func Lookup(name string) (prof *Profile, err error) {
	n := slices.IndexFunc(Profiles, func(p *Profile) bool { return p.Name == name })
	if n < 0 {
		err = ErrProfileUnknown
		return
	}

	prof = Profiles[n]
	return
}

// Opcode returns the opcode field.
func (prof *Profile) Opcode() Field {
	return Field{Shift: prof.WordBits - prof.OpcodeBits, Width: prof.OpcodeBits}
}

// Condition returns the branch condition field.
func (prof *Profile) Condition() Field {
	return Field{Shift: prof.WordBits - prof.OpcodeBits - prof.ConditionBits, Width: prof.ConditionBits}
}

// Register returns the field of register slot 0 (destination), 1 or 2.
func (prof *Profile) Register(slot int) Field {
	return Field{Shift: uint(2-slot) * prof.RegisterBits, Width: prof.RegisterBits}
}

// Immediate returns the immediate field.
func (prof *Profile) Immediate() Field {
	return Field{Width: prof.ImmediateBits}
}

// Offset returns the memory offset field.
func (prof *Profile) Offset() Field {
	return Field{Width: prof.OffsetBits}
}

// Address returns the control-flow address field.
func (prof *Profile) Address() Field {
	return Field{Width: prof.AddressBits}
}

// AddressSpace returns the number of addressable instructions.
func (prof *Profile) AddressSpace() uint32 {
	return prof.Address().Max() + 1
}

// WordMask returns the mask of the bits a word may use.
func (prof *Profile) WordMask() uint32 {
	return Field{Width: prof.WordBits}.Mask()
}

// Validate checks that no two fields used by the same instruction shape
// overlap, and that the enumerated fields can hold every value.
func (prof *Profile) Validate() error {
	switch {
	case prof.WordBits == 0 || prof.WordBits > 32:
		return ErrProfileWord
	case prof.OpcodeBits >= prof.WordBits || (uint32(1)<<prof.OpcodeBits) < uint32(OPCODE_COUNT):
		return ErrProfileOpcode
	case prof.ConditionBits == 0 || (uint32(1)<<prof.ConditionBits) < uint32(CONDITION_COUNT):
		return ErrProfileCondition
	case prof.RegisterBits == 0 || prof.OpcodeBits+3*prof.RegisterBits > prof.WordBits:
		return ErrProfileRegister
	case prof.ImmediateBits == 0 || prof.ImmediateBits > 2*prof.RegisterBits:
		return ErrProfileImmediate
	case prof.OffsetBits < 2 || prof.OffsetBits > prof.RegisterBits:
		return ErrProfileOffset
	case prof.AddressBits == 0 || prof.OpcodeBits+prof.ConditionBits+prof.AddressBits > prof.WordBits:
		return ErrProfileAddress
	}

	return nil
}

// String returns the profile name.
func (prof *Profile) String() string {
	return prof.Name
}
