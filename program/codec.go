// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package program

import (
	"log"

	"github.com/ezrec/isacodec/internal"
	"github.com/ezrec/isacodec/isa"
)

// Codec converts programs for one ISA profile.
type Codec struct {
	Profile *isa.Profile // ISA revision to encode for.
	Workers int          // Concurrent workers. Zero or one runs in order.
	Verbose bool         // If set, logs every converted instruction.
}

// NewCodec returns a sequential codec for prof.
func NewCodec(prof *isa.Profile) *Codec {
	return &Codec{Profile: prof}
}

// Assemble encodes insts, placing instruction n at address n. On failure
// the result is nil and err is an Errors with one entry per failed
// instruction.
func (codec *Codec) Assemble(insts []isa.Instruction, syms isa.SymbolTable) (words []isa.Word, err error) {
	err = codec.Profile.Validate()
	if err != nil {
		return
	}

	out := make([]isa.Word, len(insts))
	failed := make([]*Error, len(insts))

	internal.Each(len(insts), codec.Workers, func(n int) {
		word, err := codec.Profile.Encode(insts[n], uint32(n), syms)
		if err != nil {
			failed[n] = &Error{LineNo: n + 1, Address: n, Err: err}
			return
		}
		if codec.Verbose {
			log.Printf("%v: %04x: %v => %#x", codec.Profile, n, insts[n], uint32(word))
		}
		out[n] = word
	})

	errs := collect(failed)
	if len(errs) != 0 {
		err = errs
		return
	}

	words = out
	return
}

// Disassemble decodes words, word n being the instruction at address n. On
// failure the result is nil and err is an Errors with one entry per failed
// word.
func (codec *Codec) Disassemble(words []isa.Word) (insts []isa.Instruction, err error) {
	err = codec.Profile.Validate()
	if err != nil {
		return
	}

	out := make([]isa.Instruction, len(words))
	failed := make([]*Error, len(words))

	internal.Each(len(words), codec.Workers, func(n int) {
		inst, err := codec.Profile.Decode(words[n])
		if err != nil {
			failed[n] = &Error{Address: n, Err: err}
			return
		}
		if codec.Verbose {
			log.Printf("%v: %04x: %#x => %v", codec.Profile, n, uint32(words[n]), inst)
		}
		out[n] = inst
	})

	errs := collect(failed)
	if len(errs) != 0 {
		err = errs
		return
	}

	insts = out
	return
}

// InstructionsToBinary encodes insts with a sequential codec.
func InstructionsToBinary(prof *isa.Profile, insts []isa.Instruction, syms isa.SymbolTable) ([]isa.Word, error) {
	return NewCodec(prof).Assemble(insts, syms)
}

// BinaryToInstructions decodes words with a sequential codec.
func BinaryToInstructions(prof *isa.Profile, words []isa.Word) ([]isa.Instruction, error) {
	return NewCodec(prof).Disassemble(words)
}
