package main

import (
	"fmt"
	"io"

	"github.com/ezrec/isacodec/isa"
	"github.com/ezrec/isacodec/program"
	"github.com/ezrec/isacodec/symtab"
)

// labelled returns insts with every absolute target that has a label
// replaced by the first label of that address.
func labelled(insts []isa.Instruction, tab *symtab.Table) (out []isa.Instruction) {
	out = make([]isa.Instruction, len(insts))
	for n, inst := range insts {
		if inst.Opcode.Shape().HasLocation() && inst.Target.Kind == isa.LOC_ADDRESS {
			names := tab.Names(inst.Target.Address.Value())
			if len(names) > 0 {
				inst.Target = isa.AtLabel(names[0])
			}
		}
		out[n] = inst
	}
	return
}

// writeListing writes one line per instruction, preceded by its labels.
func writeListing(w io.Writer, prof *isa.Profile, insts []isa.Instruction, tab *symtab.Table) (err error) {
	width := int(prof.AddressBits+3) / 4

	for n, inst := range insts {
		for _, name := range tab.Names(uint32(n)) {
			_, err = fmt.Fprintf(w, "%v:\n", name)
			if err != nil {
				return
			}
		}
		_, err = fmt.Fprintf(w, "\t%0*x\t%v\n", width, n, inst)
		if err != nil {
			return
		}
	}

	return
}

// reencode assembles insts again and returns the addresses whose word
// differs from the original image.
func reencode(codec *program.Codec, insts []isa.Instruction, tab *symtab.Table, words []isa.Word) (out []isa.Word, differ []int, err error) {
	out, err = codec.Assemble(insts, tab)
	if err != nil {
		return
	}

	for n, word := range out {
		if word != words[n] {
			differ = append(differ, n)
		}
	}

	return
}
