package program

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/isacodec/isa"
)

func regs(t *testing.T, prof *isa.Profile, values ...uint32) (list []isa.Register) {
	for _, value := range values {
		reg, err := prof.NewRegister(value)
		if err != nil {
			t.Fatal(err)
		}
		list = append(list, reg)
	}
	return
}

func TestInstructionsToBinary(t *testing.T) {
	assert := assert.New(t)

	prof := isa.Profile32
	r := regs(t, prof, 1, 2, 3)

	insts := []isa.Instruction{
		isa.Add(r[0], r[1], r[2]),
		isa.Jump(isa.AtLabel("end")),
	}

	words, err := InstructionsToBinary(prof, insts, isa.Symbols{"end": 5})
	assert.NoError(err)
	assert.Equal([]isa.Word{0x1001_0203, 0x6800_0005}, words)
	assert.Equal(uint32(5), uint32(words[1])&0xff_ffff)
}

func TestInstructionsToBinary_Errors(t *testing.T) {
	assert := assert.New(t)

	prof := isa.Profile32

	insts := []isa.Instruction{
		isa.Nop(),
		isa.Jump(isa.AtLabel("missing")),
		isa.Call(isa.AtLabel("absent")),
	}

	words, err := InstructionsToBinary(prof, insts, isa.Symbols{})
	assert.Nil(words)

	var errs Errors
	assert.True(errors.As(err, &errs))
	assert.Len(errs, 2)
	assert.Equal(2, errs[0].LineNo)
	assert.Equal(1, errs[0].Address)
	assert.Equal(isa.ErrUnknownLabel("missing"), errs[0].Err)
	assert.Equal(3, errs[1].LineNo)
	assert.Equal(2, errs[1].Address)
	assert.Equal(isa.ErrUnknownLabel("absent"), errs[1].Err)

	assert.ErrorIs(err, isa.ErrUnknownLabel(""))
	assert.Equal(`Unknown label "missing"`, errs[0].Description())
	assert.Contains(err.Error(), "line 2")
	assert.Contains(err.Error(), "line 3")
}

func TestInstructionsToBinary_SingleMissingLabel(t *testing.T) {
	assert := assert.New(t)

	_, err := InstructionsToBinary(isa.Profile16, []isa.Instruction{isa.Jump(isa.AtLabel("end"))}, nil)

	var errs Errors
	assert.True(errors.As(err, &errs))
	assert.Len(errs, 1)
	assert.Equal(isa.ErrUnknownLabel("end"), errs[0].Err)
	assert.Equal(1, errs[0].LineNo)
}

func TestBinaryToInstructions(t *testing.T) {
	assert := assert.New(t)

	prof := isa.Profile32
	r := regs(t, prof, 1, 2, 3)
	addr, _ := prof.NewAddress(5)

	insts, err := BinaryToInstructions(prof, []isa.Word{0x1001_0203, 0x6800_0005})
	assert.NoError(err)
	assert.Equal([]isa.Instruction{
		isa.Add(r[0], r[1], r[2]),
		isa.Jump(isa.AtAddress(addr)),
	}, insts)
}

func TestBinaryToInstructions_Errors(t *testing.T) {
	assert := assert.New(t)

	prof := isa.Profile32
	words := []isa.Word{
		0xf800_0000, // opcode 31
		0x0000_0000, // nop
		0x7500_0000, // br with condition 5
		0xa800_0000, // opcode 21
	}

	insts, err := BinaryToInstructions(prof, words)
	assert.Nil(insts)

	var errs Errors
	assert.True(errors.As(err, &errs))
	assert.Len(errs, 3)

	assert.Equal(0, errs[0].Address)
	assert.Equal(0, errs[0].LineNo)
	assert.Equal(isa.ErrUnknownOpcode(31), errs[0].Err)
	assert.Equal(2, errs[1].Address)
	assert.Equal(isa.ErrUnknownCondition(5), errs[1].Err)
	assert.Equal(3, errs[2].Address)
	assert.Equal(isa.ErrUnknownOpcode(21), errs[2].Err)

	assert.Contains(errs[1].Error(), "[Address 2]")
}

func TestCodec_Workers(t *testing.T) {
	assert := assert.New(t)

	prof := isa.Profile16
	r := regs(t, prof, 1, 2, 7)

	var insts []isa.Instruction
	for n := range 200 {
		switch n % 4 {
		case 0:
			insts = append(insts, isa.Add(r[0], r[1], r[2]))
		case 1:
			insts = append(insts, isa.Branch(isa.COND_CARRY, isa.AtLabel("top")))
		case 2:
			insts = append(insts, isa.Push(r[n%3]))
		default:
			insts = append(insts, isa.LoadImmediate(r[0], prof.NewImmediate(uint32(n))))
		}
	}
	syms := isa.Symbols{"top": 0}

	serial, err := InstructionsToBinary(prof, insts, syms)
	assert.NoError(err)

	codec := &Codec{Profile: prof, Workers: 8}
	parallel, err := codec.Assemble(insts, syms)
	assert.NoError(err)
	assert.Equal(serial, parallel)

	decoded, err := codec.Disassemble(parallel)
	assert.NoError(err)
	assert.Len(decoded, len(insts))
	for n, inst := range insts {
		want, err := prof.Resolved(inst, uint32(n), syms)
		assert.NoError(err)
		assert.Equal(want, decoded[n])
	}

	// Errors come back in position order regardless of completion order.
	insts[150] = isa.Jump(isa.AtLabel("nowhere"))
	insts[20] = isa.Jump(isa.AtLabel("nowhere"))
	insts[99] = isa.Call(isa.AtLabel("elsewhere"))

	words, err := codec.Assemble(insts, syms)
	assert.Nil(words)

	var errs Errors
	assert.True(errors.As(err, &errs))
	if assert.Len(errs, 3) {
		assert.Equal(21, errs[0].LineNo)
		assert.Equal(100, errs[1].LineNo)
		assert.Equal(151, errs[2].LineNo)
	}
}

func TestCodec_InvalidProfile(t *testing.T) {
	assert := assert.New(t)

	prof := *isa.Profile32
	prof.OpcodeBits = 3

	_, err := NewCodec(&prof).Assemble([]isa.Instruction{isa.Nop()}, nil)
	assert.ErrorIs(err, isa.ErrProfileOpcode)

	_, err = NewCodec(&prof).Disassemble([]isa.Word{0})
	assert.ErrorIs(err, isa.ErrProfileOpcode)
}

func TestCodec_Empty(t *testing.T) {
	assert := assert.New(t)

	words, err := InstructionsToBinary(isa.Profile32, nil, nil)
	assert.NoError(err)
	assert.Empty(words)

	insts, err := BinaryToInstructions(isa.Profile32, nil)
	assert.NoError(err)
	assert.Empty(insts)
}
