// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"fmt"
	"strings"
)

// Instruction is one decoded instruction. Only the operands used by the
// shape of the opcode are set; the others are left at their zero values, so
// two instructions compare equal exactly when they encode alike.
type Instruction struct {
	Opcode    Opcode
	Register  [3]Register // Destination, then sources.
	Immediate Immediate
	Offset    Offset
	Condition Condition
	Target    Location
}

func reg3(op Opcode, dst, a, b Register) Instruction {
	return Instruction{Opcode: op, Register: [3]Register{dst, a, b}}
}

// Nop does nothing.
func Nop() Instruction { return Instruction{Opcode: OP_NOP} }

// Halt stops the machine.
func Halt() Instruction { return Instruction{Opcode: OP_HALT} }

// Add stores a + b into dst.
func Add(dst, a, b Register) Instruction { return reg3(OP_ADD, dst, a, b) }

// Sub stores a - b into dst.
func Sub(dst, a, b Register) Instruction { return reg3(OP_SUB, dst, a, b) }

// Mul stores a * b into dst.
func Mul(dst, a, b Register) Instruction { return reg3(OP_MUL, dst, a, b) }

// Div stores a / b into dst.
func Div(dst, a, b Register) Instruction { return reg3(OP_DIV, dst, a, b) }

// Nor stores ^(a | b) into dst.
func Nor(dst, a, b Register) Instruction { return reg3(OP_NOR, dst, a, b) }

// And stores a & b into dst.
func And(dst, a, b Register) Instruction { return reg3(OP_AND, dst, a, b) }

// Xor stores a ^ b into dst.
func Xor(dst, a, b Register) Instruction { return reg3(OP_XOR, dst, a, b) }

// ShiftRight stores a >> b into dst.
func ShiftRight(dst, a, b Register) Instruction { return reg3(OP_SHR, dst, a, b) }

// ShiftLeft stores a << b into dst.
func ShiftLeft(dst, a, b Register) Instruction { return reg3(OP_SHL, dst, a, b) }

// LoadImmediate stores imm into dst.
func LoadImmediate(dst Register, imm Immediate) Instruction {
	return Instruction{Opcode: OP_LDI, Register: [3]Register{dst}, Immediate: imm}
}

// AddImmediate adds imm to dst.
func AddImmediate(dst Register, imm Immediate) Instruction {
	return Instruction{Opcode: OP_ADDI, Register: [3]Register{dst}, Immediate: imm}
}

// Jump transfers control to target.
func Jump(target Location) Instruction {
	return Instruction{Opcode: OP_JMP, Target: target}
}

// Branch transfers control to target when cond holds.
func Branch(cond Condition, target Location) Instruction {
	return Instruction{Opcode: OP_BR, Condition: cond, Target: target}
}

// Call pushes the return address and transfers control to target.
func Call(target Location) Instruction {
	return Instruction{Opcode: OP_CALL, Target: target}
}

// Return pops the return address.
func Return() Instruction { return Instruction{Opcode: OP_RET} }

// Load reads memory at base+off into dst.
func Load(dst, base Register, off Offset) Instruction {
	return Instruction{Opcode: OP_LOAD, Register: [3]Register{dst, base}, Offset: off}
}

// Store writes src to memory at base+off.
func Store(src, base Register, off Offset) Instruction {
	return Instruction{Opcode: OP_STORE, Register: [3]Register{src, base}, Offset: off}
}

// Push pushes reg on the stack.
func Push(reg Register) Instruction {
	return Instruction{Opcode: OP_PUSH, Register: [3]Register{reg}}
}

// Pop pops the stack into reg.
func Pop(reg Register) Instruction {
	return Instruction{Opcode: OP_POP, Register: [3]Register{reg}}
}

// Resolved returns the instruction with its target replaced by the absolute
// address it resolves to at ip. This is the form Decode produces.
func (prof *Profile) Resolved(inst Instruction, ip uint32, syms SymbolTable) (out Instruction, err error) {
	out = inst
	if !inst.Opcode.Shape().HasLocation() {
		return
	}

	addr, err := prof.Resolve(inst.Target, ip, syms)
	if err != nil {
		return
	}

	out.Target = AtAddress(addr)
	return
}

// String returns the assembly form of the instruction.
func (inst Instruction) String() string {
	var args []string

	shape := inst.Opcode.Shape()
	for slot := range shape.Registers() {
		args = append(args, fmt.Sprintf("r%d", inst.Register[slot].Value()))
	}

	mnemonic := inst.Opcode.String()

	switch shape {
	case SHAPE_REG_IMM:
		args = append(args, fmt.Sprintf("%#x", inst.Immediate.Value()))
	case SHAPE_REG2_OFFSET:
		args[1] = fmt.Sprintf("[%v%+d]", args[1], inst.Offset.Value())
	case SHAPE_COND_LOCATION:
		mnemonic += "." + inst.Condition.String()
		args = append(args, inst.Target.String())
	case SHAPE_LOCATION:
		args = append(args, inst.Target.String())
	}

	if len(args) == 0 {
		return mnemonic
	}

	return mnemonic + " " + strings.Join(args, ", ")
}
