package isa

// Opcode identifies an instruction.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP   = Opcode(0)  // nop
	OP_HALT  = Opcode(1)  // halt
	OP_ADD   = Opcode(2)  // add
	OP_SUB   = Opcode(3)  // sub
	OP_MUL   = Opcode(4)  // mul
	OP_DIV   = Opcode(5)  // div
	OP_NOR   = Opcode(6)  // nor
	OP_AND   = Opcode(7)  // and
	OP_XOR   = Opcode(8)  // xor
	OP_SHR   = Opcode(9)  // shr
	OP_SHL   = Opcode(10) // shl
	OP_LDI   = Opcode(11) // ldi
	OP_ADDI  = Opcode(12) // addi
	OP_JMP   = Opcode(13) // jmp
	OP_BR    = Opcode(14) // br
	OP_CALL  = Opcode(15) // call
	OP_RET   = Opcode(16) // ret
	OP_LOAD  = Opcode(17) // load
	OP_STORE = Opcode(18) // store
	OP_PUSH  = Opcode(19) // push
	OP_POP   = Opcode(20) // pop
)

// OPCODE_COUNT is the number of defined opcodes.
const OPCODE_COUNT = 21

// Shape is the operand layout shared by a group of opcodes.
type Shape int

//go:generate go tool stringer -linecomment -type=Shape
const (
	SHAPE_NONE          = Shape(0) // none
	SHAPE_REG3          = Shape(1) // reg3
	SHAPE_REG_IMM       = Shape(2) // reg,imm
	SHAPE_LOCATION      = Shape(3) // loc
	SHAPE_COND_LOCATION = Shape(4) // cond,loc
	SHAPE_REG2_OFFSET   = Shape(5) // reg2,off
	SHAPE_REG1          = Shape(6) // reg
)

var opcodeShape = [OPCODE_COUNT]Shape{
	OP_NOP:   SHAPE_NONE,
	OP_HALT:  SHAPE_NONE,
	OP_ADD:   SHAPE_REG3,
	OP_SUB:   SHAPE_REG3,
	OP_MUL:   SHAPE_REG3,
	OP_DIV:   SHAPE_REG3,
	OP_NOR:   SHAPE_REG3,
	OP_AND:   SHAPE_REG3,
	OP_XOR:   SHAPE_REG3,
	OP_SHR:   SHAPE_REG3,
	OP_SHL:   SHAPE_REG3,
	OP_LDI:   SHAPE_REG_IMM,
	OP_ADDI:  SHAPE_REG_IMM,
	OP_JMP:   SHAPE_LOCATION,
	OP_BR:    SHAPE_COND_LOCATION,
	OP_CALL:  SHAPE_LOCATION,
	OP_RET:   SHAPE_NONE,
	OP_LOAD:  SHAPE_REG2_OFFSET,
	OP_STORE: SHAPE_REG2_OFFSET,
	OP_PUSH:  SHAPE_REG1,
	OP_POP:   SHAPE_REG1,
}

// Valid returns true if the opcode is defined.
func (op Opcode) Valid() bool {
	return op >= 0 && op < OPCODE_COUNT
}

// Shape returns the operand layout of the opcode.
func (op Opcode) Shape() Shape {
	if !op.Valid() {
		return SHAPE_NONE
	}
	return opcodeShape[op]
}

// Registers returns the number of register operands of the shape.
func (shape Shape) Registers() int {
	switch shape {
	case SHAPE_REG3:
		return 3
	case SHAPE_REG2_OFFSET:
		return 2
	case SHAPE_REG_IMM, SHAPE_REG1:
		return 1
	}
	return 0
}

// HasLocation returns true if the shape carries a control-flow target.
func (shape Shape) HasLocation() bool {
	return shape == SHAPE_LOCATION || shape == SHAPE_COND_LOCATION
}
