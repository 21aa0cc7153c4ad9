package isa

// Encode returns the word for inst placed at address ip. Only the control
// flow opcodes consult syms.
func (prof *Profile) Encode(inst Instruction, ip uint32, syms SymbolTable) (word Word, err error) {
	if !inst.Opcode.Valid() {
		err = ErrUnknownOpcode(uint32(inst.Opcode))
		return
	}

	word = prof.Opcode().Insert(0, uint32(inst.Opcode))

	shape := inst.Opcode.Shape()
	for slot := range shape.Registers() {
		fd := prof.Register(slot)
		reg := inst.Register[slot].Value()
		err = checkUnsigned(f("Register"), fd, reg)
		if err != nil {
			return
		}
		word = fd.Insert(word, reg)
	}

	switch shape {
	case SHAPE_REG_IMM:
		fd := prof.Immediate()
		err = checkUnsigned(f("Immediate"), fd, inst.Immediate.Value())
		if err != nil {
			return
		}
		word = fd.Insert(word, inst.Immediate.Value())
	case SHAPE_REG2_OFFSET:
		fd := prof.Offset()
		err = checkSigned(f("Offset"), fd, inst.Offset.Value())
		if err != nil {
			return
		}
		word = fd.Insert(word, uint32(inst.Offset.Value()))
	case SHAPE_COND_LOCATION:
		if inst.Condition < 0 || inst.Condition >= CONDITION_COUNT {
			err = ErrUnknownCondition(uint32(inst.Condition))
			return
		}
		word = prof.Condition().Insert(word, inst.Condition.Index())
		fallthrough
	case SHAPE_LOCATION:
		var addr Address
		addr, err = prof.Resolve(inst.Target, ip, syms)
		if err != nil {
			return
		}
		word = prof.Address().Insert(word, addr.Value())
	}

	return
}

// Decode returns the instruction encoded in word. Targets are always
// decoded as absolute addresses.
func (prof *Profile) Decode(word Word) (inst Instruction, err error) {
	if uint32(word)&^prof.WordMask() != 0 {
		err = ErrWordOverflow{Word: word, Bits: prof.WordBits}
		return
	}

	code := prof.Opcode().Extract(word)
	if code >= OPCODE_COUNT {
		err = ErrUnknownOpcode(code)
		return
	}

	inst.Opcode = Opcode(code)

	shape := inst.Opcode.Shape()
	for slot := range shape.Registers() {
		inst.Register[slot] = Register{value: prof.Register(slot).Extract(word)}
	}

	switch shape {
	case SHAPE_REG_IMM:
		inst.Immediate = Immediate{value: prof.Immediate().Extract(word)}
	case SHAPE_REG2_OFFSET:
		inst.Offset = Offset{value: prof.Offset().ExtractSigned(word)}
	case SHAPE_COND_LOCATION:
		inst.Condition, err = ConditionFromIndex(prof.Condition().Extract(word))
		if err != nil {
			inst = Instruction{}
			return
		}
		fallthrough
	case SHAPE_LOCATION:
		inst.Target = AtAddress(Address{value: prof.Address().Extract(word)})
	}

	return
}
