package isa

// Register is a register number.
type Register struct {
	value uint32
}

// Immediate is the bit pattern of an immediate operand.
type Immediate struct {
	value uint32
}

// Offset is a signed displacement.
type Offset struct {
	value int32
}

// Address is an instruction address.
type Address struct {
	value uint32
}

func checkUnsigned(field string, fd Field, value uint32) error {
	if value > fd.Max() {
		return ErrRange{Field: field, Value: int64(value), Min: 0, Max: int64(fd.Max())}
	}
	return nil
}

func checkSigned(field string, fd Field, value int32) error {
	if value < fd.SignedMin() || value > fd.SignedMax() {
		return ErrRange{Field: field, Value: int64(value), Min: int64(fd.SignedMin()), Max: int64(fd.SignedMax())}
	}
	return nil
}

// NewRegister returns register number value.
func (prof *Profile) NewRegister(value uint32) (reg Register, err error) {
	err = checkUnsigned(f("Register"), prof.Register(0), value)
	if err != nil {
		return
	}

	reg = Register{value: value}
	return
}

// NewImmediate returns an immediate holding value modulo the field size.
// Unlike the other operands, an immediate never rejects a value.
func (prof *Profile) NewImmediate(value uint32) Immediate {
	return Immediate{value: value & prof.Immediate().Mask()}
}

// NewSignedImmediate returns the two's complement bit pattern of value.
// Values of either sign up to the field's unsigned maximum are accepted.
func (prof *Profile) NewSignedImmediate(value int64) (imm Immediate, err error) {
	limit := int64(prof.Immediate().Max())
	if value < -limit || value > limit {
		err = ErrRange{Field: f("Immediate"), Value: value, Min: -limit, Max: limit}
		return
	}

	imm = prof.NewImmediate(uint32(value))
	return
}

// NewOffset returns a signed offset.
func (prof *Profile) NewOffset(value int32) (off Offset, err error) {
	err = checkSigned(f("Offset"), prof.Offset(), value)
	if err != nil {
		return
	}

	off = Offset{value: value}
	return
}

// NewAddress returns an instruction address.
func (prof *Profile) NewAddress(value uint32) (addr Address, err error) {
	err = checkUnsigned(f("Address"), prof.Address(), value)
	if err != nil {
		return
	}

	addr = Address{value: value}
	return
}

// Value returns the register number.
func (reg Register) Value() uint32 {
	return reg.value
}

// Value returns the immediate bit pattern.
func (imm Immediate) Value() uint32 {
	return imm.value
}

// Value returns the signed offset.
func (off Offset) Value() int32 {
	return off.value
}

// Value returns the address.
func (addr Address) Value() uint32 {
	return addr.value
}
