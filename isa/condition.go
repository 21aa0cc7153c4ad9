package isa

// Condition is a branch condition.
type Condition int

//go:generate go tool stringer -linecomment -type=Condition
const (
	COND_ZERO      = Condition(0) // z
	COND_NOT_ZERO  = Condition(1) // nz
	COND_CARRY     = Condition(2) // c
	COND_NOT_CARRY = Condition(3) // nc
)

// CONDITION_COUNT is the number of branch conditions.
const CONDITION_COUNT = 4

// ConditionFromIndex returns the condition with the given index.
func ConditionFromIndex(index uint32) (cond Condition, err error) {
	if index >= CONDITION_COUNT {
		err = ErrUnknownCondition(index)
		return
	}

	cond = Condition(index)
	return
}

// Index returns the encoded index of the condition.
func (cond Condition) Index() uint32 {
	return uint32(cond)
}
