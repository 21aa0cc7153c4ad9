package isa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	assert := assert.New(t)

	reg, err := Profile32.NewRegister(255)
	assert.NoError(err)
	assert.Equal(uint32(255), reg.Value())

	_, err = Profile32.NewRegister(256)
	assert.ErrorIs(err, ErrRange{})

	reg, err = Profile16.NewRegister(7)
	assert.NoError(err)
	assert.Equal(uint32(7), reg.Value())

	_, err = Profile16.NewRegister(8)
	var rerr ErrRange
	assert.True(errors.As(err, &rerr))
	assert.Equal(int64(8), rerr.Value)
	assert.Equal(int64(0), rerr.Min)
	assert.Equal(int64(7), rerr.Max)
}

func TestImmediate_Wraps(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint32(0xffff), Profile32.NewImmediate(0xffff).Value())
	assert.Equal(uint32(0), Profile32.NewImmediate(0x10000).Value())
	assert.Equal(uint32(0x2345), Profile32.NewImmediate(0x12345).Value())

	assert.Equal(uint32(63), Profile16.NewImmediate(63).Value())
	assert.Equal(uint32(1), Profile16.NewImmediate(65).Value())
}

func TestImmediate_Signed(t *testing.T) {
	assert := assert.New(t)

	imm, err := Profile32.NewSignedImmediate(-1)
	assert.NoError(err)
	assert.Equal(uint32(0xffff), imm.Value())

	imm, err = Profile32.NewSignedImmediate(-65535)
	assert.NoError(err)
	assert.Equal(uint32(1), imm.Value())

	imm, err = Profile32.NewSignedImmediate(65535)
	assert.NoError(err)
	assert.Equal(uint32(0xffff), imm.Value())

	_, err = Profile32.NewSignedImmediate(65536)
	assert.ErrorIs(err, ErrRange{})

	_, err = Profile32.NewSignedImmediate(-65536)
	assert.ErrorIs(err, ErrRange{})
}

func TestOffset(t *testing.T) {
	assert := assert.New(t)

	for _, value := range []int32{-128, -1, 0, 1, 127} {
		off, err := Profile32.NewOffset(value)
		assert.NoError(err)
		assert.Equal(value, off.Value())
	}

	for _, value := range []int32{-129, 128} {
		_, err := Profile32.NewOffset(value)
		assert.ErrorIs(err, ErrRange{})
	}

	_, err := Profile16.NewOffset(-4)
	assert.NoError(err)
	_, err = Profile16.NewOffset(4)
	assert.ErrorIs(err, ErrRange{})
	_, err = Profile16.NewOffset(-5)
	assert.ErrorIs(err, ErrRange{})
}

func TestAddress(t *testing.T) {
	assert := assert.New(t)

	addr, err := Profile32.NewAddress(0xffffff)
	assert.NoError(err)
	assert.Equal(uint32(0xffffff), addr.Value())

	_, err = Profile32.NewAddress(0x1000000)
	assert.ErrorIs(err, ErrRange{})

	_, err = Profile16.NewAddress(511)
	assert.NoError(err)
	_, err = Profile16.NewAddress(512)
	assert.ErrorIs(err, ErrRange{})
}

func TestCondition(t *testing.T) {
	assert := assert.New(t)

	for index, expected := range []Condition{COND_ZERO, COND_NOT_ZERO, COND_CARRY, COND_NOT_CARRY} {
		cond, err := ConditionFromIndex(uint32(index))
		assert.NoError(err)
		assert.Equal(expected, cond)
		assert.Equal(uint32(index), cond.Index())
	}

	_, err := ConditionFromIndex(4)
	assert.ErrorIs(err, ErrUnknownCondition(0))
	assert.Equal(ErrUnknownCondition(4), err)

	assert.Equal("nz", COND_NOT_ZERO.String())
	assert.Equal("Condition(9)", Condition(9).String())
}
