package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	assert := assert.New(t)

	prof := Profile32
	syms := Symbols{"end": 5, "far": 0x1000000}

	addr, err := prof.NewAddress(0x1234)
	assert.NoError(err)

	minus1, err := prof.NewOffset(-1)
	assert.NoError(err)
	plus3, err := prof.NewOffset(3)
	assert.NoError(err)

	table := []struct {
		Location Location
		Ip       uint32
		Address  uint32
		Err      error
	}{
		{Location: AtAddress(addr), Ip: 99, Address: 0x1234},
		{Location: AtOffset(plus3), Ip: 10, Address: 13},
		{Location: AtOffset(minus1), Ip: 10, Address: 9},
		{Location: AtOffset(minus1), Ip: 0, Address: prof.AddressSpace() - 1},
		{Location: AtOffset(plus3), Ip: prof.AddressSpace() - 1, Address: 2},
		{Location: AtLabel("end"), Ip: 0, Address: 5},
		{Location: AtLabel("start"), Err: ErrUnknownLabel("")},
		{Location: AtLabel("far"), Err: ErrRange{}},
	}

	for _, testcase := range table {
		got, err := prof.Resolve(testcase.Location, testcase.Ip, syms)
		if testcase.Err != nil {
			assert.ErrorIs(err, testcase.Err, testcase.Location.String())
			continue
		}
		assert.NoError(err, testcase.Location.String())
		assert.Equal(testcase.Address, got.Value(), testcase.Location.String())
	}
}

func TestResolve_UnknownLabel(t *testing.T) {
	assert := assert.New(t)

	_, err := Profile32.Resolve(AtLabel("missing"), 0, nil)
	assert.Equal(ErrUnknownLabel("missing"), err)
	assert.Equal(`Unknown label "missing"`, err.Error())
}

func TestLocation_String(t *testing.T) {
	assert := assert.New(t)

	addr, _ := Profile16.NewAddress(0x1f)
	off, _ := Profile16.NewOffset(-2)

	assert.Equal("0x1f", AtAddress(addr).String())
	assert.Equal("-2", AtOffset(off).String())
	assert.Equal("loop", AtLabel("loop").String())
}
