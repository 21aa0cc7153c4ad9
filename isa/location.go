package isa

import (
	"fmt"
)

// SymbolTable maps labels to addresses. It is built by the caller and only
// read by the codec.
type SymbolTable interface {
	Lookup(label string) (value uint32, ok bool)
}

// Symbols is a map based SymbolTable.
type Symbols map[string]uint32

var _ SymbolTable = Symbols(nil)

// Lookup returns the value of a label.
func (syms Symbols) Lookup(label string) (value uint32, ok bool) {
	value, ok = syms[label]
	return
}

// LocationKind selects the form of a Location.
type LocationKind int

const (
	LOC_ADDRESS = LocationKind(0) // Absolute address.
	LOC_OFFSET  = LocationKind(1) // Relative to the current instruction.
	LOC_LABEL   = LocationKind(2) // Symbolic, resolved through a SymbolTable.
)

// Location is an unresolved control-flow target.
type Location struct {
	Kind    LocationKind
	Address Address
	Offset  Offset
	Label   string
}

// AtAddress returns an absolute location.
func AtAddress(addr Address) Location {
	return Location{Kind: LOC_ADDRESS, Address: addr}
}

// AtOffset returns a location relative to the instruction using it.
func AtOffset(off Offset) Location {
	return Location{Kind: LOC_OFFSET, Offset: off}
}

// AtLabel returns a symbolic location.
func AtLabel(label string) Location {
	return Location{Kind: LOC_LABEL, Label: label}
}

// String returns the assembly form of the location.
func (loc Location) String() string {
	switch loc.Kind {
	case LOC_OFFSET:
		return fmt.Sprintf("%+d", loc.Offset.Value())
	case LOC_LABEL:
		return loc.Label
	default:
		return fmt.Sprintf("%#x", loc.Address.Value())
	}
}

// Resolve returns the address of loc for the instruction at ip.
// Offsets wrap around the address space in both directions.
func (prof *Profile) Resolve(loc Location, ip uint32, syms SymbolTable) (addr Address, err error) {
	switch loc.Kind {
	case LOC_ADDRESS:
		addr, err = prof.NewAddress(loc.Address.Value())
	case LOC_OFFSET:
		space := int64(prof.AddressSpace())
		target := (int64(ip) + int64(loc.Offset.Value())) % space
		if target < 0 {
			target += space
		}
		addr = Address{value: uint32(target)}
	case LOC_LABEL:
		var value uint32
		var ok bool
		if syms != nil {
			value, ok = syms.Lookup(loc.Label)
		}
		if !ok {
			err = ErrUnknownLabel(loc.Label)
			return
		}
		addr, err = prof.NewAddress(value)
	default:
		err = ErrShape
	}

	return
}
