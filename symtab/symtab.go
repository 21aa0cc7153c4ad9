// Package symtab loads symbol tables for the codec.
//
// A symbol file is a Starlark program. Every top-level integer global
// becomes a label, so addresses may be computed from one another:
//
//	start = 0
//	loop = start + 4
//	end = loop + 12
//
// Globals that are not integers, or whose names start with an underscore,
// are ignored.
package symtab

import (
	"errors"
	"maps"
	"math"
	"slices"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/isacodec/isa"
	"github.com/ezrec/isacodec/translate"
)

var f = translate.From

// ErrValue is a label whose value is not an unsigned 32-bit integer.
type ErrValue struct {
	Label string
	Value string
}

func (err ErrValue) Error() string {
	return f("label %v value %v is not an address", err.Label, err.Value)
}

func (err ErrValue) Is(target error) (ok bool) {
	_, ok = target.(ErrValue)
	return
}

var ErrDuplicate = errors.New(f("label duplicated"))

// Table is a symbol table with a reverse index from value to labels.
type Table struct {
	isa.Symbols
	names map[uint32][]string
}

var _ isa.SymbolTable = (*Table)(nil)

// New returns a table holding syms.
func New(syms isa.Symbols) (tab *Table) {
	tab = &Table{
		Symbols: maps.Clone(syms),
		names:   make(map[uint32][]string, len(syms)),
	}
	if tab.Symbols == nil {
		tab.Symbols = isa.Symbols{}
	}

	for label, value := range tab.Symbols {
		tab.names[value] = append(tab.names[value], label)
	}
	for _, labels := range tab.names {
		slices.Sort(labels)
	}

	return
}

// Define adds a label.
func (tab *Table) Define(label string, value uint32) (err error) {
	_, ok := tab.Symbols[label]
	if ok {
		err = ErrDuplicate
		return
	}

	tab.Symbols[label] = value
	labels := append(tab.names[value], label)
	slices.Sort(labels)
	tab.names[value] = labels

	return
}

// Names returns the labels with the given value, sorted.
func (tab *Table) Names(value uint32) []string {
	return tab.names[value]
}

// Load executes a Starlark symbol file. If src is nil the file is read from
// filename, otherwise src is used as the program text.
func Load(filename string, src any, predeclared isa.Symbols) (tab *Table, err error) {
	pred := starlark.StringDict{}
	for label, value := range predeclared {
		pred[label] = starlark.MakeUint(uint(value))
	}

	thread := &starlark.Thread{Name: filename}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, pred)
	if err != nil {
		return
	}

	syms := maps.Clone(predeclared)
	if syms == nil {
		syms = isa.Symbols{}
	}

	for _, label := range slices.Sorted(maps.Keys(globals)) {
		value := globals[label]
		if strings.HasPrefix(label, "_") {
			continue
		}

		st_int, ok := value.(starlark.Int)
		if !ok {
			continue
		}

		st_int64, ok := st_int.Int64()
		if !ok || st_int64 < 0 || st_int64 > math.MaxUint32 {
			err = ErrValue{Label: label, Value: st_int.String()}
			return
		}

		syms[label] = uint32(st_int64)
	}

	tab = New(syms)
	return
}
