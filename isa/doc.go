// Package isa implements the binary codec for the 21 opcode instruction set.
//
// An instruction is one fixed-width word. The opcode occupies the most
// significant bits, the branch condition sits directly below it, and the
// register, immediate, offset and address operands are packed from the
// least significant end. The widths of every field come from a Profile, so
// the same instruction model encodes to 32-bit words (Profile32) or to
// compact 16-bit words (Profile16).
//
// Control-flow targets are Locations: an absolute address, an offset from the
// current instruction, or a label looked up in a SymbolTable at encode time.
package isa
