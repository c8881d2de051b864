package isa

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ezrec/isasim/machine"
)

// OperandKind tags the three resolved operand forms.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_IMM = OperandKind(0) // imm
	OPERAND_REG = OperandKind(1) // reg
	OPERAND_MEM = OperandKind(2) // mem
)

// Operand is one resolved operand: a numeric literal, or a reference
// to a register or memory cell. References are dereferenced by the
// execution engine, not here.
type Operand struct {
	Kind  OperandKind
	Word  machine.Word // literal payload (OPERAND_IMM)
	Index int          // register or memory index (OPERAND_REG, OPERAND_MEM)
}

// String renders the operand in program-text form.
func (op Operand) String() string {
	switch op.Kind {
	case OPERAND_REG:
		return fmt.Sprintf("r[%d]", op.Index)
	case OPERAND_MEM:
		return fmt.Sprintf("m[%d]", op.Index)
	default:
		return fmt.Sprintf("%d", op.Word)
	}
}

// Value is one dereferenced source value handed to an evaluation rule.
// An absent optional source is the zero Value, with OK false.
type Value struct {
	Word machine.Word
	OK   bool
}

// Resolver converts one textual operand into an Operand, or fails.
// Trimming surrounding whitespace is the resolver's responsibility.
type Resolver func(token string) (Operand, error)

// RegisterResolver resolves a register descriptor string (r[0], r[1],
// ...) into a live register. The register file provides one at
// processor construction.
type RegisterResolver func(descriptor string) (*machine.Register, error)

// ImmediateOperand returns a resolver for numeric literals.
// Literals parse per strconv base 0: decimal, 0x.., 0o.., 0b...
func ImmediateOperand() Resolver {
	return func(token string) (op Operand, err error) {
		token = strings.TrimSpace(token)
		value, perr := strconv.ParseInt(token, 0, 64)
		if perr != nil {
			err = ErrParseNumber(token)
			return
		}

		op = Operand{Kind: OPERAND_IMM, Word: machine.Word(value)}
		return
	}
}

// RegisterOperand returns a resolver for register references.
func RegisterOperand(resolve RegisterResolver) Resolver {
	return func(token string) (op Operand, err error) {
		reg, err := resolve(token)
		if err != nil {
			return
		}

		op = Operand{Kind: OPERAND_REG, Index: reg.Index()}
		return
	}
}

// reMemory matches a memory cell descriptor, m[<digits>].
var reMemory = regexp.MustCompile(`^m\[([0-9]+)\]$`)

// MemoryOperand returns a resolver for memory cell references,
// bounds-checked against the memory unit.
func MemoryOperand(mem *machine.Memory) Resolver {
	return func(token string) (op Operand, err error) {
		match := reMemory.FindStringSubmatch(strings.TrimSpace(token))
		if match == nil {
			err = ErrParseMemory(token)
			return
		}

		index, perr := strconv.Atoi(match[1])
		if perr != nil || index >= mem.Size() {
			err = errors.Join(machine.ErrMemory, machine.ErrMemoryRange(index))
			return
		}

		op = Operand{Kind: OPERAND_MEM, Index: index}
		return
	}
}
