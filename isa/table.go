// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/ezrec/isasim/machine"
)

// Operand role names used by the reference instruction set.
const (
	ROLE_SRC1 = "src1"
	ROLE_SRC2 = "src2"
	ROLE_DEST = "dest"
)

// Role binds one operand-role name to its resolver.
type Role struct {
	Name    string
	Resolve Resolver
}

// SyntaxVariant is one accepted operand shape for a mnemonic: an
// ordered list of roles, one per comma-separated operand. The role
// named ROLE_DEST is the write target; all other roles are sources,
// in declaration order.
type SyntaxVariant []Role

// EvalRule is the pure computation of an instruction: up to two
// dereferenced source values in, one result out.
type EvalRule func(src1, src2 Value) (machine.Word, error)

// Descriptor describes one mnemonic of the instruction set.
type Descriptor struct {
	Mnemonic string          // Instruction name, matched exactly.
	Describe string          // Human description.
	Variants []SyntaxVariant // Accepted operand shapes, tried in order.
	Eval     EvalRule        // Evaluation rule.
}

// Decoded is the fully resolved, ready-to-evaluate form of one
// program line. The syntax variant that produced it is not
// observable after decode.
type Decoded struct {
	Mnemonic string
	Line     string    // Program text the instruction came from.
	Eval     EvalRule
	Src      []Operand // Source operands, in role order; at most two.
	Dest     Operand   // Destination; always OPERAND_REG.
}

// String renders the decoded instruction in program-text form.
func (inst *Decoded) String() string {
	operands := make([]string, 0, len(inst.Src)+1)
	for _, op := range inst.Src {
		operands = append(operands, op.String())
	}
	operands = append(operands, inst.Dest.String())

	return fmt.Sprintf("%v %v", inst.Mnemonic, strings.Join(operands, ", "))
}

// BuildFunc constructs an ISA table. It is invoked once, at processor
// construction, with the register-descriptor resolver and the memory
// unit as the operand-resolution capabilities.
type BuildFunc func(resolve RegisterResolver, mem *machine.Memory) *Table

// Table is the declarative catalog of instruction descriptors.
// New mnemonics are added by extending the table; the decoder has no
// per-mnemonic logic.
type Table struct {
	descriptors map[string]*Descriptor
	mnemonics   []string
}

// NewTable creates an empty instruction catalog.
func NewTable() *Table {
	return &Table{
		descriptors: make(map[string]*Descriptor),
	}
}

// Register adds a descriptor to the catalog. The descriptor must have
// an evaluation rule, and every variant must carry exactly one
// ROLE_DEST role and at most two source roles; violations panic, as
// ISA construction is not a runtime input.
func (table *Table) Register(desc *Descriptor) {
	if desc.Eval == nil {
		panic(fmt.Sprintf("isa: %v: no evaluation rule", desc.Mnemonic))
	}
	for _, variant := range desc.Variants {
		var dests, srcs int
		for _, role := range variant {
			if role.Resolve == nil {
				panic(fmt.Sprintf("isa: %v: role %v: no resolver", desc.Mnemonic, role.Name))
			}
			if role.Name == ROLE_DEST {
				dests++
			} else {
				srcs++
			}
		}
		if dests != 1 || srcs > 2 {
			panic(fmt.Sprintf("isa: %v: bad variant shape", desc.Mnemonic))
		}
	}

	if _, ok := table.descriptors[desc.Mnemonic]; !ok {
		table.mnemonics = append(table.mnemonics, desc.Mnemonic)
	}
	table.descriptors[desc.Mnemonic] = desc
}

// Lookup finds a descriptor by exact mnemonic match.
func (table *Table) Lookup(mnemonic string) (desc *Descriptor, ok bool) {
	desc, ok = table.descriptors[mnemonic]
	return
}

// Mnemonics returns all registered mnemonics, in registration order.
func (table *Table) Mnemonics() []string {
	return slices.Clone(table.mnemonics)
}

// Decode resolves one raw program line into a Decoded instruction.
// All matching state is local to this call.
func (table *Table) Decode(line string) (inst *Decoded, err error) {
	text := strings.TrimSpace(line)
	if len(text) == 0 {
		err = ErrIllegal(line)
		return
	}

	mnemonic := text
	rest := ""
	if n := strings.IndexAny(text, " \t"); n >= 0 {
		mnemonic = text[:n]
		rest = strings.TrimSpace(text[n+1:])
	}

	desc, ok := table.descriptors[mnemonic]
	if !ok {
		err = ErrNotSupported(mnemonic)
		return
	}

	var tokens []string
	if len(rest) != 0 {
		tokens = strings.Split(rest, ",")
	}

	var reject error
	for _, variant := range desc.Variants {
		if len(variant) != len(tokens) {
			continue
		}

		candidate, verr := resolveVariant(desc, variant, tokens)
		if verr != nil {
			if reject == nil {
				reject = verr
			}
			continue
		}

		candidate.Line = text
		inst = candidate
		return
	}

	err = ErrIllegal(text)
	if reject != nil {
		err = errors.Join(err, reject)
	}

	return
}

// resolveVariant resolves every role of one candidate variant, in role
// order. Any resolver failure rejects the whole variant.
func resolveVariant(desc *Descriptor, variant SyntaxVariant, tokens []string) (inst *Decoded, err error) {
	inst = &Decoded{
		Mnemonic: desc.Mnemonic,
		Eval:     desc.Eval,
	}

	for n, role := range variant {
		var op Operand
		op, err = role.Resolve(tokens[n])
		if err != nil {
			inst = nil
			return
		}

		if role.Name == ROLE_DEST {
			if op.Kind != OPERAND_REG {
				err = ErrTargetInvalid
				inst = nil
				return
			}
			inst.Dest = op
		} else {
			inst.Src = append(inst.Src, op)
		}
	}

	return
}
