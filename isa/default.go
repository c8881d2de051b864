package isa

import (
	"github.com/ezrec/isasim/machine"
)

// Default builds the reference instruction set: mov, add, sub, ld.
// It is configuration data for the engine, not engine logic; a custom
// BuildFunc may replace it wholesale.
func Default(resolve RegisterResolver, mem *machine.Memory) (table *Table) {
	table = NewTable()

	imm := ImmediateOperand()
	reg := RegisterOperand(resolve)
	cell := MemoryOperand(mem)

	// Every source of a two-operand instruction may be a literal or a
	// register; variants are tried in this order.
	binary := [](SyntaxVariant){
		{{ROLE_SRC1, reg}, {ROLE_SRC2, reg}, {ROLE_DEST, reg}},
		{{ROLE_SRC1, reg}, {ROLE_SRC2, imm}, {ROLE_DEST, reg}},
		{{ROLE_SRC1, imm}, {ROLE_SRC2, reg}, {ROLE_DEST, reg}},
		{{ROLE_SRC1, imm}, {ROLE_SRC2, imm}, {ROLE_DEST, reg}},
	}

	table.Register(&Descriptor{
		Mnemonic: "mov",
		Describe: "copy a literal or register value into a register",
		Variants: []SyntaxVariant{
			{{ROLE_SRC1, imm}, {ROLE_DEST, reg}},
			{{ROLE_SRC1, reg}, {ROLE_DEST, reg}},
		},
		Eval: func(src1, src2 Value) (machine.Word, error) {
			if !src1.OK {
				return 0, ErrOperandMissing
			}
			return src1.Word, nil
		},
	})

	table.Register(&Descriptor{
		Mnemonic: "add",
		Describe: "add two values into a register",
		Variants: binary,
		Eval: func(src1, src2 Value) (machine.Word, error) {
			if !src1.OK || !src2.OK {
				return 0, ErrOperandMissing
			}
			return src1.Word + src2.Word, nil
		},
	})

	table.Register(&Descriptor{
		Mnemonic: "sub",
		Describe: "subtract the second value from the first into a register",
		Variants: binary,
		Eval: func(src1, src2 Value) (machine.Word, error) {
			if !src1.OK || !src2.OK {
				return 0, ErrOperandMissing
			}
			return src1.Word - src2.Word, nil
		},
	})

	table.Register(&Descriptor{
		Mnemonic: "ld",
		Describe: "load a memory cell into a register",
		Variants: []SyntaxVariant{
			{{ROLE_SRC1, cell}, {ROLE_DEST, reg}},
		},
		Eval: func(src1, src2 Value) (machine.Word, error) {
			if !src1.OK {
				return 0, ErrOperandMissing
			}
			return src1.Word, nil
		},
	})

	return
}
