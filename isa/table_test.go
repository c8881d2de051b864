package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/isasim/machine"
)

// probeTable builds a single-mnemonic table whose first variant takes
// a literal source and whose second takes a register source.
func probeTable(rf *machine.RegisterFile) *Table {
	table := NewTable()

	imm := ImmediateOperand()
	reg := RegisterOperand(rf.ByDescriptor)

	table.Register(&Descriptor{
		Mnemonic: "probe",
		Describe: "copy the source into a register",
		Variants: []SyntaxVariant{
			{{ROLE_SRC1, imm}, {ROLE_DEST, reg}},
			{{ROLE_SRC1, reg}, {ROLE_DEST, reg}},
		},
		Eval: func(src1, src2 Value) (machine.Word, error) {
			return src1.Word, nil
		},
	})

	return table
}

func TestTable_Decode_VariantOrder(t *testing.T) {
	assert := assert.New(t)

	rf := machine.NewRegisterFile(2)
	table := probeTable(rf)

	// A literal source selects the first variant.
	inst, err := table.Decode("probe 5, r[0]")
	assert.NoError(err)
	assert.Equal("probe", inst.Mnemonic)
	assert.Equal(OPERAND_IMM, inst.Src[0].Kind)
	assert.Equal(machine.Word(5), inst.Src[0].Word)
	assert.Equal(OPERAND_REG, inst.Dest.Kind)
	assert.Equal(0, inst.Dest.Index)

	// Rejecting the first variant falls through to the second.
	inst, err = table.Decode("probe r[1], r[0]")
	assert.NoError(err)
	assert.Equal(OPERAND_REG, inst.Src[0].Kind)
	assert.Equal(1, inst.Src[0].Index)
}

func TestTable_Decode_Deterministic(t *testing.T) {
	assert := assert.New(t)

	rf := machine.NewRegisterFile(2)
	table := probeTable(rf)

	first, err := table.Decode("probe r[1], r[0]")
	assert.NoError(err)
	second, err := table.Decode("probe r[1], r[0]")
	assert.NoError(err)
	assert.Equal(first, second)
}

func TestTable_Decode_NoMnemonic(t *testing.T) {
	assert := assert.New(t)

	rf := machine.NewRegisterFile(2)
	table := probeTable(rf)

	for _, line := range []string{"", "   ", "\t"} {
		_, err := table.Decode(line)
		assert.ErrorIs(err, ErrIllegal(""), "%q", line)
	}
}

func TestTable_Decode_NotSupported(t *testing.T) {
	assert := assert.New(t)

	rf := machine.NewRegisterFile(2)
	table := probeTable(rf)

	_, err := table.Decode("xyz 1, r[0]")
	assert.ErrorIs(err, ErrNotSupported(""))
	assert.ErrorContains(err, "xyz")
}

func TestTable_Decode_OperandCount(t *testing.T) {
	assert := assert.New(t)

	rf := machine.NewRegisterFile(2)
	table := probeTable(rf)

	// No variant accepts these shapes.
	for _, line := range []string{"probe", "probe 5", "probe 5, r[0], r[1]"} {
		_, err := table.Decode(line)
		assert.ErrorIs(err, ErrIllegal(""), line)
	}
}

func TestTable_Decode_RegisterRange(t *testing.T) {
	assert := assert.New(t)

	rf := machine.NewRegisterFile(2)
	table := probeTable(rf)

	_, err := table.Decode("probe 5, r[99]")
	assert.ErrorIs(err, ErrIllegal(""))
	assert.ErrorIs(err, machine.ErrRegisterFile)
}

func TestTable_Decode_DestMustBeRegister(t *testing.T) {
	assert := assert.New(t)

	imm := ImmediateOperand()

	table := NewTable()
	table.Register(&Descriptor{
		Mnemonic: "bad",
		Variants: []SyntaxVariant{
			{{ROLE_SRC1, imm}, {ROLE_DEST, imm}},
		},
		Eval: func(src1, src2 Value) (machine.Word, error) {
			return src1.Word, nil
		},
	})

	_, err := table.Decode("bad 5, 6")
	assert.ErrorIs(err, ErrIllegal(""))
	assert.ErrorIs(err, ErrTargetInvalid)
}

func TestTable_Register_Validation(t *testing.T) {
	assert := assert.New(t)

	imm := ImmediateOperand()
	eval := func(src1, src2 Value) (machine.Word, error) { return 0, nil }

	// No evaluation rule.
	assert.Panics(func() {
		NewTable().Register(&Descriptor{Mnemonic: "nop"})
	})

	// A variant without a destination role.
	assert.Panics(func() {
		NewTable().Register(&Descriptor{
			Mnemonic: "nop",
			Variants: []SyntaxVariant{{{ROLE_SRC1, imm}}},
			Eval:     eval,
		})
	})

	// More than two source roles.
	assert.Panics(func() {
		NewTable().Register(&Descriptor{
			Mnemonic: "nop",
			Variants: []SyntaxVariant{
				{{ROLE_SRC1, imm}, {ROLE_SRC2, imm}, {"src3", imm}, {ROLE_DEST, imm}},
			},
			Eval: eval,
		})
	})

	// A role without a resolver.
	assert.Panics(func() {
		NewTable().Register(&Descriptor{
			Mnemonic: "nop",
			Variants: []SyntaxVariant{{{ROLE_DEST, nil}}},
			Eval:     eval,
		})
	})
}

func TestTable_Lookup(t *testing.T) {
	assert := assert.New(t)

	rf := machine.NewRegisterFile(2)
	table := probeTable(rf)

	desc, ok := table.Lookup("probe")
	assert.True(ok)
	assert.Equal("probe", desc.Mnemonic)

	_, ok = table.Lookup("xyz")
	assert.False(ok)

	assert.Equal([]string{"probe"}, table.Mnemonics())
}

func TestDecoded_String(t *testing.T) {
	assert := assert.New(t)

	rf := machine.NewRegisterFile(2)
	table := probeTable(rf)

	inst, err := table.Decode("probe  5 ,  r[1]")
	assert.NoError(err)
	assert.Equal("probe 5, r[1]", inst.String())
}
