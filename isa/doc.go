// Package isa implements the declarative instruction catalog and the
// decoder of the simulator.
//
// A Table is built once, from Descriptors. Each Descriptor names a
// mnemonic, an ordered list of syntax variants, and a pure evaluation
// rule. A syntax variant maps operand roles to resolvers that turn
// operand text into tagged Operand values: numeric literals, register
// references, or memory references. Decoding tries variants in
// declaration order and the first fully resolved one wins, so all
// ambiguity resolution lives in the table, not in the engine.
//
// Resolution is pure parsing; dereferencing a register or memory
// reference to its current value is done by the execution engine at
// evaluation time.
package isa
