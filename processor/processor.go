// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package processor implements the execution engine: program loading,
// the fetch-decode-execute loop, the run state machine, and the
// lifecycle observation hooks.
package processor

import (
	"bufio"
	"errors"
	"iter"
	"log"
	"maps"
	"strings"

	"github.com/ezrec/isasim/internal"
	"github.com/ezrec/isasim/isa"
	"github.com/ezrec/isasim/machine"
)

// Line is one non-blank program line. Blank and whitespace-only
// source lines never become Lines.
type Line struct {
	LineNo int    // 1-based line number in the source text.
	Text   string // Preprocessed instruction text.

	err error // Deferred preprocessing failure, surfaced on execution.
}

// Run states. The processor starts unloaded, and returns to unloaded
// on both completion and error.
type runState int

const (
	STATE_UNLOADED = runState(0)
	STATE_LOADED   = runState(1)
	STATE_RUNNING  = runState(2)
)

// Processor owns the register file, memory unit, program counter, and
// instruction catalog, and drives the fetch-decode-execute loop.
//
// The On* hooks are pure observation points, invoked synchronously by
// the engine at well-defined moments: after Load, after each
// successful decode, after each executed instruction, after a fully
// successful run, and whenever a failure aborts a run. They default
// to no-ops and are independently replaceable; engine behavior does
// not depend on them.
type Processor struct {
	Verbose bool // Set to enable verbose logging.

	OnLoad     func(program []Line, regs *machine.RegisterFile, mem *machine.Memory)
	OnDecode   func(inst *isa.Decoded)
	OnStep     func(inst *isa.Decoded, regs *machine.RegisterFile, mem *machine.Memory)
	OnComplete func(regs *machine.RegisterFile, mem *machine.Memory)
	OnError    func(desc string)

	regs  *machine.RegisterFile
	mem   *machine.Memory
	table *isa.Table

	program []Line
	pc      int
	state   runState

	predefine map[string]string
	equate    map[string]string
}

// New creates a processor from the three configuration inputs: an
// ISA-building function, a register count, and a memory size. The
// build function is invoked once, with the register-descriptor
// resolver and the memory unit.
func New(build isa.BuildFunc, regCount int, memSize int) (proc *Processor) {
	proc = &Processor{
		regs: machine.NewRegisterFile(regCount),
		mem:  machine.NewMemory(memSize),
	}
	proc.table = build(proc.regs.ByDescriptor, proc.mem)

	proc.OnLoad = func([]Line, *machine.RegisterFile, *machine.Memory) {}
	proc.OnDecode = func(*isa.Decoded) {}
	proc.OnStep = func(*isa.Decoded, *machine.RegisterFile, *machine.Memory) {}
	proc.OnComplete = func(*machine.RegisterFile, *machine.Memory) {}
	proc.OnError = func(string) {}

	return
}

// Registers returns the processor's register file, for inspection.
func (proc *Processor) Registers() *machine.RegisterFile {
	return proc.regs
}

// Memory returns the processor's memory unit, for inspection.
func (proc *Processor) Memory() *machine.Memory {
	return proc.mem
}

// Table returns the instruction catalog.
func (proc *Processor) Table() *isa.Table {
	return proc.table
}

// Loaded reports whether a program is currently loaded.
func (proc *Processor) Loaded() bool {
	return proc.state != STATE_UNLOADED
}

// Predefine defines a new equate or redefines an existing equate,
// visible to every subsequently loaded program.
func (proc *Processor) Predefine(equ string, value string) {
	if proc.predefine == nil {
		proc.predefine = map[string]string{equ: value}
	} else {
		proc.predefine[equ] = value
	}
}

// Defines returns an iterator over the system and predefined equates.
func (proc *Processor) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(proc.sysEquate()), maps.All(proc.predefine))
}

// Load splits program text into lines, discards blank and
// whitespace-only lines, preprocesses the rest, and stores the result
// as the current program with the program counter at zero. Any
// previously loaded program is discarded, regardless of its outcome.
//
// Load never fails; a line that fails to preprocess aborts the run
// through the normal error path only when execution reaches it.
func (proc *Processor) Load(text string) *Processor {
	proc.equate = proc.sysEquate()
	maps.Copy(proc.equate, proc.predefine)

	var program []Line

	scanner := bufio.NewScanner(strings.NewReader(text))
	var lineno int
	for scanner.Scan() {
		lineno++

		line, err := proc.expandLine(scanner.Text(), lineno)
		if len(line) == 0 && err == nil {
			continue
		}

		if proc.Verbose {
			log.Printf("load: %v: %v", lineno, line)
		}
		program = append(program, Line{LineNo: lineno, Text: line, err: err})
	}

	proc.program = program
	proc.pc = 0
	proc.state = STATE_LOADED

	proc.OnLoad(program, proc.regs, proc.mem)

	return proc
}

// Exec runs the loaded program to completion, one instruction at a
// time. On any failure the run stops immediately (prior register
// writes are not rolled back), the error observation fires with the
// formatted description, and the processor fully resets to the
// unloaded state; the failure is returned. A nil return is the
// success status, mirrored by the program-complete observation.
//
// Register and memory contents persist across runs; a reset clears
// only the program, the program counter, and the run state.
func (proc *Processor) Exec() (err error) {
	defer func() {
		if err != nil {
			proc.OnError(err.Error())
			proc.reset()
		}
	}()

	if proc.state != STATE_LOADED {
		err = ErrNotLoaded
		return
	}
	proc.state = STATE_RUNNING

	for proc.pc < len(proc.program) {
		line := proc.program[proc.pc]

		err = proc.step(line)
		if err != nil {
			err = &ErrRun{LineNo: line.LineNo, Line: line.Text, Err: err}
			return
		}
	}

	proc.reset()
	proc.OnComplete(proc.regs, proc.mem)

	return
}

// step executes the single instruction at the program counter:
// decode, evaluate, write the destination, advance, observe.
func (proc *Processor) step(line Line) (err error) {
	if line.err != nil {
		err = errors.Join(isa.ErrIllegal(line.Text), line.err)
		return
	}

	inst, err := proc.table.Decode(line.Text)
	if err != nil {
		return
	}

	proc.OnDecode(inst)

	if proc.Verbose {
		log.Printf("%3d: %v", proc.pc, inst)
	}

	result, err := proc.evaluate(inst)
	if err != nil {
		return
	}

	reg, err := proc.regs.ByIndex(inst.Dest.Index)
	if err != nil {
		return
	}
	reg.Write(result)

	proc.pc++
	proc.OnStep(inst, proc.regs, proc.mem)

	return
}

// evaluate dereferences the source operands to their current values
// and applies the instruction's evaluation rule. An absent optional
// second source is passed as the no-value sentinel.
func (proc *Processor) evaluate(inst *isa.Decoded) (result machine.Word, err error) {
	var src [2]isa.Value

	for n, op := range inst.Src {
		var word machine.Word
		switch op.Kind {
		case isa.OPERAND_IMM:
			word = op.Word
		case isa.OPERAND_REG:
			var reg *machine.Register
			reg, err = proc.regs.ByIndex(op.Index)
			if err != nil {
				return
			}
			word = reg.Read()
		case isa.OPERAND_MEM:
			word, err = proc.mem.Read(op.Index)
			if err != nil {
				return
			}
		}
		src[n] = isa.Value{Word: word, OK: true}
	}

	return inst.Eval(src[0], src[1])
}

// reset returns the processor to the unloaded state. Register and
// memory contents persist.
func (proc *Processor) reset() {
	proc.program = nil
	proc.pc = 0
	proc.state = STATE_UNLOADED
}
