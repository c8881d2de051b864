package machine

import (
	"errors"
	"slices"
)

// Memory is a fixed-size array of Word cells with bounds-checked
// access. The size is fixed at construction. Unwritten cells read
// as zero.
type Memory struct {
	cells []Word
}

// NewMemory creates a memory unit with size cells.
func NewMemory(size int) (mem *Memory) {
	mem = &Memory{
		cells: make([]Word, size),
	}

	return
}

// Size returns the number of cells.
func (mem *Memory) Size() int {
	return len(mem.cells)
}

// Read returns the value at cell index.
func (mem *Memory) Read(index int) (word Word, err error) {
	if index < 0 || index >= len(mem.cells) {
		err = errors.Join(ErrMemory, ErrMemoryRange(index))
		return
	}

	word = mem.cells[index]
	return
}

// Write stores word at cell index.
func (mem *Memory) Write(index int, word Word) (err error) {
	if index < 0 || index >= len(mem.cells) {
		err = errors.Join(ErrMemory, ErrMemoryRange(index))
		return
	}

	mem.cells[index] = word
	return
}

// Snapshot returns a copy of all cell values.
func (mem *Memory) Snapshot() (words []Word) {
	return slices.Clone(mem.cells)
}

// Reset zeroes every cell.
func (mem *Memory) Reset() {
	clear(mem.cells)
}
