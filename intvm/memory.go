package intvm

import "fmt"

// Memory is the flat, fixed-capacity address space of a machine.
type Memory []int64

// NewMemory copies program into the low addresses of a zeroed memory of the given capacity.
// The capacity is raised to the program length when smaller.
func NewMemory(capacity int, program []int64) Memory {
	mem := make(Memory, max(capacity, len(program)))
	copy(mem, program)
	return mem
}

func (m Memory) Load(addr int64) (int64, error) {
	if addr < 0 || addr >= int64(len(m)) {
		return 0, fmt.Errorf("load %d, capacity %d: %w", addr, len(m), ErrAddressOutOfRange)
	}
	return m[addr], nil
}

func (m Memory) Store(addr int64, value int64) error {
	if addr < 0 || addr >= int64(len(m)) {
		return fmt.Errorf("store %d, capacity %d: %w", addr, len(m), ErrAddressOutOfRange)
	}
	m[addr] = value
	return nil
}
