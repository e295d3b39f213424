// Package memory defines the flat 64 KiB address space the 65C02 core
// operates against. It has no notion of ROM, RAM or memory-mapped I/O;
// callers that need those distinctions layer them on top of Read/Write.
package memory

import "fmt"

// Size is the width of the 65C02's address bus: exactly 64 KiB, no banking.
const Size = 0x10000

// Op distinguishes which operation overflowed, for error messages and
// programmatic matching.
type Op int

const (
	// OpRead identifies a failed read.
	OpRead Op = iota
	// OpWrite identifies a failed write.
	OpWrite
)

func (o Op) String() string {
	if o == OpWrite {
		return "write"
	}
	return "read"
}

// OverflowError is returned whenever a read or write would walk past the
// top of the 64 KiB address space. Addressing-mode arithmetic never
// produces this error; it wraps instead (see cpu.Resolve).
type OverflowError struct {
	Op      Op
	Addr    int
	Len     int
	Total   int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("memory: %s overflow at $%04X len %d exceeds %d bytes of address space", e.Op, e.Addr, e.Len, e.Total)
}

// Memory is a flat, linear 64 KiB buffer of bytes.
type Memory struct {
	bytes [Size]byte
}

// New returns a zeroed 64 KiB memory.
func New() *Memory {
	return &Memory{}
}

// NewFromImage returns a memory seeded with image, left-aligned at address
// zero. image must not be longer than Size bytes.
func NewFromImage(image []byte) (*Memory, error) {
	m := &Memory{}
	if err := m.Write(0, image); err != nil {
		return nil, err
	}
	return m, nil
}

// Read returns a copy of len consecutive bytes starting at addr. It fails
// with an *OverflowError if addr+len would exceed the address space.
func (m *Memory) Read(addr int, len int) ([]byte, error) {
	if addr < 0 || len < 0 || addr+len > Size {
		return nil, &OverflowError{Op: OpRead, Addr: addr, Len: len, Total: Size}
	}
	out := make([]byte, len)
	copy(out, m.bytes[addr:addr+len])
	return out, nil
}

// ReadByte is a convenience wrapper around Read for single-byte fetches.
// addr is a uint16, so it always lies inside the address space and the
// fetch cannot fail.
func (m *Memory) ReadByte(addr uint16) byte {
	return m.bytes[addr]
}

// WriteByte is a convenience wrapper around Write for single-byte stores.
func (m *Memory) WriteByte(addr uint16, b byte) {
	m.bytes[addr] = b
}

// Write overwrites len(data) bytes starting at addr. It fails with an
// *OverflowError if addr+len(data) would exceed the address space.
func (m *Memory) Write(addr int, data []byte) error {
	if addr < 0 || addr+len(data) > Size {
		return &OverflowError{Op: OpWrite, Addr: addr, Len: len(data), Total: Size}
	}
	copy(m.bytes[addr:addr+len(data)], data)
	return nil
}
