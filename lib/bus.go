package lib

import (
    "fmt"
)

/* The cpu owns no memory of its own. Every access goes through this
 * interface in the same order and count as the pins of the real chip,
 * including the dummy reads and writes of indexed and read-modify-write
 * addressing. Peripheral emulation behind the bus may depend on access
 * side effects, not just on final values.
 *
 * A bus that cannot answer returns an error. The cpu propagates it to
 * the caller of Run without retrying, so a deterministic host sees the
 * fault at the exact access that caused it.
 */
type Bus interface {
    Read8(address uint16) (byte, error)
    Write8(address uint16, value byte) error
}

/* Memory is a flat 64k ram covering the whole address space. Useful for
 * tests and for hosts that do their own decoding elsewhere.
 */
type Memory struct {
    Data []byte
}

func NewMemory() *Memory {
    return &Memory{
        Data: make([]byte, 0x10000),
    }
}

func (memory *Memory) Read8(address uint16) (byte, error) {
    return memory.Data[address], nil
}

func (memory *Memory) Write8(address uint16, value byte) error {
    memory.Data[address] = value
    return nil
}

/* MappedMemory decodes the address space in 256-byte pages. Pages can
 * alias the same slice, which is how mirrored ram on real buses works.
 * Accessing an unmapped page is a bus fault.
 */
type MappedMemory struct {
    Maps [][]byte
}

func NewMappedMemory() *MappedMemory {
    return &MappedMemory{
        Maps: make([][]byte, 256),
    }
}

func (memory *MappedMemory) Map(location uint16, data []byte) error {
    if location & 0xff != 0 {
        return fmt.Errorf("must map on a page boundary: 0x%x", location)
    }

    if len(data) % 256 != 0 {
        return fmt.Errorf("mapping a non-page aligned memory slice: %v", len(data))
    }

    base := location >> 8
    for page := 0; page < len(data) / 256; page++ {
        use := base + uint16(page)
        if memory.Maps[use] != nil {
            return fmt.Errorf("memory is already mapped at page 0x%x", use)
        }

        memory.Maps[use] = data[page * 256:page * 256 + 256]
    }

    return nil
}

func (memory *MappedMemory) Unmap(location uint16, length uint16) error {
    if location & 0xff != 0 {
        return fmt.Errorf("expected address to be page aligned: 0x%x", location)
    }

    if length & 0xff != 0 {
        return fmt.Errorf("expected length to be page aligned: %v at 0x%x", length, location)
    }

    page := location >> 8
    pages := length >> 8

    if uint32(page) + uint32(pages) > 0x100 {
        return fmt.Errorf("cannot unmap pages past 0x100: 0x%x", page + pages)
    }

    for i := uint16(0); i < pages; i++ {
        memory.Maps[page + i] = nil
    }

    return nil
}

func (memory *MappedMemory) Read8(address uint16) (byte, error) {
    page := address >> 8
    if memory.Maps[page] == nil {
        return 0, fmt.Errorf("%w: read of unmapped memory at 0x%04x", ErrBusFault, address)
    }

    return memory.Maps[page][address & 0xff], nil
}

func (memory *MappedMemory) Write8(address uint16, value byte) error {
    page := address >> 8
    if memory.Maps[page] == nil {
        return fmt.Errorf("%w: write of unmapped memory at 0x%04x", ErrBusFault, address)
    }

    memory.Maps[page][address & 0xff] = value
    return nil
}
