package lib

type AddressingMode int

const (
    ModeImplied AddressingMode = iota
    ModeAccumulator
    ModeImmediate
    ModeZeroPage
    ModeZeroPageX
    ModeZeroPageY
    ModeAbsolute
    ModeAbsoluteX
    ModeAbsoluteY
    ModeRelative
    ModeIndirect
    ModeIndirectX
    ModeIndirectY
)

func (mode AddressingMode) String() string {
    switch mode {
        case ModeImplied: return "implied"
        case ModeAccumulator: return "accumulator"
        case ModeImmediate: return "immediate"
        case ModeZeroPage: return "zeropage"
        case ModeZeroPageX: return "zeropage,x"
        case ModeZeroPageY: return "zeropage,y"
        case ModeAbsolute: return "absolute"
        case ModeAbsoluteX: return "absolute,x"
        case ModeAbsoluteY: return "absolute,y"
        case ModeRelative: return "relative"
        case ModeIndirect: return "indirect"
        case ModeIndirectX: return "indirect,x"
        case ModeIndirectY: return "indirect,y"
    }
    return "unknown"
}

/* how many bytes an instruction with this mode occupies, opcode included */
func (mode AddressingMode) Length() uint16 {
    switch mode {
        case ModeImplied, ModeAccumulator:
            return 1
        case ModeImmediate, ModeZeroPage, ModeZeroPageX, ModeZeroPageY,
             ModeRelative, ModeIndirectX, ModeIndirectY:
            return 2
        case ModeAbsolute, ModeAbsoluteX, ModeAbsoluteY, ModeIndirect:
            return 3
    }
    return 1
}

/* everything a handler needs to know about its operand once the
 * addressing work is done
 */
type Operand struct {
    Mode AddressingMode
    /* address of the opcode itself, for jsr/brk return math */
    OpcodePC uint16
    /* effective address for modes that have one. for relative mode this
     * is the branch target */
    Address uint16
    HasAddress bool
    /* the literal byte for immediate mode */
    Immediate byte
    PageCross bool
}

func samePage(a uint16, b uint16) bool {
    return (a >> 8) == (b >> 8)
}

/* resolveOperand performs the addressing phase of an instruction,
 * issuing the same bus traffic the real chip would. the dummy reads of
 * indexed addressing matter to peripherals that notice being read, so
 * they happen even though the values are thrown away:
 *
 *  - zeropage,x/y read the unindexed location while the index is added
 *  - absolute,x/y and (zp),y read from the partially computed address,
 *    the one with the carry not yet applied to the high byte, whenever
 *    the chip needs the fixup cycle: always for stores and
 *    read-modify-writes, on a page crossing for reads
 *  - (zp,x) reads the pointer byte before indexing
 */
func (cpu *CPUState) resolveOperand(entry *Opcode) (Operand, error) {
    operand := Operand{
        Mode: entry.Mode,
        OpcodePC: cpu.PC,
    }

    switch entry.Mode {
        case ModeImplied, ModeAccumulator:
            return operand, nil

        case ModeImmediate:
            value, err := cpu.LoadMemory(cpu.PC + 1)
            if err != nil {
                return operand, err
            }
            operand.Immediate = value
            return operand, nil

        case ModeZeroPage:
            zero, err := cpu.LoadMemory(cpu.PC + 1)
            if err != nil {
                return operand, err
            }
            operand.Address = uint16(zero)
            operand.HasAddress = true
            return operand, nil

        case ModeZeroPageX, ModeZeroPageY:
            zero, err := cpu.LoadMemory(cpu.PC + 1)
            if err != nil {
                return operand, err
            }
            /* the chip reads the unindexed location while adding the index */
            _, err = cpu.LoadMemory(uint16(zero))
            if err != nil {
                return operand, err
            }
            index := cpu.X
            if entry.Mode == ModeZeroPageY {
                index = cpu.Y
            }
            /* keeping the sum in a byte wraps it within page zero */
            operand.Address = uint16(zero + index)
            operand.HasAddress = true
            return operand, nil

        case ModeAbsolute:
            address, err := cpu.loadAbsolute(cpu.PC + 1)
            if err != nil {
                return operand, err
            }
            operand.Address = address
            operand.HasAddress = true
            return operand, nil

        case ModeAbsoluteX, ModeAbsoluteY:
            base, err := cpu.loadAbsolute(cpu.PC + 1)
            if err != nil {
                return operand, err
            }
            index := cpu.X
            if entry.Mode == ModeAbsoluteY {
                index = cpu.Y
            }
            full := base + uint16(index)
            operand.Address = full
            operand.HasAddress = true
            operand.PageCross = !samePage(base, full)
            err = cpu.indexedDummyRead(entry, base, full, operand.PageCross)
            if err != nil {
                return operand, err
            }
            return operand, nil

        case ModeRelative:
            offset, err := cpu.LoadMemory(cpu.PC + 1)
            if err != nil {
                return operand, err
            }
            /* the offset is relative to the instruction after the branch */
            after := cpu.PC + 2
            target := after + uint16(int16(int8(offset)))
            operand.Address = target
            operand.HasAddress = true
            operand.PageCross = !samePage(after, target)
            return operand, nil

        case ModeIndirect:
            pointer, err := cpu.loadAbsolute(cpu.PC + 1)
            if err != nil {
                return operand, err
            }
            low, err := cpu.LoadMemory(pointer)
            if err != nil {
                return operand, err
            }
            /* the infamous jmp ($xxff) defect: the high byte of the
             * pointer never increments, so the second fetch comes from
             * the start of the same page instead of the next one.
             * software depends on this, it must not be corrected.
             */
            highAddress := pointer + 1
            if pointer & 0xff == 0xff {
                highAddress = pointer & 0xff00
            }
            high, err := cpu.LoadMemory(highAddress)
            if err != nil {
                return operand, err
            }
            operand.Address = (uint16(high) << 8) | uint16(low)
            operand.HasAddress = true
            return operand, nil

        case ModeIndirectX:
            zero, err := cpu.LoadMemory(cpu.PC + 1)
            if err != nil {
                return operand, err
            }
            /* dummy read of the pointer byte before indexing */
            _, err = cpu.LoadMemory(uint16(zero))
            if err != nil {
                return operand, err
            }
            /* the pointer lives entirely in page zero, both the index
             * sum and the high byte fetch wrap within it */
            low, err := cpu.LoadMemory(uint16(zero + cpu.X))
            if err != nil {
                return operand, err
            }
            high, err := cpu.LoadMemory(uint16(zero + cpu.X + 1))
            if err != nil {
                return operand, err
            }
            operand.Address = (uint16(high) << 8) | uint16(low)
            operand.HasAddress = true
            return operand, nil

        case ModeIndirectY:
            zero, err := cpu.LoadMemory(cpu.PC + 1)
            if err != nil {
                return operand, err
            }
            low, err := cpu.LoadMemory(uint16(zero))
            if err != nil {
                return operand, err
            }
            /* zero+1 stays a byte so the pointer wraps within page zero */
            high, err := cpu.LoadMemory(uint16(zero + 1))
            if err != nil {
                return operand, err
            }
            base := (uint16(high) << 8) | uint16(low)
            full := base + uint16(cpu.Y)
            operand.Address = full
            operand.HasAddress = true
            operand.PageCross = !samePage(base, full)
            err = cpu.indexedDummyRead(entry, base, full, operand.PageCross)
            if err != nil {
                return operand, err
            }
            return operand, nil
    }

    return operand, nil
}

func (cpu *CPUState) loadAbsolute(address uint16) (uint16, error) {
    low, err := cpu.LoadMemory(address)
    if err != nil {
        return 0, err
    }
    high, err := cpu.LoadMemory(address + 1)
    if err != nil {
        return 0, err
    }
    return (uint16(high) << 8) | uint16(low), nil
}

/* the read from the partially computed address, high byte not yet fixed
 * up. stores and read-modify-writes always perform it, reads only when
 * the page actually crossed.
 */
func (cpu *CPUState) indexedDummyRead(entry *Opcode, base uint16, full uint16, crossed bool) error {
    mixed := (base & 0xff00) | (full & 0x00ff)
    switch entry.Class {
        case ClassWrite, ClassModify:
            _, err := cpu.LoadMemory(mixed)
            return err
        case ClassRead:
            if crossed {
                _, err := cpu.LoadMemory(mixed)
                return err
            }
    }
    return nil
}
