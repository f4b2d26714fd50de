package lib

/* Decimal mode packs one bcd digit per nibble. The nmos chip computes
 * flags at odd points in the correction sequence and software written
 * for real silicon depends on exactly that, so the quirks are kept:
 * zero comes from the uncorrected binary sum, negative and overflow are
 * sampled after the low nibble correction but before the high one, and
 * subtraction takes all of its flags from the plain binary result.
 *
 * "Flags on Decimal mode in the NMOS 6502" by Jorge Cwik covers the
 * details.
 */

func (cpu *CPUState) doAdcDecimal(value byte) {
    var carryBit uint16
    if cpu.GetCarryFlag() {
        carryBit = 1
    }

    binary := uint16(cpu.A) + uint16(value) + carryBit
    cpu.SetZeroFlag(byte(binary) == 0)

    low := uint16(cpu.A & 0x0f) + uint16(value & 0x0f) + carryBit
    high := uint16(cpu.A >> 4) + uint16(value >> 4)
    if low > 9 {
        low += 6
    }
    if low > 0x0f {
        high += 1
    }

    cpu.SetNegativeFlag(high & 0x8 == 0x8)
    partial := byte(high << 4)
    cpu.SetOverflowFlag((cpu.A ^ value) & 0x80 == 0 && (cpu.A ^ partial) & 0x80 != 0)

    if high > 9 {
        high += 6
    }
    cpu.SetCarryFlag(high > 0x0f)

    cpu.A = byte((high << 4) | (low & 0x0f))
}

func (cpu *CPUState) doSbcDecimal(value byte) {
    var borrow int16
    if !cpu.GetCarryFlag() {
        borrow = 1
    }

    /* every flag comes from the binary subtraction, only the stored
     * result gets the bcd correction */
    binary := int16(cpu.A) - int16(value) - borrow
    full := int16(int8(cpu.A)) - int16(int8(value)) - borrow
    cpu.SetCarryFlag(binary >= 0)
    cpu.SetOverflowFlag(full >= 128 || full <= -129)
    cpu.SetNegativeFlag(int8(byte(binary)) < 0)
    cpu.SetZeroFlag(byte(binary) == 0)

    low := int16(cpu.A & 0x0f) - int16(value & 0x0f) - borrow
    high := int16(cpu.A >> 4) - int16(value >> 4)
    if low < 0 {
        low -= 6
        high -= 1
    }
    if high < 0 {
        high -= 6
    }

    cpu.A = byte((high << 4) | (low & 0x0f))
}
