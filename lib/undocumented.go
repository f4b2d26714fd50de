package lib

/* The undocumented opcodes with stable, well understood behavior.
 * Real-world software uses a handful of these, mostly the combined
 * read-modify-write plus alu forms. They only run under the
 * IllegalUndocumented policy; the unstable ones (xaa, ahx, shx, shy,
 * tas, las) have no handler at all and always fail rather than guess.
 *
 * http://www.oxyron.de/html/opcodes02.html
 */

/* slo: shift left then or into A. carry comes from the shift */
func opSlo(cpu *CPUState, operand Operand) error {
    return cpu.modifyMemory(operand, func(value byte) byte {
        out := cpu.doAsl(value)
        carry := cpu.GetCarryFlag()
        cpu.doOrA(out)
        cpu.SetCarryFlag(carry)
        return out
    })
}

/* rla: rotate left then and into A */
func opRla(cpu *CPUState, operand Operand) error {
    return cpu.modifyMemory(operand, func(value byte) byte {
        out := cpu.doRol(value)
        carry := cpu.GetCarryFlag()
        cpu.doAnd(out)
        cpu.SetCarryFlag(carry)
        return out
    })
}

/* sre: shift right then xor into A */
func opSre(cpu *CPUState, operand Operand) error {
    return cpu.modifyMemory(operand, func(value byte) byte {
        out := cpu.doLsr(value)
        carry := cpu.GetCarryFlag()
        cpu.doEorA(out)
        cpu.SetCarryFlag(carry)
        return out
    })
}

/* rra: rotate right then add. the adc consumes the carry the rotate
 * just produced, which is the whole point of the opcode */
func opRra(cpu *CPUState, operand Operand) error {
    return cpu.modifyMemory(operand, func(value byte) byte {
        out := cpu.doRor(value)
        cpu.doAdc(out)
        return out
    })
}

/* dcp: decrement then compare */
func opDcp(cpu *CPUState, operand Operand) error {
    return cpu.modifyMemory(operand, func(value byte) byte {
        out := value - 1
        cpu.doCmp(out)
        return out
    })
}

/* isc: increment then subtract */
func opIsc(cpu *CPUState, operand Operand) error {
    return cpu.modifyMemory(operand, func(value byte) byte {
        out := value + 1
        cpu.doSbc(out)
        return out
    })
}

/* lax: load A and X together */
func opLax(cpu *CPUState, operand Operand) error {
    value, err := cpu.operandValue(operand)
    if err != nil {
        return err
    }
    cpu.loadA(value)
    cpu.loadX(value)
    return nil
}

/* sax: store A anded with X, no flags */
func opSax(cpu *CPUState, operand Operand) error {
    return cpu.StoreMemory(operand.Address, cpu.A & cpu.X)
}

/* anc: and, then copy the negative flag into carry */
func opAnc(cpu *CPUState, operand Operand) error {
    value, err := cpu.operandValue(operand)
    if err != nil {
        return err
    }
    cpu.doAnd(value)
    cpu.SetCarryFlag(cpu.GetNegativeFlag())
    return nil
}

/* alr: and, then shift A right */
func opAlr(cpu *CPUState, operand Operand) error {
    value, err := cpu.operandValue(operand)
    if err != nil {
        return err
    }
    cpu.doAnd(value)
    cpu.A = cpu.doLsr(cpu.A)
    return nil
}

/* arr: and then rotate right, with its own strange flag rules: carry
 * comes from bit 6 of the result, overflow from bit 6 xor bit 5
 */
func opArr(cpu *CPUState, operand Operand) error {
    value, err := cpu.operandValue(operand)
    if err != nil {
        return err
    }

    var carryBit byte
    if cpu.GetCarryFlag() {
        carryBit = 1
    }

    out := ((cpu.A & value) >> 1) | (carryBit << 7)
    cpu.A = out
    cpu.SetNegativeFlag(int8(out) < 0)
    cpu.SetZeroFlag(out == 0)
    cpu.SetCarryFlag((out & (1<<6)) == (1<<6))
    cpu.SetOverflowFlag(((out >> 6) ^ (out >> 5)) & 1 == 1)
    return nil
}

/* axs: X becomes (A and X) minus the operand, ignoring the carry flag
 * on the way in but setting it like a compare on the way out
 */
func opAxs(cpu *CPUState, operand Operand) error {
    value, err := cpu.operandValue(operand)
    if err != nil {
        return err
    }

    base := cpu.A & cpu.X
    out := base - value
    cpu.SetCarryFlag(base >= value)
    cpu.SetNegativeFlag(int8(out) < 0)
    cpu.SetZeroFlag(out == 0)
    cpu.X = out
    return nil
}

/* the nop variants with operands still perform their read, which can
 * matter to a peripheral sitting at the address
 */
func opNopRead(cpu *CPUState, operand Operand) error {
    _, err := cpu.operandValue(operand)
    return err
}

/* kil stops the clock. nothing but a reset brings the cpu back */
func opKil(cpu *CPUState, operand Operand) error {
    cpu.Jammed = true
    /* undo the advance past the opcode, the chip never moves again */
    cpu.PC = operand.OpcodePC
    return nil
}
