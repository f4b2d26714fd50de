package lib

/* operandValue fetches the byte an instruction operates on, wherever
 * the addressing phase decided it lives
 */
func (cpu *CPUState) operandValue(operand Operand) (byte, error) {
    switch operand.Mode {
        case ModeImmediate:
            return operand.Immediate, nil
        case ModeAccumulator:
            return cpu.A, nil
    }
    return cpu.LoadMemory(operand.Address)
}

/* modifyMemory runs a read-modify-write. the real chip writes the
 * unmodified value back while the alu works and then writes the result,
 * so two writes always reach the bus. peripherals notice.
 */
func (cpu *CPUState) modifyMemory(operand Operand, modify func(byte) byte) error {
    if operand.Mode == ModeAccumulator {
        cpu.A = modify(cpu.A)
        return nil
    }

    value, err := cpu.LoadMemory(operand.Address)
    if err != nil {
        return err
    }

    err = cpu.StoreMemory(operand.Address, value)
    if err != nil {
        return err
    }

    return cpu.StoreMemory(operand.Address, modify(value))
}

/* shared flag arithmetic. loads and logic set negative and zero from
 * the value, compares and shifts also produce carry.
 */

func (cpu *CPUState) loadA(value byte) {
    cpu.A = value
    cpu.SetNegativeFlag(int8(value) < 0)
    cpu.SetZeroFlag(value == 0)
}

func (cpu *CPUState) loadX(value byte) {
    cpu.X = value
    cpu.SetNegativeFlag(int8(value) < 0)
    cpu.SetZeroFlag(value == 0)
}

func (cpu *CPUState) loadY(value byte) {
    cpu.Y = value
    cpu.SetNegativeFlag(int8(value) < 0)
    cpu.SetZeroFlag(value == 0)
}

func (cpu *CPUState) doAnd(value byte) {
    cpu.A = cpu.A & value
    cpu.SetNegativeFlag(int8(cpu.A) < 0)
    cpu.SetZeroFlag(cpu.A == 0)
}

func (cpu *CPUState) doOrA(value byte) {
    cpu.A = cpu.A | value
    cpu.SetNegativeFlag(int8(cpu.A) < 0)
    cpu.SetZeroFlag(cpu.A == 0)
}

func (cpu *CPUState) doEorA(value byte) {
    cpu.A = cpu.A ^ value
    cpu.SetNegativeFlag(int8(cpu.A) < 0)
    cpu.SetZeroFlag(cpu.A == 0)
}

func (cpu *CPUState) doBit(value byte) {
    cpu.SetZeroFlag((cpu.A & value) == 0)
    cpu.SetNegativeFlag((value & (1<<7)) == (1<<7))
    cpu.SetOverflowFlag((value & (1<<6)) == (1<<6))
}

/* inc and dec touch negative and zero only, never carry */

func (cpu *CPUState) doInc(value byte) byte {
    value = value + 1
    cpu.SetNegativeFlag(int8(value) < 0)
    cpu.SetZeroFlag(value == 0)
    return value
}

func (cpu *CPUState) doDec(value byte) byte {
    value = value - 1
    cpu.SetNegativeFlag(int8(value) < 0)
    cpu.SetZeroFlag(value == 0)
    return value
}

func (cpu *CPUState) doAsl(value byte) byte {
    carry := value & (1<<7)
    out := value << 1
    cpu.SetNegativeFlag(int8(out) < 0)
    cpu.SetZeroFlag(out == 0)
    cpu.SetCarryFlag(carry == (1<<7))
    return out
}

func (cpu *CPUState) doLsr(value byte) byte {
    carry := value & 1
    out := value >> 1
    cpu.SetNegativeFlag(false)
    cpu.SetZeroFlag(out == 0)
    cpu.SetCarryFlag(carry == 1)
    return out
}

func (cpu *CPUState) doRol(value byte) byte {
    var carryBit byte
    if cpu.GetCarryFlag() {
        carryBit = 1
    }

    newCarry := (value & (1<<7)) == (1<<7)
    out := (value << 1) | carryBit

    cpu.SetCarryFlag(newCarry)
    cpu.SetNegativeFlag(int8(out) < 0)
    cpu.SetZeroFlag(out == 0)
    return out
}

func (cpu *CPUState) doRor(value byte) byte {
    var carryBit byte
    if cpu.GetCarryFlag() {
        carryBit = 1
    }

    newCarry := (value & 1) == 1
    out := (value >> 1) | (carryBit << 7)
    cpu.SetCarryFlag(newCarry)
    cpu.SetNegativeFlag(int8(out) < 0)
    cpu.SetZeroFlag(out == 0)
    return out
}

func (cpu *CPUState) doAdc(value byte) {
    if cpu.GetDecimalFlag() {
        cpu.doAdcDecimal(value)
        return
    }

    var carryBit byte = 0
    if cpu.GetCarryFlag() {
        carryBit = 1
    }

    /* overflow when the result would not fit a twos-complement number
     * http://www.6502.org/tutorials/vflag.html
     */
    full := int16(int8(cpu.A)) + int16(int8(value)) + int16(carryBit)

    /* carry when the result is larger than 8 bits */
    carry := int16(cpu.A) + int16(value) + int16(carryBit) > 0xff
    cpu.A = cpu.A + value + carryBit
    cpu.SetNegativeFlag(int8(cpu.A) < 0)
    cpu.SetOverflowFlag(full >= 128 || full <= -129)
    cpu.SetCarryFlag(carry)
    cpu.SetZeroFlag(cpu.A == 0)
}

func (cpu *CPUState) doSbc(value byte) {
    if cpu.GetDecimalFlag() {
        cpu.doSbcDecimal(value)
        return
    }

    var carryValue int8
    if !cpu.GetCarryFlag() {
        carryValue = 1
    }

    full := int16(int8(cpu.A)) - int16(int8(value)) - int16(carryValue)
    carry := int16(cpu.A) - int16(value) - int16(carryValue) >= 0

    result := int8(cpu.A) - int8(value) - carryValue
    cpu.A = byte(result)
    cpu.SetCarryFlag(carry)
    cpu.SetOverflowFlag(full >= 128 || full <= -129)
    cpu.SetNegativeFlag(result < 0)
    cpu.SetZeroFlag(result == 0)
}

/* compares subtract without storing. carry means register >= operand */

func (cpu *CPUState) doCmp(value byte) {
    result := cpu.A - value
    cpu.SetCarryFlag(cpu.A >= value)
    cpu.SetNegativeFlag(int8(result) < 0)
    cpu.SetZeroFlag(result == 0)
}

func (cpu *CPUState) doCpx(value byte) {
    result := cpu.X - value
    cpu.SetCarryFlag(cpu.X >= value)
    cpu.SetNegativeFlag(int8(result) < 0)
    cpu.SetZeroFlag(result == 0)
}

func (cpu *CPUState) doCpy(value byte) {
    result := cpu.Y - value
    cpu.SetCarryFlag(cpu.Y >= value)
    cpu.SetNegativeFlag(int8(result) < 0)
    cpu.SetZeroFlag(result == 0)
}

/* opcode handlers. each one is a pure function of the cpu state, the
 * bus and the resolved operand, installed in the 256-entry table.
 */

func opLda(cpu *CPUState, operand Operand) error {
    value, err := cpu.operandValue(operand)
    if err != nil {
        return err
    }
    cpu.loadA(value)
    return nil
}

func opLdx(cpu *CPUState, operand Operand) error {
    value, err := cpu.operandValue(operand)
    if err != nil {
        return err
    }
    cpu.loadX(value)
    return nil
}

func opLdy(cpu *CPUState, operand Operand) error {
    value, err := cpu.operandValue(operand)
    if err != nil {
        return err
    }
    cpu.loadY(value)
    return nil
}

/* stores touch no flags */

func opSta(cpu *CPUState, operand Operand) error {
    return cpu.StoreMemory(operand.Address, cpu.A)
}

func opStx(cpu *CPUState, operand Operand) error {
    return cpu.StoreMemory(operand.Address, cpu.X)
}

func opSty(cpu *CPUState, operand Operand) error {
    return cpu.StoreMemory(operand.Address, cpu.Y)
}

func opAdc(cpu *CPUState, operand Operand) error {
    value, err := cpu.operandValue(operand)
    if err != nil {
        return err
    }
    cpu.doAdc(value)
    return nil
}

func opSbc(cpu *CPUState, operand Operand) error {
    value, err := cpu.operandValue(operand)
    if err != nil {
        return err
    }
    cpu.doSbc(value)
    return nil
}

func opAnd(cpu *CPUState, operand Operand) error {
    value, err := cpu.operandValue(operand)
    if err != nil {
        return err
    }
    cpu.doAnd(value)
    return nil
}

func opOra(cpu *CPUState, operand Operand) error {
    value, err := cpu.operandValue(operand)
    if err != nil {
        return err
    }
    cpu.doOrA(value)
    return nil
}

func opEor(cpu *CPUState, operand Operand) error {
    value, err := cpu.operandValue(operand)
    if err != nil {
        return err
    }
    cpu.doEorA(value)
    return nil
}

func opBit(cpu *CPUState, operand Operand) error {
    value, err := cpu.operandValue(operand)
    if err != nil {
        return err
    }
    cpu.doBit(value)
    return nil
}

func opCmp(cpu *CPUState, operand Operand) error {
    value, err := cpu.operandValue(operand)
    if err != nil {
        return err
    }
    cpu.doCmp(value)
    return nil
}

func opCpx(cpu *CPUState, operand Operand) error {
    value, err := cpu.operandValue(operand)
    if err != nil {
        return err
    }
    cpu.doCpx(value)
    return nil
}

func opCpy(cpu *CPUState, operand Operand) error {
    value, err := cpu.operandValue(operand)
    if err != nil {
        return err
    }
    cpu.doCpy(value)
    return nil
}

func opAsl(cpu *CPUState, operand Operand) error {
    return cpu.modifyMemory(operand, cpu.doAsl)
}

func opLsr(cpu *CPUState, operand Operand) error {
    return cpu.modifyMemory(operand, cpu.doLsr)
}

func opRol(cpu *CPUState, operand Operand) error {
    return cpu.modifyMemory(operand, cpu.doRol)
}

func opRor(cpu *CPUState, operand Operand) error {
    return cpu.modifyMemory(operand, cpu.doRor)
}

func opInc(cpu *CPUState, operand Operand) error {
    return cpu.modifyMemory(operand, cpu.doInc)
}

func opDec(cpu *CPUState, operand Operand) error {
    return cpu.modifyMemory(operand, cpu.doDec)
}

func opInx(cpu *CPUState, operand Operand) error {
    cpu.loadX(cpu.X + 1)
    return nil
}

func opIny(cpu *CPUState, operand Operand) error {
    cpu.loadY(cpu.Y + 1)
    return nil
}

func opDex(cpu *CPUState, operand Operand) error {
    cpu.loadX(cpu.X - 1)
    return nil
}

func opDey(cpu *CPUState, operand Operand) error {
    cpu.loadY(cpu.Y - 1)
    return nil
}

/* makeBranch builds the handler for one branch opcode: test a single
 * flag against the wanted value. a taken branch costs one extra cycle,
 * two when the target sits on a different page than the instruction
 * after the branch.
 */
func makeBranch(flag byte, want bool) func(*CPUState, Operand) error {
    return func(cpu *CPUState, operand Operand) error {
        if cpu.getBit(flag) == want {
            cpu.Cycle += 1
            if operand.PageCross {
                cpu.Cycle += 1
            }
            cpu.PC = operand.Address
        }
        return nil
    }
}

func opJmp(cpu *CPUState, operand Operand) error {
    cpu.PC = operand.Address
    return nil
}

func opJsr(cpu *CPUState, operand Operand) error {
    /* the pushed address is one before the next instruction, rts adds
     * the one back */
    ret := operand.OpcodePC + 2
    err := cpu.PushStack(byte(ret >> 8))
    if err != nil {
        return err
    }
    err = cpu.PushStack(byte(ret))
    if err != nil {
        return err
    }
    cpu.PC = operand.Address
    return nil
}

func opRts(cpu *CPUState, operand Operand) error {
    low, err := cpu.PopStack()
    if err != nil {
        return err
    }
    high, err := cpu.PopStack()
    if err != nil {
        return err
    }
    cpu.PC = ((uint16(high) << 8) | uint16(low)) + 1
    return nil
}

func opRti(cpu *CPUState, operand Operand) error {
    status, err := cpu.PopStack()
    if err != nil {
        return err
    }
    /* bit 5 comes back as 1 no matter what was pushed */
    cpu.SetStatusByte(status)

    low, err := cpu.PopStack()
    if err != nil {
        return err
    }
    high, err := cpu.PopStack()
    if err != nil {
        return err
    }
    cpu.PC = (uint16(high) << 8) | uint16(low)
    return nil
}

/* brk is a two byte instruction as far as the return address goes, the
 * byte after the opcode is padding that rti skips over
 */
func opBrk(cpu *CPUState, operand Operand) error {
    return cpu.interruptSequence(IRQVector, operand.OpcodePC + 2, cpu.GetStatusByte() | FlagBreak)
}

func opPha(cpu *CPUState, operand Operand) error {
    return cpu.PushStack(cpu.A)
}

/* php always pushes with the break bit and bit 5 set */
func opPhp(cpu *CPUState, operand Operand) error {
    return cpu.PushStack(cpu.GetStatusByte() | FlagBreak)
}

func opPla(cpu *CPUState, operand Operand) error {
    value, err := cpu.PopStack()
    if err != nil {
        return err
    }
    cpu.loadA(value)
    return nil
}

func opPlp(cpu *CPUState, operand Operand) error {
    value, err := cpu.PopStack()
    if err != nil {
        return err
    }
    cpu.SetStatusByte(value)
    return nil
}

func opClc(cpu *CPUState, operand Operand) error {
    cpu.SetCarryFlag(false)
    return nil
}

func opSec(cpu *CPUState, operand Operand) error {
    cpu.SetCarryFlag(true)
    return nil
}

func opCli(cpu *CPUState, operand Operand) error {
    cpu.SetInterruptDisableFlag(false)
    return nil
}

func opSei(cpu *CPUState, operand Operand) error {
    cpu.SetInterruptDisableFlag(true)
    return nil
}

func opCld(cpu *CPUState, operand Operand) error {
    cpu.SetDecimalFlag(false)
    return nil
}

func opSed(cpu *CPUState, operand Operand) error {
    cpu.SetDecimalFlag(true)
    return nil
}

func opClv(cpu *CPUState, operand Operand) error {
    cpu.SetOverflowFlag(false)
    return nil
}

func opTax(cpu *CPUState, operand Operand) error {
    cpu.loadX(cpu.A)
    return nil
}

func opTxa(cpu *CPUState, operand Operand) error {
    cpu.loadA(cpu.X)
    return nil
}

func opTay(cpu *CPUState, operand Operand) error {
    cpu.loadY(cpu.A)
    return nil
}

func opTya(cpu *CPUState, operand Operand) error {
    cpu.loadA(cpu.Y)
    return nil
}

func opTsx(cpu *CPUState, operand Operand) error {
    cpu.loadX(cpu.SP)
    return nil
}

/* the one transfer that touches no flags */
func opTxs(cpu *CPUState, operand Operand) error {
    cpu.SP = cpu.X
    return nil
}

func opNop(cpu *CPUState, operand Operand) error {
    return nil
}
