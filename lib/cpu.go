package lib

import (
    "errors"
    "fmt"
    "log"
)

/* opcode references
 * http://www.oxyron.de/html/opcodes02.html -- has illegal opcodes and their semantics
 * https://www.masswerk.at/6502/6502_instruction_set.html
 * http://www.6502.org/tutorials/6502opcodes.html
 * http://users.telenet.be/kim1-6502/6502/proman.html
 */

const NMIVector uint16 = 0xfffa
const ResetVector uint16 = 0xfffc
const IRQVector uint16 = 0xfffe

/* the stack always lives in page 1 */
const StackPage uint16 = 0x100

/* status register bits. bit 5 has no function and always reads back as 1 */
const (
    FlagCarry byte = 1 << 0
    FlagZero byte = 1 << 1
    FlagInterruptDisable byte = 1 << 2
    FlagDecimal byte = 1 << 3
    FlagBreak byte = 1 << 4
    FlagUnused byte = 1 << 5
    FlagOverflow byte = 1 << 6
    FlagNegative byte = 1 << 7
)

var ErrIllegalOpcode = errors.New("illegal opcode")
var ErrNotReset = errors.New("cpu has not been reset")
var ErrJammed = errors.New("cpu is jammed")

/* ErrBusFault marks a memory collaborator that failed to answer. The cpu
 * never produces it on its own, it only passes bus errors through.
 */
var ErrBusFault = errors.New("bus fault")

/* what to do with an opcode outside the documented set */
type IllegalPolicy int

const (
    /* fail immediately. for verification tooling */
    IllegalStrict IllegalPolicy = iota
    /* consume the operand bytes and base cycles, change nothing else */
    IllegalNop
    /* execute the stable undocumented behavior where it is known,
     * fail for the unstable leftovers */
    IllegalUndocumented
)

type CPUState struct {
    A byte `json:"a"`
    X byte `json:"x"`
    Y byte `json:"y"`
    SP byte `json:"sp"`
    PC uint16 `json:"pc"`
    Status byte `json:"status"`

    /* total cycles since power on */
    Cycle uint64 `json:"cycle"`

    /* interrupt inputs. external collaborators raise these at any time
     * but the cpu samples them only between instructions, never in the
     * middle of one. IRQLine models a level, NMIPending latches an edge.
     */
    IRQLine bool `json:"irq"`
    NMIPending bool `json:"nmi"`

    /* a kil opcode was executed. only Reset clears this */
    Jammed bool `json:"jammed"`

    Policy IllegalPolicy `json:"-"`
    Debug uint `json:"-"`

    Bus Bus `json:"-"`

    ready bool
}

func MakeCPU(bus Bus) CPUState {
    return CPUState{
        Bus: bus,
    }
}

func (cpu *CPUState) String() string {
    return fmt.Sprintf("A:0x%X X:0x%X Y:0x%X SP:0x%X P:0x%X PC:0x%X Cycle:%v", cpu.A, cpu.X, cpu.Y, cpu.SP, cpu.GetStatusByte(), cpu.PC, cpu.Cycle)
}

func (cpu *CPUState) LoadMemory(address uint16) (byte, error) {
    return cpu.Bus.Read8(address)
}

func (cpu *CPUState) StoreMemory(address uint16, value byte) error {
    return cpu.Bus.Write8(address, value)
}

/* status byte handling. the live register always carries bit 5 */

func (cpu *CPUState) GetStatusByte() byte {
    return cpu.Status | FlagUnused
}

func (cpu *CPUState) SetStatusByte(value byte) {
    cpu.Status = value | FlagUnused
}

func (cpu *CPUState) setBit(bit byte, set bool) {
    if set {
        cpu.Status = cpu.Status | bit
    } else {
        cpu.Status = cpu.Status & (^bit)
    }
    cpu.Status = cpu.Status | FlagUnused
}

func (cpu *CPUState) getBit(bit byte) bool {
    return (cpu.Status & bit) == bit
}

func (cpu *CPUState) GetCarryFlag() bool {
    return cpu.getBit(FlagCarry)
}

func (cpu *CPUState) SetCarryFlag(set bool) {
    cpu.setBit(FlagCarry, set)
}

func (cpu *CPUState) GetZeroFlag() bool {
    return cpu.getBit(FlagZero)
}

func (cpu *CPUState) SetZeroFlag(zero bool) {
    cpu.setBit(FlagZero, zero)
}

func (cpu *CPUState) GetInterruptDisableFlag() bool {
    return cpu.getBit(FlagInterruptDisable)
}

func (cpu *CPUState) SetInterruptDisableFlag(set bool) {
    cpu.setBit(FlagInterruptDisable, set)
}

func (cpu *CPUState) GetDecimalFlag() bool {
    return cpu.getBit(FlagDecimal)
}

func (cpu *CPUState) SetDecimalFlag(set bool) {
    cpu.setBit(FlagDecimal, set)
}

func (cpu *CPUState) GetOverflowFlag() bool {
    return cpu.getBit(FlagOverflow)
}

func (cpu *CPUState) SetOverflowFlag(set bool) {
    cpu.setBit(FlagOverflow, set)
}

func (cpu *CPUState) GetNegativeFlag() bool {
    return cpu.getBit(FlagNegative)
}

func (cpu *CPUState) SetNegativeFlag(set bool) {
    cpu.setBit(FlagNegative, set)
}

/* stack discipline: push stores then decrements, pop increments then
 * loads. SP is 8 bits so references never leave page 1, they wrap
 * within it. wrapping is real hardware behavior, not an error.
 */

func (cpu *CPUState) PushStack(value byte) error {
    err := cpu.StoreMemory(StackPage + uint16(cpu.SP), value)
    cpu.SP -= 1
    return err
}

func (cpu *CPUState) PopStack() (byte, error) {
    cpu.SP += 1
    return cpu.LoadMemory(StackPage + uint16(cpu.SP))
}

func (cpu *CPUState) readVector(vector uint16) (uint16, error) {
    low, err := cpu.LoadMemory(vector)
    if err != nil {
        return 0, err
    }
    high, err := cpu.LoadMemory(vector + 1)
    if err != nil {
        return 0, err
    }
    return (uint16(high) << 8) | uint16(low), nil
}

/* Reset puts the cpu into the power on state: SP becomes 0xfd, the
 * interrupt disable flag is set and PC is loaded from the reset vector.
 * A/X/Y are left alone, the vendor never defined their reset value.
 * Nothing is pushed to the stack.
 *
 * http://users.telenet.be/kim1-6502/6502/proman.html#90
 */
func (cpu *CPUState) Reset() error {
    cpu.SP = 0xfd
    cpu.SetStatusByte(FlagInterruptDisable)
    cpu.NMIPending = false
    cpu.Jammed = false
    cpu.Cycle += 7

    pc, err := cpu.readVector(ResetVector)
    if err != nil {
        return err
    }
    cpu.PC = pc

    cpu.ready = true
    return nil
}

/* interrupt request inputs. a peripheral emulator may call these from
 * wherever it likes, but if that is another goroutine the host owns the
 * synchronization. the cpu itself takes no locks.
 */

func (cpu *CPUState) AssertIRQ() {
    cpu.IRQLine = true
}

func (cpu *CPUState) ClearIRQ() {
    cpu.IRQLine = false
}

/* TriggerNMI latches one falling edge. The nmi fires exactly once even
 * if the interrupt disable flag is set.
 */
func (cpu *CPUState) TriggerNMI() {
    cpu.NMIPending = true
}

/* the sequence shared by nmi, irq and brk: push the return address and
 * the status byte, set the interrupt disable flag, load the vector.
 * only the pushed status differs: hardware interrupts push with the
 * break bit clear, brk pushes with it set.
 */
func (cpu *CPUState) interruptSequence(vector uint16, ret uint16, status byte) error {
    err := cpu.PushStack(byte(ret >> 8))
    if err != nil {
        return err
    }
    err = cpu.PushStack(byte(ret))
    if err != nil {
        return err
    }
    err = cpu.PushStack(status)
    if err != nil {
        return err
    }

    cpu.SetInterruptDisableFlag(true)

    pc, err := cpu.readVector(vector)
    if err != nil {
        return err
    }
    cpu.PC = pc
    return nil
}

func (cpu *CPUState) NMI() error {
    cpu.NMIPending = false
    cpu.Cycle += 7
    return cpu.interruptSequence(NMIVector, cpu.PC, cpu.GetStatusByte() & ^FlagBreak)
}

func (cpu *CPUState) Interrupt() error {
    cpu.Cycle += 7
    return cpu.interruptSequence(IRQVector, cpu.PC, cpu.GetStatusByte() & ^FlagBreak)
}

/* Run executes exactly one instruction, or services one pending
 * interrupt, and returns the cycles that elapsed. Errors abort the
 * current instruction and leave recovery to the host: bus faults are
 * never retried, illegal opcodes follow the configured policy.
 */
func (cpu *CPUState) Run() (int, error) {
    if !cpu.ready {
        return 0, ErrNotReset
    }

    if cpu.Jammed {
        return 0, fmt.Errorf("%w: reset required", ErrJammed)
    }

    start := cpu.Cycle

    /* the instruction boundary is the only point where the interrupt
     * inputs are looked at. reset outranks nmi which outranks irq,
     * reset being a direct api call rather than a line.
     */
    if cpu.NMIPending {
        err := cpu.NMI()
        return int(cpu.Cycle - start), err
    }

    if cpu.IRQLine && !cpu.GetInterruptDisableFlag() {
        err := cpu.Interrupt()
        return int(cpu.Cycle - start), err
    }

    opcode, err := cpu.LoadMemory(cpu.PC)
    if err != nil {
        return 0, err
    }

    entry := &Opcodes[opcode]

    if cpu.Debug > 0 {
        log.Printf("PC: 0x%x execute %v A:%X X:%X Y:%X P:%X SP:%X CYC:%v\n", cpu.PC, entry.Name, cpu.A, cpu.X, cpu.Y, cpu.GetStatusByte(), cpu.SP, cpu.Cycle)
    }

    if !entry.Official {
        switch cpu.Policy {
            case IllegalStrict:
                return 0, fmt.Errorf("%w: 0x%02x at PC 0x%04x", ErrIllegalOpcode, opcode, cpu.PC)
            case IllegalNop:
                /* stand-in behavior: advance past the instruction and
                 * burn its base cycles. no bus traffic beyond the
                 * opcode fetch, so a flaky device cannot fault here.
                 */
                cpu.PC += entry.Length()
                cpu.Cycle += uint64(entry.Cycles)
                return int(cpu.Cycle - start), nil
            case IllegalUndocumented:
                if entry.Execute == nil {
                    return 0, fmt.Errorf("%w: 0x%02x at PC 0x%04x has no stable behavior", ErrIllegalOpcode, opcode, cpu.PC)
                }
        }
    }

    err = cpu.execute(entry)
    return int(cpu.Cycle - start), err
}

func (cpu *CPUState) execute(entry *Opcode) error {
    operand, err := cpu.resolveOperand(entry)
    if err != nil {
        return err
    }

    cpu.PC += entry.Length()
    cpu.Cycle += uint64(entry.Cycles)

    /* the extra cycle for crossing a page only exists for read class
     * opcodes. stores and read-modify-writes already pay for it in
     * their base count, branches account for themselves.
     */
    if operand.PageCross && entry.Class == ClassRead {
        cpu.Cycle += 1
    }

    return entry.Execute(cpu, operand)
}
