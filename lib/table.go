package lib

import (
    "fmt"
)

/* how an opcode uses the bus once its address is resolved. the class
 * decides who pays for page crossings and which dummy accesses happen.
 */
type OpcodeClass int

const (
    ClassImplied OpcodeClass = iota
    /* reads its operand. +1 cycle when the index crosses a page */
    ClassRead
    /* stores a register. never gets the bonus cycle */
    ClassWrite
    /* read-modify-write. always pays the fixup cycle, always writes twice */
    ClassModify
    ClassBranch
    /* stack and flow control, each with a fixed cost */
    ClassControl
)

type Opcode struct {
    Name string
    Mode AddressingMode
    /* base cycle count, before page-cross and branch penalties */
    Cycles byte
    Class OpcodeClass
    /* part of the documented instruction set */
    Official bool
    /* nil for unstable undocumented opcodes: those always fail */
    Execute func(cpu *CPUState, operand Operand) error
}

func (opcode *Opcode) Length() uint16 {
    return opcode.Mode.Length()
}

/* Opcodes is the full 256-entry decode table, built once at process
 * start. Every byte value decodes to something: unofficial entries are
 * marked and their handling is up to the IllegalPolicy.
 */
var Opcodes [256]Opcode = MakeOpcodeTable()

func official(name string, mode AddressingMode, cycles byte, class OpcodeClass, execute func(*CPUState, Operand) error) Opcode {
    return Opcode{Name: name, Mode: mode, Cycles: cycles, Class: class, Official: true, Execute: execute}
}

func undocumented(name string, mode AddressingMode, cycles byte, class OpcodeClass, execute func(*CPUState, Operand) error) Opcode {
    return Opcode{Name: name, Mode: mode, Cycles: cycles, Class: class, Official: false, Execute: execute}
}

func MakeOpcodeTable() [256]Opcode {
    var table [256]Opcode

    branchMinus := makeBranch(FlagNegative, true)
    branchPlus := makeBranch(FlagNegative, false)
    branchOverflowSet := makeBranch(FlagOverflow, true)
    branchOverflowClear := makeBranch(FlagOverflow, false)
    branchCarrySet := makeBranch(FlagCarry, true)
    branchCarryClear := makeBranch(FlagCarry, false)
    branchEqual := makeBranch(FlagZero, true)
    branchNotEqual := makeBranch(FlagZero, false)

    table[0x00] = official("brk", ModeImplied, 7, ClassControl, opBrk)
    table[0x01] = official("ora", ModeIndirectX, 6, ClassRead, opOra)
    table[0x02] = undocumented("kil", ModeImplied, 2, ClassControl, opKil)
    table[0x03] = undocumented("slo", ModeIndirectX, 8, ClassModify, opSlo)
    table[0x04] = undocumented("nop", ModeZeroPage, 3, ClassRead, opNopRead)
    table[0x05] = official("ora", ModeZeroPage, 3, ClassRead, opOra)
    table[0x06] = official("asl", ModeZeroPage, 5, ClassModify, opAsl)
    table[0x07] = undocumented("slo", ModeZeroPage, 5, ClassModify, opSlo)
    table[0x08] = official("php", ModeImplied, 3, ClassControl, opPhp)
    table[0x09] = official("ora", ModeImmediate, 2, ClassRead, opOra)
    table[0x0a] = official("asl", ModeAccumulator, 2, ClassModify, opAsl)
    table[0x0b] = undocumented("anc", ModeImmediate, 2, ClassRead, opAnc)
    table[0x0c] = undocumented("nop", ModeAbsolute, 4, ClassRead, opNopRead)
    table[0x0d] = official("ora", ModeAbsolute, 4, ClassRead, opOra)
    table[0x0e] = official("asl", ModeAbsolute, 6, ClassModify, opAsl)
    table[0x0f] = undocumented("slo", ModeAbsolute, 6, ClassModify, opSlo)

    table[0x10] = official("bpl", ModeRelative, 2, ClassBranch, branchPlus)
    table[0x11] = official("ora", ModeIndirectY, 5, ClassRead, opOra)
    table[0x12] = undocumented("kil", ModeImplied, 2, ClassControl, opKil)
    table[0x13] = undocumented("slo", ModeIndirectY, 8, ClassModify, opSlo)
    table[0x14] = undocumented("nop", ModeZeroPageX, 4, ClassRead, opNopRead)
    table[0x15] = official("ora", ModeZeroPageX, 4, ClassRead, opOra)
    table[0x16] = official("asl", ModeZeroPageX, 6, ClassModify, opAsl)
    table[0x17] = undocumented("slo", ModeZeroPageX, 6, ClassModify, opSlo)
    table[0x18] = official("clc", ModeImplied, 2, ClassImplied, opClc)
    table[0x19] = official("ora", ModeAbsoluteY, 4, ClassRead, opOra)
    table[0x1a] = undocumented("nop", ModeImplied, 2, ClassImplied, opNop)
    table[0x1b] = undocumented("slo", ModeAbsoluteY, 7, ClassModify, opSlo)
    table[0x1c] = undocumented("nop", ModeAbsoluteX, 4, ClassRead, opNopRead)
    table[0x1d] = official("ora", ModeAbsoluteX, 4, ClassRead, opOra)
    table[0x1e] = official("asl", ModeAbsoluteX, 7, ClassModify, opAsl)
    table[0x1f] = undocumented("slo", ModeAbsoluteX, 7, ClassModify, opSlo)

    table[0x20] = official("jsr", ModeAbsolute, 6, ClassControl, opJsr)
    table[0x21] = official("and", ModeIndirectX, 6, ClassRead, opAnd)
    table[0x22] = undocumented("kil", ModeImplied, 2, ClassControl, opKil)
    table[0x23] = undocumented("rla", ModeIndirectX, 8, ClassModify, opRla)
    table[0x24] = official("bit", ModeZeroPage, 3, ClassRead, opBit)
    table[0x25] = official("and", ModeZeroPage, 3, ClassRead, opAnd)
    table[0x26] = official("rol", ModeZeroPage, 5, ClassModify, opRol)
    table[0x27] = undocumented("rla", ModeZeroPage, 5, ClassModify, opRla)
    table[0x28] = official("plp", ModeImplied, 4, ClassControl, opPlp)
    table[0x29] = official("and", ModeImmediate, 2, ClassRead, opAnd)
    table[0x2a] = official("rol", ModeAccumulator, 2, ClassModify, opRol)
    table[0x2b] = undocumented("anc", ModeImmediate, 2, ClassRead, opAnc)
    table[0x2c] = official("bit", ModeAbsolute, 4, ClassRead, opBit)
    table[0x2d] = official("and", ModeAbsolute, 4, ClassRead, opAnd)
    table[0x2e] = official("rol", ModeAbsolute, 6, ClassModify, opRol)
    table[0x2f] = undocumented("rla", ModeAbsolute, 6, ClassModify, opRla)

    table[0x30] = official("bmi", ModeRelative, 2, ClassBranch, branchMinus)
    table[0x31] = official("and", ModeIndirectY, 5, ClassRead, opAnd)
    table[0x32] = undocumented("kil", ModeImplied, 2, ClassControl, opKil)
    table[0x33] = undocumented("rla", ModeIndirectY, 8, ClassModify, opRla)
    table[0x34] = undocumented("nop", ModeZeroPageX, 4, ClassRead, opNopRead)
    table[0x35] = official("and", ModeZeroPageX, 4, ClassRead, opAnd)
    table[0x36] = official("rol", ModeZeroPageX, 6, ClassModify, opRol)
    table[0x37] = undocumented("rla", ModeZeroPageX, 6, ClassModify, opRla)
    table[0x38] = official("sec", ModeImplied, 2, ClassImplied, opSec)
    table[0x39] = official("and", ModeAbsoluteY, 4, ClassRead, opAnd)
    table[0x3a] = undocumented("nop", ModeImplied, 2, ClassImplied, opNop)
    table[0x3b] = undocumented("rla", ModeAbsoluteY, 7, ClassModify, opRla)
    table[0x3c] = undocumented("nop", ModeAbsoluteX, 4, ClassRead, opNopRead)
    table[0x3d] = official("and", ModeAbsoluteX, 4, ClassRead, opAnd)
    table[0x3e] = official("rol", ModeAbsoluteX, 7, ClassModify, opRol)
    table[0x3f] = undocumented("rla", ModeAbsoluteX, 7, ClassModify, opRla)

    table[0x40] = official("rti", ModeImplied, 6, ClassControl, opRti)
    table[0x41] = official("eor", ModeIndirectX, 6, ClassRead, opEor)
    table[0x42] = undocumented("kil", ModeImplied, 2, ClassControl, opKil)
    table[0x43] = undocumented("sre", ModeIndirectX, 8, ClassModify, opSre)
    table[0x44] = undocumented("nop", ModeZeroPage, 3, ClassRead, opNopRead)
    table[0x45] = official("eor", ModeZeroPage, 3, ClassRead, opEor)
    table[0x46] = official("lsr", ModeZeroPage, 5, ClassModify, opLsr)
    table[0x47] = undocumented("sre", ModeZeroPage, 5, ClassModify, opSre)
    table[0x48] = official("pha", ModeImplied, 3, ClassControl, opPha)
    table[0x49] = official("eor", ModeImmediate, 2, ClassRead, opEor)
    table[0x4a] = official("lsr", ModeAccumulator, 2, ClassModify, opLsr)
    table[0x4b] = undocumented("alr", ModeImmediate, 2, ClassRead, opAlr)
    table[0x4c] = official("jmp", ModeAbsolute, 3, ClassControl, opJmp)
    table[0x4d] = official("eor", ModeAbsolute, 4, ClassRead, opEor)
    table[0x4e] = official("lsr", ModeAbsolute, 6, ClassModify, opLsr)
    table[0x4f] = undocumented("sre", ModeAbsolute, 6, ClassModify, opSre)

    table[0x50] = official("bvc", ModeRelative, 2, ClassBranch, branchOverflowClear)
    table[0x51] = official("eor", ModeIndirectY, 5, ClassRead, opEor)
    table[0x52] = undocumented("kil", ModeImplied, 2, ClassControl, opKil)
    table[0x53] = undocumented("sre", ModeIndirectY, 8, ClassModify, opSre)
    table[0x54] = undocumented("nop", ModeZeroPageX, 4, ClassRead, opNopRead)
    table[0x55] = official("eor", ModeZeroPageX, 4, ClassRead, opEor)
    table[0x56] = official("lsr", ModeZeroPageX, 6, ClassModify, opLsr)
    table[0x57] = undocumented("sre", ModeZeroPageX, 6, ClassModify, opSre)
    table[0x58] = official("cli", ModeImplied, 2, ClassImplied, opCli)
    table[0x59] = official("eor", ModeAbsoluteY, 4, ClassRead, opEor)
    table[0x5a] = undocumented("nop", ModeImplied, 2, ClassImplied, opNop)
    table[0x5b] = undocumented("sre", ModeAbsoluteY, 7, ClassModify, opSre)
    table[0x5c] = undocumented("nop", ModeAbsoluteX, 4, ClassRead, opNopRead)
    table[0x5d] = official("eor", ModeAbsoluteX, 4, ClassRead, opEor)
    table[0x5e] = official("lsr", ModeAbsoluteX, 7, ClassModify, opLsr)
    table[0x5f] = undocumented("sre", ModeAbsoluteX, 7, ClassModify, opSre)

    table[0x60] = official("rts", ModeImplied, 6, ClassControl, opRts)
    table[0x61] = official("adc", ModeIndirectX, 6, ClassRead, opAdc)
    table[0x62] = undocumented("kil", ModeImplied, 2, ClassControl, opKil)
    table[0x63] = undocumented("rra", ModeIndirectX, 8, ClassModify, opRra)
    table[0x64] = undocumented("nop", ModeZeroPage, 3, ClassRead, opNopRead)
    table[0x65] = official("adc", ModeZeroPage, 3, ClassRead, opAdc)
    table[0x66] = official("ror", ModeZeroPage, 5, ClassModify, opRor)
    table[0x67] = undocumented("rra", ModeZeroPage, 5, ClassModify, opRra)
    table[0x68] = official("pla", ModeImplied, 4, ClassControl, opPla)
    table[0x69] = official("adc", ModeImmediate, 2, ClassRead, opAdc)
    table[0x6a] = official("ror", ModeAccumulator, 2, ClassModify, opRor)
    table[0x6b] = undocumented("arr", ModeImmediate, 2, ClassRead, opArr)
    table[0x6c] = official("jmp", ModeIndirect, 5, ClassControl, opJmp)
    table[0x6d] = official("adc", ModeAbsolute, 4, ClassRead, opAdc)
    table[0x6e] = official("ror", ModeAbsolute, 6, ClassModify, opRor)
    table[0x6f] = undocumented("rra", ModeAbsolute, 6, ClassModify, opRra)

    table[0x70] = official("bvs", ModeRelative, 2, ClassBranch, branchOverflowSet)
    table[0x71] = official("adc", ModeIndirectY, 5, ClassRead, opAdc)
    table[0x72] = undocumented("kil", ModeImplied, 2, ClassControl, opKil)
    table[0x73] = undocumented("rra", ModeIndirectY, 8, ClassModify, opRra)
    table[0x74] = undocumented("nop", ModeZeroPageX, 4, ClassRead, opNopRead)
    table[0x75] = official("adc", ModeZeroPageX, 4, ClassRead, opAdc)
    table[0x76] = official("ror", ModeZeroPageX, 6, ClassModify, opRor)
    table[0x77] = undocumented("rra", ModeZeroPageX, 6, ClassModify, opRra)
    table[0x78] = official("sei", ModeImplied, 2, ClassImplied, opSei)
    table[0x79] = official("adc", ModeAbsoluteY, 4, ClassRead, opAdc)
    table[0x7a] = undocumented("nop", ModeImplied, 2, ClassImplied, opNop)
    table[0x7b] = undocumented("rra", ModeAbsoluteY, 7, ClassModify, opRra)
    table[0x7c] = undocumented("nop", ModeAbsoluteX, 4, ClassRead, opNopRead)
    table[0x7d] = official("adc", ModeAbsoluteX, 4, ClassRead, opAdc)
    table[0x7e] = official("ror", ModeAbsoluteX, 7, ClassModify, opRor)
    table[0x7f] = undocumented("rra", ModeAbsoluteX, 7, ClassModify, opRra)

    table[0x80] = undocumented("nop", ModeImmediate, 2, ClassRead, opNopRead)
    table[0x81] = official("sta", ModeIndirectX, 6, ClassWrite, opSta)
    table[0x82] = undocumented("nop", ModeImmediate, 2, ClassRead, opNopRead)
    table[0x83] = undocumented("sax", ModeIndirectX, 6, ClassWrite, opSax)
    table[0x84] = official("sty", ModeZeroPage, 3, ClassWrite, opSty)
    table[0x85] = official("sta", ModeZeroPage, 3, ClassWrite, opSta)
    table[0x86] = official("stx", ModeZeroPage, 3, ClassWrite, opStx)
    table[0x87] = undocumented("sax", ModeZeroPage, 3, ClassWrite, opSax)
    table[0x88] = official("dey", ModeImplied, 2, ClassImplied, opDey)
    table[0x89] = undocumented("nop", ModeImmediate, 2, ClassRead, opNopRead)
    table[0x8a] = official("txa", ModeImplied, 2, ClassImplied, opTxa)
    table[0x8b] = undocumented("xaa", ModeImmediate, 2, ClassRead, nil)
    table[0x8c] = official("sty", ModeAbsolute, 4, ClassWrite, opSty)
    table[0x8d] = official("sta", ModeAbsolute, 4, ClassWrite, opSta)
    table[0x8e] = official("stx", ModeAbsolute, 4, ClassWrite, opStx)
    table[0x8f] = undocumented("sax", ModeAbsolute, 4, ClassWrite, opSax)

    table[0x90] = official("bcc", ModeRelative, 2, ClassBranch, branchCarryClear)
    table[0x91] = official("sta", ModeIndirectY, 6, ClassWrite, opSta)
    table[0x92] = undocumented("kil", ModeImplied, 2, ClassControl, opKil)
    table[0x93] = undocumented("ahx", ModeIndirectY, 6, ClassWrite, nil)
    table[0x94] = official("sty", ModeZeroPageX, 4, ClassWrite, opSty)
    table[0x95] = official("sta", ModeZeroPageX, 4, ClassWrite, opSta)
    table[0x96] = official("stx", ModeZeroPageY, 4, ClassWrite, opStx)
    table[0x97] = undocumented("sax", ModeZeroPageY, 4, ClassWrite, opSax)
    table[0x98] = official("tya", ModeImplied, 2, ClassImplied, opTya)
    table[0x99] = official("sta", ModeAbsoluteY, 5, ClassWrite, opSta)
    table[0x9a] = official("txs", ModeImplied, 2, ClassImplied, opTxs)
    table[0x9b] = undocumented("tas", ModeAbsoluteY, 5, ClassWrite, nil)
    table[0x9c] = undocumented("shy", ModeAbsoluteX, 5, ClassWrite, nil)
    table[0x9d] = official("sta", ModeAbsoluteX, 5, ClassWrite, opSta)
    table[0x9e] = undocumented("shx", ModeAbsoluteY, 5, ClassWrite, nil)
    table[0x9f] = undocumented("ahx", ModeAbsoluteY, 5, ClassWrite, nil)

    table[0xa0] = official("ldy", ModeImmediate, 2, ClassRead, opLdy)
    table[0xa1] = official("lda", ModeIndirectX, 6, ClassRead, opLda)
    table[0xa2] = official("ldx", ModeImmediate, 2, ClassRead, opLdx)
    table[0xa3] = undocumented("lax", ModeIndirectX, 6, ClassRead, opLax)
    table[0xa4] = official("ldy", ModeZeroPage, 3, ClassRead, opLdy)
    table[0xa5] = official("lda", ModeZeroPage, 3, ClassRead, opLda)
    table[0xa6] = official("ldx", ModeZeroPage, 3, ClassRead, opLdx)
    table[0xa7] = undocumented("lax", ModeZeroPage, 3, ClassRead, opLax)
    table[0xa8] = official("tay", ModeImplied, 2, ClassImplied, opTay)
    table[0xa9] = official("lda", ModeImmediate, 2, ClassRead, opLda)
    table[0xaa] = official("tax", ModeImplied, 2, ClassImplied, opTax)
    table[0xab] = undocumented("lax", ModeImmediate, 2, ClassRead, opLax)
    table[0xac] = official("ldy", ModeAbsolute, 4, ClassRead, opLdy)
    table[0xad] = official("lda", ModeAbsolute, 4, ClassRead, opLda)
    table[0xae] = official("ldx", ModeAbsolute, 4, ClassRead, opLdx)
    table[0xaf] = undocumented("lax", ModeAbsolute, 4, ClassRead, opLax)

    table[0xb0] = official("bcs", ModeRelative, 2, ClassBranch, branchCarrySet)
    table[0xb1] = official("lda", ModeIndirectY, 5, ClassRead, opLda)
    table[0xb2] = undocumented("kil", ModeImplied, 2, ClassControl, opKil)
    table[0xb3] = undocumented("lax", ModeIndirectY, 5, ClassRead, opLax)
    table[0xb4] = official("ldy", ModeZeroPageX, 4, ClassRead, opLdy)
    table[0xb5] = official("lda", ModeZeroPageX, 4, ClassRead, opLda)
    table[0xb6] = official("ldx", ModeZeroPageY, 4, ClassRead, opLdx)
    table[0xb7] = undocumented("lax", ModeZeroPageY, 4, ClassRead, opLax)
    table[0xb8] = official("clv", ModeImplied, 2, ClassImplied, opClv)
    table[0xb9] = official("lda", ModeAbsoluteY, 4, ClassRead, opLda)
    table[0xba] = official("tsx", ModeImplied, 2, ClassImplied, opTsx)
    table[0xbb] = undocumented("las", ModeAbsoluteY, 4, ClassRead, nil)
    table[0xbc] = official("ldy", ModeAbsoluteX, 4, ClassRead, opLdy)
    table[0xbd] = official("lda", ModeAbsoluteX, 4, ClassRead, opLda)
    table[0xbe] = official("ldx", ModeAbsoluteY, 4, ClassRead, opLdx)
    table[0xbf] = undocumented("lax", ModeAbsoluteY, 4, ClassRead, opLax)

    table[0xc0] = official("cpy", ModeImmediate, 2, ClassRead, opCpy)
    table[0xc1] = official("cmp", ModeIndirectX, 6, ClassRead, opCmp)
    table[0xc2] = undocumented("nop", ModeImmediate, 2, ClassRead, opNopRead)
    table[0xc3] = undocumented("dcp", ModeIndirectX, 8, ClassModify, opDcp)
    table[0xc4] = official("cpy", ModeZeroPage, 3, ClassRead, opCpy)
    table[0xc5] = official("cmp", ModeZeroPage, 3, ClassRead, opCmp)
    table[0xc6] = official("dec", ModeZeroPage, 5, ClassModify, opDec)
    table[0xc7] = undocumented("dcp", ModeZeroPage, 5, ClassModify, opDcp)
    table[0xc8] = official("iny", ModeImplied, 2, ClassImplied, opIny)
    table[0xc9] = official("cmp", ModeImmediate, 2, ClassRead, opCmp)
    table[0xca] = official("dex", ModeImplied, 2, ClassImplied, opDex)
    table[0xcb] = undocumented("axs", ModeImmediate, 2, ClassRead, opAxs)
    table[0xcc] = official("cpy", ModeAbsolute, 4, ClassRead, opCpy)
    table[0xcd] = official("cmp", ModeAbsolute, 4, ClassRead, opCmp)
    table[0xce] = official("dec", ModeAbsolute, 6, ClassModify, opDec)
    table[0xcf] = undocumented("dcp", ModeAbsolute, 6, ClassModify, opDcp)

    table[0xd0] = official("bne", ModeRelative, 2, ClassBranch, branchNotEqual)
    table[0xd1] = official("cmp", ModeIndirectY, 5, ClassRead, opCmp)
    table[0xd2] = undocumented("kil", ModeImplied, 2, ClassControl, opKil)
    table[0xd3] = undocumented("dcp", ModeIndirectY, 8, ClassModify, opDcp)
    table[0xd4] = undocumented("nop", ModeZeroPageX, 4, ClassRead, opNopRead)
    table[0xd5] = official("cmp", ModeZeroPageX, 4, ClassRead, opCmp)
    table[0xd6] = official("dec", ModeZeroPageX, 6, ClassModify, opDec)
    table[0xd7] = undocumented("dcp", ModeZeroPageX, 6, ClassModify, opDcp)
    table[0xd8] = official("cld", ModeImplied, 2, ClassImplied, opCld)
    table[0xd9] = official("cmp", ModeAbsoluteY, 4, ClassRead, opCmp)
    table[0xda] = undocumented("nop", ModeImplied, 2, ClassImplied, opNop)
    table[0xdb] = undocumented("dcp", ModeAbsoluteY, 7, ClassModify, opDcp)
    table[0xdc] = undocumented("nop", ModeAbsoluteX, 4, ClassRead, opNopRead)
    table[0xdd] = official("cmp", ModeAbsoluteX, 4, ClassRead, opCmp)
    table[0xde] = official("dec", ModeAbsoluteX, 7, ClassModify, opDec)
    table[0xdf] = undocumented("dcp", ModeAbsoluteX, 7, ClassModify, opDcp)

    table[0xe0] = official("cpx", ModeImmediate, 2, ClassRead, opCpx)
    table[0xe1] = official("sbc", ModeIndirectX, 6, ClassRead, opSbc)
    table[0xe2] = undocumented("nop", ModeImmediate, 2, ClassRead, opNopRead)
    table[0xe3] = undocumented("isc", ModeIndirectX, 8, ClassModify, opIsc)
    table[0xe4] = official("cpx", ModeZeroPage, 3, ClassRead, opCpx)
    table[0xe5] = official("sbc", ModeZeroPage, 3, ClassRead, opSbc)
    table[0xe6] = official("inc", ModeZeroPage, 5, ClassModify, opInc)
    table[0xe7] = undocumented("isc", ModeZeroPage, 5, ClassModify, opIsc)
    table[0xe8] = official("inx", ModeImplied, 2, ClassImplied, opInx)
    table[0xe9] = official("sbc", ModeImmediate, 2, ClassRead, opSbc)
    table[0xea] = official("nop", ModeImplied, 2, ClassImplied, opNop)
    table[0xeb] = undocumented("sbc", ModeImmediate, 2, ClassRead, opSbc)
    table[0xec] = official("cpx", ModeAbsolute, 4, ClassRead, opCpx)
    table[0xed] = official("sbc", ModeAbsolute, 4, ClassRead, opSbc)
    table[0xee] = official("inc", ModeAbsolute, 6, ClassModify, opInc)
    table[0xef] = undocumented("isc", ModeAbsolute, 6, ClassModify, opIsc)

    table[0xf0] = official("beq", ModeRelative, 2, ClassBranch, branchEqual)
    table[0xf1] = official("sbc", ModeIndirectY, 5, ClassRead, opSbc)
    table[0xf2] = undocumented("kil", ModeImplied, 2, ClassControl, opKil)
    table[0xf3] = undocumented("isc", ModeIndirectY, 8, ClassModify, opIsc)
    table[0xf4] = undocumented("nop", ModeZeroPageX, 4, ClassRead, opNopRead)
    table[0xf5] = official("sbc", ModeZeroPageX, 4, ClassRead, opSbc)
    table[0xf6] = official("inc", ModeZeroPageX, 6, ClassModify, opInc)
    table[0xf7] = undocumented("isc", ModeZeroPageX, 6, ClassModify, opIsc)
    table[0xf8] = official("sed", ModeImplied, 2, ClassImplied, opSed)
    table[0xf9] = official("sbc", ModeAbsoluteY, 4, ClassRead, opSbc)
    table[0xfa] = undocumented("nop", ModeImplied, 2, ClassImplied, opNop)
    table[0xfb] = undocumented("isc", ModeAbsoluteY, 7, ClassModify, opIsc)
    table[0xfc] = undocumented("nop", ModeAbsoluteX, 4, ClassRead, opNopRead)
    table[0xfd] = official("sbc", ModeAbsoluteX, 4, ClassRead, opSbc)
    table[0xfe] = official("inc", ModeAbsoluteX, 7, ClassModify, opInc)
    table[0xff] = undocumented("isc", ModeAbsoluteX, 7, ClassModify, opIsc)

    /* make sure I don't do something dumb */
    for i, entry := range table {
        if entry.Name == "" {
            panic(fmt.Sprintf("internal error: opcode 0x%02x has no table entry", i))
        }
        if entry.Cycles < 2 {
            panic(fmt.Sprintf("internal error: opcode 0x%02x %v has %v cycles, minimum is 2", i, entry.Name, entry.Cycles))
        }
        if entry.Official && entry.Execute == nil {
            panic(fmt.Sprintf("internal error: documented opcode 0x%02x %v has no handler", i, entry.Name))
        }
    }

    return table
}
