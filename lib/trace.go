package lib

import (
    "fmt"
)

/* Disassemble renders the instruction at the given address using the
 * conventional assembler syntax for each mode. It reads the operand
 * bytes through the bus, which for a flat Memory is harmless, but a
 * host with read-sensitive peripherals should disassemble against a
 * copy.
 */
func Disassemble(bus Bus, pc uint16) (string, error) {
    opcode, err := bus.Read8(pc)
    if err != nil {
        return "", err
    }

    entry := &Opcodes[opcode]

    var value uint16
    switch entry.Length() {
        case 2:
            low, err := bus.Read8(pc + 1)
            if err != nil {
                return "", err
            }
            value = uint16(low)
        case 3:
            low, err := bus.Read8(pc + 1)
            if err != nil {
                return "", err
            }
            high, err := bus.Read8(pc + 2)
            if err != nil {
                return "", err
            }
            value = (uint16(high) << 8) | uint16(low)
    }

    switch entry.Mode {
        case ModeImplied:
            return entry.Name, nil
        case ModeAccumulator:
            return fmt.Sprintf("%v a", entry.Name), nil
        case ModeImmediate:
            return fmt.Sprintf("%v #$%02x", entry.Name, value), nil
        case ModeZeroPage:
            return fmt.Sprintf("%v $%02x", entry.Name, value), nil
        case ModeZeroPageX:
            return fmt.Sprintf("%v $%02x,x", entry.Name, value), nil
        case ModeZeroPageY:
            return fmt.Sprintf("%v $%02x,y", entry.Name, value), nil
        case ModeAbsolute:
            return fmt.Sprintf("%v $%04x", entry.Name, value), nil
        case ModeAbsoluteX:
            return fmt.Sprintf("%v $%04x,x", entry.Name, value), nil
        case ModeAbsoluteY:
            return fmt.Sprintf("%v $%04x,y", entry.Name, value), nil
        case ModeRelative:
            /* show the resolved target rather than the raw offset */
            target := pc + 2 + uint16(int16(int8(byte(value))))
            return fmt.Sprintf("%v $%04x", entry.Name, target), nil
        case ModeIndirect:
            return fmt.Sprintf("%v ($%04x)", entry.Name, value), nil
        case ModeIndirectX:
            return fmt.Sprintf("%v ($%02x,x)", entry.Name, value), nil
        case ModeIndirectY:
            return fmt.Sprintf("%v ($%02x),y", entry.Name, value), nil
    }

    return entry.Name, nil
}
