package lib

import (
    "testing"
)

func TestTableComplete(test *testing.T) {
    for i, entry := range Opcodes {
        if entry.Name == "" {
            test.Fatalf("opcode 0x%02x has no name", i)
        }
        if entry.Cycles < 2 {
            test.Fatalf("opcode 0x%02x %v claims %v cycles, every instruction needs at least 2", i, entry.Name, entry.Cycles)
        }
        if entry.Official && entry.Execute == nil {
            test.Fatalf("documented opcode 0x%02x %v has no handler", i, entry.Name)
        }
        if entry.Length() < 1 || entry.Length() > 3 {
            test.Fatalf("opcode 0x%02x %v has impossible length %v", i, entry.Name, entry.Length())
        }
    }
}

func TestTableOfficialCount(test *testing.T) {
    count := 0
    for _, entry := range Opcodes {
        if entry.Official {
            count += 1
        }
    }
    if count != 151 {
        test.Fatalf("the documented instruction set has 151 opcodes, table marks %v", count)
    }
}

func TestTableSpotChecks(test *testing.T) {
    checks := []struct{
        opcode byte
        name string
        mode AddressingMode
        cycles byte
        class OpcodeClass
    }{
        {0x00, "brk", ModeImplied, 7, ClassControl},
        {0x20, "jsr", ModeAbsolute, 6, ClassControl},
        {0x4c, "jmp", ModeAbsolute, 3, ClassControl},
        {0x6c, "jmp", ModeIndirect, 5, ClassControl},
        {0xa9, "lda", ModeImmediate, 2, ClassRead},
        {0xbd, "lda", ModeAbsoluteX, 4, ClassRead},
        {0x9d, "sta", ModeAbsoluteX, 5, ClassWrite},
        {0x1e, "asl", ModeAbsoluteX, 7, ClassModify},
        {0x0a, "asl", ModeAccumulator, 2, ClassModify},
        {0xf0, "beq", ModeRelative, 2, ClassBranch},
        {0x08, "php", ModeImplied, 3, ClassControl},
        {0x28, "plp", ModeImplied, 4, ClassControl},
        {0xea, "nop", ModeImplied, 2, ClassImplied},
    }

    for _, check := range checks {
        entry := &Opcodes[check.opcode]
        if entry.Name != check.name || entry.Mode != check.mode || entry.Cycles != check.cycles || entry.Class != check.class {
            test.Fatalf("opcode 0x%02x: expected %v %v %v cycles, got %v %v %v cycles", check.opcode, check.name, check.mode, check.cycles, entry.Name, entry.Mode, entry.Cycles)
        }
        if !entry.Official {
            test.Fatalf("opcode 0x%02x %v should be documented", check.opcode, check.name)
        }
    }
}

func TestTableUnstableHaveNoHandler(test *testing.T) {
    unstable := []byte{0x8b, 0x93, 0x9b, 0x9c, 0x9e, 0x9f, 0xbb}
    for _, opcode := range unstable {
        entry := &Opcodes[opcode]
        if entry.Official {
            test.Fatalf("opcode 0x%02x %v must not be documented", opcode, entry.Name)
        }
        if entry.Execute != nil {
            test.Fatalf("unstable opcode 0x%02x %v must have no handler", opcode, entry.Name)
        }
    }
}

func TestTableSbcAlias(test *testing.T) {
    /* 0xeb is the undocumented twin of sbc immediate */
    entry := &Opcodes[0xeb]
    if entry.Name != "sbc" || entry.Official || entry.Execute == nil {
        test.Fatalf("0xeb should be the undocumented sbc: %+v", entry)
    }
}
