package lib

import (
    "testing"
)

func makeUndocumentedCPU(program ...byte) (CPUState, *Memory) {
    cpu, memory := makeTestCPU(program...)
    cpu.Policy = IllegalUndocumented
    return cpu, memory
}

func TestLax(test *testing.T) {
    cpu, memory := makeUndocumentedCPU(0xa7, 0x20)
    memory.Data[0x20] = 0x80

    run(test, &cpu)
    if cpu.A != 0x80 || cpu.X != 0x80 {
        test.Fatalf("lax should load A and X together: A=0x%02x X=0x%02x", cpu.A, cpu.X)
    }
    if !cpu.GetNegativeFlag() {
        test.Fatalf("lax sets flags like lda")
    }
}

func TestSax(test *testing.T) {
    /* lda #$f0; ldx #$3c; sax $20 stores 0x30 and touches no flags */
    cpu, memory := makeUndocumentedCPU(0xa9, 0xf0, 0xa2, 0x3c, 0x87, 0x20)
    run(test, &cpu)
    run(test, &cpu)

    negative := cpu.GetNegativeFlag()
    run(test, &cpu)
    if memory.Data[0x20] != 0x30 {
        test.Fatalf("sax should store A&X: 0x%02x", memory.Data[0x20])
    }
    if cpu.GetNegativeFlag() != negative {
        test.Fatalf("sax must not change the flags")
    }
}

func TestDcp(test *testing.T) {
    /* lda #$10; dcp $20 with 0x11 there: memory drops to 0x10, the
     * compare sets zero and carry */
    cpu, memory := makeUndocumentedCPU(0xa9, 0x10, 0xc7, 0x20)
    memory.Data[0x20] = 0x11

    run(test, &cpu)
    run(test, &cpu)
    if memory.Data[0x20] != 0x10 {
        test.Fatalf("dcp should decrement memory: 0x%02x", memory.Data[0x20])
    }
    if !cpu.GetZeroFlag() || !cpu.GetCarryFlag() {
        test.Fatalf("dcp compares A against the decremented value: %v", cpu.String())
    }
}

func TestIsc(test *testing.T) {
    /* sec; lda #$10; isc $20 with 0x04 there: memory becomes 5, A 0x0b */
    cpu, memory := makeUndocumentedCPU(0x38, 0xa9, 0x10, 0xe7, 0x20)
    memory.Data[0x20] = 0x04

    run(test, &cpu)
    run(test, &cpu)
    run(test, &cpu)
    if memory.Data[0x20] != 0x05 {
        test.Fatalf("isc should increment memory: 0x%02x", memory.Data[0x20])
    }
    if cpu.A != 0x0b {
        test.Fatalf("isc should subtract the incremented value: A=0x%02x", cpu.A)
    }
}

func TestSloCarry(test *testing.T) {
    /* the carry belongs to the shift, not the or */
    cpu, memory := makeUndocumentedCPU(0x07, 0x20)
    memory.Data[0x20] = 0x81

    run(test, &cpu)
    if memory.Data[0x20] != 0x02 {
        test.Fatalf("slo should shift memory: 0x%02x", memory.Data[0x20])
    }
    if cpu.A != 0x02 {
        test.Fatalf("slo should or into A: 0x%02x", cpu.A)
    }
    if !cpu.GetCarryFlag() {
        test.Fatalf("the bit shifted out must land in carry")
    }
}

func TestRra(test *testing.T) {
    /* ror produces a carry that the adc immediately consumes */
    cpu, memory := makeUndocumentedCPU(0x18, 0xa9, 0x10, 0x67, 0x20)
    memory.Data[0x20] = 0x03

    run(test, &cpu)
    run(test, &cpu)
    run(test, &cpu)
    if memory.Data[0x20] != 0x01 {
        test.Fatalf("rra should rotate memory: 0x%02x", memory.Data[0x20])
    }
    /* 0x10 + 0x01 + the carry the rotate shifted out */
    if cpu.A != 0x12 {
        test.Fatalf("rra adc should consume the rotate carry: A=0x%02x", cpu.A)
    }
}

func TestAnc(test *testing.T) {
    cpu, _ := makeUndocumentedCPU(0xa9, 0xff, 0x0b, 0x80)
    run(test, &cpu)
    run(test, &cpu)
    if cpu.A != 0x80 {
        test.Fatalf("anc should and: A=0x%02x", cpu.A)
    }
    if !cpu.GetCarryFlag() || !cpu.GetNegativeFlag() {
        test.Fatalf("anc copies negative into carry: %v", cpu.String())
    }
}

func TestAlr(test *testing.T) {
    cpu, _ := makeUndocumentedCPU(0xa9, 0xff, 0x4b, 0x03)
    run(test, &cpu)
    run(test, &cpu)
    if cpu.A != 0x01 {
        test.Fatalf("alr should and then shift right: A=0x%02x", cpu.A)
    }
    if !cpu.GetCarryFlag() {
        test.Fatalf("the shifted out bit lands in carry")
    }
}

func TestAxs(test *testing.T) {
    /* lda #$f0; ldx #$3c; axs #$10: X = (0xf0 & 0x3c) - 0x10 = 0x20 */
    cpu, _ := makeUndocumentedCPU(0xa9, 0xf0, 0xa2, 0x3c, 0xcb, 0x10)
    run(test, &cpu)
    run(test, &cpu)
    run(test, &cpu)
    if cpu.X != 0x20 {
        test.Fatalf("axs result wrong: X=0x%02x", cpu.X)
    }
    if !cpu.GetCarryFlag() {
        test.Fatalf("axs sets carry like a compare")
    }
    if cpu.A != 0xf0 {
        test.Fatalf("axs must not change A: 0x%02x", cpu.A)
    }
}

func TestNopVariantsConsumeOperands(test *testing.T) {
    /* nop $20,x still takes 4 cycles and 2 bytes */
    cpu, _ := makeUndocumentedCPU(0x14, 0x20, 0xea)
    cycles := run(test, &cpu)
    if cpu.PC != 0x1002 {
        test.Fatalf("nop zeropage,x is two bytes: PC=0x%04x", cpu.PC)
    }
    if cycles != 4 {
        test.Fatalf("nop zeropage,x should take 4 cycles but took %v", cycles)
    }
}

func TestNopReadHitsTheBus(test *testing.T) {
    /* the operand read really happens, a watching device sees it */
    cpu, bus := makeRecordingCPU(test, 0x04, 0x20)
    cpu.Policy = IllegalUndocumented

    run(test, &cpu)
    sawRead := false
    for _, access := range bus.accesses {
        if !access.write && access.address == 0x20 {
            sawRead = true
        }
    }
    if !sawRead {
        test.Fatalf("nop zeropage should still read its operand: %+v", bus.accesses)
    }
}
