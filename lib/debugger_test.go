package lib

import (
    "testing"
)

func TestDebuggerStep(test *testing.T) {
    cpu, _ := makeTestCPU(0xa9, 0x01, 0xa9, 0x02)
    debugger := MakeDebugger()

    go func(){
        debugger.Commands <- DebugCommandStep
        debugger.Commands <- DebugCommandStep
    }()

    debugger.Handle(&cpu)
    run(test, &cpu)
    if cpu.A != 0x01 {
        test.Fatalf("one step means one instruction: A=0x%02x", cpu.A)
    }

    debugger.Handle(&cpu)
    run(test, &cpu)
    if cpu.A != 0x02 {
        test.Fatalf("the second step runs the second instruction: A=0x%02x", cpu.A)
    }

    if !debugger.IsStopped() {
        test.Fatalf("stepping should leave the debugger stopped")
    }
}

func TestDebuggerBreakpoint(test *testing.T) {
    cpu, _ := makeTestCPU(0xa9, 0x01, 0xa9, 0x02, 0xa9, 0x03)
    debugger := MakeDebugger()
    debugger.AddPCBreakpoint(0x1004)

    go func(){
        debugger.Commands <- DebugCommandContinue
        /* the breakpoint stops the run, step over it */
        debugger.Commands <- DebugCommandStep
    }()

    for cpu.PC != 0x1006 {
        debugger.Handle(&cpu)
        run(test, &cpu)
    }

    if cpu.A != 0x03 {
        test.Fatalf("execution should have passed the breakpoint: A=0x%02x", cpu.A)
    }
}

func TestDebuggerRemoveBreakpoint(test *testing.T) {
    debugger := MakeDebugger()
    first := debugger.AddPCBreakpoint(0x1000)
    second := debugger.AddPCBreakpoint(0x2000)

    debugger.RemoveBreakpoint(first)
    if len(debugger.Breakpoints) != 1 {
        test.Fatalf("expected one breakpoint left, have %v", len(debugger.Breakpoints))
    }
    if debugger.Breakpoints[0].Id != second {
        test.Fatalf("the wrong breakpoint was removed")
    }
}

func TestDisassemble(test *testing.T) {
    memory := NewMemory()
    copy(memory.Data[0x1000:], []byte{
        0xa9, 0x42, /* lda #$42 */
        0xbd, 0x00, 0x20, /* lda $2000,x */
        0xf0, 0x02, /* beq, resolved target */
        0x6c, 0xff, 0x02, /* jmp ($02ff) */
        0x0a, /* asl a */
        0xea, /* nop */
    })

    expected := []struct{
        pc uint16
        text string
    }{
        {0x1000, "lda #$42"},
        {0x1002, "lda $2000,x"},
        {0x1005, "beq $1009"},
        {0x1007, "jmp ($02ff)"},
        {0x100a, "asl a"},
        {0x100b, "nop"},
    }

    for _, check := range expected {
        text, err := Disassemble(memory, check.pc)
        if err != nil {
            test.Fatalf("disassemble failed at 0x%04x: %v", check.pc, err)
        }
        if text != check.text {
            test.Fatalf("at 0x%04x expected %q but got %q", check.pc, check.text, text)
        }
    }
}
