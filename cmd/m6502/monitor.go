package main

import (
    "fmt"
    "sync"

    m6502 "github.com/kazzmir/m6502/lib"

    "github.com/jroimartin/gocui"
)

/* a terminal front end for the debugger: registers, disassembly around
 * PC and a dump of the zero page and the stack. the cpu runs on its own
 * goroutine and blocks in the debugger between instructions, the ui
 * feeds it commands from keybindings.
 */
type Monitor struct {
    cpu *m6502.CPUState
    debugger *m6502.Debugger
    /* the ui and the runner goroutine both touch the cpu */
    lock sync.Mutex
    lastError error
}

func runMonitor(cpu *m6502.CPUState) error {
    monitor := &Monitor{
        cpu: cpu,
        debugger: m6502.MakeDebugger(),
    }

    gui, err := gocui.NewGui(gocui.OutputNormal)
    if err != nil {
        return err
    }
    defer gui.Close()

    gui.SetManagerFunc(monitor.layout)

    err = monitor.bindKeys(gui)
    if err != nil {
        return err
    }

    go monitor.runCPU(gui)

    err = gui.MainLoop()
    if err == gocui.ErrQuit {
        return nil
    }
    return err
}

func (monitor *Monitor) runCPU(gui *gocui.Gui) {
    for {
        monitor.debugger.Handle(monitor.cpu)

        monitor.lock.Lock()
        _, err := monitor.cpu.Run()
        if err != nil {
            monitor.lastError = err
            monitor.debugger.Stop()
        }
        monitor.lock.Unlock()

        gui.Update(func(gui *gocui.Gui) error {
            return monitor.refresh(gui)
        })
    }
}

func (monitor *Monitor) bindKeys(gui *gocui.Gui) error {
    quit := func(gui *gocui.Gui, view *gocui.View) error {
        return gocui.ErrQuit
    }

    step := func(gui *gocui.Gui, view *gocui.View) error {
        select {
            case monitor.debugger.Commands <- m6502.DebugCommandStep:
            default:
        }
        return nil
    }

    resume := func(gui *gocui.Gui, view *gocui.View) error {
        select {
            case monitor.debugger.Commands <- m6502.DebugCommandContinue:
            default:
        }
        return nil
    }

    pause := func(gui *gocui.Gui, view *gocui.View) error {
        monitor.debugger.Stop()
        return nil
    }

    bindings := []struct{
        key interface{}
        handler func(*gocui.Gui, *gocui.View) error
    }{
        {'q', quit},
        {gocui.KeyCtrlC, quit},
        {'s', step},
        {'c', resume},
        {'p', pause},
    }

    for _, binding := range bindings {
        err := gui.SetKeybinding("", binding.key, gocui.ModNone, binding.handler)
        if err != nil {
            return err
        }
    }

    return nil
}

func (monitor *Monitor) layout(gui *gocui.Gui) error {
    width, height := gui.Size()

    views := []struct{
        name string
        title string
        x0, y0, x1, y1 int
    }{
        {"registers", "registers", 0, 0, width - 1, 2},
        {"code", "code", 0, 3, width / 2 - 1, height - 4},
        {"memory", "memory", width / 2, 3, width - 1, height - 4},
        {"status", "s step, c continue, p pause, q quit", 0, height - 3, width - 1, height - 1},
    }

    for _, info := range views {
        view, err := gui.SetView(info.name, info.x0, info.y0, info.x1, info.y1)
        if err != nil && err != gocui.ErrUnknownView {
            return err
        }
        view.Title = info.title
    }

    return monitor.refresh(gui)
}

func (monitor *Monitor) refresh(gui *gocui.Gui) error {
    monitor.lock.Lock()
    defer monitor.lock.Unlock()

    cpu := monitor.cpu

    registers, err := gui.View("registers")
    if err != nil {
        return err
    }
    registers.Clear()
    fmt.Fprintf(registers, " %v\n", cpu.String())

    code, err := gui.View("code")
    if err != nil {
        return err
    }
    code.Clear()
    _, codeHeight := code.Size()
    pc := cpu.PC
    for line := 0; line < codeHeight; line++ {
        text, err := m6502.Disassemble(cpu.Bus, pc)
        if err != nil {
            fmt.Fprintf(code, " %04x  <%v>\n", pc, err)
            break
        }
        marker := "  "
        if pc == cpu.PC {
            marker = "> "
        }
        fmt.Fprintf(code, " %v%04x  %v\n", marker, pc, text)
        opcode, err := cpu.Bus.Read8(pc)
        if err != nil {
            break
        }
        pc += m6502.Opcodes[opcode].Length()
    }

    memory, err := gui.View("memory")
    if err != nil {
        return err
    }
    memory.Clear()
    dumpPage(memory, cpu, "zero page", 0x0000)
    fmt.Fprintf(memory, "\n")
    dumpPage(memory, cpu, "stack", m6502.StackPage)

    status, err := gui.View("status")
    if err != nil {
        return err
    }
    status.Clear()
    switch {
        case monitor.lastError != nil:
            fmt.Fprintf(status, " error: %v\n", monitor.lastError)
        case monitor.debugger.IsStopped():
            fmt.Fprintf(status, " stopped\n")
        default:
            fmt.Fprintf(status, " running\n")
    }

    return nil
}

func dumpPage(view *gocui.View, cpu *m6502.CPUState, name string, base uint16) {
    fmt.Fprintf(view, " %v\n", name)
    for row := uint16(0); row < 8; row++ {
        address := base + row * 16
        fmt.Fprintf(view, " %04x:", address)
        for column := uint16(0); column < 16; column++ {
            value, err := cpu.Bus.Read8(address + column)
            if err != nil {
                fmt.Fprintf(view, " ??")
                continue
            }
            fmt.Fprintf(view, " %02x", value)
        }
        fmt.Fprintf(view, "\n")
    }
}
