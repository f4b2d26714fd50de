package lib

import (
    "log"
)

type DebugCommand interface {
    Name() string
}

type debugCommandSimple struct {
    name string
}

func (command *debugCommandSimple) Name() string {
    return command.name
}

func makeCommand(name string) DebugCommand {
    return &debugCommandSimple{name: name}
}

var DebugCommandStep DebugCommand = makeCommand("step")
var DebugCommandContinue DebugCommand = makeCommand("continue")
var DebugCommandStop DebugCommand = makeCommand("stop")

/* break when PC reaches a specific value
 * TODO: break on reads/writes of a memory address, needs a bus wrapper
 */
type Breakpoint struct {
    PC uint16
    Id uint64
}

func (breakpoint *Breakpoint) Hit(cpu *CPUState) bool {
    return breakpoint.PC == cpu.PC
}

/* Debugger gates instruction execution. Handle is called before every
 * instruction: while stopped it blocks until a command arrives on the
 * channel, so a ui can drive the cpu from another goroutine.
 */
type Debugger struct {
    Commands chan DebugCommand
    Stopped bool
    Breakpoints []Breakpoint
    breakpointId uint64
}

func MakeDebugger() *Debugger {
    return &Debugger{
        Commands: make(chan DebugCommand, 5),
        Stopped: true,
        breakpointId: 1,
    }
}

func (debugger *Debugger) IsStopped() bool {
    return debugger.Stopped
}

func (debugger *Debugger) Stop() {
    debugger.Stopped = true
}

func (debugger *Debugger) ContinueUntilBreak() {
    debugger.Stopped = false
}

func (debugger *Debugger) AddPCBreakpoint(pc uint16) uint64 {
    id := debugger.breakpointId
    debugger.Breakpoints = append(debugger.Breakpoints, Breakpoint{
        PC: pc,
        Id: id,
    })
    debugger.breakpointId += 1
    return id
}

func (debugger *Debugger) RemoveBreakpoint(id uint64) {
    var out []Breakpoint
    for _, breakpoint := range debugger.Breakpoints {
        if breakpoint.Id != id {
            out = append(out, breakpoint)
        }
    }
    debugger.Breakpoints = out
}

func (debugger *Debugger) Handle(cpu *CPUState) {
    if debugger.IsStopped() {
        command := <-debugger.Commands
        switch command {
            case DebugCommandStep:
                return
            case DebugCommandContinue:
                debugger.ContinueUntilBreak()
                return
            case DebugCommandStop:
                return
        }
    } else {
        for _, breakpoint := range debugger.Breakpoints {
            if breakpoint.Hit(cpu) {
                log.Printf("[debug] breakpoint %v hit at PC 0x%04x", breakpoint.Id, breakpoint.PC)
                debugger.Stop()
                debugger.Handle(cpu)
                return
            }
        }
    }
}
