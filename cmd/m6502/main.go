package main

import (
    "fmt"
    "log"
    "os"
    "strconv"

    m6502 "github.com/kazzmir/m6502/lib"

    "github.com/fatih/color"
)

type Options struct {
    Path string
    /* where the image is loaded. the reset vector is pointed here unless
     * the image itself covers 0xfffc */
    Org uint16
    MaxCycles uint64
    Trace bool
    Monitor bool
    Policy m6502.IllegalPolicy
    StatePath string
}

func setup(options Options) (m6502.CPUState, error) {
    data, err := os.ReadFile(options.Path)
    if err != nil {
        return m6502.CPUState{}, err
    }

    memory := m6502.NewMemory()
    if int(options.Org) + len(data) > len(memory.Data) {
        return m6502.CPUState{}, fmt.Errorf("image of %v bytes does not fit at 0x%04x", len(data), options.Org)
    }
    copy(memory.Data[options.Org:], data)

    /* a full 64k image brings its own vectors */
    if len(data) < 0x10000 {
        memory.Data[m6502.ResetVector] = byte(options.Org)
        memory.Data[m6502.ResetVector + 1] = byte(options.Org >> 8)
    }

    cpu := m6502.MakeCPU(memory)
    cpu.Policy = options.Policy

    if options.StatePath != "" {
        file, err := os.Open(options.StatePath)
        if err != nil {
            return cpu, err
        }
        defer file.Close()
        state, err := m6502.DeserializeState(file)
        if err != nil {
            return cpu, err
        }
        cpu.SetState(state)
        return cpu, nil
    }

    err = cpu.Reset()
    return cpu, err
}

func run(options Options) error {
    cpu, err := setup(options)
    if err != nil {
        return err
    }

    if options.Monitor {
        return runMonitor(&cpu)
    }

    for {
        if options.MaxCycles > 0 && cpu.Cycle >= options.MaxCycles {
            log.Printf("maximum cycles %v reached at PC 0x%04x", options.MaxCycles, cpu.PC)
            return nil
        }

        if options.Trace {
            text, err := m6502.Disassemble(cpu.Bus, cpu.PC)
            if err != nil {
                return err
            }
            fmt.Printf("%04x  %-14v %v\n", cpu.PC, text, cpu.String())
        }

        _, err := cpu.Run()
        if err != nil {
            return err
        }
    }
}

func main(){
    log.SetFlags(log.Lshortfile | log.Lmicroseconds)

    options := Options{
        Org: 0x1000,
        Policy: m6502.IllegalStrict,
    }

    argIndex := 1
    for argIndex < len(os.Args) {
        arg := os.Args[argIndex]
        switch arg {
            case "-trace", "--trace":
                options.Trace = true
            case "-monitor", "--monitor":
                options.Monitor = true
            case "-undocumented", "--undocumented":
                options.Policy = m6502.IllegalUndocumented
            case "-ignore-illegal", "--ignore-illegal":
                options.Policy = m6502.IllegalNop
            case "-org", "--org":
                argIndex += 1
                if argIndex >= len(os.Args) {
                    log.Fatalf("Expected a hex address for -org")
                }
                org, err := strconv.ParseUint(os.Args[argIndex], 16, 16)
                if err != nil {
                    log.Fatalf("Error parsing org address: %v", err)
                }
                options.Org = uint16(org)
            case "-cycles", "--cycles":
                argIndex += 1
                if argIndex >= len(os.Args) {
                    log.Fatalf("Expected a number of cycles")
                }
                cycles, err := strconv.ParseUint(os.Args[argIndex], 10, 64)
                if err != nil {
                    log.Fatalf("Error parsing cycles: %v", err)
                }
                options.MaxCycles = cycles
            case "-state", "--state":
                argIndex += 1
                if argIndex >= len(os.Args) {
                    log.Fatalf("Expected a path for -state")
                }
                options.StatePath = os.Args[argIndex]
            default:
                options.Path = arg
        }

        argIndex += 1
    }

    if options.Path == "" {
        fmt.Printf("Give a binary image to run\n")
        fmt.Printf("  %v [-org <hex address>] [-cycles <n>] [-trace] [-monitor] [-undocumented] [-ignore-illegal] [-state <path>] image.bin\n", os.Args[0])
        return
    }

    err := run(options)
    if err != nil {
        red := color.New(color.FgRed).SprintFunc()
        log.Printf("%v: %v", red("stopped"), err)
        os.Exit(1)
    }

    green := color.New(color.FgGreen).SprintFunc()
    log.Printf("%v", green("done"))
}
