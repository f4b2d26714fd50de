package lib

import (
    "encoding/json"
    "io"
)

/* State is a snapshot of everything the cpu core owns: registers, the
 * cycle counter, the interrupt inputs and the jam latch. Memory belongs
 * to the bus collaborator, so the host saves that separately.
 */
type State struct {
    A byte `json:"a"`
    X byte `json:"x"`
    Y byte `json:"y"`
    SP byte `json:"sp"`
    PC uint16 `json:"pc"`
    Status byte `json:"status"`
    Cycle uint64 `json:"cycle"`
    IRQ bool `json:"irq"`
    NMI bool `json:"nmi"`
    Jammed bool `json:"jammed"`
}

func (cpu *CPUState) GetState() State {
    return State{
        A: cpu.A,
        X: cpu.X,
        Y: cpu.Y,
        SP: cpu.SP,
        PC: cpu.PC,
        Status: cpu.GetStatusByte(),
        Cycle: cpu.Cycle,
        IRQ: cpu.IRQLine,
        NMI: cpu.NMIPending,
        Jammed: cpu.Jammed,
    }
}

/* SetState restores a snapshot. The cpu counts as reset afterwards,
 * restoring into a cpu that never ran is fine.
 */
func (cpu *CPUState) SetState(state State) {
    cpu.A = state.A
    cpu.X = state.X
    cpu.Y = state.Y
    cpu.SP = state.SP
    cpu.PC = state.PC
    cpu.SetStatusByte(state.Status)
    cpu.Cycle = state.Cycle
    cpu.IRQLine = state.IRQ
    cpu.NMIPending = state.NMI
    cpu.Jammed = state.Jammed
    cpu.ready = true
}

func (cpu *CPUState) Serialize(writer io.Writer) error {
    encoder := json.NewEncoder(writer)
    return encoder.Encode(cpu.GetState())
}

func DeserializeState(reader io.Reader) (State, error) {
    var state State
    decoder := json.NewDecoder(reader)
    err := decoder.Decode(&state)
    return state, err
}
