package display

// OpCode names a copperlist instruction (spec §3, §4.3).
type OpCode int

const (
	OpWait OpCode = iota
	OpSkip
	OpModulo
	OpOffset
	OpColor
	OpShift
	OpNop
)

// Instruction is one copperlist entry. Fields are interpreted per Op:
// WAIT(X,Y), SKIP(DX,DY), MODULO(N) using N, OFFSET(N) using N,
// COLOR(Index,Color), SHIFT(From,To).
type Instruction struct {
	Op           OpCode
	X, Y         int
	N            int
	Index        uint8
	Color        Color
	From, To     uint8
}

// Copperlist is an ordered sequence of display-program instructions
// consumed scanline-by-scanline during the surface→RGBA conversion
// (spec §3, §4.3).
type Copperlist struct {
	Instructions []Instruction
}

// NewCopperlist returns an empty program.
func NewCopperlist() *Copperlist { return &Copperlist{} }

// rasterState is the working state the interpreter mutates while
// scanning, seeded from the display's persistent palette/shifting map
// each frame.
type rasterState struct {
	palette  *Palette
	shifting ShiftingMap
	modulo   int
	offset   int
}

// run executes the copperlist for one frame, invoking commitLine(y,
// state) after each scanline's instructions have been interpreted, so
// the caller can rasterize that row with the resulting state. It always
// reaches a terminal state by y == height, regardless of program
// contents (spec §8 invariant) because pc only ever advances or the
// loop ends when y reaches height.
//
// After each row is committed, state.offset advances by state.modulo
// (spec §4.3's conversion algorithm: "advance state per-scanline
// modulo/offset"), so MODULO(n) sets a per-line horizontal-scan
// increment and OFFSET(n) sets the absolute horizontal read pointer;
// commitLine is responsible for sampling the row at that offset.
func (cl *Copperlist) run(height int, initial rasterState, commitLine func(y int, state rasterState)) {
	state := initial
	pc := 0
	n := len(cl.Instructions)
	for y := 0; y < height; y++ {
		for pc < n {
			instr := cl.Instructions[pc]
			if instr.Op == OpWait && instr.Y > y {
				break
			}
			switch instr.Op {
			case OpWait:
				// X-granularity WAIT within a scanline is not modeled
				// (the rasterizer operates a full row at a time); only
				// the Y sync point gates progress.
			case OpSkip:
				// The vertical component (DY) is ignored; horizontal
				// skip is modeled as an immediate offset nudge
				// against the whole-row rasterizer.
				state.offset += instr.X
			case OpModulo:
				state.modulo = instr.N
			case OpOffset:
				state.offset = instr.N
			case OpColor:
				state.palette.Set(instr.Index, instr.Color)
			case OpShift:
				state.shifting[instr.From] = instr.To
			case OpNop:
			}
			pc++
		}
		commitLine(y, state)
		state.offset += state.modulo
	}
}
