package canvas

// OpKind identifies a recorded drawing operation.
type OpKind uint8

const (
	OpClear OpKind = iota
	OpGradient
	OpLine
	OpArc
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpGradient:
		return "gradient"
	case OpLine:
		return "line"
	case OpArc:
		return "arc"
	default:
		return "unknown"
	}
}

// Op is one recorded drawing call together with the state active at the time.
// Args holds the call arguments in declaration order.
type Op struct {
	Kind     OpKind
	Args     [4]float64
	State    State
	Gradient Gradient
}

// Recorder is a Context that records operations instead of rasterizing them.
// A ClearRect covering the whole recorder discards earlier operations, so Ops
// always describes what is visible on the surface.
type Recorder struct {
	StateStack

	W, H float64
	ops  []Op

	total int
}

// NewRecorder returns a recorder for a surface of the given size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

// Ops returns the operations recorded since the last full clear.
func (r *Recorder) Ops() []Op { return r.ops }

// Count returns how many recorded operations have the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Total returns the number of operations ever issued, including cleared ones.
func (r *Recorder) Total() int { return r.total }

// Reset drops recorded operations and restores the default state.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
	r.StateStack.Reset()
}

// Resize changes the recorder surface. Like a canvas element, resizing clears it.
func (r *Recorder) Resize(w, h int) {
	r.W, r.H = float64(w), float64(h)
	r.Reset()
}

func (r *Recorder) record(kind OpKind, a, b, c, d float64) {
	r.total++
	r.ops = append(r.ops, Op{Kind: kind, Args: [4]float64{a, b, c, d}, State: r.Current()})
}

// ClearRect implements Context.
func (r *Recorder) ClearRect(x, y, w, h float64) {
	if x <= 0 && y <= 0 && x+w >= r.W && y+h >= r.H {
		r.ops = r.ops[:0]
	}
	r.record(OpClear, x, y, w, h)
}

// FillLinearGradient implements Context.
func (r *Recorder) FillLinearGradient(x, y, w, h float64, g Gradient) {
	r.record(OpGradient, x, y, w, h)
	r.ops[len(r.ops)-1].Gradient = g
}

// StrokeLine implements Context.
func (r *Recorder) StrokeLine(x0, y0, x1, y1 float64) {
	r.record(OpLine, x0, y0, x1, y1)
}

// StrokeArc implements Context.
func (r *Recorder) StrokeArc(cx, cy, radius float64) {
	r.record(OpArc, cx, cy, radius, 0)
}
