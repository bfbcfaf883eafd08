package body

// TrailCap is the maximum number of past positions retained per body.
const TrailCap = 400

// Trail is a fixed-capacity ring buffer of past world positions.
// Push appends, evicting the oldest entry once the capacity is
// reached; Points returns the retained history oldest first.
type Trail struct {
	buf  []Vec2
	head int
	n    int
}

func NewTrail(capacity int) *Trail {
	if capacity <= 0 {
		capacity = TrailCap
	}
	return &Trail{buf: make([]Vec2, capacity)}
}

func (t *Trail) Push(p Vec2) {
	if t.n < len(t.buf) {
		t.buf[(t.head+t.n)%len(t.buf)] = p
		t.n++
		return
	}
	t.buf[t.head] = p
	t.head = (t.head + 1) % len(t.buf)
}

func (t *Trail) Len() int { return t.n }

func (t *Trail) Cap() int { return len(t.buf) }

// Points copies out the retained positions in chronological order.
func (t *Trail) Points() []Vec2 {
	out := make([]Vec2, t.n)
	for i := 0; i < t.n; i++ {
		out[i] = t.buf[(t.head+i)%len(t.buf)]
	}
	return out
}

func (t *Trail) Clear() {
	t.head = 0
	t.n = 0
}
