package dice

// Sequence is a scripted Source. Each draw returns the next value reduced
// modulo n; the script wraps around when exhausted. An empty script always
// yields 0.
type Sequence struct {
	values []int
	pos    int
}

// NewSequence scripts the raw values returned by IntN.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// Rolls scripts die faces (1-based) so that Roll(src, sides) returns them.
func Rolls(faces ...int) *Sequence {
	values := make([]int, len(faces))
	for i, f := range faces {
		values[i] = f - 1
	}
	return &Sequence{values: values}
}

func (s *Sequence) IntN(n int) int {
	if len(s.values) == 0 || n <= 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Draws reports how many values have been consumed.
func (s *Sequence) Draws() int {
	return s.pos
}
