package app

// Oscillator produces a triangle wave between 0 and 1. The value moves by a
// fixed step each frame and the direction flips whenever the next step
// would leave [0, 1].
type Oscillator struct {
	value float32
	step  float32
}

// NewOscillator starts at 0, rising by step per Next call.
// The step magnitude is capped at 1, the width of the range.
func NewOscillator(step float32) *Oscillator {
	if step < 0 {
		step = -step
	}
	if step > 1 {
		step = 1
	}
	return &Oscillator{step: step}
}

// Value returns the current value without advancing
func (o *Oscillator) Value() float32 { return o.value }

// Rising reports the current direction
func (o *Oscillator) Rising() bool { return o.step > 0 }

// Next returns the current value, then advances by one step
func (o *Oscillator) Next() float32 {
	v := o.value
	next := o.value + o.step
	if next > 1 || next < 0 {
		o.step = -o.step
		next = o.value + o.step
	}
	o.value = next
	return v
}
