// ABOUTME: Swipe classification from pointer-down/pointer-up coordinates
// ABOUTME: Rejects mostly-vertical gestures; left swipe = next page, right swipe = previous

package gesture

// Direction is the outcome of a classified gesture.
type Direction int

const (
	None Direction = iota // too short, too vertical, or no start recorded
	Next                  // swipe left
	Prev                  // swipe right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Next:
		return "next"
	case Prev:
		return "prev"
	default:
		return "none"
	}
}

// Delta converts the direction into a page delta (+1, -1 or 0).
func (d Direction) Delta() int {
	switch d {
	case Next:
		return 1
	case Prev:
		return -1
	default:
		return 0
	}
}

// DefaultThreshold is the minimum horizontal travel and the maximum vertical
// drift, in pointer units.
const DefaultThreshold = 50

// Detector tracks one gesture at a time.
type Detector struct {
	Threshold         float64
	VerticalThreshold float64

	startX, startY float64
	active         bool
}

// NewDetector returns a Detector with the given thresholds. Non-positive
// values fall back to DefaultThreshold.
func NewDetector(threshold, vertical float64) *Detector {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if vertical <= 0 {
		vertical = DefaultThreshold
	}
	return &Detector{Threshold: threshold, VerticalThreshold: vertical}
}

// Start records the pointer-down position, discarding any unfinished gesture.
func (d *Detector) Start(x, y float64) {
	d.startX, d.startY = x, y
	d.active = true
}

// End records the pointer-up position and classifies the gesture.
// The detector is reset either way.
func (d *Detector) End(x, y float64) Direction {
	if !d.active {
		return None
	}
	d.active = false
	return Classify(d.startX, d.startY, x, y, d.Threshold, d.VerticalThreshold)
}

// Active reports whether a gesture has started and not yet ended.
func (d *Detector) Active() bool { return d.active }

// Classify is the pure swipe rule.
func Classify(startX, startY, endX, endY, threshold, vertical float64) Direction {
	diffX := startX - endX
	diffY := startY - endY
	if diffY < 0 {
		diffY = -diffY
	}
	if diffY >= vertical {
		return None
	}
	switch {
	case diffX > threshold:
		return Next
	case diffX < -threshold:
		return Prev
	default:
		return None
	}
}
