// ABOUTME: Responsive render scale chosen from the viewport width
// ABOUTME: Narrow viewports (width <= breakpoint) render smaller than wide ones

package viewer

// ScalePolicy maps a viewport width to a render scale.
type ScalePolicy struct {
	Small      float64
	Default    float64
	Breakpoint int
}

// DefaultScalePolicy returns 1.2 up to 768 units wide and 1.5 above.
func DefaultScalePolicy() ScalePolicy {
	return ScalePolicy{Small: 1.2, Default: 1.5, Breakpoint: 768}
}

// For returns the scale for width.
func (p ScalePolicy) For(width int) float64 {
	if width <= p.Breakpoint {
		return p.Small
	}
	return p.Default
}
