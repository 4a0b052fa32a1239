package component

// CameraComponent holds the projection bounds relative to the camera transform, in pixels
// Y grows upward so Top > Bottom
type CameraComponent struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// NewCamera returns a camera centered on its transform covering width x height pixels
func NewCamera(width, height float64) CameraComponent {
	return CameraComponent{
		Left:   -width / 2,
		Right:  width / 2,
		Top:    height / 2,
		Bottom: -height / 2,
	}
}
