package components

// GutterComponent tags a static horizontal wall (top or bottom)
type GutterComponent struct {
	Top bool
}
