package components

import "github.com/lixenwraith/vi-pong/host"

// VisualComponent links an entity to a registered shape asset
// Entities sharing an asset share the handle
type VisualComponent struct {
	Handle host.ShapeHandle
}
