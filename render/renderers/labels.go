package renderers

import (
	"sort"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/host"
	"github.com/lixenwraith/vi-pong/render"
)

// LabelSource lists the labels a backend owns
type LabelSource interface {
	All() []*host.TextLabel
}

// LabelRenderer draws text labels at their top/left offsets
// Higher label priority draws later, on top
type LabelRenderer struct {
	labels LabelSource
}

func NewLabelRenderer(labels LabelSource) *LabelRenderer {
	return &LabelRenderer{labels: labels}
}

// Render implements SystemRenderer
func (r *LabelRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	labels := r.labels.All()
	sort.SliceStable(labels, func(i, j int) bool {
		return labels[i].Spec().Priority < labels[j].Spec().Priority
	})

	style := render.FgStyle(constants.TextColor)
	for _, l := range labels {
		spec := l.Spec()
		x, y := ctx.LabelCell(spec.Top, spec.Left)
		buf.SetString(x, y, l.Text(), style)
	}
}
