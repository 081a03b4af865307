package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	cmp "maragu.dev/gomponents"
)

// templNode lets a templ component sit inside a gomponents tree. gomponents
// renders without a context, so the one the view was built with is kept.
type templNode struct {
	ctx       context.Context
	component templ.Component
}

func (n templNode) Render(w io.Writer) error {
	return n.component.Render(n.ctx, w)
}

// FromTempl converts a templ component into a gomponents node bound to ctx.
func FromTempl(ctx context.Context, component templ.Component) cmp.Node {
	if ctx == nil {
		ctx = context.Background()
	}
	return templNode{ctx: ctx, component: component}
}
