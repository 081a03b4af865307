package content

import (
	"sync/atomic"
)

// Provider hands out the current content tree. A reload swaps the whole
// tree, so readers always see a consistent snapshot.
type Provider struct {
	site atomic.Pointer[Site]
}

// NewProvider returns a Provider serving site.
func NewProvider(site *Site) *Provider {
	p := &Provider{}
	p.site.Store(site)
	return p
}

// Site returns the current tree.
func (p *Provider) Site() *Site {
	return p.site.Load()
}

// Replace swaps in a new tree.
func (p *Provider) Replace(site *Site) {
	p.site.Store(site)
}
