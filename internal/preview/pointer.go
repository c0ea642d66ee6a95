package preview

import "sync"

// Pointer owns at most one live preview URL. Assigning a new source
// allocates first and then releases the previous URL.
type Pointer struct {
	mu    sync.Mutex
	alloc Allocator
	url   string
}

// NewPointer creates an empty pointer backed by alloc.
func NewPointer(alloc Allocator) *Pointer {
	return &Pointer{alloc: alloc}
}

// Assign replaces the held URL with one for src and returns it.
func (p *Pointer) Assign(src Source) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	next := p.alloc.Allocate(src)
	if p.url != "" {
		p.alloc.Release(p.url)
	}
	p.url = next
	return next
}

// Release frees the held URL, if any.
func (p *Pointer) Release() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.url == "" {
		return
	}
	p.alloc.Release(p.url)
	p.url = ""
}

// URL returns the held URL or "" when none is live.
func (p *Pointer) URL() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.url
}
