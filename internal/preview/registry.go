package preview

import (
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Prefix is the URL path under which preview resources are served.
const Prefix = "/preview/"

// Source is a local binary that can back a preview URL.
type Source struct {
	Name string
	Path string
}

// Allocator hands out and frees displayable resource URLs.
type Allocator interface {
	Allocate(src Source) string
	Release(resourceURL string)
}

// Registry maps live preview URLs to local files and serves them over HTTP.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Source
	newID   func() string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Source),
		newID:   uuid.NewString,
	}
}

// Allocate registers src under a fresh URL. URLs are never reused.
func (r *Registry) Allocate(src Source) string {
	id := r.newID()
	name := src.Name
	if name == "" {
		name = path.Base(src.Path)
	}

	r.mu.Lock()
	r.entries[id] = src
	r.mu.Unlock()

	return Prefix + id + "/" + url.PathEscape(name)
}

// Release frees a URL returned by Allocate. Unknown URLs are ignored.
func (r *Registry) Release(resourceURL string) {
	id, ok := parseID(resourceURL)
	if !ok {
		return
	}

	r.mu.Lock()
	delete(r.entries, id)
	r.mu.Unlock()
}

// Live reports how many URLs are currently allocated.
func (r *Registry) Live() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Lookup returns the source behind a live URL.
func (r *Registry) Lookup(resourceURL string) (Source, bool) {
	id, ok := parseID(resourceURL)
	if !ok {
		return Source{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	src, ok := r.entries[id]
	return src, ok
}

// ServeHTTP streams the file behind a live preview URL with range support.
func (r *Registry) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	src, ok := r.Lookup(req.URL.Path)
	if !ok {
		http.NotFound(w, req)
		return
	}

	file, err := os.Open(src.Path)
	if err != nil {
		http.NotFound(w, req)
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, req)
		return
	}

	http.ServeContent(w, req, src.Name, info.ModTime(), file)
}

// parseID extracts the allocation id from "/preview/<id>/<name>".
func parseID(resourceURL string) (string, bool) {
	rest, ok := strings.CutPrefix(resourceURL, Prefix)
	if !ok {
		return "", false
	}
	id, _, _ := strings.Cut(rest, "/")
	if id == "" {
		return "", false
	}
	return id, true
}
