package htmljs

import "sync"

// Registry interns one TagType per canonical (ASCII upper-case) tag name.
type Registry struct {
	mu   sync.RWMutex
	tags map[string]*TagType
}

func NewRegistry() *Registry {
	return &Registry{tags: map[string]*TagType{}}
}

// Default is pre-seeded with every known HTML element.
var Default = func() *Registry {
	r := NewRegistry()
	for _, name := range knownElementNames {
		r.GetTag(name)
	}
	return r
}()

// CanonicalName is the form stored in Tag.TagName.
func CanonicalName(name string) string {
	return ASCIIUpperCase(name)
}

// GetTag returns the TagType for name, creating it on first use. Names that
// differ only in ASCII case share one TagType.
func (r *Registry) GetTag(name string) *TagType {
	canon := CanonicalName(name)
	r.mu.RLock()
	tt, ok := r.tags[canon]
	r.mu.RUnlock()
	if ok {
		return tt
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if tt, ok := r.tags[canon]; ok {
		return tt
	}
	tt = &TagType{name: canon}
	r.tags[canon] = tt
	return tt
}

// EnsureTag looks name up without registering it.
func (r *Registry) EnsureTag(name string) (*TagType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tt, ok := r.tags[CanonicalName(name)]
	return tt, ok
}

func GetTag(name string) *TagType { return Default.GetTag(name) }

func EnsureTag(name string) (*TagType, bool) { return Default.EnsureTag(name) }
