package cards

// Element is a short name standing for an icon.
type Element struct {
	Name  string
	Image string
	Count int
}

// Registry maps element names to elements. A load creates a fresh registry, fills it from
// the Elements sheet, and only then hands it to the loaders of other kinds.
type Registry struct {
	byName map[string]Element
	order  []string
}

func NewRegistry() *Registry {
	return &Registry{byName: map[string]Element{}}
}

// Add registers e, replacing any element of the same name in place.
func (r *Registry) Add(e Element) {
	if _, ok := r.byName[e.Name]; !ok {
		r.order = append(r.order, e.Name)
	}
	r.byName[e.Name] = e
}

func (r *Registry) Lookup(name string) (Element, bool) {
	e, ok := r.byName[name]
	return e, ok
}

// Elements returns the registered elements in the order they were first added.
func (r *Registry) Elements() []Element {
	out := make([]Element, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

func (r *Registry) Len() int {
	return len(r.order)
}
