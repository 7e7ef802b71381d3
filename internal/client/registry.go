package client

// Registry is a static table of client managers keyed by client name.
// It replaces any ambient lookup: callers that need a manager hold a
// Registry and ask it.
type Registry struct {
	order    []string
	managers map[string]Manager
}

// NewRegistry builds a registry from the given managers. Registration
// order is preserved and used for recommendation fallbacks.
func NewRegistry(managers ...Manager) *Registry {
	r := &Registry{managers: make(map[string]Manager, len(managers))}
	for _, m := range managers {
		if _, ok := r.managers[m.Name()]; ok {
			continue
		}
		r.order = append(r.order, m.Name())
		r.managers[m.Name()] = m
	}
	return r
}

// DefaultRegistry returns a registry of all clients mcpm supports.
func DefaultRegistry() *Registry {
	return NewRegistry(
		NewClaudeDesktop(),
		NewCursor(),
		NewWindsurf(),
		NewCline(),
		NewContinue(),
		NewFiveire(),
		NewGoose(),
	)
}

// Get returns the manager for a client name.
func (r *Registry) Get(name string) (Manager, bool) {
	m, ok := r.managers[name]
	return m, ok
}

// SupportedClients returns all registered client names in registration
// order.
func (r *Registry) SupportedClients() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// DetectInstalled probes every registered client and reports which ones
// look installed on this machine.
func (r *Registry) DetectInstalled() map[string]bool {
	out := make(map[string]bool, len(r.order))
	for name, m := range r.managers {
		out[name] = m.IsInstalled()
	}
	return out
}

// RecommendedClient returns the first installed client in registration
// order, or the first registered client when none are installed.
func (r *Registry) RecommendedClient() string {
	for _, name := range r.order {
		if r.managers[name].IsInstalled() {
			return name
		}
	}
	if len(r.order) > 0 {
		return r.order[0]
	}
	return ""
}
