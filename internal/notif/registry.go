package notif

import "notistack/internal/common"

// RegistryEntry binds one notifiable type key to its detail renderer. A
// nil renderer means the stored details payload is served as-is.
type RegistryEntry struct {
	Key      string
	Renderer common.DetailRenderer
}

// Registry is the closed, explicitly ordered set of notifiable types,
// configured at startup. Order matters: bundle responses walk types in
// registration order.
type Registry struct {
	entries []RegistryEntry
	byKey   map[string]common.DetailRenderer
}

func NewRegistry(entries ...RegistryEntry) *Registry {
	r := &Registry{byKey: make(map[string]common.DetailRenderer)}
	for _, entry := range entries {
		if _, ok := r.byKey[entry.Key]; ok {
			continue
		}
		r.entries = append(r.entries, entry)
		r.byKey[entry.Key] = entry.Renderer
	}
	return r
}

// Keys returns the type keys in registration order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.entries))
	for i, entry := range r.entries {
		keys[i] = entry.Key
	}
	return keys
}

// Renderer returns the renderer for a key, nil when the type has none.
func (r *Registry) Renderer(key string) common.DetailRenderer {
	return r.byKey[key]
}
