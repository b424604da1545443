package lang

import (
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// Registry keeps language descriptors registered with a host. Register is
// idempotent: the first descriptor for an ID wins, repeats are ignored.
type Registry struct {
	mu      sync.Mutex
	configs map[string]Config
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{configs: make(map[string]Config)}
}

// Register adds the descriptor unless one with the same ID already
// exists. Returns true if the descriptor was added.
func (r *Registry) Register(cfg Config) bool {
	if cfg.ID == "" {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.configs[cfg.ID]; ok {
		return false
	}
	r.configs[cfg.ID] = cfg
	return true
}

// Registered reports whether a descriptor with the ID exists.
func (r *Registry) Registered(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.configs[id]
	return ok
}

// Get returns the registered descriptor for the ID.
func (r *Registry) Get(id string) (Config, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cfg, ok := r.configs[id]
	return cfg, ok
}

// ForPath returns the registered descriptor claiming the path's file
// extension. Extension matching is case-insensitive.
func (r *Registry) ForPath(path string) (Config, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return Config{}, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, cfg := range r.configs {
		if slices.Contains(cfg.Extensions, ext) {
			return cfg, true
		}
	}
	return Config{}, false
}

// процессный реестр по умолчанию
var defaultRegistry = NewRegistry()

// Register registers the descriptor in the process-wide registry.
func Register(cfg Config) bool {
	return defaultRegistry.Register(cfg)
}

// Registered reports whether the ID is present in the process-wide registry.
func Registered(id string) bool {
	return defaultRegistry.Registered(id)
}

// ForPath looks the path's extension up in the process-wide registry.
func ForPath(path string) (Config, bool) {
	return defaultRegistry.ForPath(path)
}
