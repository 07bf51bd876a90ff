package module

import "sync"

// process wide registry of mounted modules, keyed by Name()
// api.Mount publishes each module here so later modules resolve ports by name
var (
	mu  sync.RWMutex
	reg = map[string]Module{}
)

// Register publishes m under m.Name(), replacing any earlier module of that name
func Register(m Module) {
	if m == nil {
		return
	}
	mu.Lock()
	reg[m.Name()] = m
	mu.Unlock()
}

// Lookup returns the module registered under name
func Lookup(name string) (Module, bool) {
	mu.RLock()
	m, ok := reg[name]
	mu.RUnlock()
	return m, ok
}

// PortsAs resolves port T from the module registered under name
// T may be the whole port set or any field of it (see PortsOf)
func PortsAs[T any](name string) (T, bool) {
	m, ok := Lookup(name)
	if !ok {
		var zero T
		return zero, false
	}
	return PortsOf[T](m)
}

// MustPortsAs is PortsAs that panics when the module or port is missing
func MustPortsAs[T any](name string) T {
	if v, ok := PortsAs[T](name); ok {
		return v
	}
	panic("module: no port of the requested type registered under " + name)
}

// Reset clears the registry for tests
func Reset() {
	mu.Lock()
	reg = map[string]Module{}
	mu.Unlock()
}
