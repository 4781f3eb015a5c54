package dependency

import "sync"

// Collection is the mutable set of dependency records shared by all analyzer
// invocations of a single scan. Analyzers running on distinct files may add
// and remove records concurrently, so access is serialized here rather than
// in the analyzers, which hold no state of their own.
type Collection struct {
	mu   sync.Mutex
	deps []*Dependency
}

func NewCollection() *Collection {
	return &Collection{}
}

// Add registers a record in the collection.
func (c *Collection) Add(dep *Dependency) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.deps = append(c.deps, dep)
}

// Remove drops the given record from the collection, comparing by identity.
// Removing a record that is not present is a no-op.
func (c *Collection) Remove(dep *Dependency) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, d := range c.deps {
		if d == dep {
			c.deps = append(c.deps[:i], c.deps[i+1:]...)

			return
		}
	}
}

// Dependencies returns a copy of the current contents, in insertion order.
func (c *Collection) Dependencies() []*Dependency {
	c.mu.Lock()
	defer c.mu.Unlock()

	deps := make([]*Dependency, len(c.deps))
	copy(deps, c.deps)

	return deps
}

func (c *Collection) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.deps)
}
