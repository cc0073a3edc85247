package gradle

import "slices"

// Scope is the configuration a dependency is declared in.
type Scope string

const (
	ScopeCompile         Scope = "compile"
	ScopeRuntime         Scope = "runtime"
	ScopeCompileOnly     Scope = "compileOnly"
	ScopeAnnotationProc  Scope = "annotationProcessor"
	ScopeTestCompile     Scope = "testCompile"
	ScopeDevelopmentOnly Scope = "developmentOnly"
)

// Dependency describes a single declared dependency.
type Dependency struct {
	GroupID    string `json:"group_id"`
	ArtifactID string `json:"artifact_id"`
	// Version is empty when managed by a BOM.
	Version string `json:"version,omitempty"`
	Scope   Scope  `json:"scope,omitempty"`
}

// Coordinates returns group:artifact[:version].
func (d Dependency) Coordinates() string {
	c := d.GroupID + ":" + d.ArtifactID
	if d.Version != "" {
		c += ":" + d.Version
	}
	return c
}

// DependencyContainer holds dependencies keyed by id, in insertion order.
type DependencyContainer struct {
	ids  []string
	byID map[string]Dependency
}

func newDependencyContainer() *DependencyContainer {
	return &DependencyContainer{byID: make(map[string]Dependency)}
}

// Get returns the dependency registered under id.
func (c *DependencyContainer) Get(id string) (Dependency, bool) {
	d, ok := c.byID[id]
	return d, ok
}

// Has reports whether a dependency with the given id exists.
func (c *DependencyContainer) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Add registers or replaces the dependency with the given id.
// A replaced dependency keeps its position.
func (c *DependencyContainer) Add(id string, d Dependency) {
	if _, ok := c.byID[id]; !ok {
		c.ids = append(c.ids, id)
	}
	c.byID[id] = d
}

// Remove deletes the dependency with the given id.
// Returns false if it was not present.
func (c *DependencyContainer) Remove(id string) bool {
	if _, ok := c.byID[id]; !ok {
		return false
	}
	delete(c.byID, id)
	c.ids = slices.DeleteFunc(c.ids, func(s string) bool { return s == id })
	return true
}

// IDs returns the dependency ids in insertion order.
func (c *DependencyContainer) IDs() []string {
	return slices.Clone(c.ids)
}

// Len returns the number of dependencies.
func (c *DependencyContainer) Len() int {
	return len(c.ids)
}

func (c *DependencyContainer) clone() *DependencyContainer {
	if c == nil {
		return nil
	}
	out := newDependencyContainer()
	for _, id := range c.ids {
		out.Add(id, c.byID[id])
	}
	return out
}
