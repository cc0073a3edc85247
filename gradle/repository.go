package gradle

import "slices"

// Well-known repository identifiers.
const (
	RepositoryMavenCentral = "maven-central"
	RepositoryGradlePortal = "gradle-plugin-portal"
)

// RepositoryContainer is an ordered set of repository identifiers.
type RepositoryContainer struct {
	ids []string
}

func newRepositoryContainer() *RepositoryContainer {
	return &RepositoryContainer{}
}

// Add registers a repository. Adding an identifier that is already present
// is a no-op. Returns true if the repository was added.
func (c *RepositoryContainer) Add(id string) bool {
	if c.Has(id) {
		return false
	}
	c.ids = append(c.ids, id)
	return true
}

// Has reports whether the repository is registered.
func (c *RepositoryContainer) Has(id string) bool {
	return slices.Contains(c.ids, id)
}

// Remove unregisters a repository. Returns false if it was not registered.
func (c *RepositoryContainer) Remove(id string) bool {
	n := len(c.ids)
	c.ids = slices.DeleteFunc(c.ids, func(s string) bool { return s == id })
	return len(c.ids) != n
}

// IDs returns the repository identifiers in insertion order.
func (c *RepositoryContainer) IDs() []string {
	return slices.Clone(c.ids)
}

// Len returns the number of repositories.
func (c *RepositoryContainer) Len() int {
	return len(c.ids)
}

func (c *RepositoryContainer) clone() *RepositoryContainer {
	if c == nil {
		return nil
	}
	return &RepositoryContainer{ids: slices.Clone(c.ids)}
}
