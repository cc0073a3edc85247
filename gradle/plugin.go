package gradle

import "slices"

// Plugin is an entry of the plugins block.
type Plugin struct {
	ID      string `json:"id"`
	Version string `json:"version,omitempty"`
	// Apply is false for plugins declared with "apply false".
	Apply bool `json:"apply"`
}

// PluginContainer holds plugins keyed by id, in declaration order.
type PluginContainer struct {
	plugins []*Plugin
}

func newPluginContainer() *PluginContainer {
	return &PluginContainer{}
}

// Add declares the plugin with the given id, or reuses the existing
// declaration, then runs configure on it. configure may be nil.
func (c *PluginContainer) Add(id string, configure func(*Plugin)) {
	p := c.lookup(id)
	if p == nil {
		p = &Plugin{ID: id, Apply: true}
		c.plugins = append(c.plugins, p)
	}
	if configure != nil {
		configure(p)
	}
	// the id is the key and cannot be changed by configure
	p.ID = id
}

// Get returns a copy of the plugin with the given id.
func (c *PluginContainer) Get(id string) (Plugin, bool) {
	if p := c.lookup(id); p != nil {
		return *p, true
	}
	return Plugin{}, false
}

// Has reports whether a plugin with the given id is declared.
func (c *PluginContainer) Has(id string) bool {
	return c.lookup(id) != nil
}

// Remove deletes the plugin with the given id.
// Returns false if it was not declared.
func (c *PluginContainer) Remove(id string) bool {
	n := len(c.plugins)
	c.plugins = slices.DeleteFunc(c.plugins, func(p *Plugin) bool { return p.ID == id })
	return len(c.plugins) != n
}

// Values returns copies of all plugins in declaration order.
func (c *PluginContainer) Values() []Plugin {
	out := make([]Plugin, 0, len(c.plugins))
	for _, p := range c.plugins {
		out = append(out, *p)
	}
	return out
}

// Len returns the number of plugins.
func (c *PluginContainer) Len() int {
	return len(c.plugins)
}

func (c *PluginContainer) lookup(id string) *Plugin {
	for _, p := range c.plugins {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (c *PluginContainer) clone() *PluginContainer {
	if c == nil {
		return nil
	}
	out := newPluginContainer()
	for _, p := range c.plugins {
		cp := *p
		out.plugins = append(out.plugins, &cp)
	}
	return out
}
