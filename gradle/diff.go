package gradle

import (
	"slices"
	"sort"

	"github.com/albertocavalcante/go-springnative/version"
)

// PluginChange represents an added or removed plugin.
type PluginChange struct {
	ID      string `json:"id"`
	Version string `json:"version,omitempty"`
}

// PluginUpgrade represents a version change of a plugin present on both sides.
type PluginUpgrade struct {
	ID         string `json:"id"`
	OldVersion string `json:"old_version"`
	NewVersion string `json:"new_version"`
}

// DependencyChange represents an added or removed dependency.
type DependencyChange struct {
	ID         string     `json:"id"`
	Dependency Dependency `json:"dependency"`
}

// BuildDiff describes what changed between two build models.
//
// Example usage:
//
//	before := build.Clone()
//	_ = customizer.Customize(build)
//	diff := gradle.Diff(before, build)
//	fmt.Printf("%d changes\n", diff.TotalChanges())
type BuildDiff struct {
	AddedPlugins   []PluginChange  `json:"added_plugins,omitempty"`
	RemovedPlugins []PluginChange  `json:"removed_plugins,omitempty"`
	ChangedPlugins []PluginUpgrade `json:"changed_plugins,omitempty"`

	// A dependency whose descriptor changed is reported as removed and added.
	AddedDependencies   []DependencyChange `json:"added_dependencies,omitempty"`
	RemovedDependencies []DependencyChange `json:"removed_dependencies,omitempty"`

	AddedRepositories   []string `json:"added_repositories,omitempty"`
	RemovedRepositories []string `json:"removed_repositories,omitempty"`

	// CustomizedTasks lists tasks whose customization is new or different.
	CustomizedTasks []string `json:"customized_tasks,omitempty"`
}

// IsEmpty returns true if there are no differences.
func (d *BuildDiff) IsEmpty() bool {
	return d.TotalChanges() == 0
}

// TotalChanges returns the number of individual changes.
func (d *BuildDiff) TotalChanges() int {
	return len(d.AddedPlugins) + len(d.RemovedPlugins) + len(d.ChangedPlugins) +
		len(d.AddedDependencies) + len(d.RemovedDependencies) +
		len(d.AddedRepositories) + len(d.RemovedRepositories) +
		len(d.CustomizedTasks)
}

// Diff computes the difference between two builds. A nil build, or a build
// with missing containers, is treated as empty.
//
// Results are sorted by id for consistent output.
func Diff(before, after *Build) *BuildDiff {
	diff := &BuildDiff{}

	oldPlugins := pluginVersions(before)
	newPlugins := pluginVersions(after)
	for id, newVersion := range newPlugins {
		oldVersion, existed := oldPlugins[id]
		switch {
		case !existed:
			diff.AddedPlugins = append(diff.AddedPlugins, PluginChange{ID: id, Version: newVersion})
		case oldVersion != newVersion:
			diff.ChangedPlugins = append(diff.ChangedPlugins, PluginUpgrade{ID: id, OldVersion: oldVersion, NewVersion: newVersion})
		}
	}
	for id, oldVersion := range oldPlugins {
		if _, ok := newPlugins[id]; !ok {
			diff.RemovedPlugins = append(diff.RemovedPlugins, PluginChange{ID: id, Version: oldVersion})
		}
	}

	oldDeps := dependencies(before)
	newDeps := dependencies(after)
	for id, d := range newDeps {
		if old, ok := oldDeps[id]; !ok || old != d {
			diff.AddedDependencies = append(diff.AddedDependencies, DependencyChange{ID: id, Dependency: d})
		}
	}
	for id, d := range oldDeps {
		if cur, ok := newDeps[id]; !ok || cur != d {
			diff.RemovedDependencies = append(diff.RemovedDependencies, DependencyChange{ID: id, Dependency: d})
		}
	}

	oldRepos := repositories(before)
	newRepos := repositories(after)
	for _, id := range newRepos {
		if !slices.Contains(oldRepos, id) {
			diff.AddedRepositories = append(diff.AddedRepositories, id)
		}
	}
	for _, id := range oldRepos {
		if !slices.Contains(newRepos, id) {
			diff.RemovedRepositories = append(diff.RemovedRepositories, id)
		}
	}

	oldTasks := tasks(before)
	for name, t := range tasks(after) {
		if old, ok := oldTasks[name]; !ok || !sameTask(old, t) {
			diff.CustomizedTasks = append(diff.CustomizedTasks, name)
		}
	}

	sort.Slice(diff.AddedPlugins, func(i, j int) bool { return diff.AddedPlugins[i].ID < diff.AddedPlugins[j].ID })
	sort.Slice(diff.RemovedPlugins, func(i, j int) bool { return diff.RemovedPlugins[i].ID < diff.RemovedPlugins[j].ID })
	sort.Slice(diff.ChangedPlugins, func(i, j int) bool { return diff.ChangedPlugins[i].ID < diff.ChangedPlugins[j].ID })
	sortDependencyChanges(diff.AddedDependencies)
	sortDependencyChanges(diff.RemovedDependencies)
	sort.Strings(diff.AddedRepositories)
	sort.Strings(diff.RemovedRepositories)
	sort.Strings(diff.CustomizedTasks)

	return diff
}

// IsUpgrade reports whether the plugin moved to a higher version.
func (u PluginUpgrade) IsUpgrade() bool {
	return version.Compare(u.NewVersion, u.OldVersion) > 0
}

func pluginVersions(b *Build) map[string]string {
	m := make(map[string]string)
	if b == nil || b.plugins == nil {
		return m
	}
	for _, p := range b.plugins.plugins {
		m[p.ID] = p.Version
	}
	return m
}

func dependencies(b *Build) map[string]Dependency {
	if b == nil || b.dependencies == nil {
		return map[string]Dependency{}
	}
	return b.dependencies.byID
}

func repositories(b *Build) []string {
	if b == nil || b.pluginRepositories == nil {
		return nil
	}
	return b.pluginRepositories.ids
}

func tasks(b *Build) map[string]*Task {
	m := make(map[string]*Task)
	if b == nil || b.tasks == nil {
		return m
	}
	for _, t := range b.tasks.tasks {
		m[t.Name] = t
	}
	return m
}

func sameTask(a, b *Task) bool {
	if a.Type != b.Type || !slices.Equal(a.attrOrder, b.attrOrder) {
		return false
	}
	for _, k := range a.attrOrder {
		if a.attributes[k] != b.attributes[k] {
			return false
		}
	}
	return slices.EqualFunc(a.invocations, b.invocations, func(x, y Invocation) bool {
		return x.Target == y.Target && slices.Equal(x.Arguments, y.Arguments)
	})
}

func sortDependencyChanges(changes []DependencyChange) {
	sort.Slice(changes, func(i, j int) bool {
		return changes[i].ID < changes[j].ID
	})
}
