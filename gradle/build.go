// Package gradle provides an in-memory model of a Gradle build: dependencies,
// plugins, plugin repositories and task customizations.
//
// The model is owned by a single generation pass and is not safe for
// concurrent mutation. Use Clone to hand an independent copy to another pass.
package gradle

// Build is a mutable Gradle build model.
//
// The zero value has no containers and is rejected by customizers as a
// malformed model; use NewBuild.
type Build struct {
	dependencies       *DependencyContainer
	plugins            *PluginContainer
	pluginRepositories *RepositoryContainer
	tasks              *TaskContainer
}

// NewBuild returns an empty build with all containers initialized.
func NewBuild() *Build {
	return &Build{
		dependencies:       newDependencyContainer(),
		plugins:            newPluginContainer(),
		pluginRepositories: newRepositoryContainer(),
		tasks:              newTaskContainer(),
	}
}

// Dependencies returns the dependency container, or nil on a zero Build.
func (b *Build) Dependencies() *DependencyContainer { return b.dependencies }

// Plugins returns the plugin container, or nil on a zero Build.
func (b *Build) Plugins() *PluginContainer { return b.plugins }

// PluginRepositories returns the plugin repository container, or nil on a zero Build.
func (b *Build) PluginRepositories() *RepositoryContainer { return b.pluginRepositories }

// Tasks returns the task customization registry, or nil on a zero Build.
func (b *Build) Tasks() *TaskContainer { return b.tasks }

// Complete reports whether every container is present.
func (b *Build) Complete() bool {
	return b != nil &&
		b.dependencies != nil &&
		b.plugins != nil &&
		b.pluginRepositories != nil &&
		b.tasks != nil
}

// Clone returns a deep copy of b. Missing containers stay missing.
func (b *Build) Clone() *Build {
	if b == nil {
		return nil
	}
	return &Build{
		dependencies:       b.dependencies.clone(),
		plugins:            b.plugins.clone(),
		pluginRepositories: b.pluginRepositories.clone(),
		tasks:              b.tasks.clone(),
	}
}
