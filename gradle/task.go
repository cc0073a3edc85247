package gradle

import (
	"maps"
	"slices"
)

// Invocation is a method call recorded on a task, e.g. classpath(a, b).
type Invocation struct {
	Target    string   `json:"target"`
	Arguments []string `json:"arguments"`
}

// Task is the customization of a named task.
type Task struct {
	Name string `json:"name"`
	// Type is the fully qualified task type, used by the Kotlin DSL to
	// access typed tasks. Empty for untyped customizations.
	Type string `json:"type,omitempty"`

	attributes  map[string]string
	attrOrder   []string
	invocations []Invocation
}

// Attribute sets a task attribute to a raw DSL expression.
// Setting an attribute twice keeps the last value.
func (t *Task) Attribute(name, value string) {
	if t.attributes == nil {
		t.attributes = make(map[string]string)
	}
	if _, ok := t.attributes[name]; !ok {
		t.attrOrder = append(t.attrOrder, name)
	}
	t.attributes[name] = value
}

// AttributeValue returns the raw value of an attribute.
func (t *Task) AttributeValue(name string) (string, bool) {
	v, ok := t.attributes[name]
	return v, ok
}

// Attributes returns the attribute names in the order they were first set.
func (t *Task) Attributes() []string {
	return slices.Clone(t.attrOrder)
}

// Invoke records a call of target with the given arguments. Invoking the
// same target again replaces its arguments, so a task carries at most one
// invocation per target.
func (t *Task) Invoke(target string, args ...string) {
	inv := Invocation{Target: target, Arguments: slices.Clone(args)}
	for i := range t.invocations {
		if t.invocations[i].Target == target {
			t.invocations[i] = inv
			return
		}
	}
	t.invocations = append(t.invocations, inv)
}

// Invocations returns copies of the recorded invocations in order.
func (t *Task) Invocations() []Invocation {
	out := make([]Invocation, 0, len(t.invocations))
	for _, inv := range t.invocations {
		out = append(out, Invocation{Target: inv.Target, Arguments: slices.Clone(inv.Arguments)})
	}
	return out
}

// Invocation returns the invocation recorded for target.
func (t *Task) Invocation(target string) (Invocation, bool) {
	for _, inv := range t.invocations {
		if inv.Target == target {
			return Invocation{Target: inv.Target, Arguments: slices.Clone(inv.Arguments)}, true
		}
	}
	return Invocation{}, false
}

// Empty reports whether the task carries no customization.
func (t *Task) Empty() bool {
	return t.Type == "" && len(t.attributes) == 0 && len(t.invocations) == 0
}

func (t *Task) clone() *Task {
	cp := &Task{
		Name:      t.Name,
		Type:      t.Type,
		attrOrder: slices.Clone(t.attrOrder),
	}
	if t.attributes != nil {
		cp.attributes = maps.Clone(t.attributes)
	}
	for _, inv := range t.invocations {
		cp.invocations = append(cp.invocations, Invocation{Target: inv.Target, Arguments: slices.Clone(inv.Arguments)})
	}
	return cp
}

// TaskContainer is a registry of task customizations keyed by name.
type TaskContainer struct {
	tasks []*Task
}

func newTaskContainer() *TaskContainer {
	return &TaskContainer{}
}

// Customize applies customizer to the task with the given name, creating the
// customization on first use. Repeated calls operate on the same task.
func (c *TaskContainer) Customize(name string, customizer func(*Task)) {
	t := c.lookup(name)
	if t == nil {
		t = &Task{Name: name}
		c.tasks = append(c.tasks, t)
	}
	if customizer != nil {
		customizer(t)
	}
	t.Name = name
}

// Get returns a copy of the task customization with the given name.
func (c *TaskContainer) Get(name string) (*Task, bool) {
	if t := c.lookup(name); t != nil {
		return t.clone(), true
	}
	return nil, false
}

// Has reports whether the named task has been customized.
func (c *TaskContainer) Has(name string) bool {
	return c.lookup(name) != nil
}

// Names returns customized task names in order.
func (c *TaskContainer) Names() []string {
	names := make([]string, 0, len(c.tasks))
	for _, t := range c.tasks {
		names = append(names, t.Name)
	}
	return names
}

// Len returns the number of customized tasks.
func (c *TaskContainer) Len() int {
	return len(c.tasks)
}

func (c *TaskContainer) lookup(name string) *Task {
	for _, t := range c.tasks {
		if t.Name == name {
			return t
		}
	}
	return nil
}

func (c *TaskContainer) clone() *TaskContainer {
	if c == nil {
		return nil
	}
	out := newTaskContainer()
	for _, t := range c.tasks {
		out.tasks = append(out.tasks, t.clone())
	}
	return out
}
