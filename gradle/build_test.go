package gradle

import (
	"slices"
	"testing"
)

func TestNewBuild_Complete(t *testing.T) {
	if !NewBuild().Complete() {
		t.Error("NewBuild() is not complete")
	}
	if (&Build{}).Complete() {
		t.Error("zero Build reported complete")
	}
	var b *Build
	if b.Complete() {
		t.Error("nil Build reported complete")
	}
}

func TestDependencyContainer(t *testing.T) {
	b := NewBuild()
	deps := b.Dependencies()

	deps.Add("web", Dependency{GroupID: "org.springframework.boot", ArtifactID: "spring-boot-starter-web"})
	deps.Add("native", Dependency{GroupID: "org.springframework.experimental", ArtifactID: "spring-native", Version: "0.10.3"})

	d, ok := deps.Get("native")
	if !ok {
		t.Fatal("Get(native) not found")
	}
	if d.Version != "0.10.3" {
		t.Errorf("Version = %q, want 0.10.3", d.Version)
	}
	if got := d.Coordinates(); got != "org.springframework.experimental:spring-native:0.10.3" {
		t.Errorf("Coordinates() = %q", got)
	}

	// replacing keeps position
	deps.Add("web", Dependency{GroupID: "g", ArtifactID: "a"})
	if got := deps.IDs(); !slices.Equal(got, []string{"web", "native"}) {
		t.Errorf("IDs() = %v", got)
	}

	if !deps.Remove("native") {
		t.Error("Remove(native) = false, want true")
	}
	if deps.Remove("native") {
		t.Error("second Remove(native) = true, want false")
	}
	if deps.Has("native") || deps.Len() != 1 {
		t.Errorf("after Remove: Has = %v, Len = %d", deps.Has("native"), deps.Len())
	}
}

func TestPluginContainer_AddIsIdempotentByID(t *testing.T) {
	plugins := NewBuild().Plugins()

	plugins.Add("java", nil)
	plugins.Add("org.springframework.boot", func(p *Plugin) { p.Version = "2.5.2" })
	plugins.Add("org.springframework.boot", func(p *Plugin) { p.Version = "2.5.3" })

	if plugins.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", plugins.Len())
	}
	p, ok := plugins.Get("org.springframework.boot")
	if !ok || p.Version != "2.5.3" {
		t.Errorf("Get() = (%+v, %v)", p, ok)
	}
	if !p.Apply {
		t.Error("new plugin should be applied by default")
	}

	plugins.Add("renamed", func(p *Plugin) { p.ID = "other" })
	if !plugins.Has("renamed") || plugins.Has("other") {
		t.Error("configure callback must not change the plugin id")
	}

	got := plugins.Values()
	ids := make([]string, 0, len(got))
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	if !slices.Equal(ids, []string{"java", "org.springframework.boot", "renamed"}) {
		t.Errorf("Values() order = %v", ids)
	}

	if !plugins.Remove("java") || plugins.Remove("java") {
		t.Error("Remove() should report presence once")
	}
}

func TestRepositoryContainer_AddIsIdempotent(t *testing.T) {
	repos := NewBuild().PluginRepositories()

	if !repos.Add(RepositoryMavenCentral) {
		t.Error("first Add() = false")
	}
	if repos.Add(RepositoryMavenCentral) {
		t.Error("second Add() = true, want no-op")
	}
	if repos.Len() != 1 {
		t.Errorf("Len() = %d, want 1", repos.Len())
	}
	repos.Add(RepositoryGradlePortal)
	if got := repos.IDs(); !slices.Equal(got, []string{RepositoryMavenCentral, RepositoryGradlePortal}) {
		t.Errorf("IDs() = %v", got)
	}
	if !repos.Remove(RepositoryMavenCentral) || repos.Has(RepositoryMavenCentral) {
		t.Error("Remove() did not unregister")
	}
}

func TestTaskContainer_CustomizeByName(t *testing.T) {
	tasks := NewBuild().Tasks()

	tasks.Customize("nativeBuild", func(t *Task) {
		t.Invoke("classpath", `"$buildDir/resources/aot"`, `"$buildDir/classes/java/aot"`)
	})
	tasks.Customize("nativeBuild", func(t *Task) {
		t.Invoke("classpath", `"$buildDir/resources/aot"`, `"$buildDir/classes/java/aot"`)
	})

	if tasks.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tasks.Len())
	}
	task, ok := tasks.Get("nativeBuild")
	if !ok {
		t.Fatal("Get(nativeBuild) not found")
	}
	invs := task.Invocations()
	if len(invs) != 1 {
		t.Fatalf("Invocations() = %d, want 1", len(invs))
	}
	if len(invs[0].Arguments) != 2 {
		t.Errorf("Arguments = %v", invs[0].Arguments)
	}
}

func TestTask_Attributes(t *testing.T) {
	task := &Task{Name: "bootBuildImage"}
	if !task.Empty() {
		t.Error("new task should be empty")
	}

	task.Attribute("builder", "'a'")
	task.Attribute("environment", "[:]")
	task.Attribute("builder", "'b'")

	if v, _ := task.AttributeValue("builder"); v != "'b'" {
		t.Errorf("builder = %q, want 'b'", v)
	}
	if got := task.Attributes(); !slices.Equal(got, []string{"builder", "environment"}) {
		t.Errorf("Attributes() = %v", got)
	}
	if task.Empty() {
		t.Error("task with attributes reported empty")
	}
}

func TestTaskContainer_GetReturnsCopy(t *testing.T) {
	tasks := NewBuild().Tasks()
	tasks.Customize("nativeBuild", func(t *Task) { t.Invoke("classpath", "a") })

	task, _ := tasks.Get("nativeBuild")
	task.Invoke("classpath", "b")
	task.Attribute("x", "y")

	orig, _ := tasks.Get("nativeBuild")
	inv, _ := orig.Invocation("classpath")
	if !slices.Equal(inv.Arguments, []string{"a"}) {
		t.Errorf("registry mutated through Get(): %v", inv.Arguments)
	}
	if _, ok := orig.AttributeValue("x"); ok {
		t.Error("registry attribute mutated through Get()")
	}
}

func TestBuild_CloneIsIndependent(t *testing.T) {
	b := NewBuild()
	b.Dependencies().Add("native", Dependency{GroupID: "g", ArtifactID: "a", Version: "1"})
	b.Plugins().Add("p", func(p *Plugin) { p.Version = "1" })
	b.PluginRepositories().Add("r")
	b.Tasks().Customize("t", func(t *Task) { t.Invoke("x", "1") })

	c := b.Clone()
	c.Dependencies().Remove("native")
	c.Plugins().Add("p", func(p *Plugin) { p.Version = "2" })
	c.PluginRepositories().Add("r2")
	c.Tasks().Customize("t", func(t *Task) { t.Invoke("x", "2") })

	if !b.Dependencies().Has("native") {
		t.Error("clone removal leaked into original")
	}
	if p, _ := b.Plugins().Get("p"); p.Version != "1" {
		t.Errorf("original plugin version = %q", p.Version)
	}
	if b.PluginRepositories().Has("r2") {
		t.Error("clone repository leaked into original")
	}
	task, _ := b.Tasks().Get("t")
	if inv, _ := task.Invocation("x"); !slices.Equal(inv.Arguments, []string{"1"}) {
		t.Errorf("original task invocation = %v", inv.Arguments)
	}

	var nilBuild *Build
	if nilBuild.Clone() != nil {
		t.Error("nil Clone() should be nil")
	}
	if (&Build{}).Clone().Complete() {
		t.Error("clone of zero Build should stay incomplete")
	}
}
