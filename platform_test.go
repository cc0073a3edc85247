package springnative

import (
	"errors"
	"testing"

	"github.com/albertocavalcante/go-springnative/gradle"
)

func TestGroovyDSL(t *testing.T) {
	b := gradle.NewBuild()
	if err := (GroovyDSL{}).CustomizeSpringBootPlugin(b); err != nil {
		t.Fatal(err)
	}

	task, ok := b.Tasks().Get(BootBuildImageTask)
	if !ok {
		t.Fatal("bootBuildImage not customized")
	}
	if task.Type != "" {
		t.Errorf("Type = %q, want untyped task", task.Type)
	}
	assertAttribute(t, task, "builder", "'paketobuildpacks/builder:tiny'")
	assertAttribute(t, task, "environment", "['BP_NATIVE_IMAGE': 'true']")
}

func TestKotlinDSL(t *testing.T) {
	b := gradle.NewBuild()
	if err := (KotlinDSL{}).CustomizeSpringBootPlugin(b); err != nil {
		t.Fatal(err)
	}

	task, ok := b.Tasks().Get(BootBuildImageTask)
	if !ok {
		t.Fatal("bootBuildImage not customized")
	}
	if task.Type != BootBuildImageTaskType {
		t.Errorf("Type = %q, want %q", task.Type, BootBuildImageTaskType)
	}
	assertAttribute(t, task, "builder", `"paketobuildpacks/builder:tiny"`)
	assertAttribute(t, task, "environment", `mapOf("BP_NATIVE_IMAGE" to "true")`)
}

func TestPlatformFor(t *testing.T) {
	tests := []struct {
		dsl  string
		want PlatformCustomizer
	}{
		{"groovy", GroovyDSL{}},
		{"Groovy", GroovyDSL{}},
		{"gradle", GroovyDSL{}},
		{"kotlin", KotlinDSL{}},
		{" kts ", KotlinDSL{}},
		{"gradle.kts", KotlinDSL{}},
	}

	for _, tt := range tests {
		t.Run(tt.dsl, func(t *testing.T) {
			got, err := PlatformFor(tt.dsl)
			if err != nil {
				t.Fatalf("PlatformFor(%q) error: %v", tt.dsl, err)
			}
			if got != tt.want {
				t.Errorf("PlatformFor(%q) = %T, want %T", tt.dsl, got, tt.want)
			}
		})
	}

	for _, dsl := range []string{"", "maven", "scala"} {
		if _, err := PlatformFor(dsl); !errors.Is(err, ErrUnknownDSL) {
			t.Errorf("PlatformFor(%q) error = %v, want ErrUnknownDSL", dsl, err)
		}
	}
}

func TestGroovyString(t *testing.T) {
	if got := groovyString("it's"); got != `'it\'s'` {
		t.Errorf("groovyString() = %q", got)
	}
}

func TestKotlinString(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"paketobuildpacks/builder:tiny", `"paketobuildpacks/builder:tiny"`},
		{`say "hi"`, `"say \"hi\""`},
	}
	for _, tt := range tests {
		if got := kotlinString(tt.in); got != tt.want {
			t.Errorf("kotlinString(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func assertAttribute(t *testing.T, task *gradle.Task, name, want string) {
	t.Helper()
	got, ok := task.AttributeValue(name)
	if !ok {
		t.Errorf("attribute %q not set", name)
		return
	}
	if got != want {
		t.Errorf("attribute %q = %q, want %q", name, got, want)
	}
}
