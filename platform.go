package springnative

import (
	"fmt"
	"strings"

	"github.com/bazelbuild/buildtools/build"

	"github.com/albertocavalcante/go-springnative/gradle"
)

// PlatformCustomizer customizes the Spring Boot plugin for one Gradle DSL.
// It is called exactly once per generation pass with the same build the
// customizer works on.
type PlatformCustomizer interface {
	CustomizeSpringBootPlugin(b *gradle.Build) error
}

// PlatformFunc adapts a function to PlatformCustomizer.
type PlatformFunc func(b *gradle.Build) error

// CustomizeSpringBootPlugin calls f(b).
func (f PlatformFunc) CustomizeSpringBootPlugin(b *gradle.Build) error {
	return f(b)
}

// Task and image settings shared by the DSL strategies.
const (
	BootBuildImageTask     = "bootBuildImage"
	BootBuildImageTaskType = "org.springframework.boot.gradle.tasks.bundling.BootBuildImage"
	NativeImageBuilder     = "paketobuildpacks/builder:tiny"
	NativeImageEnvVar      = "BP_NATIVE_IMAGE"
)

// GroovyDSL configures bootBuildImage for build.gradle.
type GroovyDSL struct{}

// CustomizeSpringBootPlugin sets the tiny builder and enables native image
// support in the buildpack environment.
func (GroovyDSL) CustomizeSpringBootPlugin(b *gradle.Build) error {
	b.Tasks().Customize(BootBuildImageTask, func(t *gradle.Task) {
		t.Attribute("builder", groovyString(NativeImageBuilder))
		t.Attribute("environment", fmt.Sprintf("[%s: %s]", groovyString(NativeImageEnvVar), groovyString("true")))
	})
	return nil
}

// KotlinDSL configures the typed bootBuildImage task for build.gradle.kts.
type KotlinDSL struct{}

// CustomizeSpringBootPlugin sets the tiny builder and enables native image
// support in the buildpack environment.
func (KotlinDSL) CustomizeSpringBootPlugin(b *gradle.Build) error {
	b.Tasks().Customize(BootBuildImageTask, func(t *gradle.Task) {
		t.Type = BootBuildImageTaskType
		t.Attribute("builder", kotlinString(NativeImageBuilder))
		t.Attribute("environment", fmt.Sprintf("mapOf(%s to %s)", kotlinString(NativeImageEnvVar), kotlinString("true")))
	})
	return nil
}

// PlatformFor returns the strategy for a DSL name: "groovy" or "kotlin".
func PlatformFor(dsl string) (PlatformCustomizer, error) {
	switch strings.ToLower(strings.TrimSpace(dsl)) {
	case "groovy", "gradle":
		return GroovyDSL{}, nil
	case "kotlin", "kts", "gradle.kts":
		return KotlinDSL{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDSL, dsl)
	}
}

func groovyString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

// kotlinString quotes s as a double-quoted literal. Starlark and Kotlin share
// the escaping rules for the characters that occur in these values.
func kotlinString(s string) string {
	return build.FormatString(&build.StringExpr{Value: s})
}
