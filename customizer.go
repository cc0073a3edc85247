package springnative

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/albertocavalcante/go-springnative/gradle"
)

// Identifiers touched by the customizer.
const (
	NativeDependencyID     = "native"
	AOTPluginID            = "org.springframework.experimental.aot"
	NativeBuildToolsPlugin = "org.graalvm.buildtools.native"
	NativeBuildTask        = "nativeBuild"
	ClasspathInvocation    = "classpath"
)

// Customizer adapts a Gradle build for Spring Native.
//
// A Customizer holds only immutable configuration and may be shared by
// concurrent generation passes, as long as each pass uses its own build.
type Customizer struct {
	platform PlatformCustomizer
	cfg      *config
}

// New creates a Customizer that delegates Spring Boot plugin customization
// to platform.
func New(platform PlatformCustomizer, opts ...Option) (*Customizer, error) {
	if platform == nil {
		return nil, ErrNilPlatform
	}
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("configure customizer: %w", err)
	}
	return &Customizer{platform: platform, cfg: cfg}, nil
}

// Order returns the position of this customizer in a chain.
func (c *Customizer) Order() int {
	return c.cfg.order
}

// Customize runs one generation pass over b:
//
//  1. read the version of the "native" dependency
//  2. add the AOT plugin at that version
//  3. resolve the native build tools version; when known, add the
//     maven-central plugin repository and the native build tools plugin
//  4. remove the "native" dependency, now brought in by the AOT plugin
//  5. let the platform strategy customize the Spring Boot plugin
//  6. when a native build tools version was resolved, point the nativeBuild
//     task at the AOT output
//
// Preconditions are checked before anything is changed, so a build rejected
// with a *PreconditionError is left untouched. An error from the platform
// strategy is returned as a *StepError after steps 1-4 have been applied; the
// build must then be discarded.
func (c *Customizer) Customize(b *gradle.Build) error {
	log := c.cfg.log()

	springNativeVersion, err := nativeVersion(b)
	if err != nil {
		return &PreconditionError{Step: "read native dependency", Err: err}
	}

	var before *gradle.Build
	if log.Enabled(context.Background(), slog.LevelInfo) {
		before = b.Clone()
	}

	b.Plugins().Add(AOTPluginID, func(p *gradle.Plugin) {
		p.Version = springNativeVersion
	})

	toolsVersion, resolved := c.cfg.resolver.Resolve(springNativeVersion)
	if resolved {
		log.Debug("resolved native build tools version",
			"spring_native", springNativeVersion,
			"native_build_tools", toolsVersion)

		// the native build tools plugin is not published to the Gradle plugin portal
		b.PluginRepositories().Add(gradle.RepositoryMavenCentral)
		b.Plugins().Add(NativeBuildToolsPlugin, func(p *gradle.Plugin) {
			p.Version = toolsVersion
		})
	} else {
		log.Debug("no compatible native build tools version, skipping plugin",
			"spring_native", springNativeVersion)
	}

	b.Dependencies().Remove(NativeDependencyID)

	if err := c.platform.CustomizeSpringBootPlugin(b); err != nil {
		return &StepError{Step: "customize platform plugin", Err: err}
	}

	if resolved {
		b.Tasks().Customize(NativeBuildTask, func(t *gradle.Task) {
			t.Invoke(ClasspathInvocation, c.cfg.classpath)
		})
	}

	if before != nil {
		diff := gradle.Diff(before, b)
		log.Info("customized build for spring native",
			"spring_native", springNativeVersion,
			"native_build_tools", toolsVersion,
			"changes", diff.TotalChanges())
	}

	return nil
}

func nativeVersion(b *gradle.Build) (string, error) {
	if !b.Complete() {
		return "", ErrInvalidBuild
	}
	dep, ok := b.Dependencies().Get(NativeDependencyID)
	if !ok {
		return "", ErrNativeDependencyMissing
	}
	if dep.Version == "" {
		return "", ErrNativeVersionMissing
	}
	return dep.Version, nil
}
