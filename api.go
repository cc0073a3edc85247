// Package springnative customizes Gradle build models for Spring Native
// projects.
//
// # Overview
//
// The package provides three main components:
//
//   - nativetools: maps a Spring Native version to a compatible GraalVM
//     native build tools plugin version
//   - gradle: the in-memory build model the customizer mutates
//   - Customizer: the generation pass that adds the AOT plugin, the native
//     build tools plugin and its repository, removes the native dependency and
//     wires the nativeBuild task
//
// # Quick Start
//
//	b, _ := modelfile.ParseFile("BUILD.model")
//
//	// Groovy DSL, default compatibility table
//	err := springnative.Customize(b, "groovy")
//
//	// Kotlin DSL with logging
//	c, _ := springnative.New(springnative.KotlinDSL{}, springnative.WithLogger(slog.Default()))
//	err = c.Customize(b)
//
// # Thread Safety
//
// Customizers and compatibility tables are safe for concurrent use. A build
// model belongs to one generation pass and must not be shared.
package springnative

import (
	"github.com/albertocavalcante/go-springnative/gradle"
	"github.com/albertocavalcante/go-springnative/nativetools"
)

// Customize runs one generation pass on b for the named Gradle DSL
// ("groovy" or "kotlin").
func Customize(b *gradle.Build, dsl string, opts ...Option) error {
	platform, err := PlatformFor(dsl)
	if err != nil {
		return err
	}
	c, err := New(platform, opts...)
	if err != nil {
		return err
	}
	return c.Customize(b)
}

// ResolveNativeBuildTools returns the native build tools version compatible
// with springNativeVersion using the built-in compatibility table.
func ResolveNativeBuildTools(springNativeVersion string) (string, bool) {
	return nativetools.Resolve(springNativeVersion)
}
