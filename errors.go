package springnative

import (
	"errors"
	"fmt"
)

// Sentinel errors for customization failures.
var (
	// ErrNativeDependencyMissing indicates the build has no "native" dependency.
	// The customizer must only run for projects that selected Spring Native.
	ErrNativeDependencyMissing = errors.New("native dependency not found")

	// ErrNativeVersionMissing indicates the "native" dependency has no version.
	ErrNativeVersionMissing = errors.New("native dependency has no version")

	// ErrInvalidBuild indicates a nil build or a build without its containers.
	ErrInvalidBuild = errors.New("build model is incomplete")

	// ErrUnknownDSL indicates an unsupported Gradle DSL name.
	ErrUnknownDSL = errors.New("unknown gradle dsl")

	// ErrNilPlatform indicates a customizer was created without a platform strategy.
	ErrNilPlatform = errors.New("platform customizer is nil")
)

// PreconditionError reports a build rejected before the generation pass
// changed anything. The build is left untouched; the error is not retryable
// with the same input.
type PreconditionError struct {
	Step string
	Err  error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("spring native customization failed at %q: %v", e.Step, e.Err)
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

// StepError reports a step that failed after the generation pass started
// changing the build. The build is partially customized and must be discarded.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("spring native customization aborted at %q: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
