//go:build tools

// Package lint pins the linters run against go-springnative in their own
// module, so that the library's go.mod only lists what the library imports.
//
//	make lint
//	make staticcheck
package lint
