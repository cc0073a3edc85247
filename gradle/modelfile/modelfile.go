// Package modelfile reads and writes snapshots of a gradle.Build in a small
// Starlark dialect, parsed with github.com/bazelbuild/buildtools/build.
//
// A snapshot is a list of top-level calls:
//
//	dependency(id = "native", group = "org.springframework.experimental", artifact = "spring-native", version = "0.10.3")
//	plugin(id = "org.springframework.boot", version = "2.5.2")
//	plugin_repository(id = "maven-central")
//	task(
//	    name = "nativeBuild",
//	    invoke = {"classpath": ["\"$buildDir/resources/aot\", \"$buildDir/classes/java/aot\""]},
//	)
//
// Snapshots are fixtures for tests and input for the command line tool; they
// are not Gradle build scripts.
package modelfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/bazelbuild/buildtools/build"

	"github.com/albertocavalcante/go-springnative/gradle"
)

// Statement names.
const (
	stmtDependency       = "dependency"
	stmtPlugin           = "plugin"
	stmtPluginRepository = "plugin_repository"
	stmtTask             = "task"
)

// Error reports a problem with a snapshot statement.
type Error struct {
	Filename string
	Line     int
	Message  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Filename, e.Line, e.Message)
}

// ParseFile reads and parses a snapshot from disk.
func ParseFile(path string) (*gradle.Build, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model file: %w", err)
	}
	return Parse(path, data)
}

// Parse parses snapshot content into a new build.
func Parse(filename string, data []byte) (*gradle.Build, error) {
	f, err := build.ParseDefault(filename, data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	b := gradle.NewBuild()
	for _, stmt := range f.Stmt {
		if err := apply(b, filename, stmt); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func apply(b *gradle.Build, filename string, stmt build.Expr) error {
	start, _ := stmt.Span()
	fail := func(format string, args ...any) error {
		return &Error{Filename: filename, Line: start.Line, Message: fmt.Sprintf(format, args...)}
	}

	call, ok := stmt.(*build.CallExpr)
	if !ok {
		return fail("unexpected statement, want a call")
	}

	a := attrReader{call: call}
	switch name := funcName(call); name {
	case stmtDependency:
		id := a.get("id")
		dep := gradle.Dependency{
			GroupID:    a.get("group"),
			ArtifactID: a.get("artifact"),
			Version:    a.get("version"),
			Scope:      gradle.Scope(a.get("scope")),
		}
		if a.err != nil {
			return attrFailure(filename, a.err)
		}
		if id == "" {
			return fail("dependency requires id")
		}
		b.Dependencies().Add(id, dep)

	case stmtPlugin:
		id := a.get("id")
		version := a.get("version")
		applied, err := boolAttr(call, "apply", true)
		if a.err == nil {
			a.err = err
		}
		if a.err != nil {
			return attrFailure(filename, a.err)
		}
		if id == "" {
			return fail("plugin requires id")
		}
		b.Plugins().Add(id, func(p *gradle.Plugin) {
			p.Version = version
			p.Apply = applied
		})

	case stmtPluginRepository:
		id := a.get("id")
		if id == "" {
			id = a.get("")
		}
		if a.err != nil {
			return attrFailure(filename, a.err)
		}
		if id == "" {
			return fail("plugin_repository requires id")
		}
		b.PluginRepositories().Add(id)

	case stmtTask:
		taskName := a.get("name")
		typ := a.get("type")
		if a.err != nil {
			return attrFailure(filename, a.err)
		}
		if taskName == "" {
			return fail("task requires name")
		}
		attrKeys, attrs, err := stringDictAttr(call, "attributes")
		if err != nil {
			return attrFailure(filename, err)
		}
		invokeKeys, invokes, err := stringListDictAttr(call, "invoke")
		if err != nil {
			return attrFailure(filename, err)
		}
		b.Tasks().Customize(taskName, func(t *gradle.Task) {
			if typ != "" {
				t.Type = typ
			}
			for _, k := range attrKeys {
				t.Attribute(k, attrs[k])
			}
			for _, k := range invokeKeys {
				t.Invoke(k, invokes[k]...)
			}
		})

	case "":
		return fail("unexpected method call")
	default:
		return fail("unknown statement %q", name)
	}
	return nil
}

// attrReader reads string attributes and keeps the first type error.
type attrReader struct {
	call *build.CallExpr
	err  error
}

func (r *attrReader) get(name string) string {
	v, err := stringAttr(r.call, name)
	if err != nil && r.err == nil {
		r.err = err
	}
	return v
}

func attrFailure(filename string, err error) error {
	var ae *attrError
	if errors.As(err, &ae) {
		return &Error{Filename: filename, Line: ae.line, Message: ae.msg}
	}
	return err
}

// Format renders b as a snapshot. Missing containers are skipped.
func Format(b *gradle.Build) []byte {
	f := &build.File{Path: "BUILD.model", Type: build.TypeDefault}
	if b == nil {
		return build.Format(f)
	}

	if deps := b.Dependencies(); deps != nil {
		for _, id := range deps.IDs() {
			d, _ := deps.Get(id)
			args := []build.Expr{kwarg("id", str(id))}
			args = appendString(args, "group", d.GroupID)
			args = appendString(args, "artifact", d.ArtifactID)
			args = appendString(args, "version", d.Version)
			args = appendString(args, "scope", string(d.Scope))
			f.Stmt = append(f.Stmt, newCall(stmtDependency, args...))
		}
	}

	if plugins := b.Plugins(); plugins != nil {
		for _, p := range plugins.Values() {
			args := []build.Expr{kwarg("id", str(p.ID))}
			args = appendString(args, "version", p.Version)
			if !p.Apply {
				args = append(args, kwarg("apply", boolean(false)))
			}
			f.Stmt = append(f.Stmt, newCall(stmtPlugin, args...))
		}
	}

	if repos := b.PluginRepositories(); repos != nil {
		for _, id := range repos.IDs() {
			f.Stmt = append(f.Stmt, newCall(stmtPluginRepository, kwarg("id", str(id))))
		}
	}

	if tasks := b.Tasks(); tasks != nil {
		for _, name := range tasks.Names() {
			t, _ := tasks.Get(name)
			f.Stmt = append(f.Stmt, taskCall(t))
		}
	}

	return build.Format(f)
}

func taskCall(t *gradle.Task) *build.CallExpr {
	args := []build.Expr{kwarg("name", str(t.Name))}
	args = appendString(args, "type", t.Type)

	if names := t.Attributes(); len(names) > 0 {
		dict := &build.DictExpr{}
		for _, n := range names {
			v, _ := t.AttributeValue(n)
			dict.List = append(dict.List, &build.KeyValueExpr{Key: str(n), Value: str(v)})
		}
		args = append(args, kwarg("attributes", dict))
	}

	if invs := t.Invocations(); len(invs) > 0 {
		dict := &build.DictExpr{}
		for _, inv := range invs {
			list := &build.ListExpr{}
			for _, a := range inv.Arguments {
				list.List = append(list.List, str(a))
			}
			dict.List = append(dict.List, &build.KeyValueExpr{Key: str(inv.Target), Value: list})
		}
		args = append(args, kwarg("invoke", dict))
	}

	return newCall(stmtTask, args...)
}

func newCall(name string, args ...build.Expr) *build.CallExpr {
	return &build.CallExpr{X: &build.Ident{Name: name}, List: args}
}

func appendString(args []build.Expr, name, value string) []build.Expr {
	if value == "" {
		return args
	}
	return append(args, kwarg(name, str(value)))
}
