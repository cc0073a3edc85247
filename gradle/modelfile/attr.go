package modelfile

import (
	"fmt"

	"github.com/bazelbuild/buildtools/build"
)

// attr returns the expression bound to a named argument of call.
func attr(call *build.CallExpr, name string) (build.Expr, bool) {
	for _, arg := range call.List {
		assign, ok := arg.(*build.AssignExpr)
		if !ok {
			continue
		}
		lhs, ok := assign.LHS.(*build.Ident)
		if !ok || lhs.Name != name {
			continue
		}
		return assign.RHS, true
	}
	return nil, false
}

// attrError reports an attribute whose value has the wrong type.
type attrError struct {
	line int
	msg  string
}

func (e *attrError) Error() string { return e.msg }

func wrongType(expr build.Expr, format string, args ...any) error {
	start, _ := expr.Span()
	return &attrError{line: start.Line, msg: fmt.Sprintf(format, args...)}
}

// stringAttr extracts a string attribute from a function call by name.
// If name is empty and the call has positional arguments, returns the first
// positional string argument.
// Returns empty string if the attribute is not found, and an error if it is
// present but not a string.
func stringAttr(call *build.CallExpr, name string) (string, error) {
	if name == "" {
		if len(call.List) > 0 {
			if str, ok := call.List[0].(*build.StringExpr); ok {
				return str.Value, nil
			}
		}
		return "", nil
	}

	expr, ok := attr(call, name)
	if !ok {
		return "", nil
	}
	str, ok := expr.(*build.StringExpr)
	if !ok {
		return "", wrongType(expr, "%s must be a string", name)
	}
	return str.Value, nil
}

// boolAttr extracts a boolean attribute. Returns def when the attribute is
// absent.
func boolAttr(call *build.CallExpr, name string, def bool) (bool, error) {
	expr, ok := attr(call, name)
	if !ok {
		return def, nil
	}
	if ident, ok := expr.(*build.Ident); ok {
		switch ident.Name {
		case "True":
			return true, nil
		case "False":
			return false, nil
		}
	}
	return def, wrongType(expr, "%s must be True or False", name)
}

// stringDictAttr extracts a dict of string to string.
func stringDictAttr(call *build.CallExpr, name string) (keys []string, values map[string]string, err error) {
	expr, ok := attr(call, name)
	if !ok {
		return nil, nil, nil
	}
	dict, ok := expr.(*build.DictExpr)
	if !ok {
		return nil, nil, wrongType(expr, "%s must be a dict", name)
	}
	values = make(map[string]string, len(dict.List))
	for _, kv := range dict.List {
		k, ok := kv.Key.(*build.StringExpr)
		if !ok {
			return nil, nil, wrongType(kv.Key, "%s keys must be strings", name)
		}
		v, ok := kv.Value.(*build.StringExpr)
		if !ok {
			return nil, nil, wrongType(kv.Value, "%s[%q] must be a string", name, k.Value)
		}
		if _, dup := values[k.Value]; !dup {
			keys = append(keys, k.Value)
		}
		values[k.Value] = v.Value
	}
	return keys, values, nil
}

// stringListDictAttr extracts a dict of string to list of strings.
func stringListDictAttr(call *build.CallExpr, name string) (keys []string, values map[string][]string, err error) {
	expr, ok := attr(call, name)
	if !ok {
		return nil, nil, nil
	}
	dict, ok := expr.(*build.DictExpr)
	if !ok {
		return nil, nil, wrongType(expr, "%s must be a dict", name)
	}
	values = make(map[string][]string, len(dict.List))
	for _, kv := range dict.List {
		k, ok := kv.Key.(*build.StringExpr)
		if !ok {
			return nil, nil, wrongType(kv.Key, "%s keys must be strings", name)
		}
		list, ok := kv.Value.(*build.ListExpr)
		if !ok {
			return nil, nil, wrongType(kv.Value, "%s[%q] must be a list of strings", name, k.Value)
		}
		items := make([]string, 0, len(list.List))
		for _, elem := range list.List {
			str, ok := elem.(*build.StringExpr)
			if !ok {
				return nil, nil, wrongType(elem, "%s[%q] must be a list of strings", name, k.Value)
			}
			items = append(items, str.Value)
		}
		if _, dup := values[k.Value]; !dup {
			keys = append(keys, k.Value)
		}
		values[k.Value] = items
	}
	return keys, values, nil
}

// funcName returns the function name from a CallExpr.
// Returns empty string for method calls like foo.bar().
func funcName(call *build.CallExpr) string {
	if ident, ok := call.X.(*build.Ident); ok {
		return ident.Name
	}
	return ""
}

func str(s string) *build.StringExpr {
	return &build.StringExpr{Value: s}
}

func kwarg(name string, value build.Expr) *build.AssignExpr {
	return &build.AssignExpr{LHS: &build.Ident{Name: name}, Op: "=", RHS: value}
}

func boolean(b bool) *build.Ident {
	if b {
		return &build.Ident{Name: "True"}
	}
	return &build.Ident{Name: "False"}
}
