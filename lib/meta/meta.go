/*package meta decodes the YAML info string embedded in each PSP component
header into a generic tree. Lookups are explicit and fallible: a missing key
or a wrongly-typed value comes back as an error with the offending dotted
path in it, never as a runtime type failure.
*/
package meta

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Tree is a decoded metadata mapping. Nested mappings are addressed with
// dotted paths, e.g. "parameters.indexing".
type Tree struct {
	root map[string]interface{}
}

// Decode parses b as a YAML mapping. Scalar, sequence, or empty documents
// are rejected: a PSP info string is always a mapping at top level.
func Decode(b []byte) (*Tree, error) {
	root := map[string]interface{}{}
	if err := yaml.Unmarshal(b, &root); err != nil {
		return nil, fmt.Errorf("the info string does not parse as "+
			"YAML: %v", err)
	}
	return &Tree{root}, nil
}

// Map returns the raw decoded mapping. The tree still owns it; callers
// should not modify it.
func (t *Tree) Map() map[string]interface{} { return t.root }

// lookup walks the dotted path and returns the value at its end, if any.
func (t *Tree) lookup(path string) (interface{}, bool) {
	var v interface{} = t.root
	for _, key := range strings.Split(path, ".") {
		m, ok := v.(map[string]interface{})
		if !ok {
			return nil, false
		}
		v, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return v, true
}

// Has reports whether the dotted path names any value.
func (t *Tree) Has(path string) bool {
	_, ok := t.lookup(path)
	return ok
}

// Str returns the string at the dotted path.
func (t *Tree) Str(path string) (string, error) {
	v, ok := t.lookup(path)
	if !ok {
		return "", fmt.Errorf("no field '%s' in the metadata", path)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("the metadata field '%s' is a %T, not a "+
			"string", path, v)
	}
	return s, nil
}

// Bool returns the flag at the dotted path. EXP encodes flags either as
// YAML booleans or as 0/1 integers, so both are accepted.
func (t *Tree) Bool(path string) (bool, error) {
	v, ok := t.lookup(path)
	if !ok {
		return false, fmt.Errorf("no field '%s' in the metadata", path)
	}
	switch x := v.(type) {
	case bool:
		return x, nil
	case int:
		return x != 0, nil
	}
	return false, fmt.Errorf("the metadata field '%s' is a %T, not a "+
		"flag", path, v)
}

// Int returns the integer at the dotted path.
func (t *Tree) Int(path string) (int, error) {
	v, ok := t.lookup(path)
	if !ok {
		return 0, fmt.Errorf("no field '%s' in the metadata", path)
	}
	n, ok := v.(int)
	if !ok {
		return 0, fmt.Errorf("the metadata field '%s' is a %T, not an "+
			"integer", path, v)
	}
	return n, nil
}

// Float returns the float at the dotted path, accepting integers too.
func (t *Tree) Float(path string) (float64, error) {
	v, ok := t.lookup(path)
	if !ok {
		return 0, fmt.Errorf("no field '%s' in the metadata", path)
	}
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	}
	return 0, fmt.Errorf("the metadata field '%s' is a %T, not a "+
		"number", path, v)
}
