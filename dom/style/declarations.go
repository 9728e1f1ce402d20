package style

import (
	"sort"
	"strings"
)

// Origin is the origin of a style declaration. Origins are applied in
// ascending order, i.e., a later origin overrides an earlier one.
type Origin uint8

// Origins of style declarations, in order of application.
const (
	UserAgentOrigin Origin = iota // master stylesheet
	HintOrigin                    // presentational attributes, e.g. bgcolor
	AuthorOrigin                  // document stylesheets
	InlineOrigin                  // style attributes
	OverrideOrigin                // user stylesheet supplied by the caller
	AnonymousOrigin               // synthesized for anonymous nodes
)

func (o Origin) String() string {
	switch o {
	case UserAgentOrigin:
		return "user-agent"
	case HintOrigin:
		return "hint"
	case AuthorOrigin:
		return "author"
	case InlineOrigin:
		return "inline"
	case OverrideOrigin:
		return "override"
	case AnonymousOrigin:
		return "anonymous"
	}
	return "?"
}

// Declared is a declared (but not yet resolved) property value.
type Declared struct {
	Value     Property
	Important bool
	Origin    Origin
}

// ValueCheck reports whether a value is valid for a property.
type ValueCheck func(key string, value Property) bool

// Declarations collects the declarations applying to a node, i.e. the result
// of the cascade before computing values. nil is not a legal receiver.
type Declarations struct {
	m     map[string]Declared
	check ValueCheck
}

// NewDeclarations creates an empty set of declarations. Values failing
// check are dropped when added, leaving a declaration of lower precedence
// in place. check may be nil.
func NewDeclarations(check ValueCheck) *Declarations {
	return &Declarations{m: make(map[string]Declared), check: check}
}

// Add declares a property value. A value replaces an existing one, unless
// the existing one is marked important and the new one is not.
// Shorthand properties are split into their components. Values which cannot
// be interpreted are dropped.
func (d *Declarations) Add(key string, value Property, important bool, origin Origin) {
	key = strings.ToLower(strings.TrimSpace(key))
	value = Property(strings.TrimSpace(string(value)))
	if key == "" || value.IsEmpty() {
		return
	}
	if IsCompound(key) {
		kvs, err := SplitCompoundProperty(key, value)
		if err != nil {
			tracer().Debugf("dropping declaration %s: %v", key, err)
			return
		}
		for _, kv := range kvs {
			d.add(kv.Key, kv.Value, important, origin)
		}
		return
	}
	d.add(key, value, important, origin)
}

func (d *Declarations) add(key string, value Property, important bool, origin Origin) {
	if d.check != nil && !d.check(key, value) {
		tracer().Debugf("dropping invalid declaration %s: %s", key, value)
		return
	}
	if prev, ok := d.m[key]; ok && prev.Important && !important {
		return
	}
	d.m[key] = Declared{Value: value, Important: important, Origin: origin}
}

// Get returns the declaration for a key.
func (d *Declarations) Get(key string) (Declared, bool) {
	decl, ok := d.m[key]
	return decl, ok
}

// Len is the number of properties declared.
func (d *Declarations) Len() int {
	return len(d.m)
}

// Keys returns all declared property keys, sorted.
func (d *Declarations) Keys() []string {
	keys := make([]string, 0, len(d.m))
	for k := range d.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clear removes all declarations.
func (d *Declarations) Clear() {
	clear(d.m)
}
