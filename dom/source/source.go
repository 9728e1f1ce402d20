package source

import "sort"

// Tag is a read-only view of one tag description.
type Tag interface {
	Name() string            // tag name, empty for anonymous text runs
	Attributes() []Attribute // attributes with unique keys
	Payload() Payload        // either children or text
}

// Attribute is a key/value pair of a tag.
type Attribute struct {
	Key, Value string
}

// Payload is either an ordered sequence of child tags or a text string.
type Payload interface {
	Match() Matcher
	isPayload()
}

// Matcher discriminates the two variants of a Payload, see package doc.
type Matcher interface {
	Children(*[]Tag) Matcher
	Text(*string) Matcher
}

// Children creates a payload of child tags.
func Children(tags ...Tag) Payload {
	return &children{tags: tags}
}

// Text creates a text payload.
func Text(s string) Payload {
	return &text{s: s}
}

type children struct {
	tags []Tag
}

func (c *children) isPayload() {}

func (c *children) Match() Matcher {
	return childrenMatcher{c}
}

type childrenMatcher struct {
	c *children
}

func (m childrenMatcher) Children(tags *[]Tag) Matcher {
	if tags != nil {
		*tags = m.c.tags
	}
	return m
}

func (m childrenMatcher) Text(*string) Matcher {
	return nil
}

type text struct {
	s string
}

func (t *text) isPayload() {}

func (t *text) Match() Matcher {
	return textMatcher{t}
}

type textMatcher struct {
	t *text
}

func (m textMatcher) Children(*[]Tag) Matcher {
	return nil
}

func (m textMatcher) Text(s *string) Matcher {
	if s != nil {
		*s = m.t.s
	}
	return m
}

// --- Literal tags ----------------------------------------------------------

// Literal is a tag constructed in code.
type Literal struct {
	name    string
	attrs   []Attribute
	payload Payload
}

// T creates a literal tag with child tags. attrs may be nil.
func T(name string, attrs map[string]string, kids ...Tag) *Literal {
	return &Literal{name: name, attrs: sortedAttrs(attrs), payload: Children(kids...)}
}

// Txt creates a literal tag with a text payload. An empty name denotes
// a text run without an enclosing element.
func Txt(name string, attrs map[string]string, s string) *Literal {
	return &Literal{name: name, attrs: sortedAttrs(attrs), payload: Text(s)}
}

// Name is part of interface Tag.
func (l *Literal) Name() string { return l.name }

// Attributes is part of interface Tag.
func (l *Literal) Attributes() []Attribute { return l.attrs }

// Payload is part of interface Tag.
func (l *Literal) Payload() Payload { return l.payload }

var _ Tag = &Literal{}

func sortedAttrs(attrs map[string]string) []Attribute {
	if len(attrs) == 0 {
		return nil
	}
	r := make([]Attribute, 0, len(attrs))
	for k, v := range attrs {
		r = append(r, Attribute{Key: k, Value: v})
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Key < r[j].Key })
	return r
}
