package css

import (
	"strings"

	"github.com/npillmayer/doctree/dom/style"
)

// positionScheme enumerates the values of the CSS position property.
type positionScheme uint8

const (
	positionUnset positionScheme = iota
	positionStatic
	positionRelative
	positionAbsolute
	positionFixed
	positionSticky
)

var positionKeywords = [...]string{"unset", "static", "relative", "absolute", "fixed", "sticky"}

// PosDir is one of Top, Right, Bottom or Left.
type PosDir uint8

// Directions of position offsets, in the order of CSS shorthands.
const (
	Top PosDir = iota
	Right
	Bottom
	Left
)

// PositionOffset is the offset of a positioned box in one direction.
type PositionOffset struct {
	Dim DimenT
	Dir PosDir
}

// PositionT is the computed positioning scheme of a box together with its
// offsets. Offsets are held for positioned boxes only, i.e. for any
// scheme other than static.
type PositionT struct {
	scheme  positionScheme
	offsets [4]DimenT
}

// Position interprets a property value. Unknown values yield an unset
// position.
func Position(p style.Property) PositionT {
	kw := strings.ToLower(strings.TrimSpace(string(p)))
	for i, k := range positionKeywords {
		if i > 0 && k == kw {
			return PositionT{scheme: positionScheme(i)}
		}
	}
	return PositionT{}
}

// Static is the position of boxes in normal flow.
func Static() PositionT {
	return PositionT{scheme: positionStatic}
}

// Fixed creates a viewport-relative position with the given offsets.
func Fixed(offsets ...PositionOffset) PositionT {
	return PositionT{scheme: positionFixed}.WithOffsets(offsets)
}

// WithOffsets returns a copy of p with offsets set. Directions not
// mentioned are auto. Static and unset positions ignore offsets.
func (p PositionT) WithOffsets(offsets []PositionOffset) PositionT {
	if !p.IsPositioned() {
		return p
	}
	r := PositionT{scheme: p.scheme}
	for dir := range r.offsets {
		r.offsets[dir] = Auto()
	}
	for _, o := range offsets {
		if o.Dir <= Left {
			r.offsets[o.Dir] = o.Dim
		}
	}
	return r
}

// Offset returns the offset for one direction.
func (p PositionT) Offset(dir PosDir) DimenT {
	if dir > Left || !p.IsPositioned() {
		return Auto()
	}
	return p.offsets[dir]
}

// Offsets returns the offsets of p, indexed by PosDir. Static and unset
// positions have no offsets.
func (p PositionT) Offsets() []PositionOffset {
	if !p.IsPositioned() {
		return nil
	}
	r := make([]PositionOffset, 4)
	for dir := Top; dir <= Left; dir++ {
		r[dir] = PositionOffset{Dim: p.offsets[dir], Dir: dir}
	}
	return r
}

func (p PositionT) String() string {
	return positionKeywords[p.scheme]
}

// IsUnset is true if no valid position has been set.
func (p PositionT) IsUnset() bool { return p.scheme == positionUnset }

// IsPositioned is true for any scheme except static and unset.
func (p PositionT) IsPositioned() bool { return p.scheme > positionStatic }

// IsRelative is true for relative positions.
func (p PositionT) IsRelative() bool { return p.scheme == positionRelative }

// IsAbsolute is true for absolute positions.
func (p PositionT) IsAbsolute() bool { return p.scheme == positionAbsolute }

// IsFixed is true for positions relative to the viewport.
func (p PositionT) IsFixed() bool { return p.scheme == positionFixed }

// IsSticky is true for sticky positions.
func (p PositionT) IsSticky() bool { return p.scheme == positionSticky }

// IsOutOfFlow is true if a box with position p is taken out of normal flow.
func (p PositionT) IsOutOfFlow() bool {
	return p.scheme == positionAbsolute || p.scheme == positionFixed
}

// --- Matching --------------------------------------------------------------

// Match discriminates positioning schemes:
//
//     var offsets []css.PositionOffset
//     switch m := pos.Match(); m {
//     case m.Static():
//         …
//     case m.Fixed(&offsets):
//         …
//     }
//
func (p PositionT) Match() *PMatcher {
	return &PMatcher{pos: p}
}

// PMatcher is a helper for matching positions, see PositionT.Match.
type PMatcher struct {
	pos PositionT
}

func (m *PMatcher) scheme(s positionScheme, o *[]PositionOffset) *PMatcher {
	if m.pos.scheme != s {
		return nil
	}
	if o != nil {
		*o = m.pos.Offsets()
	}
	return m
}

// Static matches static and unset positions.
func (m *PMatcher) Static() *PMatcher {
	if m.pos.IsPositioned() {
		return nil
	}
	return m
}

// Relative matches relative positions and extracts the offsets.
func (m *PMatcher) Relative(o *[]PositionOffset) *PMatcher {
	return m.scheme(positionRelative, o)
}

// Absolute matches absolute positions and extracts the offsets.
func (m *PMatcher) Absolute(o *[]PositionOffset) *PMatcher {
	return m.scheme(positionAbsolute, o)
}

// Fixed matches viewport-relative positions and extracts the offsets.
func (m *PMatcher) Fixed(o *[]PositionOffset) *PMatcher {
	return m.scheme(positionFixed, o)
}
