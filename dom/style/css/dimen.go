package css

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/doctree/dom/style"
	"github.com/npillmayer/tyse/core/dimen"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	dimenNoValue  uint32 = 0x0005 // CSS "none", e.g. for max-width
	kindMask      uint32 = 0x000f

	// Flags for content dependent dimensions
	DimenContentMax uint32 = 0x0010
	DimenContentMin uint32 = 0x0020
	DimenContentFit uint32 = 0x0030
	contentMask     uint32 = 0x00f0

	dimenEM      uint32 = 0x0100
	dimenEX      uint32 = 0x0200
	dimenCH      uint32 = 0x0300
	dimenREM     uint32 = 0x0400
	dimenVW      uint32 = 0x0500
	dimenVH      uint32 = 0x0600
	dimenVMIN    uint32 = 0x0700
	dimenVMAX    uint32 = 0x0800
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d     dimen.DU
	x     float64 // magnitude of relative units and percentages
	flags uint32
}

/*
type DimenT
	= Auto
	| Inherit
	| Initial
	| None
	| JustDimen dimen
	| Percentage x
	| ViewRel unit x
	| FontRel unit x
	| ContentRel Min|Max|Fit
*/

// Auto creates a CSS dimension of value `auto`.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Inherit creates a CSS dimension of value `inherit`.
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial creates a CSS dimension of value `initial`.
func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// None creates a CSS dimension of value `none`.
func None() DimenT {
	return DimenT{flags: dimenNoValue}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n float64) DimenT {
	return DimenT{x: n, flags: dimenPercent}
}

// IsAbsolute is true for fixed dimensions.
func (d DimenT) IsAbsolute() bool {
	return d.flags&kindMask == dimenAbsolute
}

// IsAuto is true for dimension `auto`.
func (d DimenT) IsAuto() bool {
	return d.flags&kindMask == dimenAuto
}

// IsNone is true for dimension `none`.
func (d DimenT) IsNone() bool {
	return d.flags&kindMask == dimenNoValue
}

// IsPercent is true for %-relative dimensions.
func (d DimenT) IsPercent() bool {
	return d.flags&relativeMask == dimenPercent
}

// IsRelative is true for font-, viewport- and %-relative dimensions which
// have not been resolved.
func (d DimenT) IsRelative() bool {
	return d.flags&relativeMask > 0
}

// Unwrap returns the fixed value of a dimension, or 0.
func (d DimenT) Unwrap() dimen.DU {
	if d.IsAbsolute() {
		return d.d
	}
	return 0
}

func (d DimenT) String() string {
	switch {
	case d.IsAbsolute():
		return strconv.FormatFloat(float64(d.d)/float64(dimen.BP), 'f', -1, 64) + "pt"
	case d.IsPercent():
		return strconv.FormatFloat(d.x, 'f', -1, 64) + "%"
	case d.IsRelative():
		return strconv.FormatFloat(d.x, 'f', -1, 64) + relativeUnitNames[d.flags&relativeMask]
	case d.IsAuto():
		return "auto"
	case d.IsNone():
		return "none"
	case d.flags&kindMask == dimenInherit:
		return "inherit"
	case d.flags&kindMask == dimenInitial:
		return "initial"
	}
	switch d.flags & contentMask {
	case DimenContentMax:
		return "max-content"
	case DimenContentMin:
		return "min-content"
	case DimenContentFit:
		return "fit-content"
	}
	return "<unset>"
}

var relativeUnitNames = map[uint32]string{
	dimenEM: "em", dimenEX: "ex", dimenCH: "ch", dimenREM: "rem",
	dimenVW: "vw", dimenVH: "vh", dimenVMIN: "vmin", dimenVMAX: "vmax",
}

// ---------------------------------------------------------------------------

// Match starts a pattern match on a dimension (see Matcher).
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher is used for matching DimenT values in switch statements.
type Matcher struct {
	dimen DimenT
}

// IsKind matches d if it is of the same kind as the matcher's dimension.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		if (m.dimen.flags&relativeMask == dimenPercent) != (d.flags&relativeMask == dimenPercent) {
			return nil
		}
		return m
	case (m.dimen.flags&contentMask > 0) && (d.flags&contentMask > 0):
		return m
	case m.dimen.flags&relativeMask == 0 && d.flags&relativeMask == 0 &&
		(m.dimen.flags&kindMask) == (d.flags&kindMask):
		return m
	}
	return nil
}

// Just matches fixed dimensions and extracts their value.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.IsAbsolute() {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// Percentage matches %-relative dimensions and extracts the percentage.
func (m *Matcher) Percentage(p *float64) *Matcher {
	if m.dimen.IsPercent() {
		if p != nil {
			*p = m.dimen.x
		}
		return m
	}
	return nil
}

// --- Parsing and resolving -------------------------------------------------

// UnitContext holds the references for resolving relative units.
type UnitContext struct {
	FontSize       dimen.DU // for em
	RootFontSize   dimen.DU // for rem
	XHeight        dimen.DU // for ex; 0 means 0.5em
	ViewportWidth  dimen.DU // for vw, vmin, vmax
	ViewportHeight dimen.DU // for vh, vmin, vmax
}

// bpPerUnit holds the size of absolute units in big points (1/72 inch).
var bpPerUnit = map[string]float64{
	"pt": 1,
	"px": 0.75,
	"pc": 12,
	"in": 72,
	"cm": 72 / 2.54,
	"mm": 72 / 25.4,
	"q":  72 / 101.6,
}

// Pixels converts CSS pixels to design units.
func Pixels(n int) dimen.DU {
	return dimen.DU(math.Round(float64(n) * bpPerUnit["px"] * float64(dimen.BP)))
}

var relativeUnits = map[string]uint32{
	"em": dimenEM, "ex": dimenEX, "ch": dimenCH, "rem": dimenREM,
	"vw": dimenVW, "vh": dimenVH, "vmin": dimenVMIN, "vmax": dimenVMAX,
}

// ParseDimen interprets a property value as a dimension. Relative units
// stay unresolved (see Resolve). Unitless numbers other than 0 are not
// legal CSS lengths and result in an error.
func ParseDimen(p style.Property) (DimenT, error) {
	s := strings.ToLower(strings.TrimSpace(string(p)))
	switch s {
	case "":
		return DimenT{}, fmt.Errorf("empty dimension")
	case "auto":
		return Auto(), nil
	case "none":
		return None(), nil
	case "inherit":
		return Inherit(), nil
	case "initial":
		return Initial(), nil
	case "max-content":
		return DimenT{flags: DimenContentMax}, nil
	case "min-content":
		return DimenT{flags: DimenContentMin}, nil
	case "fit-content":
		return DimenT{flags: DimenContentFit}, nil
	case "thin":
		return JustDimen(dimen.DU(math.Round(0.75 * float64(dimen.BP)))), nil
	case "medium":
		return JustDimen(dimen.DU(math.Round(2.25 * float64(dimen.BP)))), nil
	case "thick":
		return JustDimen(dimen.DU(math.Round(3.75 * float64(dimen.BP)))), nil
	}
	num, unit := splitNumber(s)
	x, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return DimenT{}, fmt.Errorf("not a dimension: %q", s)
	}
	switch {
	case unit == "%":
		return Percentage(x), nil
	case unit == "":
		if x != 0 {
			return DimenT{}, fmt.Errorf("missing unit in dimension %q", s)
		}
		return JustDimen(0), nil
	}
	if bp, ok := bpPerUnit[unit]; ok {
		return JustDimen(dimen.DU(math.Round(x * bp * float64(dimen.BP)))), nil
	}
	if flag, ok := relativeUnits[unit]; ok {
		return DimenT{x: x, flags: flag}, nil
	}
	return DimenT{}, fmt.Errorf("unknown unit in dimension %q", s)
}

func splitNumber(s string) (string, string) {
	i := 0
	for i < len(s) {
		c := s[i]
		if (c >= '0' && c <= '9') || c == '.' || c == '+' || c == '-' {
			i++
			continue
		}
		if (c == 'e') && i+1 < len(s) && (s[i+1] >= '0' && s[i+1] <= '9' || s[i+1] == '-' || s[i+1] == '+') {
			i++ // exponent, but not "em"/"ex"
			continue
		}
		break
	}
	return s[:i], s[i:]
}

// Resolve converts font- and viewport-relative dimensions to fixed ones.
// Percentages and keywords are returned unchanged.
func (d DimenT) Resolve(ctx UnitContext) DimenT {
	if !d.IsRelative() || d.IsPercent() {
		return d
	}
	var base float64
	fs := float64(ctx.FontSize)
	w, h := float64(ctx.ViewportWidth), float64(ctx.ViewportHeight)
	switch d.flags & relativeMask {
	case dimenEM:
		base = fs
	case dimenEX:
		base = float64(ctx.XHeight)
		if base == 0 {
			base = fs / 2
		}
	case dimenCH:
		base = fs / 2
	case dimenREM:
		base = float64(ctx.RootFontSize)
	case dimenVW:
		base = w / 100
	case dimenVH:
		base = h / 100
	case dimenVMIN:
		base = min(w, h) / 100
	case dimenVMAX:
		base = max(w, h) / 100
	}
	return JustDimen(dimen.DU(math.Round(d.x * base)))
}

// Property is an alias for style.Property, for convenience of clients
// parsing dimensions.
type Property = style.Property
