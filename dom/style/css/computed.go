package css

import (
	"image/color"
	"math"
	"strings"

	"github.com/npillmayer/doctree/dom/style"
	"github.com/npillmayer/tyse/core/dimen"
)

// Environment holds the references supplied by the rendering host for
// computing styles.
type Environment struct {
	DefaultFontSize dimen.DU                     // size of font-size `medium`
	ViewportWidth   dimen.DU                     // for vw units
	ViewportHeight  dimen.DU                     // for vh units
	XHeight         func(size dimen.DU) dimen.DU // font metrics; nil means 0.5em
}

func (env Environment) defaultFontSize() dimen.DU {
	if env.DefaultFontSize <= 0 {
		return 12 * dimen.BP // 16px
	}
	return env.DefaultFontSize
}

func (env Environment) xHeight(size dimen.DU) dimen.DU {
	if env.XHeight == nil {
		return 0
	}
	return env.XHeight(size)
}

// ComputedStyle holds the computed values of the properties declared for a
// node. Values of inherited properties which are not declared for a node are
// looked up at the ancestors; all other properties default to their
// initial values.
type ComputedStyle struct {
	parent   *ComputedStyle
	root     *ComputedStyle
	props    *style.PropertyMap
	lengths  map[string]DimenT
	fontSize dimen.DU
	display  DisplayMode
	position PositionT
}

// Compute computes the style of a node from its declarations and the
// computed style of its parent (nil for the root).
//
// Declarations which cannot be interpreted are dropped.
func Compute(decls *style.Declarations, parent *ComputedStyle, env Environment) *ComputedStyle {
	cs := &ComputedStyle{
		parent:  parent,
		props:   style.NewPropertyMap(),
		lengths: make(map[string]DimenT),
	}
	if parent == nil {
		cs.root = cs
	} else {
		cs.root = parent.root
	}
	cs.fontSize = computeFontSize(decls, parent, env)
	cs.props.Add("font-size", style.Property(JustDimen(cs.fontSize).String()))
	ctx := UnitContext{
		FontSize:       cs.fontSize,
		RootFontSize:   cs.root.fontSize,
		XHeight:        env.xHeight(cs.fontSize),
		ViewportWidth:  env.ViewportWidth,
		ViewportHeight: env.ViewportHeight,
	}
	for _, key := range decls.Keys() {
		if key == "font-size" {
			continue
		}
		decl, _ := decls.Get(key)
		cs.computeProperty(key, decl.Value, ctx)
	}
	for _, side := range []string{"top", "right", "bottom", "left"} {
		key := "border-" + side + "-width"
		if _, declared := cs.lengths[key]; !declared {
			continue
		}
		if bs := cs.GetPropertyValue("border-" + side + "-style"); bs == "none" || bs == "hidden" {
			cs.setLength(key, JustDimen(0))
		}
	}
	cs.display = cs.computeDisplay()
	cs.position = cs.computePosition()
	return cs
}

func (cs *ComputedStyle) computeProperty(key string, v style.Property, ctx UnitContext) {
	if v.IsUnset() {
		if style.IsCascading(key) {
			v = "inherit"
		} else {
			v = "initial"
		}
	}
	if v.IsInherit() {
		if cs.parent != nil {
			if style.IsLength(key) {
				cs.setLength(key, cs.parent.Length(key))
			} else {
				cs.props.Add(key, cs.parent.GetPropertyValue(key))
			}
			return
		}
		v = "initial"
	}
	if v.IsInitial() {
		if v = style.InitialValue(key); v.IsEmpty() {
			return
		}
	}
	if style.IsLength(key) {
		d, err := ParseDimen(v)
		if err != nil {
			tracer().Debugf("dropping %s: %v", key, err)
			return
		}
		cs.setLength(key, d.Resolve(ctx))
		return
	}
	if key == "color" && strings.EqualFold(string(v), "currentcolor") {
		if cs.parent != nil {
			v = cs.parent.GetPropertyValue("color")
		} else {
			v = style.InitialValue("color")
		}
	}
	cs.props.Add(key, v)
}

func (cs *ComputedStyle) setLength(key string, d DimenT) {
	cs.lengths[key] = d
	cs.props.Add(key, style.Property(d.String()))
}

func (cs *ComputedStyle) computeDisplay() DisplayMode {
	mode, err := ParseDisplay(cs.GetPropertyValue("display").String())
	if err != nil {
		tracer().Infof("styling: %v", err)
	}
	if fl := cs.GetPropertyValue("float"); fl != "none" && fl != "" {
		return mode.Blockify()
	}
	pos := Position(cs.GetPropertyValue("position"))
	if pos.IsOutOfFlow() {
		return mode.Blockify()
	}
	return mode
}

func (cs *ComputedStyle) computePosition() PositionT {
	pos := Position(cs.GetPropertyValue("position"))
	offsets := make([]PositionOffset, 0, 4)
	for dir, key := range []string{"top", "right", "bottom", "left"} {
		offsets = append(offsets, PositionOffset{Dim: cs.Length(key), Dir: PosDir(dir)})
	}
	return pos.WithOffsets(offsets)
}

var fontSizeScale = map[string]float64{
	"xx-small":  3.0 / 5.0,
	"x-small":   3.0 / 4.0,
	"small":     8.0 / 9.0,
	"medium":    1,
	"large":     6.0 / 5.0,
	"x-large":   3.0 / 2.0,
	"xx-large":  2,
	"xxx-large": 3,
}

func computeFontSize(decls *style.Declarations, parent *ComputedStyle, env Environment) dimen.DU {
	medium := env.defaultFontSize()
	parentSize, rootSize := medium, medium
	if parent != nil {
		parentSize, rootSize = parent.fontSize, parent.root.fontSize
	}
	decl, ok := decls.Get("font-size")
	if !ok {
		return parentSize
	}
	scale := func(base dimen.DU, f float64) dimen.DU {
		return dimen.DU(math.Round(float64(base) * f))
	}
	v := strings.ToLower(decl.Value.String())
	switch v {
	case "inherit", "unset":
		return parentSize
	case "initial":
		return medium
	case "smaller":
		return scale(parentSize, 1/1.2)
	case "larger":
		return scale(parentSize, 1.2)
	}
	if f, ok := fontSizeScale[v]; ok {
		return scale(medium, f)
	}
	d, err := ParseDimen(decl.Value)
	if err != nil {
		tracer().Debugf("dropping font-size: %v", err)
		return parentSize
	}
	if d.IsPercent() {
		return scale(parentSize, d.x/100)
	}
	d = d.Resolve(UnitContext{
		FontSize:       parentSize,
		RootFontSize:   rootSize,
		XHeight:        env.xHeight(parentSize),
		ViewportWidth:  env.ViewportWidth,
		ViewportHeight: env.ViewportHeight,
	})
	if !d.IsAbsolute() || d.Unwrap() < 0 {
		return parentSize
	}
	return d.Unwrap()
}

// --- Accessors -------------------------------------------------------------

// Styles returns the computed properties declared for the node.
func (cs *ComputedStyle) Styles() *style.PropertyMap {
	if cs == nil {
		return nil
	}
	return cs.props
}

// Parent returns the computed style of the parent node, or nil.
func (cs *ComputedStyle) Parent() *ComputedStyle {
	return cs.parent
}

// GetPropertyValue returns the computed value of a property. If the
// property is not set locally and the property is inheritable, the search
// cascades to the ancestors. Otherwise the initial value is returned.
// The keyword currentcolor is resolved.
func (cs *ComputedStyle) GetPropertyValue(key string) style.Property {
	p := GetProperty(cs, key)
	if key != "color" && strings.EqualFold(string(p), "currentcolor") {
		return GetProperty(cs, "color")
	}
	return p
}

// GetProperty gets the value of a property. If the property is not set
// locally on the style node and the property is inheritable, the search
// cascades to parent property maps, if available. If no value is found,
// the initial value of the property is returned.
func GetProperty(cs *ComputedStyle, key string) style.Property {
	for it := cs; it != nil; it = it.parent {
		if p := GetLocalProperty(it.props, key); p != style.NullStyle {
			return p
		}
		if !style.IsCascading(key) {
			break
		}
	}
	return style.InitialValue(key)
}

// GetLocalProperty returns a style property value, if it is set locally
// for a styled node's property map. No cascading is performed.
func GetLocalProperty(pmap *style.PropertyMap, key string) style.Property {
	group := pmap.Group(style.GroupNameFromPropertyKey(key))
	if group == nil {
		return style.NullStyle
	}
	p, _ := group.Get(key)
	return p
}

// Length returns the computed value of a length property.
func (cs *ComputedStyle) Length(key string) DimenT {
	for it := cs; it != nil; it = it.parent {
		if d, ok := it.lengths[key]; ok {
			return d
		}
		if !style.IsCascading(key) {
			break
		}
	}
	d, err := ParseDimen(style.InitialValue(key))
	if err != nil {
		return Initial()
	}
	return d
}

// FontSize returns the computed font size.
func (cs *ComputedStyle) FontSize() dimen.DU {
	return cs.fontSize
}

// Display returns the computed display mode.
func (cs *ComputedStyle) Display() DisplayMode {
	return cs.display
}

// Position returns the computed position, including offsets.
func (cs *ComputedStyle) Position() PositionT {
	return cs.position
}

// Color returns the computed value of a color property, or nil.
func (cs *ComputedStyle) Color(key string) color.Color {
	return cs.GetPropertyValue(key).Color()
}
