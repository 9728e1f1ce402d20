package style

import (
	"fmt"
	"strings"
)

// IsCompound is true if key denotes a shorthand property which
// SplitCompoundProperty is able to split.
func IsCompound(key string) bool {
	switch key {
	case "margin", "padding", "border-color", "border-width", "border-style",
		"border-radius", "border", "border-top", "border-right", "border-bottom",
		"border-left", "background":
		return true
	}
	return false
}

// SplitCompoundProperty splits up a shortcut property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//    SplitCompountProperty("padding", "3px")
// will return
//    "padding-top"    => "3px"
//    "padding-right"  => "3px"
//    "padding-bottom" => "3px"
//    "padding-left  " => "3px"
// For the logic behind this, refer to e.g.
// https://www.w3schools.com/css/css_padding.asp .
//
// CSS-wide keywords (inherit, initial, unset) are distributed to every component.
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	fields := strings.Fields(value.String())
	if len(fields) == 1 && (value.IsInherit() || value.IsInitial() || value.IsUnset()) {
		fields = []string{fields[0], fields[0], fields[0], fields[0]}
	}
	switch key {
	case "margin":
		return feazeCompound4("margin", "", fourDirs, fields)
	case "padding":
		return feazeCompound4("padding", "", fourDirs, fields)
	case "border-color":
		return feazeCompound4("border", "color", fourDirs, fields)
	case "border-width":
		return feazeCompound4("border", "width", fourDirs, fields)
	case "border-style":
		return feazeCompound4("border", "style", fourDirs, fields)
	case "border-radius":
		return feazeCompound4("border", "radius", fourCorners, fields)
	case "border":
		return splitBorder(fourDirs[:], fields)
	case "border-top", "border-right", "border-bottom", "border-left":
		return splitBorder([]string{strings.TrimPrefix(key, "border-")}, fields)
	case "background":
		return splitBackground(fields)
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

// CSS logic to distribute individual values from compound shortcuts is as
// follows: https://www.w3schools.com/css/css_border.asp
func feazeCompound4(pre string, suf string, dirs [4]string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s", p(pre, suf, "*"))
	}
	r := make([]KeyValue, 4)
	r[0] = KeyValue{p(pre, suf, dirs[0]), Property(fields[0])}
	if l >= 2 {
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[1])}
		if l >= 3 {
			r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[2])}
			if l == 4 {
				r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[3])}
			} else {
				r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
			}
		} else {
			r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
			r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
		}
	} else {
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[0])}
		r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
		r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[0])}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}
var fourCorners = [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}

func p(prefix string, suffix string, tag string) string {
	if suffix == "" {
		return prefix + "-" + tag
	}
	if prefix == "" {
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}

var borderStyles = map[string]bool{
	"none": true, "hidden": true, "dotted": true, "dashed": true, "solid": true,
	"double": true, "groove": true, "ridge": true, "inset": true, "outset": true,
}

// splitBorder distributes "border: <width> <style> <color>" in any order.
// Components not mentioned are reset to their initial values.
func splitBorder(dirs []string, fields []string) ([]KeyValue, error) {
	width, bstyle, color := Property("medium"), Property("none"), Property("currentcolor")
	if len(fields) > 0 && isWideKeyword(fields[0]) {
		width, bstyle, color = Property(fields[0]), Property(fields[0]), Property(fields[0])
	} else {
		if len(fields) == 0 || len(fields) > 3 {
			return nil, fmt.Errorf("expecting 1-3 values for border shorthand")
		}
		for _, f := range fields {
			lf := strings.ToLower(f)
			switch {
			case borderStyles[lf]:
				bstyle = Property(lf)
			case lf == "thin" || lf == "medium" || lf == "thick" || startsNumeric(lf):
				width = Property(lf)
			default:
				if _, ok := ParseColor(Property(lf)); !ok {
					return nil, fmt.Errorf("cannot interpret border component %q", f)
				}
				color = Property(lf)
			}
		}
	}
	r := make([]KeyValue, 0, 3*len(dirs))
	for _, d := range dirs {
		r = append(r,
			KeyValue{"border-" + d + "-width", width},
			KeyValue{"border-" + d + "-style", bstyle},
			KeyValue{"border-" + d + "-color", color},
		)
	}
	return r, nil
}

// splitBackground extracts the background color from a background shorthand.
// Other background components are not interpreted.
func splitBackground(fields []string) ([]KeyValue, error) {
	if len(fields) > 0 && isWideKeyword(fields[0]) {
		return []KeyValue{{"background-color", Property(fields[0])}}, nil
	}
	for _, f := range fields {
		if _, ok := ParseColor(Property(f)); ok {
			return []KeyValue{{"background-color", Property(f)}}, nil
		}
	}
	return []KeyValue{{"background-color", "transparent"}}, nil
}

func isWideKeyword(s string) bool {
	return s == "inherit" || s == "initial" || s == "unset"
}

func startsNumeric(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return (c >= '0' && c <= '9') || c == '.' || c == '+' || c == '-'
}
