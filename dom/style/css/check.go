package css

import (
	"strings"

	"github.com/npillmayer/doctree/dom/style"
)

// CheckValue reports whether a declared value is valid for a property.
// It is a style.ValueCheck: declarations failing it are dropped during the
// cascade, so the value of an earlier rule survives.
//
// Properties the styling engine does not interpret are always valid.
func CheckValue(key string, value style.Property) bool {
	if value.IsInherit() || value.IsInitial() || value.IsUnset() {
		return true
	}
	v := strings.ToLower(strings.TrimSpace(value.String()))
	switch {
	case key == "display":
		_, err := ParseDisplay(v)
		return err == nil
	case key == "position":
		return !Position(value).IsUnset()
	case key == "font-size":
		if _, ok := fontSizeScale[v]; ok || v == "smaller" || v == "larger" {
			return true
		}
		d, err := ParseDimen(value)
		return err == nil && !d.IsAuto() && !d.IsNone()
	case style.IsLength(key):
		_, err := ParseDimen(value)
		return err == nil
	case key == "color" || strings.HasSuffix(key, "-color"):
		if v == "currentcolor" {
			return true
		}
		_, ok := style.ParseColor(value)
		return ok
	}
	return true
}
