package style

import (
	_ "embed"
)

// masterCSS is the user-agent stylesheet, applied to every document before
// any other stylesheet.
//
//go:embed master.css
var masterCSS string

// MasterStylesheet returns the text of the default user-agent stylesheet.
func MasterStylesheet() string {
	return masterCSS
}

// initialValues holds the CSS initial value for every property the
// styling engine knows about. Values of "currentcolor" are resolved against
// the color of an element.
var initialValues = map[string]Property{
	"display":                    "inline",
	"position":                   "static",
	"float":                      "none",
	"clear":                      "none",
	"visibility":                 "visible",
	"overflow":                   "visible",
	"z-index":                    "auto",
	"width":                      "auto",
	"height":                     "auto",
	"min-width":                  "0",
	"min-height":                 "0",
	"max-width":                  "none",
	"max-height":                 "none",
	"top":                        "auto",
	"right":                      "auto",
	"bottom":                     "auto",
	"left":                       "auto",
	"margin-top":                 "0",
	"margin-left":                "0",
	"margin-right":               "0",
	"margin-bottom":              "0",
	"padding-top":                "0",
	"padding-left":               "0",
	"padding-right":              "0",
	"padding-bottom":             "0",
	"border-top-width":           "medium",
	"border-left-width":          "medium",
	"border-right-width":         "medium",
	"border-bottom-width":        "medium",
	"border-top-style":           "none",
	"border-left-style":          "none",
	"border-right-style":         "none",
	"border-bottom-style":        "none",
	"border-top-color":           "currentcolor",
	"border-left-color":          "currentcolor",
	"border-right-color":         "currentcolor",
	"border-bottom-color":        "currentcolor",
	"border-top-left-radius":     "0",
	"border-top-right-radius":    "0",
	"border-bottom-left-radius":  "0",
	"border-bottom-right-radius": "0",
	"flow-from":                  "none",
	"flow-into":                  "none",
	"color":                      "black",
	"background-color":           "transparent",
	"font-family":                "serif",
	"font-size":                  "medium",
	"font-style":                 "normal",
	"font-weight":                "normal",
	"font-variant":               "normal",
	"line-height":                "normal",
	"direction":                  "ltr",
	"white-space":                "normal",
	"word-spacing":               "normal",
	"letter-spacing":             "normal",
	"word-break":                 "normal",
	"word-wrap":                  "normal",
	"overflow-wrap":              "normal",
	"hyphens":                    "manual",
	"text-align":                 "start",
	"text-indent":                "0",
	"text-transform":             "none",
	"text-decoration":            "none",
	"vertical-align":             "baseline",
	"list-style-type":            "disc",
	"list-style-position":        "outside",
	"border-collapse":            "separate",
	"border-spacing":             "0",
	"caption-side":               "top",
	"empty-cells":                "show",
	"table-layout":               "auto",
	"cursor":                     "auto",
}

// InitialValue returns the CSS initial value of a property, or NullStyle
// for properties unknown to the styling engine.
func InitialValue(key string) Property {
	return initialValues[key]
}

// Known is true for properties with a known initial value.
func Known(key string) bool {
	_, ok := initialValues[key]
	return ok
}

// lengthProperties take a single length (or percentage/keyword).
var lengthProperties = map[string]bool{
	"width": true, "height": true, "min-width": true, "min-height": true,
	"max-width": true, "max-height": true,
	"top": true, "right": true, "bottom": true, "left": true,
	"margin-top": true, "margin-left": true, "margin-right": true, "margin-bottom": true,
	"padding-top": true, "padding-left": true, "padding-right": true, "padding-bottom": true,
	"border-top-width": true, "border-left-width": true,
	"border-right-width": true, "border-bottom-width": true,
	"border-top-left-radius": true, "border-top-right-radius": true,
	"border-bottom-left-radius": true, "border-bottom-right-radius": true,
	"text-indent": true,
}

// IsLength is true for properties whose values are single lengths.
func IsLength(key string) bool {
	return lengthProperties[key]
}
