package style

import (
	"strconv"
	"strings"

	"golang.org/x/net/html/atom"
)

// PresentationalHints maps presentational HTML attributes of an element to
// style properties. These hints are applied after the user-agent stylesheet
// and before any document stylesheet. attr looks up an attribute value of
// the element.
//
// Attribute values are not validated beyond what is necessary to translate
// them; uninterpretable values are dropped.
func PresentationalHints(tag string, attr func(string) (string, bool)) []KeyValue {
	var hints []KeyValue
	add := func(key string, v string) {
		hints = append(hints, KeyValue{key, Property(v)})
	}
	a := atom.Lookup([]byte(strings.ToLower(tag)))
	if _, ok := attr("hidden"); ok {
		add("display", "none")
	}
	if dir, ok := attr("dir"); ok && (dir == "ltr" || dir == "rtl") {
		add("direction", dir)
	}
	switch a {
	case atom.Img, atom.Table, atom.Td, atom.Th, atom.Col, atom.Iframe,
		atom.Video, atom.Canvas, atom.Object, atom.Embed, atom.Hr:
		if w, ok := attr("width"); ok {
			if d, ok := htmlLength(w); ok {
				add("width", d)
			}
		}
		if h, ok := attr("height"); ok && a != atom.Hr {
			if d, ok := htmlLength(h); ok {
				add("height", d)
			}
		}
	}
	switch a {
	case atom.Body, atom.Table, atom.Tr, atom.Td, atom.Th, atom.Thead,
		atom.Tbody, atom.Tfoot:
		if c, ok := attr("bgcolor"); ok {
			if _, ok := ParseColor(Property(c)); ok {
				add("background-color", c)
			}
		}
	}
	switch a {
	case atom.Body:
		if c, ok := attr("text"); ok {
			if _, ok := ParseColor(Property(c)); ok {
				add("color", c)
			}
		}
	case atom.Font:
		if c, ok := attr("color"); ok {
			if _, ok := ParseColor(Property(c)); ok {
				add("color", c)
			}
		}
		if f, ok := attr("face"); ok && f != "" {
			add("font-family", f)
		}
		if s, ok := attr("size"); ok {
			if fs, ok := fontSizeHint(s); ok {
				add("font-size", fs)
			}
		}
	case atom.Table:
		if b, ok := attr("border"); ok {
			b = strings.TrimSpace(b)
			n, err := strconv.Atoi(b)
			if b == "" {
				n, err = 1, nil
			}
			if err == nil && n >= 0 {
				add("border-width", strconv.Itoa(n)+"px")
				add("border-style", "outset")
			}
		}
		if s, ok := attr("cellspacing"); ok {
			if d, ok := htmlLength(s); ok {
				add("border-spacing", d)
			}
		}
		if al, ok := attr("align"); ok {
			switch strings.ToLower(al) {
			case "left", "right":
				add("float", strings.ToLower(al))
			case "center":
				add("margin-left", "auto")
				add("margin-right", "auto")
			}
		}
	}
	switch a {
	case atom.Td, atom.Th, atom.Tr, atom.Thead, atom.Tbody, atom.Tfoot,
		atom.P, atom.Div, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Caption:
		if al, ok := attr("align"); ok {
			switch al = strings.ToLower(al); al {
			case "left", "right", "center", "justify":
				add("text-align", al)
			}
		}
	}
	switch a {
	case atom.Td, atom.Th, atom.Tr, atom.Thead, atom.Tbody, atom.Tfoot, atom.Col:
		if va, ok := attr("valign"); ok {
			switch va = strings.ToLower(va); va {
			case "top", "middle", "bottom", "baseline":
				add("vertical-align", va)
			}
		}
	}
	return hints
}

// htmlLength interprets HTML dimension attributes: "100" is pixels,
// "50%" is a percentage.
func htmlLength(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if strings.HasSuffix(v, "%") {
		if _, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64); err == nil {
			return v, true
		}
		return "", false
	}
	v = strings.TrimSuffix(v, "px")
	if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
		return v + "px", true
	}
	return "", false
}

var fontSizeKeywords = []string{
	"x-small", "small", "medium", "large", "x-large", "xx-large", "xxx-large",
}

// fontSizeHint maps <font size=…> values 1…7 (or relative +n/-n, based on 3)
// to font-size keywords.
func fontSizeHint(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	base := 0
	if s[0] == '+' || s[0] == '-' {
		base = 3
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return "", false
	}
	n += base
	if n < 1 {
		n = 1
	} else if n > 7 {
		n = 7
	}
	return fontSizeKeywords[n-1], true
}
