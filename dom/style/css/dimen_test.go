package css_test

import (
	"testing"

	"github.com/npillmayer/doctree/dom/style/css"
	"github.com/npillmayer/tyse/core/dimen"
)

func TestDimenBasic(t *testing.T) {
	ten := css.JustDimen(dimen.BP * 10)
	var du dimen.DU
	switch m := ten.Match(); m {
	case m.Just(&du):
		t.Logf("du = %d", du)
	default:
		t.Errorf("expected Just(10pt) to be a fixed value, isn't: %#v", ten)
	}

	auto := css.Auto()
	switch m := auto.Match(); m {
	case m.IsKind(css.Auto()):
		t.Logf("dimen is auto")
	default:
		t.Errorf("expected dimen auto to match auto, isn't: %#v", auto)
	}

	pcnt := css.Percentage(80)
	var p float64
	switch m := pcnt.Match(); m {
	case m.Percentage(&p):
		t.Logf("percent = %g", p)
	default:
		t.Errorf("expected Percentage(80) to be a percentage value, isn't: %#v", pcnt)
	}
}

func TestParseDimenUnits(t *testing.T) {
	cases := []struct {
		in string
		pt float64
	}{
		{"12pt", 12},
		{"16px", 12},
		{"1in", 72},
		{"1pc", 12},
		{"0", 0},
	}
	for _, c := range cases {
		d, err := css.ParseDimen(css.Property(c.in))
		if err != nil {
			t.Errorf("expected %q to parse, didn't: %v", c.in, err)
			continue
		}
		expected := dimen.DU(c.pt * float64(dimen.BP))
		if d.Unwrap() != expected {
			t.Errorf("expected %q to be %d sp, is %d", c.in, expected, d.Unwrap())
		}
	}
	for _, in := range []string{"12", "abc", "3furlong", ""} {
		if _, err := css.ParseDimen(css.Property(in)); err == nil {
			t.Errorf("expected %q to be rejected, wasn't", in)
		}
	}
}

func TestResolveRelative(t *testing.T) {
	ctx := css.UnitContext{
		FontSize:       10 * dimen.BP,
		RootFontSize:   12 * dimen.BP,
		ViewportWidth:  600 * dimen.BP,
		ViewportHeight: 400 * dimen.BP,
	}
	cases := map[string]dimen.DU{
		"2em":    20 * dimen.BP,
		"1rem":   12 * dimen.BP,
		"1ex":    5 * dimen.BP,
		"10vw":   60 * dimen.BP,
		"10vh":   40 * dimen.BP,
		"10vmax": 60 * dimen.BP,
	}
	for in, expected := range cases {
		d, err := css.ParseDimen(css.Property(in))
		if err != nil {
			t.Fatal(err)
		}
		if !d.IsRelative() {
			t.Errorf("expected %q to be relative", in)
		}
		if r := d.Resolve(ctx); r.Unwrap() != expected {
			t.Errorf("expected %q to resolve to %d, is %d", in, expected, r.Unwrap())
		}
	}
	p, _ := css.ParseDimen("50%")
	if r := p.Resolve(ctx); !r.IsPercent() {
		t.Errorf("expected percentage to stay unresolved, is %v", r)
	}
}
