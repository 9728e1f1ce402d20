package css_test

import (
	"testing"

	"github.com/npillmayer/doctree/dom/style"
	"github.com/npillmayer/doctree/dom/style/css"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/stretchr/testify/assert"
)

func TestPositionKeywords(t *testing.T) {
	for kw, positioned := range map[string]bool{
		"static": false, "Relative": true, "absolute": true, " fixed ": true, "sticky": true,
	} {
		p := css.Position(style.Property(kw))
		assert.False(t, p.IsUnset(), kw)
		assert.Equal(t, positioned, p.IsPositioned(), kw)
	}
	assert.True(t, css.Position("floating").IsUnset())
	assert.True(t, css.Position("unset").IsUnset())
	assert.Equal(t, "fixed", css.Position("FIXED").String())
	assert.True(t, css.Position("fixed").IsOutOfFlow())
	assert.False(t, css.Position("sticky").IsOutOfFlow())
}

func TestPositionOffsets(t *testing.T) {
	ten := css.JustDimen(10 * dimen.BP)
	f := css.Fixed(css.PositionOffset{Dim: ten, Dir: css.Bottom})
	assert.Equal(t, ten, f.Offset(css.Bottom))
	assert.True(t, f.Offset(css.Top).IsAuto())
	off := f.Offsets()
	assert.Len(t, off, 4)
	assert.Equal(t, css.Left, off[css.Left].Dir)

	s := css.Static().WithOffsets([]css.PositionOffset{{Dim: ten, Dir: css.Top}})
	assert.Nil(t, s.Offsets())
}

func TestPositionMatch(t *testing.T) {
	var o []css.PositionOffset
	switch m := css.Position("absolute").Match(); m {
	case m.Static():
		t.Errorf("absolute position matched as static")
	case m.Absolute(&o):
		assert.Len(t, o, 4)
	default:
		t.Errorf("absolute position not matched")
	}
	switch m := css.Position("").Match(); m {
	case m.Fixed(nil):
		t.Errorf("unset position matched as fixed")
	case m.Static():
	default:
		t.Errorf("unset position should match as static")
	}
}
