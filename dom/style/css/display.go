package css

import (
	"fmt"
	"strings"
)

// DisplayMode is a type for CSS property "display".
type DisplayMode uint32

// Flags for box context and display mode (outer and inner).
const (
	NoMode               DisplayMode = iota    // unset or error condition
	DisplayNone          DisplayMode = 0x0001  // CSS outer display = none
	BlockMode            DisplayMode = 0x0002  // CSS block context (inner or outer)
	InlineMode           DisplayMode = 0x0004  // CSS inline context
	FlowRootMode         DisplayMode = 0x0010  // CSS flow-root display property
	ListItemMode         DisplayMode = 0x0020  // CSS list-item display
	FlexMode             DisplayMode = 0x0040  // CSS inner display = flex
	GridMode             DisplayMode = 0x0080  // CSS inner display = grid
	TableMode            DisplayMode = 0x0100  // CSS table display property (inner or outer)
	InnerBlockMode       DisplayMode = 0x0200  // CSS inner block mode (inline-block)
	InnerInlineMode      DisplayMode = 0x0400  // CSS inner inline mode (paragraphs)
	TableRowGroupMode    DisplayMode = 0x0800  // CSS table-row-group
	TableHeaderGroupMode DisplayMode = 0x1000  // CSS table-header-group
	TableFooterGroupMode DisplayMode = 0x2000  // CSS table-footer-group
	TableRowMode         DisplayMode = 0x4000  // CSS table-row
	TableCellMode        DisplayMode = 0x8000  // CSS table-cell
	TableCaptionMode     DisplayMode = 0x10000 // CSS table-caption
	TableColumnMode      DisplayMode = 0x20000 // CSS table-column
	TableColumnGroupMode DisplayMode = 0x40000 // CSS table-column-group
)

var allDisplayModes = []DisplayMode{
	DisplayNone, BlockMode, InlineMode, ListItemMode, FlowRootMode, FlexMode,
	GridMode, TableMode, InnerBlockMode, InnerInlineMode,
	TableRowGroupMode, TableHeaderGroupMode, TableFooterGroupMode, TableRowMode,
	TableCellMode, TableCaptionMode, TableColumnMode, TableColumnGroupMode,
}

var modeNames = map[DisplayMode]string{
	NoMode:               "NoMode",
	DisplayNone:          "DisplayNone",
	BlockMode:            "BlockMode",
	InlineMode:           "InlineMode",
	FlowRootMode:         "FlowRootMode",
	ListItemMode:         "ListItemMode",
	FlexMode:             "FlexMode",
	GridMode:             "GridMode",
	TableMode:            "TableMode",
	InnerBlockMode:       "InnerBlockMode",
	InnerInlineMode:      "InnerInlineMode",
	TableRowGroupMode:    "TableRowGroupMode",
	TableHeaderGroupMode: "TableHeaderGroupMode",
	TableFooterGroupMode: "TableFooterGroupMode",
	TableRowMode:         "TableRowMode",
	TableCellMode:        "TableCellMode",
	TableCaptionMode:     "TableCaptionMode",
	TableColumnMode:      "TableColumnMode",
	TableColumnGroupMode: "TableColumnGroupMode",
}

func (disp DisplayMode) String() string {
	if s, ok := modeNames[disp]; ok {
		return s
	}
	return fmt.Sprintf("DisplayMode(0x%x)", uint32(disp))
}

// Outer returns outer mode
func (disp DisplayMode) Outer() DisplayMode {
	return disp & 0x000f
}

// Inner returns inner mode
func (disp DisplayMode) Inner() DisplayMode {
	return disp &^ 0x000f
}

// IsBlockLevel return true if it has outer display level of BlockMode.
//
// A block-level element is defined as (from the spec):
// Block-level elements are those elements of the source document that are formatted visually
// as blocks (e.g., paragraphs). The following values of the 'display' property make an element
// block-level: 'block', 'list-item', and 'table'.
func (disp DisplayMode) IsBlockLevel() bool {
	return disp&0x000f == BlockMode
}

// Set sets a given atomic mode within this display mode.
func (disp *DisplayMode) Set(d DisplayMode) {
	*disp = (*disp) | d
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

// Overlaps returns true if a given display mode shares at least one atomic
// mode flag with disp (excluding NoMode).
func (disp DisplayMode) Overlaps(d DisplayMode) bool {
	for _, m := range allDisplayModes {
		if disp.Contains(m) && d.Contains(m) {
			return true
		}
	}
	return false
}

// tableInternal holds the modes of boxes internal to tables.
const tableInternal = TableRowGroupMode | TableHeaderGroupMode | TableFooterGroupMode |
	TableRowMode | TableCellMode | TableCaptionMode | TableColumnMode | TableColumnGroupMode

// rowGroups holds the modes of table row groups.
const rowGroups = TableRowGroupMode | TableHeaderGroupMode | TableFooterGroupMode

// IsTable is true for `table` and `inline-table`.
func (disp DisplayMode) IsTable() bool {
	return disp.Contains(TableMode)
}

// IsRowGroup is true for table row groups, including header and footer groups.
func (disp DisplayMode) IsRowGroup() bool {
	return disp.Overlaps(rowGroups)
}

// IsTableRow is true for `table-row`.
func (disp DisplayMode) IsTableRow() bool {
	return disp.Contains(TableRowMode)
}

// IsTableCell is true for `table-cell`.
func (disp DisplayMode) IsTableCell() bool {
	return disp.Contains(TableCellMode)
}

// IsTableRelated is true for all display modes of the CSS table model.
func (disp DisplayMode) IsTableRelated() bool {
	return disp.Contains(TableMode) || disp.Overlaps(tableInternal)
}

// IsTableInternal is true for display modes which are valid only inside
// of tables, but not for `table` itself and for captions.
func (disp DisplayMode) IsTableInternal() bool {
	return disp.Overlaps(tableInternal &^ TableCaptionMode)
}

// Symbol returns a Unicode symbol for a mode.
func (disp DisplayMode) Symbol() string {
	switch {
	case disp == NoMode:
		return "–"
	case disp.Contains(DisplayNone):
		return "∅"
	case disp.Contains(TableCellMode):
		return "□"
	case disp.Contains(TableRowMode):
		return "▤"
	case disp.IsRowGroup():
		return "▦"
	case disp.Contains(TableMode):
		return "▥"
	case disp.Overlaps(TableCaptionMode | TableColumnMode | TableColumnGroupMode):
		return "▧"
	case disp.Contains(ListItemMode):
		return "▣"
	case disp.Contains(FlexMode):
		return "▤"
	case disp.Contains(GridMode):
		return "◰"
	case disp.Contains(BlockMode) || disp.Contains(InnerBlockMode):
		return "▩"
	case disp.Contains(InlineMode) || disp.Contains(InnerInlineMode):
		return "►"
	}
	return "?"
}

var displayModes = map[string]DisplayMode{
	"none":               DisplayNone,
	"block":              BlockMode | InnerBlockMode,
	"inline":             InlineMode | InnerInlineMode,
	"list-item":          ListItemMode | BlockMode,
	"block-inline":       BlockMode | InnerInlineMode,
	"inline-block":       InlineMode | InnerBlockMode,
	"flow-root":          BlockMode | FlowRootMode,
	"flex":               BlockMode | FlexMode,
	"inline-flex":        InlineMode | FlexMode,
	"grid":               BlockMode | GridMode,
	"inline-grid":        InlineMode | GridMode,
	"table":              BlockMode | TableMode,
	"inline-table":       InlineMode | TableMode,
	"table-row-group":    TableRowGroupMode,
	"table-header-group": TableHeaderGroupMode,
	"table-footer-group": TableFooterGroupMode,
	"table-row":          TableRowMode,
	"table-cell":         TableCellMode,
	"table-caption":      TableCaptionMode,
	"table-column":       TableColumnMode,
	"table-column-group": TableColumnGroupMode,
}

// ParseDisplay returns mode flags from a display property string (outer and inner).
// Unknown display values yield InlineMode, the CSS initial value, and an error.
func ParseDisplay(display string) (DisplayMode, error) {
	display = strings.ToLower(strings.TrimSpace(display))
	if display == "" {
		return NoMode, nil
	}
	if mode, ok := displayModes[display]; ok {
		return mode, nil
	}
	return InlineMode | InnerInlineMode, fmt.Errorf("unknown display mode: %s", display)
}

// Blockify computes the display mode of an element which is floated or
// absolutely positioned (CSS 2.1 section 9.7).
func (disp DisplayMode) Blockify() DisplayMode {
	switch {
	case disp == NoMode, disp.Contains(DisplayNone):
		return disp
	case disp.Contains(TableMode):
		return BlockMode | TableMode
	case disp.Contains(ListItemMode), disp.IsBlockLevel():
		return disp
	case disp.Contains(FlexMode):
		return BlockMode | FlexMode
	case disp.Contains(GridMode):
		return BlockMode | GridMode
	}
	return BlockMode | InnerBlockMode
}

// Keyword returns the CSS keyword for a display mode, as understood
// by ParseDisplay.
func (disp DisplayMode) Keyword() string {
	for k, m := range displayModes {
		if m == disp && k != "block-inline" {
			return k
		}
	}
	return ""
}
