package media

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"
)

// QueryList is a comma separated list of media queries. It matches if any
// of its queries matches. An empty list matches every environment.
//
// A QueryList caches the result of its last application to a set of media
// features (see Apply).
type QueryList struct {
	text    string
	queries []query
	active  bool
}

type query struct {
	not       bool
	mediaType string // empty for "all"
	exprs     []expr
	invalid   bool // malformed queries never match
}

type expr struct {
	feature string
	op      string // "", "=", "<", "<=", ">", ">="
	value   float64
	keyword string // for orientation
}

// Parse parses a media query list. Malformed queries are retained as queries
// which never match (as required by CSS), and reported with a non-nil error.
// The returned list is usable in any case.
func Parse(text string) (*QueryList, error) {
	ql := &QueryList{text: strings.TrimSpace(text)}
	toks, err := tokenize(ql.text)
	if err != nil {
		ql.queries = []query{{invalid: true}}
		return ql, fmt.Errorf("media query %q: %w", ql.text, err)
	}
	if len(toks) == 0 {
		return ql, nil
	}
	var errs error
	for _, part := range splitAtCommas(toks) {
		q, err := parseQuery(part)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("media query %q: %w", ql.text, err))
			q = query{invalid: true}
		}
		ql.queries = append(ql.queries, q)
	}
	return ql, errs
}

// MustParse is like Parse, but panics on malformed input. Intended for
// tests and constant media strings.
func MustParse(text string) *QueryList {
	ql, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return ql
}

// Text returns the source text of a query list.
func (ql *QueryList) Text() string {
	return ql.text
}

func (ql *QueryList) String() string {
	return "@media " + ql.text
}

// Evaluate checks a query list against media features. It has no side
// effects.
func (ql *QueryList) Evaluate(f Features) bool {
	if ql == nil || len(ql.queries) == 0 {
		return true
	}
	for _, q := range ql.queries {
		if q.matches(f) {
			return true
		}
	}
	return false
}

// Apply evaluates a query list and caches the result. It returns true if the
// result differs from the previously cached one. Before the first call to
// Apply, a list is inactive.
func (ql *QueryList) Apply(f Features) (changed bool) {
	active := ql.Evaluate(f)
	changed = active != ql.active
	ql.active = active
	return changed
}

// IsActive returns the result of the last call to Apply. A nil list
// is always active.
func (ql *QueryList) IsActive() bool {
	return ql == nil || ql.active
}

func (q query) matches(f Features) bool {
	if q.invalid {
		return false
	}
	m := q.mediaType == "" || q.mediaType == "all" || strings.EqualFold(q.mediaType, f.Type)
	for _, e := range q.exprs {
		if !m {
			break
		}
		m = e.matches(f)
	}
	return m != q.not
}

const epsilon = 1e-6

func (e expr) matches(f Features) bool {
	if e.feature == "orientation" {
		return e.keyword == "" || e.keyword == f.orientation()
	}
	v, ok := f.feature(e.feature)
	if !ok {
		return false
	}
	switch e.op {
	case "":
		return v != 0
	case "=":
		return math.Abs(v-e.value) < epsilon
	case "<":
		return v < e.value-epsilon
	case "<=":
		return v <= e.value+epsilon
	case ">":
		return v > e.value+epsilon
	case ">=":
		return v >= e.value-epsilon
	}
	return false
}

// --- Lists of queries ------------------------------------------------------

// Lists holds the query lists registered with a document.
type Lists struct {
	lists []*QueryList
}

// Register adds a query list. Registering a list twice has no effect.
func (ls *Lists) Register(ql *QueryList) {
	if ql == nil {
		return
	}
	for _, l := range ls.lists {
		if l == ql {
			return
		}
	}
	ls.lists = append(ls.lists, ql)
}

// Len returns the number of registered lists.
func (ls *Lists) Len() int {
	return len(ls.lists)
}

// Update applies media features to every registered list and reports
// whether any of them changed its result.
func (ls *Lists) Update(f Features) bool {
	changed := false
	for _, ql := range ls.lists {
		if ql.Apply(f) {
			tracer().Debugf("media list %q changed to %v", ql.text, ql.active)
			changed = true
		}
	}
	return changed
}

// --- Parsing ---------------------------------------------------------------

type token struct {
	tt   css.TokenType
	data string
}

var errUnexpectedEnd = errors.New("unexpected end of media query")

func tokenize(text string) ([]token, error) {
	lexer := css.NewLexer(parse.NewInput(strings.NewReader(text)))
	var toks []token
	for {
		tt, data := lexer.Next()
		switch tt {
		case css.ErrorToken:
			if err := lexer.Err(); err != nil && err.Error() != "EOF" {
				return nil, err
			}
			return toks, nil
		case css.WhitespaceToken, css.CommentToken:
			continue
		default:
			toks = append(toks, token{tt, strings.ToLower(string(data))})
		}
	}
}

func splitAtCommas(toks []token) [][]token {
	var parts [][]token
	depth, start := 0, 0
	for i, t := range toks {
		switch t.tt {
		case css.LeftParenthesisToken, css.FunctionToken:
			depth++
		case css.RightParenthesisToken:
			depth--
		case css.CommaToken:
			if depth == 0 {
				parts = append(parts, toks[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, toks[start:])
}

type qparser struct {
	toks []token
	pos  int
}

func (p *qparser) done() bool {
	return p.pos >= len(p.toks)
}

func (p *qparser) peek(offset int) token {
	if p.pos+offset >= len(p.toks) {
		return token{tt: css.ErrorToken}
	}
	return p.toks[p.pos+offset]
}

func (p *qparser) acceptIdent(name string) bool {
	if t := p.peek(0); t.tt == css.IdentToken && t.data == name {
		p.pos++
		return true
	}
	return false
}

func isComparator(t token) bool {
	return t.tt == css.DelimToken && (t.data == "<" || t.data == ">" || t.data == "=")
}

func parseQuery(toks []token) (query, error) {
	q := query{}
	if len(toks) == 0 {
		return q, errors.New("empty media query")
	}
	p := &qparser{toks: toks}
	if p.acceptIdent("not") {
		q.not = true
	} else {
		p.acceptIdent("only")
	}
	if t := p.peek(0); t.tt == css.IdentToken && t.data != "and" {
		next := p.peek(1)
		if next.tt != css.ColonToken && !isComparator(next) {
			q.mediaType = t.data
			p.pos++
			if p.done() {
				return q, nil
			}
			if !p.acceptIdent("and") {
				return q, fmt.Errorf("expected 'and' after media type %q", t.data)
			}
		}
	}
	for {
		exprs, err := p.parseCondition()
		if err != nil {
			return q, err
		}
		q.exprs = append(q.exprs, exprs...)
		if p.done() {
			return q, nil
		}
		if !p.acceptIdent("and") {
			return q, fmt.Errorf("expected 'and', have %q", p.peek(0).data)
		}
	}
}

// parseCondition parses a parenthesized feature expression or, leniently,
// a bare one up to the next 'and'.
func (p *qparser) parseCondition() ([]expr, error) {
	if p.done() {
		return nil, errUnexpectedEnd
	}
	var inner []token
	if p.peek(0).tt == css.LeftParenthesisToken {
		depth := 0
		start := p.pos + 1
		for ; !p.done(); p.pos++ {
			switch p.toks[p.pos].tt {
			case css.LeftParenthesisToken, css.FunctionToken:
				depth++
			case css.RightParenthesisToken:
				depth--
			}
			if depth == 0 {
				break
			}
		}
		if p.done() {
			return nil, errors.New("unbalanced parentheses")
		}
		inner = p.toks[start:p.pos]
		p.pos++ // skip ')'
	} else {
		start := p.pos
		for !p.done() && !(p.peek(0).tt == css.IdentToken && p.peek(0).data == "and") {
			p.pos++
		}
		inner = p.toks[start:p.pos]
	}
	return parseExpr(inner)
}

// item is a normalized element of a feature expression.
type item struct {
	kind  byte // 'f'eature, 'v'alue, 'c'omparator, ':'
	name  string
	value float64
	unit  string
}

func parseExpr(toks []token) ([]expr, error) {
	items, err := normalize(toks)
	if err != nil {
		return nil, err
	}
	var sig strings.Builder
	for _, it := range items {
		sig.WriteByte(it.kind)
	}
	switch sig.String() {
	case "f":
		if !knownFeature(items[0].name) {
			return nil, fmt.Errorf("unknown media feature %q", items[0].name)
		}
		return []expr{{feature: items[0].name}}, nil
	case "f:v", "f:f":
		return colonExpr(items[0].name, items[2])
	case "fcv":
		e, err := rangeExpr(items[0].name, items[1].name, items[2])
		return []expr{e}, err
	case "vcf":
		e, err := rangeExpr(items[2].name, flip(items[1].name), items[0])
		return []expr{e}, err
	case "vcfcv":
		e1, err1 := rangeExpr(items[2].name, flip(items[1].name), items[0])
		e2, err2 := rangeExpr(items[2].name, items[3].name, items[4])
		return []expr{e1, e2}, multierr.Combine(err1, err2)
	}
	return nil, fmt.Errorf("cannot interpret media feature expression")
}

func normalize(toks []token) ([]item, error) {
	var items []item
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		switch t.tt {
		case css.IdentToken:
			items = append(items, item{kind: 'f', name: t.data})
		case css.ColonToken:
			items = append(items, item{kind: ':'})
		case css.NumberToken:
			x, err := strconv.ParseFloat(t.data, 64)
			if err != nil {
				return nil, err
			}
			if i+2 < len(toks) && toks[i+1].tt == css.DelimToken && toks[i+1].data == "/" &&
				toks[i+2].tt == css.NumberToken {
				y, err := strconv.ParseFloat(toks[i+2].data, 64)
				if err != nil || y == 0 {
					return nil, fmt.Errorf("illegal ratio")
				}
				x, i = x/y, i+2
			}
			items = append(items, item{kind: 'v', value: x})
		case css.DimensionToken:
			num, unit := splitDimension(t.data)
			x, err := strconv.ParseFloat(num, 64)
			if err != nil {
				return nil, err
			}
			items = append(items, item{kind: 'v', value: x, unit: unit})
		case css.DelimToken:
			if !isComparator(t) {
				return nil, fmt.Errorf("unexpected %q", t.data)
			}
			op := t.data
			if op != "=" && i+1 < len(toks) && toks[i+1].tt == css.DelimToken && toks[i+1].data == "=" {
				op, i = op+"=", i+1
			}
			items = append(items, item{kind: 'c', name: op})
		default:
			return nil, fmt.Errorf("unexpected token %q", t.data)
		}
	}
	return items, nil
}

func splitDimension(s string) (string, string) {
	i := len(s)
	for i > 0 && (s[i-1] < '0' || s[i-1] > '9') && s[i-1] != '.' {
		i--
	}
	return s[:i], s[i:]
}

func flip(op string) string {
	switch op {
	case "<":
		return ">"
	case "<=":
		return ">="
	case ">":
		return "<"
	case ">=":
		return "<="
	}
	return op
}

var rangeFeatures = map[string]string{
	"width": "length", "height": "length", "device-width": "length", "device-height": "length",
	"aspect-ratio": "ratio", "device-aspect-ratio": "ratio",
	"color": "int", "color-index": "int", "monochrome": "int",
	"resolution": "resolution",
}

func knownFeature(name string) bool {
	_, ok := rangeFeatures[name]
	return ok || name == "orientation" || name == "grid"
}

func colonExpr(name string, v item) ([]expr, error) {
	if name == "orientation" {
		if v.kind != 'f' || (v.name != "portrait" && v.name != "landscape") {
			return nil, fmt.Errorf("illegal orientation")
		}
		return []expr{{feature: name, keyword: v.name}}, nil
	}
	if v.kind != 'v' {
		return nil, fmt.Errorf("expected value for media feature %q", name)
	}
	op := "="
	if f, ok := strings.CutPrefix(name, "min-"); ok {
		name, op = f, ">="
	} else if f, ok := strings.CutPrefix(name, "max-"); ok {
		name, op = f, "<="
	}
	e, err := rangeExpr(name, op, v)
	return []expr{e}, err
}

func rangeExpr(name, op string, v item) (expr, error) {
	kind, ok := rangeFeatures[name]
	if !ok {
		return expr{}, fmt.Errorf("unknown media feature %q", name)
	}
	x, err := convert(kind, v)
	if err != nil {
		return expr{}, fmt.Errorf("media feature %q: %w", name, err)
	}
	return expr{feature: name, op: op, value: x}, nil
}

var pxPerUnit = map[string]float64{
	"": 1, "px": 1, "em": 16, "rem": 16, "pt": 96.0 / 72.0, "pc": 16,
	"in": 96, "cm": 96 / 2.54, "mm": 96 / 25.4, "q": 96 / 101.6,
}

var dpiPerUnit = map[string]float64{
	"": 1, "dpi": 1, "dpcm": 2.54, "dppx": 96, "x": 96,
}

func convert(kind string, v item) (float64, error) {
	switch kind {
	case "length":
		if f, ok := pxPerUnit[v.unit]; ok {
			return v.value * f, nil
		}
	case "resolution":
		if f, ok := dpiPerUnit[v.unit]; ok {
			return v.value * f, nil
		}
	default:
		if v.unit == "" {
			return v.value, nil
		}
	}
	return 0, fmt.Errorf("unexpected unit %q", v.unit)
}

// And combines an outer and an inner media condition, as for nested @media
// rules or an @import within a conditional stylesheet. Conditions
// containing query lists cannot be combined textually; for these the inner
// condition is returned.
func And(outer, inner string) string {
	outer, inner = strings.TrimSpace(outer), strings.TrimSpace(inner)
	switch {
	case outer == "" || outer == "all":
		return inner
	case inner == "" || inner == "all":
		return outer
	case strings.Contains(outer, ",") || strings.Contains(inner, ","):
		return inner
	}
	return outer + " and " + inner
}
