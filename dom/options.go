package dom

import "github.com/npillmayer/doctree/dom/segment"

// Default limits for documents.
const (
	DefaultMaxDepth          = 4096
	DefaultMaxStylesheetSize = 8 << 20
	DefaultMaxImportDepth    = 8
)

type options struct {
	master         string
	hasMaster      bool
	user           string
	baseURL        string
	maxDepth       int
	maxSheetSize   int
	maxImportDepth int
	segmenter      segment.Segmenter
}

func defaultOptions() options {
	return options{
		maxDepth:       DefaultMaxDepth,
		maxSheetSize:   DefaultMaxStylesheetSize,
		maxImportDepth: DefaultMaxImportDepth,
		segmenter:      segment.Default,
	}
}

// Option configures the creation of a Document.
type Option func(*options)

// WithUserStyles sets a stylesheet which is applied after all other
// stylesheets, with highest precedence.
func WithUserStyles(css string) Option {
	return func(o *options) {
		o.user = css
	}
}

// WithMasterStyles replaces the built-in user agent stylesheet.
func WithMasterStyles(css string) Option {
	return func(o *options) {
		o.master = css
		o.hasMaster = true
	}
}

// WithBaseURL sets the base URL of the document, used for stylesheets
// contained in the document.
func WithBaseURL(url string) Option {
	return func(o *options) {
		o.baseURL = url
	}
}

// WithMaxDepth limits the depth of the document tree. A value <= 0 removes
// the limit.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// WithMaxStylesheetSize limits the size in bytes of a single stylesheet.
// A value <= 0 removes the limit.
func WithMaxStylesheetSize(size int) Option {
	return func(o *options) {
		o.maxSheetSize = size
	}
}

// WithMaxImportDepth limits the nesting of @import rules.
func WithMaxImportDepth(depth int) Option {
	return func(o *options) {
		o.maxImportDepth = depth
	}
}

// WithSegmenter sets the segmenter for splitting text into text and white
// space runs.
func WithSegmenter(seg segment.Segmenter) Option {
	return func(o *options) {
		if seg != nil {
			o.segmenter = seg
		}
	}
}
