package cssom

// Fragment is a piece of style text, as found in a `<style>` element or a
// linked stylesheet, together with its base URL and media condition.
type Fragment struct {
	Text    string
	BaseURL string
	Media   string
}

// Collector gathers style fragments in document order.
// Collectors are not safe for concurrent use.
type Collector struct {
	fragments []Fragment
}

// Add appends a fragment. Fragments are never de-duplicated.
func (c *Collector) Add(text, baseURL, media string) {
	tracer().Debugf("collecting style fragment of %d bytes, media=%q", len(text), media)
	c.fragments = append(c.fragments, Fragment{Text: text, BaseURL: baseURL, Media: media})
}

// Len returns the number of fragments collected so far.
func (c *Collector) Len() int {
	return len(c.fragments)
}

// Fragments returns the collected fragments, starting with fragment number
// `from`. Clients may use this to process fragments incrementally.
func (c *Collector) Fragments(from int) []Fragment {
	if from < 0 {
		from = 0
	}
	if from >= len(c.fragments) {
		return nil
	}
	return c.fragments[from:]
}
