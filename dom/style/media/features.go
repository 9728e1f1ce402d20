package media

// Features is a snapshot of the media features of a rendering environment.
// Dimensions are in CSS pixels.
type Features struct {
	Type         string // media type, e.g. "screen" or "print"
	Width        int    // width of the viewport
	Height       int    // height of the viewport
	DeviceWidth  int    // width of the output device
	DeviceHeight int    // height of the output device
	Color        int    // bits per color component, 0 for monochrome devices
	ColorIndex   int    // number of entries in the color lookup table
	Monochrome   int    // bits per pixel of monochrome devices
	Resolution   int    // in dots per inch
}

// Screen returns features for a color screen with a viewport of the given size.
func Screen(width, height int) Features {
	return Features{
		Type:         "screen",
		Width:        width,
		Height:       height,
		DeviceWidth:  width,
		DeviceHeight: height,
		Color:        8,
		Resolution:   96,
	}
}

func (f Features) feature(name string) (float64, bool) {
	switch name {
	case "width":
		return float64(f.Width), true
	case "height":
		return float64(f.Height), true
	case "device-width":
		return float64(f.DeviceWidth), true
	case "device-height":
		return float64(f.DeviceHeight), true
	case "aspect-ratio":
		return ratio(f.Width, f.Height), true
	case "device-aspect-ratio":
		return ratio(f.DeviceWidth, f.DeviceHeight), true
	case "color":
		return float64(f.Color), true
	case "color-index":
		return float64(f.ColorIndex), true
	case "monochrome":
		return float64(f.Monochrome), true
	case "resolution":
		return float64(f.Resolution), true
	case "grid":
		return 0, true
	}
	return 0, false
}

func ratio(w, h int) float64 {
	if h == 0 {
		return 0
	}
	return float64(w) / float64(h)
}

// orientation is "portrait" if the height of the viewport is greater than
// or equal to its width, "landscape" otherwise.
func (f Features) orientation() string {
	if f.Height >= f.Width {
		return "portrait"
	}
	return "landscape"
}
