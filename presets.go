package goconverty

// Preset is a named capture configuration: the geometry and pixel format a
// given sensor stream dumps its frames in.
type Preset struct {
	Width  int
	Height int
	Format PixelFormat
}

// presets maps preset names to their capture configuration. The table is
// initialized once and never mutated; callers get copies through
// LookupPreset.
var presets = map[string]Preset{
	"ss2": {Width: 1920, Height: 1280, Format: FormatUYVY},
	"ss3": {Width: 1920, Height: 1536, Format: FormatUYVY},
	"ss4": {Width: 1920, Height: 1536, Format: FormatNV12},
}

// LookupPreset returns the preset registered under name, and whether the
// name is known.
func LookupPreset(name string) (Preset, bool) {
	p, ok := presets[name]
	return p, ok
}

// PresetNames returns the registered preset names in unspecified order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}
