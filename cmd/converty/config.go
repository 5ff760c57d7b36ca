package main

import (
	"fmt"

	"github.com/GreatValueCreamSoda/goconverty"
)

// Config holds the fully resolved settings for one batch run. Width, Height,
// and Format come from a preset, explicit overrides, or a mix of both;
// explicit values always win.
type Config struct {
	Input      string
	OutputDir  string
	PresetName string

	Width, Height int
	FormatTag     string
	Format        goconverty.PixelFormat

	Workers     int
	UseWebP     bool
	WebPQuality float64
}

// Resolve fills unset geometry/format fields from the named preset, parses
// the format tag, and validates the result. It must be called before the
// config is used.
func (c *Config) Resolve() error {
	if c.PresetName != "" {
		preset, ok := goconverty.LookupPreset(c.PresetName)
		if !ok {
			return fmt.Errorf("unknown preset %q", c.PresetName)
		}
		logf(LogDebug, "Applying preset %s: %dx%d %s", c.PresetName,
			preset.Width, preset.Height, preset.Format)

		if c.Width == 0 {
			c.Width = preset.Width
		}
		if c.Height == 0 {
			c.Height = preset.Height
		}
		if c.FormatTag == "" {
			c.FormatTag = preset.Format.String()
		}
	}

	if c.Width == 0 || c.Height == 0 || c.FormatTag == "" {
		return fmt.Errorf("you must specify -type or provide -width, " +
			"-height, and -format")
	}

	format, err := goconverty.ParsePixelFormat(c.FormatTag)
	if err != nil {
		return err
	}
	c.Format = format

	return c.Validate()
}

// Validate checks the resolved settings for internal consistency.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("width and height must be positive, got %dx%d",
			c.Width, c.Height)
	}
	if c.Workers <= 0 {
		logf(LogInfo, "Workers <= 0, defaulting to 1")
		c.Workers = 1
	}
	if c.WebPQuality < 0 || c.WebPQuality > 100 {
		return fmt.Errorf("quality must be in [0,100], got %g", c.WebPQuality)
	}
	return nil
}
