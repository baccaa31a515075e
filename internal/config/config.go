package config

import (
	"math"
	"time"
)

// Config contains the tunable parameters of the drawer widget.
// Use DefaultConfig() to get the stock values, then override as needed.
type Config struct {
	// Viewport in logical pixels. Every offset is derived from these.
	ViewportWidth  float64 `yaml:"viewport_width"`
	ViewportHeight float64 `yaml:"viewport_height"`

	// Menu labels in card order. Each label is also the i18n message ID suffix.
	Entries []string `yaml:"entries"`

	// Motion
	MenuDuration     time.Duration `yaml:"menu_duration"`      // menu panel slide (default: 400ms)
	CardDuration     time.Duration `yaml:"card_duration"`      // horizontal card slide (default: 200ms)
	StaggerStep      time.Duration `yaml:"stagger_step"`       // per-depth vertical stagger (default: 100ms)
	GlyphDuration    time.Duration `yaml:"glyph_duration"`     // hamburger width/angle (default: 300ms)
	SpringDamping    float64       `yaml:"spring_damping"`     // default: 12
	FanStep          float64       `yaml:"fan_step"`           // extra X per card depth (default: 10)
	CascadeStep      float64       `yaml:"cascade_step"`       // Y per card above the selected one (default: 9.5)
	FramesPerSecond  int           `yaml:"frames_per_second"`  // host tick rate (default: 60)
	MenuRestingRatio float64       `yaml:"menu_resting_ratio"` // menu closed X as share of width (default: 0.6)
	CardRestingRatio float64       `yaml:"card_resting_ratio"` // first fanned card X as share of width (default: 0.52)
	CardShrinkRatio  float64       `yaml:"card_shrink_ratio"`  // card height when fanned (default: 0.8)
	MaxShadowOpacity float64       `yaml:"max_shadow_opacity"` // default: 0.2
	ShowTrace        bool          `yaml:"show_trace"`         // TUI motion-trace panel visible at start

	// Ambient
	Language string `yaml:"language"`  // BCP 47 tag (default: "en")
	LogFile  string `yaml:"log_file"`  // rotating log path (default: "logs/carddrawer.log")
	LogLevel string `yaml:"log_level"` // debug/info/warn/error (default: "info")
}

// DefaultConfig returns a Config sized for a typical phone viewport.
func DefaultConfig() Config {
	return Config{
		ViewportWidth:  390,
		ViewportHeight: 844,

		Entries: []string{"Work", "About", "Blog", "Contact"},

		MenuDuration:     400 * time.Millisecond,
		CardDuration:     200 * time.Millisecond,
		StaggerStep:      100 * time.Millisecond,
		GlyphDuration:    300 * time.Millisecond,
		SpringDamping:    12,
		FanStep:          10,
		CascadeStep:      9.5,
		FramesPerSecond:  60,
		MenuRestingRatio: 0.6,
		CardRestingRatio: 0.52,
		CardShrinkRatio:  0.8,
		MaxShadowOpacity: 0.2,

		Language: "en",
		LogFile:  "logs/carddrawer.log",
		LogLevel: "info",
	}
}

// MenuRestingX is the menu panel offset while the drawer is closed.
func (c Config) MenuRestingX() float64 {
	return c.ViewportWidth * c.MenuRestingRatio
}

// CardBaseX is the fanned offset of the first card.
func (c Config) CardBaseX() float64 {
	return c.ViewportWidth * c.CardRestingRatio
}

// CardRestingX is the fanned offset of card i while the drawer is open.
func (c Config) CardRestingX(i int) float64 {
	return c.CardBaseX() + c.FanStep*float64(i)
}

// FrameInterval is the host tick period.
func (c Config) FrameInterval() time.Duration {
	return time.Duration(math.Round(float64(time.Second) / float64(c.FramesPerSecond)))
}

// WithViewport returns a copy of the config with a different viewport.
func (c Config) WithViewport(width, height float64) Config {
	c.ViewportWidth = width
	c.ViewportHeight = height
	return c
}

// WithEntries returns a copy of the config with different menu labels.
func (c Config) WithEntries(labels ...string) Config {
	c.Entries = append([]string(nil), labels...)
	return c
}

// WithSpringDamping returns a copy of the config with modified spring damping.
func (c Config) WithSpringDamping(d float64) Config {
	c.SpringDamping = d
	return c
}

// WithFramesPerSecond returns a copy of the config with a different tick rate.
func (c Config) WithFramesPerSecond(fps int) Config {
	c.FramesPerSecond = fps
	return c
}

// WithLanguage returns a copy of the config with a different UI language.
func (c Config) WithLanguage(lang string) Config {
	c.Language = lang
	return c
}

// Validate checks if the configuration is valid and returns an error if not.
func (c Config) Validate() error {
	if c.ViewportWidth <= 0 {
		return &ConfigError{Field: "ViewportWidth", Message: "must be positive"}
	}
	if c.ViewportHeight <= 0 {
		return &ConfigError{Field: "ViewportHeight", Message: "must be positive"}
	}
	if len(c.Entries) == 0 {
		return &ConfigError{Field: "Entries", Message: "must not be empty"}
	}
	for _, e := range c.Entries {
		if e == "" {
			return &ConfigError{Field: "Entries", Message: "must not contain empty labels"}
		}
	}
	if c.MenuDuration <= 0 || c.CardDuration <= 0 || c.GlyphDuration <= 0 {
		return &ConfigError{Field: "Durations", Message: "must be positive"}
	}
	if c.StaggerStep < 0 {
		return &ConfigError{Field: "StaggerStep", Message: "must not be negative"}
	}
	if c.SpringDamping <= 0 {
		return &ConfigError{Field: "SpringDamping", Message: "must be positive"}
	}
	if c.FramesPerSecond <= 0 {
		return &ConfigError{Field: "FramesPerSecond", Message: "must be positive"}
	}
	if c.MenuRestingRatio <= 0 || c.MenuRestingRatio > 1 {
		return &ConfigError{Field: "MenuRestingRatio", Message: "must be in (0, 1]"}
	}
	if c.CardRestingRatio <= 0 || c.CardRestingRatio > 1 {
		return &ConfigError{Field: "CardRestingRatio", Message: "must be in (0, 1]"}
	}
	if c.CardShrinkRatio <= 0 || c.CardShrinkRatio > 1 {
		return &ConfigError{Field: "CardShrinkRatio", Message: "must be in (0, 1]"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}
