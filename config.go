package rowan

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config errors.
var (
	// ErrUnknownConfigKey indicates the TOML data contained keys rowan does
	// not recognize.
	ErrUnknownConfigKey = errors.New("rowan: unknown config key")

	// ErrInvalidConfig indicates a config value is out of range.
	ErrInvalidConfig = errors.New("rowan: invalid config")
)

const (
	defaultDragDeadZone      = 4.0 // pixels
	defaultDoubleClickTime   = 250 * time.Millisecond
	defaultKeyRepeatDelay    = 500 * time.Millisecond
	defaultKeyRepeatInterval = 50 * time.Millisecond
)

// Config tunes an InputManager.
type Config struct {
	// DragDeadZone is how far (screen pixels) the pointer must travel from
	// the press position before a drag starts.
	DragDeadZone float64

	// DoubleClickTime is the longest gap between two clicks on the same node
	// that still counts as a double-click.
	DoubleClickTime time.Duration

	// KeyRepeatDelay is how long a key must be held before it auto-repeats.
	KeyRepeatDelay time.Duration

	// KeyRepeatInterval is the time between repeats. Zero disables repeat.
	KeyRepeatInterval time.Duration

	// Debug logs focus changes and per-dispatch stats to stderr and enables
	// tree sanity checks.
	Debug bool
}

// DefaultConfig returns the stock settings.
func DefaultConfig() Config {
	return Config{
		DragDeadZone:      defaultDragDeadZone,
		DoubleClickTime:   defaultDoubleClickTime,
		KeyRepeatDelay:    defaultKeyRepeatDelay,
		KeyRepeatInterval: defaultKeyRepeatInterval,
	}
}

// Validate reports the first out-of-range value, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.DragDeadZone < 0:
		return fmt.Errorf("%w: drag_dead_zone %v is negative", ErrInvalidConfig, c.DragDeadZone)
	case c.DoubleClickTime < 0:
		return fmt.Errorf("%w: double_click_time %v is negative", ErrInvalidConfig, c.DoubleClickTime)
	case c.KeyRepeatDelay < 0:
		return fmt.Errorf("%w: key_repeat_delay %v is negative", ErrInvalidConfig, c.KeyRepeatDelay)
	case c.KeyRepeatInterval < 0:
		return fmt.Errorf("%w: key_repeat_interval %v is negative", ErrInvalidConfig, c.KeyRepeatInterval)
	}
	return nil
}

// duration reads and writes Go duration strings ("250ms") in TOML.
type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(v)
	return nil
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// fileConfig is the on-disk TOML shape of Config.
type fileConfig struct {
	DragDeadZone      float64  `toml:"drag_dead_zone"`
	DoubleClickTime   duration `toml:"double_click_time"`
	KeyRepeatDelay    duration `toml:"key_repeat_delay"`
	KeyRepeatInterval duration `toml:"key_repeat_interval"`
	Debug             bool     `toml:"debug"`
}

func toFileConfig(c Config) fileConfig {
	return fileConfig{
		DragDeadZone:      c.DragDeadZone,
		DoubleClickTime:   duration(c.DoubleClickTime),
		KeyRepeatDelay:    duration(c.KeyRepeatDelay),
		KeyRepeatInterval: duration(c.KeyRepeatInterval),
		Debug:             c.Debug,
	}
}

func (f fileConfig) config() Config {
	return Config{
		DragDeadZone:      f.DragDeadZone,
		DoubleClickTime:   time.Duration(f.DoubleClickTime),
		KeyRepeatDelay:    time.Duration(f.KeyRepeatDelay),
		KeyRepeatInterval: time.Duration(f.KeyRepeatInterval),
		Debug:             f.Debug,
	}
}

// LoadConfig parses TOML config data. Keys that are absent keep their
// DefaultConfig values; unknown keys are an error.
//
//	drag_dead_zone = 6.0
//	double_click_time = "300ms"
//	key_repeat_delay = "400ms"
//	key_repeat_interval = "40ms"
//	debug = true
func LoadConfig(data []byte) (Config, error) {
	fc := toFileConfig(DefaultConfig())
	md, err := toml.Decode(string(data), &fc)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("parse config: %w: %s", ErrUnknownConfigKey, strings.Join(keys, ", "))
	}
	cfg := fc.config()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// WriteConfig encodes cfg as TOML in the format LoadConfig reads.
func WriteConfig(w io.Writer, cfg Config) error {
	if err := toml.NewEncoder(w).Encode(toFileConfig(cfg)); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
