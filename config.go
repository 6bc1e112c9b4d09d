package imagegraph

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Duration wraps time.Duration so TOML option files can use human-readable
// values like "33ms" or "1s".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("imagegraph: invalid duration %q: %w", text, err)
	}
	*d = Duration(v)
	return nil
}

// Options hold engine tuning knobs, typically loaded from a TOML file by
// the embedding application.
type Options struct {
	// Workers is the worker count for the parallel kernel backend.
	// Zero or negative means GOMAXPROCS.
	Workers int `toml:"workers"`

	// PreviewThrottle is the minimum interval between whole-graph preview
	// passes. Zero disables throttling.
	PreviewThrottle Duration `toml:"preview_throttle"`

	// SurfaceWidth and SurfaceHeight set the preview surface dimensions.
	SurfaceWidth  int `toml:"surface_width"`
	SurfaceHeight int `toml:"surface_height"`
}

// DefaultOptions returns the engine defaults: GOMAXPROCS workers, a 33ms
// preview throttle (roughly 30 passes per second) and a 512x512 surface.
func DefaultOptions() Options {
	return Options{
		Workers:         0,
		PreviewThrottle: Duration(33 * time.Millisecond),
		SurfaceWidth:    512,
		SurfaceHeight:   512,
	}
}

// LoadOptions reads options from a TOML file, starting from the defaults
// so absent keys keep their default values.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	if _, err := toml.DecodeFile(path, &opts); err != nil {
		return DefaultOptions(), fmt.Errorf("imagegraph: loading options: %w", err)
	}
	return opts, nil
}
