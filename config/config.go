package config

type (
	Scratch struct {
		// Default is the initial capacity of the scratch region used to
		// materialise lines that straddle segment boundaries. The region
		// is reused across calls within one connection.
		Default int
		// Maximal caps the scratch region's growth. A straddling line that
		// would not fit is rejected, as it cannot be made contiguous.
		Maximal int
	}

	Detail struct {
		// MaxLength bounds the excerpt of malformed input captured into
		// rejection details. Excerpts are escaped to printable ASCII before
		// they reach any log line.
		MaxLength int
	}
)

// Config holds the parser's sizing knobs. Always modify values returned by
// Default() instead of constructing Config manually.
type Config struct {
	Scratch Scratch
	Detail  Detail
}

func Default() Config {
	return Config{
		Scratch: Scratch{
			Default: 4096,
			Maximal: 64 * 1024,
		},
		Detail: Detail{
			MaxLength: 32,
		},
	}
}
