package ijson

const defaultBufSize = 4096

// KV is an ordered key/value pair, the element type a MapType
// constructor is handed.
type KV struct {
	Key   string
	Value interface{}
}

// Config configures every constructor in this package. The zero value
// is valid and picks sane defaults: see DefaultConfig.
type Config struct {
	// BufSize hints the initial capacity of the lexer's working buffer,
	// and the chunk size requested from the input reader in pull mode.
	// Zero means defaultBufSize.
	BufSize int

	// MultipleValues allows a single input to contain more than one
	// concatenated top-level JSON value. When false, any lexeme
	// following a complete top-level value is a fatal JSONError.
	MultipleValues bool

	// MapType constructs the container Items returns for start_map
	// values. It must accept a slice of KV pairs, preserving their
	// order. A nil MapType defaults to returning the []KV slice
	// itself, which preserves insertion order without requiring a
	// map-like container from the caller.
	MapType func([]KV) (interface{}, error)

	// Debug enables logging of lexer buffer growth, mirroring the
	// teacher lexer's SetDebug.
	Debug bool
}

// DefaultConfig returns the configuration used when a zero Config is
// passed to a constructor.
func DefaultConfig() Config {
	return Config{BufSize: defaultBufSize}
}

func (c Config) normalize() (Config, error) {
	if c.BufSize == 0 {
		c.BufSize = defaultBufSize
	}
	if c.BufSize < 0 {
		return c, ErrBadBufSize
	}
	if c.MapType == nil {
		c.MapType = defaultMapType
	}
	return c, nil
}

func defaultMapType(kvs []KV) (interface{}, error) {
	return kvs, nil
}
