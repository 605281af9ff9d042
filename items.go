package ijson

import "io"

// Items reconstructs every whole value whose prefix equals a target
// prefix ("items" in spec.md §4.4/§6). Each call to Next returns the
// next matching value, fully materialised, in insertion order for
// object keys (via Config.MapType).
type Items struct {
	pp     *PrefixParser
	prefix string
	cfg    Config
}

// NewItems creates an Items selector reading from r and yielding
// values found at prefix.
func NewItems(r io.Reader, prefix string, cfg Config) (*Items, error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, err
	}
	pp, err := NewPrefixParser(r, cfg)
	if err != nil {
		return nil, err
	}
	return &Items{pp: pp, prefix: prefix, cfg: cfg}, nil
}

// Next returns the next value at the target prefix, or io.EOF once
// the input (and, with Config.MultipleValues, every concatenated
// top-level value) has been exhausted.
func (it *Items) Next() (interface{}, error) {
	for {
		ev, err := it.pp.Next()
		if err != nil {
			return nil, err
		}
		if ev.Prefix != it.prefix || !isValueStart(ev) {
			continue
		}
		return materialize(it.pp, it.cfg, ev)
	}
}

// All drains every remaining match into a slice. It is a convenience
// wrapper for callers that do not need incremental delivery.
func (it *Items) All() ([]interface{}, error) {
	var out []interface{}
	for {
		v, err := it.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
}
