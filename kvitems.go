package ijson

import "io"

// KVItems emits the direct key/value pairs of the object found at a
// target prefix ("kvitems" in spec.md §4.4/§6). If the value at that
// prefix is not a map, it yields nothing.
type KVItems struct {
	pp     *PrefixParser
	prefix string
	cfg    Config

	active bool // true while inside the matching object
}

// NewKVItems creates a KVItems selector reading from r and yielding
// the key/value pairs of the object found at prefix.
func NewKVItems(r io.Reader, prefix string, cfg Config) (*KVItems, error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, err
	}
	pp, err := NewPrefixParser(r, cfg)
	if err != nil {
		return nil, err
	}
	return &KVItems{pp: pp, prefix: prefix, cfg: cfg}, nil
}

// Next returns the next key/value pair, or io.EOF once every matching
// object (across concatenated top-level values, with
// Config.MultipleValues) has been exhausted.
func (k *KVItems) Next() (KV, error) {
	for {
		if !k.active {
			ev, err := k.pp.Next()
			if err != nil {
				return KV{}, err
			}
			if ev.Prefix != k.prefix || !isValueStart(ev) {
				continue
			}
			if ev.Type != StartMap {
				// The value at the target prefix is not an object:
				// skip it whole and keep scanning (it may recur in a
				// later top-level value under Config.MultipleValues).
				if _, err := materialize(k.pp, k.cfg, ev); err != nil {
					return KV{}, err
				}
				continue
			}
			k.active = true
			continue
		}

		ev, err := k.pp.Next()
		if err != nil {
			return KV{}, err
		}
		switch ev.Type {
		case EndMap:
			k.active = false
		case MapKey:
			key := ev.Value.(string)
			valEv, err := k.pp.Next()
			if err != nil {
				return KV{}, err
			}
			val, err := materialize(k.pp, k.cfg, valEv)
			if err != nil {
				return KV{}, err
			}
			return KV{Key: key, Value: val}, nil
		}
	}
}

// All drains every remaining pair into a slice.
func (k *KVItems) All() ([]KV, error) {
	var out []KV
	for {
		kv, err := k.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, kv)
	}
}
