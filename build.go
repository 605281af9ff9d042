package ijson

// materialize reconstructs a full value (scalar, or a recursively
// built map/array) starting at an already-consumed event, per the
// selector semantics in spec.md §4.4. It is shared by Items and
// KVItems so a selector that needs to skip over a non-matching value
// can do so the same way it would build a matching one.
func materialize(pp *PrefixParser, cfg Config, ev PrefixedEvent) (interface{}, error) {
	switch ev.Type {
	case StartMap:
		return materializeMap(pp, cfg)
	case StartArray:
		return materializeArray(pp, cfg)
	case Null:
		return nil, nil
	case Boolean:
		return ev.Value.(bool), nil
	case String:
		return ev.Value.(string), nil
	case NumberEvent:
		return ev.Value.(Number), nil
	}
	panic("ijson: materialize called with a non-value event")
}

func materializeMap(pp *PrefixParser, cfg Config) (interface{}, error) {
	var kvs []KV
	for {
		ev, err := pp.Next()
		if err != nil {
			return nil, err
		}
		switch ev.Type {
		case EndMap:
			return cfg.MapType(kvs)
		case MapKey:
			key := ev.Value.(string)
			valEv, err := pp.Next()
			if err != nil {
				return nil, err
			}
			val, err := materialize(pp, cfg, valEv)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, KV{Key: key, Value: val})
		}
	}
}

func materializeArray(pp *PrefixParser, cfg Config) (interface{}, error) {
	arr := []interface{}{}
	for {
		ev, err := pp.Next()
		if err != nil {
			return nil, err
		}
		if ev.Type == EndArray {
			return arr, nil
		}
		val, err := materialize(pp, cfg, ev)
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)
	}
}

// isValueStart reports whether ev is the first event of a value: the
// opening of a container, or a scalar.
func isValueStart(ev PrefixedEvent) bool {
	switch ev.Type {
	case StartMap, StartArray, Null, Boolean, String, NumberEvent:
		return true
	}
	return false
}
