package ijson

import (
	"io"
	"strings"
)

// pathFrame mirrors one entry of the Parser's container stack: for a
// MAP frame it holds the most recently seen key; for an ARRAY frame it
// is always the literal "item", per spec.md §3/§4.3.
type pathFrame struct {
	component string
}

// PrefixParser wraps a Parser and tags each Event with the dotted path
// of the container it occurred in ("parse" in spec.md §4.3/§6). Path
// components are treated as opaque strings: a key containing a literal
// '.' becomes one component, never split.
type PrefixParser struct {
	parser *Parser
	path   []pathFrame
}

// NewPrefixParser creates a PrefixParser reading from r.
func NewPrefixParser(r io.Reader, cfg Config) (*PrefixParser, error) {
	p, err := NewParser(r, cfg)
	if err != nil {
		return nil, err
	}
	return newPrefixParserFromParser(p), nil
}

func newPrefixParserFromParser(p *Parser) *PrefixParser {
	return &PrefixParser{parser: p}
}

func joinPrefix(path []pathFrame) string {
	if len(path) == 0 {
		return ""
	}
	var b strings.Builder
	for i, f := range path {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(f.component)
	}
	return b.String()
}

// currentPrefix is the dotted path of the innermost container
// currently open plus its current key (or "item") — i.e. the prefix
// of the value at the current position inside that container.
func (pp *PrefixParser) currentPrefix() string {
	return joinPrefix(pp.path)
}

// ownPrefix is the dotted path of the innermost container itself
// (excluding its own current key or "item" component), used when an event
// belongs to that container rather than to one of its children.
func (pp *PrefixParser) ownPrefix() string {
	if len(pp.path) == 0 {
		return ""
	}
	return joinPrefix(pp.path[:len(pp.path)-1])
}

// Next returns the next PrefixedEvent.
func (pp *PrefixParser) Next() (PrefixedEvent, error) {
	ev, err := pp.parser.Next()
	if err != nil {
		return PrefixedEvent{}, err
	}

	switch ev.Type {
	case StartMap:
		prefix := pp.currentPrefix()
		pp.path = append(pp.path, pathFrame{})
		return PrefixedEvent{Prefix: prefix, Type: ev.Type}, nil

	case StartArray:
		prefix := pp.currentPrefix()
		pp.path = append(pp.path, pathFrame{component: "item"})
		return PrefixedEvent{Prefix: prefix, Type: ev.Type}, nil

	case EndMap, EndArray:
		prefix := pp.ownPrefix()
		pp.path = pp.path[:len(pp.path)-1]
		return PrefixedEvent{Prefix: prefix, Type: ev.Type}, nil

	case MapKey:
		key := ev.Value.(string)
		prefix := pp.ownPrefix()
		pp.path[len(pp.path)-1].component = key
		return PrefixedEvent{Prefix: prefix, Type: ev.Type, Value: key}, nil

	default: // scalar: Null, Boolean, String, NumberEvent
		return PrefixedEvent{Prefix: pp.currentPrefix(), Type: ev.Type, Value: ev.Value}, nil
	}
}
