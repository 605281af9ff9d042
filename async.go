package ijson

import (
	"context"
	"io"
)

// asyncCore runs a pull-style source in its own goroutine and delivers
// each result over an unbuffered channel, so the consumer's read calls
// become cooperative suspension points (spec.md §4.5.3) without the
// pipeline itself needing to know anything about cancellation. This is
// the same goroutine/channel shape knakk-rdf's lexer uses to decouple
// production from consumption (see DESIGN.md), with context.Context
// layered on top for cancellation.
type asyncCore struct {
	out    chan asyncResult
	cancel context.CancelFunc

	done    bool
	doneErr error
}

type asyncResult struct {
	val interface{}
	err error
}

func newAsyncCore(ctx context.Context, pull func() (interface{}, error)) *asyncCore {
	ctx, cancel := context.WithCancel(ctx)
	out := make(chan asyncResult)

	go func() {
		for {
			v, err := pull()
			select {
			case out <- asyncResult{val: v, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()

	return &asyncCore{out: out, cancel: cancel}
}

func (a *asyncCore) next(ctx context.Context) (interface{}, error) {
	if a.done {
		return nil, a.doneErr
	}
	select {
	case r := <-a.out:
		if r.err != nil {
			a.done = true
			a.doneErr = r.err
		}
		return r.val, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close releases the background goroutine. Safe to call more than
// once.
func (a *asyncCore) Close() {
	a.cancel()
}

// AsyncLexer is the async façade over Lexer.
type AsyncLexer struct{ core *asyncCore }

// NewAsyncLexer creates an AsyncLexer reading from r. The read from r
// happens on a background goroutine; Next(ctx) is the suspension
// point.
func NewAsyncLexer(ctx context.Context, r io.Reader, cfg Config) (*AsyncLexer, error) {
	lex, err := NewLexer(r, cfg)
	if err != nil {
		return nil, err
	}
	core := newAsyncCore(ctx, func() (interface{}, error) { return lex.Next() })
	return &AsyncLexer{core: core}, nil
}

func (a *AsyncLexer) Next(ctx context.Context) (Lexeme, error) {
	v, err := a.core.next(ctx)
	if err != nil {
		return Lexeme{}, err
	}
	return v.(Lexeme), nil
}

func (a *AsyncLexer) Close() { a.core.Close() }

// AsyncParser is the async façade over Parser ("basic_parse").
type AsyncParser struct{ core *asyncCore }

func NewAsyncParser(ctx context.Context, r io.Reader, cfg Config) (*AsyncParser, error) {
	p, err := NewParser(r, cfg)
	if err != nil {
		return nil, err
	}
	core := newAsyncCore(ctx, func() (interface{}, error) { return p.Next() })
	return &AsyncParser{core: core}, nil
}

func (a *AsyncParser) Next(ctx context.Context) (Event, error) {
	v, err := a.core.next(ctx)
	if err != nil {
		return Event{}, err
	}
	return v.(Event), nil
}

func (a *AsyncParser) Close() { a.core.Close() }

// AsyncPrefixParser is the async façade over PrefixParser ("parse").
type AsyncPrefixParser struct{ core *asyncCore }

func NewAsyncPrefixParser(ctx context.Context, r io.Reader, cfg Config) (*AsyncPrefixParser, error) {
	pp, err := NewPrefixParser(r, cfg)
	if err != nil {
		return nil, err
	}
	core := newAsyncCore(ctx, func() (interface{}, error) { return pp.Next() })
	return &AsyncPrefixParser{core: core}, nil
}

func (a *AsyncPrefixParser) Next(ctx context.Context) (PrefixedEvent, error) {
	v, err := a.core.next(ctx)
	if err != nil {
		return PrefixedEvent{}, err
	}
	return v.(PrefixedEvent), nil
}

func (a *AsyncPrefixParser) Close() { a.core.Close() }

// AsyncItems is the async façade over Items.
type AsyncItems struct{ core *asyncCore }

func NewAsyncItems(ctx context.Context, r io.Reader, prefix string, cfg Config) (*AsyncItems, error) {
	it, err := NewItems(r, prefix, cfg)
	if err != nil {
		return nil, err
	}
	core := newAsyncCore(ctx, func() (interface{}, error) { return it.Next() })
	return &AsyncItems{core: core}, nil
}

func (a *AsyncItems) Next(ctx context.Context) (interface{}, error) {
	return a.core.next(ctx)
}

func (a *AsyncItems) Close() { a.core.Close() }

// AsyncKVItems is the async façade over KVItems.
type AsyncKVItems struct{ core *asyncCore }

func NewAsyncKVItems(ctx context.Context, r io.Reader, prefix string, cfg Config) (*AsyncKVItems, error) {
	kv, err := NewKVItems(r, prefix, cfg)
	if err != nil {
		return nil, err
	}
	core := newAsyncCore(ctx, func() (interface{}, error) { return kv.Next() })
	return &AsyncKVItems{core: core}, nil
}

func (a *AsyncKVItems) Next(ctx context.Context) (KV, error) {
	v, err := a.core.next(ctx)
	if err != nil {
		return KV{}, err
	}
	return v.(KV), nil
}

func (a *AsyncKVItems) Close() { a.core.Close() }
