package ijson

import "io"

// chunkReader is an io.Reader fed by discrete byte chunks handed to it
// out of band. Read blocks until a chunk is available or Close has
// been called, at which point it reports io.EOF — turning a push-style
// feed into the same blocking io.Reader the pull adapters already
// know how to drive, so the grammar/prefix/selector logic in
// parser.go, prefix.go, items.go and kvitems.go never has to be
// duplicated for the push façade (spec.md §9).
type chunkReader struct {
	chunks chan []byte
	buf    []byte
}

func newChunkReader() *chunkReader {
	return &chunkReader{chunks: make(chan []byte, 16)}
}

func (c *chunkReader) Read(p []byte) (int, error) {
	for len(c.buf) == 0 {
		chunk, ok := <-c.chunks
		if !ok {
			return 0, io.EOF
		}
		c.buf = chunk
	}
	n := copy(p, c.buf)
	c.buf = c.buf[n:]
	return n, nil
}

func (c *chunkReader) feed(b []byte) {
	if len(b) == 0 {
		return
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	c.chunks <- cp
}

func (c *chunkReader) close() {
	close(c.chunks)
}

// pushCore drives an arbitrary pull-style source over a chunkReader in
// its own goroutine and forwards every result over a buffered channel,
// so Feed never blocks on parsing and Close can be called as soon as
// the caller has no more bytes.
type pushCore struct {
	cr  *chunkReader
	out chan pushResult

	closed bool
}

type pushResult struct {
	val interface{}
	err error
}

func newPushCore(build func(io.Reader) func() (interface{}, error)) *pushCore {
	cr := newChunkReader()
	pc := &pushCore{cr: cr, out: make(chan pushResult, 64)}

	pull := build(cr)
	go func() {
		for {
			v, err := pull()
			pc.out <- pushResult{val: v, err: err}
			if err != nil {
				close(pc.out)
				return
			}
		}
	}()

	return pc
}

func (pc *pushCore) feed(b []byte) {
	pc.cr.feed(b)
}

func (pc *pushCore) close() {
	if pc.closed {
		return
	}
	pc.closed = true
	pc.cr.close()
}

func (pc *pushCore) next() (interface{}, error) {
	r, ok := <-pc.out
	if !ok {
		return nil, io.EOF
	}
	return r.val, r.err
}

// EventResult pairs a basic_parse Event with an error, delivered over
// a BasicFeeder's channel.
type EventResult struct {
	Event Event
	Err   error
}

// BasicFeeder is the push façade over Parser ("basic_parse" in
// spec.md §4.5.2/§6).
type BasicFeeder struct {
	pc *pushCore
}

// NewBasicFeeder creates a BasicFeeder. Feed byte chunks with Feed,
// signal end of input with Close, and consume results from Events.
func NewBasicFeeder(cfg Config) (*BasicFeeder, error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, err
	}
	pc := newPushCore(func(r io.Reader) func() (interface{}, error) {
		p, _ := NewParser(r, cfg)
		return func() (interface{}, error) { return p.Next() }
	})
	return &BasicFeeder{pc: pc}, nil
}

func (f *BasicFeeder) Feed(b []byte) error { f.pc.feed(b); return nil }
func (f *BasicFeeder) Close() error        { f.pc.close(); return nil }

// Events returns a channel of EventResult, closed once the input (and
// any trailing error) has been fully delivered.
func (f *BasicFeeder) Events() <-chan EventResult {
	out := make(chan EventResult)
	go func() {
		defer close(out)
		for {
			v, err := f.pc.next()
			if err == io.EOF {
				return
			}
			if err != nil {
				out <- EventResult{Err: err}
				return
			}
			out <- EventResult{Event: v.(Event)}
		}
	}()
	return out
}

// PrefixedEventResult pairs a "parse" PrefixedEvent with an error,
// delivered over a Feeder's channel.
type PrefixedEventResult struct {
	Event PrefixedEvent
	Err   error
}

// Feeder is the push façade over PrefixParser ("parse" in spec.md
// §4.5.2/§6).
type Feeder struct {
	pc *pushCore
}

// NewFeeder creates a Feeder. Feed byte chunks with Feed, signal end
// of input with Close, and consume results from Events.
func NewFeeder(cfg Config) (*Feeder, error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, err
	}
	pc := newPushCore(func(r io.Reader) func() (interface{}, error) {
		pp, _ := NewPrefixParser(r, cfg)
		return func() (interface{}, error) { return pp.Next() }
	})
	return &Feeder{pc: pc}, nil
}

func (f *Feeder) Feed(b []byte) error { f.pc.feed(b); return nil }
func (f *Feeder) Close() error        { f.pc.close(); return nil }

func (f *Feeder) Events() <-chan PrefixedEventResult {
	out := make(chan PrefixedEventResult)
	go func() {
		defer close(out)
		for {
			v, err := f.pc.next()
			if err == io.EOF {
				return
			}
			if err != nil {
				out <- PrefixedEventResult{Err: err}
				return
			}
			out <- PrefixedEventResult{Event: v.(PrefixedEvent)}
		}
	}()
	return out
}

// ValueResult pairs a materialised Items value with an error,
// delivered over an ItemsFeeder's channel.
type ValueResult struct {
	Value interface{}
	Err   error
}

// ItemsFeeder is the push façade over Items.
type ItemsFeeder struct {
	pc *pushCore
}

// NewItemsFeeder creates an ItemsFeeder yielding values at prefix.
func NewItemsFeeder(prefix string, cfg Config) (*ItemsFeeder, error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, err
	}
	pc := newPushCore(func(r io.Reader) func() (interface{}, error) {
		it, _ := NewItems(r, prefix, cfg)
		return func() (interface{}, error) { return it.Next() }
	})
	return &ItemsFeeder{pc: pc}, nil
}

func (f *ItemsFeeder) Feed(b []byte) error { f.pc.feed(b); return nil }
func (f *ItemsFeeder) Close() error        { f.pc.close(); return nil }

func (f *ItemsFeeder) Values() <-chan ValueResult {
	out := make(chan ValueResult)
	go func() {
		defer close(out)
		for {
			v, err := f.pc.next()
			if err == io.EOF {
				return
			}
			if err != nil {
				out <- ValueResult{Err: err}
				return
			}
			out <- ValueResult{Value: v}
		}
	}()
	return out
}

// KVResult pairs a KVItems pair with an error, delivered over a
// KVItemsFeeder's channel.
type KVResult struct {
	KV  KV
	Err error
}

// KVItemsFeeder is the push façade over KVItems.
type KVItemsFeeder struct {
	pc *pushCore
}

// NewKVItemsFeeder creates a KVItemsFeeder yielding pairs at prefix.
func NewKVItemsFeeder(prefix string, cfg Config) (*KVItemsFeeder, error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, err
	}
	pc := newPushCore(func(r io.Reader) func() (interface{}, error) {
		kv, _ := NewKVItems(r, prefix, cfg)
		return func() (interface{}, error) { return kv.Next() }
	})
	return &KVItemsFeeder{pc: pc}, nil
}

func (f *KVItemsFeeder) Feed(b []byte) error { f.pc.feed(b); return nil }
func (f *KVItemsFeeder) Close() error        { f.pc.close(); return nil }

func (f *KVItemsFeeder) Pairs() <-chan KVResult {
	out := make(chan KVResult)
	go func() {
		defer close(out)
		for {
			v, err := f.pc.next()
			if err == io.EOF {
				return
			}
			if err != nil {
				out <- KVResult{Err: err}
				return
			}
			out <- KVResult{KV: v.(KV)}
		}
	}()
	return out
}
