package ijson

import "testing"

func TestFeederMatchesPullParser(t *testing.T) {
	doc := []byte(`{"a": [1, 2.5, "s", true, null]}`)

	pullEvents, err := parseAll(t, string(doc), Config{})
	if err != nil {
		t.Fatalf("pull parse: %v", err)
	}

	f, err := NewBasicFeeder(Config{})
	if err != nil {
		t.Fatalf("NewBasicFeeder: %v", err)
	}
	results := f.Events()

	// Feed in small, arbitrary chunks to exercise cross-chunk lexing.
	for i := 0; i < len(doc); i += 3 {
		end := i + 3
		if end > len(doc) {
			end = len(doc)
		}
		if err := f.Feed(doc[i:end]); err != nil {
			t.Fatalf("Feed: %v", err)
		}
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	var pushEvents []Event
	for r := range results {
		if r.Err != nil {
			t.Fatalf("push parse: %v", r.Err)
		}
		pushEvents = append(pushEvents, r.Event)
	}

	if len(pushEvents) != len(pullEvents) {
		t.Fatalf("got %d push events, want %d pull events", len(pushEvents), len(pullEvents))
	}
	for i := range pullEvents {
		if pushEvents[i].Type != pullEvents[i].Type {
			t.Errorf("event %d: type %v != %v", i, pushEvents[i].Type, pullEvents[i].Type)
		}
	}
}

func TestItemsFeederYieldsValues(t *testing.T) {
	f, err := NewItemsFeeder("docs.item", Config{})
	if err != nil {
		t.Fatalf("NewItemsFeeder: %v", err)
	}
	results := f.Values()

	doc := []byte(`{"docs": [{"n": 1}, {"n": 2}]}`)
	if err := f.Feed(doc); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	var vals []interface{}
	for r := range results {
		if r.Err != nil {
			t.Fatalf("unexpected error: %v", r.Err)
		}
		vals = append(vals, r.Value)
	}
	if len(vals) != 2 {
		t.Fatalf("got %d values, want 2: %+v", len(vals), vals)
	}
}

func TestFeederPropagatesMalformedInput(t *testing.T) {
	f, err := NewBasicFeeder(Config{})
	if err != nil {
		t.Fatalf("NewBasicFeeder: %v", err)
	}
	results := f.Events()

	if err := f.Feed([]byte(`{"a": @}`)); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	var sawErr bool
	for r := range results {
		if r.Err != nil {
			sawErr = true
		}
	}
	if !sawErr {
		t.Fatalf("expected the malformed byte to surface as an error")
	}
}
