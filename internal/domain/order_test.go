package domain

import "testing"

func TestExtractOrderID(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{"simple", "Where is my order 123456", "123456", true},
		{"first match wins", "orders 12345 and 67890", "12345", true},
		{"minimum four digits", "order 1234", "1234", true},
		{"three digits too short", "order 123", "", false},
		{"embedded digits not a word", "ref#12345abc", "", false},
		{"no digits", "what is your return policy", "", false},
		{"punctuation boundary", "order #123456.", "123456", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractOrderID(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("id: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHasOrderID(t *testing.T) {
	if !HasOrderID("track 9999") {
		t.Error("expected match for 4-digit run")
	}
	if HasOrderID("track 999") {
		t.Error("did not expect match for 3-digit run")
	}
}
