package timezone

import (
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name       string
		wantID     int
		wantOffset string
		wantOK     bool
	}{
		{"Dublin", 20, "+00:00", true},
		{"Rome", 19, "+01:00", true},
		{"San Francisco", 30, "-08:00", true},
		{"US/Central", 28, "-06:00", true},
		{"Kathmandu", 11, "+05:45", true},
		{"Chatham Islands", 1, "+12:45", true},
		{"Atlantis", 0, "", false},
		{"dublin", 0, "", false}, // names are case-sensitive
		{"", 0, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			city, ok := Lookup(tt.name)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if city.ID != tt.wantID || city.Offset != tt.wantOffset {
				t.Errorf("Lookup(%q) = (%d, %q), want (%d, %q)",
					tt.name, city.ID, city.Offset, tt.wantID, tt.wantOffset)
			}
		})
	}
}

func TestCatalogOffsetsParse(t *testing.T) {
	for _, city := range All() {
		if _, err := ParseOffset(city.Offset); err != nil {
			t.Errorf("catalog entry %q has unparseable offset %q: %v", city.Name, city.Offset, err)
		}
	}
}

func TestNamesMatchCatalog(t *testing.T) {
	names := Names()
	if len(names) != len(All()) {
		t.Fatalf("Names() returned %d entries, catalog has %d", len(names), len(All()))
	}
	for _, name := range names {
		if _, ok := Lookup(name); !ok {
			t.Errorf("Names() entry %q does not resolve", name)
		}
	}
}

func TestParseOffset(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"+01:00", 60, false},
		{"-05:00", -300, false},
		{"+00:00", 0, false},
		{"+05:30", 330, false},
		{"-03:30", -210, false},
		{"12:45", 765, false}, // no sign defaults to positive
		{" +02:00 ", 120, false},
		{"", 0, true},
		{"+5", 0, true},
		{"+aa:00", 0, true},
		{"+01:xx", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOffset(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseOffset(%q) = %d, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOffset(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseOffset(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatOffset(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{60, "+01:00"},
		{-300, "-05:00"},
		{0, "+00:00"},
		{330, "+05:30"},
		{-210, "-03:30"},
		{765, "+12:45"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatOffset(tt.minutes); got != tt.want {
				t.Errorf("FormatOffset(%d) = %q, want %q", tt.minutes, got, tt.want)
			}
		})
	}
}

func TestOffsetRoundTrip(t *testing.T) {
	for _, city := range All() {
		minutes, err := ParseOffset(city.Offset)
		if err != nil {
			t.Fatalf("ParseOffset(%q): %v", city.Offset, err)
		}
		if got := FormatOffset(minutes); got != city.Offset {
			t.Errorf("round trip %q -> %d -> %q", city.Offset, minutes, got)
		}
	}
}

func TestInvertOffset(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"+02:00", "-02:00"},
		{"-08:00", "+08:00"},
		{"+00:00", "+00:00"},
		{"+05:45", "-05:45"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := InvertOffset(tt.input)
			if err != nil {
				t.Fatalf("InvertOffset(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("InvertOffset(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	if _, err := InvertOffset("bogus"); err == nil {
		t.Error("InvertOffset(\"bogus\") succeeded, want error")
	}
}
