package exiftool

import (
	"strings"
	"testing"
)

func TestOffsetFromTags(t *testing.T) {
	tests := []struct {
		name     string
		offset   string
		timeZone string
		daylight string
		want     Offset
		wantErr  string
	}{
		{
			name:   "offset time original wins",
			offset: "+02:00",
			want:   Offset{Value: "+02:00"},
		},
		{
			name:     "offset time original wins over timezone and dst",
			offset:   "+01:00",
			timeZone: "-05:00",
			daylight: "On",
			want:     Offset{Value: "+01:00", DST: true},
		},
		{
			name:     "timezone fallback",
			timeZone: "+01:00",
			want:     Offset{Value: "+01:00"},
		},
		{
			name:     "timezone advanced by dst",
			timeZone: "+01:00",
			daylight: "On",
			want:     Offset{Value: "+02:00", DST: true},
		},
		{
			name:     "dst off leaves timezone alone",
			timeZone: "-05:00",
			daylight: "Off",
			want:     Offset{Value: "-05:00"},
		},
		{
			name:     "dst rollover across utc",
			timeZone: "-00:30",
			daylight: "On",
			want:     Offset{Value: "+00:30", DST: true},
		},
		{
			name:    "nothing recorded",
			wantErr: "no timezone offset",
		},
		{
			name:     "unparseable timezone tag",
			timeZone: "half past",
			wantErr:  "timezone tag",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := offsetFromTags(tt.offset, tt.timeZone, tt.daylight, "a.jpg")
			if tt.wantErr != "" {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error %q does not mention %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("offsetFromTags failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("offset = %+v, want %+v", got, tt.want)
			}
		})
	}
}
