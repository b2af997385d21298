package cmd

import (
	"testing"
	"time"
)

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{in: "2024-02-15T10:30:00Z", want: time.Date(2024, 2, 15, 10, 30, 0, 0, time.UTC)},
		{in: "2024-02-15T10:30:00", want: time.Date(2024, 2, 15, 10, 30, 0, 0, time.Local)},
		{in: "2024-02-15", want: time.Date(2024, 2, 15, 0, 0, 0, 0, time.Local)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDateTime(tt.in)
			if err != nil {
				t.Fatalf("ParseDateTime(%q) error = %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDateTime(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if _, err := ParseDateTime("not-a-date"); err == nil {
		t.Error("ParseDateTime accepted garbage input")
	}
}
