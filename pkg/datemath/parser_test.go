package datemath_test

import (
	"errors"
	"testing"
	"time"

	"github.com/gauravmalhotra04/raiden-ai/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Kolkata")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParseDue(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	want := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{name: "wire format", value: "2024-05-01T15:30", want: want},
		{name: "with seconds", value: "2024-05-01T15:30:00", want: want},
		{name: "space separated", value: "2024-05-01 15:30", want: want},
		{name: "rfc3339 converted", value: "2024-05-01T17:30:00+02:00", want: want},
		{name: "surrounding spaces", value: "  2024-05-01T15:30 ", want: want},
		{name: "empty", value: "", wantErr: true},
		{name: "garbage", value: "next tuesday-ish", wantErr: true},
		{name: "date only", value: "2024-05-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.ParseDue(tt.value)
			if tt.wantErr {
				if !errors.Is(err, datemath.ErrInvalidDate) {
					t.Fatalf("expected ErrInvalidDate, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	got, err := parser.ParseDay("2024-02-29")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected day: %v", got)
	}

	if _, err := parser.ParseDay("2023-02-29"); err == nil {
		t.Errorf("expected error for non-existent day")
	}
}
