package schedule

import (
	"errors"
	"testing"
)

func TestParseTimeOfDay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "10:00", want: 600},
		{in: "11:30", want: 690},
		{in: "23:59", want: 1439},
		{in: "25:00", wantErr: true},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "9:00", wantErr: true},
		{in: "09:5", wantErr: true},
		{in: "0900", wantErr: true},
		{in: "ab:cd", wantErr: true},
		{in: "", wantErr: true},
		{in: " 09:00", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrMalformedTime) {
				t.Fatalf("ParseTimeOfDay(%q): expected ErrMalformedTime, got %v", tt.in, err)
			}
			var mte *MalformedTimeError
			if !errors.As(err, &mte) || mte.Value != tt.in {
				t.Fatalf("ParseTimeOfDay(%q): expected MalformedTimeError with value, got %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseTimeOfDay(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseTimeOfDay(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTimeOfDayString(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"00:00", "07:05", "10:00", "23:59"} {
		if got := MustParseTimeOfDay(s).String(); got != s {
			t.Fatalf("round trip %q: got %q", s, got)
		}
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := ParseDate("2024-07-15")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d.USString() != "7/15/2024" {
		t.Fatalf("expected 7/15/2024, got %s", d.USString())
	}
	if d.String() != "2024-07-15" {
		t.Fatalf("expected ISO form, got %s", d.String())
	}

	for _, bad := range []string{"", "2024-13-01", "2024-02-30", "15/07/2024"} {
		if _, err := ParseDate(bad); !errors.Is(err, ErrMalformedDate) {
			t.Fatalf("ParseDate(%q): expected ErrMalformedDate, got %v", bad, err)
		}
	}
}

func TestDateOrdering(t *testing.T) {
	t.Parallel()

	a := MustParseDate("2024-07-15")
	b := MustParseDate("2024-07-16")
	if !a.Before(b) || b.Before(a) || a.Before(a) {
		t.Fatalf("unexpected ordering between %s and %s", a, b)
	}
	if a.AddDays(1) != b {
		t.Fatalf("AddDays(1) = %s, want %s", a.AddDays(1), b)
	}
	if MustParseDate("2024-12-31").AddDays(1) != MustParseDate("2025-01-01") {
		t.Fatalf("AddDays should roll over the year")
	}
}
