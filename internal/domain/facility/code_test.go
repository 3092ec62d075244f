package facility

import (
	"regexp"
	"testing"
	"time"
)

var reCode = regexp.MustCompile(`^CS_\d{8}_\d{3}$`)

func TestNewCode(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{
			name: "tail is last three epoch-ms digits",
			now:  time.UnixMilli(1758790000847).UTC(), // 2025-09-25T08:46:40.847Z
			want: "CS_20250925_847",
		},
		{
			name: "tail is zero padded",
			now:  time.Date(2025, 1, 2, 3, 4, 5, 7_000_000, time.UTC),
			want: "CS_20250102_007",
		},
		{
			name: "date follows the instant's location",
			now:  time.Date(2025, 12, 31, 23, 30, 0, 120_000_000, time.FixedZone("ICT", 7*3600)),
			want: "CS_20251231_120",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewCode(tt.now)
			if got != tt.want {
				t.Fatalf("NewCode = %q, want %q", got, tt.want)
			}
			if !reCode.MatchString(got) {
				t.Fatalf("code %q does not match %s", got, reCode)
			}
		})
	}
}

func TestParseCertificateDate(t *testing.T) {
	tests := []struct {
		raw     string
		want    string // "" means nil
		wantErr bool
	}{
		{raw: "2024-03-15", want: "2024-03-15"},
		{raw: "2024-03-15T10:20:30Z", want: "2024-03-15"},
		{raw: "2024-03-15T23:59:59+07:00", want: "2024-03-15"},
		{raw: "  ", want: ""},
		{raw: "", want: ""},
		{raw: "15/03/2024", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseCertificateDate(tt.raw)
		if tt.wantErr {
			if err != ErrInvalidCertificateDate {
				t.Fatalf("ParseCertificateDate(%q) err = %v, want ErrInvalidCertificateDate", tt.raw, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseCertificateDate(%q) unexpected err: %v", tt.raw, err)
		}
		s := FormatCertificateDate(got)
		switch {
		case tt.want == "" && s != nil:
			t.Fatalf("ParseCertificateDate(%q) = %q, want nil", tt.raw, *s)
		case tt.want != "" && (s == nil || *s != tt.want):
			t.Fatalf("ParseCertificateDate(%q) = %v, want %q", tt.raw, s, tt.want)
		}
	}
}

func TestStatus(t *testing.T) {
	for _, s := range Statuses {
		if !s.Valid() {
			t.Fatalf("%q should be valid", s)
		}
		if _, err := ParseStatus(string(s)); err != nil {
			t.Fatalf("ParseStatus(%q): %v", s, err)
		}
	}
	if _, err := ParseStatus("archived"); err != ErrInvalidStatus {
		t.Fatalf("ParseStatus(archived) err = %v, want ErrInvalidStatus", err)
	}
	// every valid pair is an allowed transition, including self-loops
	for _, from := range Statuses {
		for _, to := range Statuses {
			if !CanTransition(from, to) {
				t.Fatalf("CanTransition(%s, %s) = false", from, to)
			}
		}
	}
	if CanTransition(StatusPending, "archived") {
		t.Fatal("CanTransition to an unknown status must be false")
	}
}
