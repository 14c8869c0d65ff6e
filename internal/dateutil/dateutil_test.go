package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseDateFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  string
		want    string
		wantErr error
	}{
		{name: "full year", format: "YYYY", want: "2006"},
		{name: "short year", format: "YY", want: "06"},
		{name: "full month name", format: "MMMM", want: "January"},
		{name: "short month name", format: "MMM", want: "Jan"},
		{name: "padded month", format: "MM", want: "01"},
		{name: "month", format: "M", want: "1"},
		{name: "padded day", format: "DD", want: "02"},
		{name: "day", format: "D", want: "2"},
		{name: "iso", format: "YYYY-MM-DD", want: "2006-01-02"},
		{name: "european", format: "DD/MM/YYYY", want: "02/01/2006"},
		{name: "long", format: "MMMM D, YYYY", want: "January 2, 2006"},
		{name: "bare D in text is a token", format: "Day YYYY", want: "2ay 2006"},
		{name: "brackets keep literal text", format: "[Posted] D MMM", want: "Posted 2 Jan"},
		{name: "brackets keep tokens", format: "[YYYY]-MM", want: "YYYY-01"},
		{name: "empty brackets", format: "YYYY[]MM", want: "200601"},
		{name: "only literals", format: "---", want: "---"},
		{name: "unclosed bracket", format: "[Posted YYYY", wantErr: ErrInvalidDateFormat},
		{name: "empty format", format: "", wantErr: ErrInvalidDateFormat},
		{
			name:    "too long",
			format:  string(make([]byte, MaxDateFormatLength+1)),
			wantErr: ErrInvalidDateFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDateFormat(tt.format)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseDateFormat(%q) error = %v, want %v", tt.format, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDateFormat(%q) unexpected error: %v", tt.format, err)
			}
			if got != tt.want {
				t.Errorf("ParseDateFormat(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestResolveFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   string
	}{
		{"iso", "2006-01-02"},
		{"European", "02/01/2006"},
		{"US", "01/02/2006"},
		{"long", "January 2, 2006"},
		{"D MMM YY", "2 Jan 06"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			got, err := ResolveFormat(tt.format)
			if err != nil {
				t.Fatalf("ResolveFormat(%q) unexpected error: %v", tt.format, err)
			}
			if got != tt.want {
				t.Errorf("ResolveFormat(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestParsePostDate(t *testing.T) {
	t.Parallel()

	want := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{name: "iso", value: "2024-03-05", want: want},
		{name: "iso with spaces", value: "  2024-03-05 ", want: want},
		{name: "minutes", value: "2024-03-05 14:30", want: want.Add(14*time.Hour + 30*time.Minute)},
		{name: "seconds", value: "2024-03-05 14:30:15", want: want.Add(14*time.Hour + 30*time.Minute + 15*time.Second)},
		{name: "rfc3339", value: "2024-03-05T00:00:00Z", want: want},
		{name: "slashes", value: "2024/03/05", want: want},
		{name: "day first", value: "05-03-2024", want: want},
		{name: "long us", value: "March 5, 2024", want: want},
		{name: "long european", value: "5 March 2024", want: want},
		{name: "placeholder default", value: "XX/XX/XXXX", wantErr: true},
		{name: "empty", value: "", wantErr: true},
		{name: "invalid day", value: "2024-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParsePostDate(tt.value)
			if tt.wantErr {
				if !errors.Is(err, ErrUnparseableDate) {
					t.Errorf("ParsePostDate(%q) error = %v, want ErrUnparseableDate", tt.value, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePostDate(%q) unexpected error: %v", tt.value, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParsePostDate(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		value  string
		format string
		want   string
	}{
		{name: "long preset", value: "2024-03-05", format: "long", want: "March 5, 2024"},
		{name: "european preset", value: "March 5, 2024", format: "european", want: "05/03/2024"},
		{name: "custom tokens", value: "2024-03-05", format: "D MMM YYYY", want: "5 Mar 2024"},
		{name: "empty format keeps value", value: "2024-03-05", format: "", want: "2024-03-05"},
		{name: "invalid format keeps value", value: "2024-03-05", format: "[YYYY", want: "2024-03-05"},
		{name: "unparseable value kept", value: "XX/XX/XXXX", format: "long", want: "XX/XX/XXXX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDate(tt.value, tt.format); got != tt.want {
				t.Errorf("FormatDate(%q, %q) = %q, want %q", tt.value, tt.format, got, tt.want)
			}
		})
	}
}
