package domain

import "testing"

func TestExtractAddress(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		wantOK bool
	}{
		{
			name:   "display name with angle brackets",
			header: "Jane Doe <jane@example.com>",
			want:   "jane@example.com",
			wantOK: true,
		},
		{
			name:   "bare address",
			header: "jane@example.com",
			want:   "jane@example.com",
			wantOK: true,
		},
		{
			name:   "quoted display name",
			header: `"Doe, Jane" <jane@example.com>`,
			want:   "jane@example.com",
			wantOK: true,
		},
		{
			name:   "unquoted comma in display name",
			header: "Doe, Jane <jane@example.com>",
			want:   "jane@example.com",
			wantOK: true,
		},
		{
			name:   "surrounding whitespace",
			header: "  jane@example.com  ",
			want:   "jane@example.com",
			wantOK: true,
		},
		{
			name:   "no address pattern",
			header: "not an address",
			wantOK: false,
		},
		{
			name:   "empty header",
			header: "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractAddress(tt.header)
			if ok != tt.wantOK {
				t.Fatalf("ExtractAddress(%q) ok = %v, want %v", tt.header, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ExtractAddress(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}
