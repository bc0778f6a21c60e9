package dns

import "testing"

func TestToFQDN(t *testing.T) {
	tests := []struct {
		name     string
		zone     string
		input    string
		expected string
	}{
		{
			name:     "@ resolves to the zone",
			zone:     "example.com",
			input:    "@",
			expected: "example.com",
		},
		{
			name:     "www resolves to www.zone",
			zone:     "example.com",
			input:    "www",
			expected: "www.example.com",
		},
		{
			name:     "nested label resolves under the zone",
			zone:     "example.com",
			input:    "a.b",
			expected: "a.b.example.com",
		},
		{
			name:     "empty name means the apex",
			zone:     "example.com",
			input:    "",
			expected: "example.com",
		},
		{
			name:     "already qualified name passes through",
			zone:     "example.com",
			input:    "test.example.com",
			expected: "test.example.com",
		},
		{
			name:     "zone itself passes through",
			zone:     "example.com",
			input:    "example.com",
			expected: "example.com",
		},
		{
			name:     "trailing dot is stripped",
			zone:     "example.com.",
			input:    "www.",
			expected: "www.example.com",
		},
		{
			name:     "whitespace is trimmed",
			zone:     " example.com ",
			input:    " www ",
			expected: "www.example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ToFQDN(tt.zone, tt.input)
			if result != tt.expected {
				t.Errorf("ToFQDN(%q, %q) = %q; want %q", tt.zone, tt.input, result, tt.expected)
			}
		})
	}
}

func TestRelativeName(t *testing.T) {
	tests := []struct {
		name     string
		zone     string
		input    string
		expected string
	}{
		{
			name:     "zone itself becomes @",
			zone:     "example.com",
			input:    "example.com",
			expected: "@",
		},
		{
			name:     "qualified name loses the zone suffix",
			zone:     "example.com",
			input:    "www.example.com",
			expected: "www",
		},
		{
			name:     "nested qualified name keeps inner labels",
			zone:     "example.com",
			input:    "a.b.example.com",
			expected: "a.b",
		},
		{
			name:     "trailing dot is stripped",
			zone:     "example.com",
			input:    "www.example.com.",
			expected: "www",
		},
		{
			name:     "@ stays @",
			zone:     "example.com",
			input:    "@",
			expected: "@",
		},
		{
			name:     "empty name means the apex",
			zone:     "example.com",
			input:    "",
			expected: "@",
		},
		{
			name:     "relative names pass through",
			zone:     "example.com",
			input:    "a.b",
			expected: "a.b",
		},
		{
			name:     "foreign domain passes through untouched",
			zone:     "example.com",
			input:    "www.other.net",
			expected: "www.other.net",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RelativeName(tt.zone, tt.input)
			if result != tt.expected {
				t.Errorf("RelativeName(%q, %q) = %q; want %q", tt.zone, tt.input, result, tt.expected)
			}
		})
	}
}
