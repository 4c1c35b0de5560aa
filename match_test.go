package gofat

import "testing"

func Test_foldRune(t *testing.T) {
	tests := []struct {
		name string
		in   rune
		want rune
	}{
		{"ascii upper", 'A', 'a'},
		{"ascii lower", 'z', 'z'},
		{"digit", '7', '7'},
		{"latin accented lower", 'é', 'é'},
		{"unmapped symbol", '☃', '☃'},
		{"outside the BMP", '\U0001F600', '\U0001F600'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := foldRune(tt.in); got != tt.want {
				t.Errorf("foldRune(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNamesEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"identical", "readme.txt", "readme.txt", true},
		{"ascii case difference", "README.TXT", "readme.txt", true},
		{"different name", "CAFÉ", "CAFE", false},
		{"different length", "readme", "readme.txt", false},
		{"empty names", "", "", true},
		{"accent versus plain", "café", "cafe", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NamesEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("NamesEqual(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
