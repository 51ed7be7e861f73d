package uploads

import (
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "team.jpg", "team.jpg"},
		{"spaces and specials", "my photo (1).png", "my_photo__1_.png"},
		{"path components stripped", "../../etc/passwd", "passwd"},
		{"empty", "", "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeFilename(tt.input); got != tt.want {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeFilename_TruncatesPreservingExtension(t *testing.T) {
	long := strings.Repeat("a", 200) + ".jpeg"
	got := sanitizeFilename(long)
	if len(got) > 100 {
		t.Errorf("length = %d, want <= 100", len(got))
	}
	if !strings.HasSuffix(got, ".jpeg") {
		t.Errorf("expected extension preserved, got %q", got)
	}
}
