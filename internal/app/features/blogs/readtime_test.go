package blogs

import (
	"strings"
	"testing"
)

func TestReadTime(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 1},
		{"one word", "hello", 1},
		{"exactly one minute", strings.Repeat("word ", 200), 1},
		{"just over one minute", strings.Repeat("word ", 201), 2},
		{"five minutes", strings.Repeat("word ", 1000), 5},
		{"whitespace only", "   \n\t  ", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReadTime(tt.content); got != tt.want {
				t.Errorf("ReadTime() = %d, want %d", got, tt.want)
			}
		})
	}
}
