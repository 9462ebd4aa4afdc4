package suggest

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestClipContentShortTextUnchanged(t *testing.T) {
	got, clipped := ClipContent("short meeting note", "gpt-4o-mini", 100)
	if clipped {
		t.Error("short text reported as clipped")
	}
	if got != "short meeting note" {
		t.Errorf("got %q, want input unchanged", got)
	}
}

func TestClipContentEmpty(t *testing.T) {
	if got, clipped := ClipContent("", "gpt-4o-mini", 100); got != "" || clipped {
		t.Errorf("ClipContent(empty) = %q, %v", got, clipped)
	}
	if got, clipped := ClipContent("   \n ", "gpt-4o-mini", 100); got != "" || clipped {
		t.Errorf("ClipContent(whitespace) = %q, %v", got, clipped)
	}
}

func TestClipContentDisabledLimit(t *testing.T) {
	long := strings.Repeat("words and more words ", 100)
	got, clipped := ClipContent(long, "gpt-4o-mini", 0)
	if clipped {
		t.Error("limit 0 must disable clipping")
	}
	if got != strings.TrimSpace(long) {
		t.Error("limit 0 altered the text beyond trimming")
	}
}

func TestClipContentLongText(t *testing.T) {
	long := strings.Repeat("lorem ipsum dolor sit amet ", 2000)
	trimmed := strings.TrimSpace(long)

	got, clipped := ClipContent(long, "gpt-4o-mini", 50)
	if !clipped {
		t.Fatal("long text was not clipped")
	}
	if got == "" {
		t.Fatal("clipped result is empty")
	}
	if len(got) >= len(trimmed) {
		t.Errorf("clipped result (%d bytes) not shorter than input (%d bytes)", len(got), len(trimmed))
	}
	if !strings.HasPrefix(trimmed, got) {
		t.Error("clipped result is not a prefix of the input")
	}
	if !utf8.ValidString(got) {
		t.Errorf("clipped result is not valid UTF-8: %q", got)
	}
}
