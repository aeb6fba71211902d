package segment

import (
	"strings"
	"testing"
)

// body returns filler content long enough to clear the noise threshold.
func body(label string) string {
	return label + ": " + strings.Repeat("minutes of the meeting. ", 4)
}

func TestSplit_StarBoundary(t *testing.T) {
	text := body("first") + "\n***\n" + body("second")
	pieces := Split(text, 0)

	if len(pieces) != 2 {
		t.Fatalf("expected 2 pieces, got %d", len(pieces))
	}
	if !strings.HasPrefix(pieces[0], "first:") {
		t.Errorf("piece 0 = %q", pieces[0])
	}
	if !strings.HasPrefix(pieces[1], "second:") {
		t.Errorf("piece 1 = %q", pieces[1])
	}
}

func TestSplit_AllBoundaryForms(t *testing.T) {
	text := body("a") + "\n***\n" + body("b") + "\n-----\n" + body("c") + "\nMeeting:\n" + body("d")
	pieces := Split(text, 0)

	if len(pieces) != 4 {
		t.Fatalf("expected 4 pieces, got %d", len(pieces))
	}
}

func TestSplit_BoundaryLineNotRetained(t *testing.T) {
	text := body("a") + "\n****\n" + body("b")
	for i, p := range Split(text, 0) {
		for _, line := range strings.Split(p, "\n") {
			if IsBoundary(line) {
				t.Errorf("piece %d contains boundary line %q", i, line)
			}
		}
	}
}

func TestSplit_NoBoundaries(t *testing.T) {
	text := "  " + body("only") + "  "
	pieces := Split(text, 0)

	if len(pieces) != 1 {
		t.Fatalf("expected 1 piece, got %d", len(pieces))
	}
	if pieces[0] != strings.TrimSpace(text) {
		t.Errorf("piece not trimmed: %q", pieces[0])
	}
}

func TestSplit_ShortPiecesDropped(t *testing.T) {
	text := "too short\n***\n" + body("kept")
	pieces := Split(text, 0)

	if len(pieces) != 1 {
		t.Fatalf("expected 1 piece, got %d", len(pieces))
	}
	if !strings.HasPrefix(pieces[0], "kept:") {
		t.Errorf("wrong piece kept: %q", pieces[0])
	}
}

func TestSplit_MinLengthIsStrict(t *testing.T) {
	exactly50 := strings.Repeat("x", 50)
	if got := Split(exactly50, 0); len(got) != 0 {
		t.Errorf("50-char piece should be dropped, got %d pieces", len(got))
	}
	exactly51 := strings.Repeat("x", 51)
	if got := Split(exactly51, 0); len(got) != 1 {
		t.Errorf("51-char piece should survive, got %d pieces", len(got))
	}
}

func TestSplit_OnlySeparators(t *testing.T) {
	text := "***\n---\nMeeting:\n****\n"
	if got := Split(text, 0); len(got) != 0 {
		t.Errorf("expected 0 pieces for separator-only input, got %d", len(got))
	}
}

func TestSplit_ConsecutiveBoundariesCollapse(t *testing.T) {
	text := body("a") + "\n***\n---\n***\n" + body("b")
	pieces := Split(text, 0)

	if len(pieces) != 2 {
		t.Fatalf("expected 2 pieces, got %d", len(pieces))
	}
}

func TestSplit_BoundaryWithSurroundingWhitespace(t *testing.T) {
	text := body("a") + "\n   ***   \n" + body("b")
	pieces := Split(text, 0)

	if len(pieces) != 2 {
		t.Fatalf("expected 2 pieces (indented boundary), got %d", len(pieces))
	}
}

func TestSplit_Empty(t *testing.T) {
	if got := Split("", 0); len(got) != 0 {
		t.Errorf("expected 0 pieces for empty input, got %d", len(got))
	}
}

func TestSplit_CustomMinLength(t *testing.T) {
	text := "short one\n***\nshort two here"
	pieces := Split(text, 5)

	if len(pieces) != 2 {
		t.Fatalf("expected 2 pieces with minLength 5, got %d", len(pieces))
	}
}

func TestIsBoundary(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"***", true},
		{"**********", true},
		{"---", true},
		{"-----", true},
		{"Meeting:", true},
		{"  Meeting:  ", true},
		{"  ***  ", true},
		{"**", false},
		{"--", false},
		{"Meeting: January 21, 2004", false},
		{"*-*", false},
		{"***text", false},
		{"", false},
		{"regular line", false},
	}
	for _, c := range cases {
		if got := IsBoundary(c.line); got != c.want {
			t.Errorf("IsBoundary(%q) = %v, want %v", c.line, got, c.want)
		}
	}
}
