package components

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestStatusBarShowsCountAgainstCap(t *testing.T) {
	sb := NewStatusBar()
	sb.SetWidth(120)
	sb.SetCount(3)

	view := sb.View()
	if !strings.Contains(view, "3/6") {
		t.Errorf("Expected count 3/6 in view, got %q", view)
	}
	if strings.Contains(view, "(full)") {
		t.Error("Expected no full marker below the cap")
	}

	sb.SetCount(6)
	if !strings.Contains(sb.View(), "(full)") {
		t.Error("Expected full marker at the cap")
	}
}

func TestStatusBarInputModeSwitchesHints(t *testing.T) {
	sb := NewStatusBar()
	sb.SetWidth(120)

	if !strings.Contains(sb.View(), "a:add") {
		t.Error("Expected navigation hints by default")
	}

	sb.SetInputMode(true)
	if !strings.Contains(sb.View(), "tab:next field") {
		t.Error("Expected editing hints in input mode")
	}
}

func TestStatusBarTruncatesOnRuneBoundaries(t *testing.T) {
	// The navigation hints contain multibyte arrows; no truncation width
	// may cut one in half.
	for width := 6; width <= 60; width++ {
		sb := NewStatusBar()
		sb.SetWidth(width)
		sb.SetCount(2)

		view := sb.View()
		if !utf8.ValidString(view) {
			t.Errorf("Expected valid UTF-8 at width %d, got %q", width, view)
		}
		if strings.ContainsRune(view, utf8.RuneError) {
			t.Errorf("Expected no replacement characters at width %d", width)
		}
	}
}

func TestStatusBarMessage(t *testing.T) {
	sb := NewStatusBar()
	sb.SetWidth(120)
	sb.SetMessage("cannot add more than 6 screens")

	if !strings.Contains(sb.View(), "cannot add more than 6 screens") {
		t.Error("Expected message in view")
	}

	sb.SetMessage("")
	if strings.Contains(sb.View(), "cannot add") {
		t.Error("Expected message cleared")
	}
}
