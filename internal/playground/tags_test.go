package playground

import (
	"reflect"
	"testing"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"only separators", " , ,, ", nil},
		{"single", "neon", []string{"neon"}},
		{"trims whitespace", "  neon ,  retro diner ", []string{"neon", "retro diner"}},
		{"drops empty segments", "a,,b", []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTags(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseTags(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestJoinTags_RoundTrip(t *testing.T) {
	tags := []string{"neon", "retro diner", "americana"}
	joined := JoinTags(tags)
	if joined != "neon, retro diner, americana" {
		t.Errorf("JoinTags() = %q", joined)
	}
	if got := ParseTags(joined); !reflect.DeepEqual(got, tags) {
		t.Errorf("ParseTags(JoinTags()) = %v, want %v", got, tags)
	}
}

func TestValidTheme(t *testing.T) {
	for _, theme := range Themes() {
		if !ValidTheme(string(theme)) {
			t.Errorf("ValidTheme(%q) = false, want true", theme)
		}
	}
	for _, key := range []string{"", "noir", "Cinematic", "trade show assembly"} {
		if ValidTheme(key) {
			t.Errorf("ValidTheme(%q) = true, want false", key)
		}
	}
}

func TestDisplayTheme(t *testing.T) {
	if got := DisplayTheme("trade_show_assembly"); got != "trade show assembly" {
		t.Errorf("DisplayTheme() = %q", got)
	}
	// Unknown values pass through with the same replacement.
	if got := DisplayTheme("some_custom_theme"); got != "some custom theme" {
		t.Errorf("DisplayTheme() = %q", got)
	}
}
