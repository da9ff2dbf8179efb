package i18n

import (
	"testing"
)

func TestT_ReturnsDefaultMessage(t *testing.T) {
	Init("en")
	got := T("test.unknown_id", "Loading...")
	if got != "Loading..." {
		t.Errorf("T() = %q, want %q", got, "Loading...")
	}
}

func TestT_PortugueseTranslation(t *testing.T) {
	Init("pt-BR")
	got := T("status.generating", "Generating prompts...")
	if got != "Gerando prompts..." {
		t.Errorf("T() = %q", got)
	}
}

func TestTf_Formats(t *testing.T) {
	Init("en")
	got := Tf("status.case_loaded", "Preset %q loaded.", "Neon diner")
	if got != `Preset "Neon diner" loaded.` {
		t.Errorf("Tf() = %q", got)
	}
}

func TestInit_FallbackToEnglish(t *testing.T) {
	Init("xx-nonexistent")
	got := T("test.unknown_id", "Loading...")
	if got != "Loading..." {
		t.Errorf("expected English fallback, got %q", got)
	}
}

func TestResolveLocale(t *testing.T) {
	t.Setenv("SEADREAM_LANG", "")
	t.Setenv("LC_ALL", "")
	t.Setenv("LANG", "")

	if got := ResolveLocale(""); got != "en" {
		t.Errorf("ResolveLocale() = %q, want en", got)
	}
	if got := ResolveLocale("pt-BR"); got != "pt-BR" {
		t.Errorf("config language ignored: %q", got)
	}

	t.Setenv("LANG", "pt_BR.UTF-8")
	if got := ResolveLocale(""); got != "pt-BR" {
		t.Errorf("POSIX locale not normalized: %q", got)
	}

	t.Setenv("SEADREAM_LANG", "en")
	if got := ResolveLocale("pt-BR"); got != "en" {
		t.Errorf("SEADREAM_LANG should win: %q", got)
	}
}
