package render

import (
	"reflect"
	"strings"
	"testing"

	"github.com/chromasynth/go-seadream/internal/playground"
)

func TestHistoryRecords_AllTab(t *testing.T) {
	history := []playground.Session{
		{ID: "s1", Theme: "cinematic", Brief: "one", Liked: true},
		{ID: "s2", Theme: "object_study", Brief: "two"},
	}

	records := HistoryRecords(history, playground.TabAll)
	if len(records) != 2 {
		t.Fatalf("got %d records", len(records))
	}
	if records[0].ID != "s1" || records[1].ID != "s2" {
		t.Errorf("order = %s, %s", records[0].ID, records[1].ID)
	}
	if records[1].Title != "object study" {
		t.Errorf("Title = %q, want display theme", records[1].Title)
	}
	if !records[0].Liked || records[1].Liked {
		t.Error("liked flags not projected")
	}
}

func TestHistoryRecords_LikedTabPreservesOrder(t *testing.T) {
	history := []playground.Session{
		{ID: "s1", Liked: true},
		{ID: "s2"},
		{ID: "s3", Liked: true},
	}

	records := HistoryRecords(history, playground.TabLiked)
	if len(records) != 2 {
		t.Fatalf("got %d records", len(records))
	}
	if records[0].ID != "s1" || records[1].ID != "s3" {
		t.Errorf("order = %s, %s", records[0].ID, records[1].ID)
	}
}

func TestHistoryRecords_EmptyPlaceholder(t *testing.T) {
	for _, tab := range []playground.HistoryTab{playground.TabAll, playground.TabLiked} {
		records := HistoryRecords(nil, tab)
		if len(records) != 1 || records[0].Kind != KindEmpty {
			t.Errorf("tab %s: records = %+v", tab, records)
		}
		if records[0].Body == "" {
			t.Errorf("tab %s: placeholder has no text", tab)
		}
	}
}

func TestHistoryRecords_TruncatesBrief(t *testing.T) {
	long := strings.Repeat("ã", 400)
	records := HistoryRecords([]playground.Session{{ID: "s1", Brief: long}}, playground.TabAll)
	body := records[0].Body
	if len([]rune(body)) != 160 {
		t.Errorf("brief not truncated: %d runes", len([]rune(body)))
	}
	if strings.ContainsRune(body, '�') {
		t.Error("truncation split a multi-byte rune")
	}
}

func TestCaseRecords_SortedWithDefaults(t *testing.T) {
	cases := map[string]playground.Case{
		"zeta":  {Title: "Zeta"},
		"alpha": {},
	}

	records := CaseRecords(cases)
	if len(records) != 2 {
		t.Fatalf("got %d records", len(records))
	}
	if records[0].ID != "alpha" || records[1].ID != "zeta" {
		t.Errorf("order = %s, %s", records[0].ID, records[1].ID)
	}
	// Missing fields fall back the way the playground displays them.
	if records[0].Title != "alpha" {
		t.Errorf("Title = %q, want the id", records[0].Title)
	}
	if records[0].Subtitle != "default" {
		t.Errorf("Subtitle = %q", records[0].Subtitle)
	}
	if records[0].Body == "" {
		t.Error("missing brief should get placeholder text")
	}
}

func TestCaseRecords_Empty(t *testing.T) {
	records := CaseRecords(nil)
	if len(records) != 1 || records[0].Kind != KindEmpty {
		t.Errorf("records = %+v", records)
	}
}

func TestResultRecords(t *testing.T) {
	sess := &playground.Session{
		ID:        "s1",
		Blueprint: "# Creative Blueprint",
		Prompts: map[string]string{
			"Stable_Diffusion_3": "sd prompt",
			"DALL-E_3":           "dalle prompt",
			"Flux_1":             "flux prompt",
		},
		ChecklistQuestions: []string{"Is the light right?"},
		Notes:              []string{"Default payload."},
	}

	records := ResultRecords(sess)
	if records[0].Kind != KindBlueprint {
		t.Fatalf("first record = %+v", records[0])
	}

	var prompts []string
	for _, r := range records {
		if r.Kind == KindPrompt {
			prompts = append(prompts, r.Title)
		}
	}
	want := []string{"DALL-E_3", "Flux_1", "Stable_Diffusion_3"}
	if len(prompts) != len(want) {
		t.Fatalf("prompts = %v", prompts)
	}
	for i := range want {
		if prompts[i] != want[i] {
			t.Errorf("prompts[%d] = %q, want %q (sorted)", i, prompts[i], want[i])
		}
	}

	notes := 0
	for _, r := range records {
		if r.Kind == KindNote {
			notes++
		}
	}
	if notes != 2 {
		t.Errorf("got %d note records", notes)
	}
}

func TestResultRecords_NilSession(t *testing.T) {
	records := ResultRecords(nil)
	if len(records) != 1 || records[0].Kind != KindEmpty {
		t.Errorf("records = %+v", records)
	}
}

func TestResultRecords_Idempotent(t *testing.T) {
	sess := &playground.Session{ID: "s1", Prompts: map[string]string{"b": "2", "a": "1"}}
	first := ResultRecords(sess)
	second := ResultRecords(sess)
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !reflect.DeepEqual(first[i], second[i]) {
			t.Errorf("record %d differs across projections", i)
		}
	}
}

func TestLikeButton(t *testing.T) {
	if got := LikeButton(nil); got.Enabled {
		t.Errorf("nil session: %+v", got)
	}
	if got := LikeButton(&playground.Session{ID: "s1"}); !got.Enabled || got.Liked {
		t.Errorf("unliked session: %+v", got)
	}
	got := LikeButton(&playground.Session{ID: "s1", Liked: true})
	if !got.Enabled || !got.Liked {
		t.Errorf("liked session: %+v", got)
	}
}

func TestThemeOptions(t *testing.T) {
	opts := ThemeOptions()
	if len(opts) != len(playground.Themes()) {
		t.Fatalf("got %d options", len(opts))
	}
	for _, opt := range opts {
		if strings.Contains(opt.Label, "_") {
			t.Errorf("label %q should use spaces", opt.Label)
		}
		if !playground.ValidTheme(opt.Key) {
			t.Errorf("key %q not in the theme set", opt.Key)
		}
	}
}

func TestTimestamp(t *testing.T) {
	// The backend's bare ISO timestamps and RFC3339 both parse.
	for _, in := range []string{
		"2026-08-30T12:34:56.789Z",
		"2026-08-30T12:34:56",
		"2026-08-30T12:34:56.123456",
	} {
		got := Timestamp(in)
		if got == in || !strings.Contains(got, "2026") {
			t.Errorf("Timestamp(%q) = %q, want a formatted date", in, got)
		}
	}

	// Unparseable values pass through unchanged.
	for _, in := range []string{"not a timestamp", ""} {
		if got := Timestamp(in); got != in {
			t.Errorf("Timestamp(%q) = %q, want passthrough", in, got)
		}
	}
}
