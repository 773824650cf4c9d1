package journey

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func chapterIDs(chs []Chapter) []string {
	out := make([]string, 0, len(chs))
	for _, ch := range chs {
		out = append(out, ch.ID)
	}
	return out
}

func TestGetChapterByIDFindsAuthoredChapter(t *testing.T) {
	ch, ok := GetChapterByID("chapter-3")
	if !ok {
		t.Fatalf("expected chapter-3 to exist")
	}
	if ch.ID != "chapter-3" {
		t.Fatalf("expected chapter-3, got %q", ch.ID)
	}
	if ch.Pricing.CostUSD != 4500 {
		t.Fatalf("expected cost 4500, got %d", ch.Pricing.CostUSD)
	}
}

func TestGetChapterByIDUnknownIsAbsent(t *testing.T) {
	for _, id := range []string{"chapter-99", "", "CHAPTER-1"} {
		if _, ok := GetChapterByID(id); ok {
			t.Fatalf("expected %q to be absent", id)
		}
	}
}

func TestGetPackageChapters(t *testing.T) {
	cases := []struct {
		tier string
		want []string
	}{
		{"Core", []string{"chapter-1", "chapter-2"}},
		{"Growth", []string{"chapter-1", "chapter-2", "chapter-3"}},
		{"Scale", []string{"chapter-1", "chapter-2", "chapter-3", "chapter-4", "chapter-5"}},
		{"Unknown", []string{}},
		{"core", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.tier, func(t *testing.T) {
			got := GetPackageChapters(tc.tier)
			if got == nil {
				t.Fatalf("expected non-nil slice")
			}
			if diff := cmp.Diff(tc.want, chapterIDs(got)); diff != "" {
				t.Fatalf("chapters mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetPackageChaptersSkipsUnresolvedIDs(t *testing.T) {
	cfg := Default()
	cfg.Packages = []Package{{Tier: "Odd", IncludedChapterIDs: []string{"chapter-2", "chapter-42", "chapter-1"}}}
	store := NewStore(cfg)

	got := chapterIDs(store.GetPackageChapters("Odd"))
	if diff := cmp.Diff([]string{"chapter-2", "chapter-1"}, got); diff != "" {
		t.Fatalf("chapters mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultPackagesResolveFully(t *testing.T) {
	store := DefaultStore()
	for _, pkg := range store.Packages() {
		got := store.GetPackageChapters(pkg.Tier)
		if len(got) != len(pkg.IncludedChapterIDs) {
			t.Fatalf("tier %s: expected %d chapters, got %d", pkg.Tier, len(pkg.IncludedChapterIDs), len(got))
		}
	}
}

func TestDefaultCatalogIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("expected built-in catalog to validate, got %v", err)
	}
}

func TestStoreFirstOccurrenceWins(t *testing.T) {
	cfg := Default()
	dup := cfg.Chapters[0]
	dup.Title = "Shadow"
	cfg.Chapters = append(cfg.Chapters, dup)
	store := NewStore(cfg)

	ch, ok := store.GetChapterByID(dup.ID)
	if !ok {
		t.Fatalf("expected %s to exist", dup.ID)
	}
	if ch.Title == "Shadow" {
		t.Fatalf("expected first chapter to win")
	}
}

func TestStoreReturnsCopies(t *testing.T) {
	store := NewStore(Default())

	ch, _ := store.GetChapterByID("chapter-1")
	ch.Tools[0] = "mutated"
	pkg, _ := store.Package("Core")
	pkg.IncludedChapterIDs[0] = "mutated"
	cfg := store.Config()
	cfg.Chapters[0].ID = "mutated"

	again, _ := store.GetChapterByID("chapter-1")
	if again.Tools[0] == "mutated" {
		t.Fatalf("chapter tools leaked a reference")
	}
	if got := chapterIDs(store.GetPackageChapters("Core")); got[0] != "chapter-1" {
		t.Fatalf("package ids leaked a reference: %v", got)
	}
	if _, ok := store.GetChapterByID("chapter-1"); !ok {
		t.Fatalf("config copy leaked a reference")
	}
}

func TestStoreChecksumTracksContent(t *testing.T) {
	a := NewStore(Default())
	b := NewStore(Default())
	if a.Checksum() != b.Checksum() {
		t.Fatalf("expected equal checksums for equal catalogs")
	}

	cfg := Default()
	cfg.Brand.CompanyName = "Other"
	if NewStore(cfg).Checksum() == a.Checksum() {
		t.Fatalf("expected checksum to change with content")
	}
}

func TestStoreSliderLookup(t *testing.T) {
	sl, ok := DefaultStore().Slider("avgHourlyCost")
	if !ok {
		t.Fatalf("expected avgHourlyCost slider")
	}
	if sl.Min != 20 || sl.Max != 200 || sl.Default != 65 {
		t.Fatalf("unexpected slider: %+v", sl)
	}
	if _, ok := DefaultStore().Slider("missing"); ok {
		t.Fatalf("expected missing slider to be absent")
	}
}
