package commands

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"journey-backend/internal/journey"
	localstore "journey-backend/internal/shared/storage/object/local"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	catalogPath = ""
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestValidateBuiltinCatalog(t *testing.T) {
	out, err := run(t, "validate")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out, "catalog ok: 5 chapters, 3 packages, 3 sliders") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestValidateRejectsBrokenCatalogFile(t *testing.T) {
	cfg := journey.Default()
	cfg.Packages[1].IncludedChapterIDs = append(cfg.Packages[1].IncludedChapterIDs, "chapter-77")
	path := filepath.Join(t.TempDir(), "catalog.json")
	var buf bytes.Buffer
	if err := journey.Encode(&buf, cfg, journey.FormatJSON); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := run(t, "--catalog", path, "validate")
	if !errors.Is(err, journey.ErrInvalidCatalog) {
		t.Fatalf("expected ErrInvalidCatalog, got %v", err)
	}
}

func TestExportJSONRoundTrips(t *testing.T) {
	out, err := run(t, "export", "--format", "json")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	cfg, err := journey.Decode(strings.NewReader(out), journey.FormatJSON)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if journey.Checksum(cfg) != journey.Checksum(journey.Default()) {
		t.Fatalf("exported catalog differs from built-in")
	}
}

func TestChapterCommand(t *testing.T) {
	out, err := run(t, "chapter", "chapter-3")
	if err != nil {
		t.Fatalf("chapter: %v", err)
	}
	if !strings.Contains(out, `"id": "chapter-3"`) || !strings.Contains(out, `"Growth"`) {
		t.Fatalf("unexpected output: %s", out)
	}
	if strings.Contains(out, `"Core"`) {
		t.Fatalf("chapter-3 is not part of Core: %s", out)
	}

	if _, err := run(t, "chapter", "chapter-99"); !errors.Is(err, journey.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSuggestCommand(t *testing.T) {
	out, err := run(t, "suggest", "chapter-x")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if !strings.Contains(out, "sug-default-1") {
		t.Fatalf("expected fallback suggestions, got %q", out)
	}

	out, err = run(t, "suggest", "--value")
	if err != nil {
		t.Fatalf("suggest --value: %v", err)
	}
	if !strings.Contains(out, "val-3") {
		t.Fatalf("expected value suggestions, got %q", out)
	}
}

func TestUploadDirUsesPrefixedKeys(t *testing.T) {
	src := t.TempDir()
	if err := os.WriteFile(filepath.Join(src, "chapter-1.svg"), []byte("<svg/>"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	dst := t.TempDir()

	uploaded, err := uploadDir(context.Background(), localstore.New(dst), src, "/diagrams/")
	if err != nil {
		t.Fatalf("uploadDir: %v", err)
	}
	if _, ok := uploaded["diagrams/chapter-1.svg"]; !ok {
		t.Fatalf("expected diagrams/chapter-1.svg, got %v", uploaded)
	}
	if _, err := os.Stat(filepath.Join(dst, "diagrams", "chapter-1.svg")); err != nil {
		t.Fatalf("expected file in store: %v", err)
	}
}
