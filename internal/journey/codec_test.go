package journey

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncodeDecodeYAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Default(), FormatYAML); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(buf.String(), "includedChapterIds:") {
		t.Fatalf("expected camelCase keys in yaml output")
	}

	got, err := Decode(&buf, FormatYAML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	if _, err := Decode(strings.NewReader(`{"chapters":[],"extra":1}`), FormatJSON); err == nil {
		t.Fatalf("expected unknown json field to fail")
	}
	if _, err := Decode(strings.NewReader("chapters: []\nextra: 1\n"), FormatYAML); err == nil {
		t.Fatalf("expected unknown yaml field to fail")
	}
	if _, err := Decode(strings.NewReader("{}"), "toml"); err == nil {
		t.Fatalf("expected unsupported format to fail")
	}
}

func TestFormatForPath(t *testing.T) {
	cases := map[string]string{
		"catalog.json": FormatJSON,
		"CATALOG.JSON": FormatJSON,
		"catalog.yaml": FormatYAML,
		"catalog.yml":  FormatYAML,
		"catalog":      FormatYAML,
	}
	for path, want := range cases {
		if got := FormatForPath(path); got != want {
			t.Fatalf("FormatForPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestLoadFileValidates(t *testing.T) {
	dir := t.TempDir()

	cfg := Default()
	var good bytes.Buffer
	if err := Encode(&good, cfg, FormatJSON); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	goodPath := filepath.Join(dir, "catalog.json")
	if err := os.WriteFile(goodPath, good.Bytes(), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	loaded, err := LoadFile(goodPath)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if Checksum(loaded) != Checksum(cfg) {
		t.Fatalf("expected loaded catalog to match")
	}

	cfg.Packages[0].IncludedChapterIDs = append(cfg.Packages[0].IncludedChapterIDs, "chapter-99")
	var bad bytes.Buffer
	if err := Encode(&bad, cfg, FormatYAML); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	badPath := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(badPath, bad.Bytes(), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFile(badPath); !errors.Is(err, ErrInvalidCatalog) {
		t.Fatalf("expected ErrInvalidCatalog, got %v", err)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected missing file to fail")
	}
}
