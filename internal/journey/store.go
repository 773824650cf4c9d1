package journey

import "slices"

// Store is an indexed, read-only view over a catalog. It never changes after
// NewStore returns, so it is safe for concurrent readers.
type Store struct {
	cfg      Config
	chapters map[string]int
	packages map[string]int
	sliders  map[string]int
	checksum string
}

// NewStore indexes cfg. The store keeps its own copy of the catalog.
func NewStore(cfg Config) *Store {
	cfg = cloneConfig(cfg)
	s := &Store{
		cfg:      cfg,
		chapters: make(map[string]int, len(cfg.Chapters)),
		packages: make(map[string]int, len(cfg.Packages)),
		sliders:  make(map[string]int, len(cfg.ROI.Sliders)),
	}
	// First occurrence wins, matching a linear find over the list.
	for i, ch := range cfg.Chapters {
		if _, ok := s.chapters[ch.ID]; !ok {
			s.chapters[ch.ID] = i
		}
	}
	for i, pkg := range cfg.Packages {
		if _, ok := s.packages[pkg.Tier]; !ok {
			s.packages[pkg.Tier] = i
		}
	}
	for i, sl := range cfg.ROI.Sliders {
		if _, ok := s.sliders[sl.ID]; !ok {
			s.sliders[sl.ID] = i
		}
	}
	s.checksum = Checksum(cfg)
	return s
}

var defaultStore = NewStore(Default())

// DefaultStore returns the store over the built-in catalog.
func DefaultStore() *Store {
	return defaultStore
}

// GetChapterByID looks up a chapter in the built-in catalog.
func GetChapterByID(id string) (Chapter, bool) {
	return defaultStore.GetChapterByID(id)
}

// GetPackageChapters resolves a package tier in the built-in catalog.
func GetPackageChapters(tier string) []Chapter {
	return defaultStore.GetPackageChapters(tier)
}

// GetChapterByID returns the chapter with the given id. The boolean is false
// when no chapter matches; that is a normal outcome, not an error.
func (s *Store) GetChapterByID(id string) (Chapter, bool) {
	i, ok := s.chapters[id]
	if !ok {
		return Chapter{}, false
	}
	return cloneChapter(s.cfg.Chapters[i]), true
}

// GetPackageChapters returns the chapters included in the tier, in package
// order. Ids that do not resolve are skipped. An unknown tier yields an empty
// slice.
func (s *Store) GetPackageChapters(tier string) []Chapter {
	i, ok := s.packages[tier]
	if !ok {
		return []Chapter{}
	}
	ids := s.cfg.Packages[i].IncludedChapterIDs
	out := make([]Chapter, 0, len(ids))
	for _, id := range ids {
		if ch, ok := s.GetChapterByID(id); ok {
			out = append(out, ch)
		}
	}
	return out
}

// Config returns a copy of the whole catalog.
func (s *Store) Config() Config {
	return cloneConfig(s.cfg)
}

// Checksum returns the checksum of the indexed catalog.
func (s *Store) Checksum() string {
	return s.checksum
}

func (s *Store) Chapters() []Chapter {
	out := make([]Chapter, 0, len(s.cfg.Chapters))
	for _, ch := range s.cfg.Chapters {
		out = append(out, cloneChapter(ch))
	}
	return out
}

func (s *Store) Packages() []Package {
	out := make([]Package, 0, len(s.cfg.Packages))
	for _, pkg := range s.cfg.Packages {
		out = append(out, clonePackage(pkg))
	}
	return out
}

// Package returns the package for tier, if any.
func (s *Store) Package(tier string) (Package, bool) {
	i, ok := s.packages[tier]
	if !ok {
		return Package{}, false
	}
	return clonePackage(s.cfg.Packages[i]), true
}

func (s *Store) Sliders() []Slider {
	return slices.Clone(s.cfg.ROI.Sliders)
}

// Slider returns the ROI slider with the given id, if any.
func (s *Store) Slider(id string) (Slider, bool) {
	i, ok := s.sliders[id]
	if !ok {
		return Slider{}, false
	}
	return s.cfg.ROI.Sliders[i], true
}

func (s *Store) Brand() Brand             { return s.cfg.Brand }
func (s *Store) Viewer() Viewer           { return s.cfg.Viewer }
func (s *Store) Assumptions() Assumptions { return s.cfg.ROI.Assumptions }

func cloneConfig(cfg Config) Config {
	out := cfg
	out.Chapters = make([]Chapter, 0, len(cfg.Chapters))
	for _, ch := range cfg.Chapters {
		out.Chapters = append(out.Chapters, cloneChapter(ch))
	}
	out.Packages = make([]Package, 0, len(cfg.Packages))
	for _, pkg := range cfg.Packages {
		out.Packages = append(out.Packages, clonePackage(pkg))
	}
	out.ROI.Sliders = slices.Clone(cfg.ROI.Sliders)
	return out
}

func cloneChapter(ch Chapter) Chapter {
	ch.HoverInfo = slices.Clone(ch.HoverInfo)
	ch.Tools = slices.Clone(ch.Tools)
	return ch
}

func clonePackage(pkg Package) Package {
	pkg.IncludedChapterIDs = slices.Clone(pkg.IncludedChapterIDs)
	pkg.Features = slices.Clone(pkg.Features)
	return pkg
}
