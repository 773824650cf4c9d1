package journey

import (
	"strings"

	"journey-backend/internal/shared/util"
)

const assetURLPrefix = "/assets/"

// Config is the full authored journey: brand, viewer, chapters, ROI and packages.
type Config struct {
	Brand    Brand     `json:"brand" yaml:"brand"`
	Viewer   Viewer    `json:"viewer" yaml:"viewer"`
	Chapters []Chapter `json:"chapters" yaml:"chapters"`
	ROI      ROI       `json:"roi" yaml:"roi"`
	Packages []Package `json:"packages" yaml:"packages"`
}

// Brand holds company identity shown across the journey.
type Brand struct {
	CompanyName string      `json:"companyName" yaml:"companyName"`
	LogoURL     string      `json:"logoUrl" yaml:"logoUrl"`
	ColorScheme ColorScheme `json:"colorScheme" yaml:"colorScheme"`
}

// ColorScheme maps named color tokens to hex values.
type ColorScheme struct {
	Parchment string `json:"parchment" yaml:"parchment"`
	Ink       string `json:"ink" yaml:"ink"`
	Gold      string `json:"gold" yaml:"gold"`
}

// Viewer holds personalization tokens the front-end substitutes.
type Viewer struct {
	FirstNamePlaceholder string `json:"firstNamePlaceholder" yaml:"firstNamePlaceholder"`
}

// Chapter is one automation offering in the journey.
type Chapter struct {
	ID              string      `json:"id" yaml:"id"`
	Title           string      `json:"title" yaml:"title"`
	SummaryOneLiner string      `json:"summaryOneLiner" yaml:"summaryOneLiner"`
	Diagram         Diagram     `json:"diagram" yaml:"diagram"`
	HoverInfo       []string    `json:"hoverInfo" yaml:"hoverInfo"`
	Tools           []string    `json:"tools" yaml:"tools"`
	Pricing         Pricing     `json:"pricing" yaml:"pricing"`
	Savings         Savings     `json:"savings" yaml:"savings"`
	MapPosition     MapPosition `json:"mapPosition" yaml:"mapPosition"`
}

type Diagram struct {
	Type string `json:"type" yaml:"type"`
	Src  string `json:"src" yaml:"src"`
}

// AssetKey maps the public diagram URL to its object store key.
func (d Diagram) AssetKey() (string, error) {
	return util.CleanKey(strings.TrimPrefix(strings.TrimSpace(d.Src), assetURLPrefix))
}

type Pricing struct {
	CostUSD   int `json:"costUSD" yaml:"costUSD"`
	ImplHours int `json:"implHours" yaml:"implHours"`
}

type Savings struct {
	HoursPerWeek   int `json:"hoursPerWeek" yaml:"hoursPerWeek"`
	DollarsPerYear int `json:"dollarsPerYear" yaml:"dollarsPerYear"`
}

// MapPosition is a percentage position on the journey map.
type MapPosition struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// ROI holds the calculator assumptions and slider definitions.
type ROI struct {
	Assumptions Assumptions `json:"assumptions" yaml:"assumptions"`
	Sliders     []Slider    `json:"sliders" yaml:"sliders"`
}

type Assumptions struct {
	WorkWeeksPerYear  string `json:"workWeeksPerYear" yaml:"workWeeksPerYear"`
	HourlyCalculation string `json:"hourlyCalculation" yaml:"hourlyCalculation"`
	AdoptionRamp      string `json:"adoptionRamp" yaml:"adoptionRamp"`
	MaintenanceCost   string `json:"maintenanceCost" yaml:"maintenanceCost"`
}

// Slider is one ROI input. Min <= Default <= Max and Step > 0.
type Slider struct {
	ID      string  `json:"id" yaml:"id"`
	Label   string  `json:"label" yaml:"label"`
	Min     float64 `json:"min" yaml:"min"`
	Max     float64 `json:"max" yaml:"max"`
	Step    float64 `json:"step" yaml:"step"`
	Default float64 `json:"default" yaml:"default"`
}

// Package is a bundle of chapters sold at a combined price.
type Package struct {
	Tier               string   `json:"tier" yaml:"tier"`
	IncludedChapterIDs []string `json:"includedChapterIds" yaml:"includedChapterIds"`
	PriceUSD           int      `json:"priceUSD" yaml:"priceUSD"`
	Description        string   `json:"description" yaml:"description"`
	Features           []string `json:"features" yaml:"features"`
}
