// Package onboard provides the data model, display derivation and
// transition logic behind the onboarding wizard's summary screen.
package onboard

// BusinessData holds the business selection made in an earlier step.
type BusinessData struct {
	Industry string `yaml:"industry,omitempty" json:"industry,omitempty" toml:"industry,omitempty"`
	Category string `yaml:"category,omitempty" json:"category,omitempty" toml:"category,omitempty"`
}

// LanguageSelection is one language/location pair picked by the user.
type LanguageSelection struct {
	Language string `yaml:"language" json:"language" toml:"language"`
	Location string `yaml:"location,omitempty" json:"location,omitempty" toml:"location,omitempty"`
}

// LanguageLocationData holds every language/location pair. Only the first
// one is shown on the summary screen.
type LanguageLocationData struct {
	Selections []LanguageSelection `yaml:"selections,omitempty" json:"selections,omitempty" toml:"selections,omitempty"`
}

// CompetitorData holds the competitors the user picked (BusinessCompetitors)
// and the full list that was offered (TotalCompetitors).
type CompetitorData struct {
	BusinessCompetitors []string `yaml:"businessCompetitors,omitempty" json:"businessCompetitors,omitempty" toml:"businessCompetitors,omitempty"`
	TotalCompetitors    []string `yaml:"totalCompetitors,omitempty" json:"totalCompetitors,omitempty" toml:"totalCompetitors,omitempty"`

	// BusinessVerbatim and TotalVerbatim mark, by index, entries decoded
	// from non-string scalars. Those are displayed without suffix stripping.
	// Nil means every entry was a string.
	BusinessVerbatim []bool `yaml:"-" json:"-" toml:"-"`
	TotalVerbatim    []bool `yaml:"-" json:"-" toml:"-"`
}

// Inputs is everything the earlier wizard steps hand to the summary screen.
// Any field may be missing; a nil pointer or slice means absent.
type Inputs struct {
	Business         *BusinessData         `yaml:"businessData,omitempty" json:"businessData,omitempty" toml:"businessData,omitempty"`
	LanguageLocation *LanguageLocationData `yaml:"languageLocationData,omitempty" json:"languageLocationData,omitempty" toml:"languageLocationData,omitempty"`
	Keywords         []string              `yaml:"keywordData,omitempty" json:"keywordData,omitempty" toml:"keywordData,omitempty"`
	Competitors      *CompetitorData       `yaml:"competitorData,omitempty" json:"competitorData,omitempty" toml:"competitorData,omitempty"`

	// Website is carried through untouched. The summary does not show it.
	Website map[string]any `yaml:"websiteData,omitempty" json:"websiteData,omitempty" toml:"websiteData,omitempty"`
}

// Session document keys, shared by every session file format.
const (
	KeyBusiness         = "businessData"
	KeyLanguageLocation = "languageLocationData"
	KeyKeywords         = "keywordData"
	KeyCompetitors      = "competitorData"
	KeyWebsite          = "websiteData"
)
