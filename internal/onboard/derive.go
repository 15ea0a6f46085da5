package onboard

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// MaxDisplayItems caps the keyword and competitor chips on the summary.
	MaxDisplayItems = 6

	// IndustryPlaceholder is shown when no industry was selected.
	IndustryPlaceholder = "—"

	// DefaultLanguage is shown when no language was selected.
	DefaultLanguage = "English"
)

var numericSuffix = regexp.MustCompile(`-\d+$`)

// Summary is the display-ready view of Inputs.
type Summary struct {
	Industry string `json:"industry"`
	Category string `json:"category,omitempty"` // empty means no category chip

	Language string `json:"language"`
	Location string `json:"location,omitempty"` // empty means no location chip

	Keywords     []string `json:"keywords"` // at most MaxDisplayItems
	KeywordTotal int      `json:"keywordTotal"`

	Competitors     []string `json:"competitors"` // at most MaxDisplayItems, suffixes stripped
	CompetitorTotal int      `json:"competitorTotal"`
}

// Derive maps Inputs onto display values. It never fails: anything missing
// falls back to a placeholder or an empty list.
func Derive(in Inputs) Summary {
	s := Summary{
		Industry: IndustryPlaceholder,
		Language: DefaultLanguage,
	}

	if in.Business != nil {
		if in.Business.Industry != "" {
			s.Industry = in.Business.Industry
		}
		s.Category = in.Business.Category
	}

	sel := FirstSelection(in.LanguageLocation)
	if sel.Language != "" {
		s.Language = sel.Language
	}
	s.Location = sel.Location

	s.KeywordTotal = len(in.Keywords)
	s.Keywords = truncate(in.Keywords, MaxDisplayItems)

	competitors, verbatim := resolveCompetitorEntries(in.Competitors)
	s.CompetitorTotal = len(competitors)
	for i, c := range truncate(competitors, MaxDisplayItems) {
		if i < len(verbatim) && verbatim[i] {
			s.Competitors = append(s.Competitors, c)
			continue
		}
		s.Competitors = append(s.Competitors, StripNumericSuffix(c))
	}

	return s
}

// FirstSelection returns the first language selection, or English with no
// location when there is none.
func FirstSelection(data *LanguageLocationData) LanguageSelection {
	if data == nil || len(data.Selections) == 0 {
		return LanguageSelection{Language: DefaultLanguage}
	}
	return data.Selections[0]
}

// ResolveCompetitors prefers the user's picks and falls back to the full
// offered list. The returned slice aliases the input.
func ResolveCompetitors(data *CompetitorData) []string {
	names, _ := resolveCompetitorEntries(data)
	return names
}

// resolveCompetitorEntries is ResolveCompetitors plus the verbatim flags of
// the chosen list.
func resolveCompetitorEntries(data *CompetitorData) ([]string, []bool) {
	if data == nil {
		return nil, nil
	}
	if len(data.BusinessCompetitors) > 0 {
		return data.BusinessCompetitors, data.BusinessVerbatim
	}
	return data.TotalCompetitors, data.TotalVerbatim
}

// StripNumericSuffix removes a trailing hyphen-and-digits suffix, so
// "Acme-123" becomes "Acme". "Acme-12b" is left alone.
func StripNumericSuffix(s string) string {
	return numericSuffix.ReplaceAllString(s, "")
}

// truncate returns a copy of at most n leading items, so callers can never
// mutate the upstream slice through the display list.
func truncate(items []string, n int) []string {
	if len(items) == 0 {
		return nil
	}
	if len(items) > n {
		items = items[:n]
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}

// HasCategory reports whether a category chip should be shown.
func (s Summary) HasCategory() bool { return s.Category != "" }

// HasLocation reports whether a location chip should be shown.
func (s Summary) HasLocation() bool { return s.Location != "" }

// Text renders the summary as plain text.
func (s Summary) Text() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Business:    %s", s.Industry)
	if s.HasCategory() {
		fmt.Fprintf(&b, " (%s)", s.Category)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Language:    %s", s.Language)
	if s.HasLocation() {
		fmt.Fprintf(&b, " (%s)", s.Location)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Keywords:    %s\n", joinOrNone(s.Keywords, "none"))
	fmt.Fprintf(&b, "Competitors: %s\n", joinOrNone(s.Competitors, "No competitors selected"))

	return b.String()
}

// Markdown renders the summary as a markdown report.
func (s Summary) Markdown() string {
	var b strings.Builder

	b.WriteString("# Great! You're all done.\n\n")
	b.WriteString("Here is your **entire report** based on your input.\n\n")

	b.WriteString("## Business Selected\n\n")
	fmt.Fprintf(&b, "%s\n\n", s.Industry)
	if s.HasCategory() {
		fmt.Fprintf(&b, "- `%s`\n\n", s.Category)
	}

	b.WriteString("## Language Selected\n\n")
	fmt.Fprintf(&b, "%s\n\n", s.Language)
	if s.HasLocation() {
		fmt.Fprintf(&b, "- `%s`\n\n", s.Location)
	}

	b.WriteString("## Keyword Selected\n\n")
	for _, k := range s.Keywords {
		fmt.Fprintf(&b, "- `%s`\n", k)
	}
	b.WriteString("\n")

	b.WriteString("## Competitors Selected\n\n")
	fmt.Fprintf(&b, "%s\n\n", s.Industry)
	if len(s.Competitors) == 0 {
		b.WriteString("_No competitors selected_\n")
	}
	for _, c := range s.Competitors {
		fmt.Fprintf(&b, "- `%s`\n", c)
	}

	return b.String()
}

func joinOrNone(items []string, none string) string {
	if len(items) == 0 {
		return none
	}
	return strings.Join(items, ", ")
}
