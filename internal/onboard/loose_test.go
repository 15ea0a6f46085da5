package onboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMap_Nil(t *testing.T) {
	in := FromMap(nil)
	assert.Nil(t, in.Business)
	assert.Nil(t, in.LanguageLocation)
	assert.Nil(t, in.Keywords)
	assert.Nil(t, in.Competitors)
}

func TestFromMap_FullDocument(t *testing.T) {
	doc := map[string]any{
		"businessData": map[string]any{"industry": "Retail", "category": "Shoes"},
		"languageLocationData": map[string]any{
			"selections": []any{
				map[string]any{"language": "Spanish", "location": "Madrid"},
			},
		},
		"keywordData": []any{"running", "trail"},
		"competitorData": map[string]any{
			"businessCompetitors": []any{"Acme-1"},
			"totalCompetitors":    []any{"Acme-1", "Globex-2"},
		},
		"websiteData": map[string]any{"url": "https://example.com"},
	}

	in := FromMap(doc)

	require.NotNil(t, in.Business)
	assert.Equal(t, "Retail", in.Business.Industry)
	assert.Equal(t, "Shoes", in.Business.Category)

	require.NotNil(t, in.LanguageLocation)
	require.Len(t, in.LanguageLocation.Selections, 1)
	assert.Equal(t, LanguageSelection{Language: "Spanish", Location: "Madrid"}, in.LanguageLocation.Selections[0])

	assert.Equal(t, []string{"running", "trail"}, in.Keywords)

	require.NotNil(t, in.Competitors)
	assert.Equal(t, []string{"Acme-1"}, in.Competitors.BusinessCompetitors)
	assert.Equal(t, []string{"Acme-1", "Globex-2"}, in.Competitors.TotalCompetitors)

	assert.Equal(t, "https://example.com", in.Website["url"])
}

func TestFromMap_KeywordsNotArrayShaped(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"null", nil},
		{"object", map[string]any{"0": "seo"}},
		{"string", "seo, marketing"},
		{"number", 42.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := FromMap(map[string]any{"keywordData": tc.value})
			assert.Nil(t, in.Keywords)
			assert.Zero(t, Derive(in).KeywordTotal)
			assert.Empty(t, Derive(in).Keywords)
		})
	}
}

func TestFromMap_SequenceElements(t *testing.T) {
	in := FromMap(map[string]any{
		"keywordData": []any{"seo", 7.0, true, nil, map[string]any{"x": 1}, []any{"nested"}, int64(3)},
	})
	assert.Equal(t, []string{"seo", "7", "true", "3"}, in.Keywords)
}

func TestFromMap_EmptyKeywordArrayIsPresent(t *testing.T) {
	in := FromMap(map[string]any{"keywordData": []any{nil}})
	assert.NotNil(t, in.Keywords)
	assert.Empty(t, in.Keywords)
}

func TestFromMap_WrongShapesAreAbsent(t *testing.T) {
	in := FromMap(map[string]any{
		"businessData":         "Retail",
		"languageLocationData": []any{"English"},
		"competitorData":       []any{"Acme"},
	})

	assert.Nil(t, in.Business)
	assert.Nil(t, in.LanguageLocation)
	assert.Nil(t, in.Competitors)

	s := Derive(in)
	assert.Equal(t, IndustryPlaceholder, s.Industry)
	assert.Equal(t, DefaultLanguage, s.Language)
}

func TestFromMap_SelectionsSkipNonObjects(t *testing.T) {
	in := FromMap(map[string]any{
		"languageLocationData": map[string]any{
			"selections": []any{"German", map[string]any{"language": "Italian"}},
		},
	})

	require.NotNil(t, in.LanguageLocation)
	require.Len(t, in.LanguageLocation.Selections, 1)
	assert.Equal(t, "Italian", in.LanguageLocation.Selections[0].Language)
}

func TestFromMap_ArrayOfTables(t *testing.T) {
	in := FromMap(map[string]any{
		"languageLocationData": map[string]any{
			"selections": []map[string]any{
				{"language": "Japanese", "location": "Osaka"},
			},
		},
	})

	assert.Equal(t, "Japanese", Derive(in).Language)
	assert.Equal(t, "Osaka", Derive(in).Location)
}

func TestFromMap_AnyKeyedMaps(t *testing.T) {
	in := FromMap(map[string]any{
		"businessData": map[any]any{"industry": "Travel"},
	})

	require.NotNil(t, in.Business)
	assert.Equal(t, "Travel", in.Business.Industry)
}

func TestFromMap_NonStringCompetitorsShownVerbatim(t *testing.T) {
	in := FromMap(map[string]any{
		"competitorData": map[string]any{
			"businessCompetitors": []any{-5.0, "Acme-1", nil, int64(-12), "Globex-2"},
		},
	})

	require.NotNil(t, in.Competitors)
	assert.Equal(t, []string{"-5", "Acme-1", "-12", "Globex-2"}, in.Competitors.BusinessCompetitors)
	assert.Equal(t, []bool{true, false, true, false}, in.Competitors.BusinessVerbatim)

	assert.Equal(t, []string{"-5", "Acme", "-12", "Globex"}, Derive(in).Competitors)
}

func TestFromMap_StringCompetitorsHaveNoVerbatimFlags(t *testing.T) {
	in := FromMap(map[string]any{
		"competitorData": map[string]any{
			"totalCompetitors": []any{"Acme-1", "Globex-2"},
		},
	})

	require.NotNil(t, in.Competitors)
	assert.Nil(t, in.Competitors.TotalVerbatim)
	assert.Equal(t, []string{"Acme", "Globex"}, Derive(in).Competitors)
}

func TestFromMap_NullsDroppedBeforeTruncation(t *testing.T) {
	in := FromMap(map[string]any{
		"keywordData": []any{"a", nil, "b", "c", "d", "e", "f", "g"},
	})

	s := Derive(in)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, s.Keywords)
	assert.Equal(t, 7, s.KeywordTotal)
}
