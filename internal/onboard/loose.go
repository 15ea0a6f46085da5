package onboard

import (
	"fmt"
	"strconv"
)

// FromMap builds Inputs from a decoded session document. Values of the
// wrong shape are treated as absent; FromMap never fails.
func FromMap(doc map[string]any) Inputs {
	var in Inputs
	if doc == nil {
		return in
	}

	if obj, ok := asObject(doc[KeyBusiness]); ok {
		in.Business = &BusinessData{
			Industry: asString(obj["industry"]),
			Category: asString(obj["category"]),
		}
	}

	if obj, ok := asObject(doc[KeyLanguageLocation]); ok {
		data := &LanguageLocationData{}
		if items, ok := asSequence(obj["selections"]); ok {
			for _, item := range items {
				sel, ok := asObject(item)
				if !ok {
					continue
				}
				data.Selections = append(data.Selections, LanguageSelection{
					Language: asString(sel["language"]),
					Location: asString(sel["location"]),
				})
			}
		}
		in.LanguageLocation = data
	}

	if items, ok := asSequence(doc[KeyKeywords]); ok {
		in.Keywords, _ = asStrings(items)
		if in.Keywords == nil {
			in.Keywords = []string{}
		}
	}

	if obj, ok := asObject(doc[KeyCompetitors]); ok {
		data := &CompetitorData{}
		if items, ok := asSequence(obj["businessCompetitors"]); ok {
			data.BusinessCompetitors, data.BusinessVerbatim = asStrings(items)
		}
		if items, ok := asSequence(obj["totalCompetitors"]); ok {
			data.TotalCompetitors, data.TotalVerbatim = asStrings(items)
		}
		in.Competitors = data
	}

	if obj, ok := asObject(doc[KeyWebsite]); ok {
		in.Website = obj
	}

	return in
}

// asObject accepts the map shapes produced by the JSON, YAML and TOML
// decoders.
func asObject(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	}
	return nil, false
}

// asSequence accepts generic slices and TOML arrays of tables.
func asSequence(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case []map[string]any:
		out := make([]any, len(t))
		for i, m := range t {
			out[i] = m
		}
		return out, true
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out, true
	}
	return nil, false
}

// asStrings keeps scalar entries and drops nulls, objects and sequences.
// verbatim flags the kept entries that were not strings; it is nil when
// all of them were.
func asStrings(items []any) (out []string, verbatim []bool) {
	for _, item := range items {
		s, ok := scalarString(item)
		if !ok {
			continue
		}
		if _, isString := item.(string); !isString {
			if verbatim == nil {
				verbatim = make([]bool, len(out), len(items))
			}
			verbatim = append(verbatim, true)
		} else if verbatim != nil {
			verbatim = append(verbatim, false)
		}
		out = append(out, s)
	}
	return out, verbatim
}

func asString(v any) string {
	s, _ := scalarString(v)
	return s
}

func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case uint64:
		return strconv.FormatUint(t, 10), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	}
	return "", false
}
