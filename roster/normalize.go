package roster

import "strings"

// NormalizeTag maps free-form gender spellings onto TagMale, TagFemale or
// TagUnknown. Matching is case-insensitive; "女"/"female"/"f" are checked
// before "男"/"male"/"m" because "female" contains "male".
func NormalizeTag(s string) Tag {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.Contains(v, "女"), strings.Contains(v, "female"), v == "f":
		return TagFemale
	case strings.Contains(v, "男"), strings.Contains(v, "male"), v == "m":
		return TagMale
	default:
		return TagUnknown
	}
}
