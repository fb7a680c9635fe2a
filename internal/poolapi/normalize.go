package poolapi

import "strings"

// Rows render whatever the API sends, so every textual cell gets a
// placeholder instead of a blank.
const placeholder = "N/A"

const (
	groupSeparator = " | "
	itemSeparator  = ", "
)

func displayString(s string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

// joinSkillGroups renders categorized skills as "Category: a, b | Other: c".
// Groups with neither a category nor skills are dropped.
func joinSkillGroups(groups []SkillGroup) string {
	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		category := strings.TrimSpace(g.Category)
		skills := joinNonBlank(g.Skills, itemSeparator)

		switch {
		case category != "" && skills != "":
			parts = append(parts, category+": "+skills)
		case category != "":
			parts = append(parts, category)
		case skills != "":
			parts = append(parts, skills)
		}
	}

	return strings.Join(parts, groupSeparator)
}

func joinEducation(entries []Education) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		entry := joinNonBlank([]string{e.Degree, e.FieldOfStudy, e.Institution, e.GraduationYear}, itemSeparator)
		if entry != "" {
			parts = append(parts, entry)
		}
	}

	return strings.Join(parts, groupSeparator)
}

func joinLanguages(entries []Language) string {
	parts := make([]string, 0, len(entries))
	for _, l := range entries {
		entry := joinNonBlank([]string{l.Name, l.Proficiency}, itemSeparator)
		if entry != "" {
			parts = append(parts, entry)
		}
	}

	return strings.Join(parts, groupSeparator)
}

func joinNonBlank(values []string, sep string) string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			kept = append(kept, v)
		}
	}

	return strings.Join(kept, sep)
}
