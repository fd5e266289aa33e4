package models

// EntitySet holds the structured values extracted from a single query.
// A zero field means the entity was not detected; empty placeholders are
// never stored.
type EntitySet struct {
	Dates       []string `json:"dates,omitempty"`
	CourseCodes []string `json:"course_codes,omitempty"`
	Semester    string   `json:"semester,omitempty"`
	Year        string   `json:"year,omitempty"`
}

// Empty reports whether no entity was detected.
func (e EntitySet) Empty() bool {
	return len(e.Dates) == 0 && len(e.CourseCodes) == 0 && e.Semester == "" && e.Year == ""
}

// Merge returns the union of e and other, with other winning on collisions.
func (e EntitySet) Merge(other EntitySet) EntitySet {
	merged := e
	if len(other.Dates) > 0 {
		merged.Dates = other.Dates
	}
	if len(other.CourseCodes) > 0 {
		merged.CourseCodes = other.CourseCodes
	}
	if other.Semester != "" {
		merged.Semester = other.Semester
	}
	if other.Year != "" {
		merged.Year = other.Year
	}
	return merged
}
