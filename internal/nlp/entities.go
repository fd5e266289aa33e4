package nlp

import (
	"regexp"
	"sort"
	"strings"

	"github.com/edudesk/faqbot/internal/models"
)

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
	"jan", "feb", "mar", "apr", "jun", "jul", "aug", "sep", "oct", "nov", "dec",
}

var (
	numericDateRe = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`)
	monthDayRe    = regexp.MustCompile(`\b(` + strings.Join(monthNames, "|") + `)\s+\d{1,2}(?:,?\s+\d{4})?\b`)
	monthYearRe   = regexp.MustCompile(`\b(` + strings.Join(monthNames, "|") + `)\s+\d{4}\b`)

	courseCodeRe   = regexp.MustCompile(`\b[A-Za-z]{2,4}-?\d{2,4}\b`)
	dateFragmentRe = regexp.MustCompile(`^\d{1,2}[/-]\d`)
	pureDigitsRe   = regexp.MustCompile(`^\d+$`)

	semesterRe = regexp.MustCompile(`\bsem(?:ester)?[\s-]*(\d)\b`)
	yearNumRe  = regexp.MustCompile(`\byear\s*(\d)\b`)
)

// ordinalYears maps ordinal words to the year digit they denote. Checked in
// this order; the first pattern that matches wins.
var ordinalYears = []struct{ word, num string }{
	{"first", "1"}, {"second", "2"}, {"third", "3"}, {"fourth", "4"},
	{"fifth", "5"}, {"sixth", "6"}, {"seventh", "7"}, {"eighth", "8"},
	{"1st", "1"}, {"2nd", "2"}, {"3rd", "3"}, {"4th", "4"},
	{"5th", "5"}, {"6th", "6"}, {"7th", "7"}, {"8th", "8"},
}

var ordinalYearRes = buildOrdinalYearRes()

func buildOrdinalYearRes() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(ordinalYears))
	for i, oy := range ordinalYears {
		res[i] = regexp.MustCompile(`\b` + oy.word + `\s*year\b`)
	}
	return res
}

// ExtractEntities pulls dates, course codes, semester and year-of-study
// references out of the raw query text. It runs before stopword stripping so
// slashes and hyphens in dates and course codes are still present. Absent
// entities are simply omitted; extraction never fails.
func ExtractEntities(text string) models.EntitySet {
	var entities models.EntitySet
	lower := strings.ToLower(strings.TrimSpace(text))

	var dates []string
	dates = append(dates, numericDateRe.FindAllString(text, -1)...)
	for _, m := range monthDayRe.FindAllStringSubmatch(lower, -1) {
		dates = append(dates, m[1])
	}
	for _, m := range monthYearRe.FindAllStringSubmatch(lower, -1) {
		dates = append(dates, m[1])
	}
	entities.Dates = dedupe(dates)

	var codes []string
	for _, c := range courseCodeRe.FindAllString(text, -1) {
		if pureDigitsRe.MatchString(c) || dateFragmentRe.MatchString(c) {
			continue
		}
		codes = append(codes, strings.ToUpper(c))
	}
	entities.CourseCodes = dedupe(codes)

	if m := semesterRe.FindStringSubmatch(lower); m != nil {
		entities.Semester = m[1]
	}

	for i, re := range ordinalYearRes {
		if re.MatchString(lower) {
			entities.Year = ordinalYears[i].num
			break
		}
	}
	if entities.Year == "" {
		if m := yearNumRe.FindStringSubmatch(lower); m != nil {
			entities.Year = m[1]
		}
	}

	return entities
}

// dedupe returns the unique values of in, sorted for stable output.
// Returns nil for empty input so absent entities stay absent.
func dedupe(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	var out []string
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
