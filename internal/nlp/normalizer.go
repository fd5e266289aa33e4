// Package nlp implements the query-understanding primitives: text
// normalization, regex entity extraction, and keyword intent classification.
// All functions are pure and never fail on malformed input.
package nlp

import (
	"regexp"
	"strings"
)

// punctRe matches every character that is not a word character, whitespace,
// or hyphen. Hyphens survive so course codes like IT-201 stay intact.
var punctRe = regexp.MustCompile(`[^\w\s-]`)

// stopwords dropped during normalization. Standard English stopwords plus a
// few chatty filler words students use ("please tell me", "i want to know").
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`
		i me my myself we our ours ourselves you your yours yourself yourselves
		he him his himself she her hers herself it its itself they them their
		theirs themselves what which who whom this that these those am is are
		was were be been being have has had having do does did doing a an the
		and but if or because as until while of at by for with about against
		between through during before after above below to from up down in out
		on off over under again further then once here there when where why
		how all both each few more most other some such no nor not only own
		same so than too very s t can will just don should now d ll m o re ve
		y ain aren couldn didn doesn hadn hasn haven isn ma mightn mustn needn
		shan shouldn wasn weren won wouldn
		please tell know want need could would like`) {
		stopwords[w] = struct{}{}
	}
}

// spellingCorrections is the static misspelling -> canonical lookup applied
// per token. It also folds common plurals onto the corpus vocabulary.
var spellingCorrections = map[string]string{
	"addmission":   "admission",
	"admision":     "admission",
	"addmisions":   "admissions",
	"admisons":     "admissions",
	"scholership":  "scholarship",
	"scholarshp":   "scholarship",
	"scholerships": "scholarships",
	"scolarship":   "scholarship",
	"hostle":       "hostel",
	"hostl":        "hostel",
	"libary":       "library",
	"libraray":     "library",
	"libray":       "library",
	"tution":       "tuition",
	"tutoin":       "tuition",
	"exams":        "exam",
	"examinations": "examination",
	"schdeule":     "schedule",
	"schdule":      "schedule",
	"sechdule":     "schedule",
	"timetabel":    "timetable",
	"timtable":     "timetable",
	"placment":     "placement",
	"plcament":     "placement",
	"conact":       "contact",
	"cotact":       "contact",
	"feees":        "fees",
	"fess":         "fees",
	"wify":         "wifi",
	"wi-fi":        "wifi",
	"cantin":       "canteen",
	"cantten":      "canteen",
	"ragin":        "ragging",
	"raggin":       "ragging",
	"spors":        "sports",
	"transprt":     "transport",
	"buss":         "bus",
}

// Normalize runs the full preprocessing pipeline: lowercase, strip
// punctuation (keeping hyphens), tokenize, correct known misspellings, and
// drop stopwords and single-character tokens. Token order is preserved and
// duplicates are kept. Always returns a slice, possibly empty.
func Normalize(text string) []string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = punctRe.ReplaceAllString(text, " ")

	var tokens []string
	for _, tok := range strings.Fields(text) {
		if fixed, ok := spellingCorrections[tok]; ok {
			tok = fixed
		}
		if _, stop := stopwords[tok]; stop || len(tok) < 2 {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// NormalizeString returns the normalized tokens space-joined.
func NormalizeString(text string) string {
	return strings.Join(Normalize(text), " ")
}

// TokenSet returns the normalized tokens of text as a set.
func TokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range Normalize(text) {
		set[tok] = struct{}{}
	}
	return set
}
