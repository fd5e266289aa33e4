package nlp

// Intent labels. IntentGeneral doubles as the degenerate default when no
// bucket matches at all.
const (
	IntentAdmissions   = "admissions"
	IntentExams        = "exams"
	IntentTimetable    = "timetable"
	IntentHostel       = "hostel"
	IntentScholarships = "scholarships"
	IntentFacilities   = "facilities"
	IntentGeneral      = "general"
	IntentGreeting     = "greeting"
)

// intentKeywordWeight scales the raw keyword-coverage score. The value is an
// empirically tuned weight carried over unchanged; it cancels out in the
// confidence normalization but keeps raw scores comparable for logging.
const intentKeywordWeight = 10.0

// intentBucket is one intent label with its trigger keywords. Declaration
// order is the tie-break order.
type intentBucket struct {
	label    string
	keywords []string
}

var intentBuckets = []intentBucket{
	{IntentAdmissions, []string{
		"admission", "admissions", "apply", "application", "enroll",
		"registration", "join", "intake", "eligibility", "entrance",
		"cutoff", "merit", "counseling", "form",
	}},
	{IntentExams, []string{
		"exam", "examination", "test", "assessment", "paper",
		"datesheet", "result", "marks", "grade", "semester",
		"internal", "external", "midterm", "final", "backlog",
		"revaluation", "supplementary",
	}},
	{IntentTimetable, []string{
		"timetable", "schedule", "class", "lecture", "period",
		"routine", "slot", "calendar",
	}},
	{IntentHostel, []string{
		"hostel", "accommodation", "room", "mess", "dormitory",
		"stay", "residence", "boarding", "warden", "curfew",
	}},
	{IntentScholarships, []string{
		"scholarship", "financial", "aid", "merit", "concession",
		"waiver", "bursary", "grant", "stipend", "freeships",
	}},
	{IntentFacilities, []string{
		"library", "book", "sports", "gym", "ground", "fitness",
		"placement", "job", "recruit", "career", "bus", "transport",
		"shuttle", "wifi", "internet", "canteen", "food", "cafeteria",
		"lab", "computer", "pool", "swimming",
	}},
	{IntentGeneral, []string{
		"timings", "timing", "hours", "contact", "phone", "email",
		"address", "office", "ragging", "bully", "harassment",
		"principal", "dean", "faculty", "department", "fees",
		"tuition", "payment", "cost",
	}},
}

// ClassifyIntent scores each intent bucket by weighted keyword overlap with
// the normalized query tokens and returns the winning label.
//
// The confidence is the winner's share of the summed bucket scores - a
// relative-dominance measure, not a calibrated probability. A query matching
// a single bucket therefore scores 1.0 no matter how weak the match;
// callers thresholding on it should keep that in mind.
func ClassifyIntent(query string) (string, float64) {
	tokens := TokenSet(query)

	scores := make([]float64, len(intentBuckets))
	var total, best float64
	bestIdx := -1
	for i, bucket := range intentBuckets {
		matched := 0
		for _, kw := range bucket.keywords {
			if _, ok := tokens[kw]; ok {
				matched++
			}
		}
		score := float64(matched) / float64(len(bucket.keywords)) * intentKeywordWeight
		scores[i] = score
		total += score
		if score > best {
			best = score
			bestIdx = i
		}
	}

	if bestIdx < 0 || best == 0 {
		return IntentGeneral, 0.0
	}
	return intentBuckets[bestIdx].label, best / total
}
