package dialog

import (
	"fmt"
	"strings"

	"github.com/edudesk/faqbot/internal/models"
)

// Confidence thresholds for the response tiers. These values are tuned
// against the shipped corpus; changing them changes user-visible behavior
// at the tier boundaries.
const (
	// HighConfidence is the floor for answering directly.
	HighConfidence = 0.35
	// LowConfidence is the floor for offering "did you mean" suggestions.
	LowConfidence = 0.15
	// suggestionKeepFloor filters which ranked candidates survive into the
	// suggestion list.
	suggestionKeepFloor = LowConfidence * 0.5
	// clarificationFloor separates a rephrase prompt from a human handover.
	clarificationFloor = LowConfidence * 0.3
)

// advisor is the human helpdesk contact handed out when the bot gives up.
var advisor = struct {
	Email  string
	Phone  string
	Office string
	Hours  string
}{
	Email:  "helpdesk@institute.edu.in",
	Phone:  "+91-22-12345678 (Ext. 100)",
	Office: "Student Help Desk, Ground Floor, Admin Block",
	Hours:  "Mon–Sat, 9:30 AM – 4:30 PM",
}

// greetings maps whole-message greetings (lowercased, trailing punctuation
// stripped) to canned replies. A greeting bypasses scoring entirely.
var greetings = map[string]string{
	"hi":             "Hello! 👋 Welcome to the Institute FAQ Bot. How can I help you today?",
	"hello":          "Hi there! 👋 I'm your institute FAQ assistant. What would you like to know?",
	"hey":            "Hey! 👋 I'm here to answer your questions about the institute. Ask away!",
	"good morning":   "Good morning! ☀️ How can I assist you today?",
	"good afternoon": "Good afternoon! How can I help you?",
	"good evening":   "Good evening! What can I help you with?",
	"thanks":         "You're welcome! 😊 Feel free to ask anything else.",
	"thank you":      "Happy to help! 😊 Is there anything else you'd like to know?",
	"bye":            "Goodbye! 👋 Have a great day! Feel free to come back anytime.",
	"goodbye":        "See you later! 👋 Don't hesitate to ask if you have more questions.",
}

// greetingReply returns the canned reply for a whole-message greeting, or
// "" when the message is not one.
func greetingReply(message string) string {
	key := strings.TrimRight(strings.ToLower(strings.TrimSpace(message)), "!.,?")
	return greetings[key]
}

// response is the tagged variant for the four response tiers. Exactly one
// concrete type is produced per non-greeting turn.
type response interface {
	isResponse()
}

type directAnswer struct {
	faq   *models.FaqEntry
	notes []string
}

type suggestionList struct {
	items []models.Suggestion
}

type clarification struct{}

type handover struct{}

func (directAnswer) isResponse()   {}
func (suggestionList) isResponse() {}
func (clarification) isResponse()  {}
func (handover) isResponse()       {}

// selectResponse picks a tier from the winning score, the vector-ranked
// candidate list, and the resolved entities. The ladder degrades from a
// direct answer through suggestions and a clarification prompt down to a
// human handover; every rung is a designed outcome, not an error.
func selectResponse(winner *models.FaqEntry, score float64, ranked []models.ScoredFaq, entities models.EntitySet) response {
	if winner != nil && score >= HighConfidence {
		return directAnswer{faq: winner, notes: entityNotes(entities)}
	}

	if score >= LowConfidence {
		var items []models.Suggestion
		for _, r := range ranked {
			if len(items) == 3 {
				break
			}
			if r.Score >= suggestionKeepFloor {
				items = append(items, models.Suggestion{
					Question: r.Faq.Question,
					ID:       r.Faq.ID,
					Score:    round3(r.Score),
				})
			}
		}
		if len(items) > 0 {
			return suggestionList{items: items}
		}
	}

	if score >= clarificationFloor {
		return clarification{}
	}
	return handover{}
}

// entityNotes renders the resolved entities as trailing annotation lines
// for a direct answer.
func entityNotes(entities models.EntitySet) []string {
	var notes []string
	if entities.Semester != "" {
		notes = append(notes, "📌 Semester: "+entities.Semester)
	}
	if entities.Year != "" {
		notes = append(notes, "📌 Year: "+entities.Year)
	}
	if len(entities.CourseCodes) > 0 {
		notes = append(notes, "📌 Course: "+strings.Join(entities.CourseCodes, ", "))
	}
	if len(entities.Dates) > 0 {
		notes = append(notes, "📌 Date reference: "+strings.Join(entities.Dates, ", "))
	}
	return notes
}

func (d directAnswer) render() string {
	reply := d.faq.Answer
	if len(d.notes) > 0 {
		reply += "\n\n" + strings.Join(d.notes, "\n")
	}
	return reply
}

func (s suggestionList) render() string {
	var b strings.Builder
	b.WriteString("🤔 I'm not entirely sure I understood your question. Did you mean one of these?\n\n")
	for i, item := range s.items {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, item.Question)
	}
	b.WriteString("\nPlease try rephrasing or pick one of the above!")
	return b.String()
}

func (clarification) render() string {
	return "😅 I didn't quite get that. Could you rephrase your question?\n\n" +
		"💡 Tip: Try asking about specific topics like:\n" +
		"  • Admission process\n" +
		"  • Exam schedule\n" +
		"  • Hostel facilities\n" +
		"  • Fee structure\n" +
		"  • Scholarships\n" +
		"  • Placements"
}

func (handover) render() string {
	return "😔 I'm sorry, I couldn't find an answer to your question. " +
		"This might require assistance from our team.\n\n" +
		"📧 Email: " + advisor.Email + "\n" +
		"📞 Phone: " + advisor.Phone + "\n" +
		"🏢 Visit: " + advisor.Office + "\n" +
		"🕐 Hours: " + advisor.Hours + "\n\n" +
		"A human advisor will be happy to help you!"
}
