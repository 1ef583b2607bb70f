// Package gate decides whether a free-text student question is in scope
// for the AI tutor. It is a substring classifier over curated phrase
// lists — deliberately cheap and offline, tuned to prefer false accepts
// over blocking a legitimate but oddly-phrased question.
package gate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/vidya/internal/curriculum"
)

// Context scopes validation to what the student actually studies.
type Context struct {
	Grade   string
	Board   string
	Subject string
}

// Reason classifies why an input was rejected.
type Reason string

const (
	ReasonTooShort Reason = "too_short"
	ReasonOffTopic Reason = "off_topic"
)

// Result is the gate's decision. Rejection is a business outcome, not an
// error: RejectionMessage is ready to show the student.
type Result struct {
	Valid            bool
	Reason           Reason
	RejectionMessage string
}

// Validate runs the ordered rule chain: length check, off-topic scan with
// academic-intent override, then the allow-list. Inputs that trip neither
// list are accepted — permissive by default.
func Validate(text string, ctx Context) Result {
	lower := strings.ToLower(strings.TrimSpace(text))

	if len(lower) < 3 {
		return Result{
			Valid:            false,
			Reason:           ReasonTooShort,
			RejectionMessage: "Please type a complete question so I can help you better!",
		}
	}

	// Hard rejection on off-topic phrases, unless the question also
	// carries clear academic intent.
	if hit := firstMatch(lower, offTopicKeywords); hit != "" {
		if !anyMatch(lower, academicKeywords) {
			return Result{
				Valid:            false,
				Reason:           ReasonOffTopic,
				RejectionMessage: rejectionMessage(hit),
			}
		}
	}

	allowed := allowedKeywords(ctx)
	if anyMatch(lower, allowed) {
		return Result{Valid: true}
	}

	// Nothing matched either way. The off-topic filter is the real
	// gatekeeper; an obscure but unforbidden question passes.
	return Result{Valid: true}
}

// IsGreeting reports whether the message is a casual opener that should
// be answered with a canned greeting instead of a tutor call.
func IsGreeting(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	if len(lower) <= 2 {
		return true
	}
	for _, g := range greetings {
		if lower == g {
			return true
		}
	}
	return false
}

// allowedKeywords builds the accept-list for the student's context: the
// general academic lexicon plus the keyword lists of every subject their
// (board, grade) studies. Without context, every known subject list is
// allowed.
func allowedKeywords(ctx Context) []string {
	allowed := make([]string, 0, len(academicKeywords))
	allowed = append(allowed, academicKeywords...)

	var subjects []string
	if ctx.Board != "" && ctx.Grade != "" {
		if grade, err := strconv.Atoi(ctx.Grade); err == nil {
			subjects = curriculum.Subjects(curriculum.ResolveBoard(ctx.Board), grade)
		}
	}

	if subjects == nil {
		return append(allowed, curriculum.AllKeywords()...)
	}

	for _, sub := range subjects {
		base := curriculum.ResolveAlias(sub)
		if list, ok := curriculum.SubjectKeywords[base]; ok {
			allowed = append(allowed, list...)
		} else {
			// Subjects without a keyword list still match by name.
			allowed = append(allowed, strings.ToLower(sub))
		}
	}
	return allowed
}

func firstMatch(lower string, keywords []string) string {
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return k
		}
	}
	return ""
}

func anyMatch(lower string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(lower, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

// rejectionMessage builds the friendly refusal for an off-topic match.
func rejectionMessage(keyword string) string {
	category, ok := offTopicCategories[keyword]
	if !ok {
		category = "non-academic topics"
	}

	return fmt.Sprintf(`Oops! That's outside my tutor lane.

I'm your study buddy, here to help with:
  - Math problems & formulas
  - Science concepts & experiments
  - Language & grammar doubts
  - History, Geography & more!

I can't help with %s, but I'd love to help with your studies.
What would you like to learn today?`, category)
}
