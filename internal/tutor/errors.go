package tutor

import (
	"errors"

	"github.com/abhisek/vidya/internal/llm"
)

// Category buckets tutor failures into the few cases the chat UI tells
// the student about.
type Category string

const (
	CategoryRateLimited    Category = "rate-limited"
	CategoryQuotaExhausted Category = "quota-exhausted"
	CategoryGeneric        Category = "generic"
)

// Classify maps a provider error to its user-facing category.
func Classify(err error) Category {
	var rl *llm.ErrRateLimit
	if errors.As(err, &rl) {
		return CategoryRateLimited
	}
	var quota *llm.ErrQuotaExhausted
	if errors.As(err, &quota) {
		return CategoryQuotaExhausted
	}
	return CategoryGeneric
}

// FriendlyMessage returns the short apologetic message shown in chat for
// a failed doubt. The student can retry by simply resending.
func FriendlyMessage(err error) string {
	switch Classify(err) {
	case CategoryRateLimited:
		return "I'm getting a lot of questions right now! Please try again in a moment. 🙏"
	case CategoryQuotaExhausted:
		return "I've used up my thinking power for now. Please try again later. 😴"
	default:
		return "Oops, something went wrong on my end. Please ask me again! 🙈"
	}
}
