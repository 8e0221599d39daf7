package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// Handle pattern - word characters and dots, leading "@" optional on input
	HandlePattern = `^@?[A-Za-z0-9_.]{2,30}$`

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Handle *regexp.Regexp
}{
	Handle: regexp.MustCompile(HandlePattern),
}

// NormalizeHandle returns the canonical form of a user handle: trimmed, with
// exactly one leading "@". The stored case is preserved; lookups compare
// case-insensitively.
func NormalizeHandle(handle string) string {
	h := strings.TrimSpace(handle)
	h = strings.TrimPrefix(h, "@")
	return "@" + h
}

// HandlesEqual reports whether two handles refer to the same user,
// ignoring case and the optional leading "@".
func HandlesEqual(a, b string) bool {
	return strings.EqualFold(NormalizeHandle(a), NormalizeHandle(b))
}

// New returns a validator with the platform's custom rules registered.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("handle", func(fl validator.FieldLevel) bool {
		return CompiledPatterns.Handle.MatchString(fl.Field().String())
	})

	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "student", "tutor", "institute", "professional", "enthusiast":
			return true
		}
		return false
	})

	return v
}
