package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// Student identifier pattern: PREFIX-####-##, e.g. UGR-1234-16
	StudentIDPattern = `^[A-Za-z]{2,4}-\d{4}-\d{2}$`

	// Phone pattern: optional +, 9 to 15 digits
	PhonePattern = `^\+?\d{9,15}$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	StudentID *regexp.Regexp
	Phone     *regexp.Regexp
}{
	StudentID: regexp.MustCompile(StudentIDPattern),
	Phone:     regexp.MustCompile(PhonePattern),
}

// IsValidStudentID reports whether id matches the roster's id format.
func IsValidStudentID(id string) bool {
	return CompiledPatterns.StudentID.MatchString(id)
}

// IsValidPhone reports whether phone looks like a dialable number.
func IsValidPhone(phone string) bool {
	return CompiledPatterns.Phone.MatchString(phone)
}

// RegisterRules installs the custom rules on a validator engine (the one
// behind gin's form binding).
func RegisterRules(v *validator.Validate) error {
	if err := v.RegisterValidation("studentid", func(fl validator.FieldLevel) bool {
		return IsValidStudentID(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	})
}
