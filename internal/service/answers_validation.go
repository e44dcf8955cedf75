package service

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	"github.com/prajwalb/sameeksha/internal/apperror"
	"github.com/prajwalb/sameeksha/internal/model"
)

const (
	minAge = 0
	maxAge = 150
)

var phonePattern = regexp.MustCompile(`^[0-9+\-() ]{7,15}$`)

// validateAnswers checks the minimal known-field subset of the answers
// document. Unknown sections and fields pass through unchecked; the
// questionnaire is schema-flexible by design.
func validateAnswers(answers model.AnswerDocument) error {
	if len(answers) == 0 {
		return apperror.Validation("answers must not be empty", nil)
	}

	fields := map[string]string{}
	for _, section := range answers {
		for key, value := range section {
			switch key {
			case "email":
				if text, ok := value.(string); !ok || validate.Var(text, "required,email") != nil {
					fields["email"] = "must be a valid email address"
				}
			case "age":
				age, ok := numericValue(value)
				if !ok {
					fields["age"] = "must be a number"
				} else if age < minAge || age > maxAge {
					fields["age"] = fmt.Sprintf("must be between %d and %d", minAge, maxAge)
				}
			case "phone":
				if text, ok := value.(string); !ok || !phonePattern.MatchString(text) {
					fields["phone"] = "must be a valid phone number"
				}
			}
		}
	}

	if len(fields) > 0 {
		return apperror.Validation("invalid answers", fields)
	}
	return nil
}

// numericValue accepts the shapes a JSON age can arrive in.
func numericValue(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
