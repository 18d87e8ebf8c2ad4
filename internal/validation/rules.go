// Package validation provides custom validation rules for the application.
package validation

import (
	"net/url"
	"slices"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/secure/internal/errors"
)

// SupportedKMSSchemes lists the keeper URL schemes the KMS service opens.
var SupportedKMSSchemes = []string{"base64key", "hashivault"}

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// KMSKeyURI validates a keeper URL such as "hashivault://mykey" or
// "base64key://<key>". Empty strings pass; combine with Required when needed.
var KMSKeyURI = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_kms_key_uri_type", "must be a string")
	}
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return validation.NewError("validation_kms_key_uri", "must be a valid keeper URL")
	}
	if !slices.Contains(SupportedKMSSchemes, u.Scheme) {
		return validation.NewError(
			"validation_kms_key_uri_scheme",
			"scheme must be one of: "+strings.Join(SupportedKMSSchemes, ", "),
		)
	}
	return nil
})
