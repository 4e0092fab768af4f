package validation

import (
	"fmt"
	"net/url"
	"regexp"
)

// RequiredMessage is reported when a required field is missing or empty.
const RequiredMessage = "Value is required"

// Rule pairs a custom predicate with the message reported when it fails.
type Rule struct {
	Check   func(value string) bool
	Message string
}

// Schema describes the checks applied to a single request field.
// A MaxLength of 0 means unlimited.
type Schema struct {
	Required  bool
	MaxLength int
	Custom    []Rule
}

// Validate checks request values against a per-field schema and returns
// whether the request is valid along with a field -> messages error map.
// Fields with no violations are absent from the map.
//
// Once a required field is found missing, the remaining rules for that
// field are skipped; other fields are still checked.
func Validate(request map[string]string, schema map[string]Schema) (bool, map[string][]string) {
	errs := make(map[string][]string)

	for field, rule := range schema {
		value := request[field]

		if rule.Required && value == "" {
			errs[field] = append(errs[field], RequiredMessage)
			continue
		}

		if rule.MaxLength > 0 && len(value) > rule.MaxLength {
			errs[field] = append(errs[field],
				fmt.Sprintf("Value exceeds maximum length %d", rule.MaxLength))
		}

		for _, custom := range rule.Custom {
			if !custom.Check(value) {
				errs[field] = append(errs[field], custom.Message)
			}
		}
	}

	return len(errs) == 0, errs
}

// IsURL reports whether raw parses as an absolute http or https URL with a
// non-empty host.
func IsURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// IsValidUsername reports whether name contains only letters, digits,
// underscores, dots and hyphens.
func IsValidUsername(name string) bool {
	return usernameRe.MatchString(name)
}
