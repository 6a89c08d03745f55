package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

var (
	emailPattern        = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	alphanumericPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// dateLayouts are the formats accepted by the Date check, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
}

// Required rejects absent values, non-strings, and whitespace-only strings.
// It is the leading presence check of every required string field.
func Required(message string) Check {
	return Check{
		Message: message,
		Apply: func(value any, _ map[string]any) (any, bool) {
			s, ok := value.(string)
			if !ok || strings.TrimSpace(s) == "" {
				return nil, false
			}
			return s, true
		},
	}
}

// IsString rejects any non-string value. Used for optional free-text fields
// where presence is not required but the type is.
func IsString(message string) Check {
	return Check{
		Message: message,
		Apply: func(value any, _ map[string]any) (any, bool) {
			s, ok := value.(string)
			return s, ok
		},
	}
}

// IsBool rejects anything but a real boolean. The string "true" is not a
// boolean; no coercion is ever attempted.
func IsBool(message string) Check {
	return Check{
		Message: message,
		Apply: func(value any, _ map[string]any) (any, bool) {
			b, ok := value.(bool)
			return b, ok
		},
	}
}

// Trim normalizes a string value by stripping surrounding whitespace.
// It never rejects; it must run after a presence or type check.
func Trim() Check {
	return Check{
		Apply: func(value any, _ map[string]any) (any, bool) {
			if s, ok := value.(string); ok {
				return strings.TrimSpace(s), true
			}
			return value, true
		},
	}
}

// Lower normalizes a string value to lower case (e-mail canonicalization).
func Lower() Check {
	return Check{
		Apply: func(value any, _ map[string]any) (any, bool) {
			if s, ok := value.(string); ok {
				return strings.ToLower(s), true
			}
			return value, true
		},
	}
}

// MinLen rejects strings shorter than n characters.
func MinLen(n int, message string) Check {
	return Check{
		Message: message,
		Apply: func(value any, _ map[string]any) (any, bool) {
			s, ok := value.(string)
			if !ok || utf8.RuneCountInString(s) < n {
				return value, false
			}
			return s, true
		},
	}
}

// MaxLen rejects strings longer than n characters.
func MaxLen(n int, message string) Check {
	return Check{
		Message: message,
		Apply: func(value any, _ map[string]any) (any, bool) {
			s, ok := value.(string)
			if !ok || utf8.RuneCountInString(s) > n {
				return value, false
			}
			return s, true
		},
	}
}

// Match rejects strings that do not match the pattern.
func Match(pattern *regexp.Regexp, message string) Check {
	return Check{
		Message: message,
		Apply: func(value any, _ map[string]any) (any, bool) {
			s, ok := value.(string)
			if !ok || !pattern.MatchString(s) {
				return value, false
			}
			return s, true
		},
	}
}

// Email rejects strings that do not have an e-mail shape.
func Email(message string) Check {
	return Match(emailPattern, message)
}

// Alphanumeric rejects strings containing anything but letters and digits.
func Alphanumeric(message string) Check {
	return Match(alphanumericPattern, message)
}

// Complexity rejects passwords missing a lowercase letter, an uppercase
// letter, or a digit.
func Complexity(message string) Check {
	return Check{
		Message: message,
		Apply: func(value any, _ map[string]any) (any, bool) {
			s, ok := value.(string)
			if !ok {
				return value, false
			}
			var hasLower, hasUpper, hasDigit bool
			for _, r := range s {
				switch {
				case unicode.IsLower(r):
					hasLower = true
				case unicode.IsUpper(r):
					hasUpper = true
				case unicode.IsDigit(r):
					hasDigit = true
				}
			}
			return s, hasLower && hasUpper && hasDigit
		},
	}
}

// OneOf rejects strings outside the allowed set.
func OneOf(message string, allowed ...string) Check {
	return Check{
		Message: message,
		Apply: func(value any, _ map[string]any) (any, bool) {
			s, ok := value.(string)
			if !ok {
				return value, false
			}
			for _, candidate := range allowed {
				if s == candidate {
					return s, true
				}
			}
			return s, false
		},
	}
}

// Date accepts a string parseable by one of the supported layouts and
// normalizes it to time.Time. An already-parsed time.Time passes through
// unchanged, so re-validating a sanitized value is a no-op.
func Date(message string) Check {
	return Check{
		Message: message,
		Apply: func(value any, _ map[string]any) (any, bool) {
			switch v := value.(type) {
			case time.Time:
				return v, true
			case string:
				for _, layout := range dateLayouts {
					if parsed, err := time.Parse(layout, v); err == nil {
						return parsed, true
					}
				}
				return value, false
			default:
				return value, false
			}
		},
	}
}

// ID accepts a positive integer identifier. JSON numbers arrive as float64;
// whole positive values are normalized to int64. An int64 passes through
// unchanged. Anything else is rejected.
func ID(message string) Check {
	return Check{
		Message: message,
		Apply: func(value any, _ map[string]any) (any, bool) {
			switch v := value.(type) {
			case int64:
				return v, v > 0
			case int:
				return int64(v), v > 0
			case float64:
				id := int64(v)
				if float64(id) != v || id <= 0 {
					return value, false
				}
				return id, true
			default:
				return value, false
			}
		},
	}
}
