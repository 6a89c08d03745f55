// Package validation implements the payload validation pipeline: a declarative
// rule list evaluated by a small interpreter.
//
// Every inbound payload is an untrusted map of JSON-decoded values. A shape
// (registration, login, todo, profile, post) is described as an ordered
// []Rule; [Validate] runs the rules and produces a [Result] with field-level
// errors and the sanitized values of every field that passed.
//
// Validators are pure: they never touch external state and never panic on
// malformed input. Wrong-typed values are hard failures, not coercion
// candidates — the string "true" is not a boolean.
package validation

import "strings"

// Mode controls whether validation stops at the first failing rule or
// accumulates every failure.
type Mode int

const (
	// CollectAll runs every rule regardless of earlier failures. The result
	// contains one error per failing field, in rule declaration order, and
	// the sanitized values of all fields that passed.
	CollectAll Mode = iota

	// AbortEarly stops at the first failing rule. The result contains exactly
	// one error; Value holds whatever fields passed before the failure.
	AbortEarly
)

// FieldError is a single field-level rejection with a human-readable message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the outcome of validating one payload against one shape.
//
// Invariant: Value contains only fields whose full check chain passed, after
// any normalization (trimming, lower-casing, date parsing). Errors is
// non-empty iff validation failed.
type Result struct {
	Errors []FieldError
	Value  map[string]any
}

// Valid reports whether the payload passed every applicable rule.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// FirstMessage returns the message of the first error, or "" when valid.
// Used when rendering abort-early failures.
func (r Result) FirstMessage() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}

// JoinedMessages returns every error message joined with "; ", in rule
// declaration order. Used when rendering collect-all failures.
func (r Result) JoinedMessages() string {
	if len(r.Errors) == 0 {
		return ""
	}
	messages := make([]string, 0, len(r.Errors))
	for _, fieldError := range r.Errors {
		messages = append(messages, fieldError.Message)
	}
	return strings.Join(messages, "; ")
}

// Check is one step of a field's check chain. It inspects the current value
// and either passes it through (possibly normalized) or rejects it; Message
// is the rejection text attributed to the field.
//
// Checks run in the declared order: presence, type, length/range, format,
// enumerated membership. A passing check's returned value feeds the next
// check and, when the whole chain passes, ends up in Result.Value.
type Check struct {
	Apply   func(value any, payload map[string]any) (any, bool)
	Message string
}

// Rule binds a payload field to its ordered check chain.
//
// Optional rules are skipped when the field is absent from the payload (or
// null). Required rules run on the missing value so that the leading presence
// check produces the field's "cannot be empty" message.
type Rule struct {
	Field    string
	Optional bool
	Checks   []Check
}

// Validate runs the rules over payload in declaration order and returns the
// collected errors together with the sanitized values of the passing fields.
//
// Fields without a rule are dropped, never passed through: the rule set is an
// allow-list that strips unexpected payload keys before they can reach
// persistence.
func Validate(payload map[string]any, rules []Rule, mode Mode) Result {
	result := Result{Value: make(map[string]any, len(rules))}

	for _, rule := range rules {
		raw, present := payload[rule.Field]
		if (!present || raw == nil) && rule.Optional {
			continue
		}

		value := raw
		rejected := false
		for _, check := range rule.Checks {
			next, ok := check.Apply(value, payload)
			if !ok {
				result.Errors = append(result.Errors, FieldError{Field: rule.Field, Message: check.Message})
				rejected = true
				break
			}
			value = next
		}

		if rejected {
			if mode == AbortEarly {
				return result
			}
			continue
		}

		result.Value[rule.Field] = value
	}

	return result
}
