package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_CollectAll_AccumulatesInDeclarationOrder(t *testing.T) {
	payload := map[string]any{
		"email":    "not-an-email",
		"username": "ab",
		"password": "short",
	}

	result := Validate(payload, RegisterRules(), CollectAll)

	require.False(t, result.Valid())
	require.Len(t, result.Errors, 3)
	assert.Equal(t, "email", result.Errors[0].Field)
	assert.Equal(t, "Invalid email.", result.Errors[0].Message)
	assert.Equal(t, "username", result.Errors[1].Field)
	assert.Equal(t, "Username must have at least 3 characters.", result.Errors[1].Message)
	assert.Equal(t, "password", result.Errors[2].Field)
	assert.Equal(t, "Password must have at least 8 characters.", result.Errors[2].Message)
}

func TestValidate_AbortEarly_StopsAtFirstFailure(t *testing.T) {
	payload := map[string]any{
		"email":    "not-an-email",
		"username": "ab",
		"password": "short",
	}

	result := Validate(payload, RegisterRules(), AbortEarly)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "email", result.Errors[0].Field)
	assert.Equal(t, "Invalid email.", result.FirstMessage())
}

func TestValidate_DropsFieldsWithoutARule(t *testing.T) {
	payload := map[string]any{
		"email":    "Jane@Example.COM",
		"username": "jane42",
		"password": "Str0ngPass",
		"isAdmin":  true,
		"__proto":  "polluted",
	}

	result := Validate(payload, RegisterRules(), CollectAll)

	require.True(t, result.Valid())
	assert.NotContains(t, result.Value, "isAdmin")
	assert.NotContains(t, result.Value, "__proto")
	assert.Equal(t, "jane@example.com", result.Value["email"])
}

func TestValidate_OptionalFieldSkippedWhenAbsentOrNull(t *testing.T) {
	payload := map[string]any{
		"email":    "jane@example.com",
		"username": "jane42",
		"password": "Str0ngPass",
		"role":     nil,
	}

	result := Validate(payload, RegisterRules(), CollectAll)

	require.True(t, result.Valid())
	assert.NotContains(t, result.Value, "role")
	assert.NotContains(t, result.Value, "isVerified")
}

func TestValidate_CollectAll_KeepsPassingFieldsOnFailure(t *testing.T) {
	payload := map[string]any{
		"email":    "A@B.com",
		"username": "ab",
		"password": "Abc12345",
	}

	result := Validate(payload, RegisterRules(), CollectAll)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "username", result.Errors[0].Field)

	assert.Equal(t, "a@b.com", result.Value["email"])
	assert.Equal(t, "Abc12345", result.Value["password"])
	assert.NotContains(t, result.Value, "username")
}

func TestValidate_AbortEarly_MissingFirstFieldLeavesValueEmpty(t *testing.T) {
	result := Validate(map[string]any{"username": "jane42"}, RegisterRules(), AbortEarly)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "email", result.Errors[0].Field)
	assert.Equal(t, "Email cannot be empty.", result.FirstMessage())
	assert.Empty(t, result.Value)
}

func TestValidate_RequiredFieldMissingProducesPresenceMessage(t *testing.T) {
	result := Validate(map[string]any{}, LoginRules(), CollectAll)

	require.Len(t, result.Errors, 2)
	assert.Equal(t, "Email cannot be empty.", result.Errors[0].Message)
	assert.Equal(t, "Password cannot be empty.", result.Errors[1].Message)
}

func TestValidate_NoTypeCoercion(t *testing.T) {
	payload := map[string]any{
		"email":      "jane@example.com",
		"username":   "jane42",
		"password":   "Str0ngPass",
		"isVerified": "true",
	}

	result := Validate(payload, RegisterRules(), CollectAll)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "isVerified must be a boolean.", result.Errors[0].Message)
}

func TestValidate_SanitizedValueRevalidatesToItself(t *testing.T) {
	payload := map[string]any{
		"title":   "  Write the report  ",
		"status":  "in_progress",
		"dueDate": "2026-09-15",
	}

	first := Validate(payload, TodoRules(), CollectAll)
	require.True(t, first.Valid())
	assert.Equal(t, "Write the report", first.Value["title"])

	dueDate, ok := first.Value["dueDate"].(time.Time)
	require.True(t, ok)
	assert.Equal(t, 2026, dueDate.Year())

	// feeding the sanitized output back through the same shape must be
	// a fixed point
	second := Validate(first.Value, TodoRules(), CollectAll)
	require.True(t, second.Valid())
	assert.Equal(t, first.Value, second.Value)
}

func TestValidate_TodoStatusEnum(t *testing.T) {
	payload := map[string]any{
		"title":  "Walk the dog",
		"status": "done",
	}

	result := Validate(payload, TodoRules(), AbortEarly)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Status must be either pending, in_progress or completed", result.FirstMessage())
}

func TestValidate_PostShape(t *testing.T) {
	payload := map[string]any{
		"title":   "Hello world",
		"content": "long enough content",
		"author":  float64(7), // JSON numbers decode as float64
		"status":  true,
	}

	result := Validate(payload, PostRules(), CollectAll)

	require.True(t, result.Valid())
	assert.Equal(t, int64(7), result.Value["author"])
	assert.Equal(t, true, result.Value["status"])
}

func TestValidate_PostContentTooShort(t *testing.T) {
	payload := map[string]any{
		"title":   "Hello world",
		"content": "too short",
		"author":  float64(7),
	}

	result := Validate(payload, PostRules(), AbortEarly)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Content must be at least 10 characters long", result.FirstMessage())
}

func TestJoinedMessages(t *testing.T) {
	result := Validate(map[string]any{}, LoginRules(), CollectAll)

	assert.Equal(t, "Email cannot be empty.; Password cannot be empty.", result.JoinedMessages())
}
