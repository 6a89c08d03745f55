package validation

import "github.com/minhng-dev/taskblog/models"

// Payload shapes. Each function returns the ordered rule list for one request
// body; the messages are part of the API surface and must stay stable.

// RegisterRules validates a registration payload: email, username, password,
// and the optional role and isVerified fields.
func RegisterRules() []Rule {
	return []Rule{
		{
			Field: "email",
			Checks: []Check{
				Required("Email cannot be empty."),
				Lower(),
				Email("Invalid email."),
			},
		},
		{
			Field: "username",
			Checks: []Check{
				Required("Username cannot be empty."),
				MinLen(3, "Username must have at least 3 characters."),
				MaxLen(30, "Username must not exceed 30 characters."),
				Alphanumeric("Username can only contain letters and numbers."),
			},
		},
		{
			Field: "password",
			Checks: []Check{
				Required("Password cannot be empty."),
				MinLen(8, "Password must have at least 8 characters."),
				MaxLen(32, "Password must not exceed 32 characters."),
				Complexity("Password must include at least one lowercase letter, one uppercase letter, and one digit."),
			},
		},
		{
			Field:    "role",
			Optional: true,
			Checks: []Check{
				OneOf("Invalid role.", models.RoleUser, models.RoleAdmin),
			},
		},
		{
			Field:    "isVerified",
			Optional: true,
			Checks: []Check{
				IsBool("isVerified must be a boolean."),
			},
		},
	}
}

// LoginRules validates a login payload: email and password only.
func LoginRules() []Rule {
	return []Rule{
		{
			Field: "email",
			Checks: []Check{
				Required("Email cannot be empty."),
				Lower(),
				Email("Invalid email."),
			},
		},
		{
			Field: "password",
			Checks: []Check{
				Required("Password cannot be empty."),
				MinLen(8, "Password must have at least 8 characters."),
				MaxLen(32, "Password must not exceed 32 characters."),
			},
		},
	}
}

// TodoRules validates a todo create/update payload.
func TodoRules() []Rule {
	return []Rule{
		{
			Field: "title",
			Checks: []Check{
				Required("Title cannot be empty"),
				Trim(),
				MinLen(3, "Title must be at least 3 characters long"),
				MaxLen(255, "Title must not exceed 255 characters"),
			},
		},
		{
			Field:    "description",
			Optional: true,
			Checks: []Check{
				IsString("Description must be a string"),
			},
		},
		{
			Field:    "status",
			Optional: true,
			Checks: []Check{
				OneOf("Status must be either pending, in_progress or completed",
					models.TodoStatusPending, models.TodoStatusInProgress, models.TodoStatusCompleted),
			},
		},
		{
			Field:    "dueDate",
			Optional: true,
			Checks: []Check{
				Date("Due date must be a valid date"),
			},
		},
		{
			Field:    "createdBy",
			Optional: true,
			Checks: []Check{
				Required("Created by cannot be empty"),
				Trim(),
			},
		},
	}
}

// ProfileRules validates a profile update payload (username only).
func ProfileRules() []Rule {
	return []Rule{
		{
			Field: "username",
			Checks: []Check{
				Required("Username cannot be empty."),
				MinLen(3, "Username must have at least 3 characters."),
				MaxLen(30, "Username must not exceed 30 characters."),
				Alphanumeric("Username can only contain letters and numbers."),
			},
		},
	}
}

// PostRules validates a blog post create/update payload.
func PostRules() []Rule {
	return []Rule{
		{
			Field: "title",
			Checks: []Check{
				Required("Title cannot be empty"),
				Trim(),
				MinLen(3, "Title must be at least 3 characters long"),
				MaxLen(255, "Title must not exceed 255 characters"),
			},
		},
		{
			Field: "content",
			Checks: []Check{
				Required("Content cannot be empty"),
				MinLen(10, "Content must be at least 10 characters long"),
			},
		},
		{
			Field: "author",
			Checks: []Check{
				ID("Author cannot be empty"),
			},
		},
		{
			Field:    "status",
			Optional: true,
			Checks: []Check{
				IsBool("Status must be a boolean"),
			},
		},
	}
}
