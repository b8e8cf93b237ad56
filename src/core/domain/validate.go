package domain

import "unicode/utf8"

// Field validators for form submissions. Each takes a single field value and
// returns a human-readable error message, or "" when the value passes. A nil
// pointer means the field was absent from the form entirely, which is distinct
// from an empty submitted value.

// ValidateJokeName checks the name field of a joke submission.
func ValidateJokeName(name *string) string {
	if name == nil {
		return "That joke's name is required"
	}
	if utf8.RuneCountInString(*name) < 2 {
		return "That joke's name is too short"
	}
	return ""
}

// ValidateJokeContent checks the content field of a joke submission.
func ValidateJokeContent(content *string) string {
	if content == nil {
		return "That joke is required"
	}
	if utf8.RuneCountInString(*content) < 10 {
		return "That joke is too short"
	}
	return ""
}

// ValidateUsername checks a login/register username.
func ValidateUsername(username string) string {
	if utf8.RuneCountInString(username) < 3 {
		return "Usernames must be at least 3 characters long"
	}
	return ""
}

// ValidatePassword checks a login/register password.
func ValidatePassword(password string) string {
	if utf8.RuneCountInString(password) < 6 {
		return "Passwords must be at least 6 characters long"
	}
	return ""
}
