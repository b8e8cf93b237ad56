package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestValidateJokeName(t *testing.T) {
	tests := []struct {
		name    string
		value   *string
		wantErr string
	}{
		{"absent", nil, "That joke's name is required"},
		{"empty", strPtr(""), "That joke's name is too short"},
		{"one char", strPtr("a"), "That joke's name is too short"},
		{"two chars", strPtr("ab"), ""},
		{"long", strPtr("the classic"), ""},
		{"two runes multibyte", strPtr("日本"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, ValidateJokeName(tt.value))
		})
	}
}

func TestValidateJokeContent(t *testing.T) {
	tests := []struct {
		name    string
		value   *string
		wantErr string
	}{
		{"absent", nil, "That joke is required"},
		{"empty", strPtr(""), "That joke is too short"},
		{"nine chars", strPtr(strings.Repeat("x", 9)), "That joke is too short"},
		{"ten chars", strPtr(strings.Repeat("x", 10)), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, ValidateJokeContent(tt.value))
		})
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr string
	}{
		{"empty", "", "Usernames must be at least 3 characters long"},
		{"two chars", "ab", "Usernames must be at least 3 characters long"},
		{"three chars", "abc", ""},
		{"longer", "kody", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, ValidateUsername(tt.value))
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr string
	}{
		{"empty", "", "Passwords must be at least 6 characters long"},
		{"five chars", "12345", "Passwords must be at least 6 characters long"},
		{"six chars", "123456", ""},
		{"longer", "twixrox", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, ValidatePassword(tt.value))
		})
	}
}
