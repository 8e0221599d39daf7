package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHandle(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"maya", "@maya"},
		{"@maya", "@maya"},
		{"  @maya  ", "@maya"},
		{"iris.learns", "@iris.learns"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeHandle(tt.input), "input %q", tt.input)
	}
}

func TestHandlesEqual(t *testing.T) {
	tests := []struct {
		a, b  string
		equal bool
	}{
		{"@maya", "maya", true},
		{"@maya", "MAYA", true},
		{"@maya", "@MaYa", true},
		{"@maya", "@maia", false},
		{"@maya", "@maya2", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.equal, HandlesEqual(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
	}
}

func TestHandleValidationRule(t *testing.T) {
	v := New()

	type payload struct {
		Handle string `validate:"required,handle"`
	}

	valid := []string{"@maya", "maya", "iris.learns", "user_42"}
	for _, h := range valid {
		assert.NoError(t, v.Struct(payload{Handle: h}), "handle %q", h)
	}

	invalid := []string{"", "x", "has spaces", "semi;colon", "@way-too-long-handle-far-beyond-thirty-characters"}
	for _, h := range invalid {
		assert.Error(t, v.Struct(payload{Handle: h}), "handle %q", h)
	}
}

func TestRoleValidationRule(t *testing.T) {
	v := New()

	type payload struct {
		Role string `validate:"required,role"`
	}

	for _, role := range []string{"student", "tutor", "institute", "professional", "enthusiast"} {
		assert.NoError(t, v.Struct(payload{Role: role}), "role %q", role)
	}
	for _, role := range []string{"", "admin", "Student"} {
		assert.Error(t, v.Struct(payload{Role: role}), "role %q", role)
	}
}
