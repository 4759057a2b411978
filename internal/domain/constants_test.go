package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPhone(t *testing.T) {
	valid := []string{
		"777123456",
		"777 123 456",
		"+420777123456",
		"+420 777 123 456",
	}
	for _, phone := range valid {
		assert.True(t, IsValidPhone(phone), "expected %q to be valid", phone)
	}

	invalid := []string{
		"",
		"077123456",       // leading zero
		"77712345",        // too short
		"7771234567",      // too long
		"+42 777123456",   // two-digit country code
		"+4200 777123456", // four-digit country code
		"phone",
		"777-123-456",
	}
	for _, phone := range invalid {
		assert.False(t, IsValidPhone(phone), "expected %q to be invalid", phone)
	}
}

func TestIsValidName(t *testing.T) {
	assert.True(t, IsValidName("Court 1"))
	assert.True(t, IsValidName(strings.Repeat("x", MaxNameLength)))

	assert.False(t, IsValidName(""))
	assert.False(t, IsValidName(strings.Repeat("x", MaxNameLength+1)))
}
