package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistrationNumber(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    string
	}{
		{"digit token with colon", "ACME-123: foo\nAcme Corp", "foo"},
		{"plain company name", "Acme Corp\n1 Main Street", ""},
		{"code token without digits", "REG-NO: HRB-KOELN\nGlobex", "HRB-KOELN"},
		{"digits but no colon", "HRB 55012\nGlobex", ""},
		{"colon but plain words", "Company: Globex", "Globex"},
		{"punctuation disqualifies code token", "Acme, Inc.: x", ""},
		{"first colon wins", "No 12: A: B", "A: B"},
		{"empty address", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RegistrationNumber(tt.address))
		})
	}
}

func TestIsCodeToken(t *testing.T) {
	assert.True(t, isCodeToken("A/B"))
	assert.True(t, isCodeToken("Company:"))
	assert.False(t, isCodeToken("Acme"))
	assert.False(t, isCodeToken("12-34"))
	assert.False(t, isCodeToken("Inc."))
}
