package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const fullLetter = `12th March 2024

EH reference number
3
Euler N°: 1234567890

Dear Sir or Madam,
We would like to receive information about the company below:
ACME-123: HRB 55012
Acme Trading GmbH
12 Rue de Rivoli
Paris
France
Telephone : (033) 1 234 5678
Please include the shareholder structure.
Also the latest balance sheet.
Yours faithfully,
Jane Doe
`

func TestExtract_FullLetter(t *testing.T) {
	f := Extract(fullLetter)

	assert.Equal(t, "3", f.SpeedToken)
	assert.Equal(t, "1234567890", f.EulerNumber)
	assert.Equal(t, "", f.EHReference)
	assert.Equal(t, "(033) 1 234 5678", f.Telephone)
	assert.Equal(t, "Acme Trading GmbH", f.CompanyName)
	assert.Equal(t, "ACME-123: HRB 55012\nAcme Trading GmbH\n12 Rue de Rivoli\nParis\nFrance", f.Address)
	assert.Equal(t, "12th March 2024", f.RawDate)
	assert.Equal(t, "HRB 55012", f.RegistrationNumber)
	assert.Equal(t, "Please include the shareholder structure.\nAlso the latest balance sheet.", f.Report)
}

func TestExtract_SpeedTokenIsVerbatim(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"numeric", "EH reference number\n10\n", "10"},
		{"keyword", "EH reference number\n  Express  \n", "Express"},
		{"free text", "header\nEH reference number\nplease hurry, revision\nmore", "please hurry, revision"},
		{"blank lines skipped", "EH reference number\n\n\n5\n", "5"},
		{"marker on last line", "intro\nEH reference number", ""},
		{"no marker", "nothing here", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.text).SpeedToken)
		})
	}
}

func TestExtract_EHReference(t *testing.T) {
	f := Extract("EH reference number : 9876543210\nExpress\n")
	assert.Equal(t, "9876543210", f.EHReference)
	assert.Equal(t, "Express", f.SpeedToken)
}

func TestTelephone(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"plain", []string{"Telephone : 01 23 4567"}, "01 23 4567"},
		{"first match wins", []string{"Telephone : 111", "Telephone : 222"}, "111"},
		{"no validation", []string{"Telephone : call reception"}, "call reception"},
		{"splits on first colon", []string{"Fax: 1 Telephone : 2"}, "1 Telephone : 2"},
		{"needs spaced marker", []string{"Telephone: 5551234"}, ""},
		{"absent", []string{"no phone"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Telephone(tt.lines))
		})
	}
}

func TestValidTelephone(t *testing.T) {
	assert.True(t, ValidTelephone("Telephone : (033) 1 234 5678"))
	assert.False(t, ValidTelephone("Telephone : 01 23 4567"))
}

func TestExtract_CompanyName(t *testing.T) {
	text := "We would like to receive information about the company below:\nREG: 1\nGlobex Ltd\n"
	assert.Equal(t, "Globex Ltd", Extract(text).CompanyName)

	short := "We would like to receive information about the company below:\nonly one line"
	assert.Equal(t, "", Extract(short).CompanyName)
}

func TestAddress(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			"stops at telephone",
			"We would like to receive information about the company below:\n Acme Ltd\nFrance\nTelephone : 1",
			"Acme Ltd\nFrance",
		},
		{
			"runs to end without telephone",
			"We would like to receive information about the company below:\nAcme Ltd\nGermany\n",
			"Acme Ltd\nGermany",
		},
		{
			"marker requires colon",
			"We would like to receive information about the company below\nAcme Ltd",
			"",
		},
		{"no marker", "Telephone : 1", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Address(tt.text))
		})
	}
}

func TestReport(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		telephone string
		address   string
		want      string
	}{
		{
			"between telephone and closing",
			"Telephone : 555 1234\nNeed credit limit.\nYOURS FAITHFULLY\nBob",
			"555 1234", "",
			"Need credit limit.",
		},
		{
			"to end without closing",
			"Telephone : 555 1234\nNeed credit limit.\n",
			"555 1234", "",
			"Need credit limit.",
		},
		{
			"closing only before telephone",
			"Yours faithfully\nTelephone : 555 1234\nlate text",
			"555 1234", "",
			"",
		},
		{
			"address fallback",
			"below:\nAcme Ltd\nTurkey\nUrgent please.\nYours faithfully",
			"", "Acme Ltd\nTurkey",
			"Urgent please.",
		},
		{"nothing to anchor on", "Some text\nYours faithfully", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Report(tt.text, tt.telephone, tt.address))
		})
	}
}

func TestExtract_DateIsPermissive(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Dated 3rd January 2024, London", "3rd January 2024"},
		{"on 1 March 2023", "1 March 2023"},
		{"meeting 15 June", "15 June"},
		{"ref 7", "7"},
		{"Euler N°: 1234567890", ""},
		{"no digits", ""},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.text).RawDate)
		})
	}
}

func TestExtract_EmptyText(t *testing.T) {
	assert.Equal(t, Fields{}, Extract(""))
}
