package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"contacts-api/internal/models"
)

func TestVCard(t *testing.T) {
	card := VCard(&models.Contact{
		ID:      1,
		Name:    "Lee, Ann",
		Email:   strPtr("ann@example.com"),
		Phone:   strPtr("+1 555 0100"),
		Address: strPtr("1 Main St; Apt 2"),
		Avatar:  strPtr("https://cdn.example.com/a.png"),
	})

	assert.Equal(t, "BEGIN:VCARD\r\n"+
		"VERSION:3.0\r\n"+
		"FN:Lee\\, Ann\r\n"+
		"N:Lee\\, Ann;;;;\r\n"+
		"TEL;TYPE=CELL:+1 555 0100\r\n"+
		"EMAIL;TYPE=INTERNET:ann@example.com\r\n"+
		"ADR;TYPE=HOME:;;1 Main St\\; Apt 2;;;;\r\n"+
		"PHOTO;VALUE=URI:https://cdn.example.com/a.png\r\n"+
		"END:VCARD\r\n", card)
}

func TestVCardOmitsMissingFields(t *testing.T) {
	card := VCard(&models.Contact{ID: 2, Name: "Bob", Avatar: strPtr("/public/uploads/b.png")})
	assert.Equal(t, "BEGIN:VCARD\r\nVERSION:3.0\r\nFN:Bob\r\nN:Bob;;;;\r\nEND:VCARD\r\n", card)
}
