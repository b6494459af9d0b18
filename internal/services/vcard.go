package services

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"

	"contacts-api/internal/models"
)

var vcardEscaper = strings.NewReplacer(`\`, `\\`, ",", `\,`, ";", `\;`, "\n", `\n`)

// VCard renders c as a vCard 3.0 document.
func VCard(c *models.Contact) string {
	var b strings.Builder
	line := func(format string, args ...interface{}) {
		fmt.Fprintf(&b, format+"\r\n", args...)
	}

	name := vcardEscaper.Replace(c.Name)
	line("BEGIN:VCARD")
	line("VERSION:3.0")
	line("FN:%s", name)
	line("N:%s;;;;", name)
	if c.Phone != nil {
		line("TEL;TYPE=CELL:%s", vcardEscaper.Replace(*c.Phone))
	}
	if c.Email != nil {
		line("EMAIL;TYPE=INTERNET:%s", vcardEscaper.Replace(*c.Email))
	}
	if c.Address != nil {
		line("ADR;TYPE=HOME:;;%s;;;;", vcardEscaper.Replace(*c.Address))
	}
	if c.Avatar != nil && strings.HasPrefix(*c.Avatar, "http") {
		line("PHOTO;VALUE=URI:%s", *c.Avatar)
	}
	line("END:VCARD")
	return b.String()
}

func encodeQRCode(content string, size int) ([]byte, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("error encoding QR code: %w", err)
	}
	return png, nil
}
