package utils

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsURL(t *testing.T) {
	cases := map[string]bool{
		"https://cdn.example.com/a.png": true,
		"HTTP://example.com":            true,
		"ftp://files.example.com/x":     true,
		"/public/uploads/a.png":         false,
		"example.com/a.png":             false,
		"https://":                      false,
		"javascript:alert(1)":           false,
		"https://example.com/a b.png":   false,
	}
	for in, want := range cases {
		assert.Equal(t, want, IsURL(in), in)
	}
}

func TestIsImageMime(t *testing.T) {
	assert.True(t, IsImageMime("image/png"))
	assert.True(t, IsImageMime(" Image/JPEG; charset=binary"))
	assert.False(t, IsImageMime("text/plain"))
	assert.False(t, IsImageMime(""))
}

func TestGetExtensionFromMime(t *testing.T) {
	assert.Equal(t, "jpg", GetExtensionFromMime("image/jpeg"))
	assert.Equal(t, "png", GetExtensionFromMime("IMAGE/PNG"))
	assert.Equal(t, "bin", GetExtensionFromMime("application/octet-stream"))
}

func TestNullStringRoundTrip(t *testing.T) {
	assert.Equal(t, sql.NullString{}, NullString(""))
	assert.Nil(t, StringPtr(NullString("")))

	p := StringPtr(NullString("ann@example.com"))
	if assert.NotNil(t, p) {
		assert.Equal(t, "ann@example.com", *p)
	}
	assert.Equal(t, 1, BoolToInt(true))
	assert.Equal(t, 0, BoolToInt(false))
}
