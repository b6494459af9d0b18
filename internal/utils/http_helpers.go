package utils

import (
	"net/url"
	"strings"
)

// IsURL reports whether str is an absolute http, https or ftp URL with a host.
func IsURL(str string) bool {
	if strings.ContainsAny(str, " \t\r\n") {
		return false
	}
	u, err := url.Parse(str)
	if err != nil || u.Host == "" {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https", "ftp":
		return true
	default:
		return false
	}
}
