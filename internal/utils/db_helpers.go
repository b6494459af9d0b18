package utils

import "database/sql"

func NullString(s string) sql.NullString {
	return sql.NullString{
		String: s,
		Valid:  s != "",
	}
}

// StringPtr returns nil for an invalid NullString.
func StringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
