package validation

import (
	"fmt"
	"strings"
)

// Issue is one problem found in the request input. Field is the dotted path
// of the offending key, "input" for problems with the input as a whole.
type Issue struct {
	Field   string   `json:"field"`
	Message string   `json:"message"`
	Keys    []string `json:"keys,omitempty"`
}

func (i Issue) String() string {
	if len(i.Keys) > 0 {
		return fmt.Sprintf("%s contains invalid keys: %s", i.Field, strings.Join(i.Keys, ", "))
	}
	return i.Field + ": " + i.Message
}

// Error reports every issue found while parsing one request.
type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.String())
	}
	return strings.Join(parts, "; ")
}
