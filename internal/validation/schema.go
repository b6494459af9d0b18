// Package validation parses the merged request input (path parameters, query
// string and body) into typed request models and reports every problem it
// finds at once.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"mime/multipart"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"contacts-api/internal/utils"
)

type Kind int

const (
	String Kind = iota
	Bool
	Int
	Image
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "boolean"
	case Int:
		return "number"
	case Image:
		return "file"
	default:
		return "string"
	}
}

// Input is the merged request input. Values are strings for query and form
// input, decoded JSON values for JSON bodies and *multipart.FileHeader for
// uploads.
type Input map[string]interface{}

// FileReceiver is implemented by request models that accept uploads.
type FileReceiver interface {
	AttachFile(field string, fh *multipart.FileHeader)
}

// Schema lists the keys a request accepts and the kind each one is coerced to.
type Schema struct {
	fields map[string]Kind
}

func NewSchema(fields map[string]Kind) *Schema {
	return &Schema{fields: fields}
}

// Parse coerces in, fills dst and checks its validate tags. Problems with the
// input are returned together as *Error. Any other error means dst could not
// be processed at all.
func (s *Schema) Parse(in Input, dst interface{}) error {
	var (
		issues  []Issue
		unknown []string
		failed  = make(map[string]bool)
		values  = make(map[string]interface{}, len(in))
		files   = make(map[string]*multipart.FileHeader)
	)

	for key, raw := range in {
		kind, ok := s.fields[key]
		if !ok {
			unknown = append(unknown, key)
			continue
		}
		v, present, msg := coerce(kind, raw)
		if msg != "" {
			failed[key] = true
			issues = append(issues, Issue{Field: "input." + key, Message: msg})
			continue
		}
		if !present {
			continue
		}
		if fh, isFile := v.(*multipart.FileHeader); isFile {
			files[key] = fh
			continue
		}
		values[key] = v
	}
	sort.Slice(issues, func(i, j int) bool { return issues[i].Field < issues[j].Field })

	if len(unknown) > 0 {
		sort.Strings(unknown)
		issues = append([]Issue{{
			Field:   "input",
			Message: "Unrecognized keys: " + strings.Join(unknown, ", "),
			Keys:    unknown,
		}}, issues...)
	}

	body, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("validation: encode input: %w", err)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("validation: populate %T: %w", dst, err)
	}
	if receiver, ok := dst.(FileReceiver); ok {
		for field, fh := range files {
			receiver.AttachFile(field, fh)
		}
	}

	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("validation: check %T: %w", dst, err)
		}
		for _, fe := range fieldErrs {
			if failed[fe.Field()] {
				continue
			}
			issues = append(issues, Issue{Field: "input." + fe.Field(), Message: issueMessage(fe)})
		}
	}

	if len(issues) > 0 {
		return &Error{Issues: issues}
	}
	return nil
}

// coerce converts raw to kind. present is false for values treated as
// absent; msg is set when raw cannot be converted.
func coerce(kind Kind, raw interface{}) (v interface{}, present bool, msg string) {
	switch r := raw.(type) {
	case nil:
		return nil, false, ""
	case []string:
		if len(r) == 0 {
			return nil, false, ""
		}
		raw = r[0]
	case []*multipart.FileHeader:
		if len(r) == 0 {
			return nil, false, ""
		}
		raw = r[0]
	}

	switch kind {
	case String:
		if s, ok := raw.(string); ok {
			return s, true, ""
		}
	case Bool:
		switch r := raw.(type) {
		case bool:
			return r, true, ""
		case string:
			switch strings.ToLower(strings.TrimSpace(r)) {
			case "":
				return nil, false, ""
			case "true", "1":
				return true, true, ""
			case "false", "0":
				return false, true, ""
			}
		}
	case Int:
		switch r := raw.(type) {
		case float64:
			if r != math.Trunc(r) {
				return nil, false, "Expected integer, received float"
			}
			return int(r), true, ""
		case string:
			s := strings.TrimSpace(r)
			if s == "" {
				return nil, false, ""
			}
			if n, err := strconv.Atoi(s); err == nil {
				return n, true, ""
			}
			if _, err := strconv.ParseFloat(s, 64); err == nil {
				return nil, false, "Expected integer, received float"
			}
		}
	case Image:
		if fh, ok := raw.(*multipart.FileHeader); ok {
			if !utils.IsImageMime(fh.Header.Get("Content-Type")) {
				return nil, false, "Only image files are allowed"
			}
			return fh, true, ""
		}
	}
	return nil, false, fmt.Sprintf("Expected %s, received %s", kind, typeName(raw))
}

func typeName(v interface{}) string {
	switch v.(type) {
	case string:
		return "string"
	case float64, json.Number:
		return "number"
	case bool:
		return "boolean"
	case map[string]interface{}:
		return "object"
	case []interface{}:
		return "array"
	case *multipart.FileHeader:
		return "file"
	default:
		return fmt.Sprintf("%T", v)
	}
}
