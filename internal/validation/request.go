package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// MaxMemory is the part of a multipart body kept in memory, the rest goes to
// temporary files.
const MaxMemory = 10 << 20

var ErrMalformedBody = errors.New("malformed request body")

// FromRequest merges the inputs of r: the query string for GET and DELETE,
// the body for POST, PUT and PATCH, and params (path parameters) always.
// Path parameters win over same-named body or query keys.
func FromRequest(r *http.Request, params map[string]string) (Input, error) {
	in := Input{}
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodDelete:
		for k, vs := range r.URL.Query() {
			if len(vs) > 0 {
				in[k] = vs[0]
			}
		}
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		if err := readBody(r, in); err != nil {
			return nil, err
		}
	}
	for k, v := range params {
		in[k] = v
	}
	return in, nil
}

func readBody(r *http.Request, in Input) error {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil
	}

	switch mediaType {
	case "application/json":
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return bodyError(err)
		}
		for k, v := range body {
			in[k] = v
		}
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return bodyError(err)
		}
		for k, vs := range r.PostForm {
			if len(vs) > 0 {
				in[k] = vs[0]
			}
		}
	case "multipart/form-data":
		if err := r.ParseMultipartForm(MaxMemory); err != nil {
			return bodyError(err)
		}
		for k, vs := range r.MultipartForm.Value {
			if len(vs) > 0 {
				in[k] = vs[0]
			}
		}
		for k, fhs := range r.MultipartForm.File {
			if len(fhs) > 0 {
				in[k] = fhs[0]
			}
		}
	}
	return nil
}

func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrMalformedBody, err)
}
