package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// APIError is a non-2xx response decoded into a flat message. Validation
// responses carrying a detail list are flattened into Fields.
type APIError struct {
	Status  int
	Message string
	Fields  []string
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("api error %d: %s (%s)", e.Status, e.Message, strings.Join(e.Fields, "; "))
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// errorPayload accepts the server's flat {"error": "msg"} body and, for
// forward compatibility, a nested {"error": {"message": "msg"}} variant.
type errorPayload struct {
	Error  json.RawMessage `json:"error"`
	Detail any             `json:"detail"`
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil || len(body) == 0 {
		return apiErr
	}

	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return apiErr
	}

	var plain string
	if json.Unmarshal(payload.Error, &plain) == nil && plain != "" {
		apiErr.Message = plain
	} else {
		var nested struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(payload.Error, &nested) == nil && nested.Message != "" {
			apiErr.Message = nested.Message
		}
	}

	apiErr.Fields = flattenDetail(payload.Detail)
	return apiErr
}

// flattenDetail renders a structured validation detail into one string per
// field so callers can show them without caring about the nesting.
func flattenDetail(detail any) []string {
	switch d := detail.(type) {
	case nil:
		return nil
	case string:
		return []string{d}
	case []any:
		result := make([]string, 0, len(d))
		for _, entry := range d {
			result = append(result, flattenDetail(entry)...)
		}
		return result
	case map[string]any:
		field, _ := d["field"].(string)
		msg, _ := d["message"].(string)
		if msg == "" {
			msg, _ = d["msg"].(string)
		}
		if field != "" && msg != "" {
			return []string{field + ": " + msg}
		}
		if msg != "" {
			return []string{msg}
		}
		result := make([]string, 0, len(d))
		for key, value := range d {
			result = append(result, fmt.Sprintf("%s: %v", key, value))
		}
		return result
	default:
		return []string{fmt.Sprintf("%v", d)}
	}
}
