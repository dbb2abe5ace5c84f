package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/beetlebot/flyguide/internal/core"
)

var Writer io.Writer = os.Stdout

func JSON(v interface{}) error {
	return encode(v, "  ")
}

func JSONCompact(v interface{}) error {
	return encode(v, "")
}

// encode keeps '&' in booking and map URLs readable.
func encode(v interface{}, indent string) error {
	enc := json.NewEncoder(Writer)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	return nil
}

type ErrorResponse struct {
	Error   string         `json:"error"`
	Kind    core.ErrorKind `json:"kind,omitempty"`
	Details string         `json:"details,omitempty"`
	Raw     string         `json:"raw,omitempty"`
}

// NewErrorResponse maps a pipeline or validation error to the envelope
// printed by the CLI and returned by the HTTP server.
func NewErrorResponse(err error) ErrorResponse {
	kind := core.KindOf(err)
	resp := ErrorResponse{
		Error:   errorTitle(kind),
		Kind:    kind,
		Details: err.Error(),
		Raw:     core.RawText(err),
	}
	return resp
}

func errorTitle(kind core.ErrorKind) string {
	switch kind {
	case core.KindMissingCredential:
		return "missing API key"
	case core.KindRateLimited:
		return "daily search limit reached, try again tomorrow"
	case core.KindUnreadable:
		return "could not understand results"
	case core.KindValidation:
		return "invalid search parameters"
	default:
		return "search failed"
	}
}

// Error prints the envelope for err.
func Error(err error) {
	_ = JSON(NewErrorResponse(err))
}
