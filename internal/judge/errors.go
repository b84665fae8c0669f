package judge

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the fatal pipeline failures. Both abort the attempt
// with no partial verdict and no retry.
var (
	// ErrModelTransport wraps network failures and timeouts contacting the
	// model service.
	ErrModelTransport = errors.New("model transport failed")

	// ErrMalformedModelOutput means the response body did not parse as the
	// expected JSON object.
	ErrMalformedModelOutput = errors.New("malformed model output")
)

// SchemaValidationError reports every contract violation found in a verdict.
// The pipeline gets exactly one repair attempt against it; a second failure
// is fatal.
type SchemaValidationError struct {
	Fields []string
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("verdict failed schema validation (%d violations): %s",
		len(e.Fields), strings.Join(e.Fields, "; "))
}
