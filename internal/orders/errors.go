// Package orders validates and submits orders. The backend call is
// simulated: random latency plus randomly injected failures behind a
// seedable source, retried with linear backoff.
package orders

// Stable error codes. The validation codes are deterministic and never
// retried; the rest are transient.
const (
	CodeEmptyOrder          = "EMPTY_ORDER"
	CodeMissingName         = "MISSING_NAME"
	CodeMissingPhone        = "MISSING_PHONE"
	CodeMissingAddress      = "MISSING_ADDRESS"
	CodeMissingDeliveryTime = "MISSING_DELIVERY_TIME"
	CodeInvalidTotal        = "INVALID_TOTAL"

	CodeNetworkError       = "NETWORK_ERROR"
	CodeServerError        = "SERVER_ERROR"
	CodeValidationError    = "VALIDATION_ERROR"
	CodeTimeout            = "TIMEOUT"
	CodeMaxRetriesExceeded = "MAX_RETRIES_EXCEEDED"
)

var validationCodes = map[string]bool{
	CodeEmptyOrder:          true,
	CodeMissingName:         true,
	CodeMissingPhone:        true,
	CodeMissingAddress:      true,
	CodeMissingDeliveryTime: true,
	CodeInvalidTotal:        true,
}

// SubmissionError is a submission failure with a stable machine code, a
// localized message and optional details.
type SubmissionError struct {
	Code    string
	Message string
	Details map[string]interface{}
}

func (e *SubmissionError) Error() string {
	return e.Message
}

// IsValidationCode reports whether a code belongs to the local,
// non-retryable validation class.
func IsValidationCode(code string) bool {
	return validationCodes[code]
}

// AsSubmissionError unwraps err into a *SubmissionError, or nil.
func AsSubmissionError(err error) *SubmissionError {
	if se, ok := err.(*SubmissionError); ok {
		return se
	}
	return nil
}
