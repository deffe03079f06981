// internal/common/errors/handler.go
package errors

// Handler reports run failures in a uniform shape before the process exits.
type Handler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Report normalizes err to a StandardError and logs it with its code and
// details. It returns the normalized error for the caller to act on.
func (h *Handler) Report(err error) *StandardError {
	stdErr := Normalize(err)

	fields := map[string]interface{}{
		"errorCode": string(stdErr.Code),
		"message":   stdErr.Message,
		"details":   stdErr.Details,
	}
	if stdErr.StatusCode != 0 {
		fields["statusCode"] = stdErr.StatusCode
	}
	for k, v := range stdErr.Metadata {
		fields[k] = v
	}

	h.logger.Error("Run failed", fields)
	return stdErr
}
