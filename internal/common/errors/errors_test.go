// internal/common/errors/errors_test.go
package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardError_Error(t *testing.T) {
	err := NewRequestFailedError(502)
	assert.Equal(t, "StandardError[REQUEST_FAILED]: CoWIN API rejected the request", err.Error())
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *StandardError
		wantCode   ErrorCode
		wantStatus int
	}{
		{
			name:     "fetch error carries transport details",
			err:      NewFetchError(fmt.Errorf("dial tcp: connection refused")),
			wantCode: ErrCodeFetchFailed,
		},
		{
			name:       "request failed carries the status",
			err:        NewRequestFailedError(500),
			wantCode:   ErrCodeRequestFailed,
			wantStatus: 500,
		},
		{
			name:     "decode error carries the cause",
			err:      NewDecodeError(fmt.Errorf("unexpected end of JSON input")),
			wantCode: ErrCodeDecodeFailed,
		},
		{
			name:     "shape error shares the decode code",
			err:      NewResponseShapeError("centers: Invalid type"),
			wantCode: ErrCodeDecodeFailed,
		},
		{
			name:     "notify error carries the channel",
			err:      NewNotifyError("#alerts", fmt.Errorf("connection reset")),
			wantCode: ErrCodeNotifyFailed,
		},
		{
			name:       "notify rejection carries channel and status",
			err:        NewNotifyRejectedError("#alerts", 404),
			wantCode:   ErrCodeNotifyFailed,
			wantStatus: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantStatus, tt.err.StatusCode)
			assert.NotEmpty(t, tt.err.Message)
			assert.NotEmpty(t, tt.err.Details)
			assert.False(t, tt.err.Timestamp.IsZero())
		})
	}
}

func TestNotifyError_ChannelMetadata(t *testing.T) {
	err := NewNotifyError("#cowin-alerts", fmt.Errorf("eof"))
	assert.Equal(t, "#cowin-alerts", err.Metadata["channel"])

	rejected := NewNotifyRejectedError("#cowin-debug", 410)
	assert.Equal(t, "#cowin-debug", rejected.Metadata["channel"])
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrCodeFetchFailed, CodeOf(NewFetchError(fmt.Errorf("boom"))))
	assert.Equal(t, ErrorCode(""), CodeOf(fmt.Errorf("plain error")))
	assert.Equal(t, ErrorCode(""), CodeOf(nil))
}

func TestIsCode(t *testing.T) {
	err := NewRequestFailedError(403)
	assert.True(t, IsCode(err, ErrCodeRequestFailed))
	assert.False(t, IsCode(err, ErrCodeFetchFailed))
	assert.False(t, IsCode(fmt.Errorf("plain"), ErrCodeRequestFailed))
}

func TestNormalize(t *testing.T) {
	t.Run("passes through a StandardError", func(t *testing.T) {
		orig := NewDecodeError(fmt.Errorf("bad json"))
		assert.Same(t, orig, Normalize(orig))
	})

	t.Run("wraps a plain error as internal", func(t *testing.T) {
		stdErr := Normalize(fmt.Errorf("something unexpected"))
		assert.Equal(t, ErrCodeInternal, stdErr.Code)
		assert.Equal(t, "something unexpected", stdErr.Details)
	})
}
