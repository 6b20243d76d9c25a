package myerrors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type publicError struct {
	details any
}

func (e publicError) Error() string        { return "upstream said no" }
func (e publicError) GetHTTPErrorCode() int { return 500 }
func (e publicError) ErrorTitle() string    { return "Upstream failed" }
func (e publicError) ErrorMessage() string  { return "try again later" }
func (e publicError) ErrorDetails() any     { return e.details }

func TestErrors(t *testing.T) {
	myErr := fmt.Errorf("my error")

	testCases := []struct {
		name       string
		in         error
		httpStatus int
		errorText  string
	}{
		{
			name:       "No http error",
			in:         myErr,
			httpStatus: 500,
			errorText:  "my error",
		},
		{
			name:       "Invalid input error",
			in:         NewInvalidInputError(myErr),
			httpStatus: 400,
			errorText:  "status: 400, err: my error",
		},
		{
			name:       "Invalid input errorf",
			in:         NewInvalidInputErrorf("%s: %d", myErr.Error(), 123),
			httpStatus: 400,
			errorText:  "status: 400, err: my error: 123",
		},
		{
			name:       "Not found error",
			in:         NewNotFoundError(myErr),
			httpStatus: 404,
			errorText:  "status: 404, err: my error",
		},
		{
			name:       "UnsupportedMedia error",
			in:         NewUnsupportedMediaTypeError(myErr),
			httpStatus: 415,
			errorText:  "status: 415, err: my error",
		},
		{
			name:       "Internal error",
			in:         NewInternalError(myErr),
			httpStatus: 500,
			errorText:  "status: 500, err: my error",
		},
		{
			name:       "Bad gateway error",
			in:         NewBadGatewayError(myErr),
			httpStatus: 502,
			errorText:  "status: 502, err: my error",
		},
		{
			name:       "Not available error",
			in:         NewUnavailableError(myErr),
			httpStatus: 503,
			errorText:  "status: 503, err: my error",
		},
		{
			name:       "Wrapped http error",
			in:         fmt.Errorf("while relaying: %w", NewInvalidInputError(myErr)),
			httpStatus: 400,
			errorText:  "while relaying: status: 400, err: my error",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.httpStatus, GetHTTPStatus(tc.in))
			assert.Equal(t, tc.errorText, tc.in.Error())
		})
	}
}

func TestPublicViews(t *testing.T) {
	t.Run("Plain error renders as server error", func(t *testing.T) {
		err := fmt.Errorf("dial tcp: timeout")
		assert.Equal(t, "Server error", GetTitle(err))
		assert.Equal(t, "", GetMessage(err))
		assert.Equal(t, "dial tcp: timeout", GetDetails(err))
	})

	t.Run("Public error offers its own views", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", publicError{details: map[string]string{"name": "X"}})
		assert.Equal(t, "Upstream failed", GetTitle(err))
		assert.Equal(t, "try again later", GetMessage(err))
		assert.Equal(t, map[string]string{"name": "X"}, GetDetails(err))
		assert.Equal(t, 500, GetHTTPStatus(err))
	})

	t.Run("Nil error", func(t *testing.T) {
		assert.Nil(t, GetDetails(nil))
		assert.Equal(t, 500, GetHTTPStatus(nil))
	})
}
