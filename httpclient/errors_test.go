package httpclient

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifyStatusCode(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorCode
		isNil  bool
	}{
		{200, 0, true},
		{201, 0, true},
		{299, 0, true},
		{400, ErrCodeValidation, false},
		{401, ErrCodeAuth, false},
		{403, ErrCodeAuth, false},
		{404, ErrCodeNotFound, false},
		{422, ErrCodeValidation, false},
		{429, ErrCodeRateLimit, false},
		{500, ErrCodeServer, false},
		{503, ErrCodeServer, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status_%d", tt.status), func(t *testing.T) {
			err := ClassifyStatusCode(tt.status, []byte("body"))
			if tt.isNil {
				if err != nil {
					t.Fatalf("expected nil for %d, got %v", tt.status, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error for %d", tt.status)
			}
			if err.Code != tt.want {
				t.Errorf("code = %v, want %v", err.Code, tt.want)
			}
			if err.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", err.StatusCode, tt.status)
			}
			if string(err.Body) != "body" {
				t.Errorf("body = %q, want preserved", err.Body)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := NewConnectionError(inner)
	if !errors.Is(err, inner) {
		t.Error("expected errors.Is to reach the wrapped error")
	}
}

func TestErrorPredicates(t *testing.T) {
	if !IsTimeout(NewTimeoutError(errors.New("t"))) {
		t.Error("IsTimeout")
	}
	if !IsCanceled(NewCanceledError(errors.New("c"))) {
		t.Error("IsCanceled")
	}
	if !IsConnection(NewConnectionError(errors.New("c"))) {
		t.Error("IsConnection")
	}
	if !IsAuth(ClassifyStatusCode(401, nil)) {
		t.Error("IsAuth")
	}
	if !IsRateLimit(ClassifyStatusCode(429, nil)) {
		t.Error("IsRateLimit")
	}
	if !IsServerError(ClassifyStatusCode(500, nil)) {
		t.Error("IsServerError")
	}
	if IsTimeout(errors.New("plain")) {
		t.Error("plain error must not classify")
	}
}

func TestErrorCode_String(t *testing.T) {
	codes := map[ErrorCode]string{
		ErrCodeTimeout:    "timeout",
		ErrCodeCanceled:   "canceled",
		ErrCodeConnection: "connection",
		ErrCodeAuth:       "auth",
		ErrCodeNotFound:   "not_found",
		ErrCodeRateLimit:  "rate_limit",
		ErrCodeValidation: "validation",
		ErrCodeServer:     "server",
	}
	for code, want := range codes {
		if got := code.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", code, got, want)
		}
	}
}
