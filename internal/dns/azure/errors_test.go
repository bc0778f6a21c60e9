package azure

import (
	"errors"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"

	"azdns/internal/dns"
)

func TestClassifyResponseErrors(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		sentinel   error
	}{
		{"unauthorized", 401, dns.ErrAuthFailed},
		{"forbidden", 403, dns.ErrForbidden},
		{"not found", 404, dns.ErrZoneNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := &azcore.ResponseError{StatusCode: tt.statusCode, ErrorCode: "SomeCode"}
			got := classify(orig)
			if !errors.Is(got, tt.sentinel) {
				t.Errorf("classify(%d) does not match %v: %v", tt.statusCode, tt.sentinel, got)
			}
			var respErr *azcore.ResponseError
			if !errors.As(got, &respErr) {
				t.Error("classified error lost the original response error")
			}
		})
	}
}

func TestClassifyPassthrough(t *testing.T) {
	if classify(nil) != nil {
		t.Error("classify(nil) must be nil")
	}

	serverErr := &azcore.ResponseError{StatusCode: 500, ErrorCode: "InternalServerError"}
	if got := classify(serverErr); got != serverErr {
		t.Errorf("500 should pass through unchanged, got %v", got)
	}

	plain := errors.New("dial tcp: connection refused")
	if got := classify(plain); got != plain {
		t.Errorf("plain error should pass through unchanged, got %v", got)
	}
}

func TestShortError(t *testing.T) {
	respErr := &azcore.ResponseError{StatusCode: 404, ErrorCode: "ResourceGroupNotFound"}
	if got := ShortError(respErr); got != "404 Not Found (ResourceGroupNotFound)" {
		t.Errorf("ShortError() = %q", got)
	}

	wrapped := classify(&azcore.ResponseError{StatusCode: 403, ErrorCode: "AuthorizationFailed"})
	if got := ShortError(wrapped); got != "403 Forbidden (AuthorizationFailed)" {
		t.Errorf("ShortError() on wrapped error = %q", got)
	}

	plain := errors.New("dial tcp: connection refused")
	if got := ShortError(plain); got != plain.Error() {
		t.Errorf("ShortError() = %q; want the plain message", got)
	}
}
