package azure

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"

	"azdns/internal/dns"
)

// classify wraps provider errors with the dns sentinels handlers key off.
// Errors with no recognizable class pass through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var authErr *azidentity.AuthenticationFailedError
	if errors.As(err, &authErr) {
		return fmt.Errorf("%w: %w", dns.ErrAuthFailed, err)
	}

	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		switch respErr.StatusCode {
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: %w", dns.ErrAuthFailed, err)
		case http.StatusForbidden:
			return fmt.Errorf("%w: %w", dns.ErrForbidden, err)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %w", dns.ErrZoneNotFound, err)
		}
	}
	return err
}

// ShortError renders a compact description of a provider error, preferring
// the ARM status line over the SDK's multi-line response dump.
func ShortError(err error) string {
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		return fmt.Sprintf("%d %s (%s)", respErr.StatusCode, http.StatusText(respErr.StatusCode), respErr.ErrorCode)
	}
	return err.Error()
}
