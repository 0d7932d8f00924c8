package handlers

import (
	"errors"

	"github.com/revaissue/webclient/internal/backend"
	apperrors "github.com/revaissue/webclient/pkg/util"
)

// mapBackendError converts a tracker API failure into a DomainError.
// Client-side mistakes keep the upstream status; everything else is a
// gateway problem.
func mapBackendError(err error) error {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode >= 500 {
			return apperrors.NewUpstreamError(apiErr)
		}
		return apperrors.NewDomainError("UPSTREAM_REJECTED", apiErr.Body, apiErr.StatusCode, nil)
	}
	return apperrors.NewUpstreamError(err)
}
