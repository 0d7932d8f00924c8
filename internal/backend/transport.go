package backend

import (
	"net/http"

	"github.com/revaissue/webclient/internal/credstore"
)

// BearerTransport stamps outgoing requests with the stored credential.
// When a token is present the request is cloned and gains exactly one
// Authorization header; otherwise it is forwarded unchanged. A stale or
// expired token is attached all the same: rejecting it is the remote
// side's call.
type BearerTransport struct {
	Store credstore.Store
	Base  http.RoundTripper
}

// RoundTrip implements http.RoundTripper. The incoming request is never
// mutated, per the RoundTripper contract.
func (t *BearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	token, err := t.Store.Get(req.Context())
	if err != nil || token == "" {
		return base.RoundTrip(req)
	}

	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+token)
	return base.RoundTrip(clone)
}
