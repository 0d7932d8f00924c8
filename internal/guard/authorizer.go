package guard

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/revaissue/webclient/internal/credstore"
)

// State is the outcome of one navigation check.
type State string

const (
	StateLocalReject  State = "LOCAL_REJECT"
	StateAdmitted     State = "ADMITTED"
	StateRemoteReject State = "REMOTE_REJECT"
)

// Decision carries the authorizer's verdict for one navigation attempt.
type Decision struct {
	State State
}

// Admitted reports whether navigation may proceed.
func (d Decision) Admitted() bool {
	return d.State == StateAdmitted
}

// Prober issues the remote authorization check and reports the status
// code it got. Transport-level failures come back as errors.
type Prober interface {
	Probe(ctx context.Context) (int, error)
}

// Authorizer gates navigation to protected views. It is advisory
// defense-in-depth: the authoritative access-control boundary lives
// server-side.
type Authorizer struct {
	store  credstore.Store
	prober Prober
	logger *zap.Logger
}

// NewAuthorizer builds the authorizer.
func NewAuthorizer(store credstore.Store, prober Prober, logger *zap.Logger) *Authorizer {
	return &Authorizer{store: store, prober: prober, logger: logger}
}

// Authorize decides one navigation attempt. An empty credential store
// rejects locally without any network traffic. Otherwise the remote
// probe runs under the navigation's context, so an abandoned attempt
// cancels its probe and its eventual verdict is discarded with it.
// Only a 204 admits; every other status and any transport failure
// rejects.
func (a *Authorizer) Authorize(ctx context.Context) Decision {
	token, err := a.store.Get(ctx)
	if err != nil || token == "" {
		return Decision{State: StateLocalReject}
	}

	status, err := a.prober.Probe(ctx)
	if err != nil {
		a.logger.Debug("authorization probe failed", zap.Error(err))
		return Decision{State: StateRemoteReject}
	}
	if status != http.StatusNoContent {
		a.logger.Debug("authorization probe denied", zap.Int("status", status))
		return Decision{State: StateRemoteReject}
	}
	return Decision{State: StateAdmitted}
}
