package session

import (
	"context"

	"github.com/habtamu/memberdesk/internal/app/models"
	"github.com/habtamu/memberdesk/internal/app/models/dto"
	"github.com/habtamu/memberdesk/internal/upstream"
)

// Status is the tri-state authentication state derived from the API.
type Status int

const (
	// StatusUnknown is the initial state before any check has completed.
	StatusUnknown Status = iota
	StatusAuthenticated
	StatusUnauthenticated
)

// Result of one identity check.
type Result struct {
	Status   Status
	Identity *models.Identity
	// Err is set when the check itself failed (transport or server
	// error). The status is still Unauthenticated, since a failed check
	// never grants access, but the message is surfaced to the user.
	Err error
}

// Resolve asks the membership API who the current session belongs to.
// Authenticated requires both success=true and user.isAuthenticated=true;
// every other response shape, including a 200 with success=false, is
// Unauthenticated without being an error. One-shot per guarded
// navigation: authentication is never inferred from console-local state.
func Resolve(ctx context.Context, client *upstream.Client) Result {
	var res dto.CurrentUserResponse
	if err := client.Get(ctx, "/auth/current", &res); err != nil {
		return Result{Status: StatusUnauthenticated, Err: err}
	}

	if res.Success && res.User != nil && res.User.IsAuthenticated {
		return Result{Status: StatusAuthenticated, Identity: res.User.Identity()}
	}

	return Result{Status: StatusUnauthenticated}
}
