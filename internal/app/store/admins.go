package store

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/habtamu/memberdesk/internal/app/models"
	"github.com/habtamu/memberdesk/internal/app/models/dto"
	"github.com/habtamu/memberdesk/internal/pkg/apperrors"
)

// AdminStore caches the administrator accounts. Same transition shape as
// the user store, with two extra rules: fetched passwords are scrubbed to
// the empty string before they are cached, and super-admin records refuse
// deletion outright.
type AdminStore struct {
	client Doer
	notify Notifier

	mu        sync.Mutex
	items     []models.Admin
	loading   bool
	err       string
	fetchedAt time.Time
	maxAge    time.Duration
}

// NewAdminStore creates an admin store bound to one session's client.
func NewAdminStore(client Doer, notify Notifier) *AdminStore {
	return &AdminStore{client: client, notify: notify, maxAge: defaultMaxAge}
}

func (s *AdminStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *AdminStore) reject(err error) {
	s.mu.Lock()
	s.loading = false
	s.err = apperrors.MessageOf(err)
	s.mu.Unlock()
}

// Fetch replaces the cached accounts wholesale, scrubbing every password
// so a stored hash can never leak into a rendered form.
func (s *AdminStore) Fetch(ctx context.Context) error {
	s.begin()

	var res dto.AdminListResponse
	if err := s.client.Get(ctx, "/admin", &res); err != nil {
		s.reject(err)
		return err
	}

	if !res.Success {
		msg := res.Message
		if msg == "" {
			msg = "Failed to fetch admins"
		}
		err := apperrors.NewRemoteError(apperrors.ErrRequestFailed, msg)
		s.reject(err)
		return err
	}

	for i := range res.Admins {
		res.Admins[i].Password = ""
	}

	s.mu.Lock()
	s.items = res.Admins
	s.loading = false
	s.fetchedAt = time.Now()
	s.mu.Unlock()
	return nil
}

// EnsureFresh fetches unless the cache is within the freshness window.
func (s *AdminStore) EnsureFresh(ctx context.Context) error {
	s.mu.Lock()
	fresh := !s.fetchedAt.IsZero() && time.Since(s.fetchedAt) < s.maxAge
	s.mu.Unlock()
	if fresh {
		return nil
	}
	return s.Fetch(ctx)
}

// Add registers a new admin. The registration endpoint echoes only a
// success flag, so the fulfilled path refetches the full collection.
func (s *AdminStore) Add(ctx context.Context, req dto.RegisterAdminRequest) error {
	s.begin()

	var res dto.StatusResponse
	if err := s.client.Post(ctx, "/admin/register", req, &res); err != nil {
		s.reject(err)
		notifyFailure(s.notify, apperrors.MessageOf(err))
		return err
	}

	if !res.Success {
		msg := res.Message
		if msg == "" {
			msg = "Failed to add admin"
		}
		err := apperrors.NewRemoteError(apperrors.ErrRequestFailed, msg)
		s.reject(err)
		notifyFailure(s.notify, msg)
		return err
	}

	if err := s.Fetch(ctx); err != nil {
		return err
	}

	notifySuccess(s.notify, "Admin added successfully")
	return nil
}

// Update partial-patches an admin. A nil password in the request means
// "leave unchanged" and the field is omitted from the wire body; the
// echoed record is spliced into the cache with its password scrubbed.
func (s *AdminStore) Update(ctx context.Context, studentID string, req dto.UpdateAdminRequest) error {
	s.begin()

	var res dto.AdminUpdateResponse
	if err := s.client.Put(ctx, "/admin/"+url.PathEscape(studentID), req, &res); err != nil {
		s.reject(err)
		notifyFailure(s.notify, apperrors.MessageOf(err))
		return err
	}

	if !res.Success || res.UpdatedAdmin == nil {
		msg := res.Message
		if msg == "" {
			msg = "Can't edit an admin"
		}
		err := apperrors.NewRemoteError(apperrors.ErrRequestFailed, msg)
		s.reject(err)
		notifyFailure(s.notify, msg)
		return err
	}

	updated := *res.UpdatedAdmin
	updated.Password = ""

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].StudentID == updated.StudentID {
			s.items[i] = updated
			break
		}
	}
	s.loading = false
	s.mu.Unlock()

	notifySuccess(s.notify, "Admin updated successfully")
	return nil
}

// Delete removes an admin account. Super-admin records are refused before
// any request is made; the management screen disables the action as well,
// but the store is the hard stop.
func (s *AdminStore) Delete(ctx context.Context, studentID string) error {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].StudentID == studentID && s.items[i].IsSuperAdmin {
			s.mu.Unlock()
			notifyFailure(s.notify, "Cannot delete a super admin account")
			return apperrors.ErrAdminProtected
		}
	}
	s.mu.Unlock()

	s.begin()

	if err := s.client.Delete(ctx, "/admin/"+url.PathEscape(studentID), nil); err != nil {
		s.reject(err)
		notifyFailure(s.notify, apperrors.MessageOf(err))
		return err
	}

	s.mu.Lock()
	kept := s.items[:0]
	for _, a := range s.items {
		if a.StudentID != studentID {
			kept = append(kept, a)
		}
	}
	s.items = kept
	s.loading = false
	s.mu.Unlock()

	notifySuccess(s.notify, "Admin deleted successfully")
	return nil
}

// Items returns a copy of the cached accounts.
func (s *AdminStore) Items() []models.Admin {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Admin, len(s.items))
	copy(out, s.items)
	return out
}

// Loading reports whether an operation is in flight.
func (s *AdminStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Error returns the stored error message, empty when clear.
func (s *AdminStore) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// ClearError resets the stored error after the user dismisses it.
func (s *AdminStore) ClearError() {
	s.mu.Lock()
	s.err = ""
	s.mu.Unlock()
}

// Filter matches studentid and username, case-insensitively.
func (s *AdminStore) Filter(term string) []models.Admin {
	items := s.Items()
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}

	matched := make([]models.Admin, 0, len(items))
	for _, a := range items {
		joined := strings.ToLower(a.StudentID + " " + a.Username)
		if strings.Contains(joined, term) {
			matched = append(matched, a)
		}
	}
	return matched
}
