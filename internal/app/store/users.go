package store

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/habtamu/memberdesk/internal/app/models"
	"github.com/habtamu/memberdesk/internal/app/models/dto"
	"github.com/habtamu/memberdesk/internal/pkg/apperrors"
)

// defaultMaxAge bounds how long a fetched collection is considered fresh.
// EnsureFresh within the window is a no-op, so a screen re-entered in
// quick succession does not stack duplicate requests; anything older
// refetches.
const defaultMaxAge = 15 * time.Second

// UserStore caches the roster collection and mutates it exclusively
// through the membership API. State transitions follow a fixed
// pending/fulfilled/rejected shape: pending sets loading and clears the
// error, fulfilled applies the server's answer, rejected records the
// normalized message.
type UserStore struct {
	client Doer
	notify Notifier

	mu        sync.Mutex
	items     []models.User
	loading   bool
	err       string
	fetchedAt time.Time
	maxAge    time.Duration
}

// Doer is the slice of the upstream client the stores need.
type Doer interface {
	Get(ctx context.Context, path string, out interface{}) error
	Post(ctx context.Context, path string, body, out interface{}) error
	Put(ctx context.Context, path string, body, out interface{}) error
	Delete(ctx context.Context, path string, out interface{}) error
}

// NewUserStore creates a user store bound to one session's client.
func NewUserStore(client Doer, notify Notifier) *UserStore {
	return &UserStore{client: client, notify: notify, maxAge: defaultMaxAge}
}

func (s *UserStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *UserStore) reject(err error) {
	s.mu.Lock()
	s.loading = false
	s.err = apperrors.MessageOf(err)
	s.mu.Unlock()
}

// Fetch replaces the cached collection wholesale. It is the silent
// background operation screens run on entry; no notification either way.
func (s *UserStore) Fetch(ctx context.Context) error {
	s.begin()

	var res dto.UserListResponse
	if err := s.client.Get(ctx, "/user", &res); err != nil {
		s.reject(err)
		return err
	}

	s.mu.Lock()
	s.items = res.Users
	s.loading = false
	s.fetchedAt = time.Now()
	s.mu.Unlock()
	return nil
}

// EnsureFresh fetches unless the cache is younger than the freshness
// window. Screens call it on entry, so rapid navigation does not stack
// duplicate fetches.
func (s *UserStore) EnsureFresh(ctx context.Context) error {
	s.mu.Lock()
	fresh := !s.fetchedAt.IsZero() && time.Since(s.fetchedAt) < s.maxAge
	s.mu.Unlock()
	if fresh {
		return nil
	}
	return s.Fetch(ctx)
}

// Add creates a member. The server echoes the created entity, which is
// appended locally; nothing is added before the server confirms.
func (s *UserStore) Add(ctx context.Context, user models.User) error {
	s.begin()

	var res dto.UserResponse
	if err := s.client.Post(ctx, "/user", user, &res); err != nil {
		s.reject(err)
		notifyFailure(s.notify, apperrors.MessageOf(err))
		return err
	}

	if res.User != nil {
		s.mu.Lock()
		s.items = append(s.items, *res.User)
		s.loading = false
		s.mu.Unlock()
	} else {
		// Server did not echo the entity; fall back to a full refetch.
		if err := s.Fetch(ctx); err != nil {
			return err
		}
	}

	notifySuccess(s.notify, "User added successfully")
	return nil
}

// Update sends a whole-record replace for the given studentid and splices
// the echoed entity into the cache. A missing local match is tolerated:
// the server stays source of truth and the stale cache lasts only until
// the next fetch.
func (s *UserStore) Update(ctx context.Context, studentID string, user models.User) error {
	s.begin()

	var res dto.UserUpdateResponse
	if err := s.client.Put(ctx, "/user/"+url.PathEscape(studentID), user, &res); err != nil {
		s.reject(err)
		notifyFailure(s.notify, apperrors.MessageOf(err))
		return err
	}

	if !res.Success || res.UpdatedUser == nil {
		msg := res.Message
		if msg == "" {
			msg = "Update failed"
		}
		err := apperrors.NewRemoteError(apperrors.ErrRequestFailed, msg)
		s.reject(err)
		notifyFailure(s.notify, msg)
		return err
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].StudentID == res.UpdatedUser.StudentID {
			s.items[i] = *res.UpdatedUser
			break
		}
	}
	s.loading = false
	s.mu.Unlock()

	notifySuccess(s.notify, "User updated successfully")
	return nil
}

// Delete removes exactly the member with the given studentid.
func (s *UserStore) Delete(ctx context.Context, studentID string) error {
	s.begin()

	if err := s.client.Delete(ctx, "/user/"+url.PathEscape(studentID), nil); err != nil {
		s.reject(err)
		notifyFailure(s.notify, apperrors.MessageOf(err))
		return err
	}

	s.mu.Lock()
	kept := s.items[:0]
	for _, u := range s.items {
		if u.StudentID != studentID {
			kept = append(kept, u)
		}
	}
	s.items = kept
	s.loading = false
	s.mu.Unlock()

	notifySuccess(s.notify, "User deleted successfully")
	return nil
}

// DeleteAll clears the whole roster. Success is silent, mirroring the
// bulk operation's background nature; failures still land in the error.
func (s *UserStore) DeleteAll(ctx context.Context) error {
	s.begin()

	if err := s.client.Delete(ctx, "/user", nil); err != nil {
		s.reject(err)
		notifyFailure(s.notify, apperrors.MessageOf(err))
		return err
	}

	s.mu.Lock()
	s.items = nil
	s.loading = false
	s.mu.Unlock()
	return nil
}

// Items returns a copy of the cached collection.
func (s *UserStore) Items() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, len(s.items))
	copy(out, s.items)
	return out
}

// Loading reports whether an operation is in flight.
func (s *UserStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Error returns the stored error message, empty when clear.
func (s *UserStore) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// ClearError resets the stored error after the user dismisses it.
func (s *UserStore) ClearError() {
	s.mu.Lock()
	s.err = ""
	s.mu.Unlock()
}

// Filter returns the members whose searchable fields contain term,
// case-insensitively. An empty term matches everything.
func (s *UserStore) Filter(term string) []models.User {
	items := s.Items()
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}

	matched := make([]models.User, 0, len(items))
	for _, u := range items {
		if strings.Contains(searchText(&u), term) {
			matched = append(matched, u)
		}
	}
	return matched
}

// searchText joins the fixed searchable field list into one lowercase
// string, so one term matches across any of them.
func searchText(u *models.User) string {
	fields := []string{
		u.StudentID,
		u.FirstName,
		u.LastName,
		u.BaptismalName,
		u.ZoneName,
		u.Phone,
		u.Email,
		u.Telegram,
		string(u.Gender),
	}
	if uu := u.University; uu != nil {
		fields = append(fields,
			uu.DepartmentName,
			string(uu.Participation),
			strconv.Itoa(uu.Batch),
			string(uu.ActivityLevel),
		)
	}
	return strings.ToLower(strings.Join(fields, " "))
}
