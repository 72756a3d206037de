package store

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/habtamu/memberdesk/internal/app/models"
	"github.com/habtamu/memberdesk/internal/app/models/dto"
	"github.com/habtamu/memberdesk/internal/pkg/apperrors"
)

// fakeDoer routes store requests to canned handlers and records what was
// sent on the wire.
type fakeDoer struct {
	get    func(path string, out interface{}) error
	post   func(path string, body, out interface{}) error
	put    func(path string, body, out interface{}) error
	delete func(path string, out interface{}) error

	calls []string
}

func (f *fakeDoer) Get(_ context.Context, path string, out interface{}) error {
	f.calls = append(f.calls, "GET "+path)
	if f.get == nil {
		return nil
	}
	return f.get(path, out)
}

func (f *fakeDoer) Post(_ context.Context, path string, body, out interface{}) error {
	f.calls = append(f.calls, "POST "+path)
	if f.post == nil {
		return nil
	}
	return f.post(path, body, out)
}

func (f *fakeDoer) Put(_ context.Context, path string, body, out interface{}) error {
	f.calls = append(f.calls, "PUT "+path)
	if f.put == nil {
		return nil
	}
	return f.put(path, body, out)
}

func (f *fakeDoer) Delete(_ context.Context, path string, out interface{}) error {
	f.calls = append(f.calls, "DELETE "+path)
	if f.delete == nil {
		return nil
	}
	return f.delete(path, out)
}

// recorder collects notifications so tests can assert on outcome dialogs.
type recorder struct {
	notes []Notification
}

func (r *recorder) Notify(n Notification) {
	r.notes = append(r.notes, n)
}

func sampleUsers() []models.User {
	return []models.User{
		{StudentID: "UGR-0001-15", FirstName: "Abel", LastName: "Tesfaye", Phone: "+251911111111",
			University: &models.UniversityUser{DepartmentName: "Computer Science", Batch: 2015, ActivityLevel: models.ActivityActive}},
		{StudentID: "UGR-0002-16", FirstName: "Marta", LastName: "Bekele", Phone: "+251922222222",
			University: &models.UniversityUser{DepartmentName: "Medicine", Batch: 2016, ActivityLevel: models.ActivityNotActive}},
	}
}

func TestUserFetchReplacesWholesale(t *testing.T) {
	doer := &fakeDoer{get: func(path string, out interface{}) error {
		*(out.(*dto.UserListResponse)) = dto.UserListResponse{Success: true, Users: sampleUsers()}
		return nil
	}}
	rec := &recorder{}
	s := NewUserStore(doer, rec)

	if err := s.Fetch(context.Background()); err != nil {
		t.Fatalf("fetch error: %v", err)
	}
	if got := len(s.Items()); got != 2 {
		t.Fatalf("expected 2 users, got %d", got)
	}
	if s.Loading() {
		t.Fatal("loading should clear after fulfillment")
	}
	if len(rec.notes) != 0 {
		t.Fatalf("fetch must be silent, got %d notifications", len(rec.notes))
	}
}

func TestUserFetchTwiceYieldsIdenticalState(t *testing.T) {
	doer := &fakeDoer{get: func(path string, out interface{}) error {
		*(out.(*dto.UserListResponse)) = dto.UserListResponse{Success: true, Users: sampleUsers()}
		return nil
	}}
	s := NewUserStore(doer, &recorder{})

	if err := s.Fetch(context.Background()); err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	first := s.Items()

	if err := s.Fetch(context.Background()); err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	second := s.Items()

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated fetch must leave identical state, got %+v then %+v", first, second)
	}
	if s.Loading() || s.Error() != "" {
		t.Fatalf("unexpected pending state after refetch: loading=%v err=%q", s.Loading(), s.Error())
	}
}

func TestUserEnsureFreshSkipsWithinWindow(t *testing.T) {
	doer := &fakeDoer{get: func(path string, out interface{}) error {
		*(out.(*dto.UserListResponse)) = dto.UserListResponse{Success: true, Users: sampleUsers()}
		return nil
	}}
	s := NewUserStore(doer, &recorder{})

	if err := s.EnsureFresh(context.Background()); err != nil {
		t.Fatalf("first ensure: %v", err)
	}
	if err := s.EnsureFresh(context.Background()); err != nil {
		t.Fatalf("second ensure: %v", err)
	}
	if got := len(doer.calls); got != 1 {
		t.Fatalf("expected one fetch inside freshness window, got %d calls", got)
	}

	s.mu.Lock()
	s.fetchedAt = time.Now().Add(-time.Minute)
	s.mu.Unlock()

	if err := s.EnsureFresh(context.Background()); err != nil {
		t.Fatalf("stale ensure: %v", err)
	}
	if got := len(doer.calls); got != 2 {
		t.Fatalf("expected refetch after window expired, got %d calls", got)
	}
}

func TestUserAddAppendsEcho(t *testing.T) {
	created := models.User{StudentID: "UGR-0003-17", FirstName: "Yared"}
	doer := &fakeDoer{post: func(path string, body, out interface{}) error {
		*(out.(*dto.UserResponse)) = dto.UserResponse{Success: true, User: &created}
		return nil
	}}
	rec := &recorder{}
	s := NewUserStore(doer, rec)

	if err := s.Add(context.Background(), created); err != nil {
		t.Fatalf("add error: %v", err)
	}
	items := s.Items()
	if len(items) != 1 || items[0].StudentID != "UGR-0003-17" {
		t.Fatalf("expected echoed entity appended, got %+v", items)
	}
	if len(rec.notes) != 1 || rec.notes[0].Kind != NotifySuccess || rec.notes[0].Text != "User added successfully" {
		t.Fatalf("unexpected notifications: %+v", rec.notes)
	}
}

func TestUserAddFailureLeavesItemsUntouched(t *testing.T) {
	doer := &fakeDoer{post: func(path string, body, out interface{}) error {
		return apperrors.NewRemoteError(apperrors.ErrRequestFailed, "Student ID already registered")
	}}
	rec := &recorder{}
	s := NewUserStore(doer, rec)
	s.items = sampleUsers()

	err := s.Add(context.Background(), models.User{StudentID: "UGR-0001-15"})
	if !errors.Is(err, apperrors.ErrRequestFailed) {
		t.Fatalf("expected ErrRequestFailed, got %v", err)
	}
	if got := len(s.Items()); got != 2 {
		t.Fatalf("failed add must not touch the cache, got %d items", got)
	}
	if s.Error() != "Student ID already registered" {
		t.Fatalf("expected rejected message stored, got %q", s.Error())
	}
	if len(rec.notes) != 1 || rec.notes[0].Kind != NotifyError {
		t.Fatalf("expected one failure notification, got %+v", rec.notes)
	}
}

func TestUserUpdateSplicesByStudentID(t *testing.T) {
	updated := models.User{StudentID: "UGR-0002-16", FirstName: "Martha", LastName: "Bekele"}
	doer := &fakeDoer{put: func(path string, body, out interface{}) error {
		if path != "/user/UGR-0002-16" {
			t.Errorf("unexpected path %s", path)
		}
		*(out.(*dto.UserUpdateResponse)) = dto.UserUpdateResponse{Success: true, UpdatedUser: &updated}
		return nil
	}}
	s := NewUserStore(doer, &recorder{})
	s.items = sampleUsers()

	if err := s.Update(context.Background(), "UGR-0002-16", updated); err != nil {
		t.Fatalf("update error: %v", err)
	}
	items := s.Items()
	if items[1].FirstName != "Martha" {
		t.Fatalf("expected splice, got %+v", items[1])
	}
	if items[0].FirstName != "Abel" {
		t.Fatalf("unrelated entry must be untouched, got %+v", items[0])
	}
}

func TestUserUpdateMissingLocalMatchIsNoOp(t *testing.T) {
	stranger := models.User{StudentID: "UGR-9999-18", FirstName: "Ghost"}
	doer := &fakeDoer{put: func(path string, body, out interface{}) error {
		*(out.(*dto.UserUpdateResponse)) = dto.UserUpdateResponse{Success: true, UpdatedUser: &stranger}
		return nil
	}}
	s := NewUserStore(doer, &recorder{})
	s.items = sampleUsers()

	if err := s.Update(context.Background(), "UGR-9999-18", stranger); err != nil {
		t.Fatalf("update error: %v", err)
	}
	if got := len(s.Items()); got != 2 {
		t.Fatalf("missing local match must not grow the cache, got %d items", got)
	}
}

func TestUserUpdateRejectedByServer(t *testing.T) {
	doer := &fakeDoer{put: func(path string, body, out interface{}) error {
		*(out.(*dto.UserUpdateResponse)) = dto.UserUpdateResponse{Success: false, Message: "User not found"}
		return nil
	}}
	rec := &recorder{}
	s := NewUserStore(doer, rec)
	s.items = sampleUsers()

	err := s.Update(context.Background(), "UGR-0001-15", sampleUsers()[0])
	if !errors.Is(err, apperrors.ErrRequestFailed) {
		t.Fatalf("expected ErrRequestFailed, got %v", err)
	}
	if s.Error() != "User not found" {
		t.Fatalf("expected server message, got %q", s.Error())
	}
	if len(rec.notes) != 1 || rec.notes[0].Kind != NotifyError {
		t.Fatalf("expected failure notification, got %+v", rec.notes)
	}
}

func TestUserDeleteRemovesExactMatch(t *testing.T) {
	doer := &fakeDoer{}
	s := NewUserStore(doer, &recorder{})
	s.items = sampleUsers()

	if err := s.Delete(context.Background(), "UGR-0001-15"); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	items := s.Items()
	if len(items) != 1 || items[0].StudentID != "UGR-0002-16" {
		t.Fatalf("expected exact removal, got %+v", items)
	}
	if doer.calls[0] != "DELETE /user/UGR-0001-15" {
		t.Fatalf("unexpected wire call %q", doer.calls[0])
	}
}

func TestUserDeleteAllClearsSilently(t *testing.T) {
	doer := &fakeDoer{}
	rec := &recorder{}
	s := NewUserStore(doer, rec)
	s.items = sampleUsers()

	if err := s.DeleteAll(context.Background()); err != nil {
		t.Fatalf("delete all error: %v", err)
	}
	if got := len(s.Items()); got != 0 {
		t.Fatalf("expected empty roster, got %d items", got)
	}
	if len(rec.notes) != 0 {
		t.Fatalf("delete-all success must be silent, got %+v", rec.notes)
	}
}

func TestUserFilterMatchesAcrossFields(t *testing.T) {
	s := NewUserStore(&fakeDoer{}, &recorder{})
	s.items = sampleUsers()

	if got := s.Filter(""); len(got) != 2 {
		t.Fatalf("empty term must match everything, got %d", len(got))
	}
	if got := s.Filter("MEDICINE"); len(got) != 1 || got[0].StudentID != "UGR-0002-16" {
		t.Fatalf("expected case-insensitive department match, got %+v", got)
	}
	if got := s.Filter("ugr-0001"); len(got) != 1 || got[0].StudentID != "UGR-0001-15" {
		t.Fatalf("expected studentid match, got %+v", got)
	}
	if got := s.Filter("nomatch"); len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
}

func TestUserWireBodyUsesRosterFieldNames(t *testing.T) {
	var sent []byte
	doer := &fakeDoer{post: func(path string, body, out interface{}) error {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		sent = raw
		*(out.(*dto.UserResponse)) = dto.UserResponse{Success: true, User: &models.User{StudentID: "UGR-0004-17"}}
		return nil
	}}
	s := NewUserStore(doer, &recorder{})

	u := sampleUsers()[0]
	if err := s.Add(context.Background(), u); err != nil {
		t.Fatalf("add error: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(sent, &decoded); err != nil {
		t.Fatalf("body is not valid JSON: %v", err)
	}
	if decoded["studentid"] != "UGR-0001-15" {
		t.Fatalf("expected studentid key on the wire, got %v", decoded)
	}
	if _, ok := decoded["universityusers"]; !ok {
		t.Fatalf("expected universityusers sub-record on the wire, got %v", decoded)
	}
}
