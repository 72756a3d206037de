package forms

import "testing"

func TestAdminPatchOmitsEmptyPassword(t *testing.T) {
	form := AdminFormData{StudentID: "UGR-0002-16", Username: "marta"}
	req := form.Patch()
	if req.Username != "marta" {
		t.Fatalf("unexpected username %q", req.Username)
	}
	if req.Password != nil {
		t.Fatalf("empty password means no change, got %q", *req.Password)
	}
}

func TestAdminPatchCarriesNewPassword(t *testing.T) {
	form := AdminFormData{StudentID: "UGR-0002-16", Username: "marta", Password: "new-secret"}
	req := form.Patch()
	if req.Password == nil || *req.Password != "new-secret" {
		t.Fatalf("expected password pointer, got %v", req.Password)
	}
}

func TestAdminRegister(t *testing.T) {
	form := AdminFormData{StudentID: "UGR-0002-16", Username: "marta", Password: "pw"}
	req := form.Register()
	if req.StudentID != "UGR-0002-16" || req.Username != "marta" || req.Password != "pw" {
		t.Fatalf("unexpected request: %+v", req)
	}
}
