package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/nexospark/website-api/internal/core/domain"
	"github.com/nexospark/website-api/internal/core/ports"
)

type stubApplicationRepo struct {
	apps   map[string]*domain.JobApplication
	nextID int
}

func newStubApplicationRepo() *stubApplicationRepo {
	return &stubApplicationRepo{apps: make(map[string]*domain.JobApplication)}
}

func cloneApplication(a *domain.JobApplication) *domain.JobApplication {
	clone := *a
	return &clone
}

func (r *stubApplicationRepo) Insert(_ context.Context, a *domain.JobApplication) (*domain.JobApplication, error) {
	copy := cloneApplication(a)
	r.nextID++
	copy.ID = "app-" + strconv.Itoa(r.nextID)
	r.apps[copy.ID] = cloneApplication(copy)
	return copy, nil
}

func (r *stubApplicationRepo) FindByID(_ context.Context, id string) (*domain.JobApplication, error) {
	a, ok := r.apps[id]
	if !ok {
		return nil, domain.NotFound("no application found with that ID")
	}
	return cloneApplication(a), nil
}

func (r *stubApplicationRepo) ListAll(_ context.Context) ([]*domain.JobApplication, error) {
	var items []*domain.JobApplication
	for _, a := range r.apps {
		items = append(items, cloneApplication(a))
	}
	return items, nil
}

func (r *stubApplicationRepo) ListByApplicant(_ context.Context, applicantID string) ([]*domain.JobApplication, error) {
	var items []*domain.JobApplication
	for _, a := range r.apps {
		if a.Applicant.ID == applicantID {
			items = append(items, cloneApplication(a))
		}
	}
	return items, nil
}

func (r *stubApplicationRepo) Replace(_ context.Context, a *domain.JobApplication) (*domain.JobApplication, error) {
	if _, ok := r.apps[a.ID]; !ok {
		return nil, domain.NotFound("no application found with that ID")
	}
	r.apps[a.ID] = cloneApplication(a)
	return cloneApplication(a), nil
}

func (r *stubApplicationRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.apps[id]; !ok {
		return domain.NotFound("no application found with that ID")
	}
	delete(r.apps, id)
	return nil
}

var (
	applicant = &domain.User{ID: "user-1", Name: "Alice", Email: "alice@example.com", Role: domain.RoleUser}
	hrAdmin   = &domain.User{ID: "admin-1", Name: "Root", Role: domain.RoleAdmin}
	stranger  = &domain.User{ID: "user-2", Name: "Bob", Role: domain.RoleUser}
)

func newTestApplicationService(repo *stubApplicationRepo) *ApplicationService {
	return NewApplicationService(repo, zerolog.Nop())
}

func TestApplicationService_Submit(t *testing.T) {
	svc := newTestApplicationService(newStubApplicationRepo())

	app, err := svc.Submit(context.Background(), applicant, ports.ApplicationInput{
		Position: "Flight Software Engineer",
		FullName: "Alice Doe",
		Email:    "alice@example.com",
		Phone:    "+1 555 0100",
		Resume:   "https://example.com/cv.pdf",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if app.Status != domain.ApplicationPending {
		t.Fatalf("expected pending status, got %q", app.Status)
	}
	if app.Applicant.ID != applicant.ID || app.Applicant.Email != applicant.Email {
		t.Fatalf("applicant not denormalized: %+v", app.Applicant)
	}
}

func TestApplicationService_Get_OwnerOrAdmin(t *testing.T) {
	svc := newTestApplicationService(newStubApplicationRepo())

	app, err := svc.Submit(context.Background(), applicant, ports.ApplicationInput{Position: "Pilot"})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if _, err := svc.Get(context.Background(), stranger, app.ID); domain.KindOf(err) != domain.KindForbidden {
		t.Fatalf("expected forbidden for stranger, got %v", err)
	}
	if _, err := svc.Get(context.Background(), applicant, app.ID); err != nil {
		t.Fatalf("applicant read failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), hrAdmin, app.ID); err != nil {
		t.Fatalf("admin read failed: %v", err)
	}
}

func TestApplicationService_Delete_OwnerOrAdmin(t *testing.T) {
	svc := newTestApplicationService(newStubApplicationRepo())

	app, err := svc.Submit(context.Background(), applicant, ports.ApplicationInput{Position: "Pilot"})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if err := svc.Delete(context.Background(), stranger, app.ID); domain.KindOf(err) != domain.KindForbidden {
		t.Fatalf("expected forbidden for stranger, got %v", err)
	}
	if err := svc.Delete(context.Background(), applicant, app.ID); err != nil {
		t.Fatalf("applicant delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), applicant, app.ID); domain.KindOf(err) != domain.KindNotFound {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestApplicationService_ListMine(t *testing.T) {
	svc := newTestApplicationService(newStubApplicationRepo())

	if _, err := svc.Submit(context.Background(), applicant, ports.ApplicationInput{Position: "Pilot"}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if _, err := svc.Submit(context.Background(), stranger, ports.ApplicationInput{Position: "Analyst"}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	mine, err := svc.ListMine(context.Background(), applicant.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(mine) != 1 || mine[0].Position != "Pilot" {
		t.Fatalf("unexpected listing: %+v", mine)
	}
}

func TestApplicationService_UpdateStatus(t *testing.T) {
	svc := newTestApplicationService(newStubApplicationRepo())

	app, err := svc.Submit(context.Background(), applicant, ports.ApplicationInput{Position: "Pilot"})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), app.ID, domain.ApplicationShortlisted)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != domain.ApplicationShortlisted {
		t.Fatalf("unexpected status %q", updated.Status)
	}

	if _, err := svc.UpdateStatus(context.Background(), app.ID, "archived"); domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("expected validation error for unknown status, got %v", err)
	}
}
