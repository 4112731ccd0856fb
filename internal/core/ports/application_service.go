package ports

import (
	"context"

	"github.com/nexospark/website-api/internal/core/domain"
)

// ApplicationInput carries a job application submission. The applicant
// reference is taken from the authenticated principal, never the payload.
type ApplicationInput struct {
	Position    string
	FullName    string
	Email       string
	Phone       string
	Resume      string
	CoverLetter string
}

// ApplicationService defines use-case operations for job applications.
type ApplicationService interface {
	Submit(ctx context.Context, applicant *domain.User, in ApplicationInput) (*domain.JobApplication, error)
	// ListAll is the back-office view of every application.
	ListAll(ctx context.Context) ([]*domain.JobApplication, error)
	ListMine(ctx context.Context, applicantID string) ([]*domain.JobApplication, error)
	// Get returns the application when actor is the applicant or an admin.
	Get(ctx context.Context, actor *domain.User, id string) (*domain.JobApplication, error)
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.JobApplication, error)
	// Delete removes the application when actor is the applicant or an admin.
	Delete(ctx context.Context, actor *domain.User, id string) error
}
