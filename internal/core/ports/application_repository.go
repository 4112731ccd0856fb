package ports

import (
	"context"

	"github.com/nexospark/website-api/internal/core/domain"
)

// ApplicationRepository defines persistence for job applications.
type ApplicationRepository interface {
	Insert(ctx context.Context, a *domain.JobApplication) (*domain.JobApplication, error)
	FindByID(ctx context.Context, id string) (*domain.JobApplication, error)
	ListAll(ctx context.Context) ([]*domain.JobApplication, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]*domain.JobApplication, error)
	Replace(ctx context.Context, a *domain.JobApplication) (*domain.JobApplication, error)
	Delete(ctx context.Context, id string) error
}
