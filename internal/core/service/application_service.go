package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/nexospark/website-api/internal/api/metrics"
	"github.com/nexospark/website-api/internal/core/domain"
	"github.com/nexospark/website-api/internal/core/ports"
)

// ApplicationService implements job applications. Applications are owned
// resources: the applicant or an admin may read and delete them; listing
// everything and changing status is admin-only (gated at the router).
type ApplicationService struct {
	repo ports.ApplicationRepository
	log  zerolog.Logger
}

func NewApplicationService(repo ports.ApplicationRepository, log zerolog.Logger) *ApplicationService {
	return &ApplicationService{repo: repo, log: log}
}

func (s *ApplicationService) Submit(ctx context.Context, applicant *domain.User, in ports.ApplicationInput) (*domain.JobApplication, error) {
	now := time.Now().UTC()
	app := &domain.JobApplication{
		Position: in.Position,
		Applicant: domain.ApplicantRef{
			ID:    applicant.ID,
			Name:  applicant.Name,
			Email: applicant.Email,
		},
		FullName:    in.FullName,
		Email:       in.Email,
		Phone:       in.Phone,
		Resume:      in.Resume,
		CoverLetter: in.CoverLetter,
		Status:      domain.ApplicationPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Insert(ctx, app)
	if err != nil {
		return nil, err
	}

	metrics.ApplicationsSubmittedTotal.Inc()
	s.log.Info().Str("application_id", created.ID).Str("applicant_id", applicant.ID).Msg("application submitted")
	return created, nil
}

func (s *ApplicationService) ListAll(ctx context.Context) ([]*domain.JobApplication, error) {
	return s.repo.ListAll(ctx)
}

func (s *ApplicationService) ListMine(ctx context.Context, applicantID string) ([]*domain.JobApplication, error) {
	return s.repo.ListByApplicant(ctx, applicantID)
}

func (s *ApplicationService) Get(ctx context.Context, actor *domain.User, id string) (*domain.JobApplication, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.AuthorizeOwnerOrRole(actor, app.Applicant.ID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *ApplicationService) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.JobApplication, error) {
	if !domain.ValidApplicationStatus(status) {
		return nil, domain.Validation("invalid application status")
	}

	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	app.Status = status
	app.UpdatedAt = time.Now().UTC()

	return s.repo.Replace(ctx, app)
}

func (s *ApplicationService) Delete(ctx context.Context, actor *domain.User, id string) error {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.AuthorizeOwnerOrRole(actor, app.Applicant.ID, domain.RoleAdmin); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("application_id", id).Str("actor_id", actor.ID).Msg("application deleted")
	return nil
}
