package services

import (
	"context"

	"github.com/google/uuid"

	"ecobridge/internal/models"
)

// Store interfaces consumed by the project and match services. The pgx
// repositories satisfy them; tests swap in fakes.

type ProjectStore interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, pg models.Pagination) ([]models.Project, error)
	UpdateContent(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type MatchStore interface {
	CreateBatch(ctx context.Context, matches []models.ProjectMatch) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ProjectMatch, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.ProjectMatch, error)
	ListByConsultant(ctx context.Context, consultantID uuid.UUID, status *models.MatchStatus, pg models.Pagination) ([]models.ConsultantMatch, error)
	UpdateProposal(ctx context.Context, id uuid.UUID, proposal string, price float64) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.MatchStatus) error
	Accept(ctx context.Context, matchID, projectID uuid.UUID) error
	Complete(ctx context.Context, matchID, projectID uuid.UUID) error
}

type ConsultantStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.ConsultantProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.ConsultantProfile, error)
	ListAll(ctx context.Context) ([]models.ConsultantProfile, error)
}
