package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"ecobridge/internal/errs"
	"ecobridge/internal/matching"
	"ecobridge/internal/models"
)

type ProjectService struct {
	projectStore    ProjectStore
	matchStore      MatchStore
	consultantStore ConsultantStore
}

func NewProjectService(projectStore ProjectStore, matchStore MatchStore, consultantStore ConsultantStore) *ProjectService {
	return &ProjectService{
		projectStore:    projectStore,
		matchStore:      matchStore,
		consultantStore: consultantStore,
	}
}

type CreateProjectRequest struct {
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description" binding:"required"`
	Requirements string     `json:"requirements" binding:"required"`
	Budget       *float64   `json:"budget,omitempty"`
	Deadline     *time.Time `json:"deadline,omitempty"`
}

// CreateProject persists the project and synchronously generates its match
// list: the full consultant pool is scored, ranked and the retained
// candidates are stored as pending matches in one transaction. Matching runs
// exactly once per project, at creation.
func (s *ProjectService) CreateProject(ctx context.Context, ownerID uuid.UUID, req CreateProjectRequest) (*models.Project, []models.ProjectMatch, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" || strings.TrimSpace(req.Requirements) == "" {
		return nil, nil, errs.Validation("title, description and requirements are required")
	}

	project := &models.Project{
		OwnerID:      ownerID,
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Budget:       req.Budget,
		Deadline:     req.Deadline,
		Status:       models.ProjectOpen,
	}

	if err := s.projectStore.Create(ctx, project); err != nil {
		return nil, nil, err
	}

	pool, err := s.consultantStore.ListAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	keywords := matching.ExtractKeywords(project.Title + " " + project.Description + " " + project.Requirements)
	candidates := matching.Rank(keywords, pool)

	matches := make([]models.ProjectMatch, 0, len(candidates))
	for _, c := range candidates {
		matches = append(matches, models.ProjectMatch{
			ProjectID:    project.ID,
			ConsultantID: c.ConsultantID,
			MatchScore:   c.Score,
			Status:       models.MatchPending,
		})
	}

	if err := s.matchStore.CreateBatch(ctx, matches); err != nil {
		return nil, nil, err
	}

	log.Info().
		Str("project_id", project.ID.String()).
		Int("pool_size", len(pool)).
		Int("matches", len(matches)).
		Msg("project created and matched")

	return project, matches, nil
}

func (s *ProjectService) GetProject(ctx context.Context, projectID, requesterID uuid.UUID) (*models.Project, error) {
	project, err := s.projectStore.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, errs.NotFound("project")
	}
	if project.OwnerID != requesterID {
		return nil, errs.PermissionDenied("project belongs to another user")
	}

	return project, nil
}

func (s *ProjectService) ListProjects(ctx context.Context, ownerID uuid.UUID, pg models.Pagination) ([]models.Project, error) {
	pg.Normalize()
	return s.projectStore.ListByOwner(ctx, ownerID, pg)
}

// UpdateProject applies a partial update to the content fields. Only open
// projects can be edited, and status is never touched here.
func (s *ProjectService) UpdateProject(ctx context.Context, projectID, requesterID uuid.UUID, patch models.ProjectPatch) (*models.Project, error) {
	if patch.IsEmpty() {
		return nil, errs.Validation("no fields to update")
	}

	project, err := s.projectStore.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, errs.NotFound("project")
	}
	if project.OwnerID != requesterID {
		return nil, errs.PermissionDenied("project belongs to another user")
	}
	if project.Status != models.ProjectOpen {
		return nil, errs.Validation("only open projects can be edited")
	}

	patch.Apply(project)

	if err := s.projectStore.UpdateContent(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// DeleteProject removes the project and, via cascade, all its matches.
func (s *ProjectService) DeleteProject(ctx context.Context, projectID, requesterID uuid.UUID) error {
	project, err := s.projectStore.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project == nil {
		return errs.NotFound("project")
	}
	if project.OwnerID != requesterID {
		return errs.PermissionDenied("project belongs to another user")
	}

	return s.projectStore.Delete(ctx, projectID)
}
