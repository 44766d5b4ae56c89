package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"ecobridge/internal/errs"
	"ecobridge/internal/models"
)

type MatchService struct {
	matchStore      MatchStore
	projectStore    ProjectStore
	consultantStore ConsultantStore
}

func NewMatchService(matchStore MatchStore, projectStore ProjectStore, consultantStore ConsultantStore) *MatchService {
	return &MatchService{
		matchStore:      matchStore,
		projectStore:    projectStore,
		consultantStore: consultantStore,
	}
}

// ListProjectMatches returns a project's ranked match list to its owner.
func (s *MatchService) ListProjectMatches(ctx context.Context, projectID, requesterID uuid.UUID) ([]models.ProjectMatch, error) {
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

	return s.matchStore.ListByProject(ctx, projectID)
}

// ListConsultantMatches returns the acting consultant's matches with their
// projects, optionally filtered by match status.
func (s *MatchService) ListConsultantMatches(ctx context.Context, userID uuid.UUID, status *models.MatchStatus, pg models.Pagination) ([]models.ConsultantMatch, error) {
	profile, err := s.consultantStore.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errs.NotFound("consultant profile")
	}

	pg.Normalize()
	return s.matchStore.ListByConsultant(ctx, profile.ID, status, pg)
}

// SubmitProposal sets proposal text and price on a pending match. Only the
// matched consultant may do this, and only while the match is pending; the
// status itself does not change.
func (s *MatchService) SubmitProposal(ctx context.Context, matchID, userID uuid.UUID, proposal string, price float64) (*models.ProjectMatch, error) {
	if strings.TrimSpace(proposal) == "" {
		return nil, errs.Validation("proposal text is required")
	}
	if price <= 0 {
		return nil, errs.Validation("price must be positive")
	}

	match, err := s.matchStore.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, errs.NotFound("match")
	}

	profile, err := s.consultantStore.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil || profile.ID != match.ConsultantID {
		return nil, errs.PermissionDenied("match belongs to another consultant")
	}

	if match.Status != models.MatchPending {
		return nil, errs.InvalidTransition(string(match.Status), "proposal update")
	}

	if err := s.matchStore.UpdateProposal(ctx, matchID, proposal, price); err != nil {
		return nil, err
	}

	return s.matchStore.GetByID(ctx, matchID)
}

// UpdateMatchStatus drives the match state machine on behalf of the project
// owner:
//
//	pending  -> accepted   (cascades: project in_progress, pending siblings rejected)
//	pending  -> rejected
//	accepted -> completed  (cascades: project completed)
//
// Every other transition fails with an invalid-transition error.
func (s *MatchService) UpdateMatchStatus(ctx context.Context, matchID, requesterID uuid.UUID, newStatus models.MatchStatus) (*models.ProjectMatch, error) {
	match, err := s.matchStore.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, errs.NotFound("match")
	}

	project, err := s.projectStore.GetByID(ctx, match.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, errs.NotFound("project")
	}
	if project.OwnerID != requesterID {
		return nil, errs.PermissionDenied("project belongs to another user")
	}

	switch newStatus {
	case models.MatchAccepted:
		if match.Status != models.MatchPending {
			return nil, errs.InvalidTransition(string(match.Status), string(newStatus))
		}
		if err := s.matchStore.Accept(ctx, match.ID, project.ID); err != nil {
			return nil, err
		}

	case models.MatchRejected:
		if match.Status != models.MatchPending {
			return nil, errs.InvalidTransition(string(match.Status), string(newStatus))
		}
		if err := s.matchStore.UpdateStatus(ctx, match.ID, models.MatchRejected); err != nil {
			return nil, err
		}

	case models.MatchCompleted:
		if match.Status != models.MatchAccepted {
			return nil, errs.InvalidTransition(string(match.Status), string(newStatus))
		}
		if err := s.matchStore.Complete(ctx, match.ID, project.ID); err != nil {
			return nil, err
		}

	default:
		return nil, errs.Validation("status must be accepted, rejected or completed")
	}

	log.Info().
		Str("match_id", match.ID.String()).
		Str("project_id", project.ID.String()).
		Str("from", string(match.Status)).
		Str("to", string(newStatus)).
		Msg("match status updated")

	return s.matchStore.GetByID(ctx, matchID)
}
