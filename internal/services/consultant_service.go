package services

import (
	"context"

	"github.com/google/uuid"

	"ecobridge/internal/errs"
	"ecobridge/internal/models"
	"ecobridge/internal/repositories"
)

type ConsultantService struct {
	consultantRepo *repositories.ConsultantRepository
	userRepo       *repositories.UserRepository
}

func NewConsultantService(consultantRepo *repositories.ConsultantRepository, userRepo *repositories.UserRepository) *ConsultantService {
	return &ConsultantService{
		consultantRepo: consultantRepo,
		userRepo:       userRepo,
	}
}

type UpsertProfileRequest struct {
	Headline        string   `json:"headline" binding:"required"`
	Bio             *string  `json:"bio,omitempty"`
	Expertise       []string `json:"expertise" binding:"required,min=1"`
	YearsExperience int      `json:"years_experience" binding:"gte=0"`
	HourlyRate      *float64 `json:"hourly_rate,omitempty"`
	Languages       []string `json:"languages"`
}

// UpsertProfile creates the acting user's consultant profile or replaces its
// contents. Only users registered with the consultant role have a profile.
func (s *ConsultantService) UpsertProfile(ctx context.Context, userID uuid.UUID, req UpsertProfileRequest) (*models.ConsultantProfile, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NotFound("user")
	}
	if user.Role != models.RoleConsultant {
		return nil, errs.PermissionDenied("only consultants have a profile")
	}
	if req.YearsExperience < 0 {
		return nil, errs.Validation("years_experience must be non-negative")
	}

	existing, err := s.consultantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		profile := &models.ConsultantProfile{
			UserID:          userID,
			Headline:        req.Headline,
			Bio:             req.Bio,
			Expertise:       req.Expertise,
			YearsExperience: req.YearsExperience,
			HourlyRate:      req.HourlyRate,
			Languages:       req.Languages,
		}
		profile.Prepare()
		if err := s.consultantRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
		return profile, nil
	}

	existing.Headline = req.Headline
	existing.Bio = req.Bio
	existing.Expertise = req.Expertise
	existing.YearsExperience = req.YearsExperience
	existing.HourlyRate = req.HourlyRate
	existing.Languages = req.Languages
	if existing.Languages == nil {
		existing.Languages = []string{}
	}

	if err := s.consultantRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

func (s *ConsultantService) GetProfile(ctx context.Context, id uuid.UUID) (*models.ConsultantProfile, error) {
	profile, err := s.consultantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errs.NotFound("consultant profile")
	}
	return profile, nil
}

func (s *ConsultantService) GetOwnProfile(ctx context.Context, userID uuid.UUID) (*models.ConsultantProfile, error) {
	profile, err := s.consultantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errs.NotFound("consultant profile")
	}
	return profile, nil
}

func (s *ConsultantService) ListConsultants(ctx context.Context, pg models.Pagination) ([]models.ConsultantProfile, error) {
	pg.Normalize()
	return s.consultantRepo.List(ctx, pg)
}
