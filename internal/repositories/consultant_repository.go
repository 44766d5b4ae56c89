package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ecobridge/internal/models"
)

type ConsultantRepository struct {
	pool *pgxpool.Pool
}

func NewConsultantRepository(pool *pgxpool.Pool) *ConsultantRepository {
	return &ConsultantRepository{pool: pool}
}

func (r *ConsultantRepository) Create(ctx context.Context, profile *models.ConsultantProfile) error {
	profile.Prepare()

	query := `
		INSERT INTO consultant_profiles
			(id, user_id, headline, bio, expertise, years_experience, hourly_rate, languages, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		profile.ID,
		profile.UserID,
		profile.Headline,
		profile.Bio,
		profile.Expertise,
		profile.YearsExperience,
		profile.HourlyRate,
		profile.Languages,
		time.Now(),
	)

	return err
}

func (r *ConsultantRepository) Update(ctx context.Context, profile *models.ConsultantProfile) error {
	query := `
		UPDATE consultant_profiles SET
			headline = $2, bio = $3, expertise = $4, years_experience = $5,
			hourly_rate = $6, languages = $7, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query,
		profile.ID,
		profile.Headline,
		profile.Bio,
		profile.Expertise,
		profile.YearsExperience,
		profile.HourlyRate,
		profile.Languages,
	)

	return err
}

func (r *ConsultantRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ConsultantProfile, error) {
	query := selectProfile + ` WHERE id = $1`

	var profile models.ConsultantProfile
	err := r.pool.QueryRow(ctx, query, id).Scan(profileFields(&profile)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}

func (r *ConsultantRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.ConsultantProfile, error) {
	query := selectProfile + ` WHERE user_id = $1`

	var profile models.ConsultantProfile
	err := r.pool.QueryRow(ctx, query, userID).Scan(profileFields(&profile)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}

// ListAll reads the full consultant pool for matching. Ordered by creation
// time so ranking ties resolve the same way on every run.
func (r *ConsultantRepository) ListAll(ctx context.Context) ([]models.ConsultantProfile, error) {
	query := selectProfile + ` ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProfiles(rows)
}

func (r *ConsultantRepository) List(ctx context.Context, pg models.Pagination) ([]models.ConsultantProfile, error) {
	query := selectProfile + ` ORDER BY created_at, id LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, pg.Limit, pg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProfiles(rows)
}

const selectProfile = `
	SELECT id, user_id, headline, bio, expertise, years_experience, hourly_rate, languages, created_at, updated_at
	FROM consultant_profiles
`

func profileFields(p *models.ConsultantProfile) []any {
	return []any{
		&p.ID,
		&p.UserID,
		&p.Headline,
		&p.Bio,
		&p.Expertise,
		&p.YearsExperience,
		&p.HourlyRate,
		&p.Languages,
		&p.CreatedAt,
		&p.UpdatedAt,
	}
}

func scanProfiles(rows pgx.Rows) ([]models.ConsultantProfile, error) {
	var profiles []models.ConsultantProfile
	for rows.Next() {
		var profile models.ConsultantProfile
		if err := rows.Scan(profileFields(&profile)...); err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	return profiles, rows.Err()
}
