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

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	project.Prepare()

	query := `
		INSERT INTO projects
			(id, owner_id, title, description, requirements, budget, deadline, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		project.ID,
		project.OwnerID,
		project.Title,
		project.Description,
		project.Requirements,
		project.Budget,
		project.Deadline,
		project.Status,
		time.Now(),
	)

	return err
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	query := selectProject + ` WHERE id = $1`

	var project models.Project
	err := r.pool.QueryRow(ctx, query, id).Scan(projectFields(&project)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &project, nil
}

func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, pg models.Pagination) ([]models.Project, error) {
	query := selectProject + ` WHERE owner_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, ownerID, pg.Limit, pg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var project models.Project
		if err := rows.Scan(projectFields(&project)...); err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}

// UpdateContent persists the content fields only; status changes go through
// the match lifecycle cascades.
func (r *ProjectRepository) UpdateContent(ctx context.Context, project *models.Project) error {
	query := `
		UPDATE projects SET
			title = $2, description = $3, requirements = $4, budget = $5, deadline = $6, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query,
		project.ID,
		project.Title,
		project.Description,
		project.Requirements,
		project.Budget,
		project.Deadline,
	)

	return err
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// matches go with it via ON DELETE CASCADE
	query := `DELETE FROM projects WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

const selectProject = `
	SELECT id, owner_id, title, description, requirements, budget, deadline, status, created_at, updated_at
	FROM projects
`

func projectFields(p *models.Project) []any {
	return []any{
		&p.ID,
		&p.OwnerID,
		&p.Title,
		&p.Description,
		&p.Requirements,
		&p.Budget,
		&p.Deadline,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	}
}
