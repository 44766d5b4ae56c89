package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ecobridge/internal/models"
)

type MatchRepository struct {
	pool *pgxpool.Pool
}

func NewMatchRepository(pool *pgxpool.Pool) *MatchRepository {
	return &MatchRepository{pool: pool}
}

// CreateBatch inserts all matches from one ranking pass in a single
// transaction: either the whole candidate list is persisted or none of it.
func (r *MatchRepository) CreateBatch(ctx context.Context, matches []models.ProjectMatch) error {
	if len(matches) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO project_matches
			(id, project_id, consultant_id, match_score, status, proposal, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
	`

	now := time.Now()
	for i := range matches {
		matches[i].Prepare()
		m := &matches[i]
		if _, err := tx.Exec(ctx, query,
			m.ID,
			m.ProjectID,
			m.ConsultantID,
			m.MatchScore,
			m.Status,
			m.Proposal,
			m.Price,
			now,
		); err != nil {
			return fmt.Errorf("failed to insert match for consultant %s: %w", m.ConsultantID, err)
		}
	}

	return tx.Commit(ctx)
}

func (r *MatchRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ProjectMatch, error) {
	query := selectMatch + ` WHERE id = $1`

	var match models.ProjectMatch
	err := r.pool.QueryRow(ctx, query, id).Scan(matchFields(&match)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &match, nil
}

func (r *MatchRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.ProjectMatch, error) {
	query := selectMatch + ` WHERE project_id = $1 ORDER BY match_score DESC, created_at`

	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []models.ProjectMatch
	for rows.Next() {
		var match models.ProjectMatch
		if err := rows.Scan(matchFields(&match)...); err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}

	return matches, rows.Err()
}

// ListByConsultant returns the consultant's matches joined with their
// projects, newest first, optionally filtered by match status.
func (r *MatchRepository) ListByConsultant(ctx context.Context, consultantID uuid.UUID, status *models.MatchStatus, pg models.Pagination) ([]models.ConsultantMatch, error) {
	query := `
		SELECT
			m.id, m.project_id, m.consultant_id, m.match_score, m.status, m.proposal, m.price, m.created_at, m.updated_at,
			p.id, p.owner_id, p.title, p.description, p.requirements, p.budget, p.deadline, p.status, p.created_at, p.updated_at
		FROM project_matches m
		JOIN projects p ON p.id = m.project_id
		WHERE m.consultant_id = $1 AND ($2::match_status_t IS NULL OR m.status = $2)
		ORDER BY m.created_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.pool.Query(ctx, query, consultantID, status, pg.Limit, pg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.ConsultantMatch
	for rows.Next() {
		var cm models.ConsultantMatch
		fields := append(matchFields(&cm.Match), projectFields(&cm.Project)...)
		if err := rows.Scan(fields...); err != nil {
			return nil, err
		}
		results = append(results, cm)
	}

	return results, rows.Err()
}

func (r *MatchRepository) UpdateProposal(ctx context.Context, id uuid.UUID, proposal string, price float64) error {
	query := `
		UPDATE project_matches SET proposal = $2, price = $3, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query, id, proposal, price)
	return err
}

func (r *MatchRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.MatchStatus) error {
	query := `
		UPDATE project_matches SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query, id, status)
	return err
}

// Accept applies the accept cascade atomically: the target match becomes
// accepted, the project moves to in_progress and every sibling match still
// pending is rejected. The match row is locked first, so two concurrent
// accepts on the same project serialize and the second one fails the
// pending-state check in the service on retry.
func (r *MatchRepository) Accept(ctx context.Context, matchID, projectID uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var status models.MatchStatus
	err = tx.QueryRow(ctx,
		`SELECT status FROM project_matches WHERE id = $1 FOR UPDATE`, matchID,
	).Scan(&status)
	if err != nil {
		return err
	}
	if status != models.MatchPending {
		return fmt.Errorf("match %s is %s, not pending", matchID, status)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE project_matches SET status = 'accepted', updated_at = NOW() WHERE id = $1`,
		matchID,
	); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx,
		`UPDATE project_matches SET status = 'rejected', updated_at = NOW()
		 WHERE project_id = $1 AND id <> $2 AND status = 'pending'`,
		projectID, matchID,
	); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx,
		`UPDATE projects SET status = 'in_progress', updated_at = NOW() WHERE id = $1`,
		projectID,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Complete marks an accepted match and its project completed in one
// transaction.
func (r *MatchRepository) Complete(ctx context.Context, matchID, projectID uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`UPDATE project_matches SET status = 'completed', updated_at = NOW() WHERE id = $1`,
		matchID,
	); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx,
		`UPDATE projects SET status = 'completed', updated_at = NOW() WHERE id = $1`,
		projectID,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

const selectMatch = `
	SELECT id, project_id, consultant_id, match_score, status, proposal, price, created_at, updated_at
	FROM project_matches
`

func matchFields(m *models.ProjectMatch) []any {
	return []any{
		&m.ID,
		&m.ProjectID,
		&m.ConsultantID,
		&m.MatchScore,
		&m.Status,
		&m.Proposal,
		&m.Price,
		&m.CreatedAt,
		&m.UpdatedAt,
	}
}
