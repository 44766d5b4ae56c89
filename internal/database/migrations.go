package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

func RunMigrations(pool *pgxpool.Pool) error {
	ctx := context.Background()

	migrations := []string{
		createEnumTypes,
		createUsersTable,
		createConsultantProfilesTable,
		createProjectsTable,
		createProjectMatchesTable,
	}

	for i, migration := range migrations {
		log.Info().Int("step", i+1).Int("total", len(migrations)).Msg("running migration")
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Info().Msg("all migrations completed")
	return nil
}

const createEnumTypes = `
DO $$
BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'user_role_t') THEN
    CREATE TYPE user_role_t AS ENUM ('sme', 'consultant');
  END IF;
END$$;

DO $$
BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'project_status_t') THEN
    CREATE TYPE project_status_t AS ENUM ('open', 'in_progress', 'completed', 'cancelled');
  END IF;
END$$;

DO $$
BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'match_status_t') THEN
    CREATE TYPE match_status_t AS ENUM ('pending', 'accepted', 'rejected', 'completed');
  END IF;
END$$;
`

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  role user_role_t NOT NULL DEFAULT 'sme',
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);
`

const createConsultantProfilesTable = `
CREATE TABLE IF NOT EXISTS consultant_profiles (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  user_id UUID NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
  headline TEXT NOT NULL DEFAULT '',
  bio TEXT,
  expertise TEXT[] NOT NULL DEFAULT '{}',
  years_experience INT NOT NULL DEFAULT 0 CHECK (years_experience >= 0),
  hourly_rate NUMERIC(10,2),
  languages TEXT[] NOT NULL DEFAULT '{}',
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_consultant_profiles_user_id ON consultant_profiles(user_id);
`

const createProjectsTable = `
CREATE TABLE IF NOT EXISTS projects (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  owner_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  title TEXT NOT NULL,
  description TEXT NOT NULL,
  requirements TEXT NOT NULL,
  budget NUMERIC(12,2),
  deadline TIMESTAMP WITH TIME ZONE,
  status project_status_t NOT NULL DEFAULT 'open',
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_projects_owner_id ON projects(owner_id);
CREATE INDEX IF NOT EXISTS idx_projects_status ON projects(status);
`

const createProjectMatchesTable = `
CREATE TABLE IF NOT EXISTS project_matches (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
  consultant_id UUID NOT NULL REFERENCES consultant_profiles(id) ON DELETE CASCADE,
  match_score NUMERIC(3,2) NOT NULL CHECK (match_score >= 0 AND match_score <= 1),
  status match_status_t NOT NULL DEFAULT 'pending',
  proposal TEXT,
  price NUMERIC(12,2),
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  UNIQUE(project_id, consultant_id)
);

CREATE INDEX IF NOT EXISTS idx_project_matches_project_id ON project_matches(project_id);
CREATE INDEX IF NOT EXISTS idx_project_matches_consultant_id ON project_matches(consultant_id);
CREATE INDEX IF NOT EXISTS idx_project_matches_status ON project_matches(status);
`
