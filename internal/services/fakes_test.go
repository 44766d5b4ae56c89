package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"ecobridge/internal/models"
)

// In-memory stores mirroring the repository semantics, including the
// transactional cascades of the match repository.

type fakeProjectStore struct {
	projects map[uuid.UUID]*models.Project
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{projects: make(map[uuid.UUID]*models.Project)}
}

func (f *fakeProjectStore) Create(_ context.Context, project *models.Project) error {
	project.Prepare()
	copied := *project
	f.projects[project.ID] = &copied
	return nil
}

func (f *fakeProjectStore) GetByID(_ context.Context, id uuid.UUID) (*models.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProjectStore) ListByOwner(_ context.Context, ownerID uuid.UUID, pg models.Pagination) ([]models.Project, error) {
	var out []models.Project
	for _, p := range f.projects {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProjectStore) UpdateContent(_ context.Context, project *models.Project) error {
	stored, ok := f.projects[project.ID]
	if !ok {
		return errors.New("project not found")
	}
	stored.Title = project.Title
	stored.Description = project.Description
	stored.Requirements = project.Requirements
	stored.Budget = project.Budget
	stored.Deadline = project.Deadline
	return nil
}

func (f *fakeProjectStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.projects, id)
	return nil
}

func (f *fakeProjectStore) setStatus(id uuid.UUID, status models.ProjectStatus) {
	if p, ok := f.projects[id]; ok {
		p.Status = status
	}
}

type fakeMatchStore struct {
	projectStore *fakeProjectStore
	matches      map[uuid.UUID]*models.ProjectMatch
	order        []uuid.UUID
	batchErr     error
}

func newFakeMatchStore(projectStore *fakeProjectStore) *fakeMatchStore {
	return &fakeMatchStore{
		projectStore: projectStore,
		matches:      make(map[uuid.UUID]*models.ProjectMatch),
	}
}

func (f *fakeMatchStore) CreateBatch(_ context.Context, matches []models.ProjectMatch) error {
	if f.batchErr != nil {
		return f.batchErr
	}
	for i := range matches {
		matches[i].Prepare()
		copied := matches[i]
		f.matches[copied.ID] = &copied
		f.order = append(f.order, copied.ID)
	}
	return nil
}

func (f *fakeMatchStore) GetByID(_ context.Context, id uuid.UUID) (*models.ProjectMatch, error) {
	m, ok := f.matches[id]
	if !ok {
		return nil, nil
	}
	copied := *m
	return &copied, nil
}

func (f *fakeMatchStore) ListByProject(_ context.Context, projectID uuid.UUID) ([]models.ProjectMatch, error) {
	var out []models.ProjectMatch
	for _, id := range f.order {
		if m := f.matches[id]; m.ProjectID == projectID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMatchStore) ListByConsultant(_ context.Context, consultantID uuid.UUID, status *models.MatchStatus, pg models.Pagination) ([]models.ConsultantMatch, error) {
	var out []models.ConsultantMatch
	for _, id := range f.order {
		m := f.matches[id]
		if m.ConsultantID != consultantID {
			continue
		}
		if status != nil && m.Status != *status {
			continue
		}
		project, _ := f.projectStore.GetByID(context.Background(), m.ProjectID)
		out = append(out, models.ConsultantMatch{Match: *m, Project: *project})
	}
	return out, nil
}

func (f *fakeMatchStore) UpdateProposal(_ context.Context, id uuid.UUID, proposal string, price float64) error {
	m, ok := f.matches[id]
	if !ok {
		return errors.New("match not found")
	}
	m.Proposal = &proposal
	m.Price = &price
	return nil
}

func (f *fakeMatchStore) UpdateStatus(_ context.Context, id uuid.UUID, status models.MatchStatus) error {
	m, ok := f.matches[id]
	if !ok {
		return errors.New("match not found")
	}
	m.Status = status
	return nil
}

func (f *fakeMatchStore) Accept(_ context.Context, matchID, projectID uuid.UUID) error {
	m, ok := f.matches[matchID]
	if !ok {
		return errors.New("match not found")
	}
	if m.Status != models.MatchPending {
		return errors.New("match not pending")
	}
	m.Status = models.MatchAccepted
	for _, sibling := range f.matches {
		if sibling.ProjectID == projectID && sibling.ID != matchID && sibling.Status == models.MatchPending {
			sibling.Status = models.MatchRejected
		}
	}
	f.projectStore.setStatus(projectID, models.ProjectInProgress)
	return nil
}

func (f *fakeMatchStore) Complete(_ context.Context, matchID, projectID uuid.UUID) error {
	m, ok := f.matches[matchID]
	if !ok {
		return errors.New("match not found")
	}
	m.Status = models.MatchCompleted
	f.projectStore.setStatus(projectID, models.ProjectCompleted)
	return nil
}

type fakeConsultantStore struct {
	profiles []models.ConsultantProfile
}

func (f *fakeConsultantStore) GetByID(_ context.Context, id uuid.UUID) (*models.ConsultantProfile, error) {
	for i := range f.profiles {
		if f.profiles[i].ID == id {
			copied := f.profiles[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeConsultantStore) GetByUserID(_ context.Context, userID uuid.UUID) (*models.ConsultantProfile, error) {
	for i := range f.profiles {
		if f.profiles[i].UserID == userID {
			copied := f.profiles[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeConsultantStore) ListAll(_ context.Context) ([]models.ConsultantProfile, error) {
	return append([]models.ConsultantProfile(nil), f.profiles...), nil
}
