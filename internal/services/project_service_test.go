package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecobridge/internal/errs"
	"ecobridge/internal/matching"
	"ecobridge/internal/models"
)

func newProjectService() (*ProjectService, *fakeProjectStore, *fakeMatchStore, *fakeConsultantStore) {
	projects := newFakeProjectStore()
	matches := newFakeMatchStore(projects)
	consultants := &fakeConsultantStore{}
	return NewProjectService(projects, matches, consultants), projects, matches, consultants
}

func TestCreateProjectGeneratesMatches(t *testing.T) {
	service, _, matchStore, consultants := newProjectService()
	ctx := context.Background()

	strong := models.ConsultantProfile{
		ID: uuid.New(), UserID: uuid.New(),
		Expertise:       []string{"Carbon Footprint Analysis", "Manufacturing"},
		YearsExperience: 12,
	}
	weak := models.ConsultantProfile{
		ID: uuid.New(), UserID: uuid.New(),
		Expertise:       []string{"Blockchain"},
		YearsExperience: 0,
	}
	consultants.profiles = []models.ConsultantProfile{weak, strong}

	ownerID := uuid.New()
	project, created, err := service.CreateProject(ctx, ownerID, CreateProjectRequest{
		Title:        "Carbon footprint assessment",
		Description:  "Measure the carbon footprint of our plant",
		Requirements: "Experience with manufacturing emissions",
	})
	require.NoError(t, err)
	require.NotNil(t, project)

	assert.Equal(t, models.ProjectOpen, project.Status)
	assert.Equal(t, ownerID, project.OwnerID)

	// only the strong consultant clears the threshold
	require.Len(t, created, 1)
	assert.Equal(t, strong.ID, created[0].ConsultantID)
	assert.Equal(t, models.MatchPending, created[0].Status)
	assert.GreaterOrEqual(t, created[0].MatchScore, matching.MinCombinedScore)

	persisted, err := matchStore.ListByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Len(t, persisted, 1)
}

func TestCreateProjectEmptyPool(t *testing.T) {
	service, _, matchStore, _ := newProjectService()
	ctx := context.Background()

	project, created, err := service.CreateProject(ctx, uuid.New(), CreateProjectRequest{
		Title:        "Energy audit",
		Description:  "Office building audit",
		Requirements: "Certified auditor",
	})
	require.NoError(t, err)
	assert.Empty(t, created)

	persisted, err := matchStore.ListByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestCreateProjectValidation(t *testing.T) {
	service, _, _, _ := newProjectService()

	_, _, err := service.CreateProject(context.Background(), uuid.New(), CreateProjectRequest{
		Title:        "   ",
		Description:  "x",
		Requirements: "y",
	})
	assert.True(t, errs.IsValidation(err))
}

func TestCreateProjectMatchPersistFailure(t *testing.T) {
	service, _, matchStore, consultants := newProjectService()

	consultants.profiles = []models.ConsultantProfile{{
		ID: uuid.New(), UserID: uuid.New(),
		Expertise:       []string{"Sustainability Strategy"},
		YearsExperience: 10,
	}}
	matchStore.batchErr = errors.New("insert failed")

	_, _, err := service.CreateProject(context.Background(), uuid.New(), CreateProjectRequest{
		Title:        "Sustainability strategy",
		Description:  "Company-wide sustainability roadmap",
		Requirements: "Strategy experience",
	})
	assert.Error(t, err)
}

func TestUpdateProjectPatch(t *testing.T) {
	service, _, _, _ := newProjectService()
	ctx := context.Background()

	ownerID := uuid.New()
	project, _, err := service.CreateProject(ctx, ownerID, CreateProjectRequest{
		Title:        "Original title",
		Description:  "Original description",
		Requirements: "Original requirements",
	})
	require.NoError(t, err)

	newTitle := "Updated title"
	budget := 12000.0
	updated, err := service.UpdateProject(ctx, project.ID, ownerID, models.ProjectPatch{
		Title:  &newTitle,
		Budget: &budget,
	})
	require.NoError(t, err)

	// patched fields applied, others untouched
	assert.Equal(t, "Updated title", updated.Title)
	require.NotNil(t, updated.Budget)
	assert.Equal(t, 12000.0, *updated.Budget)
	assert.Equal(t, "Original description", updated.Description)
	assert.Equal(t, "Original requirements", updated.Requirements)
}

func TestUpdateProjectGuards(t *testing.T) {
	service, projectStore, _, _ := newProjectService()
	ctx := context.Background()

	ownerID := uuid.New()
	project, _, err := service.CreateProject(ctx, ownerID, CreateProjectRequest{
		Title:        "Title",
		Description:  "Description",
		Requirements: "Requirements",
	})
	require.NoError(t, err)

	title := "New"

	_, err = service.UpdateProject(ctx, project.ID, ownerID, models.ProjectPatch{})
	assert.True(t, errs.IsValidation(err))

	_, err = service.UpdateProject(ctx, project.ID, uuid.New(), models.ProjectPatch{Title: &title})
	assert.True(t, errs.IsPermissionDenied(err))

	_, err = service.UpdateProject(ctx, uuid.New(), ownerID, models.ProjectPatch{Title: &title})
	assert.True(t, errs.IsNotFound(err))

	// no edits once the project left the open state
	projectStore.setStatus(project.ID, models.ProjectInProgress)
	_, err = service.UpdateProject(ctx, project.ID, ownerID, models.ProjectPatch{Title: &title})
	assert.True(t, errs.IsValidation(err))
}

func TestDeleteProjectOwnerOnly(t *testing.T) {
	service, projectStore, _, _ := newProjectService()
	ctx := context.Background()

	ownerID := uuid.New()
	project, _, err := service.CreateProject(ctx, ownerID, CreateProjectRequest{
		Title:        "Title",
		Description:  "Description",
		Requirements: "Requirements",
	})
	require.NoError(t, err)

	err = service.DeleteProject(ctx, project.ID, uuid.New())
	assert.True(t, errs.IsPermissionDenied(err))

	require.NoError(t, service.DeleteProject(ctx, project.ID, ownerID))

	stored, err := projectStore.GetByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)
}
