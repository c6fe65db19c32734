package application

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/bootcamp-go/internal/domain/application"
	"github.com/linskybing/bootcamp-go/internal/domain/submission"
	"github.com/linskybing/bootcamp-go/internal/mail"
	"github.com/linskybing/bootcamp-go/internal/repository"
	"github.com/linskybing/bootcamp-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupApplicationServiceMocks(t *testing.T) (*ApplicationService, *mock.MockApplicationRepo, *mail.Recorder) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockApp := mock.NewMockApplicationRepo(ctrl)
	repos := &repository.Repos{
		Application: mockApp,
	}
	rec := &mail.Recorder{}
	svc := NewApplicationService(repos, rec)
	svc.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	return svc, mockApp, rec
}

func validApplicationInput() application.CreateApplicationInput {
	return application.CreateApplicationInput{
		FullName:      " Ada Lovelace ",
		Email:         "Ada@Test.com",
		WhatsApp:      "+229 00 00 00",
		Age:           22,
		City:          "Cotonou",
		Motivation:    "I want to build apps",
		HoursPerWeek:  10,
		HowDidYouKnow: "friend",
	}
}

// --------------------- Create ---------------------
func TestCreateApplication_Success(t *testing.T) {
	svc, mockApp, rec := setupApplicationServiceMocks(t)

	mockApp.EXPECT().ExistsByEmail("ada@test.com").Return(false, nil)
	mockApp.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *application.Application) error {
		a.ID = "app-1"
		return nil
	})

	app, err := svc.Create(validApplicationInput())
	require.NoError(t, err)
	assert.Equal(t, "app-1", app.ID)
	assert.Equal(t, application.StatusPending, app.Status)
	assert.Equal(t, "Ada Lovelace", app.FullName)
	require.Len(t, rec.Sent(), 1)
	assert.Equal(t, "ada@test.com", rec.Sent()[0].To[0].Address)
}

func TestCreateApplication_Duplicate(t *testing.T) {
	svc, mockApp, rec := setupApplicationServiceMocks(t)

	mockApp.EXPECT().ExistsByEmail("ada@test.com").Return(true, nil)

	_, err := svc.Create(validApplicationInput())
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Empty(t, rec.Sent())
}

func TestCreateApplication_UniqueIndexRace(t *testing.T) {
	svc, mockApp, rec := setupApplicationServiceMocks(t)

	mockApp.EXPECT().ExistsByEmail("ada@test.com").Return(false, nil)
	mockApp.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, err := svc.Create(validApplicationInput())
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Empty(t, rec.Sent())
}

func TestCreateApplication_ValidationBeforeRepo(t *testing.T) {
	svc, _, _ := setupApplicationServiceMocks(t)

	input := validApplicationInput()
	input.Age = 12
	input.Email = "nope"
	_, err := svc.Create(input)
	require.ErrorIs(t, err, submission.ErrValidation)

	var verr *submission.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 2)
}

// --------------------- List ---------------------
func TestListApplications_UnknownStatus(t *testing.T) {
	svc, _, _ := setupApplicationServiceMocks(t)
	_, err := svc.List(ListQuery{Status: "archived"})
	assert.ErrorIs(t, err, submission.ErrValidation)
}

func TestListApplications_PassesFilter(t *testing.T) {
	svc, mockApp, _ := setupApplicationServiceMocks(t)
	accepted := application.StatusAccepted
	mockApp.EXPECT().List(repository.ListParams{Status: &accepted, Skip: 5, Limit: 10}).
		Return([]application.Application{{Status: accepted}}, nil)

	apps, err := svc.List(ListQuery{Status: "accepted", Skip: 5, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, apps, 1)
}

// --------------------- UpdateStatus ---------------------
func TestUpdateApplicationStatus_AnyTarget(t *testing.T) {
	svc, mockApp, _ := setupApplicationServiceMocks(t)

	current := application.Application{Status: application.StatusRejected}
	current.ID = "a1"
	updated := current
	updated.Status = application.StatusReviewing

	gomock.InOrder(
		mockApp.EXPECT().FindByID("a1").Return(current, nil),
		mockApp.EXPECT().UpdateStatus("a1", application.StatusReviewing, svc.now()).Return(nil),
		mockApp.EXPECT().FindByID("a1").Return(updated, nil),
	)

	got, err := svc.UpdateStatus("a1", application.StatusReviewing)
	require.NoError(t, err)
	assert.Equal(t, application.StatusReviewing, got.Status)
}

func TestUpdateApplicationStatus_InvalidTarget(t *testing.T) {
	svc, mockApp, _ := setupApplicationServiceMocks(t)
	mockApp.EXPECT().FindByID("a1").Return(application.Application{Status: application.StatusPending}, nil)

	_, err := svc.UpdateStatus("a1", "approved")
	assert.ErrorIs(t, err, submission.ErrValidation)
}

func TestUpdateApplicationStatus_NotFound(t *testing.T) {
	svc, mockApp, _ := setupApplicationServiceMocks(t)
	mockApp.EXPECT().FindByID("missing").Return(application.Application{}, gorm.ErrRecordNotFound)

	_, err := svc.UpdateStatus("missing", application.StatusAccepted)
	assert.ErrorIs(t, err, ErrNotFound)
}

// --------------------- Delete ---------------------
func TestDeleteApplication_TwiceIsNotFound(t *testing.T) {
	svc, mockApp, _ := setupApplicationServiceMocks(t)
	gomock.InOrder(
		mockApp.EXPECT().Delete("a1").Return(nil),
		mockApp.EXPECT().Delete("a1").Return(gorm.ErrRecordNotFound),
	)

	assert.NoError(t, svc.Delete("a1"))
	assert.ErrorIs(t, svc.Delete("a1"), ErrNotFound)
}
