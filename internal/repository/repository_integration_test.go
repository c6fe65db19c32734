//go:build integration

package repository_test

import (
	"testing"
	"time"

	"github.com/linskybing/bootcamp-go/internal/domain/application"
	"github.com/linskybing/bootcamp-go/internal/domain/quote"
	"github.com/linskybing/bootcamp-go/internal/domain/testimonial"
	"github.com/linskybing/bootcamp-go/internal/repository"
	"github.com/linskybing/bootcamp-go/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestPostgres_ApplicationLifecycle(t *testing.T) {
	repos := repository.NewRepositories(testutils.SetupPostgres(t))

	app := &application.Application{
		FullName: "Ada", Email: "ada-" + time.Now().Format("150405.000") + "@example.com",
		WhatsApp: "+33600000000", Age: 22, City: "Lyon", Motivation: "ship things",
		HowDidYouKnow: "friend", Status: application.StatusPending,
	}
	require.NoError(t, repos.Application.Create(app))
	assert.NotEmpty(t, app.ID)

	exists, err := repos.Application.ExistsByEmail(app.Email)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repos.Application.UpdateStatus(app.ID, application.StatusAccepted, time.Now()))
	got, err := repos.Application.FindByID(app.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusAccepted, got.Status)
	assert.NotNil(t, got.UpdatedAt)

	require.NoError(t, repos.Application.Delete(app.ID))
	assert.ErrorIs(t, repos.Application.Delete(app.ID), gorm.ErrRecordNotFound)
}

func TestPostgres_QuoteNotesAndTestimonialMedia(t *testing.T) {
	repos := repository.NewRepositories(testutils.SetupPostgres(t))

	q := &quote.Quote{FullName: "Grace", Email: "grace@example.com", Phone: "0102030405",
		ServiceType: "Formation", Description: "team training", Status: quote.StatusPending}
	require.NoError(t, repos.Quote.Create(q))
	notes := "call back monday"
	require.NoError(t, repos.Quote.UpdateStatus(q.ID, quote.StatusApproved, &notes, time.Now()))
	require.NoError(t, repos.Quote.UpdateStatus(q.ID, quote.StatusCompleted, nil, time.Now()))
	got, err := repos.Quote.FindByID(q.ID)
	require.NoError(t, err)
	require.NotNil(t, got.AdminNotes)
	assert.Equal(t, notes, *got.AdminNotes)

	tm := &testimonial.Testimonial{Name: "Lin", Role: "alumni", Content: "great", Rating: 5,
		MediaURLs: []string{"https://media.test/a.png", "https://media.test/b.mp4"}, Status: testimonial.StatusPending}
	require.NoError(t, repos.Testimonial.Create(tm))
	stored, err := repos.Testimonial.FindByID(tm.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://media.test/a.png", "https://media.test/b.mp4"}, []string(stored.MediaURLs))
}
