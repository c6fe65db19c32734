package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/bootcamp-go/internal/domain/submission"
	"github.com/linskybing/bootcamp-go/internal/domain/testimonial"
	"github.com/linskybing/bootcamp-go/internal/media"
	"github.com/linskybing/bootcamp-go/internal/repository"
	"github.com/linskybing/bootcamp-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestimonialServiceMocks(t *testing.T, store media.Store) (*TestimonialService, *mock.MockTestimonialRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockRepo := mock.NewMockTestimonialRepo(ctrl)
	return NewTestimonialService(&repository.Repos{Testimonial: mockRepo}, store), mockRepo
}

func validTestimonial() testimonial.CreateTestimonialInput {
	return testimonial.CreateTestimonialInput{Name: "Chloe", Role: "Alumni", Content: "Loved it", Rating: 5}
}

func imageFile(name string) testimonial.MediaFile {
	return testimonial.MediaFile{Filename: name, ContentType: "image/png", Size: 3, Body: strings.NewReader("png")}
}

func TestCreateTestimonial_WithMedia(t *testing.T) {
	store := media.NewMemoryStore("http://cdn.test")
	svc, mockRepo := setupTestimonialServiceMocks(t, store)
	mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	got, err := svc.Create(context.Background(), validTestimonial(), []testimonial.MediaFile{imageFile("a.png")})
	require.NoError(t, err)
	assert.Equal(t, testimonial.StatusPending, got.Status)
	require.Len(t, got.MediaURLs, 1)
	assert.True(t, strings.HasPrefix(got.MediaURLs[0], "http://cdn.test/"))
}

func TestCreateTestimonial_RemovesUploadsOnFailure(t *testing.T) {
	store := media.NewMemoryStore("http://cdn.test")
	svc, mockRepo := setupTestimonialServiceMocks(t, store)
	mockRepo.EXPECT().Create(gomock.Any()).Return(errors.New("db down"))

	_, err := svc.Create(context.Background(), validTestimonial(), []testimonial.MediaFile{imageFile("a.png")})
	assert.Error(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestCreateTestimonial_MediaDisabled(t *testing.T) {
	svc, _ := setupTestimonialServiceMocks(t, nil)
	_, err := svc.Create(context.Background(), validTestimonial(), []testimonial.MediaFile{imageFile("a.png")})
	assert.ErrorIs(t, err, ErrMediaDisabled)
	assert.ErrorIs(t, err, media.ErrDisabled)
}

func TestCreateTestimonial_BadRatingAndFileType(t *testing.T) {
	store := media.NewMemoryStore("http://cdn.test")
	svc, _ := setupTestimonialServiceMocks(t, store)

	input := validTestimonial()
	input.Rating = 6
	_, err := svc.Create(context.Background(), input, nil)
	assert.ErrorIs(t, err, submission.ErrValidation)

	pdf := testimonial.MediaFile{Filename: "cv.pdf", ContentType: "application/pdf", Size: 1, Body: strings.NewReader("x")}
	_, err = svc.Create(context.Background(), validTestimonial(), []testimonial.MediaFile{imageFile("a.png"), pdf})
	assert.ErrorIs(t, err, submission.ErrValidation)
	assert.Equal(t, 0, store.Len())
}

func TestListPublicTestimonials_ApprovedOnly(t *testing.T) {
	svc, mockRepo := setupTestimonialServiceMocks(t, nil)
	approved := testimonial.StatusApproved
	stored := []testimonial.Testimonial{
		{Name: "A", Status: testimonial.StatusApproved},
		{Name: "B", Status: testimonial.StatusPending},
		{Name: "C", Status: testimonial.StatusApproved},
	}
	mockRepo.EXPECT().List(repository.ListParams{Status: &approved, Limit: 3}).Return(stored, nil)

	got, err := svc.ListPublic(3)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, tm := range got {
		assert.True(t, tm.Public(), tm.Name)
	}
	assert.Equal(t, "C", got[1].Name)
}

func TestCreateTestimonial_WithoutFilesHasNoMedia(t *testing.T) {
	svc, mockRepo := setupTestimonialServiceMocks(t, nil)
	mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	got, err := svc.Create(context.Background(), validTestimonial(), nil)
	require.NoError(t, err)
	assert.NotNil(t, got.MediaURLs)
	assert.Empty(t, got.MediaURLs)
}
