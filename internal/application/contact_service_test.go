package application

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/bootcamp-go/internal/domain/contact"
	"github.com/linskybing/bootcamp-go/internal/domain/submission"
	"github.com/linskybing/bootcamp-go/internal/mail"
	"github.com/linskybing/bootcamp-go/internal/repository"
	"github.com/linskybing/bootcamp-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupContactServiceMocks(t *testing.T) (*ContactService, *mock.MockContactRepo, *mail.Recorder) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockContact := mock.NewMockContactRepo(ctrl)
	rec := &mail.Recorder{}
	svc := NewContactService(&repository.Repos{Contact: mockContact}, rec, "staff@test.com")
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }
	return svc, mockContact, rec
}

func TestCreateContact_NotifiesStaff(t *testing.T) {
	svc, mockContact, rec := setupContactServiceMocks(t)
	mockContact.EXPECT().Create(gomock.Any()).Return(nil)

	c, err := svc.Create(contact.CreateContactInput{FullName: "Eve", Email: "eve@test.com", Message: "Hello"})
	require.NoError(t, err)
	assert.False(t, c.IsRead)
	require.Len(t, rec.Sent(), 1)
	assert.Equal(t, "staff@test.com", rec.Sent()[0].To[0].Address)
}

func TestUpdateContactStatus_MarksReadOnce(t *testing.T) {
	svc, mockContact, _ := setupContactServiceMocks(t)
	gomock.InOrder(
		mockContact.EXPECT().FindByID("c1").Return(contact.Contact{IsRead: false}, nil),
		mockContact.EXPECT().MarkRead("c1", svc.now()).Return(nil),
		mockContact.EXPECT().FindByID("c1").Return(contact.Contact{IsRead: true}, nil),
	)

	c, err := svc.UpdateStatus("c1", contact.StatusRead)
	require.NoError(t, err)
	assert.True(t, c.IsRead)
}

func TestUpdateContactStatus_AlreadyRead(t *testing.T) {
	svc, mockContact, _ := setupContactServiceMocks(t)
	mockContact.EXPECT().FindByID("c1").Return(contact.Contact{IsRead: true}, nil)

	c, err := svc.UpdateStatus("c1", contact.StatusRead)
	require.NoError(t, err)
	assert.True(t, c.IsRead)
}

func TestUpdateContactStatus_UnreadIsRejected(t *testing.T) {
	svc, mockContact, _ := setupContactServiceMocks(t)
	mockContact.EXPECT().FindByID("c1").Return(contact.Contact{IsRead: true}, nil)

	_, err := svc.UpdateStatus("c1", contact.StatusUnread)
	assert.ErrorIs(t, err, submission.ErrValidation)
}
