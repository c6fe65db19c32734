package client_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/linskybing/bootcamp-go/internal/api/middleware"
	"github.com/linskybing/bootcamp-go/internal/config"
	"github.com/linskybing/bootcamp-go/internal/domain/application"
	"github.com/linskybing/bootcamp-go/internal/domain/contact"
	"github.com/linskybing/bootcamp-go/internal/domain/quote"
	"github.com/linskybing/bootcamp-go/internal/domain/submission"
	"github.com/linskybing/bootcamp-go/internal/domain/testimonial"
	"github.com/linskybing/bootcamp-go/internal/domain/user"
	"github.com/linskybing/bootcamp-go/internal/testutils"
	"github.com/linskybing/bootcamp-go/pkg/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*testutils.Env, *client.Client) {
	t.Helper()
	env := testutils.SetupRouter(t)
	srv := httptest.NewServer(env.Router)
	t.Cleanup(srv.Close)
	return env, client.New(srv.URL+config.APIPrefix, nil)
}

func login(t *testing.T, c *client.Client) {
	t.Helper()
	_, err := c.Login(context.Background(), testutils.AdminUsername, testutils.AdminPassword)
	require.NoError(t, err)
}

func applicationForm(email string) client.ApplicationForm {
	return client.ApplicationForm{
		FullName:      "Ada Lovelace",
		Email:         email,
		WhatsApp:      "+33600000000",
		Age:           "21",
		City:          "Paris",
		HasComputer:   true,
		Motivation:    "build things",
		HoursPerWeek:  "10h",
		HowDidYouKnow: "friend",
	}
}

func TestSubmitApplication_StartsPending(t *testing.T) {
	env, c := setup(t)
	ctx := context.Background()

	app, err := c.SubmitApplication(ctx, applicationForm("ada@example.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, app.ID)
	assert.Equal(t, application.StatusPending, app.Status)
	assert.Equal(t, 10, app.HoursPerWeek)
	assert.False(t, app.CreatedAt.IsZero())

	sent := env.Mail.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "ada@example.com", sent[0].To[0].Address)
}

func TestSubmitApplication_EmptyHoursIsZero(t *testing.T) {
	_, c := setup(t)
	form := applicationForm("zero@example.com")
	form.HoursPerWeek = ""

	app, err := c.SubmitApplication(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, 0, app.HoursPerWeek)
}

func TestSubmitApplication_DuplicateEmail(t *testing.T) {
	_, c := setup(t)
	ctx := context.Background()

	_, err := c.SubmitApplication(ctx, applicationForm("dup@example.com"))
	require.NoError(t, err)
	_, err = c.SubmitApplication(ctx, applicationForm("dup@example.com"))
	assert.ErrorIs(t, err, client.ErrValidation)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.StatusCode)
}

func TestSubmit_ValidationFailsBeforeRequest(t *testing.T) {
	// Nothing listens here; a request would surface as ErrNetwork.
	c := client.New("http://127.0.0.1:1", nil)
	form := applicationForm("not-an-email")
	form.Age = "14"
	form.City = "  "

	_, err := c.Submit(context.Background(), form)
	require.ErrorIs(t, err, client.ErrValidation)
	assert.NotErrorIs(t, err, client.ErrNetwork)

	var verr *submission.ValidationError
	require.ErrorAs(t, err, &verr)
	fields := map[string]bool{}
	for _, f := range verr.Fields {
		fields[f.Field] = true
	}
	assert.True(t, fields["email"])
	assert.True(t, fields["age"])
	assert.True(t, fields["city"])
	assert.Equal(t, "  ", form.City)
}

func TestSubmit_CoercionErrors(t *testing.T) {
	c := client.New("http://127.0.0.1:1", nil)
	ctx := context.Background()

	_, err := c.SubmitTestimonial(ctx, client.TestimonialForm{Name: "Lin", Role: "alumni", Content: "great", Rating: "six"})
	assert.ErrorIs(t, err, client.ErrValidation)

	_, err = c.SubmitTestimonial(ctx, client.TestimonialForm{Name: "Lin", Role: "alumni", Content: "great", Rating: "6"})
	assert.ErrorIs(t, err, client.ErrValidation)

	_, err = c.SubmitQuote(ctx, client.QuoteForm{
		FullName: "Grace", Email: "grace@example.com", Phone: "0102", ServiceType: "Formation",
		Description: "training", Budget: "lots",
	})
	assert.ErrorIs(t, err, client.ErrValidation)
}

func TestSubmitQuote_UnknownServiceTypeRejectedByServer(t *testing.T) {
	_, c := setup(t)
	_, err := c.SubmitQuote(context.Background(), client.QuoteForm{
		FullName: "Grace", Email: "grace@example.com", Phone: "0102030405",
		ServiceType: "Astrology", Description: "stars",
	})
	assert.ErrorIs(t, err, client.ErrValidation)
}

func TestLogin_AdminAndFailures(t *testing.T) {
	env, c := setup(t)
	ctx := context.Background()

	_, err := c.Login(ctx, testutils.AdminUsername, "wrong-password")
	assert.ErrorIs(t, err, client.ErrInvalidCredentials)
	assert.Equal(t, client.Anonymous, c.Session().State())

	_, err = env.Services.User.Create(user.CreateUserInput{
		Username: "staff", Email: "staff@example.com", FullName: "Staff", Password: "password123",
	})
	require.NoError(t, err)
	_, err = c.Login(ctx, "staff", "password123")
	assert.ErrorIs(t, err, client.ErrInsufficientPrivilege)
	assert.ErrorIs(t, err, client.ErrForbidden)
	_, ok := c.Session().Token()
	assert.False(t, ok)
	assert.Equal(t, client.Anonymous, c.Session().State())

	u, err := c.Login(ctx, testutils.AdminUsername, testutils.AdminPassword)
	require.NoError(t, err)
	assert.True(t, u.IsAdmin)
	assert.Equal(t, client.Authenticated, c.Session().State())

	me, err := c.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, testutils.AdminUsername, me.Username)
}

func TestModeration_RequiresCredential(t *testing.T) {
	_, c := setup(t)
	_, err := client.List[application.Application](context.Background(), c, client.Filter{})
	assert.ErrorIs(t, err, client.ErrUnauthorized)
}

func TestModeration_ExpiredTokenDropsSession(t *testing.T) {
	env, c := setup(t)
	ctx := context.Background()
	login(t, c)

	var mu sync.Mutex
	var seen []client.State
	c.Session().OnTransition(func(_, to client.State) {
		mu.Lock()
		seen = append(seen, to)
		mu.Unlock()
	})

	token, ok := c.Session().Token()
	require.True(t, ok)
	claims, err := middleware.ParseToken(token)
	require.NoError(t, err)
	require.NoError(t, env.Tokens.Revoke(ctx, claims.ID, time.Now().Add(time.Hour)))

	_, err = client.List[quote.Quote](ctx, c, client.Filter{})
	assert.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Equal(t, client.Anonymous, c.Session().State())
	mu.Lock()
	assert.Equal(t, []client.State{client.Expired, client.Anonymous}, seen)
	mu.Unlock()

	_, ok = c.Session().Token()
	assert.False(t, ok)
	_, err = client.List[quote.Quote](ctx, c, client.Filter{})
	assert.ErrorIs(t, err, client.ErrUnauthorized)
}

func TestLogout_RevokesAndIsIdempotent(t *testing.T) {
	_, c := setup(t)
	ctx := context.Background()
	login(t, c)

	c.Logout(ctx)
	assert.Equal(t, client.Anonymous, c.Session().State())
	c.Logout(ctx)
	assert.Equal(t, client.Anonymous, c.Session().State())
}

func TestUpdateStatus_PermissiveTransitions(t *testing.T) {
	_, c := setup(t)
	ctx := context.Background()
	app, err := c.SubmitApplication(ctx, applicationForm("moves@example.com"))
	require.NoError(t, err)
	login(t, c)

	for _, st := range []submission.Status{application.StatusAccepted, application.StatusPending, application.StatusWaitlisted, application.StatusWaitlisted} {
		got, err := client.UpdateStatus[application.Application](ctx, c, app.ID, st, nil)
		require.NoError(t, err)
		assert.Equal(t, st, got.Status)
	}

	_, err = client.UpdateStatus[application.Application](ctx, c, app.ID, "archived", nil)
	assert.ErrorIs(t, err, client.ErrValidation)

	_, err = client.UpdateStatus[application.Application](ctx, c, "missing-id", application.StatusAccepted, nil)
	assert.ErrorIs(t, err, client.ErrNotFound)
}

func TestUpdateStatus_QuoteNotes(t *testing.T) {
	_, c := setup(t)
	ctx := context.Background()
	q, err := c.SubmitQuote(ctx, client.QuoteForm{
		FullName: "Grace", Email: "grace@example.com", Phone: "0102030405",
		ServiceType: "Formation", Description: "team training", Budget: "1500,50",
	})
	require.NoError(t, err)
	require.NotNil(t, q.Budget)
	assert.InDelta(t, 1500.5, *q.Budget, 0.001)
	assert.Nil(t, q.AdminNotes)
	login(t, c)

	notes := "call back"
	got, err := client.UpdateStatus[quote.Quote](ctx, c, q.ID, quote.StatusApproved, &notes)
	require.NoError(t, err)
	require.NotNil(t, got.AdminNotes)
	assert.Equal(t, notes, *got.AdminNotes)

	got, err = client.UpdateStatus[quote.Quote](ctx, c, q.ID, quote.StatusCompleted, nil)
	require.NoError(t, err)
	assert.Equal(t, quote.StatusCompleted, got.Status)
	require.NotNil(t, got.AdminNotes)
	assert.Equal(t, notes, *got.AdminNotes)

	_, err = client.UpdateStatus[application.Application](ctx, c, q.ID, application.StatusAccepted, &notes)
	assert.ErrorIs(t, err, client.ErrValidation)
}

func TestDelete_TwiceReportsNotFound(t *testing.T) {
	_, c := setup(t)
	ctx := context.Background()
	msg, err := c.SubmitContact(ctx, client.ContactForm{FullName: "Bob", Email: "bob@example.com", Message: "hi"})
	require.NoError(t, err)
	login(t, c)

	require.NoError(t, client.Delete[contact.Contact](ctx, c, msg.ID))
	err = client.Delete[contact.Contact](ctx, c, msg.ID)
	assert.ErrorIs(t, err, client.ErrNotFound)
}

func TestOpenContact_MarksReadOnce(t *testing.T) {
	env, c := setup(t)
	ctx := context.Background()
	msg, err := c.SubmitContact(ctx, client.ContactForm{FullName: "Bob", Email: "bob@example.com", Message: "hello there"})
	require.NoError(t, err)
	assert.False(t, msg.IsRead)
	assert.Len(t, env.Mail.Sent(), 1)
	login(t, c)

	unread, err := client.List[contact.Contact](ctx, c, client.Filter{Status: contact.StatusUnread})
	require.NoError(t, err)
	assert.Len(t, unread, 1)

	opened, err := client.OpenContact(ctx, c, msg.ID)
	require.NoError(t, err)
	assert.True(t, opened.IsRead)

	again, err := client.OpenContact(ctx, c, msg.ID)
	require.NoError(t, err)
	assert.True(t, again.IsRead)

	unread, err = client.List[contact.Contact](ctx, c, client.Filter{Status: contact.StatusUnread})
	require.NoError(t, err)
	assert.Empty(t, unread)

	_, err = client.UpdateStatus[contact.Contact](ctx, c, msg.ID, contact.StatusUnread, nil)
	assert.ErrorIs(t, err, client.ErrValidation)
}

func TestList_FilterAndSearch(t *testing.T) {
	_, c := setup(t)
	ctx := context.Background()
	first, err := c.SubmitApplication(ctx, applicationForm("first@example.com"))
	require.NoError(t, err)
	form := applicationForm("second@example.com")
	form.FullName = "Grace Hopper"
	_, err = c.SubmitApplication(ctx, form)
	require.NoError(t, err)
	login(t, c)

	_, err = client.UpdateStatus[application.Application](ctx, c, first.ID, application.StatusReviewing, nil)
	require.NoError(t, err)

	all, err := client.List[application.Application](ctx, c, client.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.False(t, all[0].CreatedAt.Before(all[1].CreatedAt))

	reviewing, err := client.List[application.Application](ctx, c, client.Filter{Status: application.StatusReviewing})
	require.NoError(t, err)
	require.Len(t, reviewing, 1)
	assert.Equal(t, first.ID, reviewing[0].ID)

	found, err := client.List[application.Application](ctx, c, client.Filter{Search: "HOPPER"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "second@example.com", found[0].Email)

	_, err = client.List[application.Application](ctx, c, client.Filter{Status: "archived"})
	assert.ErrorIs(t, err, client.ErrValidation)
}

func TestList_FollowsSmallerServerPages(t *testing.T) {
	env := testutils.SetupRouter(t)
	var calls int
	clamped := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if n, err := strconv.Atoi(q.Get("limit")); err == nil && n > 2 {
			calls++
			q.Set("limit", "2")
			r.URL.RawQuery = q.Encode()
		}
		env.Router.ServeHTTP(w, r)
	})
	srv := httptest.NewServer(clamped)
	t.Cleanup(srv.Close)
	c := client.New(srv.URL+config.APIPrefix, nil)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := c.SubmitContact(ctx, client.ContactForm{FullName: "Bob", Email: "bob@example.com", Message: "msg " + strconv.Itoa(i)})
		require.NoError(t, err)
	}
	login(t, c)

	all, err := client.List[contact.Contact](ctx, c, client.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 5)
	assert.Equal(t, 4, calls)
}

func TestTestimonial_MultipartAndPublicWall(t *testing.T) {
	env, c := setup(t)
	ctx := context.Background()

	created, err := c.SubmitTestimonial(ctx, client.TestimonialForm{
		Name: "Lin", Role: "alumni", Content: "life changing", Rating: "5",
		Files: []client.Attachment{{Filename: "me.png", ContentType: "image/png", Body: bytes.NewReader([]byte("png"))}},
	})
	require.NoError(t, err)
	assert.Equal(t, testimonial.StatusPending, created.Status)
	require.Len(t, created.MediaURLs, 1)
	assert.True(t, strings.HasPrefix(created.MediaURLs[0], "https://media.test/"))
	assert.Equal(t, 1, env.Media.Len())

	_, err = c.SubmitTestimonial(ctx, client.TestimonialForm{
		Name: "Lin", Role: "alumni", Content: "notes", Rating: "4",
		Files: []client.Attachment{{Filename: "notes.txt", ContentType: "text/plain", Body: strings.NewReader("x")}},
	})
	assert.ErrorIs(t, err, client.ErrValidation)
	assert.Equal(t, 1, env.Media.Len())

	public, err := c.PublicTestimonials(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, public)

	login(t, c)
	_, err = client.UpdateStatus[testimonial.Testimonial](ctx, c, created.ID, testimonial.StatusApproved, nil)
	require.NoError(t, err)

	public, err = c.PublicTestimonials(ctx, 10)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, created.ID, public[0].ID)
}

func TestActivities_MergedNewestFirst(t *testing.T) {
	_, c := setup(t)
	ctx := context.Background()

	_, err := c.SubmitApplication(ctx, applicationForm("a1@example.com"))
	require.NoError(t, err)
	_, err = c.SubmitQuote(ctx, client.QuoteForm{
		FullName: "Grace", Email: "grace@example.com", Phone: "0102030405",
		ServiceType: "Formation", Description: "training",
	})
	require.NoError(t, err)
	_, err = c.SubmitContact(ctx, client.ContactForm{FullName: "Bob", Email: "bob@example.com", Message: "hi"})
	require.NoError(t, err)
	_, err = c.SubmitApplication(ctx, applicationForm("a2@example.com"))
	require.NoError(t, err)
	login(t, c)

	items, err := c.Activities(ctx, 3)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].Timestamp.After(items[i-1].Timestamp))
	}
	for _, it := range items {
		assert.Equal(t, "just now", it.Ago)
	}

	all, err := c.Activities(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	server, err := c.ServerActivities(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, server, 4)

	stats, err := c.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats[submission.KindApplication].Total)
	assert.Equal(t, int64(2), stats[submission.KindApplication].ByStatus[application.StatusPending])
	assert.Equal(t, int64(1), stats[submission.KindContact].ByStatus[contact.StatusUnread])
}

func TestServiceTypes(t *testing.T) {
	_, c := setup(t)
	types, err := c.ServiceTypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, quote.DefaultServiceTypes, types)
}
