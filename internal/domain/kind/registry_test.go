package kind

import (
	"net/http"
	"testing"

	"github.com/linskybing/bootcamp-go/internal/domain/submission"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	for _, k := range []submission.Kind{
		submission.KindApplication, submission.KindQuote,
		submission.KindContact, submission.KindTestimonial,
	} {
		s, err := Lookup(k)
		require.NoError(t, err)
		assert.Equal(t, k, s.Kind)
		assert.True(t, s.Statuses.Has(s.Statuses.Initial), "initial status of %s must be a state", k)
		for _, target := range s.Statuses.Targets {
			assert.True(t, s.Statuses.Has(target))
		}
	}

	_, err := Lookup("invoice")
	assert.Error(t, err)
}

func TestSpecPaths(t *testing.T) {
	q := MustLookup(submission.KindQuote)
	assert.Equal(t, "/quotes/abc/status", q.StatusPath("abc"))
	assert.Equal(t, http.MethodPatch, q.StatusMethod)

	a := MustLookup(submission.KindApplication)
	assert.Equal(t, "/applications/abc", a.StatusPath("abc"))
	assert.Equal(t, "/applications", a.ListPath())

	tm := MustLookup(submission.KindTestimonial)
	assert.Equal(t, "/testimonials/admin", tm.ListPath())
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	require.Len(t, all, 4)
	all[0].Path = "/changed"
	assert.Equal(t, "/applications", All()[0].Path)
}
