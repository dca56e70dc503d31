package ds

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestCanTransitionTo(t *testing.T) {
	allowed := map[ProjectStatus][]ProjectStatus{
		StatusDraft:  {StatusFormed, StatusDeleted},
		StatusFormed: {StatusCompleted, StatusRejected},
	}
	all := []ProjectStatus{StatusDraft, StatusFormed, StatusCompleted, StatusRejected, StatusDeleted}

	for _, from := range all {
		for _, to := range all {
			err := from.CanTransitionTo(to)
			if contains(allowed[from], to) {
				assert.NoError(t, err, "%s -> %s", from, to)
				continue
			}
			require.Error(t, err, "%s -> %s", from, to)
			assert.True(t, errors.Is(err, ErrIllegalTransition))

			var te *TransitionError
			require.True(t, errors.As(err, &te))
			assert.Equal(t, from, te.From)
			assert.Equal(t, to, te.To)
		}
	}
}

func TestParseProjectStatus(t *testing.T) {
	st, err := ParseProjectStatus("FORMED")
	require.NoError(t, err)
	assert.Equal(t, StatusFormed, st)

	_, err = ParseProjectStatus("formed")
	assert.Error(t, err)
	_, err = ParseProjectStatus("")
	assert.Error(t, err)
}

func TestStatusScanRejectsUnknownValues(t *testing.T) {
	var st ProjectStatus
	require.NoError(t, st.Scan([]byte("REJECTED")))
	assert.Equal(t, StatusRejected, st)

	assert.Error(t, st.Scan("ARCHIVED"))
	assert.Error(t, st.Scan(42))
}

func TestFormRequiresCirculation(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	p := &BookPublishingProject{Status: StatusDraft}
	err := p.Form(now)
	var ce *CirculationError
	require.True(t, errors.As(err, &ce))
	assert.Nil(t, ce.Circulation)
	assert.Equal(t, StatusDraft, p.Status)

	p.Circulation = intPtr(99)
	err = p.Form(now)
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, StatusDraft, p.Status)
	assert.Nil(t, p.FormationDatetime)

	p.Circulation = intPtr(100)
	require.NoError(t, p.Form(now))
	assert.Equal(t, StatusFormed, p.Status)
	require.NotNil(t, p.FormationDatetime)
	assert.Equal(t, now, *p.FormationDatetime)
}

func TestFormOnlyFromDraft(t *testing.T) {
	for _, st := range []ProjectStatus{StatusFormed, StatusCompleted, StatusRejected, StatusDeleted} {
		p := &BookPublishingProject{Status: st, Circulation: intPtr(500)}
		err := p.Form(time.Now())
		assert.ErrorIs(t, err, ErrIllegalTransition, "from %s", st)
		assert.Equal(t, st, p.Status)
	}
}

func TestResolveComputesDiscount(t *testing.T) {
	now := time.Now()
	p := &BookPublishingProject{Status: StatusFormed, Circulation: intPtr(75000), CustomerID: 1}

	require.NoError(t, p.Resolve(StatusCompleted, 7, now))
	assert.Equal(t, StatusCompleted, p.Status)
	require.NotNil(t, p.PersonalDiscount)
	assert.Equal(t, 10, *p.PersonalDiscount)
	require.NotNil(t, p.ManagerID)
	assert.Equal(t, uint(7), *p.ManagerID)
	require.NotNil(t, p.CompletionDatetime)
	assert.Equal(t, now, *p.CompletionDatetime)
}

func TestResolveRejectsNonResolutionTarget(t *testing.T) {
	p := &BookPublishingProject{Status: StatusFormed, Circulation: intPtr(500)}

	for _, to := range []ProjectStatus{StatusDraft, StatusFormed, StatusDeleted} {
		assert.ErrorIs(t, p.Resolve(to, 1, time.Now()), ErrIllegalTransition)
	}
	assert.Equal(t, StatusFormed, p.Status)
	assert.Nil(t, p.ManagerID)
}

func TestResolveOnlyFromFormed(t *testing.T) {
	p := &BookPublishingProject{Status: StatusDraft, Circulation: intPtr(500)}
	assert.ErrorIs(t, p.Resolve(StatusRejected, 1, time.Now()), ErrIllegalTransition)
	assert.Nil(t, p.PersonalDiscount)
}

func TestDeleteOnlyDraft(t *testing.T) {
	p := &BookPublishingProject{Status: StatusDraft}
	require.NoError(t, p.Delete())
	assert.Equal(t, StatusDeleted, p.Status)

	assert.ErrorIs(t, p.Delete(), ErrIllegalTransition)

	formed := &BookPublishingProject{Status: StatusFormed}
	assert.ErrorIs(t, formed.Delete(), ErrIllegalTransition)
}

func TestParseRateAndFormat(t *testing.T) {
	r, err := ParseRate("PREMIUM")
	require.NoError(t, err)
	assert.Equal(t, RatePremium, r)
	_, err = ParseRate("GOLD")
	assert.Error(t, err)

	f, err := ParseBookFormat("SQUARE")
	require.NoError(t, err)
	assert.Equal(t, FormatSquare, f)
	_, err = ParseBookFormat("A3")
	assert.Error(t, err)
}

func contains(list []ProjectStatus, st ProjectStatus) bool {
	for _, s := range list {
		if s == st {
			return true
		}
	}
	return false
}
