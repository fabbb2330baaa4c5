package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationStatus(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusApproved.Valid())
	assert.True(t, StatusRejected.Valid())
	assert.False(t, ApplicationStatus("CANCELLED").Valid())

	assert.False(t, StatusPending.Terminal())
	assert.True(t, StatusApproved.Terminal())
	assert.True(t, StatusRejected.Terminal())
}

func TestApplicationPatchApply(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("reports only fields that actually changed", func(t *testing.T) {
		app := &Application{Name: "Tariro", Department: "Roads"}
		patch := &ApplicationPatch{
			Name:       strPtr("Tariro"),
			Department: strPtr("Water"),
		}

		changed := patch.Apply(app)

		assert.Equal(t, []string{"department"}, changed)
		assert.Equal(t, "Water", app.Department)
	})

	t.Run("nil fields leave the application untouched", func(t *testing.T) {
		app := &Application{Name: "Tariro", Surname: "Moyo"}

		changed := (&ApplicationPatch{}).Apply(app)

		assert.Empty(t, changed)
		assert.Equal(t, "Tariro", app.Name)
	})

	t.Run("dob compares by instant", func(t *testing.T) {
		dob := Date{Time: time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)}
		app := &Application{DOB: dob}

		changed := (&ApplicationPatch{DOB: &dob}).Apply(app)
		assert.Empty(t, changed)

		later := Date{Time: dob.AddDate(1, 0, 0)}
		changed = (&ApplicationPatch{DOB: &later}).Apply(app)
		assert.Equal(t, []string{"dob"}, changed)
	})
}

func TestDateJSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"1990-04-12"`), &d))
	assert.Equal(t, 1990, d.Year())
	assert.Equal(t, time.April, d.Month())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1990-04-12"`, string(out))
}

func TestNewAuditLog(t *testing.T) {
	t.Run("zero target stays nil until the row exists", func(t *testing.T) {
		entry := NewAuditLog(7, ActionApplicationCreated, 0, JSON{"name": "Tariro"})
		assert.Nil(t, entry.TargetID)
		require.NotNil(t, entry.ActorUserID)
		assert.Equal(t, uint(7), *entry.ActorUserID)
	})

	t.Run("known target is recorded", func(t *testing.T) {
		entry := NewAuditLog(7, ActionPaymentRecorded, 5, JSON{})
		require.NotNil(t, entry.TargetID)
		assert.Equal(t, uint(5), *entry.TargetID)
	})
}
