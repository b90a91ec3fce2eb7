package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legal_case_api_go/models"
)

func TestScheduleFollowUps(t *testing.T) {
	m := NewFollowUpManager()
	date := time.Date(2026, 9, 20, 15, 0, 0, 0, time.UTC)

	first, err := m.Schedule("CASE-001", "LAWYER-001", models.FollowUpConsultation, date, "initial review")
	require.NoError(t, err)
	second, err := m.Schedule("CASE-001", "LAWYER-001", models.FollowUpHearing, date.AddDate(0, 0, 7), "")
	require.NoError(t, err)

	assert.Equal(t, models.FollowUpConsultation, first.Type)
	assert.Equal(t, "LAWYER-001", first.ScheduledBy)

	followups := m.FollowUps("CASE-001")
	require.Len(t, followups, 2)
	assert.Equal(t, first.FollowUpID, followups[0].FollowUpID)
	assert.Equal(t, second.FollowUpID, followups[1].FollowUpID)

	assert.Empty(t, m.FollowUps("CASE-404"))
}
