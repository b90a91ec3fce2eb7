package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legal_case_api_go/models"
)

func TestSendAndListMessages(t *testing.T) {
	m := NewMessageManager()

	first, err := m.Send("CASE-001", "CLIENT-001", models.RoleClient, "hello")
	require.NoError(t, err)
	second, err := m.Send("CASE-001", "LAWYER-001", models.RoleLawyer, "hi back")
	require.NoError(t, err)
	_, err = m.Send("CASE-002", "CLIENT-002", models.RoleClient, "other case")
	require.NoError(t, err)

	messages := m.Messages("CASE-001")
	require.Len(t, messages, 2)
	assert.Equal(t, first.MessageID, messages[0].MessageID)
	assert.Equal(t, second.MessageID, messages[1].MessageID)
	assert.Equal(t, models.RoleLawyer, messages[1].SenderRole)

	assert.Empty(t, m.Messages("CASE-404"))
}

func TestSendStripsMarkup(t *testing.T) {
	m := NewMessageManager()

	sent, err := m.Send("CASE-001", "CLIENT-001", models.RoleClient, `hi <img src=x onerror=alert(1)>`)
	require.NoError(t, err)

	assert.NotContains(t, sent.Content, "<img")
	assert.Contains(t, sent.Content, "hi")
}
