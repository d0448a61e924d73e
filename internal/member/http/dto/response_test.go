package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sijosaji/kitchensink/internal/member/domain"
)

func TestMapMembersToResponse(t *testing.T) {
	t.Run("nil list maps to empty json array", func(t *testing.T) {
		body, err := json.Marshal(MapMembersToResponse(nil))

		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(body))
	})

	t.Run("uses camelCase keys", func(t *testing.T) {
		members := []*domain.Member{{ID: 1, Name: "Jane", Email: "jane@example.com", PhoneNumber: "2125551212"}}

		body, err := json.Marshal(MapMembersToResponse(members))

		require.NoError(t, err)
		assert.JSONEq(t,
			`[{"id":1,"name":"Jane","email":"jane@example.com","phoneNumber":"2125551212"}]`,
			string(body))
	})
}

func TestToUpdateMemberInput_KeepsAbsentFieldsNil(t *testing.T) {
	var req UpdateMemberRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Janet"}`), &req))

	input := ToUpdateMemberInput(req)

	require.NotNil(t, input.Name)
	assert.Equal(t, "Janet", *input.Name)
	assert.Nil(t, input.Email)
	assert.Nil(t, input.PhoneNumber)
}
