package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averyhale/socialnet/internal/testutil"
)

func TestAccountHandler_List(t *testing.T) {
	ts := testutil.NewTestServer(t)

	testutil.NewAccountBuilder().Build(t, ts.DB.DB)
	testutil.NewAccountBuilder().Build(t, ts.DB.DB)

	resp, err := http.Get(ts.APIURL("/accounts"))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var profiles []map[string]interface{}
	testutil.AssertJSONResponse(t, resp, &profiles)
	assert.Len(t, profiles, 2)

	for _, p := range profiles {
		_, hasPassword := p["password"]
		assert.False(t, hasPassword)
		_, hasHash := p["passwordHash"]
		assert.False(t, hasHash)
	}
}

func TestAccountHandler_Get(t *testing.T) {
	ts := testutil.NewTestServer(t)

	account, _ := testutil.NewAccountBuilder().
		WithName("Public Profile").
		Build(t, ts.DB.DB)

	tests := []struct {
		name           string
		id             string
		expectedStatus int
	}{
		{
			name:           "existing account",
			id:             account.ID.String(),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing account",
			id:             uuid.New().String(),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "malformed id",
			id:             "not-a-uuid",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.APIURL("/accounts/" + tt.id))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestAccountHandler_Update(t *testing.T) {
	ts := testutil.NewTestServer(t)

	owner, ownerToken := testutil.NewAccountBuilder().BuildAndAuthenticate(t, ts)
	_, otherToken := testutil.NewAccountBuilder().BuildAndAuthenticate(t, ts)

	doPut := func(t *testing.T, id, token string, body map[string]interface{}) *http.Response {
		t.Helper()
		payload, _ := json.Marshal(body)
		req, _ := http.NewRequest(http.MethodPut, ts.APIURL("/accounts/"+id), bytes.NewBuffer(payload))
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		return resp
	}

	t.Run("owner updates profile fields", func(t *testing.T) {
		resp := doPut(t, owner.ID.String(), ownerToken, map[string]interface{}{
			"name":      "Renamed",
			"bio":       "new bio",
			"isPrivate": true,
		})
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var profile struct {
			Name      string `json:"name"`
			Bio       string `json:"bio"`
			IsPrivate bool   `json:"isPrivate"`
		}
		testutil.AssertJSONResponse(t, resp, &profile)
		assert.Equal(t, "Renamed", profile.Name)
		assert.Equal(t, "new bio", profile.Bio)
		assert.True(t, profile.IsPrivate)
	})

	t.Run("unknown fields are ignored", func(t *testing.T) {
		resp := doPut(t, owner.ID.String(), ownerToken, map[string]interface{}{
			"email":        "hijacked@x.com",
			"passwordHash": "fakehash",
			"id":           uuid.New().String(),
		})
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var profile struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		}
		testutil.AssertJSONResponse(t, resp, &profile)
		assert.Equal(t, owner.ID.String(), profile.ID)
		assert.Equal(t, owner.Email, profile.Email, "email is not a mutable field")
	})

	t.Run("non-owner gets forbidden and nothing changes", func(t *testing.T) {
		resp := doPut(t, owner.ID.String(), otherToken, map[string]interface{}{
			"name": "Hacked",
		})
		defer resp.Body.Close()

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		check, err := http.Get(ts.APIURL("/accounts/" + owner.ID.String()))
		require.NoError(t, err)
		defer check.Body.Close()

		var profile struct {
			Name string `json:"name"`
		}
		testutil.AssertJSONResponse(t, check, &profile)
		assert.NotEqual(t, "Hacked", profile.Name)
	})

	t.Run("without token", func(t *testing.T) {
		resp := doPut(t, owner.ID.String(), "", map[string]interface{}{"name": "Anon"})
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("invalid patch value", func(t *testing.T) {
		resp := doPut(t, owner.ID.String(), ownerToken, map[string]interface{}{
			"password": "123",
		})
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestAccountHandler_Delete(t *testing.T) {
	ts := testutil.NewTestServer(t)

	doDelete := func(t *testing.T, id, token string) *http.Response {
		t.Helper()
		req, _ := http.NewRequest(http.MethodDelete, ts.APIURL("/accounts/"+id), nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		return resp
	}

	t.Run("non-owner gets forbidden", func(t *testing.T) {
		victim, _ := testutil.NewAccountBuilder().BuildAndAuthenticate(t, ts)
		_, attackerToken := testutil.NewAccountBuilder().BuildAndAuthenticate(t, ts)

		resp := doDelete(t, victim.ID.String(), attackerToken)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		// Victim still exists
		check, err := http.Get(ts.APIURL("/accounts/" + victim.ID.String()))
		require.NoError(t, err)
		check.Body.Close()
		assert.Equal(t, http.StatusOK, check.StatusCode)
	})

	t.Run("owner deletes own account", func(t *testing.T) {
		account, token := testutil.NewAccountBuilder().BuildAndAuthenticate(t, ts)

		resp := doDelete(t, account.ID.String(), token)
		defer resp.Body.Close()

		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		check, err := http.Get(ts.APIURL("/accounts/" + account.ID.String()))
		require.NoError(t, err)
		check.Body.Close()
		assert.Equal(t, http.StatusNotFound, check.StatusCode)
	})

	t.Run("without token", func(t *testing.T) {
		account, _ := testutil.NewAccountBuilder().BuildAndAuthenticate(t, ts)

		resp := doDelete(t, account.ID.String(), "")
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
