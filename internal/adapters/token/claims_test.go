package token

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivekpraj/website-to-chatbot-cli/internal/domain"
)

func makeToken(t *testing.T, payload map[string]any) string {
	t.Helper()

	header, err := json.Marshal(map[string]string{"alg": "HS256", "typ": "JWT"})
	require.NoError(t, err)
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	encode := base64.RawURLEncoding.EncodeToString
	return fmt.Sprintf("%s.%s.%s", encode(header), encode(body), encode([]byte("sig")))
}

func TestDecodeClaimsExtractsRoleUserIDAndExpiry(t *testing.T) {
	t.Parallel()

	exp := time.Now().Add(time.Hour).Unix()
	credential := makeToken(t, map[string]any{
		"role":    "super_admin",
		"user_id": 42,
		"exp":     exp,
	})

	claims := DecodeClaims(credential)
	require.NotNil(t, claims)
	assert.Equal(t, domain.RoleSuperAdmin, claims.Role)
	assert.Equal(t, domain.UserID(42), claims.UserID)
	assert.Equal(t, exp, claims.ExpiresAt.Unix())
}

func TestDecodeClaimsFailsSoftOnMalformedInput(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		credential string
	}{
		{name: "empty", credential: ""},
		{name: "no delimiters", credential: "not-a-token-at-all"},
		{name: "two segments", credential: "aGVhZGVy.cGF5bG9hZA"},
		{name: "four segments", credential: "a.b.c.d"},
		{name: "undecodable payload", credential: "aGVhZGVy.!!!not-base64!!!.c2ln"},
		{
			name:       "non-object payload",
			credential: "eyJhbGciOiJIUzI1NiJ9." + base64.RawURLEncoding.EncodeToString([]byte(`"just a string"`)) + ".c2ln",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Nil(t, DecodeClaims(tc.credential))
		})
	}
}

func TestDecodeClaimsToleratesMissingFields(t *testing.T) {
	t.Parallel()

	claims := DecodeClaims(makeToken(t, map[string]any{"sub": "someone"}))
	require.NotNil(t, claims)
	assert.Empty(t, claims.Role)
	assert.Zero(t, claims.UserID)
	assert.True(t, claims.ExpiresAt.IsZero())
}

func TestClaimsExpiredIsAdvisoryOnly(t *testing.T) {
	t.Parallel()

	now := time.Now()
	credential := makeToken(t, map[string]any{
		"role": "client",
		"exp":  now.Add(-time.Minute).Unix(),
	})

	claims := DecodeClaims(credential)
	require.NotNil(t, claims)
	assert.True(t, claims.Expired(now))
	assert.Equal(t, domain.RoleClient, claims.Role)
}
