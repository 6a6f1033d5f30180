package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseToken(t *testing.T) {
	t.Parallel()

	secret := []byte("secret-key")
	token, err := NewJWTTokenIssuer().IssueToken(secret, "user-42", RoleAdmin, time.Hour)
	require.NoError(t, err)

	claims, err := NewJWTTokenParser().ParseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, "user-42", claims.Subject)
	assert.True(t, claims.IsAdmin())
}

func TestParseToken_Errors(t *testing.T) {
	t.Parallel()

	secret := []byte("secret-key")
	issuer := NewJWTTokenIssuer()

	type testCase struct {
		name  string
		token func(t *testing.T) string

		expectedErr error
	}

	tests := []testCase{
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				token, err := issuer.IssueToken([]byte("other"), "u1", RoleUser, time.Hour)
				require.NoError(t, err)
				return token
			},
			expectedErr: jwt.ErrTokenSignatureInvalid,
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				token, err := issuer.IssueToken(secret, "u1", RoleUser, -time.Minute)
				require.NoError(t, err)
				return token
			},
			expectedErr: jwt.ErrTokenExpired,
		},
		{
			name: "missing user id",
			token: func(t *testing.T) string {
				token, err := issuer.IssueToken(secret, "", RoleUser, time.Hour)
				require.NoError(t, err)
				return token
			},
			expectedErr: ErrMissingSubject,
		},
		{
			name: "not a jwt",
			token: func(t *testing.T) string {
				return "garbage"
			},
			expectedErr: jwt.ErrTokenMalformed,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewJWTTokenParser().ParseToken(secret, tt.token(t))
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}
