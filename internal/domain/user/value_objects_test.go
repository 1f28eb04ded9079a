//go:build unit

package user_test

import (
	"strings"
	"testing"

	"talentbridge/internal/domain/auth"
	"talentbridge/internal/domain/user"
	"talentbridge/internal/pkg/errs"
	"talentbridge/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	t.Run("前後の空白を除去し小文字に正規化する", func(t *testing.T) {
		email, err := user.NewEmail("  Recruiter@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "recruiter@example.com", email.Value())
	})

	t.Run("長すぎるメールアドレスNG", func(t *testing.T) {
		_, err := user.NewEmail(strings.Repeat("a", 250) + "@example.com")
		assert.ErrorIs(t, err, user.ErrInvalidEmail)
	})
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "8文字OK", input: "12345678"},
		{name: "7文字NG", input: "1234567", errIs: user.ErrPasswordTooWeak},
		{name: "72バイトOK", input: strings.Repeat("p", 72)},
		{name: "73バイトNG", input: strings.Repeat("p", 73), errIs: user.ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := user.NewPassword(tt.input)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCredentialsVerify(t *testing.T) {
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)

	t.Run("一致するパスワード", func(t *testing.T) {
		creds, err := auth.NewCredentials("user@example.com", "password123")
		require.NoError(t, err)
		assert.NoError(t, creds.Verify(hash))
	})

	t.Run("一致しないパスワード", func(t *testing.T) {
		creds, err := auth.NewCredentials("user@example.com", "password124")
		require.NoError(t, err)
		assert.True(t, errs.Is(creds.Verify(hash), password.ErrComparisonFailed))
	})

	t.Run("壊れたハッシュ", func(t *testing.T) {
		creds, err := auth.NewCredentials("user@example.com", "password123")
		require.NoError(t, err)
		assert.True(t, errs.Is(creds.Verify("not-a-bcrypt-hash"), password.ErrComparisonFailed))
	})
}
