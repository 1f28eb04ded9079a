//go:build unit

package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"talentbridge/internal/infra"
	"talentbridge/internal/pkg/clock"
	"talentbridge/internal/pkg/errs"
	"talentbridge/internal/pkg/jwt"
	"talentbridge/internal/pkg/password"
	"talentbridge/internal/usecase/commands"
	"talentbridge/internal/usecase/queries"
	"talentbridge/internal/usecase/shared"
	"talentbridge/tests/common/builder"
	"talentbridge/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// userReadStore serves users by id and email from memory.
type userReadStore struct {
	users  map[uuid.UUID]*queries.AuthorizedUserView
	hashes map[uuid.UUID]string
	err    error
}

func (r *userReadStore) add(u *queries.AuthorizedUserView, hash string) {
	r.users[u.ID] = u
	r.hashes[u.ID] = hash
}

func (r *userReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return u, nil
}

func (r *userReadStore) FindByEmail(_ context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	if r.err != nil {
		return nil, "", r.err
	}
	for id, u := range r.users {
		if u.Email == email {
			return u, r.hashes[id], nil
		}
	}
	return nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
}

type AuthCommandsTestSuite struct {
	suite.Suite
	store     *memstore.Store
	readStore *userReadStore
	clock     *clock.MockClock
	jwt       *jwt.Service
	sut       commands.AuthCommands

	user *queries.AuthorizedUserView
}

const testPassword = "password123"

func (s *AuthCommandsTestSuite) SetupTest() {
	s.store = memstore.New()
	s.readStore = &userReadStore{users: map[uuid.UUID]*queries.AuthorizedUserView{}, hashes: map[uuid.UUID]string{}}
	s.clock = clock.NewMockClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	s.jwt = jwt.NewService("test-secret", 15*time.Minute, 24*time.Hour, s.clock)
	s.sut = commands.NewAuthCommands(s.store, s.readStore, s.jwt, s.clock, slog.New(slog.DiscardHandler))

	hash, err := password.HashPassword(testPassword)
	s.Require().NoError(err)
	s.user = builder.NewUserBuilder().BuildReadModel()
	s.readStore.add(s.user, hash)
	s.store.AddUser(shared.UserContact{ID: s.user.ID, Email: s.user.Email}, "")
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) TestLogin() {
	s.Run("正常系: トークンを発行し最終ログインを記録する", func() {
		s.SetupTest()

		res, err := s.sut.Login(context.Background(), builder.NewAuthBuilder().BuildDTO())

		s.Require().NoError(err)
		s.Equal(s.user.ID, res.UserID)

		claims, err := s.jwt.ValidateToken(res.TokenPair.AccessToken)
		s.Require().NoError(err)
		s.Equal(jwt.TokenTypeAccess, claims.TokenType)
		s.Equal(s.user.Role, claims.Role)

		row, _ := s.store.User(s.user.ID)
		s.Require().NotNil(row.LastLogin)
		s.Equal(s.clock.Now(), *row.LastLogin)
	})

	s.Run("異常系: パスワード違い", func() {
		s.SetupTest()
		req := builder.NewAuthBuilder().BuildDTO()
		req.Password = "wrong-password"

		_, err := s.sut.Login(context.Background(), req)

		s.True(errs.Is(err, commands.ErrInvalidCredentials))
	})

	s.Run("異常系: 存在しないメールアドレスもパスワード違いと同じ扱い", func() {
		s.SetupTest()
		req := builder.NewAuthBuilder().BuildDTO()
		req.Email = "nobody@example.com"

		_, err := s.sut.Login(context.Background(), req)

		s.True(errs.Is(err, commands.ErrInvalidCredentials))
	})

	s.Run("異常系: 無効化されたユーザー", func() {
		s.SetupTest()
		s.user.IsActive = false

		_, err := s.sut.Login(context.Background(), builder.NewAuthBuilder().BuildDTO())

		s.True(errs.Is(err, commands.ErrUserInactive))
	})

	s.Run("異常系: メール形式が不正", func() {
		s.SetupTest()
		req := builder.NewAuthBuilder().BuildDTO()
		req.Email = "not-an-email"

		_, err := s.sut.Login(context.Background(), req)

		s.True(errs.Is(err, commands.ErrAuthenticationFailed))
	})

	s.Run("正常系: 最終ログインの更新失敗はログインを妨げない", func() {
		s.SetupTest()
		s.store = memstore.New()
		s.sut = commands.NewAuthCommands(s.store, s.readStore, s.jwt, s.clock, slog.New(slog.DiscardHandler))

		res, err := s.sut.Login(context.Background(), builder.NewAuthBuilder().BuildDTO())

		s.Require().NoError(err)
		s.NotEmpty(res.TokenPair.RefreshToken)
	})
}

func (s *AuthCommandsTestSuite) TestRefreshToken() {
	s.Run("正常系: リフレッシュトークンで新しいペアを発行する", func() {
		s.SetupTest()
		refresh, err := s.jwt.GenerateRefreshToken(s.user.ID, "recruiter")
		s.Require().NoError(err)

		pair, err := s.sut.RefreshToken(context.Background(), refresh)

		s.Require().NoError(err)
		claims, err := s.jwt.ValidateToken(pair.AccessToken)
		s.Require().NoError(err)
		s.Equal(s.user.ID, claims.UserID)
	})

	s.Run("正常系: ロールは保存されている値から取り直す", func() {
		s.SetupTest()
		refresh, err := s.jwt.GenerateRefreshToken(s.user.ID, "candidate")
		s.Require().NoError(err)
		s.user.Role = "admin"

		pair, err := s.sut.RefreshToken(context.Background(), refresh)

		s.Require().NoError(err)
		claims, _ := s.jwt.ValidateToken(pair.AccessToken)
		s.Equal("admin", claims.Role)
	})

	s.Run("異常系: アクセストークンでは更新できない", func() {
		s.SetupTest()
		access, err := s.jwt.GenerateAccessToken(s.user.ID, "recruiter")
		s.Require().NoError(err)

		_, err = s.sut.RefreshToken(context.Background(), access)

		s.True(errs.Is(err, commands.ErrTokenValidation))
	})

	s.Run("異常系: 期限切れ", func() {
		s.SetupTest()
		refresh, err := s.jwt.GenerateRefreshToken(s.user.ID, "recruiter")
		s.Require().NoError(err)
		s.clock.Add(25 * time.Hour)

		_, err = s.sut.RefreshToken(context.Background(), refresh)

		s.True(errs.Is(err, commands.ErrTokenValidation))
		s.True(errs.Is(err, jwt.ErrExpiredToken))
	})

	s.Run("異常系: ユーザーが消えている", func() {
		s.SetupTest()
		refresh, err := s.jwt.GenerateRefreshToken(uuid.New(), "recruiter")
		s.Require().NoError(err)

		_, err = s.sut.RefreshToken(context.Background(), refresh)

		s.True(errs.Is(err, commands.ErrUserNotFound))
	})

	s.Run("異常系: 無効化されたユーザー", func() {
		s.SetupTest()
		refresh, err := s.jwt.GenerateRefreshToken(s.user.ID, "recruiter")
		s.Require().NoError(err)
		s.user.IsActive = false

		_, err = s.sut.RefreshToken(context.Background(), refresh)

		s.True(errs.Is(err, commands.ErrUserInactive))
	})

	s.Run("異常系: 読み取りストアの障害", func() {
		s.SetupTest()
		refresh, err := s.jwt.GenerateRefreshToken(s.user.ID, "recruiter")
		s.Require().NoError(err)
		s.readStore.err = errors.New("db down")

		_, err = s.sut.RefreshToken(context.Background(), refresh)

		s.True(errs.Is(err, commands.ErrUserNotFound))
	})
}
