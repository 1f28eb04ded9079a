//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"talentbridge/internal/domain/user"
	"talentbridge/internal/handler/dto/request"
	resdto "talentbridge/internal/handler/dto/response"
	"talentbridge/internal/pkg/cookie"
	"talentbridge/tests/common/authtest"
	"talentbridge/tests/common/dbtest"
	"talentbridge/tests/common/httptest"
	"talentbridge/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用ユーザーを作成
	dbtest.CreateTestUser(s.T(), s.DB, "test@example.com", string(user.RoleRecruiter))
	dbtest.CreateTestUser(s.T(), s.DB, "ambassador@example.com", string(user.RoleAmbassador))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleRecruiter))

	// 非アクティブユーザーを作成
	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常なログイン",
			email:          "test@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
			description:    "有効な認証情報でログインできること",
		},
		{
			name:           "存在しないユーザー",
			email:          "nonexistent@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
			description:    "存在しないユーザーでログインできないこと",
		},
		{
			name:           "間違ったパスワード",
			email:          "test@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "間違ったパスワードでログインできないこと",
		},
		{
			name:           "非アクティブユーザー",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusForbidden,
			description:    "非アクティブユーザーはログインできないこと",
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
			description:    "空のメールアドレスは拒否されること",
		},
		{
			name:           "空のパスワード",
			email:          "test@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
			description:    "空のパスワードは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{Email: tt.email, Password: tt.password}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var loginRes resdto.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &loginRes))
				require.NotEmpty(t, loginRes.AccessToken, "アクセストークンが空")
				require.Equal(t, tt.email, loginRes.User.Email)
				require.NotNil(t, httptest.ExtractCookie(w, cookie.RefreshTokenCookieName), "リフレッシュトークンのクッキーがない")

				// last_loginが更新されることを確認
				var lastLogin any
				err := s.DB.QueryRow(t.Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_loginが更新されていない")
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	s.Run("クッキーのリフレッシュトークンで更新できる", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "test@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code)

		res := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, httptest.ExtractCookies(w), "")

		require.Equal(t, http.StatusOK, res.Code, res.Body.String())
		var body resdto.RefreshResponse
		require.NoError(t, httptest.DecodeResponseBody(t, res.Body, &body))
		require.NotEmpty(t, body.AccessToken)
	})

	s.Run("無効なリフレッシュトークン", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, request.RefreshRequest{RefreshToken: "invalid-refresh-token"}, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("リフレッシュトークンなし", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, request.RefreshRequest{}, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	tests := []struct {
		name           string
		setupToken     func() string
		expectedStatus int
	}{
		{
			name: "正常なログアウト",
			setupToken: func() string {
				return authtest.LoginUser(s.T(), s.Router, "test@example.com", "password123")
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "無効なトークン",
			setupToken:     func() string { return "invalid-token" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "トークンなし",
			setupToken:     func() string { return "" },
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, tt.setupToken())
			require.Equal(s.T(), tt.expectedStatus, w.Code)
		})
	}
}

func (s *authSuite) TestMe() {
	tests := []struct {
		name           string
		setupUser      func() (string, string, string) // email, role, token
		expectedStatus int
	}{
		{
			name: "管理者ユーザーの情報取得",
			setupUser: func() (string, string, string) {
				email, role := "admin@example.com", string(user.RoleAdmin)
				return email, role, authtest.CreateAndLogin(s.T(), s.DB, s.Router, email, role)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "アンバサダーの情報取得",
			setupUser: func() (string, string, string) {
				email, role := "ambassador2@example.com", string(user.RoleAmbassador)
				return email, role, authtest.CreateAndLogin(s.T(), s.DB, s.Router, email, role)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "無効なトークン",
			setupUser:      func() (string, string, string) { return "", "", "invalid-token" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "トークンなし",
			setupUser:      func() (string, string, string) { return "", "", "" },
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			email, role, token := tt.setupUser()
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
			require.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				body := w.Body.String()
				require.Contains(t, body, email, "レスポンスにメールアドレスが含まれていない")
				require.Contains(t, body, role, "レスポンスにロールが含まれていない")
				require.NotContains(t, body, "password", "レスポンスにパスワード情報が含まれている")
			}
		})
	}
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("期限切れトークンの拒否", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", string(user.RoleAdmin))

		expiredToken := s.jwt.CreateExpiredToken(t, userID, user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expiredToken)
		require.Equal(t, http.StatusUnauthorized, w.Code, "期限切れトークンは拒否されるべき")
	})
}

func (s *authSuite) TestConcurrentLogin() {
	s.Run("同時ログイン", func() {
		t := s.T()
		email := "concurrent@example.com"
		dbtest.CreateTestUser(t, s.DB, email, string(user.RoleAdmin))

		token1 := authtest.LoginUser(t, s.Router, email, "password123")
		token2 := authtest.LoginUser(t, s.Router, email, "password123")

		require.NotEqual(t, token1, token2, "同時ログインで同じトークンが返された")

		w1 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token1)
		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token2)
		require.Equal(t, http.StatusOK, w1.Code, "最初のトークンが無効")
		require.Equal(t, http.StatusOK, w2.Code, "二番目のトークンが無効")
	})
}
