package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storewatch/internal/auth"
	apperrors "storewatch/internal/errors"
	"storewatch/internal/model"
)

var adminIdentity = model.Identity{ID: "u-1", Email: "admin@example.com", Role: model.RoleAdmin}

func newAuthTest() (*MockAuthService, *auth.SessionStore, *AuthHandler) {
	svc := new(MockAuthService)
	sessions := auth.NewSessionStore(auth.NewSignedCodec("test-secret"), false)
	return svc, sessions, NewAuthHandler(svc, sessions)
}

func sessionCookie(t *testing.T, sessions *auth.SessionStore, id model.Identity) *http.Cookie {
	t.Helper()
	token, err := sessions.Codec().Encode(id)
	require.NoError(t, err)
	return &http.Cookie{Name: auth.CookieName, Value: token}
}

func TestAuthHandler_SignIn(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockAuthService)
		expectedStatus int
		expectedError  string
		expectCookie   bool
	}{
		{
			name: "success",
			body: `{"email":"admin@example.com","password":"pw"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Verify", mock.Anything, "admin@example.com", "pw").Return(&adminIdentity, nil)
			},
			expectedStatus: http.StatusOK,
			expectCookie:   true,
		},
		{
			name: "unknown user",
			body: `{"email":"x@example.com","password":"pw"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Verify", mock.Anything, "x@example.com", "pw").Return(nil, apperrors.ErrUserNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "User not found",
		},
		{
			name: "wrong password",
			body: `{"email":"admin@example.com","password":"bad"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Verify", mock.Anything, "admin@example.com", "bad").Return(nil, apperrors.ErrInvalidPassword)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid password",
		},
		{
			name: "lookup failure",
			body: `{"email":"admin@example.com","password":"pw"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Verify", mock.Anything, "admin@example.com", "pw").Return(nil, apperrors.ErrAuthFailed)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Authentication failed",
		},
		{
			name:           "missing password",
			body:           `{"email":"admin@example.com"}`,
			setupMock:      func(m *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "email and password are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, h := newAuthTest()
			tt.setupMock(svc)

			e := newTestEcho()
			req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			require.NoError(t, h.SignIn(e.NewContext(req, rec)))
			assert.Equal(t, tt.expectedStatus, rec.Code)

			var resp AuthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedError, resp.Error)
			assert.Equal(t, tt.expectedError == "", resp.Success)

			cookies := rec.Result().Cookies()
			if tt.expectCookie {
				require.Len(t, cookies, 1)
				assert.Equal(t, auth.CookieName, cookies[0].Name)
				assert.True(t, cookies[0].HttpOnly)
				assert.Equal(t, &adminIdentity, resp.User)
			} else {
				assert.Empty(t, cookies)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_SignOut(t *testing.T) {
	t.Run("revokes and clears", func(t *testing.T) {
		svc, sessions, h := newAuthTest()
		cookie := sessionCookie(t, sessions, adminIdentity)
		svc.On("Revoke", mock.Anything, cookie.Value).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/signout", nil)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()

		require.NoError(t, h.SignOut(newTestEcho().NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true}`, rec.Body.String())
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, -1, cookies[0].MaxAge)
		svc.AssertExpectations(t)
	})

	t.Run("revocation failure", func(t *testing.T) {
		svc, sessions, h := newAuthTest()
		svc.On("Revoke", mock.Anything, mock.Anything).Return(errors.New("redis down"))

		req := httptest.NewRequest(http.MethodPost, "/api/auth/signout", nil)
		req.AddCookie(sessionCookie(t, sessions, adminIdentity))
		rec := httptest.NewRecorder()

		require.NoError(t, h.SignOut(newTestEcho().NewContext(req, rec)))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":false`)
	})

	t.Run("no cookie still succeeds", func(t *testing.T) {
		svc, _, h := newAuthTest()
		rec := httptest.NewRecorder()

		require.NoError(t, h.SignOut(newTestEcho().NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything)
	})
}

func TestAuthHandler_Session(t *testing.T) {
	svc, sessions, h := newAuthTest()
	valid := sessionCookie(t, sessions, adminIdentity)
	revoked := sessionCookie(t, sessions, model.Identity{ID: "u-2", Email: "b@example.com", Role: "USER"})
	svc.On("IsRevoked", mock.Anything, valid.Value).Return(false)
	svc.On("IsRevoked", mock.Anything, revoked.Value).Return(true)

	tests := []struct {
		name     string
		cookie   *http.Cookie
		expected string
	}{
		{name: "no cookie", expected: "null"},
		{name: "garbage cookie", cookie: &http.Cookie{Name: auth.CookieName, Value: "garbage"}, expected: "null"},
		{name: "revoked", cookie: revoked, expected: "null"},
		{name: "valid", cookie: valid, expected: `{"id":"u-1","email":"admin@example.com","role":"ADMIN"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()

			require.NoError(t, h.Session(newTestEcho().NewContext(req, rec)))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.expected, rec.Body.String())
		})
	}
}
