package middlewarectx_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amangusss/trainer-workload/internal/http/middlewarectx"
	"github.com/amangusss/trainer-workload/internal/http/response"
	"github.com/amangusss/trainer-workload/internal/lib/jwt"
	"github.com/amangusss/trainer-workload/internal/lib/txid"
)

type TokenParserMock struct {
	mock.Mock
}

func (m *TokenParserMock) ParseToken(token string) (*jwt.CustomClaims, error) {
	args := m.Called(token)
	claims, _ := args.Get(0).(*jwt.CustomClaims)
	return claims, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestJWTMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		setupMock      func(m *TokenParserMock)
		wantStatusCode int
		wantCalled     bool
	}{
		{
			name:       "valid token",
			authHeader: "Bearer good",
			setupMock: func(m *TokenParserMock) {
				m.On("ParseToken", "good").Return(&jwt.CustomClaims{
					RegisteredClaims: gojwt.RegisteredClaims{Subject: "gym-crm"},
				}, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantCalled:     true,
		},
		{
			name:           "missing header",
			setupMock:      func(_ *TokenParserMock) {},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			authHeader:     "Basic abc",
			setupMock:      func(_ *TokenParserMock) {},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer bad",
			setupMock: func(m *TokenParserMock) {
				m.On("ParseToken", "bad").Return(nil, errors.New("expired")).Once()
			},
			wantStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := new(TokenParserMock)
			tt.setupMock(parser)

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				assert.Equal(t, "gym-crm", r.Context().Value(middlewarectx.User))
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/workload/john", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			middlewarectx.JWTMiddleware(parser, newNoopLogger())(next).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			assert.Equal(t, tt.wantCalled, called)
			if !tt.wantCalled {
				var body response.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, response.ErrorUnauthorized, body.Error)
			}
			parser.AssertExpectations(t)
		})
	}
}

func TestJWTMiddleware_RealMaker(t *testing.T) {
	maker, err := jwt.NewJWTMaker("0123456789abcdef0123456789abcdef", time.Minute)
	require.NoError(t, err)
	token, err := maker.GenerateToken("gym-crm")
	require.NoError(t, err)

	var user any
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		user = r.Context().Value(middlewarectx.User)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	middlewarectx.JWTMiddleware(maker, newNoopLogger())(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "gym-crm", user)
}

func TestTransactionID(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "provided", header: "tx-123"},
		{name: "generated when absent"},
		{name: "generated when blank", header: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var inCtx string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				inCtx = txid.FromContext(r.Context())
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(txid.Header, tt.header)
			}
			w := httptest.NewRecorder()

			middlewarectx.TransactionID(newNoopLogger())(next).ServeHTTP(w, req)

			echoed := w.Header().Get(txid.Header)
			assert.NotEmpty(t, echoed)
			assert.Equal(t, echoed, inCtx)
			assert.Equal(t, http.StatusNoContent, w.Code)
			if tt.name == "provided" {
				assert.Equal(t, "tx-123", echoed)
			} else {
				assert.NotEqual(t, tt.header, echoed)
			}
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("allows requests within rate limit", func(t *testing.T) {
		handler := middlewarectx.RateLimitMiddleware(newNoopLogger(), 10, 10)(testHandler)
		for range 10 {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("blocks requests exceeding rate limit", func(t *testing.T) {
		handler := middlewarectx.RateLimitMiddleware(newNoopLogger(), 1, 1)(testHandler)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)

		var body response.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, http.StatusTooManyRequests, body.Status)
	})
}
