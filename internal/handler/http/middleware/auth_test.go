package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthRequired(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)

	encode := func(claims map[string]interface{}) jwt.Token {
		token, _, err := ja.Encode(claims)
		require.NoError(t, err)
		return token
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := AuthRequired("operator")(next)

	cases := []struct {
		name       string
		token      jwt.Token
		err        error
		wantStatus int
	}{
		{
			"operator access token admitted",
			encode(map[string]interface{}{"username": "operator", "type": "access"}),
			nil,
			http.StatusNoContent,
		},
		{
			"refresh token rejected",
			encode(map[string]interface{}{"username": "operator", "type": "refresh"}),
			nil,
			http.StatusUnauthorized,
		},
		{
			"unknown subject rejected",
			encode(map[string]interface{}{"username": "intruder", "type": "access"}),
			nil,
			http.StatusUnauthorized,
		},
		{
			"missing type claim rejected",
			encode(map[string]interface{}{"username": "operator"}),
			nil,
			http.StatusUnauthorized,
		},
		{
			"verification error rejected",
			nil,
			errors.New("token is expired"),
			http.StatusUnauthorized,
		},
		{
			"missing token rejected",
			nil,
			nil,
			http.StatusUnauthorized,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/records", nil)
			ctx := jwtauth.NewContext(req.Context(), tc.token, tc.err)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req.WithContext(ctx))

			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}
