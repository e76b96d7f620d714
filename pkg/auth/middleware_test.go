package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMiddleware(t *testing.T) {
	jwtService := NewJWTService(testSecret)
	userToken, _ := jwtService.GenerateJWT(7, "USER", time.Now().Add(time.Hour))
	adminToken, _ := jwtService.GenerateJWT(1, RoleAdmin, time.Now().Add(time.Hour))

	var seenID int
	var seenAdmin bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = UserID(r.Context())
		seenAdmin = IsAdmin(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name         string
		header       string
		adminOnly    bool
		expectedCode int
		expectedID   int
	}{
		{name: "No header", expectedCode: http.StatusUnauthorized},
		{name: "Not bearer", header: "Basic abc", expectedCode: http.StatusUnauthorized},
		{name: "Bad token", header: "Bearer nope", expectedCode: http.StatusUnauthorized},
		{name: "User", header: "Bearer " + userToken, expectedCode: http.StatusOK, expectedID: 7},
		{name: "User on admin route", header: "Bearer " + userToken, adminOnly: true, expectedCode: http.StatusForbidden},
		{name: "Admin on admin route", header: "Bearer " + adminToken, adminOnly: true, expectedCode: http.StatusOK, expectedID: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seenID = 0
			var h http.Handler = next
			if tt.adminOnly {
				h = AdminOnly(h)
			}
			h = Middleware(jwtService)(h)

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedID, seenID)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, tt.adminOnly, seenAdmin)
			}
		})
	}
}
