package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"psicoclinica-server/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func requestWithRole(role string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/management/appointments", nil)
	ctx := context.WithValue(req.Context(), RoleKey, role)
	return req.WithContext(ctx)
}

func TestRequirePsychologistAllowsStaff(t *testing.T) {
	rec := httptest.NewRecorder()

	var called bool
	RequirePsychologist(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})).ServeHTTP(rec, requestWithRole(entity.RolePsychologist))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequirePsychologistForbidsPatient(t *testing.T) {
	rec := httptest.NewRecorder()

	RequirePsychologist(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})).ServeHTTP(rec, requestWithRole(entity.RolePatient))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequirePsychologistWithoutRoleIsUnauthorized(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/management/appointments", nil)

	RequirePsychologist(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
