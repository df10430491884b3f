package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arcade-K/eduscan-server/internal/feature/profile/domain/entity"
)

// mockProfileUsecase is a mock implementation of the ProfileUsecase interface.
type mockProfileUsecase struct {
	GetFunc    func(ctx context.Context) (*entity.Profile, error)
	UpdateFunc func(ctx context.Context, username, status string) (*entity.Profile, error)
}

func (m *mockProfileUsecase) Get(ctx context.Context) (*entity.Profile, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return nil, errors.New("get failed")
}

func (m *mockProfileUsecase) Update(ctx context.Context, username, status string) (*entity.Profile, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, username, status)
	}
	return nil, errors.New("update failed")
}

func newRouter(h *ProfileHandler) *gin.Engine {
	router := gin.New()
	router.GET("/profile", h.Get)
	router.PUT("/profile", h.Update)
	return router
}

func TestProfileHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewProfileHandler(&mockProfileUsecase{
		GetFunc: func(context.Context) (*entity.Profile, error) {
			return &entity.Profile{Username: "guest"}, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	newRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	// status is omitted when empty.
	assert.JSONEq(t, `{"username":"guest"}`, w.Body.String())
}

func TestProfileHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		h := NewProfileHandler(&mockProfileUsecase{
			UpdateFunc: func(_ context.Context, username, status string) (*entity.Profile, error) {
				return &entity.Profile{Username: username, Status: status}, nil
			},
		})
		raw, err := json.Marshal(gin.H{"username": "alandrelisboa90", "status": "Ambitious"})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPut, "/profile", bytes.NewBuffer(raw))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"username":"alandrelisboa90","status":"Ambitious"}`, w.Body.String())
	})

	t.Run("failure: flush error", func(t *testing.T) {
		h := NewProfileHandler(&mockProfileUsecase{})
		raw, _ := json.Marshal(gin.H{"username": "x"})
		req := httptest.NewRequest(http.MethodPut, "/profile", bytes.NewBuffer(raw))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
	})

	t.Run("failure: malformed body", func(t *testing.T) {
		h := NewProfileHandler(&mockProfileUsecase{})
		req := httptest.NewRequest(http.MethodPut, "/profile", bytes.NewBufferString(`{`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
