package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/models"
	"budgetly/internal/services"
)

type mockCategoryService struct {
	listCategoriesFn  func(categoryType *models.CategoryType) ([]models.Category, error)
	getCategoryByIDFn func(id string) (*models.Category, error)
}

var _ services.CategoryServicer = (*mockCategoryService)(nil)

func (m *mockCategoryService) ListCategories(_ context.Context, categoryType *models.CategoryType) ([]models.Category, error) {
	if m.listCategoriesFn != nil {
		return m.listCategoriesFn(categoryType)
	}
	return []models.Category{}, nil
}

func (m *mockCategoryService) GetCategoryByID(_ context.Context, id string) (*models.Category, error) {
	if m.getCategoryByIDFn != nil {
		return m.getCategoryByIDFn(id)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) EnsureDefaults(context.Context) (int64, error) { return 0, nil }

func setupCategoryRouter(handler *CategoryHandler) *gin.Engine {
	r := gin.New()
	r.GET("/categories", injectUserID(testUserID), handler.ListCategories)
	r.GET("/categories/:id", injectUserID(testUserID), handler.GetCategoryByID)
	return r
}

func TestCategoryHandler_ListCategories(t *testing.T) {
	t.Run("returns all categories", func(t *testing.T) {
		var gotType *models.CategoryType
		svc := &mockCategoryService{
			listCategoriesFn: func(ct *models.CategoryType) ([]models.Category, error) {
				gotType = ct
				return []models.Category{{Name: "Food", Type: models.CategoryTypeExpense}}, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc))

		rec := doRequest(r, "GET", "/categories", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotType != nil {
			t.Errorf("expected no type filter, got %v", *gotType)
		}
		cats := parseJSON(t, rec)["categories"].([]interface{})
		if len(cats) != 1 {
			t.Errorf("expected 1 category, got %d", len(cats))
		}
	})

	t.Run("passes type filter", func(t *testing.T) {
		var gotType *models.CategoryType
		svc := &mockCategoryService{
			listCategoriesFn: func(ct *models.CategoryType) ([]models.Category, error) {
				gotType = ct
				return nil, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc))

		rec := doRequest(r, "GET", "/categories?type=income", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotType == nil || *gotType != models.CategoryTypeIncome {
			t.Errorf("expected income filter, got %v", gotType)
		}
	})

	t.Run("returns 400 on unknown type", func(t *testing.T) {
		called := false
		svc := &mockCategoryService{
			listCategoriesFn: func(*models.CategoryType) ([]models.Category, error) {
				called = true
				return nil, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc))

		rec := doRequest(r, "GET", "/categories?type=bogus", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
		if called {
			t.Error("service should not be called")
		}
	})

	t.Run("returns 500 on store failure", func(t *testing.T) {
		svc := &mockCategoryService{
			listCategoriesFn: func(*models.CategoryType) ([]models.Category, error) {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, errors.New("connection reset"))
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc))

		rec := doRequest(r, "GET", "/categories", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "INTERNAL_ERROR")
		if msg := result["error"].(map[string]interface{})["message"]; msg == "connection reset" {
			t.Error("internal detail leaked to client")
		}
	})
}

func TestCategoryHandler_GetCategoryByID(t *testing.T) {
	t.Run("returns category", func(t *testing.T) {
		svc := &mockCategoryService{
			getCategoryByIDFn: func(id string) (*models.Category, error) {
				return &models.Category{Base: models.Base{ID: id}, Name: "Rent"}, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc))

		rec := doRequest(r, "GET", "/categories/"+testCatID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		cat := parseJSON(t, rec)["category"].(map[string]interface{})
		if cat["id"] != testCatID {
			t.Errorf("expected id %s, got %v", testCatID, cat["id"])
		}
	})

	t.Run("returns 400 on malformed id", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}))

		rec := doRequest(r, "GET", "/categories/"+badPathID, "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockCategoryService{
			getCategoryByIDFn: func(string) (*models.Category, error) { return nil, apperrors.ErrCategoryNotFound },
		}
		r := setupCategoryRouter(NewCategoryHandler(svc))

		rec := doRequest(r, "GET", "/categories/"+testCatID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CATEGORY_NOT_FOUND")
	})
}
