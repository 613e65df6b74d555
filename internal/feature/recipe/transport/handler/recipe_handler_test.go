package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe_backend/internal/feature/recipe/domain/entity"
	"recipe_backend/internal/feature/recipe/usecase"
)

// mockRecipeUsecase is a mock implementation of the RecipeUsecase interface.
type mockRecipeUsecase struct {
	ListFunc        func(ctx context.Context, userID uint, filter usecase.RecipeFilter) ([]entity.Recipe, error)
	GetFunc         func(ctx context.Context, userID, id uint) (*entity.Recipe, error)
	CreateFunc      func(ctx context.Context, userID uint, in usecase.RecipeInput) (*entity.Recipe, error)
	UpdateFunc      func(ctx context.Context, userID, id uint, in usecase.RecipeUpdate) (*entity.Recipe, error)
	DeleteFunc      func(ctx context.Context, userID, id uint) error
	AttachImageFunc func(ctx context.Context, userID, id uint, filename string, file io.Reader) (*entity.Recipe, error)
}

func (m *mockRecipeUsecase) List(ctx context.Context, userID uint, filter usecase.RecipeFilter) ([]entity.Recipe, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID, filter)
	}
	return []entity.Recipe{}, nil
}

func (m *mockRecipeUsecase) Get(ctx context.Context, userID, id uint) (*entity.Recipe, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID, id)
	}
	return nil, usecase.ErrNotFound
}

func (m *mockRecipeUsecase) Create(ctx context.Context, userID uint, in usecase.RecipeInput) (*entity.Recipe, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, in)
	}
	return nil, usecase.ErrNotFound
}

func (m *mockRecipeUsecase) Update(ctx context.Context, userID, id uint, in usecase.RecipeUpdate) (*entity.Recipe, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, id, in)
	}
	return nil, usecase.ErrNotFound
}

func (m *mockRecipeUsecase) Delete(ctx context.Context, userID, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, id)
	}
	return usecase.ErrNotFound
}

func (m *mockRecipeUsecase) AttachImage(ctx context.Context, userID, id uint, filename string, file io.Reader) (*entity.Recipe, error) {
	if m.AttachImageFunc != nil {
		return m.AttachImageFunc(ctx, userID, id, filename, file)
	}
	return nil, usecase.ErrNotFound
}

func newRecipeRouter(uc *mockRecipeUsecase) *gin.Engine {
	h := NewRecipeHandler(uc)
	router := gin.New()
	g := router.Group("/recipe", stampUser(1))
	g.GET("/recipes", h.List)
	g.POST("/recipes", h.Create)
	g.GET("/recipes/:id", h.Get)
	g.PUT("/recipes/:id", h.Put)
	g.PATCH("/recipes/:id", h.Patch)
	g.DELETE("/recipes/:id", h.Delete)
	g.POST("/recipes/:id/upload-image", h.UploadImage)
	return router
}

func sampleRecipe() *entity.Recipe {
	price, _ := entity.NewPrice("5.00")
	return &entity.Recipe{
		ID:          3,
		UserID:      1,
		Title:       "Sample recipe",
		TimeMinutes: 10,
		Price:       price,
		Link:        "http://example.com/recipe.pdf",
		Tags:        []entity.Tag{{ID: 1, Name: "Vegan", UserID: 1}},
		Ingredients: []entity.Ingredient{{ID: 2, Name: "Salt", UserID: 1}},
	}
}

func TestRecipeHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes the parsed filter through", func(t *testing.T) {
		var gotFilter usecase.RecipeFilter
		router := newRecipeRouter(&mockRecipeUsecase{
			ListFunc: func(ctx context.Context, userID uint, filter usecase.RecipeFilter) ([]entity.Recipe, error) {
				gotFilter = filter
				return []entity.Recipe{*sampleRecipe()}, nil
			},
		})

		req, _ := http.NewRequest(http.MethodGet, "/recipe/recipes?tags=1,2&ingredients=3", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []uint{1, 2}, gotFilter.TagIDs)
		assert.Equal(t, []uint{3}, gotFilter.IngredientIDs)
	})

	t.Run("list shape carries ids and a stringly price", func(t *testing.T) {
		router := newRecipeRouter(&mockRecipeUsecase{
			ListFunc: func(ctx context.Context, userID uint, filter usecase.RecipeFilter) ([]entity.Recipe, error) {
				return []entity.Recipe{*sampleRecipe()}, nil
			},
		})

		req, _ := http.NewRequest(http.MethodGet, "/recipe/recipes", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{
			"id": 3,
			"title": "Sample recipe",
			"time_minutes": 10,
			"price": "5.00",
			"link": "http://example.com/recipe.pdf",
			"image": "",
			"tags": [1],
			"ingredients": [2]
		}]`, w.Body.String())
	})

	t.Run("malformed tag filter is a 400", func(t *testing.T) {
		router := newRecipeRouter(&mockRecipeUsecase{
			ListFunc: func(ctx context.Context, userID uint, filter usecase.RecipeFilter) ([]entity.Recipe, error) {
				t.Error("List should not be called for a malformed filter")
				return nil, nil
			},
		})

		req, _ := http.NewRequest(http.MethodGet, "/recipe/recipes?tags=1,abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed ingredient filter is a 400", func(t *testing.T) {
		router := newRecipeRouter(&mockRecipeUsecase{})

		req, _ := http.NewRequest(http.MethodGet, "/recipe/recipes?ingredients=-2", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty list is a JSON array", func(t *testing.T) {
		router := newRecipeRouter(&mockRecipeUsecase{})

		req, _ := http.NewRequest(http.MethodGet, "/recipe/recipes", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestRecipeHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("detail shape expands the associations", func(t *testing.T) {
		router := newRecipeRouter(&mockRecipeUsecase{
			GetFunc: func(ctx context.Context, userID, id uint) (*entity.Recipe, error) {
				assert.Equal(t, uint(1), userID)
				assert.Equal(t, uint(3), id)
				return sampleRecipe(), nil
			},
		})

		req, _ := http.NewRequest(http.MethodGet, "/recipe/recipes/3", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"id": 3,
			"title": "Sample recipe",
			"time_minutes": 10,
			"price": "5.00",
			"link": "http://example.com/recipe.pdf",
			"image": "",
			"tags": [{"id": 1, "name": "Vegan"}],
			"ingredients": [{"id": 2, "name": "Salt"}]
		}`, w.Body.String())
	})

	t.Run("missing recipe is a 404", func(t *testing.T) {
		router := newRecipeRouter(&mockRecipeUsecase{})

		req, _ := http.NewRequest(http.MethodGet, "/recipe/recipes/999", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id is a 400", func(t *testing.T) {
		router := newRecipeRouter(&mockRecipeUsecase{
			GetFunc: func(ctx context.Context, userID, id uint) (*entity.Recipe, error) {
				t.Error("Get should not be called for a malformed id")
				return nil, usecase.ErrNotFound
			},
		})

		req, _ := http.NewRequest(http.MethodGet, "/recipe/recipes/abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRecipeHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("valid payload yields a 201 detail", func(t *testing.T) {
		var gotInput usecase.RecipeInput
		router := newRecipeRouter(&mockRecipeUsecase{
			CreateFunc: func(ctx context.Context, userID uint, in usecase.RecipeInput) (*entity.Recipe, error) {
				gotInput = in
				return sampleRecipe(), nil
			},
		})

		body := `{"title":"Sample recipe","time_minutes":10,"price":"5.00","link":"http://example.com/recipe.pdf","tags":[1],"ingredients":[2]}`
		req, _ := http.NewRequest(http.MethodPost, "/recipe/recipes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Sample recipe", gotInput.Title)
		assert.Equal(t, 10, gotInput.TimeMinutes)
		assert.Equal(t, "5.00", gotInput.Price.String())
		assert.Equal(t, []uint{1}, gotInput.TagIDs)
		assert.Equal(t, []uint{2}, gotInput.IngredientIDs)
	})

	t.Run("numeric price is accepted too", func(t *testing.T) {
		var gotInput usecase.RecipeInput
		router := newRecipeRouter(&mockRecipeUsecase{
			CreateFunc: func(ctx context.Context, userID uint, in usecase.RecipeInput) (*entity.Recipe, error) {
				gotInput = in
				return sampleRecipe(), nil
			},
		})

		body := `{"title":"Sample recipe","time_minutes":10,"price":5.5}`
		req, _ := http.NewRequest(http.MethodPost, "/recipe/recipes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "5.50", gotInput.Price.String())
	})

	t.Run("missing required fields are a 400", func(t *testing.T) {
		router := newRecipeRouter(&mockRecipeUsecase{
			CreateFunc: func(ctx context.Context, userID uint, in usecase.RecipeInput) (*entity.Recipe, error) {
				t.Error("Create should not be called without required fields")
				return nil, nil
			},
		})

		req, _ := http.NewRequest(http.MethodPost, "/recipe/recipes", bytes.NewBufferString(`{"title":"No price"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("foreign tag ids surface as a 400", func(t *testing.T) {
		router := newRecipeRouter(&mockRecipeUsecase{
			CreateFunc: func(ctx context.Context, userID uint, in usecase.RecipeInput) (*entity.Recipe, error) {
				return nil, usecase.ErrTagNotFound
			},
		})

		body := `{"title":"Sample recipe","time_minutes":10,"price":"5.00","tags":[99]}`
		req, _ := http.NewRequest(http.MethodPost, "/recipe/recipes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRecipeHandler_Put(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("full replace pins every field, absent lists become empty", func(t *testing.T) {
		var gotUpdate usecase.RecipeUpdate
		router := newRecipeRouter(&mockRecipeUsecase{
			UpdateFunc: func(ctx context.Context, userID, id uint, in usecase.RecipeUpdate) (*entity.Recipe, error) {
				gotUpdate = in
				return sampleRecipe(), nil
			},
		})

		body := `{"title":"Replaced","time_minutes":20,"price":"7.25"}`
		req, _ := http.NewRequest(http.MethodPut, "/recipe/recipes/3", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, gotUpdate.Title)
		assert.Equal(t, "Replaced", *gotUpdate.Title)
		require.NotNil(t, gotUpdate.Link)
		assert.Equal(t, "", *gotUpdate.Link, "omitted link resets on a full replace")
		require.NotNil(t, gotUpdate.TagIDs)
		assert.Empty(t, *gotUpdate.TagIDs)
		require.NotNil(t, gotUpdate.IngredientIDs)
		assert.Empty(t, *gotUpdate.IngredientIDs)
	})

	t.Run("incomplete payload is a 400", func(t *testing.T) {
		router := newRecipeRouter(&mockRecipeUsecase{
			UpdateFunc: func(ctx context.Context, userID, id uint, in usecase.RecipeUpdate) (*entity.Recipe, error) {
				t.Error("Update should not be called with an incomplete PUT body")
				return nil, nil
			},
		})

		req, _ := http.NewRequest(http.MethodPut, "/recipe/recipes/3", bytes.NewBufferString(`{"title":"Only title"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRecipeHandler_Patch(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("only the provided fields are forwarded", func(t *testing.T) {
		var gotUpdate usecase.RecipeUpdate
		router := newRecipeRouter(&mockRecipeUsecase{
			UpdateFunc: func(ctx context.Context, userID, id uint, in usecase.RecipeUpdate) (*entity.Recipe, error) {
				gotUpdate = in
				return sampleRecipe(), nil
			},
		})

		req, _ := http.NewRequest(http.MethodPatch, "/recipe/recipes/3", bytes.NewBufferString(`{"title":"Patched"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, gotUpdate.Title)
		assert.Equal(t, "Patched", *gotUpdate.Title)
		assert.Nil(t, gotUpdate.TimeMinutes)
		assert.Nil(t, gotUpdate.Price)
		assert.Nil(t, gotUpdate.TagIDs, "absent tag list leaves associations alone")
	})

	t.Run("explicit empty tag list is forwarded as empty, not nil", func(t *testing.T) {
		var gotUpdate usecase.RecipeUpdate
		router := newRecipeRouter(&mockRecipeUsecase{
			UpdateFunc: func(ctx context.Context, userID, id uint, in usecase.RecipeUpdate) (*entity.Recipe, error) {
				gotUpdate = in
				return sampleRecipe(), nil
			},
		})

		req, _ := http.NewRequest(http.MethodPatch, "/recipe/recipes/3", bytes.NewBufferString(`{"tags":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, gotUpdate.TagIDs)
		assert.Empty(t, *gotUpdate.TagIDs)
	})

	t.Run("patching a foreign recipe is a 404", func(t *testing.T) {
		router := newRecipeRouter(&mockRecipeUsecase{})

		req, _ := http.NewRequest(http.MethodPatch, "/recipe/recipes/3", bytes.NewBufferString(`{"title":"Patched"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRecipeHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("successful delete is a 204 without a body", func(t *testing.T) {
		router := newRecipeRouter(&mockRecipeUsecase{
			DeleteFunc: func(ctx context.Context, userID, id uint) error {
				return nil
			},
		})

		req, _ := http.NewRequest(http.MethodDelete, "/recipe/recipes/3", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("missing recipe is a 404", func(t *testing.T) {
		router := newRecipeRouter(&mockRecipeUsecase{})

		req, _ := http.NewRequest(http.MethodDelete, "/recipe/recipes/999", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRecipeHandler_UploadImage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	multipartBody := func(t *testing.T, field, filename string) (*bytes.Buffer, string) {
		t.Helper()
		buf := &bytes.Buffer{}
		mw := multipart.NewWriter(buf)
		fw, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte("image-bytes"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())
		return buf, mw.FormDataContentType()
	}

	t.Run("stores the file and returns the updated detail", func(t *testing.T) {
		var gotFilename string
		router := newRecipeRouter(&mockRecipeUsecase{
			AttachImageFunc: func(ctx context.Context, userID, id uint, filename string, file io.Reader) (*entity.Recipe, error) {
				gotFilename = filename
				content, err := io.ReadAll(file)
				require.NoError(t, err)
				assert.Equal(t, "image-bytes", string(content))

				r := sampleRecipe()
				r.Image = "recipe/deadbeef.jpg"
				return r, nil
			},
		})

		body, contentType := multipartBody(t, "image", "photo.jpg")
		req, _ := http.NewRequest(http.MethodPost, "/recipe/recipes/3/upload-image", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "photo.jpg", gotFilename)

		var res gin.H
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "recipe/deadbeef.jpg", res["image"])
	})

	t.Run("missing file field is a 400", func(t *testing.T) {
		router := newRecipeRouter(&mockRecipeUsecase{
			AttachImageFunc: func(ctx context.Context, userID, id uint, filename string, file io.Reader) (*entity.Recipe, error) {
				t.Error("AttachImage should not be called without a file")
				return nil, nil
			},
		})

		body, contentType := multipartBody(t, "wrong_field", "photo.jpg")
		req, _ := http.NewRequest(http.MethodPost, "/recipe/recipes/3/upload-image", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("upload against a foreign recipe is a 404", func(t *testing.T) {
		router := newRecipeRouter(&mockRecipeUsecase{})

		body, contentType := multipartBody(t, "image", "photo.jpg")
		req, _ := http.NewRequest(http.MethodPost, "/recipe/recipes/3/upload-image", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
