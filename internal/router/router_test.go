package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/deppfellow/recipebox/internal/config"
	"github.com/deppfellow/recipebox/internal/errs"
	"github.com/deppfellow/recipebox/internal/handler"
	"github.com/deppfellow/recipebox/internal/lib/password"
	"github.com/deppfellow/recipebox/internal/lib/storage"
	"github.com/deppfellow/recipebox/internal/middleware"
	"github.com/deppfellow/recipebox/internal/model"
	"github.com/deppfellow/recipebox/internal/server"
	"github.com/deppfellow/recipebox/internal/service"
	"github.com/deppfellow/recipebox/internal/service/mocks"
)

const defaultImage = "https://cdn.example.com/default.png"

type testApp struct {
	router    *echo.Echo
	users     *mocks.MockUserRepository
	recipes   *mocks.MockRecipeRepository
	favorites *mocks.MockFavoriteRepository
	store     *mocks.MockObjectStore
	notifier  *mocks.MockWelcomeNotifier
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server: config.ServerConfig{
				CORSAllowedOrigins: []string{"*"},
				MaxUploadSize:      "1M",
			},
			Storage:       config.StorageConfig{DefaultProfileImageURL: defaultImage},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &logger,
	}

	ctrl := gomock.NewController(t)
	app := &testApp{
		users:     mocks.NewMockUserRepository(ctrl),
		recipes:   mocks.NewMockRecipeRepository(ctrl),
		favorites: mocks.NewMockFavoriteRepository(ctrl),
		store:     mocks.NewMockObjectStore(ctrl),
		notifier:  mocks.NewMockWelcomeNotifier(ctrl),
	}

	userService, err := service.NewUserService(app.users, app.notifier, defaultImage)
	require.NoError(t, err)

	services := &service.Services{
		User:     userService,
		Recipe:   service.NewRecipeService(app.recipes),
		Favorite: service.NewFavoriteService(app.favorites),
		Upload:   service.NewUploadService(app.store),
	}

	app.router = NewRouter(s, handler.NewHandlers(s, services), middleware.NewMiddlewares(s))
	return app
}

func (a *testApp) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestRoot(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "RecipeBox API is running", decode[model.MessageResponse](t, rec).Message)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestRegister(t *testing.T) {
	app := newTestApp(t)

	app.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(7), nil)
	app.notifier.EXPECT().EnqueueWelcomeEmail(gomock.Any(), "ana@example.com", "ana").Return(nil)

	rec := app.do(http.MethodPost, "/register", `{"username":"ana","email":"ana@example.com","password":"s3cret"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, model.CreatedResponse{Message: "User registered", ID: 7}, decode[model.CreatedResponse](t, rec))
}

func TestRegister_MissingFields(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/register", `{"username":"ana","password":"s3cret"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[errs.HTTPError](t, rec)
	assert.Equal(t, "Validation failed", body.Message)
	assert.Contains(t, body.Errors, errs.FieldError{Field: "email", Error: "is required"})
}

func TestRegister_MalformedJSON(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/register", `{"username":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_Conflict(t *testing.T) {
	app := newTestApp(t)

	app.users.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(int64(0), &pgconn.PgError{Code: "23505", TableName: "users", ConstraintName: "users_username_key"})

	rec := app.do(http.MethodPost, "/register", `{"username":"ana","email":"ana@example.com","password":"s3cret"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decode[errs.HTTPError](t, rec)
	assert.Equal(t, "USER_ALREADY_EXISTS", body.Code)
	assert.Equal(t, "A User with this Username already exists", body.Message)
}

func TestLogin(t *testing.T) {
	app := newTestApp(t)

	hash, err := password.HashWithParams("s3cret", password.Params{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32})
	require.NoError(t, err)

	registeredAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	app.users.EXPECT().GetByUsername(gomock.Any(), "ana").Return(&model.User{
		ID:              1,
		Username:        "ana",
		Email:           "ana@example.com",
		PasswordHash:    hash,
		ProfileImageURL: defaultImage,
		RegisteredAt:    registeredAt,
	}, nil)

	rec := app.do(http.MethodPost, "/login", `{"username":"ana","password":"s3cret"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]any](t, rec)
	assert.Equal(t, "ana", body["username"])
	assert.Equal(t, "ana@example.com", body["email"])
	assert.Equal(t, defaultImage, body["profile_image_url"])
	assert.NotContains(t, body, "password_hash")
	assert.NotContains(t, rec.Body.String(), "argon2id")
}

func TestLogin_UnknownUser(t *testing.T) {
	app := newTestApp(t)

	app.users.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, pgx.ErrNoRows)

	rec := app.do(http.MethodPost, "/login", `{"username":"ghost","password":"whatever"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", decode[errs.HTTPError](t, rec).Message)
}

func TestLogin_MissingPassword(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/login", `{"username":"ana"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRecipe(t *testing.T) {
	app := newTestApp(t)

	app.recipes.EXPECT().
		Create(gomock.Any(), model.NewRecipe{UserID: 3, Title: "Soup", Description: "Warm", Ingredients: "water", Instructions: "boil"}).
		Return(int64(12), nil)

	rec := app.do(http.MethodPost, "/recipes",
		`{"title":"Soup","description":"Warm","ingredients":"water","steps":"boil","created_by":3}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, model.CreatedResponse{Message: "Recipe created", ID: 12}, decode[model.CreatedResponse](t, rec))
}

func TestCreateRecipe_MissingField(t *testing.T) {
	complete := map[string]any{
		"title":       "Soup",
		"description": "Warm",
		"ingredients": "water",
		"steps":       "boil",
		"created_by":  3,
	}

	for _, field := range []string{"title", "description", "ingredients", "steps", "created_by"} {
		t.Run(field, func(t *testing.T) {
			// No Create expectation: the gomock controller fails the test
			// if the repository is reached.
			app := newTestApp(t)

			payload := make(map[string]any, len(complete))
			for k, v := range complete {
				if k != field {
					payload[k] = v
				}
			}
			body, err := json.Marshal(payload)
			require.NoError(t, err)

			rec := app.do(http.MethodPost, "/recipes", string(body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decode[errs.HTTPError](t, rec).Errors, errs.FieldError{Field: field, Error: "is required"})
		})
	}
}

func TestListRecipes(t *testing.T) {
	app := newTestApp(t)

	app.recipes.EXPECT().ListWithAuthors(gomock.Any()).Return([]model.RecipeWithAuthor{
		{ID: 2, Title: "Cake", Author: "ben"},
		{ID: 1, Title: "Soup", Author: "ana"},
	}, nil)

	rec := app.do(http.MethodGet, "/recipes", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[[]map[string]any](t, rec)
	require.Len(t, body, 2)
	assert.Equal(t, "Cake", body[0]["title"])
	assert.Equal(t, "ben", body[0]["author"])
	assert.Contains(t, body[0], "instructions")
	assert.Contains(t, body[0], "created_at")
}

func TestListMyRecipes(t *testing.T) {
	app := newTestApp(t)

	app.recipes.EXPECT().ListByUser(gomock.Any(), int64(4)).Return([]model.UserRecipe{
		{ID: 9, Title: "Soup", Steps: "boil"},
	}, nil)

	rec := app.do(http.MethodGet, "/my-recipes/4", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[[]map[string]any](t, rec)
	require.Len(t, body, 1)
	assert.Equal(t, "boil", body[0]["steps"])
	assert.Contains(t, body[0], "createdAt")
	assert.NotContains(t, body[0], "instructions")
}

func TestListMyRecipes_Empty(t *testing.T) {
	app := newTestApp(t)

	app.recipes.EXPECT().ListByUser(gomock.Any(), int64(5)).Return([]model.UserRecipe{}, nil)

	rec := app.do(http.MethodGet, "/my-recipes/5", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestListMyRecipes_InvalidUserID(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/my-recipes/abc", "/my-recipes/0", "/favorites/-1"} {
		rec := app.do(http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestAddFavorite(t *testing.T) {
	app := newTestApp(t)

	gomock.InOrder(
		app.favorites.EXPECT().Add(gomock.Any(), int64(1), int64(2)).Return(nil),
		app.favorites.EXPECT().Add(gomock.Any(), int64(1), int64(2)).
			Return(&pgconn.PgError{Code: "23505", TableName: "favorite_recipes", ConstraintName: "favorite_recipes_pkey"}),
	)

	first := app.do(http.MethodPost, "/favorites", `{"user_id":1,"recipe_id":2}`)
	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, "Recipe added to favorites", decode[model.MessageResponse](t, first).Message)

	second := app.do(http.MethodPost, "/favorites", `{"user_id":1,"recipe_id":2}`)
	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Equal(t, "FAVORITE_RECIPE_ALREADY_EXISTS", decode[errs.HTTPError](t, second).Code)
}

func TestListFavorites(t *testing.T) {
	app := newTestApp(t)

	app.favorites.EXPECT().ListByUser(gomock.Any(), int64(1)).Return([]model.FavoriteRecipe{
		{ID: 2, Title: "Cake", Author: "ben"},
	}, nil)

	rec := app.do(http.MethodGet, "/favorites/1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[[]map[string]any](t, rec)
	require.Len(t, body, 1)
	assert.Contains(t, body[0], "saved_at")
}

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	if field != "" {
		part, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	} else {
		require.NoError(t, w.WriteField("note", "no file here"))
	}
	require.NoError(t, w.Close())

	return buf, w.FormDataContentType()
}

func TestUploadProfilePicture(t *testing.T) {
	app := newTestApp(t)

	app.store.EXPECT().Provider().Return("azure").AnyTimes()
	app.store.EXPECT().
		Upload(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, obj storage.Object) (string, error) {
			assert.True(t, strings.HasSuffix(obj.Key, ".jpg"))
			assert.Equal(t, "image/jpeg", obj.ContentType)
			return "https://acct.blob.core.windows.net/images/" + obj.Key, nil
		})

	body, contentType := multipartBody(t, "file", "avatar.JPG", "jpeg-bytes")
	req := httptest.NewRequest(http.MethodPost, "/upload/profile-picture", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()

	app.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, strings.HasPrefix(decode[model.UploadResponse](t, rec).URL, "https://acct.blob.core.windows.net/images/"))
}

func TestUploadProfilePicture_NoFile(t *testing.T) {
	app := newTestApp(t)

	body, contentType := multipartBody(t, "", "", "")
	req := httptest.NewRequest(http.MethodPost, "/upload/profile-picture", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()

	app.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No file provided", decode[errs.HTTPError](t, rec).Message)
}

func TestUploadProfilePicture_TooLarge(t *testing.T) {
	app := newTestApp(t)

	body, contentType := multipartBody(t, "file", "huge.png", strings.Repeat("x", 2<<20))
	req := httptest.NewRequest(http.MethodPost, "/upload/profile-picture", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()

	app.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestSystemRoutes(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		path        string
		wantStatus  int
		wantContent string
	}{
		{"/metrics", http.StatusOK, "recipebox_http_requests_in_flight"},
		{"/docs", http.StatusOK, "/static/openapi.json"},
		{"/static/openapi.json", http.StatusOK, `"/my-recipes/{user_id}"`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := app.do(http.MethodGet, tt.path, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantContent)
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decode[errs.HTTPError](t, rec).Message)
}
