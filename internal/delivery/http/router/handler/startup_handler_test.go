package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverycontext "pitchboard/internal/delivery/context"
	"pitchboard/internal/domain/entity"
	"pitchboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartupHandler_List(t *testing.T) {
	uc := &fakeStartupUsecase{
		searchFn: func(_ context.Context, query string) ([]*entity.Startup, error) {
			assert.Equal(t, "robots", query)

			return []*entity.Startup{
				{
					ID:        uuid.New(),
					Title:     "Acme",
					Category:  "robotics",
					CreatedAt: time.Now(),
					Author:    &entity.Author{Username: "octocat"},
				},
			}, nil
		},
	}
	h := NewStartupHandler(uc, nil, newDiscardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/startups?query=robots", nil)
	rec := httptest.NewRecorder()

	err := h.List(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Count    int `json:"count"`
			Startups []struct {
				Title  string `json:"title"`
				Author struct {
					Username string `json:"username"`
				} `json:"author"`
			} `json:"startups"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 1, body.Data.Count)
	require.Len(t, body.Data.Startups, 1)
	assert.Equal(t, "Acme", body.Data.Startups[0].Title)
	assert.Equal(t, "octocat", body.Data.Startups[0].Author.Username)
}

func TestStartupHandler_Create_PassesSessionThrough(t *testing.T) {
	authorID := uuid.New()

	var gotSession *entity.Session
	var gotInput usecase.CreateStartupInput
	uc := &fakeStartupUsecase{
		createFn: func(_ context.Context, session *entity.Session, input usecase.CreateStartupInput) (*usecase.SubmissionResult, error) {
			gotSession = session
			gotInput = input

			return &usecase.SubmissionResult{Status: usecase.SubmissionStatusSuccess}, nil
		},
	}
	h := NewStartupHandler(uc, nil, newDiscardLogger())

	payload := `{"title":"Acme","description":"A robotics company automating logistics.","category":"robotics","link":"https://example.com/a.png","pitch":"We build robots."}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/startups", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req = req.WithContext(deliverycontext.WithSession(req.Context(), &entity.Session{AuthorID: authorID}))
	rec := httptest.NewRecorder()

	err := h.Create(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotSession)
	assert.Equal(t, authorID, gotSession.AuthorID)
	assert.Equal(t, "Acme", gotInput.Title)

	var result usecase.SubmissionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, usecase.SubmissionStatusSuccess, result.Status)
}

func TestStartupHandler_Create_NoSessionEnvelope(t *testing.T) {
	uc := &fakeStartupUsecase{
		createFn: func(_ context.Context, session *entity.Session, _ usecase.CreateStartupInput) (*usecase.SubmissionResult, error) {
			assert.Nil(t, session)

			return &usecase.SubmissionResult{
				Status: usecase.SubmissionStatusError,
				Error:  "Not signed in",
			}, nil
		},
	}
	h := NewStartupHandler(uc, nil, newDiscardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/startups", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Create(e.NewContext(req, rec))

	require.NoError(t, err)
	// The submission envelope travels on a 200; it is form state, not a
	// transport failure.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not signed in")
}

func TestStartupHandler_Detail_InvalidID(t *testing.T) {
	h := NewStartupHandler(&fakeStartupUsecase{}, nil, newDiscardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/startups/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.Detail(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStartupHandler_Detail_Success(t *testing.T) {
	startupID := uuid.New()
	uc := &fakeStartupUsecase{
		detailFn: func(_ context.Context, id uuid.UUID) (*usecase.StartupDetail, error) {
			assert.Equal(t, startupID, id)

			return &usecase.StartupDetail{
				Startup: &entity.Startup{ID: id, Title: "Acme", Pitch: "We build robots."},
				EditorsPicks: &entity.Playlist{
					Slug:     "editors-picks",
					Title:    "Editor's Picks",
					Startups: []*entity.Startup{{Title: "Other"}},
				},
			}, nil
		},
	}
	h := NewStartupHandler(uc, nil, newDiscardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/startups/"+startupID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(startupID.String())

	err := h.Detail(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "We build robots.")
	assert.Contains(t, rec.Body.String(), "editors-picks")
}

func TestUserHandler_Profile_Success(t *testing.T) {
	authorID := uuid.New()
	uc := &fakeStartupUsecase{
		profileFn: func(_ context.Context, id uuid.UUID) (*usecase.Profile, error) {
			assert.Equal(t, authorID, id)

			return &usecase.Profile{
				Author:   &entity.Author{ID: id, Username: "octocat"},
				Startups: []*entity.Startup{{Title: "Acme", AuthorID: id}},
			}, nil
		},
	}
	h := NewUserHandler(uc, newDiscardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+authorID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(authorID.String())

	err := h.Profile(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "octocat")
	assert.Contains(t, rec.Body.String(), "Acme")
}

func TestUserHandler_Profile_InvalidID(t *testing.T) {
	h := NewUserHandler(&fakeStartupUsecase{}, newDiscardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	err := h.Profile(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	err := HealthCheck(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
