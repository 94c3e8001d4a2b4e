package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"smartnotes/cmd/internal/contract"
	"smartnotes/cmd/internal/domain/entity"
	"smartnotes/cmd/internal/utils"
	"smartnotes/cmd/internal/utils/apierror"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNoteService struct {
	NoteService

	created  *contract.NoteRequest
	tagID    int64
	restored string
}

func (f *fakeNoteService) CreateNote(_ *entity.User, req *contract.NoteRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	f.created = req
	return &contract.NoteResponse{ID: "n1", Title: req.Title}, nil
}

func (f *fakeNoteService) RestoreNote(_ *entity.User, noteID string) (*contract.NoteResponse, apierror.ErrorResponse) {
	f.restored = noteID
	return &contract.NoteResponse{ID: noteID}, nil
}

func (f *fakeNoteService) DeleteTag(_ *entity.User, tagID int64) apierror.ErrorResponse {
	f.tagID = tagID
	return nil
}

type fakeGenerationService struct {
	GenerationService
}

func (fakeGenerationService) GenerateTags(context.Context, *entity.User, string) ([]*contract.TagResponse, apierror.ErrorResponse) {
	return nil, apierror.GenerationFailedError
}

func TestCreateNoteRoute(t *testing.T) {
	svc := &fakeNoteService{}
	route := NewNoteDefault(svc, fakeGenerationService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader(`{"title":"Hello","content":"world"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(utils.ContextUserKey, &entity.User{ID: 1})

	require.NoError(t, route.CreateNote(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.created)
	assert.Equal(t, "world", svc.created.Content)
}

func TestCreateNoteRouteMalformedBody(t *testing.T) {
	route := NewNoteDefault(&fakeNoteService{}, fakeGenerationService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader(`{"title":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(utils.ContextUserKey, &entity.User{ID: 1})

	require.NoError(t, route.CreateNote(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRestoreNoteRoute(t *testing.T) {
	svc := &fakeNoteService{}
	route := NewNoteDefault(svc, fakeGenerationService{})

	c, rec := newRequest("/api/notes/n1/restore", &entity.User{ID: 1})
	c.SetParamNames("id")
	c.SetParamValues("n1")

	require.NoError(t, route.RestoreNote(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "n1", svc.restored)
}

func TestDeleteTagRoute(t *testing.T) {
	svc := &fakeNoteService{}
	route := NewNoteDefault(svc, fakeGenerationService{})

	c, rec := newRequest("/api/tags/12", &entity.User{ID: 1})
	c.SetParamNames("id")
	c.SetParamValues("1790123456789012345")
	require.NoError(t, route.DeleteTag(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1790123456789012345), svc.tagID)

	c, rec = newRequest("/api/tags/abc", &entity.User{ID: 1})
	c.SetParamNames("id")
	c.SetParamValues("abc")
	require.NoError(t, route.DeleteTag(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateTagsRouteFailure(t *testing.T) {
	route := NewNoteDefault(&fakeNoteService{}, fakeGenerationService{})

	c, rec := newRequest("/api/notes/n1/tags", &entity.User{ID: 1})
	c.SetParamNames("id")
	c.SetParamValues("n1")

	require.NoError(t, route.GenerateTags(c))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGetNotesRouteBadLimit(t *testing.T) {
	route := NewNoteDefault(&fakeNoteService{}, fakeGenerationService{})

	c, rec := newRequest("/api/notes?limit=-", &entity.User{ID: 1})
	require.NoError(t, route.GetNotes(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
