package handler

import (
	"context"
	"net/http"
	"smartnotes/cmd/internal/contract"
	"smartnotes/cmd/internal/domain/entity"
	"smartnotes/cmd/internal/utils"
	"smartnotes/cmd/internal/utils/apierror"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

type NoteService interface {
	GetNotes(actor *entity.User, limit int) ([]*contract.NoteResponse, apierror.ErrorResponse)
	GetDeletedNotes(actor *entity.User, limit int) ([]*contract.NoteResponse, apierror.ErrorResponse)
	GetNoteByID(actor *entity.User, noteID string) (*contract.NoteResponse, apierror.ErrorResponse)
	CreateNote(actor *entity.User, req *contract.NoteRequest) (*contract.NoteResponse, apierror.ErrorResponse)
	UpdateNote(actor *entity.User, noteID string, req *contract.UpdateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse)
	DeleteNote(actor *entity.User, noteID string) apierror.ErrorResponse
	RestoreNote(actor *entity.User, noteID string) (*contract.NoteResponse, apierror.ErrorResponse)
	GetNoteTags(actor *entity.User, noteID string) ([]*contract.TagResponse, apierror.ErrorResponse)
	DeleteTag(actor *entity.User, tagID int64) apierror.ErrorResponse
}

type GenerationService interface {
	GetSummaries(actor *entity.User, noteID string) ([]*contract.SummaryResponse, apierror.ErrorResponse)
	GenerateSummary(ctx context.Context, actor *entity.User, noteID string) (*contract.SummaryResponse, apierror.ErrorResponse)
	GenerateTags(ctx context.Context, actor *entity.User, noteID string) ([]*contract.TagResponse, apierror.ErrorResponse)
}

type DefaultNoteRoute struct {
	NoteService       NoteService
	GenerationService GenerationService
}

func NewNoteDefault(noteService NoteService, generationService GenerationService) *DefaultNoteRoute {
	return &DefaultNoteRoute{
		NoteService:       noteService,
		GenerationService: generationService,
	}
}

func (n *DefaultNoteRoute) GetNotes(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	limit, perr := parseLimit(c)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	notes, apierr := n.NoteService.GetNotes(user, limit)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"notes": notes}
	return c.JSON(http.StatusOK, &resp)
}

func (n *DefaultNoteRoute) GetTrash(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	limit, perr := parseLimit(c)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	notes, apierr := n.NoteService.GetDeletedNotes(user, limit)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"notes": notes}
	return c.JSON(http.StatusOK, &resp)
}

func (n *DefaultNoteRoute) GetNote(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	note, apierr := n.NoteService.GetNoteByID(user, c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, note)
}

func (n *DefaultNoteRoute) CreateNote(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.NoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	note, apierr := n.NoteService.CreateNote(user, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, &note)
}

func (n *DefaultNoteRoute) UpdateNote(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.UpdateNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	newNote, apierr := n.NoteService.UpdateNote(user, c.Param("id"), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, &newNote)
}

func (n *DefaultNoteRoute) DeleteNote(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	serr := n.NoteService.DeleteNote(user, c.Param("id"))
	if serr != nil {
		return c.JSON(serr.Code(), serr)
	}
	return c.NoContent(http.StatusOK)
}

func (n *DefaultNoteRoute) RestoreNote(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	note, apierr := n.NoteService.RestoreNote(user, c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, note)
}

func (n *DefaultNoteRoute) GetNoteTags(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	tags, apierr := n.NoteService.GetNoteTags(user, c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"tags": tags}
	return c.JSON(http.StatusOK, &resp)
}

// GenerateTags replaces the note's tags with generated ones.
func (n *DefaultNoteRoute) GenerateTags(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	tags, apierr := n.GenerationService.GenerateTags(c.Request().Context(), user, c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"tags": tags}
	return c.JSON(http.StatusCreated, &resp)
}

func (n *DefaultNoteRoute) DeleteTag(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int64"))
	}

	serr := n.NoteService.DeleteTag(user, id)
	if serr != nil {
		return c.JSON(serr.Code(), serr)
	}
	return c.NoContent(http.StatusOK)
}

func (n *DefaultNoteRoute) GetSummaries(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	summaries, apierr := n.GenerationService.GetSummaries(user, c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"summaries": summaries}
	return c.JSON(http.StatusOK, &resp)
}

func (n *DefaultNoteRoute) GenerateSummary(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	summary, apierr := n.GenerationService.GenerateSummary(c.Request().Context(), user, c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, summary)
}

// parseLimit reads the optional "limit" query param. Zero means "use the default".
func parseLimit(c echo.Context) (int, apierror.ErrorResponse) {
	raw := strings.TrimSpace(c.QueryParam("limit"))
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apierror.NewInvalidParamTypeError("limit", "int")
	}
	return limit, nil
}
