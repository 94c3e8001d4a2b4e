package handler

import (
	"net/http"
	"smartnotes/cmd/internal/contract"
	"smartnotes/cmd/internal/domain/entity"
	"smartnotes/cmd/internal/utils"
	"smartnotes/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type SuggestionService interface {
	SuggestForQuery(actor *entity.User, partial string, limit int) ([]*contract.SuggestionResponse, apierror.ErrorResponse)
	SuggestQueryCompletions(actor *entity.User, partial string) ([]string, apierror.ErrorResponse)
	PopularTags(actor *entity.User, limit int) ([]*contract.TagCountResponse, apierror.ErrorResponse)
}

type DefaultSuggestionRoute struct {
	SuggestionService SuggestionService
}

func NewSuggestionDefault(suggestionService SuggestionService) *DefaultSuggestionRoute {
	return &DefaultSuggestionRoute{SuggestionService: suggestionService}
}

func (s *DefaultSuggestionRoute) Suggest(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	limit, perr := parseLimit(c)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	suggestions, apierr := s.SuggestionService.SuggestForQuery(user, c.QueryParam("q"), limit)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"suggestions": suggestions}
	return c.JSON(http.StatusOK, &resp)
}

func (s *DefaultSuggestionRoute) Completions(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	completions, apierr := s.SuggestionService.SuggestQueryCompletions(user, c.QueryParam("q"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"completions": completions}
	return c.JSON(http.StatusOK, &resp)
}

func (s *DefaultSuggestionRoute) PopularTags(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	limit, perr := parseLimit(c)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	tags, apierr := s.SuggestionService.PopularTags(user, limit)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"tags": tags}
	return c.JSON(http.StatusOK, &resp)
}
