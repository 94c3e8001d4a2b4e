package handler

import (
	"net/http"
	"smartnotes/cmd/internal/contract"
	"smartnotes/cmd/internal/domain/entity"
	"smartnotes/cmd/internal/utils"
	"smartnotes/cmd/internal/utils/apierror"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

type SearchService interface {
	SearchByText(actor *entity.User, query string, limit int) (*contract.SearchResponse, apierror.ErrorResponse)
	FilterByTags(actor *entity.User, tags []string, query string, limit int) (*contract.SearchResponse, apierror.ErrorResponse)
	FilterByDateRange(actor *entity.User, start, end time.Time, query string, tags []string, limit int) (*contract.SearchResponse, apierror.ErrorResponse)
}

type DefaultSearchRoute struct {
	SearchService SearchService
	binder        echo.DefaultBinder
}

func NewSearchDefault(searchService SearchService) *DefaultSearchRoute {
	return &DefaultSearchRoute{SearchService: searchService}
}

func (s *DefaultSearchRoute) SearchByText(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.SearchRequest
	if err := s.binder.BindQueryParams(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedQueryError)
	}

	resp, apierr := s.SearchService.SearchByText(user, req.Query, req.Limit)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *DefaultSearchRoute) FilterByTags(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.TagFilterRequest
	if err := s.binder.BindQueryParams(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedQueryError)
	}

	resp, apierr := s.SearchService.FilterByTags(user, splitTags(req.Tags), req.Query, req.Limit)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *DefaultSearchRoute) FilterByDateRange(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.DateFilterRequest
	if err := s.binder.BindQueryParams(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedQueryError)
	}

	start, ok := parseDate(req.Start)
	if !ok {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("start", "date"))
	}

	end, ok := parseDate(req.End)
	if !ok {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("end", "date"))
	}

	resp, apierr := s.SearchService.FilterByDateRange(user, start, end, req.Query, splitTags(req.Tags), req.Limit)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

// parseDate accepts a local calendar day (YYYY-MM-DD) or an RFC3339 instant.
// A blank value yields the zero time, which the search layer reports as missing.
func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, true
	}

	if t, err := time.ParseInLocation(dateLayout, raw, time.Local); err == nil {
		return t, true
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return strings.Split(raw, ",")
}
