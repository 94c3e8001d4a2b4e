package handler

import (
	"net/http"
	"smartnotes/cmd/internal/contract"
	"smartnotes/cmd/internal/domain/entity"
	"smartnotes/cmd/internal/utils"
	"smartnotes/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type TagService interface {
	UserTags(actor *entity.User) ([]string, apierror.ErrorResponse)
	TagStats(actor *entity.User) ([]*contract.TagCountResponse, apierror.ErrorResponse)
}

type DefaultTagRoute struct {
	TagService TagService
}

func NewTagDefault(tagService TagService) *DefaultTagRoute {
	return &DefaultTagRoute{TagService: tagService}
}

func (t *DefaultTagRoute) GetTags(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	tags, apierr := t.TagService.UserTags(user)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"tags": tags}
	return c.JSON(http.StatusOK, &resp)
}

func (t *DefaultTagRoute) GetTagStats(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	stats, apierr := t.TagService.TagStats(user)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"tags": stats}
	return c.JSON(http.StatusOK, &resp)
}
