package utils

import (
	"smartnotes/cmd/internal/domain/entity"
	"smartnotes/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// ContextUserKey is where the auth middleware stores the resolved *entity.User.
const ContextUserKey = "user"

func GetUserFromContext(c echo.Context) (*entity.User, apierror.ErrorResponse) {
	val := c.Get(ContextUserKey)
	if val == nil {
		log.Warnf("route %s attempted to read nil user from context", c.Request().URL)
		return nil, apierror.UnauthorizedError
	}

	user, ok := val.(*entity.User)
	if !ok {
		log.Warnf("expected user type at '%s' context key, got %T", ContextUserKey, val)
		return nil, apierror.InternalServerError
	}
	return user, nil
}
