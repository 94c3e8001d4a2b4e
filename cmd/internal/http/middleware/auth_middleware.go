package middleware

import (
	"net/http"
	"smartnotes/cmd/internal/domain/entity"
	"smartnotes/cmd/internal/utils"
	"smartnotes/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

type UserRepository interface {
	FindActiveBySub(sub string) (*entity.User, error)
}

type AuthMiddlewareConfig struct {
	UserRepo UserRepository
	// Validate checks the raw Authorization header. Defaults to utils.ValidateToken.
	Validate utils.TokenValidator
}

// NewAuthMiddleware creates the handler with dependencies injected
func NewAuthMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	validate := cfg.Validate
	if validate == nil {
		validate = utils.ValidateToken
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenData, err := utils.ParseTokenDataCtx(c, validate)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apierror.InvalidAuthTokenError)
			}

			user, err := cfg.UserRepo.FindActiveBySub(tokenData.Sub)
			if err != nil {
				log.Errorf("failed to resolve user by sub %s: %v", tokenData.Sub, err)
				return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
			}

			if user == nil {
				// Valid token for a user we no longer have
				return c.JSON(http.StatusUnauthorized, apierror.IDPUserNotFoundError)
			}

			if user.Suspended || !user.Active {
				return c.JSON(http.StatusForbidden, apierror.MissingAccessError)
			}

			c.Set(utils.ContextUserKey, user)
			c.Set("sub", tokenData.Sub)
			return next(c)
		}
	}
}
