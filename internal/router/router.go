package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/s5redllms/NoteBuddy/internal/auth"
	apperrors "github.com/s5redllms/NoteBuddy/internal/errors"
	"github.com/s5redllms/NoteBuddy/internal/handler"
	"github.com/s5redllms/NoteBuddy/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	tokens *auth.TokenService,
	sessions auth.SessionStoreInterface,
	adminService service.AdminService,
	authHandler *handler.AuthHandler,
	todoHandler *handler.TodoHandler,
	noteHandler *handler.NoteHandler,
	chatHandler *handler.ChatHandler,
	conversationHandler *handler.ConversationHandler,
	adminHandler *handler.AdminHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = errorHandler

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Form-based auth flows, no session required
	e.POST("/login", authHandler.Login)
	e.POST("/register", authHandler.Register)
	e.GET("/logout", authHandler.Logout)

	// Everything under /api requires a valid, unrevoked session cookie
	api := e.Group("/api", auth.CookieAuth(tokens), auth.ResolveSession(sessions))

	api.GET("/todos", todoHandler.List)
	api.POST("/todos", todoHandler.Create)
	api.PUT("/todos/:id", todoHandler.Update)
	api.DELETE("/todos/:id", todoHandler.Delete)

	api.GET("/notes", noteHandler.List)
	api.POST("/notes", noteHandler.Create)
	api.PUT("/notes/:id", noteHandler.Update)
	api.DELETE("/notes/:id", noteHandler.Delete)
	api.GET("/notes/:id/export/:format", noteHandler.Export)

	api.POST("/chat", chatHandler.Send)
	api.GET("/chat/history", chatHandler.History)

	api.GET("/conversations", conversationHandler.List)
	api.POST("/conversations", conversationHandler.Save)
	api.GET("/conversations/:id", conversationHandler.Get)
	api.DELETE("/conversations/:id", conversationHandler.Delete)

	// Admin endpoints re-verify the role from storage on every request
	admin := api.Group("/admin", requireAdmin(adminService))
	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:id/role", adminHandler.UpdateRole)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/roles", adminHandler.ListRoles)
	admin.GET("/stats", adminHandler.Stats)
}

// requireAdmin allows the request through only when the session user's
// persisted role is admin. The session's cached role claim is ignored, so a
// demotion takes effect immediately.
func requireAdmin(adminService service.AdminService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := auth.FromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrUnauthenticated.Error())
			}
			isAdmin, err := adminService.IsAdmin(c.Request().Context(), session.UserID)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
			}
			if !isAdmin {
				return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrForbidden.Error())
			}
			return next(c)
		}
	}
}

// errorHandler emits every error as the {"error": <string>} JSON shape.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "internal server error"

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		status = echoErr.Code
		if msg, ok := echoErr.Message.(string); ok {
			message = msg
		}
	} else {
		httpErr := apperrors.MapErrorToHTTP(err)
		status = httpErr.StatusCode
		message = httpErr.Message
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, apperrors.ErrorResponse{Error: message})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
