package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/s5redllms/NoteBuddy/internal/service"
)

// ChatHandler handles the AI chat endpoints.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ChatRequest represents a chat prompt.
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// ChatResponse represents the assistant's reply. When the inference service
// is down this still carries the fallback text with a 200 status.
type ChatResponse struct {
	Response string `json:"response"`
}

// Send godoc
// @Summary Send a message to the assistant
// @Tags chat
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Chat message"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /chat [post]
func (h *ChatHandler) Send(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}

	response, err := h.chatService.Send(c.Request().Context(), session, req.Message)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, ChatResponse{Response: response})
}

// History godoc
// @Summary Return the caller's last 50 chat messages, newest first
// @Tags chat
// @Produce json
// @Success 200 {array} model.ChatMessage
// @Failure 401 {object} errors.ErrorResponse
// @Router /chat/history [get]
func (h *ChatHandler) History(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}
	messages, err := h.chatService.History(c.Request().Context(), session)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, messages)
}
