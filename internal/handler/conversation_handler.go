package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/s5redllms/NoteBuddy/internal/model"
	"github.com/s5redllms/NoteBuddy/internal/service"
)

// ConversationHandler handles saved chat transcripts.
type ConversationHandler struct {
	conversationService service.ConversationService
}

// NewConversationHandler creates a new conversation handler.
func NewConversationHandler(conversationService service.ConversationService) *ConversationHandler {
	return &ConversationHandler{conversationService: conversationService}
}

// SaveConversationRequest represents a transcript save. A non-zero
// conversation_id updates an existing conversation instead of creating one.
type SaveConversationRequest struct {
	Title          string           `json:"title" validate:"required"`
	Messages       []model.ChatTurn `json:"messages" validate:"required,min=1"`
	ConversationID uint             `json:"conversation_id"`
}

// SaveConversationResponse reports the saved conversation id.
type SaveConversationResponse struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Success bool   `json:"success"`
}

// ConversationSummary is the listing entry, without the transcript body.
type ConversationSummary struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ConversationDetail is the full transcript payload.
type ConversationDetail struct {
	ID        uint             `json:"id"`
	Title     string           `json:"title"`
	Messages  []model.ChatTurn `json:"messages"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// List godoc
// @Summary List the caller's saved conversations, most recently updated first
// @Tags conversations
// @Produce json
// @Success 200 {array} ConversationSummary
// @Failure 401 {object} errors.ErrorResponse
// @Router /conversations [get]
func (h *ConversationHandler) List(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}
	conversations, err := h.conversationService.List(c.Request().Context(), session)
	if err != nil {
		return domainError(err)
	}

	summaries := make([]ConversationSummary, 0, len(conversations))
	for _, conversation := range conversations {
		summaries = append(summaries, ConversationSummary{
			ID:        conversation.ID,
			Title:     conversation.Title,
			CreatedAt: conversation.CreatedAt,
			UpdatedAt: conversation.UpdatedAt,
		})
	}
	return c.JSON(http.StatusOK, summaries)
}

// Save godoc
// @Summary Save or update a conversation transcript
// @Tags conversations
// @Accept json
// @Produce json
// @Param request body SaveConversationRequest true "Transcript"
// @Success 200 {object} SaveConversationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /conversations [post]
func (h *ConversationHandler) Save(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	var req SaveConversationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "title and messages are required")
	}

	id, err := h.conversationService.Save(c.Request().Context(), session, req.ConversationID, req.Title, req.Messages)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, SaveConversationResponse{ID: id, Title: req.Title, Success: true})
}

// Get godoc
// @Summary Load a conversation transcript the caller owns
// @Tags conversations
// @Produce json
// @Param id path int true "Conversation ID"
// @Success 200 {object} ConversationDetail
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /conversations/{id} [get]
func (h *ConversationHandler) Get(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	conversation, turns, err := h.conversationService.Get(c.Request().Context(), session, id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, ConversationDetail{
		ID:        conversation.ID,
		Title:     conversation.Title,
		Messages:  turns,
		CreatedAt: conversation.CreatedAt,
		UpdatedAt: conversation.UpdatedAt,
	})
}

// Delete godoc
// @Summary Delete a conversation the caller owns
// @Tags conversations
// @Produce json
// @Param id path int true "Conversation ID"
// @Success 200 {object} successResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /conversations/{id} [delete]
func (h *ConversationHandler) Delete(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.conversationService.Delete(c.Request().Context(), session, id); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, success())
}
