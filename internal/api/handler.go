package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	app_errors "carmatch/backend/internal/errors"
	"carmatch/backend/internal/interfaces"
	"carmatch/backend/internal/model"
)

// userIDHeader carries the caller-supplied user identity. Authentication
// itself lives in front of this service; without the header every request
// maps to the single default user.
const userIDHeader = "X-User-ID"
const defaultUserID = "default-user"

// ChatHandler exposes the dialogue engine over HTTP.
type ChatHandler struct {
	dialogue interfaces.DialogueService
}

func NewChatHandler(dialogue interfaces.DialogueService) *ChatHandler {
	return &ChatHandler{dialogue: dialogue}
}

func requestUserID(r *http.Request) string {
	if id := r.Header.Get(userIDHeader); id != "" {
		return id
	}
	return defaultUserID
}

// StartConversation godoc
// @Summary      Start a new conversation
// @Description  Opens a fresh conversation session and returns the welcome message.
// @Tags         conversations
// @Produce      json
// @Success      201 {object} service.NewConversation
// @Failure      503 {object} api.ErrorResponse
// @Router       /conversations [post]
func (h *ChatHandler) StartConversation(w http.ResponseWriter, r *http.Request) {
	conv, err := h.dialogue.StartNewConversation(r.Context(), requestUserID(r))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, conv)
}

// SendMessage godoc
// @Summary      Send a chat message
// @Description  Processes one conversation turn and returns ranked vehicle matches or a clarification question.
// @Tags         conversations
// @Accept       json
// @Produce      json
// @Param        message body api.SendMessageRequest true "The user message"
// @Success      200 {object} model.ChatResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      503 {object} api.ErrorResponse
// @Router       /conversations/messages [post]
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request payload", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	turn := &model.ChatTurn{
		ConversationID:        req.ConversationID,
		Content:               req.Content,
		Timestamp:             time.Now().UTC(),
		IsClarificationAnswer: req.IsClarificationAnswer,
		IsFollowUp:            req.IsFollowUp,
	}
	resp, err := h.dialogue.ProcessTurn(r.Context(), requestUserID(r), turn)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// GetHistory godoc
// @Summary      List conversation history
// @Description  Returns the persisted user/assistant message pairs of a conversation.
// @Tags         conversations
// @Produce      json
// @Param        conversationID path string true "Conversation ID"
// @Success      200 {array} model.ChatHistoryRecord
// @Failure      404 {object} api.ErrorResponse
// @Router       /conversations/{conversationID}/history [get]
func (h *ChatHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")
	records, err := h.dialogue.GetHistory(r.Context(), requestUserID(r), conversationID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	if records == nil {
		records = []model.ChatHistoryRecord{}
	}
	respondWithJSON(w, http.StatusOK, records)
}
