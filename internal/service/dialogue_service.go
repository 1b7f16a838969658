package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"carmatch/backend/internal/engine"
	app_errors "carmatch/backend/internal/errors"
	"carmatch/backend/internal/model"
	"carmatch/backend/internal/repository"
)

// NewConversation is returned when a fresh conversation is opened.
type NewConversation struct {
	ConversationID string `json:"conversationId"`
	WelcomeMessage string `json:"welcomeMessage"`
}

// DialogueService drives one conversation turn end to end: extract the
// message into a delta, merge it into the session's accumulated parameters,
// decide between clarifying and querying, and assemble the reply. Turns of
// the same conversation are processed strictly in submission order.
type DialogueService struct {
	repo        repository.Repository
	extractor   *engine.ParameterExtractor
	policy      engine.CompletenessPolicy
	maxResults  int
	turnTimeout time.Duration
	welcome     string
	locks       *conversationLocks
}

func NewDialogueService(repo repository.Repository, maxResults int, turnTimeout time.Duration, welcome string) *DialogueService {
	if maxResults <= 0 {
		maxResults = engine.DefaultMaxResults
	}
	return &DialogueService{
		repo:        repo,
		extractor:   engine.NewParameterExtractor(),
		maxResults:  maxResults,
		turnTimeout: turnTimeout,
		welcome:     welcome,
		locks:       newConversationLocks(),
	}
}

// StartNewConversation provisions an empty session for the user.
func (s *DialogueService) StartNewConversation(ctx context.Context, userID string) (*NewConversation, error) {
	session, err := s.repo.StartNewSession(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: could not start conversation: %v", app_errors.ErrUnavailable, err)
	}
	slog.Info("Started new conversation", "conversation_id", session.ID, "user_id", userID)
	return &NewConversation{ConversationID: session.ID, WelcomeMessage: s.welcome}, nil
}

// ProcessTurn handles one user message and returns the assembled response.
// The conversation's accumulated parameters are only ever persisted together
// with the turn's history record; on any failure they remain unchanged.
func (s *DialogueService) ProcessTurn(ctx context.Context, userID string, turn *model.ChatTurn) (*model.ChatResponse, error) {
	content := strings.TrimSpace(turn.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: message content must not be empty", app_errors.ErrValidation)
	}

	sessionID, err := s.resolveSessionID(ctx, userID, turn.ConversationID)
	if err != nil {
		return nil, err
	}

	release := s.locks.acquire(sessionID)
	defer release()

	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: conversation %s", app_errors.ErrNotFound, sessionID)
		}
		return nil, fmt.Errorf("%w: could not load conversation: %v", app_errors.ErrUnavailable, err)
	}
	if session.UserID != userID {
		return nil, fmt.Errorf("%w: conversation %s", app_errors.ErrNotFound, sessionID)
	}

	if s.turnTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.turnTimeout)
		defer cancel()
	}

	// Correlate a clarification sub-dialogue: when the previous reply asked a
	// question, this turn answers it and the original request text is kept.
	turnCopy := *turn
	turnCopy.Content = content
	if session.Parameters.ClarificationNeeded {
		turnCopy.IsClarificationAnswer = true
	}
	originalInput := content
	if turnCopy.IsClarificationAnswer && session.OriginalUserInput != "" {
		originalInput = session.OriginalUserInput
	}

	delta := s.extractor.Extract(&turnCopy, session.Parameters)
	merged := engine.Merge(session.Parameters, delta)
	decision := s.policy.Apply(&merged, delta)

	var message string
	var vehicles []model.Vehicle

	switch {
	case decision.Fallback:
		// Nothing was understood; parameters stay as they were and no
		// query runs.
		message = decision.Message
	case !decision.Proceed:
		message = decision.Message
	default:
		spec := engine.BuildQuery(merged, s.maxResults)
		vehicles, err = s.repo.SearchVehicles(ctx, spec)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
				// The turn could not be served in time. Degrade to the
				// fallback reply without committing the merge, so the
				// conversation state is never half-applied.
				slog.Warn("Turn timed out during inventory query", "conversation_id", session.ID)
				return s.fallbackResponse(session, content), nil
			}
			return nil, fmt.Errorf("%w: inventory query failed: %v", app_errors.ErrUnavailable, err)
		}
		message = renderResults(vehicles)
	}

	now := time.Now().UTC()
	session.Parameters = merged
	session.LastInteractionAt = now
	if merged.ClarificationNeeded {
		session.OriginalUserInput = originalInput
	} else {
		session.OriginalUserInput = ""
	}

	record := &model.ChatHistoryRecord{
		ConversationID:   session.ID,
		UserMessage:      content,
		AssistantMessage: message,
		CreatedAt:        now,
	}
	if err := s.repo.CommitTurn(ctx, session, record); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: conversation %s", app_errors.ErrNotFound, sessionID)
		}
		return nil, fmt.Errorf("%w: could not persist turn: %v", app_errors.ErrUnavailable, err)
	}

	slog.Debug("Processed turn",
		"conversation_id", session.ID,
		"intent", merged.Intent,
		"clarification_needed", merged.ClarificationNeeded,
		"results", len(vehicles))

	return &model.ChatResponse{
		Message:             message,
		Vehicles:            vehicles,
		Parameters:          merged,
		ClarificationNeeded: merged.ClarificationNeeded,
		OriginalUserInput:   originalInput,
		ConversationID:      session.ID,
		MatchedCategory:     merged.MatchedCategory,
	}, nil
}

// GetHistory lists the persisted turns of a conversation owned by the user.
func (s *DialogueService) GetHistory(ctx context.Context, userID, conversationID string) ([]model.ChatHistoryRecord, error) {
	session, err := s.repo.GetSession(ctx, conversationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: conversation %s", app_errors.ErrNotFound, conversationID)
		}
		return nil, fmt.Errorf("%w: could not load conversation: %v", app_errors.ErrUnavailable, err)
	}
	if session.UserID != userID {
		return nil, fmt.Errorf("%w: conversation %s", app_errors.ErrNotFound, conversationID)
	}
	records, err := s.repo.GetHistory(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("%w: could not load history: %v", app_errors.ErrUnavailable, err)
	}
	return records, nil
}

// resolveSessionID finds the conversation a turn belongs to: the explicit id
// when given, otherwise the user's most recent session, otherwise a new one.
func (s *DialogueService) resolveSessionID(ctx context.Context, userID, conversationID string) (string, error) {
	if conversationID != "" {
		return conversationID, nil
	}
	session, err := s.repo.GetLatestSession(ctx, userID)
	if err == nil {
		return session.ID, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", fmt.Errorf("%w: could not load conversation: %v", app_errors.ErrUnavailable, err)
	}
	session, err = s.repo.StartNewSession(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("%w: could not start conversation: %v", app_errors.ErrUnavailable, err)
	}
	return session.ID, nil
}

// fallbackResponse builds the degraded reply used when a turn times out.
// Nothing is persisted: the caller may simply retry the message.
func (s *DialogueService) fallbackResponse(session *model.ConversationSession, content string) *model.ChatResponse {
	params := session.Parameters
	params.Intent = model.IntentConfusedFallback
	return &model.ChatResponse{
		Message:           engine.FallbackMessage,
		Parameters:        params,
		OriginalUserInput: content,
		ConversationID:    session.ID,
	}
}

func renderResults(vehicles []model.Vehicle) string {
	if len(vehicles) == 0 {
		return "I couldn't find any vehicles matching your criteria. Try widening the budget or relaxing one of your preferences."
	}
	names := make([]string, len(vehicles))
	for i, v := range vehicles {
		names[i] = fmt.Sprintf("%d %s %s", v.Year, v.Make, v.Model)
	}
	return fmt.Sprintf("I found %d matching vehicle(s) for you: %s.", len(vehicles), strings.Join(names, ", "))
}
