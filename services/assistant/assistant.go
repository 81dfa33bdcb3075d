// File: services/assistant/assistant.go
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"coworkly/models"
	"coworkly/services/tools"
	"coworkly/utils"

	genai "github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxToolRounds caps the call-tool/reply loop for one user message.
const maxToolRounds = 4

const fallbackReply = "Sorry, I couldn't process that. Could you rephrase?"

// DefaultAssistantService drives the conversational flow: it replays the
// session history to Gemini, executes the tool calls the model emits, feeds
// the results back, and persists the updated history.
type DefaultAssistantService struct {
	gemini *GeminiClient
	store  *RedisContextStore
	tools  *tools.Service
	logger *zap.Logger
}

func NewDefaultAssistantService(apiKey string, store *RedisContextStore, toolSvc *tools.Service) *DefaultAssistantService {
	return &DefaultAssistantService{
		gemini: NewGeminiClient(apiKey),
		store:  store,
		tools:  toolSvc,
		logger: utils.GetLogger().Named("assistant"),
	}
}

func (s *DefaultAssistantService) ProcessChat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	turns, err := s.store.Get(ctx, sessionID)
	if err != nil {
		s.logger.Warn("failed to load chat context, starting fresh",
			zap.String("sessionID", sessionID), zap.Error(err))
		turns = []models.ChatTurn{}
	}

	session := s.gemini.StartChat(buildSystemPrompt(req.User), historyToContent(turns))

	resp := &models.ChatResponse{SessionID: sessionID}
	parts := []genai.Part{genai.Text(req.Message)}
	var reply strings.Builder

	for round := 0; round < maxToolRounds; round++ {
		out, err := session.SendMessage(ctx, parts...)
		if err != nil {
			return nil, fmt.Errorf("gemini chat error: %w", err)
		}

		calls := collectResponse(out, &reply)
		if len(calls) == 0 {
			break
		}

		parts = parts[:0]
		for _, call := range calls {
			parts = append(parts, s.dispatch(call, req.User, resp))
		}
	}

	if reply.Len() == 0 {
		reply.WriteString(fallbackReply)
	}
	resp.Reply = reply.String()

	turns = append(turns,
		models.ChatTurn{Role: "user", Text: req.Message},
		models.ChatTurn{Role: "model", Text: resp.Reply},
	)
	if err := s.store.Set(ctx, sessionID, turns); err != nil {
		s.logger.Warn("failed to persist chat context",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	return resp, nil
}

// dispatch runs one tool call and packages its result for the model. The
// latest search and booking outcomes are kept on the response so the API can
// return structured results alongside the text reply.
func (s *DefaultAssistantService) dispatch(call genai.FunctionCall, user *models.User, resp *models.ChatResponse) genai.Part {
	switch call.Name {
	case searchToolName:
		var args models.SearchToolArgs
		if err := decodeArgs(call.Args, &args); err != nil {
			s.logger.Error("bad search tool args", zap.Error(err))
			return errorResponse(call.Name, "invalid arguments")
		}
		result := s.tools.SearchCoworkings(args)
		resp.Search = &result
		return functionResponse(call.Name, result)

	case bookToolName:
		var args models.BookingToolArgs
		if err := decodeArgs(call.Args, &args); err != nil {
			s.logger.Error("bad booking tool args", zap.Error(err))
			return errorResponse(call.Name, "invalid arguments")
		}
		var u models.User
		if user != nil {
			u = *user
		}
		result := s.tools.CreateBooking(u, args)
		resp.Booking = &result
		return functionResponse(call.Name, result)

	default:
		s.logger.Warn("model requested unknown tool", zap.String("tool", call.Name))
		return errorResponse(call.Name, "unknown tool")
	}
}

func buildSystemPrompt(user *models.User) string {
	var booking string
	if user == nil || user.Name == "" || user.Email == "" {
		booking = "- User is NOT signed in. If they try to book, politely ask them to sign in first."
	} else {
		booking = fmt.Sprintf(`- User is signed in as %s (%s)
- When user wants to book, use the createBooking tool
- Required info: coworking name, time, duration
- Date defaults to today if not specified
- Confirm all details before finalizing`, user.Name, user.Email)
	}

	return fmt.Sprintf(`You are a helpful coworking space assistant in Montreal.

CONVERSATIONAL SEARCH FLOW:
- When user asks to find a space, assess if you have enough info
- If query is vague (e.g., "find a space", "need workspace"), ask clarifying questions:
  - Budget: "What's your budget per day?"
  - Team size: "Is this for solo work or a team?"
  - Must-have amenities: "Any must-haves? (meeting room, parking, 24/7 access, quiet zone)"
- Be conversational and ask ONE question at a time
- Once you have clear criteria, use searchCoworkings tool
- If query is specific (e.g., "quiet space under $30 in Plateau"), search immediately

SEARCH BEHAVIOR:
- Use searchCoworkings tool with collected filters
- Highlight key features based on user's stated needs
- Be concise and helpful

BOOKING BEHAVIOR:
%s

GUIDELINES:
- Be natural and conversational
- Don't overwhelm with too many questions
- If location is unclear, assume Montreal
- Keep responses concise`, booking)
}

// collectResponse appends any text parts to the reply and returns the
// function calls the model made this round.
func collectResponse(resp *genai.GenerateContentResponse, reply *strings.Builder) []genai.FunctionCall {
	var calls []genai.FunctionCall
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			switch p := part.(type) {
			case genai.Text:
				reply.WriteString(string(p))
			case genai.FunctionCall:
				calls = append(calls, p)
			}
		}
	}
	return calls
}

func historyToContent(turns []models.ChatTurn) []*genai.Content {
	history := make([]*genai.Content, 0, len(turns))
	for _, turn := range turns {
		history = append(history, &genai.Content{
			Role:  turn.Role,
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}
	return history
}

// decodeArgs converts the model's loosely typed argument map into a tool
// argument struct via a JSON round trip.
func decodeArgs(args map[string]any, v any) error {
	b, err := json.Marshal(args)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

func functionResponse(name string, result any) genai.Part {
	payload := map[string]any{}
	if b, err := json.Marshal(result); err == nil {
		_ = json.Unmarshal(b, &payload)
	}
	return genai.FunctionResponse{Name: name, Response: payload}
}

func errorResponse(name, msg string) genai.Part {
	return genai.FunctionResponse{
		Name:     name,
		Response: map[string]any{"success": false, "error": msg},
	}
}
