// File: services/assistant/geminiClient.go
package assistant

import (
	"context"
	"fmt"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	searchToolName = "searchCoworkings"
	bookToolName   = "createBooking"
)

type GeminiClient struct {
	model *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) *GeminiClient {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	model.SetTemperature(0.6)
	model.Tools = []*genai.Tool{{FunctionDeclarations: toolDeclarations()}}
	return &GeminiClient{model: model}
}

// StartChat opens a session with the given system prompt and replayed
// history. The model is copied so concurrent sessions do not share the
// per-request system instruction.
func (g *GeminiClient) StartChat(system string, history []*genai.Content) *genai.ChatSession {
	model := *g.model
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(system)},
	}
	session := model.StartChat()
	session.History = history
	return session
}

func toolDeclarations() []*genai.FunctionDeclaration {
	return []*genai.FunctionDeclaration{
		{
			Name:        searchToolName,
			Description: "Search for coworking spaces in Montreal by district, keywords, amenities, price ceiling or team size. Use this whenever the user asks about spaces.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"city": {
						Type:        genai.TypeString,
						Description: "City to search in. Defaults to Montreal.",
					},
					"district": {
						Type:        genai.TypeString,
						Description: "Montreal district, e.g. Plateau, Mile End, Old Montreal, Downtown.",
					},
					"query": {
						Type:        genai.TypeString,
						Description: "Free-text keywords from the user's request.",
					},
					"max": {
						Type:        genai.TypeInteger,
						Description: "Maximum number of results, between 1 and 10. Defaults to 5.",
					},
					"maxPrice": {
						Type:        genai.TypeInteger,
						Description: "Maximum day-pass price in CAD. Omit when the user gave no budget.",
					},
					"teamSize": {
						Type:        genai.TypeString,
						Enum:        []string{"solo", "small", "large"},
						Description: "Size of the user's team, when mentioned.",
					},
					"amenities": {
						Type:        genai.TypeArray,
						Items:       &genai.Schema{Type: genai.TypeString},
						Description: "Amenities the user requires, e.g. parking, meeting rooms, coffee.",
					},
				},
			},
		},
		{
			Name:        bookToolName,
			Description: "Book a coworking space for the signed-in user. Only call this after the user has explicitly confirmed they want to book a specific space at a specific time.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"coworkingName": {
						Type:        genai.TypeString,
						Description: "Exact name of the coworking space to book.",
					},
					"time": {
						Type:        genai.TypeString,
						Description: "Start time in 24h HH:MM format.",
					},
					"duration": {
						Type:        genai.TypeString,
						Description: "How long the booking lasts, e.g. 2h, half day, full day.",
					},
					"date": {
						Type:        genai.TypeString,
						Description: "Booking date as YYYY-MM-DD. Defaults to today.",
					},
				},
				Required: []string{"coworkingName", "time", "duration"},
			},
		},
	}
}
