package models

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message" binding:"required"`
	User      *User  `json:"user,omitempty"` // present when signed in
}

// ChatTurn is one stored exchange turn; the history is replayed to the
// model on the next request. Tool calls are not persisted.
type ChatTurn struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// ChatResponse is what the chat handler returns to the frontend. Search and
// Booking carry the latest tool results so the UI can render cards alongside
// the natural-language reply.
type ChatResponse struct {
	SessionID string             `json:"sessionId"`
	Reply     string             `json:"reply"`
	Search    *SearchToolResult  `json:"search,omitempty"`
	Booking   *BookingToolResult `json:"booking,omitempty"`
}
