// File: services/assistant/interface.go
package assistant

import (
	"context"

	"coworkly/models"
)

// Service handles one chat exchange with the model, dispatching any tool
// calls it makes along the way.
type Service interface {
	ProcessChat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
}
