// Package agent connects the advisor session to a Gemini language model.
package agent

import (
	"context"
	"fmt"

	"github.com/etnz/advisor"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Advisor answers advice prompts through a Gemini model. It implements
// advisor.Completer. Every call is a complete, stateless exchange.
type Advisor struct {
	ModelName string

	client *genai.Client
}

// New creates an Advisor. The genai client reads its API key from the
// environment (GEMINI_API_KEY); the key is never inspected here.
func New(ctx context.Context) (*Advisor, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("initializing Gemini client: %w", err)
	}
	return &Advisor{ModelName: DefaultModel, client: client}, nil
}

// Complete sends the message list to the model and returns its text reply.
//
// The system message becomes the model's system instruction; assistant
// messages are replayed with the model role, everything else with the user
// role.
func (a *Advisor) Complete(ctx context.Context, messages []advisor.Message) (string, error) {
	config := &genai.GenerateContentConfig{}
	var contents []*genai.Content
	for _, m := range messages {
		switch m.Role {
		case advisor.RoleSystem:
			config.SystemInstruction = genai.NewContentFromText(m.Content, genai.RoleUser)
		case advisor.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.ModelName, contents, config)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from model %s", a.ModelName)
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
