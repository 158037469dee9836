// Package narrator asks Gemini for a short epilogue of a finished session.
package narrator

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"github.com/tatianab/deadly-dice/internal/models"
	"google.golang.org/api/option"
)

//go:embed prompts/epilogue.txt
var epiloguePrompt string

var epilogueTmpl = template.Must(template.New("epilogue").Parse(epiloguePrompt))

// maxLogLines bounds how much of a long run is sent to the model.
const maxLogLines = 60

type Narrator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func New(ctx context.Context, apiKey, modelName string) (*Narrator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &Narrator{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

func (n *Narrator) Close() {
	n.client.Close()
}

// Epilogue returns a few sentences recounting a finished session.
func (n *Narrator) Epilogue(ctx context.Context, s models.Session) (string, error) {
	if !s.Status.Terminal() {
		return "", fmt.Errorf("session is still %s", s.Status)
	}
	prompt, err := renderPrompt(s)
	if err != nil {
		return "", err
	}

	resp, err := n.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content returned from Gemini")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type from Gemini")
	}
	return strings.TrimSpace(string(text)), nil
}

func renderPrompt(s models.Session) (string, error) {
	lines := s.Log
	if len(lines) > maxLogLines {
		lines = append([]string{"..."}, lines[len(lines)-maxLogLines:]...)
	}
	outcome := "victory"
	if s.Status == models.Lost {
		outcome = "defeat"
	}

	var buf bytes.Buffer
	err := epilogueTmpl.Execute(&buf, struct {
		Outcome     string
		BoardLength int
		Position    int
		Rolls       int
		Kills       int
		Treasures   int
		Attack      int
		Log         []string
	}{
		Outcome:     outcome,
		BoardLength: s.BoardLength,
		Position:    s.Position,
		Rolls:       s.DiceRollCount,
		Kills:       s.Player.MonstersKilled,
		Treasures:   s.Player.TreasuresFound,
		Attack:      s.Player.Attack,
		Log:         lines,
	})
	if err != nil {
		return "", fmt.Errorf("rendering epilogue prompt: %w", err)
	}
	return buf.String(), nil
}
