package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ChatHandler forwards chat-completion requests to an OpenAI-compatible
// endpoint. It is a pure relay: messages pass through untouched and only
// the assistant's reply text comes back.
type ChatHandler struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewChatHandler configures the relay. model is the default used when the
// request does not name one.
func NewChatHandler(apiKey, baseURL, model string) *ChatHandler {
	return &ChatHandler{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type chatRequest struct {
	Messages json.RawMessage `json:"messages"`
	Model    string          `json:"model"`
}

type chatCompletion struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Chat relays one completion request upstream.
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	if h.apiKey == "" {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Missing OPENAI_API_KEY",
		})
	}

	// An unreadable body degrades to an empty request, like the UI
	// sending no messages at all.
	var req chatRequest
	_ = c.BodyParser(&req)
	if req.Model == "" {
		req.Model = h.model
	}
	if len(req.Messages) == 0 {
		req.Messages = json.RawMessage("[]")
	}

	payload, err := json.Marshal(map[string]any{
		"model":       req.Model,
		"messages":    req.Messages,
		"temperature": 0.2,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Chat error",
		})
	}

	upstream, err := http.NewRequestWithContext(
		c.Context(), http.MethodPost, h.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Chat error",
		})
	}
	upstream.Header.Set("Content-Type", "application/json")
	upstream.Header.Set("Authorization", "Bearer "+h.apiKey)

	resp, err := h.client.Do(upstream)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Chat error: " + err.Error(),
		})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Upstream error: %s", text),
		})
	}

	var completion chatCompletion
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Chat error",
		})
	}
	content := ""
	if len(completion.Choices) > 0 {
		content = completion.Choices[0].Message.Content
	}
	return c.JSON(fiber.Map{"content": content})
}
