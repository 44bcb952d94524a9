// Package web exposes the classification engine as a JSON API.
package web

import (
	"bytes"

	"contentsift/internal/classify"
	"contentsift/internal/domain"
	"contentsift/internal/usecases"
	"contentsift/pkg/log"

	"github.com/gofiber/fiber/v2"
)

// Handlers contains the HTTP handlers for the classification API.
type Handlers struct {
	classifyX       *usecases.ClassifyXUseCase
	classifyYouTube *usecases.ClassifyYouTubeUseCase
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(x *usecases.ClassifyXUseCase, yt *usecases.ClassifyYouTubeUseCase) *Handlers {
	return &Handlers{
		classifyX:       x,
		classifyYouTube: yt,
	}
}

// classifyXRequest is the body of POST /api/classify/x.
type classifyXRequest struct {
	URL      string            `json:"url"`
	Text     string            `json:"text"`
	Metadata *domain.XMetadata `json:"metadata,omitempty"`
}

// classifyResponse wraps a classification result with the dedupe flag.
type classifyResponse struct {
	domain.Result
	FirstSeen bool `json:"firstSeen"`
}

// Health reports liveness.
func (h *Handlers) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Stats returns the engine's capability metadata.
func (h *Handlers) Stats(c *fiber.Ctx) error {
	return c.JSON(classify.Stats())
}

// ClassifyX classifies an X item from its URL, text, and collector
// metadata. The engine is total, so any well-formed request gets a 200
// with a structurally valid result; failures live in its error field.
func (h *Handlers) ClassifyX(c *fiber.Ctx) error {
	var req classifyXRequest
	if err := c.BodyParser(&req); err != nil {
		log.GlobalWarnCtx(c.UserContext(), "malformed classify request", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": domain.ErrMalformedRequest.Error(),
		})
	}

	result, firstSeen := h.classifyX.Execute(c.UserContext(), req.URL, req.Text, req.Metadata)
	return c.JSON(classifyResponse{Result: *result, FirstSeen: firstSeen})
}

// ClassifyYouTube classifies a raw YouTube video resource.
func (h *Handlers) ClassifyYouTube(c *fiber.Ctx) error {
	var video *domain.YouTubeVideo
	body := bytes.TrimSpace(c.Body())
	if len(body) > 0 && !bytes.Equal(body, []byte("null")) {
		video = new(domain.YouTubeVideo)
		if err := c.BodyParser(video); err != nil {
			log.GlobalWarnCtx(c.UserContext(), "malformed classify request", "error", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": domain.ErrMalformedRequest.Error(),
			})
		}
	}

	result, firstSeen := h.classifyYouTube.Execute(c.UserContext(), video)
	return c.JSON(classifyResponse{Result: *result, FirstSeen: firstSeen})
}
