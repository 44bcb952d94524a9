// Package usecases wires the pure classification engine to the service
// layer: rate limiting, logging, and announce-once bookkeeping.
package usecases

import (
	"context"

	"contentsift/internal/classify"
	"contentsift/internal/domain"
	"contentsift/pkg/log"
)

// ResultStore records classification results per content id so the
// surrounding bot can announce each item at most once.
type ResultStore interface {
	Get(platform domain.Platform, contentID string) (*domain.Result, bool)
	Set(platform domain.Platform, contentID string, result *domain.Result)
}

// ClassifyXUseCase classifies X items with store-first dedupe.
type ClassifyXUseCase struct {
	store ResultStore
}

// NewClassifyXUseCase creates a new ClassifyXUseCase.
func NewClassifyXUseCase(store ResultStore) *ClassifyXUseCase {
	return &ClassifyXUseCase{store: store}
}

// Execute classifies an X item. When the status was classified before
// and is still in the store, the recorded result is returned with
// firstSeen false. Error-bearing and id-less results are never recorded.
func (uc *ClassifyXUseCase) Execute(ctx context.Context, url, text string, md *domain.XMetadata) (*domain.Result, bool) {
	if cid := classify.ExtractContentID(url); cid.Platform == domain.PlatformX && cid.ID != "" {
		if recorded, found := uc.store.Get(domain.PlatformX, cid.ID); found {
			log.GlobalDebugCtx(ctx, "status already classified", "status_id", cid.ID)
			return recorded, false
		}
	}

	result := classify.ClassifyXContent(url, text, md)
	if result.Error != "" {
		log.GlobalWarnCtx(ctx, "x classification failed", "url", url, "error", result.Error)
		return &result, true
	}

	if statusID := result.Details["statusId"]; statusID != "" {
		uc.store.Set(domain.PlatformX, statusID, &result)
	}

	log.GlobalDebugCtx(ctx, "x content classified",
		"type", result.Type, "confidence", result.Confidence)

	return &result, true
}
