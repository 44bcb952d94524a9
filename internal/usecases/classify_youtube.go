package usecases

import (
	"context"

	"contentsift/internal/classify"
	"contentsift/internal/domain"
	"contentsift/pkg/log"
)

// ClassifyYouTubeUseCase classifies YouTube video resources with
// store-first dedupe.
type ClassifyYouTubeUseCase struct {
	store ResultStore
}

// NewClassifyYouTubeUseCase creates a new ClassifyYouTubeUseCase.
func NewClassifyYouTubeUseCase(store ResultStore) *ClassifyYouTubeUseCase {
	return &ClassifyYouTubeUseCase{store: store}
}

// Execute classifies a YouTube video resource. A video already in the
// store comes back with firstSeen false. Error-bearing and id-less
// results are never recorded.
func (uc *ClassifyYouTubeUseCase) Execute(ctx context.Context, video *domain.YouTubeVideo) (*domain.Result, bool) {
	if video != nil && video.ID != "" {
		if recorded, found := uc.store.Get(domain.PlatformYouTube, video.ID); found {
			log.GlobalDebugCtx(ctx, "video already classified", "video_id", video.ID)
			return recorded, false
		}
	}

	result := classify.ClassifyYouTubeContent(video)
	if result.Error != "" {
		log.GlobalWarnCtx(ctx, "youtube classification failed", "error", result.Error)
		return &result, true
	}

	if videoID := result.Details["videoId"]; videoID != "" {
		uc.store.Set(domain.PlatformYouTube, videoID, &result)
	}

	log.GlobalDebugCtx(ctx, "youtube content classified",
		"type", result.Type, "confidence", result.Confidence)

	return &result, true
}
