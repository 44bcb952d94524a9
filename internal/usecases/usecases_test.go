package usecases_test

import (
	"context"
	"testing"

	"contentsift/internal/domain"
	"contentsift/internal/usecases"
	"contentsift/test/fixtures"
)

// MockStore is a mock implementation of ResultStore.
type MockStore struct {
	results map[string]*domain.Result
}

func NewMockStore() *MockStore {
	return &MockStore{results: make(map[string]*domain.Result)}
}

func (m *MockStore) Get(platform domain.Platform, contentID string) (*domain.Result, bool) {
	result, found := m.results[string(platform)+"/"+contentID]
	return result, found
}

func (m *MockStore) Set(platform domain.Platform, contentID string, result *domain.Result) {
	m.results[string(platform)+"/"+contentID] = result
}

// ClassifyXUseCase tests

func TestClassifyXUseCase_Execute_FirstSighting(t *testing.T) {
	// Arrange
	store := NewMockStore()
	uc := usecases.NewClassifyXUseCase(store)
	url := fixtures.StatusURL("u", "1")

	// Act
	result, firstSeen := uc.Execute(context.Background(), url, "RT @a: hi", nil)

	// Assert
	if !firstSeen {
		t.Error("expected firstSeen to be true")
	}
	if result.Type != domain.TypeRetweet {
		t.Errorf("type: got %v, want retweet", result.Type)
	}
	if _, found := store.Get(domain.PlatformX, "1"); !found {
		t.Error("expected result to be recorded")
	}
}

func TestClassifyXUseCase_Execute_SecondSighting_ReturnsRecorded(t *testing.T) {
	// Arrange
	store := NewMockStore()
	uc := usecases.NewClassifyXUseCase(store)
	url := fixtures.StatusURL("u", "1")

	// Act
	first, _ := uc.Execute(context.Background(), url, "RT @a: hi", nil)
	second, firstSeen := uc.Execute(context.Background(), url, "different text now", nil)

	// Assert
	if firstSeen {
		t.Error("expected firstSeen to be false on second sighting")
	}
	if second.Type != first.Type {
		t.Errorf("recorded type: got %v, want %v", second.Type, first.Type)
	}
}

func TestClassifyXUseCase_Execute_ErrorResult_IsNotRecorded(t *testing.T) {
	// Arrange
	store := NewMockStore()
	uc := usecases.NewClassifyXUseCase(store)

	// Act
	result, firstSeen := uc.Execute(context.Background(), "", "hello", nil)

	// Assert
	if result.Error == "" {
		t.Fatal("expected an error result")
	}
	if !firstSeen {
		t.Error("error results always report firstSeen true")
	}
	if len(store.results) != 0 {
		t.Errorf("store should be empty, has %d entries", len(store.results))
	}
}

func TestClassifyXUseCase_Execute_ProfileResult_IsNotRecorded(t *testing.T) {
	// Arrange: profiles carry no status id, so there is nothing to dedupe.
	store := NewMockStore()
	uc := usecases.NewClassifyXUseCase(store)

	// Act
	result, firstSeen := uc.Execute(context.Background(), "https://x.com/jack", "", nil)

	// Assert
	if result.Type != domain.TypeProfile {
		t.Errorf("type: got %v, want profile", result.Type)
	}
	if !firstSeen {
		t.Error("expected firstSeen to be true")
	}
	if len(store.results) != 0 {
		t.Errorf("store should be empty, has %d entries", len(store.results))
	}
}

func TestClassifyXUseCase_Execute_MetadataFlagWinsOverText(t *testing.T) {
	// Arrange
	store := NewMockStore()
	uc := usecases.NewClassifyXUseCase(store)
	url := fixtures.StatusURL("watched", "7")

	// Act
	result, _ := uc.Execute(context.Background(), url, "plain text", fixtures.RetweetMetadata())

	// Assert
	if result.Type != domain.TypeRetweet {
		t.Errorf("type: got %v, want retweet", result.Type)
	}
}

func TestClassifyXUseCase_Execute_ReplyMetadata(t *testing.T) {
	// Arrange
	store := NewMockStore()
	uc := usecases.NewClassifyXUseCase(store)
	url := fixtures.StatusURL("watched", "8")

	// Act
	result, _ := uc.Execute(context.Background(), url, "sure, agreed", fixtures.ReplyMetadata())

	// Assert
	if result.Type != domain.TypeReply {
		t.Errorf("type: got %v, want reply", result.Type)
	}
}

// ClassifyYouTubeUseCase tests

func TestClassifyYouTubeUseCase_Execute_FirstSighting(t *testing.T) {
	// Arrange
	store := NewMockStore()
	uc := usecases.NewClassifyYouTubeUseCase(store)

	// Act
	result, firstSeen := uc.Execute(context.Background(), fixtures.ShortVideo("s1"))

	// Assert
	if !firstSeen {
		t.Error("expected firstSeen to be true")
	}
	if result.Type != domain.TypeShort {
		t.Errorf("type: got %v, want short", result.Type)
	}
	if _, found := store.Get(domain.PlatformYouTube, "s1"); !found {
		t.Error("expected result to be recorded")
	}
}

func TestClassifyYouTubeUseCase_Execute_PlainVideo(t *testing.T) {
	// Arrange
	store := NewMockStore()
	uc := usecases.NewClassifyYouTubeUseCase(store)

	// Act
	result, firstSeen := uc.Execute(context.Background(), fixtures.PlainVideo("v9"))

	// Assert
	if result.Type != domain.TypeVideo {
		t.Errorf("type: got %v, want video", result.Type)
	}
	if !firstSeen {
		t.Error("expected firstSeen to be true")
	}
}

func TestClassifyYouTubeUseCase_Execute_SecondSighting_ReturnsRecorded(t *testing.T) {
	// Arrange
	store := NewMockStore()
	uc := usecases.NewClassifyYouTubeUseCase(store)

	// Act
	uc.Execute(context.Background(), fixtures.LiveVideo("live1"))
	result, firstSeen := uc.Execute(context.Background(), fixtures.LiveVideo("live1"))

	// Assert
	if firstSeen {
		t.Error("expected firstSeen to be false on second sighting")
	}
	if result.Type != domain.TypeLivestream {
		t.Errorf("type: got %v, want livestream", result.Type)
	}
}

func TestClassifyYouTubeUseCase_Execute_NilVideo_IsNotRecorded(t *testing.T) {
	// Arrange
	store := NewMockStore()
	uc := usecases.NewClassifyYouTubeUseCase(store)

	// Act
	result, firstSeen := uc.Execute(context.Background(), nil)

	// Assert
	if result.Error == "" {
		t.Fatal("expected an error result")
	}
	if !firstSeen {
		t.Error("error results always report firstSeen true")
	}
	if len(store.results) != 0 {
		t.Errorf("store should be empty, has %d entries", len(store.results))
	}
}
