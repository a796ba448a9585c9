package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"quiz-forge/internal/cache"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/logger"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// ErrKeywordsNotFound is returned when no cached keyword list exists for a text.
var ErrKeywordsNotFound = errors.New("keywords not found in cache")

// KeywordCacheService caches extracted keyword lists keyed by a digest of the source text.
type KeywordCacheService interface {
	Get(ctx context.Context, text string, topN int) ([]string, error)
	Put(ctx context.Context, text string, topN int, keywords []string) error
}

type keywordCacheServiceImpl struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewKeywordCacheService creates a KeywordCacheService backed by cache.
// A nil cache yields a no-op implementation.
func NewKeywordCacheService(cache domain.Cache, ttl time.Duration) KeywordCacheService {
	if cache == nil {
		logger.Get().Warn("KeywordCacheService initialized with nil cache. Service will be no-op.")
		return &noopKeywordCacheService{}
	}
	return &keywordCacheServiceImpl{
		cache: cache,
		ttl:   ttl,
	}
}

// KeywordCacheKey returns the cache key for the keywords of text at topN.
func KeywordCacheKey(text string, topN int) string {
	sum := sha256.Sum256([]byte(text))
	return cache.GenerateCacheKey("keywords", "list", hex.EncodeToString(sum[:]), strconv.Itoa(topN))
}

func (s *keywordCacheServiceImpl) Put(ctx context.Context, text string, topN int, keywords []string) error {
	if keywords == nil {
		return domain.NewInvalidInputError("cannot cache nil keywords")
	}

	key := KeywordCacheKey(text, topN)
	data, err := json.Marshal(keywords)
	if err != nil {
		return domain.NewInternalError("failed to marshal keywords for caching", err)
	}

	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		logger.Get().Error("Failed to cache keywords", zap.Error(err), zap.String("key", key))
		return domain.NewCacheError(fmt.Sprintf("failed to set keywords to cache for key %s", key), err)
	}
	logger.Get().Debug("Cached keywords", zap.String("key", key), zap.Int("count", len(keywords)), zap.Duration("ttl", s.ttl))
	return nil
}

func (s *keywordCacheServiceImpl) Get(ctx context.Context, text string, topN int) ([]string, error) {
	key := KeywordCacheKey(text, topN)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Debug("Keyword cache miss", zap.String("key", key))
			return nil, ErrKeywordsNotFound
		}
		logger.Get().Error("Failed to get keywords from cache", zap.Error(err), zap.String("key", key))
		return nil, domain.NewCacheError(fmt.Sprintf("failed to get keywords from cache for key %s", key), err)
	}

	if data == "" {
		return nil, ErrKeywordsNotFound
	}

	var keywords []string
	if err := json.Unmarshal([]byte(data), &keywords); err != nil {
		logger.Get().Error("Failed to unmarshal cached keywords", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to unmarshal keywords from cache for key %s", key), err)
	}
	if keywords == nil {
		keywords = []string{}
	}

	logger.Get().Debug("Keyword cache hit", zap.String("key", key))
	return keywords, nil
}

// noopKeywordCacheService is used when no cache backend is configured.
type noopKeywordCacheService struct{}

func (s *noopKeywordCacheService) Put(ctx context.Context, text string, topN int, keywords []string) error {
	return nil
}

func (s *noopKeywordCacheService) Get(ctx context.Context, text string, topN int) ([]string, error) {
	return nil, ErrKeywordsNotFound
}
