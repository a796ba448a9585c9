package service

import (
	"context"
	"errors"
	"quiz-forge/internal/config"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/dto"
	"quiz-forge/internal/logger"
	"quiz-forge/internal/util"
	"quiz-forge/internal/validation"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// EmptyInputWarning is returned instead of questions when the input text is blank.
const EmptyInputWarning = "Please enter some text."

// GeneratorService defines the interface for question generation operations
type GeneratorService interface {
	Generate(ctx context.Context, req *dto.GenerateRequest) (*dto.GenerateResponse, error)
	GenerateBatch(ctx context.Context, req *dto.BatchGenerateRequest) (*dto.BatchGenerateResponse, error)
	ExtractKeywords(ctx context.Context, req *dto.KeywordsRequest) (*dto.KeywordsResponse, error)
}

type generatorService struct {
	cfg          config.GeneratorConfig
	validator    *validation.Validator
	keywordCache KeywordCacheService
	rng          domain.Randomizer
	extractions  singleflight.Group
}

// NewGeneratorService creates a new GeneratorService.
// keywordCache may be nil, in which case keywords are always extracted.
func NewGeneratorService(cfg config.GeneratorConfig, keywordCache KeywordCacheService, rng domain.Randomizer) GeneratorService {
	if keywordCache == nil {
		keywordCache = &noopKeywordCacheService{}
	}
	if rng == nil {
		rng = domain.NewRandomizer()
	}
	if cfg.TopN <= 0 {
		cfg.TopN = domain.DefaultTopN
	}
	return &generatorService{
		cfg: cfg,
		validator: validation.NewValidator(validation.Limits{
			MaxTopN:       cfg.MaxTopN,
			MaxTextLength: cfg.MaxTextLength,
			MaxBatchSize:  cfg.Batch.MaxSize,
		}),
		keywordCache: keywordCache,
		rng:          rng,
	}
}

// Generate implements GeneratorService
func (s *generatorService) Generate(ctx context.Context, req *dto.GenerateRequest) (*dto.GenerateResponse, error) {
	if req == nil {
		return nil, domain.NewInvalidInputError("request is required")
	}
	if errs := s.validator.ValidateTextRequest(req.Text, req.TopN); len(errs) > 0 {
		return nil, errs
	}
	return s.generate(ctx, req), nil
}

// GenerateBatch implements GeneratorService. Results keep the order of the request documents.
func (s *generatorService) GenerateBatch(ctx context.Context, req *dto.BatchGenerateRequest) (*dto.BatchGenerateResponse, error) {
	if req == nil {
		return nil, domain.NewInvalidInputError("request is required")
	}

	texts := make([]string, len(req.Documents))
	topNs := make([]int, len(req.Documents))
	for i, doc := range req.Documents {
		texts[i] = doc.Text
		topNs[i] = doc.TopN
	}
	if errs := s.validator.ValidateBatchRequest(texts, topNs); len(errs) > 0 {
		return nil, errs
	}

	results := make([]*dto.GenerateResponse, len(req.Documents))
	g, gctx := errgroup.WithContext(ctx)
	if s.cfg.Batch.Concurrency > 0 {
		g.SetLimit(s.cfg.Batch.Concurrency)
	}
	for i := range req.Documents {
		doc := req.Documents[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.generate(gctx, &doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("batch generation aborted", err)
	}

	logger.Get().Info("Batch generation completed", zap.Int("documents", len(results)))
	return &dto.BatchGenerateResponse{Results: results}, nil
}

// ExtractKeywords implements GeneratorService
func (s *generatorService) ExtractKeywords(ctx context.Context, req *dto.KeywordsRequest) (*dto.KeywordsResponse, error) {
	if req == nil {
		return nil, domain.NewInvalidInputError("request is required")
	}
	if errs := s.validator.ValidateTextRequest(req.Text, req.TopN); len(errs) > 0 {
		return nil, errs
	}
	return &dto.KeywordsResponse{Keywords: s.keywords(ctx, req.Text, s.topN(req.TopN))}, nil
}

func (s *generatorService) generate(ctx context.Context, req *dto.GenerateRequest) *dto.GenerateResponse {
	if strings.TrimSpace(req.Text) == "" {
		return &dto.GenerateResponse{
			Warning:     EmptyInputWarning,
			Keywords:    []string{},
			Assignments: []string{},
			MCQs:        []domain.MCQItem{},
		}
	}

	keywords := s.keywords(ctx, req.Text, s.topN(req.TopN))
	return &dto.GenerateResponse{
		ID:          util.NewULID(),
		Keywords:    keywords,
		Assignments: domain.GenerateAssignmentQuestions(keywords),
		MCQs:        domain.GenerateMCQs(s.rng, keywords),
	}
}

func (s *generatorService) topN(requested int) int {
	if requested > 0 {
		return requested
	}
	return s.cfg.TopN
}

// keywords returns the cached keyword list for text, extracting and caching it
// on a miss. Cache failures only cost the extraction.
func (s *generatorService) keywords(ctx context.Context, text string, topN int) []string {
	cached, err := s.keywordCache.Get(ctx, text, topN)
	if err == nil {
		return cached
	}
	if !errors.Is(err, ErrKeywordsNotFound) {
		logger.Get().Warn("Keyword cache lookup failed, extracting directly", zap.Error(err))
	}

	v, _, _ := s.extractions.Do(KeywordCacheKey(text, topN), func() (interface{}, error) {
		keywords := domain.ExtractKeywords(text, topN)
		if err := s.keywordCache.Put(ctx, text, topN, keywords); err != nil {
			logger.Get().Warn("Failed to cache extracted keywords", zap.Error(err))
		}
		return keywords, nil
	})

	// v is shared by every caller that joined the same flight.
	shared := v.([]string)
	keywords := make([]string, len(shared))
	copy(keywords, shared)
	return keywords
}
