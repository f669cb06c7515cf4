package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"labelcheck/internal/domain"
	"labelcheck/internal/verify"
)

// VerificationService runs label verifications.
type VerificationService interface {
	Verify(ctx context.Context, req domain.VerificationRequest) (*domain.VerificationResult, error)
	VerifyBatch(ctx context.Context, reqs []domain.VerificationRequest) ([]domain.VerificationResult, error)
}

type verificationService struct {
	engine       *verify.Engine
	maxBatchSize int
	batchWorkers int
}

// NewVerificationService creates a VerificationService backed by the given engine.
func NewVerificationService(engine *verify.Engine, maxBatchSize, batchWorkers int) VerificationService {
	if batchWorkers < 1 {
		batchWorkers = 1
	}
	return &verificationService{
		engine:       engine,
		maxBatchSize: maxBatchSize,
		batchWorkers: batchWorkers,
	}
}

func (s *verificationService) Verify(ctx context.Context, req domain.VerificationRequest) (*domain.VerificationResult, error) {
	if req.Extracted == nil {
		return nil, domain.ErrMissingExtracted
	}

	start := time.Now()
	result := s.engine.Verify(&req.Expected, req.Extracted)
	result.ID = uuid.New().String()
	result.ProcessingTimeMs = req.ProcessingTimeMs
	if result.ProcessingTimeMs == 0 {
		result.ProcessingTimeMs = time.Since(start).Milliseconds()
	}
	return result, nil
}

// VerifyBatch verifies a batch concurrently, preserving input order.
func (s *verificationService) VerifyBatch(ctx context.Context, reqs []domain.VerificationRequest) ([]domain.VerificationResult, error) {
	if len(reqs) == 0 {
		return nil, domain.ErrEmptyBatch
	}
	if s.maxBatchSize > 0 && len(reqs) > s.maxBatchSize {
		return nil, domain.ErrBatchTooLarge
	}

	results := make([]domain.VerificationResult, len(reqs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchWorkers)

	for i := range reqs {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			res, err := s.Verify(ctx, reqs[i])
			if err != nil {
				return err
			}
			results[i] = *res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Printf("verification_service.VerifyBatch: batch failed: %v", err)
		return nil, err
	}
	return results, nil
}
