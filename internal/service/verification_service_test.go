package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labelcheck/internal/domain"
	"labelcheck/internal/verify"
)

func strp(s string) *string { return &s }

func sampleRequest(brand string) domain.VerificationRequest {
	return domain.VerificationRequest{
		Expected: domain.ExpectedRecord{
			BrandName: brand,
		},
		Extracted: &domain.ExtractedRecord{
			BrandName:      strp(brand),
			IsAlcoholLabel: true,
			ImageQuality:   domain.ImageQualityGood,
			Confidence:     0.9,
		},
	}
}

func TestVerify_MissingExtracted(t *testing.T) {
	svc := NewVerificationService(verify.NewEngine(), 10, 2)

	_, err := svc.Verify(context.Background(), domain.VerificationRequest{
		Expected: domain.ExpectedRecord{BrandName: "Old Tom Reserve"},
	})
	assert.ErrorIs(t, err, domain.ErrMissingExtracted)
}

func TestVerify_PassesThroughProcessingTime(t *testing.T) {
	svc := NewVerificationService(verify.NewEngine(), 10, 2)

	req := sampleRequest("Old Tom Reserve")
	req.ProcessingTimeMs = 1234

	res, err := svc.Verify(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), res.ProcessingTimeMs)
	assert.NotEmpty(t, res.ID)
}

func TestVerifyBatch_EmptyBatch(t *testing.T) {
	svc := NewVerificationService(verify.NewEngine(), 10, 2)

	_, err := svc.VerifyBatch(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrEmptyBatch)
}

func TestVerifyBatch_TooLarge(t *testing.T) {
	svc := NewVerificationService(verify.NewEngine(), 2, 2)

	reqs := []domain.VerificationRequest{
		sampleRequest("A"), sampleRequest("B"), sampleRequest("C"),
	}
	_, err := svc.VerifyBatch(context.Background(), reqs)
	assert.ErrorIs(t, err, domain.ErrBatchTooLarge)
}

func TestVerifyBatch_PreservesOrder(t *testing.T) {
	svc := NewVerificationService(verify.NewEngine(), 100, 4)

	reqs := make([]domain.VerificationRequest, 20)
	for i := range reqs {
		reqs[i] = sampleRequest(fmt.Sprintf("Brand %02d", i))
	}

	results, err := svc.VerifyBatch(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, results, 20)

	for i, res := range results {
		require.NotEmpty(t, res.Fields)
		assert.Equal(t, fmt.Sprintf("Brand %02d", i), res.Fields[0].Expected)
	}
}

func TestVerifyBatch_FirstRequestInvalid(t *testing.T) {
	svc := NewVerificationService(verify.NewEngine(), 100, 4)

	reqs := []domain.VerificationRequest{
		{Expected: domain.ExpectedRecord{BrandName: "Old Tom Reserve"}},
	}
	_, err := svc.VerifyBatch(context.Background(), reqs)
	assert.ErrorIs(t, err, domain.ErrMissingExtracted)
}
