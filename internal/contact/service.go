package contact

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/makerstech/storefront-backend/pkg/logger"
)

// Service accepts contact form submissions.
type Service interface {
	Submit(ctx context.Context, input SubmitInput) (*ReceiptDTO, error)
}

// SubmitInput is the validated contact form payload.
type SubmitInput struct {
	Name    string
	Email   string
	Message string
}

// ReceiptDTO acknowledges a submission.
type ReceiptDTO struct {
	Reference string `json:"reference"`
}

type service struct {
	logg *logger.Logger
}

// NewService constructs a contact service instance.
func NewService(logg *logger.Logger) (Service, error) {
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{logg: logg}, nil
}

// Submit records the submission and hands back a reference the storefront
// can surface in its confirmation toast.
func (s *service) Submit(ctx context.Context, input SubmitInput) (*ReceiptDTO, error) {
	reference := uuid.NewString()
	ctx = s.logg.WithFields(ctx, map[string]any{
		"reference": reference,
		"email":     input.Email,
	})
	s.logg.Info(ctx, "contact form submission received")
	return &ReceiptDTO{Reference: reference}, nil
}
