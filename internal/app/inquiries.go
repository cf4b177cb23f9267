package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"elhamas/internal/adapters/observability"
	"elhamas/internal/domain"
)

// InquiryService accepts public contact and booking requests.
type InquiryService struct {
	repo domain.Repository
}

func NewInquiryService(repo domain.Repository) *InquiryService {
	return &InquiryService{repo: repo}
}

// Submit validates and stores a new inquiry. loc is the request locale and is
// used when the form does not name one. Nothing is written on a validation error.
func (s *InquiryService) Submit(ctx context.Context, in domain.InquiryInput, loc domain.Locale) (*domain.Inquiry, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Type = strings.TrimSpace(in.Type)
	if err := validateInput(&in); err != nil {
		return nil, err
	}
	if s.repo == nil {
		return nil, domain.ErrUnavailable
	}

	q := &domain.Inquiry{
		Type:        in.Type,
		Name:        in.Name,
		Email:       strings.ToLower(in.Email),
		Phone:       ptrStr(strings.TrimSpace(in.Phone)),
		Nationality: ptrStr(strings.TrimSpace(in.Nationality)),
		Message:     ptrStr(strings.TrimSpace(in.Message)),
		Locale:      string(loc),
		Meta:        datatypes.JSONMap(in.Meta),
		Status:      domain.InquiryNew,
	}
	if q.Type == "" {
		q.Type = domain.InquiryGeneral
	}
	if l, ok := domain.ParseLocale(in.Locale); ok {
		q.Locale = string(l)
	}
	if q.Locale == "" {
		q.Locale = string(domain.LocaleEN)
	}
	if q.Meta == nil {
		q.Meta = datatypes.JSONMap{}
	}

	if err := s.repo.Inquiries().Create(ctx, q); err != nil {
		log.Error().Err(err).Str("type", q.Type).Msg("inquiry insert failed")
		return nil, fmt.Errorf("create inquiry: %w", err)
	}
	observability.ObserveInquiry(q.Type)
	log.Info().Str("id", q.ID).Str("type", q.Type).Str("locale", q.Locale).Msg("inquiry received")
	return q, nil
}
