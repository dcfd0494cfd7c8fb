package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/domain"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/integrations/sportapi"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/catalog/models"
)

// Service сервіс каталогу: зали, секції, тренери.
// Фільтри передаються основному API як query-параметри - шлюз нічого
// не фільтрує сам.
type Service struct {
	client CoreAPIClient
	logger Logger
}

// NewService створює новий екземпляр сервісу каталогу
func NewService(client CoreAPIClient, logger Logger) *Service {
	return &Service{client: client, logger: logger}
}

// ListHalls повертає зали з опціональними фільтрами
func (s *Service) ListHalls(ctx context.Context, filter domain.HallFilter) (*models.HallListResponse, error) {
	halls, err := s.client.ListHalls(ctx, filter.EventType, filter.Capacity)
	if err != nil {
		s.logger.Error("ListHalls: core api error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return models.FromWireHallList(halls), nil
}

// GetHall повертає зал за ідентифікатором
func (s *Service) GetHall(ctx context.Context, id int64) (*models.HallResponse, error) {
	hall, err := s.client.GetHall(ctx, id)
	if err != nil {
		if errors.Is(err, sportapi.ErrNotFound) {
			s.logger.Warn("GetHall: hall id=%d not found", id)
			return nil, ErrHallNotFound
		}
		s.logger.Error("GetHall: core api error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	resp := models.FromWireHall(hall)
	return &resp, nil
}

// ListSections повертає секції з опціональними фільтрами
func (s *Service) ListSections(ctx context.Context, filter domain.SectionFilter) (*models.SectionListResponse, error) {
	sections, err := s.client.ListSections(ctx, filter.SportType, filter.PreparationLevel, filter.AgeCategory, filter.HallID)
	if err != nil {
		s.logger.Error("ListSections: core api error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return models.FromWireSectionList(sections), nil
}

// GetSection повертає секцію за ідентифікатором
func (s *Service) GetSection(ctx context.Context, id int64) (*models.SectionResponse, error) {
	section, err := s.client.GetSection(ctx, id)
	if err != nil {
		if errors.Is(err, sportapi.ErrNotFound) {
			s.logger.Warn("GetSection: section id=%d not found", id)
			return nil, ErrSectionNotFound
		}
		s.logger.Error("GetSection: core api error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	resp := models.FromWireSection(section)
	return &resp, nil
}

// ListTrainers повертає всіх тренерів
func (s *Service) ListTrainers(ctx context.Context) (*models.TrainerListResponse, error) {
	trainers, err := s.client.ListTrainers(ctx)
	if err != nil {
		s.logger.Error("ListTrainers: core api error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return models.FromWireTrainerList(trainers), nil
}
