package service

import (
	"context"
	"log/slog"
	"strings"

	"servicehub/internal/cache"
	"servicehub/internal/microservices/http-api/dto"
	"servicehub/internal/microservices/http-api/models"
	"servicehub/internal/microservices/http-api/repository"
)

const mastersCacheKey = "masters:all"

type MasterService interface {
	ListMasters(ctx context.Context, categoryID int64) ([]dto.MasterResponse, error)
	GetMaster(ctx context.Context, id int64) (*dto.MasterResponse, error)
	SearchMasters(ctx context.Context, q dto.SearchQuery) ([]dto.MasterResponse, error)
}

type masterService struct {
	masterRepo   repository.MasterRepository
	categoryRepo repository.CategoryRepository
	cache        *cache.Store
}

func NewMasterService(
	masterRepo repository.MasterRepository,
	categoryRepo repository.CategoryRepository,
	store *cache.Store,
) MasterService {
	return &masterService{
		masterRepo:   masterRepo,
		categoryRepo: categoryRepo,
		cache:        store,
	}
}

// ListMasters returns all masters, or only those offering a service in the
// given category when categoryID is non-zero.
func (s *masterService) ListMasters(ctx context.Context, categoryID int64) ([]dto.MasterResponse, error) {
	if categoryID != 0 {
		masters, err := s.masterRepo.FindByCategory(categoryID)
		if err != nil {
			return nil, err
		}
		return s.toResponses(masters), nil
	}

	var cached []dto.MasterResponse
	if err := s.cache.Get(ctx, mastersCacheKey, &cached); err == nil {
		return cached, nil
	}

	masters, err := s.masterRepo.FindAll()
	if err != nil {
		return nil, err
	}
	responses := s.toResponses(masters)

	if err := s.cache.Set(ctx, mastersCacheKey, responses); err != nil {
		slog.Warn("failed to cache master list", "error", err)
	}

	return responses, nil
}

func (s *masterService) GetMaster(ctx context.Context, id int64) (*dto.MasterResponse, error) {
	master, err := s.masterRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	resp := dto.MasterResponse{
		Master:   *master,
		Category: s.primaryCategory(master),
	}
	return &resp, nil
}

// SearchMasters filters the master directory by category, free text, and city.
func (s *masterService) SearchMasters(ctx context.Context, q dto.SearchQuery) ([]dto.MasterResponse, error) {
	masters, err := s.ListMasters(ctx, q.Category)
	if err != nil {
		return nil, err
	}

	results := make([]dto.MasterResponse, 0, len(masters))
	term := strings.ToLower(strings.TrimSpace(q.Query))
	city := strings.ToLower(strings.TrimSpace(q.City))

	for _, master := range masters {
		if term != "" && !matchesTerm(&master.Master, term) {
			continue
		}
		if city != "" && (master.User == nil || strings.ToLower(master.User.City) != city) {
			continue
		}
		results = append(results, master)
	}

	return results, nil
}

func matchesTerm(master *models.Master, term string) bool {
	if strings.Contains(strings.ToLower(master.Specialization), term) {
		return true
	}
	if strings.Contains(strings.ToLower(master.Description), term) {
		return true
	}
	if master.User != nil {
		if strings.Contains(strings.ToLower(master.User.FirstName), term) {
			return true
		}
		if strings.Contains(strings.ToLower(master.User.LastName), term) {
			return true
		}
	}
	return false
}

func (s *masterService) toResponses(masters []models.Master) []dto.MasterResponse {
	responses := make([]dto.MasterResponse, 0, len(masters))
	for _, master := range masters {
		responses = append(responses, dto.MasterResponse{
			Master:   master,
			Category: s.primaryCategory(&master),
		})
	}
	return responses
}

// primaryCategory resolves the category of the master's first service, for
// directory cards that show a single category label.
func (s *masterService) primaryCategory(master *models.Master) *models.ServiceCategory {
	if len(master.Services) == 0 {
		return nil
	}
	category, err := s.categoryRepo.FindByID(master.Services[0].CategoryID)
	if err != nil {
		return nil
	}
	return category
}
