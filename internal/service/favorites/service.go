package favorites

import (
	"context"
	"errors"
	"fmt"
	"time"

	favoriteRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/favorite"
	propertyClient "github.com/m04kA/SMC-StayService/internal/integrations/propertyservice"
)

// FavoriteResponse запись избранного в ответе сервиса
type FavoriteResponse struct {
	PropertyID string    `json:"propertyId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// FavoriteListResponse избранное пользователя
type FavoriteListResponse struct {
	Favorites []*FavoriteResponse `json:"favorites"`
	Total     int                 `json:"total"`
}

// Service сервис для работы с избранным
type Service struct {
	favoriteRepo   FavoriteRepository
	propertyClient PropertyServiceClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса избранного
func NewService(
	favoriteRepo FavoriteRepository,
	propertyClient PropertyServiceClient,
	logger Logger,
) *Service {
	return &Service{
		favoriteRepo:   favoriteRepo,
		propertyClient: propertyClient,
		logger:         logger,
	}
}

// Add добавляет объект в избранное. Операция идемпотентна.
func (s *Service) Add(ctx context.Context, userID, propertyID string) error {
	s.logger.Info("AddFavorite: user=%s, property=%s", userID, propertyID)

	// Объект должен существовать
	if _, err := s.propertyClient.GetProperty(ctx, propertyID); err != nil {
		if errors.Is(err, propertyClient.ErrPropertyNotFound) {
			s.logger.Warn("AddFavorite: property id=%s not found", propertyID)
			return ErrPropertyNotFound
		}
		s.logger.Error("AddFavorite: failed to get property id=%s: %v", propertyID, err)
		return fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	if err := s.favoriteRepo.Add(ctx, userID, propertyID); err != nil {
		s.logger.Error("AddFavorite: repository error: %v", err)
		return fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddFavorite: property=%s saved for user=%s", propertyID, userID)
	return nil
}

// Remove убирает объект из избранного
func (s *Service) Remove(ctx context.Context, userID, propertyID string) error {
	s.logger.Info("RemoveFavorite: user=%s, property=%s", userID, propertyID)

	if err := s.favoriteRepo.Remove(ctx, userID, propertyID); err != nil {
		if errors.Is(err, favoriteRepo.ErrFavoriteNotFound) {
			s.logger.Warn("RemoveFavorite: property=%s is not in favorites of user=%s", propertyID, userID)
			return ErrFavoriteNotFound
		}
		s.logger.Error("RemoveFavorite: repository error: %v", err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	return nil
}

// GetUserFavorites получает избранное пользователя
func (s *Service) GetUserFavorites(ctx context.Context, userID string) (*FavoriteListResponse, error) {
	s.logger.Info("GetUserFavorites: fetching favorites for user=%s", userID)

	favorites, err := s.favoriteRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserFavorites: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserFavorites - repository error: %v", ErrInternal, err)
	}

	out := make([]*FavoriteResponse, 0, len(favorites))
	for _, f := range favorites {
		out = append(out, &FavoriteResponse{PropertyID: f.PropertyID, CreatedAt: f.CreatedAt})
	}

	return &FavoriteListResponse{Favorites: out, Total: len(out)}, nil
}
