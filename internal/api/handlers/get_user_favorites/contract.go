package get_user_favorites

import (
	"context"

	"github.com/m04kA/SMC-StayService/internal/service/favorites"
)

type FavoriteService interface {
	GetUserFavorites(ctx context.Context, userID string) (*favorites.FavoriteListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
