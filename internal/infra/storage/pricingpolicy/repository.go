package pricingpolicy

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StayService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с ценовыми политиками объектов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория ценовых политик
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByPropertyID получает ценовую политику объекта.
// Отсутствие строки - не ошибка уровня бизнес-логики: сервис подставляет
// платформенные значения по умолчанию.
func (r *Repository) GetByPropertyID(ctx context.Context, propertyID string) (*domain.PricingPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "property_id", "service_fee_rate", "tax_rate", "created_at", "updated_at",
	).
		From("pricing_policies").
		Where(squirrel.Eq{"property_id": propertyID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPropertyID - build select query: %v", ErrBuildQuery, err)
	}

	var policy domain.PricingPolicy
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&policy.ID,
		&policy.PropertyID,
		&policy.ServiceFeeRate,
		&policy.TaxRate,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPropertyID - scan row: %v", ErrScanRow, err)
	}

	policy.CreatedAt = createdAt.Time
	policy.UpdatedAt = updatedAt.Time

	return &policy, nil
}

// Upsert создает или обновляет ценовую политику объекта
func (r *Repository) Upsert(ctx context.Context, policy *domain.PricingPolicy) (*domain.PricingPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if policy.ID == "" {
		policy.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("pricing_policies").
		Columns("id", "property_id", "service_fee_rate", "tax_rate").
		Values(policy.ID, policy.PropertyID, policy.ServiceFeeRate, policy.TaxRate).
		Suffix(`ON CONFLICT (property_id) DO UPDATE
			SET service_fee_rate = EXCLUDED.service_fee_rate,
			    tax_rate = EXCLUDED.tax_rate,
			    updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&policy.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute query: %v", ErrExecQuery, err)
	}

	policy.CreatedAt = createdAt.Time
	policy.UpdatedAt = updatedAt.Time

	return policy, nil
}
