package pricingpolicy

import "errors"

var (
	// ErrPolicyNotFound возвращается, когда у объекта нет своей ценовой политики
	ErrPolicyNotFound = errors.New("pricingpolicy.repository: policy not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("pricingpolicy.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("pricingpolicy.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("pricingpolicy.repository: failed to scan row")
)
