package get_checkout

import (
	"context"

	getCheckout "github.com/m04kA/SMC-StayService/internal/usecase/get_checkout"
)

type GetCheckoutUseCase interface {
	Execute(ctx context.Context, req *getCheckout.Request) (*getCheckout.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
