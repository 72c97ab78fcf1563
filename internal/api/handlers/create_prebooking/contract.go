package create_prebooking

import (
	"context"

	createLead "github.com/m04kA/SMC-DomesBooking/internal/usecase/create_lead"
)

type CreateLeadUseCase interface {
	Execute(ctx context.Context, req *createLead.Request) (*createLead.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
