package create_lead

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-DomesBooking/internal/domain"
)

type mockLeadRepo struct {
	mock.Mock
}

func (m *mockLeadRepo) Create(ctx context.Context, lead *domain.BookingLead) (*domain.BookingLead, error) {
	args := m.Called(ctx, lead)
	created, _ := args.Get(0).(*domain.BookingLead)
	return created, args.Error(1)
}

type countingMetrics struct {
	leads int
}

func (m *countingMetrics) IncLeadsCreated() {
	m.leads++
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
