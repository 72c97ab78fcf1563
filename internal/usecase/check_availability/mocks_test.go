package check_availability

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-DomesBooking/internal/domain"
)

type mockReservationRepo struct {
	mock.Mock
}

func (m *mockReservationRepo) GetOverlapping(ctx context.Context, window domain.DateWindow, statuses []domain.ReservationStatus) ([]domain.OccupyingReservation, error) {
	args := m.Called(ctx, window, statuses)
	reservations, _ := args.Get(0).([]domain.OccupyingReservation)
	return reservations, args.Error(1)
}

type mockDomeRepo struct {
	mock.Mock
}

func (m *mockDomeRepo) CountActive(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockMetrics struct {
	observed []bool
}

func (m *mockMetrics) ObserveAvailability(available bool) {
	m.observed = append(m.observed, available)
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
