package check_availability

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DomesBooking/internal/domain"
)

var today = time.Date(2026, 2, 10, 15, 30, 0, 0, time.UTC)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

type fixture struct {
	reservations *mockReservationRepo
	domes        *mockDomeRepo
	metrics      *mockMetrics
	uc           *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		reservations: &mockReservationRepo{},
		domes:        &mockDomeRepo{},
		metrics:      &mockMetrics{},
	}
	f.uc = NewUseCase(f.reservations, f.domes, domain.DefaultPricing(), f.metrics, nopLogger{}).
		WithTimeProvider(fixedTime{now: today})
	return f
}

func TestExecute_Available(t *testing.T) {
	f := newFixture()

	window := domain.DateWindow{CheckIn: date(t, "2026-02-13"), CheckOut: date(t, "2026-02-15")}

	f.reservations.On("GetOverlapping", mock.Anything, window, domain.OccupyingStatuses).
		Return([]domain.OccupyingReservation{
			{CheckIn: date(t, "2026-02-12"), CheckOut: date(t, "2026-02-14"), DomesBooked: 2, Status: domain.ReservationStatusConfirmed},
			{CheckIn: date(t, "2026-02-14"), CheckOut: date(t, "2026-02-16"), DomesBooked: 3, Status: domain.ReservationStatusPending},
		}, nil)
	f.domes.On("CountActive", mock.Anything).Return(6, nil)

	resp, err := f.uc.Execute(context.Background(), &Request{CheckInRaw: "2026-02-13", CheckOutRaw: "2026-02-15", Guests: 2})
	require.NoError(t, err)

	assert.True(t, resp.Result.Available)
	assert.Equal(t, 1, resp.Result.AvailableDomes)
	assert.Equal(t, 6, resp.Result.TotalDomes)
	assert.Equal(t, 2, resp.Result.Nights)
	assert.Equal(t, int64(420), resp.Result.NightlyRate)
	assert.Equal(t, int64(840), resp.Result.TotalEstimate)
	assert.Equal(t, "PEN", resp.Currency)
	assert.Equal(t, window, resp.Window)
	assert.Equal(t, MsgAvailable, resp.Message)
	assert.Equal(t, []bool{true}, f.metrics.observed)

	f.reservations.AssertExpectations(t)
	f.domes.AssertExpectations(t)
}

func TestExecute_FullyBooked(t *testing.T) {
	f := newFixture()

	f.reservations.On("GetOverlapping", mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.OccupyingReservation{
			{CheckIn: date(t, "2026-02-12"), CheckOut: date(t, "2026-02-20"), DomesBooked: 4, Status: domain.ReservationStatusConfirmed},
			{CheckIn: date(t, "2026-02-13"), CheckOut: date(t, "2026-02-14"), DomesBooked: 2, Status: domain.ReservationStatusPending},
		}, nil)
	f.domes.On("CountActive", mock.Anything).Return(6, nil)

	resp, err := f.uc.Execute(context.Background(), &Request{CheckInRaw: "2026-02-13", CheckOutRaw: "2026-02-16", Guests: 4})
	require.NoError(t, err)

	assert.False(t, resp.Result.Available)
	assert.Equal(t, 0, resp.Result.AvailableDomes)
	assert.Equal(t, int64(496), resp.Result.NightlyRate)
	assert.Equal(t, int64(1488), resp.Result.TotalEstimate)
	assert.Equal(t, MsgUnavailable, resp.Message)
	assert.Equal(t, []bool{false}, f.metrics.observed)
}

func TestExecute_FallbackWhenNoActiveDomes(t *testing.T) {
	f := newFixture()

	f.reservations.On("GetOverlapping", mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.OccupyingReservation{}, nil)
	f.domes.On("CountActive", mock.Anything).Return(0, nil)

	resp, err := f.uc.Execute(context.Background(), &Request{CheckInRaw: "2026-02-13", CheckOutRaw: "2026-02-14", Guests: 1})
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultTotalDomes, resp.Result.TotalDomes)
	assert.Equal(t, domain.DefaultTotalDomes, resp.Result.AvailableDomes)
}

func TestExecute_ValidationSkipsDataAccess(t *testing.T) {
	cases := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{"slash format", Request{CheckInRaw: "2026/02/12", CheckOutRaw: "2026-02-14", Guests: 2}, domain.ErrBadDateFormat},
		{"past check-in", Request{CheckInRaw: "2026-02-09", CheckOutRaw: "2026-02-14", Guests: 2}, domain.ErrCheckInInPast},
		{"same day", Request{CheckInRaw: "2026-02-12", CheckOutRaw: "2026-02-12", Guests: 2}, domain.ErrCheckOutNotAfterCheckIn},
		{"too many guests", Request{CheckInRaw: "2026-02-12", CheckOutRaw: "2026-02-14", Guests: 9}, domain.ErrGuestsOutOfRange},
		{"NaN guests", Request{CheckInRaw: "2026-02-12", CheckOutRaw: "2026-02-14", Guests: math.NaN()}, domain.ErrGuestsOutOfRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()

			_, err := f.uc.Execute(context.Background(), &tc.req)
			require.ErrorIs(t, err, tc.wantErr)

			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, 400, validationErr.Status)

			f.reservations.AssertNotCalled(t, "GetOverlapping", mock.Anything, mock.Anything, mock.Anything)
			f.domes.AssertNotCalled(t, "CountActive", mock.Anything)
			assert.Empty(t, f.metrics.observed)
		})
	}
}

func TestExecute_ReservationsQueryFails(t *testing.T) {
	f := newFixture()

	f.reservations.On("GetOverlapping", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	_, err := f.uc.Execute(context.Background(), &Request{CheckInRaw: "2026-02-13", CheckOutRaw: "2026-02-14", Guests: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, ErrReservationsQuery)
	assert.Contains(t, err.Error(), "connection refused")

	f.domes.AssertNotCalled(t, "CountActive", mock.Anything)
}

func TestExecute_DomesQueryFailsWithoutFallback(t *testing.T) {
	f := newFixture()

	f.reservations.On("GetOverlapping", mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.OccupyingReservation{}, nil)
	f.domes.On("CountActive", mock.Anything).Return(0, errors.New("timeout"))

	resp, err := f.uc.Execute(context.Background(), &Request{CheckInRaw: "2026-02-13", CheckOutRaw: "2026-02-14", Guests: 1})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, ErrDomesQuery)
	assert.Empty(t, f.metrics.observed)
}

func TestExecute_Idempotent(t *testing.T) {
	f := newFixture()

	f.reservations.On("GetOverlapping", mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.OccupyingReservation{
			{CheckIn: date(t, "2026-02-12"), CheckOut: date(t, "2026-02-14"), DomesBooked: 2, Status: domain.ReservationStatusConfirmed},
		}, nil)
	f.domes.On("CountActive", mock.Anything).Return(6, nil)

	req := &Request{CheckInRaw: "2026-02-13", CheckOutRaw: "2026-02-15", Guests: 3}

	first, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSumOccupiedDomes(t *testing.T) {
	window := domain.DateWindow{CheckIn: date(t, "2026-02-13"), CheckOut: date(t, "2026-02-15")}

	reservations := []domain.OccupyingReservation{
		// общая ночь 13.02
		{CheckIn: date(t, "2026-02-12"), CheckOut: date(t, "2026-02-14"), DomesBooked: 2, Status: domain.ReservationStatusConfirmed},
		// граничит с окном
		{CheckIn: date(t, "2026-02-15"), CheckOut: date(t, "2026-02-16"), DomesBooked: 5, Status: domain.ReservationStatusConfirmed},
		{CheckIn: date(t, "2026-02-10"), CheckOut: date(t, "2026-02-13"), DomesBooked: 5, Status: domain.ReservationStatusPending},
		{CheckIn: date(t, "2026-02-13"), CheckOut: date(t, "2026-02-14"), DomesBooked: 1, Status: domain.ReservationStatusCancelled},
		{CheckIn: date(t, "2026-02-14"), CheckOut: date(t, "2026-02-18"), DomesBooked: 0, Status: domain.ReservationStatusPending},
		{CheckIn: date(t, "2026-02-14"), CheckOut: date(t, "2026-02-15"), DomesBooked: 3, Status: domain.ReservationStatusPending},
	}

	assert.Equal(t, 5, sumOccupiedDomes(window, reservations))
	assert.Equal(t, 0, sumOccupiedDomes(window, nil))
}
