package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/m04kA/SMC-DomesBooking/internal/domain"
	"github.com/m04kA/SMC-DomesBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-DomesBooking/pkg/psqlbuilder"
)

// DBExecutor переиспользуем интерфейс из dbmetrics
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий бронирований (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

type reservationRow struct {
	CheckIn     time.Time     `db:"check_in"`
	CheckOut    time.Time     `db:"check_out"`
	DomesBooked sql.NullInt64 `db:"domes_booked"`
	Status      string        `db:"status"`
}

// GetOverlapping получает бронирования в указанных статусах, пересекающиеся с окном.
// Интервалы полуоткрытые: existing.check_in < window.checkOut AND existing.check_out > window.checkIn,
// поэтому выезд и заезд в один день не конфликтуют.
func (r *Repository) GetOverlapping(
	ctx context.Context,
	window domain.DateWindow,
	statuses []domain.ReservationStatus,
) ([]domain.OccupyingReservation, error) {
	statusStrings := make([]string, len(statuses))
	for i, s := range statuses {
		statusStrings[i] = string(s)
	}

	query, args, err := psqlbuilder.Select(
		"check_in",
		"check_out",
		"domes_booked",
		"status",
	).
		From("reservations").
		Where(squirrel.Eq{"status": statusStrings}).
		Where(squirrel.Lt{"check_in": window.CheckOutString()}).
		Where(squirrel.Gt{"check_out": window.CheckInString()}).
		OrderBy("check_in ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	var rows []reservationRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - execute query: %v", ErrExecQuery, err)
	}

	reservations := make([]domain.OccupyingReservation, 0, len(rows))
	for _, row := range rows {
		status, err := domain.ParseReservationStatus(row.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: GetOverlapping - %v", ErrScanRow, err)
		}

		reservations = append(reservations, domain.OccupyingReservation{
			CheckIn:     row.CheckIn.UTC(),
			CheckOut:    row.CheckOut.UTC(),
			DomesBooked: int(row.DomesBooked.Int64),
			Status:      status,
		})
	}

	return reservations, nil
}
