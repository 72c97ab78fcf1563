package lead

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-DomesBooking/internal/domain"
	"github.com/m04kA/SMC-DomesBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-DomesBooking/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий пре-бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пре-бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет пре-бронирование. ID и время создания назначает БД.
func (r *Repository) Create(ctx context.Context, lead *domain.BookingLead) (*domain.BookingLead, error) {
	query, args, err := psqlbuilder.Insert("booking_leads").
		Columns(
			"full_name",
			"check_in",
			"check_out",
			"guests",
			"notes",
			"availability_snapshot",
			"source",
			"status",
		).
		Values(
			lead.FullName,
			lead.Window.CheckInString(),
			lead.Window.CheckOutString(),
			lead.Guests,
			lead.Notes,
			snapshotParam(lead),
			string(lead.Source),
			string(lead.Status),
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowxContext(ctx, query, args...).Scan(
		&lead.ID,
		&createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	lead.CreatedAt = createdAt.Time

	return lead, nil
}

// snapshotParam передаёт снимок как текст, чтобы Postgres привёл его к jsonb
// ([]byte драйвер отправил бы как bytea)
func snapshotParam(lead *domain.BookingLead) interface{} {
	if len(lead.AvailabilitySnapshot) == 0 {
		return nil
	}
	return string(lead.AvailabilitySnapshot)
}
