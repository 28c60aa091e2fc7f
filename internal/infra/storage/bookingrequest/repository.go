package bookingrequest

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/shidenryu/booking-service/internal/domain"
	"github.com/shidenryu/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий локального архива заявок на бронирование
// Архив — зеркало того, что было передано во внешнюю систему учёта;
// жизненным циклом брони владеет внешняя система, записи здесь не мутируются
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория архива заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create архивирует переданную заявку
func (r *Repository) Create(ctx context.Context, req *domain.BookingRequest) (*domain.BookingRequest, error) {
	query, args, err := psqlbuilder.Insert("booking_requests").
		Columns(
			"booking_id",
			"booking_date",
			"time_slot",
			"activities",
			"nickname",
			"email",
			"number_of_guests",
			"guest_sizes",
			"room_number",
			"special_requests",
			"relay_status",
		).
		Values(
			req.BookingID,
			req.Date,
			req.TimeSlot,
			pq.Array(req.Activities),
			req.Nickname,
			req.Email,
			req.NumberOfGuests,
			req.GuestSizes,
			req.RoomNumber,
			req.SpecialRequests,
			req.RelayStatus,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&req.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	req.CreatedAt = createdAt.Time
	return req, nil
}

// GetByID получает заявку по внутреннему ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error) {
	query, args, err := selectColumns().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var req domain.BookingRequest
	var createdAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&req.ID,
		&req.BookingID,
		&req.Date,
		&req.TimeSlot,
		pq.Array(&req.Activities),
		&req.Nickname,
		&req.Email,
		&req.NumberOfGuests,
		&req.GuestSizes,
		&req.RoomNumber,
		&req.SpecialRequests,
		&req.RelayStatus,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan request: %v", ErrScanRow, err)
	}

	req.CreatedAt = createdAt.Time
	return &req, nil
}

// ListWithFilter получает заявки с фильтрацией по периоду и статусу передачи
// Сортировка — сначала новые
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.BookingRequestsFilter) ([]*domain.BookingRequest, error) {
	selectBuilder := selectColumns()

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}
	if filter.RelayStatus != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"relay_status": *filter.RelayStatus})
	}

	selectBuilder = selectBuilder.OrderBy("created_at DESC")

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(uint64(filter.Limit))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRequests(rows)
}

func selectColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"booking_id",
		"booking_date",
		"time_slot",
		"activities",
		"nickname",
		"email",
		"number_of_guests",
		"guest_sizes",
		"room_number",
		"special_requests",
		"relay_status",
		"created_at",
	).From("booking_requests")
}

// scanRequests сканирует результаты запроса в слайс заявок
func (r *Repository) scanRequests(rows *sql.Rows) ([]*domain.BookingRequest, error) {
	requests := make([]*domain.BookingRequest, 0)

	for rows.Next() {
		var req domain.BookingRequest
		var createdAt sql.NullTime

		err := rows.Scan(
			&req.ID,
			&req.BookingID,
			&req.Date,
			&req.TimeSlot,
			pq.Array(&req.Activities),
			&req.Nickname,
			&req.Email,
			&req.NumberOfGuests,
			&req.GuestSizes,
			&req.RoomNumber,
			&req.SpecialRequests,
			&req.RelayStatus,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanRequests - scan row: %v", ErrScanRow, err)
		}

		req.CreatedAt = createdAt.Time
		requests = append(requests, &req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRequests - rows error: %v", ErrScanRow, err)
	}

	return requests, nil
}
