package draft

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/HSM-BookingGateway/internal/domain"
	"github.com/m04kA/HSM-BookingGateway/pkg/dbmetrics"
	"github.com/m04kA/HSM-BookingGateway/pkg/psqlbuilder"
)

// draftColumns полный список колонок таблицы booking_drafts
var draftColumns = []string{
	"id",
	"service_id",
	"service_name",
	"service_price",
	"selected_date",
	"selected_slot",
	"name",
	"contact",
	"description",
	"address",
	"latitude",
	"longitude",
	"address_revision",
	"status",
	"failure_detail",
	"booking_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с черновиками бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория черновиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый черновик
func (r *Repository) Create(ctx context.Context, draft *domain.BookingDraft) (*domain.BookingDraft, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_drafts").
		Columns(
			"id",
			"service_id",
			"service_name",
			"service_price",
			"name",
			"contact",
			"description",
			"address",
			"latitude",
			"longitude",
			"address_revision",
			"status",
		).
		Values(
			draft.ID,
			draft.ServiceID,
			draft.ServiceName,
			draft.ServicePrice,
			draft.Name,
			draft.Contact,
			draft.Description,
			draft.Address,
			draft.Latitude,
			draft.Longitude,
			draft.AddressRevision,
			draft.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	draft.CreatedAt = createdAt.Time
	draft.UpdatedAt = updatedAt.Time

	return draft, nil
}

// GetByID получает черновик по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.BookingDraft, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(draftColumns...).
		From("booking_drafts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	draft, err := scanDraft(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan draft: %v", ErrScanRow, err)
	}

	return draft, nil
}

// Update сохраняет изменяемые поля черновика и увеличивает address_revision
// Возвращает черновик с обновленными revision и updated_at
func (r *Repository) Update(ctx context.Context, draft *domain.BookingDraft) (*domain.BookingDraft, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_drafts").
		Set("selected_date", draft.SelectedDate).
		Set("selected_slot", draft.SelectedSlot).
		Set("name", draft.Name).
		Set("contact", draft.Contact).
		Set("description", draft.Description).
		Set("address", draft.Address).
		Set("latitude", draft.Latitude).
		Set("longitude", draft.Longitude).
		Set("status", draft.Status).
		Set("failure_detail", draft.FailureDetail).
		Set("address_revision", squirrel.Expr("address_revision + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": draft.ID}).
		Suffix("RETURNING address_revision, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&draft.AddressRevision, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	draft.UpdatedAt = updatedAt.Time

	return draft, nil
}

// UpdateAddressIfRevision записывает адрес, только если черновик не менялся
// с момента revision. Возвращает false, если ревизия уже ушла вперед -
// ответ обратного геокодирования устарел и отбрасывается
func (r *Repository) UpdateAddressIfRevision(ctx context.Context, id uuid.UUID, address string, revision int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_drafts").
		Set("address", address).
		Set("address_revision", squirrel.Expr("address_revision + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "address_revision": revision}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: UpdateAddressIfRevision - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: UpdateAddressIfRevision - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: UpdateAddressIfRevision - rows affected: %v", ErrExecQuery, err)
	}

	return affected == 1, nil
}

// UpdateStatus атомарно переводит черновик из статуса from в статус to
// Возвращает false, если черновик уже не в статусе from (compare-and-swap)
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.DraftStatus) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_drafts").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}

	return affected == 1, nil
}

// SetOutcome записывает результат отправки: новый статус, сообщение об ошибке
// (для failed) или ID созданного бронирования (для succeeded)
func (r *Repository) SetOutcome(ctx context.Context, id uuid.UUID, status domain.DraftStatus, failureDetail *string, bookingID *int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_drafts").
		Set("status", status).
		Set("failure_detail", failureDetail).
		Set("booking_id", bookingID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetOutcome - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetOutcome - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetOutcome - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrDraftNotFound
	}

	return nil
}

// Delete удаляет черновик
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("booking_drafts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrDraftNotFound
	}

	return nil
}

// DeleteExpired удаляет черновики, не менявшиеся с момента cutoff
// Используется сборщиком заброшенных диалогов
func (r *Repository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("booking_drafts").
		Where(squirrel.Lt{"updated_at": cutoff}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanDraft сканирует черновик из строки результата
func scanDraft(row rowScanner) (*domain.BookingDraft, error) {
	var draft domain.BookingDraft
	var servicePrice sql.NullFloat64
	var selectedDate sql.NullTime
	var selectedSlot, failureDetail sql.NullString
	var bookingID sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&draft.ID,
		&draft.ServiceID,
		&draft.ServiceName,
		&servicePrice,
		&selectedDate,
		&selectedSlot,
		&draft.Name,
		&draft.Contact,
		&draft.Description,
		&draft.Address,
		&draft.Latitude,
		&draft.Longitude,
		&draft.AddressRevision,
		&draft.Status,
		&failureDetail,
		&bookingID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if servicePrice.Valid {
		draft.ServicePrice = &servicePrice.Float64
	}
	if selectedDate.Valid {
		date := selectedDate.Time
		draft.SelectedDate = &date
	}
	if selectedSlot.Valid {
		draft.SelectedSlot = &selectedSlot.String
	}
	if failureDetail.Valid {
		draft.FailureDetail = &failureDetail.String
	}
	if bookingID.Valid {
		draft.BookingID = &bookingID.Int64
	}
	draft.CreatedAt = createdAt.Time
	draft.UpdatedAt = updatedAt.Time

	return &draft, nil
}
