package inspection

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/avtomix/ACS-InspectionService/internal/domain"
	"github.com/avtomix/ACS-InspectionService/pkg/dbmetrics"
	"github.com/avtomix/ACS-InspectionService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL при нарушении уникального индекса
const uniqueViolation = "23505"

// activeSlotIndex имя частичного уникального индекса, гарантирующего
// не более одной активной заявки на пару (дата, слот)
const activeSlotIndex = "uq_inspection_active_slot"

// Repository репозиторий заявок на осмотр
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую заявку на осмотр.
// Если в контексте передана активная транзакция, использует её.
//
// Уникальность активной заявки на (дата, слот) обеспечивается частичным
// индексом в БД: проигравший конкурентный писатель получает ErrSlotTaken
// независимо от того, что показала предварительная проверка занятости.
func (r *Repository) Create(ctx context.Context, req *domain.InspectionRequest) (*domain.InspectionRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("inspection_requests").
		Columns(
			"car_id",
			"full_name",
			"phone",
			"email",
			"inspection_date",
			"inspection_time",
			"status",
			"car_brand",
			"car_model",
			"notes",
		).
		Values(
			req.CarID,
			req.FullName,
			req.Phone,
			req.Email,
			req.InspectionDate,
			req.InspectionTime,
			req.Status,
			req.CarBrand,
			req.CarModel,
			req.Notes,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&req.ID, &createdAt)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	req.CreatedAt = createdAt.Time

	return req, nil
}

// BusySlots возвращает метки слотов, занятых активными заявками на дату.
// Внутри транзакции строки блокируются (FOR UPDATE), чтобы проверка
// занятости и вставка выполнялись как единое целое.
func (r *Repository) BusySlots(ctx context.Context, date time.Time) ([]domain.SlotLabel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatuses[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select("inspection_time").
		From("inspection_requests").
		Where(squirrel.Eq{"inspection_date": date}).
		Where(squirrel.Eq{"status": activeStatuses}).
		OrderBy("inspection_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: BusySlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: BusySlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	busy := make([]domain.SlotLabel, 0)
	for rows.Next() {
		var label domain.SlotLabel
		if err := rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("%w: BusySlots - scan slot label: %v", ErrScanRow, err)
		}
		busy = append(busy, label)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: BusySlots - rows error: %v", ErrScanRow, err)
	}

	return busy, nil
}

// GetByID получает заявку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.InspectionRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectColumns().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var req domain.InspectionRequest
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&req.ID,
		&req.CarID,
		&req.FullName,
		&req.Phone,
		&req.Email,
		&req.InspectionDate,
		&req.InspectionTime,
		&req.Status,
		&req.CarBrand,
		&req.CarModel,
		&req.Notes,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInspectionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan inspection: %v", ErrScanRow, err)
	}

	req.CreatedAt = createdAt.Time

	return &req, nil
}

// List получает заявки с фильтрацией по дате и статусу, новые первыми
func (r *Repository) List(ctx context.Context, filter domain.InspectionsFilter) ([]*domain.InspectionRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectColumns().
		OrderBy("created_at DESC")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"inspection_date": *filter.Date})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanInspections(rows)
}

// UpdateStatus обновляет статус заявки.
// Допустимость перехода проверяется на уровне сервиса; частичный индекс
// отклонит переход в активный статус, если слот уже занят другой заявкой.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.InspectionStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("inspection_requests").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrInspectionNotFound
	}

	return nil
}

// UpdateNotes обновляет примечания администратора
func (r *Repository) UpdateNotes(ctx context.Context, id int64, notes string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("inspection_requests").
		Set("notes", notes).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateNotes - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateNotes - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateNotes - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrInspectionNotFound
	}

	return nil
}

func selectColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"car_id",
		"full_name",
		"phone",
		"email",
		"inspection_date",
		"inspection_time",
		"status",
		"car_brand",
		"car_model",
		"notes",
		"created_at",
	).From("inspection_requests")
}

func scanInspections(rows *sql.Rows) ([]*domain.InspectionRequest, error) {
	inspections := make([]*domain.InspectionRequest, 0)

	for rows.Next() {
		var req domain.InspectionRequest
		var createdAt sql.NullTime

		err := rows.Scan(
			&req.ID,
			&req.CarID,
			&req.FullName,
			&req.Phone,
			&req.Email,
			&req.InspectionDate,
			&req.InspectionTime,
			&req.Status,
			&req.CarBrand,
			&req.CarModel,
			&req.Notes,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanInspections - scan row: %v", ErrScanRow, err)
		}

		req.CreatedAt = createdAt.Time
		inspections = append(inspections, &req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanInspections - rows error: %v", ErrScanRow, err)
	}

	return inspections, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation && pqErr.Constraint == activeSlotIndex
}
