package agreement

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avtomix/ACS-InspectionService/internal/domain"
	"github.com/avtomix/ACS-InspectionService/pkg/dbmetrics"
	"github.com/avtomix/ACS-InspectionService/pkg/psqlbuilder"
)

// Repository репозиторий заявок на договор купли-продажи
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория договоров
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет финализированную заявку на договор
func (r *Repository) Create(ctx context.Context, agr *domain.PurchaseAgreement) (*domain.PurchaseAgreement, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("purchase_agreements").
		Columns(
			"number",
			"car_id",
			"buyer_full_name",
			"buyer_passport_series",
			"buyer_passport_number",
			"buyer_passport_issued",
			"buyer_registration_address",
			"buyer_phone",
			"seller_full_name",
			"seller_passport_series",
			"seller_passport_number",
			"seller_passport_issued",
			"seller_registration_address",
			"seller_phone",
			"car_brand",
			"car_model",
			"car_year",
			"car_vin",
			"car_license_plate",
			"car_price",
		).
		Values(
			agr.Number,
			agr.CarID,
			agr.BuyerFullName,
			agr.BuyerPassportSeries,
			agr.BuyerPassportNumber,
			agr.BuyerPassportIssued,
			agr.BuyerRegistrationAddress,
			agr.BuyerPhone,
			agr.SellerFullName,
			agr.SellerPassportSeries,
			agr.SellerPassportNumber,
			agr.SellerPassportIssued,
			agr.SellerRegistrationAddress,
			agr.SellerPhone,
			agr.CarBrand,
			agr.CarModel,
			agr.CarYear,
			agr.CarVIN,
			agr.CarLicensePlate,
			agr.CarPrice,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&agr.ID, &createdAt)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	agr.CreatedAt = createdAt.Time

	return agr, nil
}

// GetByID получает заявку на договор по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.PurchaseAgreement, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"number",
		"car_id",
		"buyer_full_name",
		"buyer_passport_series",
		"buyer_passport_number",
		"buyer_passport_issued",
		"buyer_registration_address",
		"buyer_phone",
		"seller_full_name",
		"seller_passport_series",
		"seller_passport_number",
		"seller_passport_issued",
		"seller_registration_address",
		"seller_phone",
		"car_brand",
		"car_model",
		"car_year",
		"car_vin",
		"car_license_plate",
		"car_price",
		"created_at",
	).
		From("purchase_agreements").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var agr domain.PurchaseAgreement
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&agr.ID,
		&agr.Number,
		&agr.CarID,
		&agr.BuyerFullName,
		&agr.BuyerPassportSeries,
		&agr.BuyerPassportNumber,
		&agr.BuyerPassportIssued,
		&agr.BuyerRegistrationAddress,
		&agr.BuyerPhone,
		&agr.SellerFullName,
		&agr.SellerPassportSeries,
		&agr.SellerPassportNumber,
		&agr.SellerPassportIssued,
		&agr.SellerRegistrationAddress,
		&agr.SellerPhone,
		&agr.CarBrand,
		&agr.CarModel,
		&agr.CarYear,
		&agr.CarVIN,
		&agr.CarLicensePlate,
		&agr.CarPrice,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAgreementNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan agreement: %v", ErrScanRow, err)
	}

	agr.CreatedAt = createdAt.Time

	return &agr, nil
}
