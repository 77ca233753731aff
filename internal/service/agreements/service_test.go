package agreements

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avtomix/ACS-InspectionService/internal/domain"
	agreementRepo "github.com/avtomix/ACS-InspectionService/internal/infra/storage/agreement"
	"github.com/avtomix/ACS-InspectionService/internal/integrations/carcatalog"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeAgreementRepo struct {
	nextID     int64
	agreements map[int64]*domain.PurchaseAgreement
}

func newFakeAgreementRepo() *fakeAgreementRepo {
	return &fakeAgreementRepo{nextID: 1, agreements: make(map[int64]*domain.PurchaseAgreement)}
}

func (r *fakeAgreementRepo) Create(ctx context.Context, agr *domain.PurchaseAgreement) (*domain.PurchaseAgreement, error) {
	created := *agr
	created.ID = r.nextID
	r.nextID++
	r.agreements[created.ID] = &created
	return &created, nil
}

func (r *fakeAgreementRepo) GetByID(ctx context.Context, id int64) (*domain.PurchaseAgreement, error) {
	agr, ok := r.agreements[id]
	if !ok {
		return nil, agreementRepo.ErrAgreementNotFound
	}
	copied := *agr
	return &copied, nil
}

type fakeCatalogClient struct {
	cars map[int64]*carcatalog.Car
}

func (c *fakeCatalogClient) GetPublishedCar(ctx context.Context, carID int64) (*carcatalog.Car, error) {
	car, ok := c.cars[carID]
	if !ok {
		return nil, carcatalog.ErrCarNotFound
	}
	return car, nil
}

var testSeller = SellerInfo{
	FullName:            "ООО «Автомикс»",
	PassportSeries:      "0000",
	PassportNumber:      "000000",
	PassportIssued:      "не требуется",
	RegistrationAddress: "г. Москва, ул. Автозаводская, д. 1",
	Phone:               "+7 (495) 000-00-00",
}

func newTestService(repo *fakeAgreementRepo) *Service {
	vin := "XTA21099012345678"
	catalog := &fakeCatalogClient{
		cars: map[int64]*carcatalog.Car{
			1: {ID: 1, Brand: "Lada", Model: "Vesta", Year: 2023, Price: 1_500_000, VIN: &vin, IsPublished: true},
		},
	}
	return NewService(repo, catalog, testSeller, nopLogger{})
}

func TestService_Create(t *testing.T) {
	t.Run("Agreement combines form, config and catalog data", func(t *testing.T) {
		repo := newFakeAgreementRepo()
		svc := newTestService(repo)

		resp, err := svc.Create(context.Background(), 1, validAgreementRequest())

		require.NoError(t, err)
		assert.Equal(t, "Петров Петр Петрович", resp.BuyerFullName)
		assert.Equal(t, testSeller.FullName, resp.SellerFullName)
		assert.Equal(t, "Lada", resp.CarBrand)
		assert.Equal(t, "Vesta", resp.CarModel)
		assert.Equal(t, int64(1_500_000), resp.CarPrice)
		require.NotNil(t, resp.CarVIN)
		assert.Equal(t, "XTA21099012345678", *resp.CarVIN)

		// Номер договора - валидный uuid
		_, err = uuid.Parse(resp.Number)
		assert.NoError(t, err)
	})

	t.Run("Form VIN overrides catalog VIN", func(t *testing.T) {
		svc := newTestService(newFakeAgreementRepo())

		req := validAgreementRequest()
		req.CarVIN = "JTD21099012345678"

		resp, err := svc.Create(context.Background(), 1, req)

		require.NoError(t, err)
		require.NotNil(t, resp.CarVIN)
		assert.Equal(t, "JTD21099012345678", *resp.CarVIN)
	})

	t.Run("Unknown car is rejected", func(t *testing.T) {
		svc := newTestService(newFakeAgreementRepo())

		_, err := svc.Create(context.Background(), 999, validAgreementRequest())
		assert.ErrorIs(t, err, ErrCarNotFound)
	})

	t.Run("Validation failure", func(t *testing.T) {
		svc := newTestService(newFakeAgreementRepo())

		req := validAgreementRequest()
		req.BuyerPassportSeries = "bad"

		_, err := svc.Create(context.Background(), 1, req)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Each agreement gets a unique number", func(t *testing.T) {
		svc := newTestService(newFakeAgreementRepo())

		first, err := svc.Create(context.Background(), 1, validAgreementRequest())
		require.NoError(t, err)
		second, err := svc.Create(context.Background(), 1, validAgreementRequest())
		require.NoError(t, err)

		assert.NotEqual(t, first.Number, second.Number)
	})
}

func TestService_GetByID(t *testing.T) {
	t.Run("Existing agreement", func(t *testing.T) {
		repo := newFakeAgreementRepo()
		svc := newTestService(repo)

		created, err := svc.Create(context.Background(), 1, validAgreementRequest())
		require.NoError(t, err)

		resp, err := svc.GetByID(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Number, resp.Number)
	})

	t.Run("Missing agreement", func(t *testing.T) {
		svc := newTestService(newFakeAgreementRepo())

		_, err := svc.GetByID(context.Background(), 42)
		assert.ErrorIs(t, err, ErrAgreementNotFound)
	})
}
