package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createAgreementHandler "github.com/avtomix/ACS-InspectionService/internal/api/handlers/create_agreement"
	createInspectionHandler "github.com/avtomix/ACS-InspectionService/internal/api/handlers/create_inspection"
	getAgreementHandler "github.com/avtomix/ACS-InspectionService/internal/api/handlers/get_agreement"
	getAvailableTimesHandler "github.com/avtomix/ACS-InspectionService/internal/api/handlers/get_available_times"
	getInspectionHandler "github.com/avtomix/ACS-InspectionService/internal/api/handlers/get_inspection"
	listInspectionsHandler "github.com/avtomix/ACS-InspectionService/internal/api/handlers/list_inspections"
	updateInspectionNotesHandler "github.com/avtomix/ACS-InspectionService/internal/api/handlers/update_inspection_notes"
	updateInspectionStatusHandler "github.com/avtomix/ACS-InspectionService/internal/api/handlers/update_inspection_status"
	"github.com/avtomix/ACS-InspectionService/internal/api/middleware"
	"github.com/avtomix/ACS-InspectionService/internal/config"
	agreementRepo "github.com/avtomix/ACS-InspectionService/internal/infra/storage/agreement"
	inspectionRepo "github.com/avtomix/ACS-InspectionService/internal/infra/storage/inspection"
	carCatalogClient "github.com/avtomix/ACS-InspectionService/internal/integrations/carcatalog"
	agreementsService "github.com/avtomix/ACS-InspectionService/internal/service/agreements"
	inspectionsService "github.com/avtomix/ACS-InspectionService/internal/service/inspections"
	createInspectionUC "github.com/avtomix/ACS-InspectionService/internal/usecase/create_inspection"
	getAvailableTimesUC "github.com/avtomix/ACS-InspectionService/internal/usecase/get_available_times"
	"github.com/avtomix/ACS-InspectionService/pkg/dbmetrics"
	"github.com/avtomix/ACS-InspectionService/pkg/logger"
	"github.com/avtomix/ACS-InspectionService/pkg/metrics"
	"github.com/avtomix/ACS-InspectionService/pkg/simpletxmanager"
	"github.com/avtomix/ACS-InspectionService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting ACS-InspectionService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Клиент каталога автомобилей
	catalogClient := carCatalogClient.NewClient(
		cfg.CarCatalog.URL,
		time.Duration(cfg.CarCatalog.Timeout)*time.Second,
		log,
	)
	log.Info("Car catalog client initialized (url=%s, timeout=%ds)",
		cfg.CarCatalog.URL, cfg.CarCatalog.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		inspectionRepository *inspectionRepo.Repository
		agreementRepository  *agreementRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		inspectionRepository = inspectionRepo.NewRepository(wrappedDB)
		agreementRepository = agreementRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		inspectionRepository = inspectionRepo.NewRepository(db)
		agreementRepository = agreementRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	inspectionsSvc := inspectionsService.NewService(inspectionRepository, log)
	agreementsSvc := agreementsService.NewService(
		agreementRepository,
		catalogClient,
		agreementsService.SellerInfo{
			FullName:            cfg.Seller.FullName,
			PassportSeries:      cfg.Seller.PassportSeries,
			PassportNumber:      cfg.Seller.PassportNumber,
			PassportIssued:      cfg.Seller.PassportIssued,
			RegistrationAddress: cfg.Seller.RegistrationAddress,
			Phone:               cfg.Seller.Phone,
		},
		log,
	)

	// Инициализируем use cases
	createInspectionUseCase := createInspectionUC.NewUseCase(
		inspectionRepository,
		catalogClient,
		txMgr,
		log,
	)
	getAvailableTimesUseCase := getAvailableTimesUC.NewUseCase(inspectionRepository, log)

	// Инициализируем handlers
	createInspection := createInspectionHandler.NewHandler(createInspectionUseCase, log)
	getAvailableTimes := getAvailableTimesHandler.NewHandler(getAvailableTimesUseCase, log)
	createAgreement := createAgreementHandler.NewHandler(agreementsSvc, log)
	getAgreement := getAgreementHandler.NewHandler(agreementsSvc, log)
	getInspection := getInspectionHandler.NewHandler(inspectionsSvc, log)
	listInspections := listInspectionsHandler.NewHandler(inspectionsSvc, log)
	updateInspectionStatus := updateInspectionStatusHandler.NewHandler(inspectionsSvc, log)
	updateInspectionNotes := updateInspectionNotesHandler.NewHandler(inspectionsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (формы на сайте, без аутентификации)
	// ============================================================

	// Свободные слоты на дату
	api.HandleFunc("/available-times", getAvailableTimes.Handle).Methods(http.MethodGet)

	// Запись на осмотр автомобиля
	api.HandleFunc("/cars/{carId}/inspection", createInspection.Handle).Methods(http.MethodPost)

	// Оформление договора купли-продажи
	api.HandleFunc("/cars/{carId}/agreement", createAgreement.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (бэк-офис, требуют X-Admin-Token)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	// Список заявок на осмотр с фильтрами
	admin.HandleFunc("/inspections", listInspections.Handle).Methods(http.MethodGet)

	// Заявка по ID
	admin.HandleFunc("/inspections/{inspectionId}", getInspection.Handle).Methods(http.MethodGet)

	// Перевод заявки по жизненному циклу
	admin.HandleFunc("/inspections/{inspectionId}/status", updateInspectionStatus.Handle).Methods(http.MethodPatch)

	// Примечания администратора
	admin.HandleFunc("/inspections/{inspectionId}/notes", updateInspectionNotes.Handle).Methods(http.MethodPatch)

	// Договор по ID
	admin.HandleFunc("/agreements/{agreementId}", getAgreement.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
