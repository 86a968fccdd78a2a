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

	cancelAppointmentHandler "github.com/m04kA/AMC-BookingService/internal/api/handlers/cancel_appointment"
	concludeAppointmentHandler "github.com/m04kA/AMC-BookingService/internal/api/handlers/conclude_appointment"
	createAppointmentHandler "github.com/m04kA/AMC-BookingService/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/m04kA/AMC-BookingService/internal/api/handlers/delete_appointment"
	exportRevenuePDFHandler "github.com/m04kA/AMC-BookingService/internal/api/handlers/export_revenue_pdf"
	getAppointmentHandler "github.com/m04kA/AMC-BookingService/internal/api/handlers/get_appointment"
	getAvailabilityHandler "github.com/m04kA/AMC-BookingService/internal/api/handlers/get_availability"
	getRevenueHandler "github.com/m04kA/AMC-BookingService/internal/api/handlers/get_revenue"
	getScheduleHandler "github.com/m04kA/AMC-BookingService/internal/api/handlers/get_schedule"
	getUserAppointmentsHandler "github.com/m04kA/AMC-BookingService/internal/api/handlers/get_user_appointments"
	hourBlocksHandler "github.com/m04kA/AMC-BookingService/internal/api/handlers/hour_blocks"
	listAppointmentsHandler "github.com/m04kA/AMC-BookingService/internal/api/handlers/list_appointments"
	patientsHandler "github.com/m04kA/AMC-BookingService/internal/api/handlers/patients"
	proceduresHandler "github.com/m04kA/AMC-BookingService/internal/api/handlers/procedures"
	testimonialsHandler "github.com/m04kA/AMC-BookingService/internal/api/handlers/testimonials"
	updateAppointmentHandler "github.com/m04kA/AMC-BookingService/internal/api/handlers/update_appointment"
	updateAppointmentStatusHandler "github.com/m04kA/AMC-BookingService/internal/api/handlers/update_appointment_status"
	updateScheduleHandler "github.com/m04kA/AMC-BookingService/internal/api/handlers/update_schedule"
	"github.com/m04kA/AMC-BookingService/internal/api/middleware"
	"github.com/m04kA/AMC-BookingService/internal/config"
	apptRepo "github.com/m04kA/AMC-BookingService/internal/infra/storage/appointment"
	hourBlockRepo "github.com/m04kA/AMC-BookingService/internal/infra/storage/hourblock"
	patientRepo "github.com/m04kA/AMC-BookingService/internal/infra/storage/patient"
	procRepo "github.com/m04kA/AMC-BookingService/internal/infra/storage/procedure"
	scheduleRepo "github.com/m04kA/AMC-BookingService/internal/infra/storage/schedule"
	testimonialRepo "github.com/m04kA/AMC-BookingService/internal/infra/storage/testimonial"
	notifyClient "github.com/m04kA/AMC-BookingService/internal/integrations/notify"
	appointmentsService "github.com/m04kA/AMC-BookingService/internal/service/appointments"
	patientsService "github.com/m04kA/AMC-BookingService/internal/service/patients"
	proceduresService "github.com/m04kA/AMC-BookingService/internal/service/procedures"
	scheduleService "github.com/m04kA/AMC-BookingService/internal/service/schedule"
	testimonialsService "github.com/m04kA/AMC-BookingService/internal/service/testimonials"
	createAppointmentUC "github.com/m04kA/AMC-BookingService/internal/usecase/create_appointment"
	monthlyRevenueUC "github.com/m04kA/AMC-BookingService/internal/usecase/monthly_revenue"
	resolveAvailabilityUC "github.com/m04kA/AMC-BookingService/internal/usecase/resolve_availability"
	"github.com/m04kA/AMC-BookingService/pkg/dbmetrics"
	"github.com/m04kA/AMC-BookingService/pkg/logger"
	"github.com/m04kA/AMC-BookingService/pkg/metrics"
	"github.com/m04kA/AMC-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/AMC-BookingService/pkg/txmanager"
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

	log.Info("Starting AMC-BookingService...")
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

	// Инициализируем клиент сервиса уведомлений
	var notifier appointmentsService.NotifyClient
	if cfg.Notify.Enabled {
		notifier = notifyClient.NewClient(
			cfg.Notify.URL,
			time.Duration(cfg.Notify.Timeout)*time.Second,
			log,
		)
		log.Info("Notify client initialized (url=%s, timeout=%ds)", cfg.Notify.URL, cfg.Notify.Timeout)
	} else {
		notifier = notifyClient.NopClient{}
		log.Info("Notifications disabled")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *apptRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
		hourBlockRepository   *hourBlockRepo.Repository
		procedureRepository   *procRepo.Repository
		patientRepository     *patientRepo.Repository
		testimonialRepository *testimonialRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = apptRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		hourBlockRepository = hourBlockRepo.NewRepository(wrappedDB)
		procedureRepository = procRepo.NewRepository(wrappedDB)
		patientRepository = patientRepo.NewRepository(wrappedDB)
		testimonialRepository = testimonialRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = apptRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		hourBlockRepository = hourBlockRepo.NewRepository(db)
		procedureRepository = procRepo.NewRepository(db)
		patientRepository = patientRepo.NewRepository(db)
		testimonialRepository = testimonialRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		notifier,
		txMgr,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		hourBlockRepository,
		appointmentRepository,
		txMgr,
		log,
	)
	proceduresSvc := proceduresService.NewService(procedureRepository, log)
	patientsSvc := patientsService.NewService(patientRepository, log)
	testimonialsSvc := testimonialsService.NewService(testimonialRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		hourBlockRepository,
		procedureRepository,
		notifier,
		txMgr,
		log,
	)
	resolveAvailabilityUseCase := resolveAvailabilityUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		hourBlockRepository,
		log,
	)
	monthlyRevenueUseCase := monthlyRevenueUC.NewUseCase(appointmentRepository, log)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointment := updateAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	concludeAppointment := concludeAppointmentHandler.NewHandler(appointmentsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(resolveAvailabilityUseCase, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)
	hourBlocks := hourBlocksHandler.NewHandler(scheduleSvc, log)
	getRevenue := getRevenueHandler.NewHandler(monthlyRevenueUseCase, log)
	exportRevenuePDF := exportRevenuePDFHandler.NewHandler(monthlyRevenueUseCase, log)
	procedures := proceduresHandler.NewHandler(proceduresSvc, log)
	patients := patientsHandler.NewHandler(patientsSvc, log)
	testimonials := testimonialsHandler.NewHandler(testimonialsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Сквозной request id для трассировки в логах
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Публичные маршруты видят роль, если шлюз ее передал
	api.Use(middleware.Identify)

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог процедур
	api.HandleFunc("/procedimientos", procedures.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/procedimientos/{procedureId}", procedures.HandleGet).Methods(http.MethodGet)

	// Доступность часов на дату (имена пациентов видит только администратор)
	api.HandleFunc("/agenda/disponibilidad", getAvailability.Handle).Methods(http.MethodGet)

	// Отзывы (публичная выдача содержит только одобренные)
	api.HandleFunc("/testimonios", testimonials.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/testimonios", testimonials.HandleCreate).Methods(http.MethodPost)

	// Регистрация пользователя
	api.HandleFunc("/usuarios", patients.HandleRegister).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи на прием ---
	// Создание записи
	protected.HandleFunc("/citas", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/citas/{citaId}", getAppointment.Handle).Methods(http.MethodGet)

	// История записей пользователя
	protected.HandleFunc("/usuarios/{userId}/citas", getUserAppointments.Handle).Methods(http.MethodGet)

	// --- Профиль пользователя ---
	protected.HandleFunc("/usuarios/{userId}", patients.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/usuarios/{userId}", patients.HandleUpdate).Methods(http.MethodPatch)

	// ============================================================
	// ADMIN ROUTES (требуют роль admin)
	// ============================================================

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin)

	// --- Управление записями ---
	// Список записей клиники
	admin.HandleFunc("/citas", listAppointments.Handle).Methods(http.MethodGet)

	// Перенос и правка записи
	admin.HandleFunc("/citas/{citaId}", updateAppointment.Handle).Methods(http.MethodPatch)

	// Подтверждение записи и возврат в ожидание
	admin.HandleFunc("/citas/{citaId}/estado", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// Отмена записи
	admin.HandleFunc("/citas/{citaId}/cancelar", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Завершение записи с фиксацией оплаты
	admin.HandleFunc("/citas/{citaId}/concluir", concludeAppointment.Handle).Methods(http.MethodPost)

	// Удаление записи
	admin.HandleFunc("/citas/{citaId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Управление агендой ---
	// Расписание (по умолчанию или на дату)
	admin.HandleFunc("/agenda/slots", getSchedule.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/agenda/slots", updateSchedule.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/agenda/slots", updateSchedule.HandleToggle).Methods(http.MethodPatch)
	admin.HandleFunc("/agenda/slots/{date}", updateSchedule.HandleDeleteOverride).Methods(http.MethodDelete)

	// Ручные блокировки часов
	admin.HandleFunc("/agenda/bloqueos", hourBlocks.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/agenda/bloqueos", hourBlocks.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/agenda/bloqueos/{date}/{time}", hourBlocks.HandleDelete).Methods(http.MethodDelete)

	// --- Отчеты по выручке ---
	admin.HandleFunc("/ingresos/totales", getRevenue.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/ingresos/reporte", exportRevenuePDF.Handle).Methods(http.MethodGet)

	// --- Управление каталогом процедур ---
	admin.HandleFunc("/procedimientos", procedures.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/procedimientos/{procedureId}", procedures.HandleUpdate).Methods(http.MethodPatch)
	admin.HandleFunc("/procedimientos/{procedureId}", procedures.HandleDelete).Methods(http.MethodDelete)

	// --- Модерация отзывов ---
	admin.HandleFunc("/testimonios/{testimonialId}", testimonials.HandleApprove).Methods(http.MethodPatch)
	admin.HandleFunc("/testimonios/{testimonialId}", testimonials.HandleDelete).Methods(http.MethodDelete)

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
