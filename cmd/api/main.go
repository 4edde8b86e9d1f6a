package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/maboeh/shifttracker-backend-go/internal/config"
	"github.com/maboeh/shifttracker-backend-go/internal/fixtures"
	appHTTP "github.com/maboeh/shifttracker-backend-go/internal/handler/http"
	"github.com/maboeh/shifttracker-backend-go/internal/pkg/cron"
	"github.com/maboeh/shifttracker-backend-go/internal/pkg/database"
	"github.com/maboeh/shifttracker-backend-go/internal/pkg/jwt"
	"github.com/maboeh/shifttracker-backend-go/internal/pkg/storage"
	"github.com/maboeh/shifttracker-backend-go/internal/repository/postgresql"
	authService "github.com/maboeh/shifttracker-backend-go/internal/service/auth"
	exportService "github.com/maboeh/shifttracker-backend-go/internal/service/export"
	notificationService "github.com/maboeh/shifttracker-backend-go/internal/service/notification"
	settingsService "github.com/maboeh/shifttracker-backend-go/internal/service/settings"
	shiftService "github.com/maboeh/shifttracker-backend-go/internal/service/shift"
	shiftTypeService "github.com/maboeh/shifttracker-backend-go/internal/service/shifttype"
	statsService "github.com/maboeh/shifttracker-backend-go/internal/service/stats"
	templateService "github.com/maboeh/shifttracker-backend-go/internal/service/template"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	shiftRepo := postgresql.NewShiftRepository(db)
	breakRepo := postgresql.NewBreakRepository(db)
	shiftTypeRepo := postgresql.NewShiftTypeRepository(db)
	templateRepo := postgresql.NewTemplateRepository(db)
	exportRecordRepo := postgresql.NewExportRecordRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	reminderRepo := postgresql.NewReminderRepository(db)

	if err := fixtures.SeedDefaultShiftTypes(context.Background(), shiftTypeRepo); err != nil {
		log.Fatal("Failed to seed default shift types:", err)
	}

	fileStorage, err := storage.NewLocalStorage(cfg.Export.OutputDir)
	if err != nil {
		log.Fatal("Failed to initialize export storage:", err)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.SessionExpiration)

	notificationSvc := notificationService.NewNotificationService(reminderRepo)
	shiftSvc := shiftService.NewShiftService(db, shiftRepo, breakRepo, notificationSvc)
	shiftTypeSvc := shiftTypeService.NewShiftTypeService(db, shiftTypeRepo, shiftRepo)
	templateSvc := templateService.NewTemplateService(templateRepo, shiftTypeRepo, shiftRepo)
	statsSvc := statsService.NewStatsService(shiftRepo, shiftTypeRepo, settingsRepo)
	exportSvc := exportService.NewExportService(shiftRepo, settingsRepo, exportRecordRepo, fileStorage)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	authSvc := authService.NewAuthService(settingsRepo, jwtService)

	scheduler := cron.NewScheduler()
	cron.NewReminderJobs(shiftRepo, reminderRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(jwtService, settingsRepo, appHTTP.Handlers{
		Shift:     appHTTP.NewShiftHandler(shiftSvc),
		ShiftType: appHTTP.NewShiftTypeHandler(shiftTypeSvc),
		Template:  appHTTP.NewTemplateHandler(templateSvc),
		Stats:     appHTTP.NewStatsHandler(statsSvc),
		Export:    appHTTP.NewExportHandler(exportSvc),
		Reminder:  appHTTP.NewReminderHandler(notificationSvc),
		Auth:      appHTTP.NewAuthHandler(authSvc),
		Settings:  appHTTP.NewSettingsHandler(settingsSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := server.Shutdown(context.Background()); err != nil {
		fmt.Println("Shutdown error:", err)
	}
}
