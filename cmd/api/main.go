package main

import (
	"fmt"
	"net/http"

	"github.com/dtr-tools/dtr-backend-go/internal/config"
	"github.com/dtr-tools/dtr-backend-go/internal/domain/deduction"
	appHTTP "github.com/dtr-tools/dtr-backend-go/internal/handler/http"
	"github.com/dtr-tools/dtr-backend-go/internal/pkg/database"
	"github.com/dtr-tools/dtr-backend-go/internal/pkg/jwt"
	"github.com/dtr-tools/dtr-backend-go/internal/repository/postgresql"
	authService "github.com/dtr-tools/dtr-backend-go/internal/service/auth"
	recordService "github.com/dtr-tools/dtr-backend-go/internal/service/record"
	reportService "github.com/dtr-tools/dtr-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	recordRepo := postgresql.NewRecordRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	calculator := deduction.NewCalculator(deduction.DefaultPolicy())

	recordSvc := recordService.NewRecordService(db, recordRepo, calculator)
	reportSvc := reportService.NewReportService(recordRepo)
	authSvc := authService.NewAuthService(cfg.Operator.Username, cfg.Operator.PasswordHash, JWTService)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	recordHandler := appHTTP.NewRecordHandler(recordSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		recordHandler,
		reportHandler,
		cfg.Operator.Username,
		cfg.App.AllowedOrigins,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
