package main

import (
	"log"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/fkhayef/splitreport/docs"
	"github.com/fkhayef/splitreport/internal/config"
	"github.com/fkhayef/splitreport/internal/database"
	"github.com/fkhayef/splitreport/internal/expense"
	expensesplit "github.com/fkhayef/splitreport/internal/expense/split"
	"github.com/fkhayef/splitreport/internal/group"
	"github.com/fkhayef/splitreport/internal/reminder"
	"github.com/fkhayef/splitreport/internal/report"
	"github.com/fkhayef/splitreport/internal/user"
	"github.com/fkhayef/splitreport/pkg/logging"
)

// @title SplitReport API
// @version 1.0
// @description Shared-expense tracking and balance reporting service
// @BasePath /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logging.Setup()

	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	slog.Info("Connected to database")

	// Split strategy factory, shared by the expense write path and the engine
	splitFactory := expensesplit.NewFactory()

	// User feature
	userRepo := user.NewRepository(db)
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	// Group feature
	groupRepo := group.NewRepository(db)
	groupService := group.NewService(groupRepo)
	groupHandler := group.NewHandler(groupService)

	// Expense feature (with split factory injected)
	expenseRepo := expense.NewRepository(db)
	expenseService := expense.NewService(expenseRepo, splitFactory)
	expenseHandler := expense.NewHandler(expenseService)

	// Report feature
	reportEngine := report.NewEngine(splitFactory)
	reportService := report.NewService(userRepo, groupRepo, expenseRepo, reportEngine)
	reportHandler := report.NewHandler(reportService)

	// Reminder feature
	reminderRepo := reminder.NewRepository(db)
	reminderService := reminder.NewService(reminderRepo, expenseRepo)
	reminderHandler := reminder.NewHandler(reminderService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Mount feature routers
		r.Mount("/users", userHandler.Routes())
		r.Mount("/groups", groupHandler.Routes())
		r.Mount("/expenses", expenseHandler.Routes())
		r.Mount("/reports", reportHandler.Routes())
		r.Mount("/reminders", reminderHandler.Routes())
	})

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	slog.Info("Server starting", "port", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
