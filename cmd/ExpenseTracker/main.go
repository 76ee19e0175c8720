package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	database "github.com/sebuszqo/ExpenseTracker/db"
	"github.com/sebuszqo/ExpenseTracker/internal/auth"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/application"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/infrastructure"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/interfaces"
)

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

type Server struct {
	router          *http.ServeMux
	authHandler     *auth.Handler
	authService     auth.Service
	categoryHandler *interfaces.CategoryHandler
	expenseHandler  *interfaces.ExpenseHandler
}

func NewServer(authHandler *auth.Handler, authService auth.Service, categoryHandler *interfaces.CategoryHandler, expenseHandler *interfaces.ExpenseHandler) *Server {
	return &Server{
		authHandler:     authHandler,
		authService:     authService,
		categoryHandler: categoryHandler,
		expenseHandler:  expenseHandler,
		router:          http.NewServeMux(),
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusNotFound, map[string]string{"message": "Path not found"})
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("no JWT_SECRET Provided")
	}
	return nil
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) RegisterRoutes() {
	protect := func(h http.Handler) http.Handler {
		return s.authService.JWTAccessTokenMiddleware()(interfaces.RequireOwner(respondJSON)(h))
	}

	router := http.NewServeMux()

	router.Handle("POST /register", http.HandlerFunc(s.authHandler.HandleRegister))
	router.Handle("POST /login", http.HandlerFunc(s.authHandler.HandleLogin))
	router.Handle("POST /refresh", http.HandlerFunc(s.authHandler.HandleRefresh))
	router.Handle("POST /logout", http.HandlerFunc(s.authHandler.HandleLogout))
	router.Handle("GET /ready", http.HandlerFunc(s.handleReady))

	router.Handle("GET /{userID}/categories", protect(http.HandlerFunc(s.categoryHandler.GetCategories)))
	router.Handle("POST /{userID}/categories", protect(http.HandlerFunc(s.categoryHandler.CreateCategory)))
	router.Handle("PATCH /{userID}/categories/{categoryID}", protect(http.HandlerFunc(s.categoryHandler.UpdateCategory)))
	router.Handle("DELETE /{userID}/categories/{categoryID}", protect(http.HandlerFunc(s.categoryHandler.DeleteCategory)))

	router.Handle("GET /{userID}/expenses", protect(http.HandlerFunc(s.expenseHandler.GetExpenses)))
	router.Handle("POST /{userID}/expenses", protect(http.HandlerFunc(s.expenseHandler.CreateExpense)))
	router.Handle("PATCH /{userID}/expenses/{expenseID}", protect(http.HandlerFunc(s.expenseHandler.UpdateExpense)))
	router.Handle("DELETE /{userID}/expenses/{expenseID}", protect(http.HandlerFunc(s.expenseHandler.DeleteExpense)))

	router.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = router
}

func main() {
	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server")
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := dbService.EnsureSchema(); err != nil {
		log.Fatalf("Could not prepare database schema: %v", err)
	}

	authRepo := auth.NewUserRepository(dbService.DB)
	jwtManager := auth.NewJWTManager()
	authService := auth.NewAuthService(authRepo, jwtManager)
	authHandler := auth.NewHandler(authService)

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	categoryService := application.NewCategoryService(categoryRepo)
	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON)

	expenseRepo := infrastructure.NewExpenseRepository(dbService.DB)
	expenseService := application.NewExpenseService(expenseRepo, categoryService)
	expenseHandler := interfaces.NewExpenseHandler(expenseService, respondJSON)

	server := NewServer(authHandler, authService, categoryHandler, expenseHandler)
	server.RegisterRoutes()

	log.Println("Server starting on port 8080...")
	if err := http.ListenAndServe(":8080", loggingMiddleware(server.router)); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
