package main

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/doctors-portal/api/internal/auth"
	"github.com/doctors-portal/api/internal/handlers"
	"github.com/doctors-portal/api/internal/middleware"
	"github.com/doctors-portal/api/internal/monitoring"
	"github.com/doctors-portal/api/internal/services"
	"github.com/doctors-portal/api/internal/store"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, relying on environment variables.")
	}

	tokens, err := auth.NewTokenService(os.Getenv("ACCESS_TOKEN_SECRET"))
	if err != nil {
		log.WithError(err).Fatal("token service init failed")
	}

	// --- Database connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(os.Getenv("MONGO_URI")))
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer client.Disconnect(context.Background())

	dbName := os.Getenv("MONGO_DATABASE")
	if dbName == "" {
		dbName = "doctor_portal"
	}
	db := client.Database(dbName)
	log.WithField("database", dbName).Info("connected to MongoDB")

	// --- Stores ---
	users := store.NewUsers(db)
	doctors := store.NewDoctors(db)
	svcs := store.NewServices(db)
	bookings := store.NewBookings(db)

	// --- Services ---
	notifier := services.NewNotifier(os.Getenv("TEXTBELT_API_KEY"), log)
	availability := services.NewAvailabilityService(svcs, bookings)
	bookingSvc := services.NewBookingService(bookings, notifier)

	h := handlers.NewHandler(users, doctors, svcs, bookings, tokens, availability, bookingSvc, log)

	// --- Gin router ---
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics())
	r.Use(cors.New(corsConfig()))

	requireAuth := middleware.RequireAuth(tokens)
	requireAdmin := middleware.RequireAdmin(users)

	// --- Routes ---
	r.GET("/", h.Home)
	r.GET("/metrics", gin.WrapH(monitoring.Handler()))

	r.GET("/users", requireAuth, h.GetUsers)
	r.GET("/admin/:email", h.CheckAdmin)
	r.PUT("/user/admin/:email", requireAuth, requireAdmin, h.MakeAdmin)
	r.PUT("/user/:email", h.UpsertUser)

	r.GET("/services", h.GetServices)
	r.GET("/available", h.GetAvailable)

	r.GET("/booking", requireAuth, h.GetBookings)
	r.POST("/booking", h.CreateBooking)

	r.POST("/doctor", requireAuth, requireAdmin, h.CreateDoctor)
	r.GET("/doctor", requireAuth, requireAdmin, h.GetDoctors)
	r.DELETE("/doctor/:email", requireAuth, requireAdmin, h.DeleteDoctor)

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "5001"
	}
	log.WithField("port", port).Info("starting server")
	if err := r.Run(":" + port); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server stopped")
	}
}

func corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}

	origins := os.Getenv("CORS_ALLOW_ORIGINS")
	if origins == "" || origins == "*" {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
		return cfg
	}
	cfg.AllowOrigins = strings.Split(origins, ",")
	return cfg
}
