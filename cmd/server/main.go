package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"vanrental/internal/api"
	"vanrental/internal/auth"
	"vanrental/internal/db"
	"vanrental/internal/repository"
	"vanrental/internal/service"
)

func main() {
	godotenv.Load()

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	if level, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	conn, err := db.Open(dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	if err := db.InitSchema(conn); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	branchRepo := repository.NewBranchRepository(conn)
	vehicleRepo := repository.NewVehicleRepository(conn)
	bookingRepo := repository.NewBookingRepository(conn)
	scheduleRepo := repository.NewScheduleRepository(conn)
	adminRepo := repository.NewAdminRepository(conn)
	adminAuthRepo := repository.NewAdminAuthRepository(conn)
	jobRepo := repository.NewJobRepository(conn)

	if err := adminRepo.SeedIfEmpty(); err != nil {
		log.Fatalf("Failed to seed sample data: %v", err)
	}

	notifier := service.NewNotifyService()
	branchSvc := service.NewBranchService(branchRepo)
	vehicleSvc := service.NewVehicleService(vehicleRepo, branchRepo)
	bookingSvc := service.NewBookingService(bookingRepo, branchRepo, vehicleRepo, notifier)
	availabilitySvc := service.NewAvailabilityService(vehicleRepo, branchRepo)
	scheduleSvc := service.NewScheduleService(scheduleRepo)
	adminSvc := service.NewAdminService(adminRepo)
	adminAuthSvc := service.NewAdminAuthService(adminAuthRepo)
	jobSvc := service.NewJobService(jobRepo)

	if email, password := os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD"); email != "" && password != "" {
		if err := adminAuthSvc.EnsureAdmin(email, password); err != nil {
			log.Fatalf("Failed to ensure admin account: %v", err)
		}
	}

	branchHandler := api.NewBranchHandler(branchSvc)
	vehicleHandler := api.NewVehicleHandler(vehicleSvc)
	bookingHandler := api.NewBookingHandler(bookingSvc)
	availabilityHandler := api.NewAvailabilityHandler(availabilitySvc)
	scheduleHandler := api.NewScheduleHandler(scheduleSvc)
	adminHandler := api.NewAdminHandler(adminSvc)
	adminAuthHandler := api.NewAdminAuthHandler(adminAuthSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/vehicle", vehicleHandler.ListVehicles).Methods("GET")
	r.HandleFunc("/vehicle/{id}", vehicleHandler.GetVehicle).Methods("GET")
	r.HandleFunc("/vehicle", vehicleHandler.CreateVehicle).Methods("POST")

	r.HandleFunc("/booking", bookingHandler.ListBookings).Methods("GET")
	r.HandleFunc("/booking/cancel", bookingHandler.CancelBooking).Methods("POST")
	r.HandleFunc("/booking/{id}", bookingHandler.GetBooking).Methods("GET")
	r.HandleFunc("/booking", bookingHandler.CreateBooking).Methods("POST")

	r.HandleFunc("/branches", branchHandler.ListBranches).Methods("GET")
	r.HandleFunc("/branches/{id}", branchHandler.GetBranch).Methods("GET")
	r.HandleFunc("/branches", branchHandler.CreateBranch).Methods("POST")

	r.HandleFunc("/availability/search", availabilityHandler.Search).Methods("POST")

	r.HandleFunc("/schedule", scheduleHandler.GetSchedule).Methods("GET")
	r.HandleFunc("/schedule/vehicle/{vehicle_id}", scheduleHandler.GetVehicleSchedule).Methods("GET")
	r.HandleFunc("/schedule/search", scheduleHandler.Search).Methods("POST")

	r.HandleFunc("/admin/login", adminAuthHandler.Login).Methods("POST")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware)
	admin.HandleFunc("/data", adminHandler.DeleteAllData).Methods("DELETE")
	admin.HandleFunc("/reset", adminHandler.ResetDatabase).Methods("POST")

	// Nightly schedule pruning
	c := cron.New()
	if _, err := c.AddFunc("0 3 * * *", func() {
		if err := jobSvc.PrunePastScheduleRows(); err != nil {
			log.WithError(err).Error("schedule pruning job failed")
		}
	}); err != nil {
		log.Fatalf("Failed to register cron job: %v", err)
	}
	c.Start()

	handler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(handlers.LoggingHandler(os.Stdout, r))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Infof("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
