package http

import (
	"net/http"

	"psicoclinica-server/internal/delivery/http/handler"
	"psicoclinica-server/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	healthHandler       *handler.HealthHandler
	authHandler         *handler.AuthHandler
	availabilityHandler *handler.AvailabilityHandler
	appointmentHandler  *handler.AppointmentHandler
	managementHandler   *handler.ManagementHandler
	messageHandler      *handler.MessageHandler
	activityHandler     *handler.ActivityHandler
	realtimeHandler     *handler.RealtimeHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	healthHandler *handler.HealthHandler,
	authHandler *handler.AuthHandler,
	availabilityHandler *handler.AvailabilityHandler,
	appointmentHandler *handler.AppointmentHandler,
	managementHandler *handler.ManagementHandler,
	messageHandler *handler.MessageHandler,
	activityHandler *handler.ActivityHandler,
	realtimeHandler *handler.RealtimeHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		healthHandler:       healthHandler,
		authHandler:         authHandler,
		availabilityHandler: availabilityHandler,
		appointmentHandler:  appointmentHandler,
		managementHandler:   managementHandler,
		messageHandler:      messageHandler,
		activityHandler:     activityHandler,
		realtimeHandler:     realtimeHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthHandler.Check).Methods(http.MethodGet)

	// Public routes
	api.HandleFunc("/psychologists", r.availabilityHandler.GetPsychologists).Methods(http.MethodGet)
	api.HandleFunc("/contact-messages", r.messageHandler.Submit).Methods(http.MethodPost)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Patient routes (protected)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.HandleFunc("/availability/dates", r.availabilityHandler.GetDates).Methods(http.MethodGet)
	protected.HandleFunc("/availability", r.availabilityHandler.GetTimes).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", r.appointmentHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.Cancel).Methods(http.MethodDelete)
	protected.HandleFunc("/realtime", r.realtimeHandler.Serve).Methods(http.MethodGet)

	// Management routes (protected - psychologist only)
	management := api.PathPrefix("/management").Subrouter()
	management.Use(r.authMiddleware.Authenticate)
	management.Use(middleware.RequirePsychologist)
	management.HandleFunc("/appointments", r.managementHandler.ListAppointments).Methods(http.MethodGet)
	management.HandleFunc("/appointments/{id}/status", r.managementHandler.UpdateAppointmentStatus).Methods(http.MethodPatch)
	management.HandleFunc("/messages", r.messageHandler.List).Methods(http.MethodGet)
	management.HandleFunc("/messages/{id}/reply", r.messageHandler.Reply).Methods(http.MethodPost)
	management.HandleFunc("/activity", r.activityHandler.List).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}
