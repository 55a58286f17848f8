package transport

import (
	"net/http"
	"strconv"

	activityapp "github.com/anindyaputri/dress-shop/application/activity"
	authapp "github.com/anindyaputri/dress-shop/application/auth"
	dressapp "github.com/anindyaputri/dress-shop/application/dress"
	userapp "github.com/anindyaputri/dress-shop/application/user"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	AuthApp     authapp.AuthApp
	DressApp    dressapp.DressApp
	ActivityApp activityapp.ActivityApp
	UserApp     userapp.UserApp
}

func NewTransport(authApp authapp.AuthApp, dressApp dressapp.DressApp, activityApp activityapp.ActivityApp, userApp userapp.UserApp, internalAPIKey string) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		AuthApp:     authApp,
		DressApp:    dressApp,
		ActivityApp: activityApp,
		UserApp:     userApp,
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Health check
	router.HandleFunc("/health", rh.Health).Methods(http.MethodGet)

	// Public routes
	router.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	router.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// Authenticated routes
	router.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)
	router.HandleFunc("/me", rh.Me).Methods(http.MethodGet)

	// Catalog (reads are public, writes require a session)
	router.HandleFunc("/dresses", rh.ListActiveDresses).Methods(http.MethodGet)
	router.HandleFunc("/dresses/{id}", rh.GetDress).Methods(http.MethodGet)
	router.HandleFunc("/dresses/{id}/comments", rh.ListComments).Methods(http.MethodGet)
	router.HandleFunc("/dresses/{id}/comments", rh.AddComment).Methods(http.MethodPost)
	router.HandleFunc("/dresses/{id}/like", rh.LikeStatus).Methods(http.MethodGet)
	router.HandleFunc("/dresses/{id}/like", rh.ToggleLike).Methods(http.MethodPost)
	router.HandleFunc("/dresses/{id}/requests", rh.CreateRequest).Methods(http.MethodPost)

	// Admin back-office
	router.HandleFunc("/admin/dashboard", rh.Dashboard).Methods(http.MethodGet)
	router.HandleFunc("/admin/dresses", rh.ListAllDresses).Methods(http.MethodGet)
	router.HandleFunc("/admin/dresses", rh.CreateDress).Methods(http.MethodPost)
	router.HandleFunc("/admin/dresses/{id}", rh.UpdateDress).Methods(http.MethodPut)
	router.HandleFunc("/admin/dresses/{id}", rh.DeleteDress).Methods(http.MethodDelete)
	router.HandleFunc("/admin/dresses/{id}/status", rh.UpdateDressStatus).Methods(http.MethodPatch)
	router.HandleFunc("/admin/users", rh.ListUsersWithStats).Methods(http.MethodGet)
	router.HandleFunc("/admin/users/{id}/role", rh.UpdateUserRole).Methods(http.MethodPatch)
	router.HandleFunc("/admin/requests", rh.ListRequests).Methods(http.MethodGet)
	router.HandleFunc("/admin/requests/{id}/status", rh.UpdateRequestStatus).Methods(http.MethodPatch)

	// Internal routes (worker callback, API-key protected)
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/counters", rh.SyncCounters).Methods(http.MethodPost)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(authApp))

	return router
}

// Health handler
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200
// @Router /health [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"})
}

// pathID extracts the numeric {id} route variable.
func pathID(r *http.Request) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
}
