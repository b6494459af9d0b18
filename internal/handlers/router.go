package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "contacts-api/docs"
	"contacts-api/internal/ratelimit"
	"contacts-api/internal/services"
	"contacts-api/internal/wsnotify"
)

type RouterConfig struct {
	Contacts     *services.ContactService
	Events       *wsnotify.WebSocketManager
	Origins      *OriginPolicy
	RateLimit    ratelimit.Options
	PublicDir    string
	MaxBodyBytes int64
}

// NewRouter wires every route behind the middleware chain: request id,
// access log, panic recovery, CORS, rate limit and body size limit.
func NewRouter(cfg RouterConfig) http.Handler {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(NotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(MethodNotAllowed)

	router.HandleFunc("/", Root).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.NotFoundHandler = router.NotFoundHandler
	api.MethodNotAllowedHandler = router.MethodNotAllowedHandler

	contacts := NewContactHandler(cfg.Contacts)
	api.HandleFunc("/contacts", contacts.ListContacts).Methods(http.MethodGet)
	api.HandleFunc("/contacts", contacts.CreateContact).Methods(http.MethodPost)
	api.HandleFunc("/contacts", contacts.DeleteAllContacts).Methods(http.MethodDelete)
	api.HandleFunc("/contacts/{id}", contacts.GetContact).Methods(http.MethodGet)
	api.HandleFunc("/contacts/{id}", contacts.UpdateContact).Methods(http.MethodPut)
	api.HandleFunc("/contacts/{id}", contacts.DeleteContact).Methods(http.MethodDelete)
	api.HandleFunc("/contacts/{id}/qrcode", contacts.GetContactQRCode).Methods(http.MethodGet)

	if cfg.Events != nil {
		router.Handle("/ws", NewWebSocketHandler(cfg.Events)).Methods(http.MethodGet)
	}

	if cfg.PublicDir != "" {
		router.PathPrefix("/public/").Handler(
			http.StripPrefix("/public/", http.FileServer(http.Dir(cfg.PublicDir))))
	}

	router.Handle("/api-docs", http.RedirectHandler("/api-docs/index.html", http.StatusMovedPermanently))
	router.PathPrefix("/api-docs/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/api-docs/doc.json"),
		httpSwagger.DeepLinking(true),
	))

	var handler http.Handler = router
	if cfg.MaxBodyBytes > 0 {
		handler = LimitBody(cfg.MaxBodyBytes)(handler)
	}
	limits := cfg.RateLimit
	if limits.OnLimited == nil {
		limits.OnLimited = TooManyRequests
	}
	handler = ratelimit.Middleware(limits)(handler)
	if cfg.Origins != nil {
		handler = cfg.Origins.Middleware()(handler)
	}
	handler = Recoverer(handler)
	handler = AccessLog(handler)
	handler = RequestID(handler)
	return handler
}
