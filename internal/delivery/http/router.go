package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"partyplanner/internal/delivery/http/controllers"
	"partyplanner/internal/delivery/http/middleware"
	"partyplanner/internal/domain"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Contacts    *controllers.ContactController
	Party       *controllers.PartyController
	Invitations *controllers.InvitationController
}

// NewRouter initializes the HTTP router with all application routes.
// When verifier is nil, POST /send-invites is open.
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", controllers.Welcome)
	mux.HandleFunc("GET /health", controllers.Health)

	// API Routes
	mux.HandleFunc("GET /contacts", c.Contacts.ListContacts)
	mux.HandleFunc("GET /themes", c.Party.ListThemes)
	mux.HandleFunc("POST /party-plans", c.Party.CreatePlan)

	sendInvites := c.Invitations.SendInvites
	if verifier != nil {
		sendInvites = middleware.RequireAuth(verifier, logger)(sendInvites)
	}
	mux.HandleFunc("POST /send-invites", sendInvites)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps the router in the middleware chain: request id, logging, CORS.
func NewHandler(mux http.Handler, logger *slog.Logger, allowedOrigins []string) http.Handler {
	return middleware.RequestID(middleware.LoggingMiddleware(logger, middleware.CORS(allowedOrigins, mux)))
}
