package http

import (
	"log/slog"
	"net/http"

	"eventticketing/internal/delivery/http/controllers"
	"eventticketing/internal/delivery/http/middleware"
	"eventticketing/internal/domain"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Controllers groups the controllers served by NewRouter.
type Controllers struct {
	Events   *controllers.EventController
	Tickets  *controllers.TicketController
	Escrow   *controllers.EscrowController
	Activity *controllers.ActivityController
}

// NewRouter initializes the HTTP router with all application routes.
// Mutating routes require a bearer token; queries are public.
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Events and checkers
	mux.HandleFunc("POST /events", auth(c.Events.CreateEvent))
	mux.HandleFunc("GET /events/{name}", c.Events.GetEvent)
	mux.HandleFunc("GET /events/{name}/checkers/{address}", c.Events.GetCheckerStatus)
	mux.HandleFunc("PUT /events/{name}/checkers/{address}", auth(c.Events.AddChecker))
	mux.HandleFunc("DELETE /events/{name}/checkers/{address}", auth(c.Events.RemoveChecker))

	// Tickets
	mux.HandleFunc("POST /events/{name}/tickets/issue", auth(c.Tickets.IssueTicket))
	mux.HandleFunc("POST /events/{name}/tickets/purchase", auth(c.Tickets.PurchaseTicket))
	mux.HandleFunc("POST /events/{name}/tickets/transfer", auth(c.Tickets.TransferTicket))
	mux.HandleFunc("POST /events/{name}/tickets/burn", auth(c.Tickets.BurnTicket))
	mux.HandleFunc("POST /events/{name}/tickets/{address}/check-in", auth(c.Tickets.CheckInTicket))
	mux.HandleFunc("GET /events/{name}/tickets/{address}", c.Tickets.GetTicketStatus)

	// Escrow
	mux.HandleFunc("GET /balances/{address}/{asset}", c.Escrow.GetBalance)
	mux.HandleFunc("POST /balances/{asset}/claim", auth(c.Escrow.ClaimBalance))

	// Activity
	mux.HandleFunc("GET /activity/events", c.Activity.ListEvents)
	mux.HandleFunc("GET /activity/withdrawals", c.Activity.ListWithdrawals)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
