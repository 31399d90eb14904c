package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"eventticketing/internal/delivery/http/helpers"
	"eventticketing/internal/domain"
)

// IssueTicketRequest is the request body for POST /events/{name}/tickets/issue
// and POST /events/{name}/tickets/purchase.
type IssueTicketRequest struct {
	Receiver domain.Address `json:"receiver"`
}

// Validate implements Validator.
func (c IssueTicketRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(string(c.Receiver)) == "" {
		errs = append(errs, "receiver is required")
	}
	return errs
}

// TransferTicketRequest is the request body for POST /events/{name}/tickets/transfer.
type TransferTicketRequest struct {
	To domain.Address `json:"to"`
}

// Validate implements Validator.
func (c TransferTicketRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(string(c.To)) == "" {
		errs = append(errs, "to is required")
	}
	return errs
}

// TicketStatusResponse is the data payload for ticket endpoints.
type TicketStatusResponse struct {
	Event  string              `json:"event"`
	Holder domain.Address      `json:"holder"`
	Status domain.TicketStatus `json:"status" swaggertype:"string" enums:"none,unclaimed,claimed"`
}

// TicketStatusSuccessResponse is the success response envelope for ticket endpoints.
type TicketStatusSuccessResponse struct {
	Data  TicketStatusResponse `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

type TicketController struct {
	Logger  *slog.Logger
	Service domain.TicketSalesService
}

func NewTicketController(logger *slog.Logger, svc domain.TicketSalesService) *TicketController {
	return &TicketController{
		Logger:  logger,
		Service: svc,
	}
}

// IssueTicket godoc
// @Summary Gift a ticket
// @Description The event owner issues an unclaimed ticket to a receiver without payment.
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Event name"
// @Param body body IssueTicketRequest true "Ticket receiver"
// @Success 201 {object} controllers.TicketStatusSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: already_has_ticket, sold_out"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{name}/tickets/issue [post]
func (c *TicketController) IssueTicket(w http.ResponseWriter, r *http.Request) {
	c.issue(w, r, c.Service.OwnerIssueTicket)
}

// PurchaseTicket godoc
// @Summary Buy a ticket
// @Description The caller pays the ticket price in the settlement asset and the receiver gets an unclaimed ticket. Proceeds are held in the owner's escrow balance.
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Event name"
// @Param body body IssueTicketRequest true "Ticket receiver"
// @Success 201 {object} controllers.TicketStatusSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 402 {object} helpers.APIResponse "error.code: insufficient_funds"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: already_has_ticket, sold_out"
// @Failure 502 {object} helpers.APIResponse "error.code: asset_transfer_failed"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{name}/tickets/purchase [post]
func (c *TicketController) PurchaseTicket(w http.ResponseWriter, r *http.Request) {
	c.issue(w, r, c.Service.BuyTicketWithAsset)
}

func (c *TicketController) issue(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, caller domain.Address, name string, receiver domain.Address) error) {
	name := r.PathValue("name")
	if name == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing event name")
		return
	}
	var req IssueTicketRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	if err := op(r.Context(), caller, name, req.Receiver); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, TicketStatusResponse{Event: name, Holder: req.Receiver, Status: domain.TicketUnclaimed})
}

// TransferTicket godoc
// @Summary Transfer an unclaimed ticket
// @Description Moves the caller's unclaimed ticket to another address that holds no ticket for the event.
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Event name"
// @Param body body TransferTicketRequest true "Transfer target"
// @Success 200 {object} controllers.TicketStatusSuccessResponse "data describes the target's ticket"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: no_unclaimed_ticket, already_has_ticket"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{name}/tickets/transfer [post]
func (c *TicketController) TransferTicket(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing event name")
		return
	}
	var req TransferTicketRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	if err := c.Service.TransferUnclaimedTicket(r.Context(), caller, name, req.To); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, TicketStatusResponse{Event: name, Holder: req.To, Status: domain.TicketUnclaimed})
}

// BurnTicket godoc
// @Summary Burn an unclaimed ticket
// @Description Destroys the caller's unclaimed ticket and returns it to the event's supply.
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param name path string true "Event name"
// @Success 200 {object} controllers.TicketStatusSuccessResponse "data describes the caller's ticket"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: no_unclaimed_ticket"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{name}/tickets/burn [post]
func (c *TicketController) BurnTicket(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing event name")
		return
	}
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	if err := c.Service.BurnUnclaimedTicket(r.Context(), caller, name); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, TicketStatusResponse{Event: name, Holder: caller, Status: domain.TicketNone})
}

// CheckInTicket godoc
// @Summary Check in a ticket
// @Description A checker marks the holder's unclaimed ticket as claimed. Holders with no ticket or an already claimed ticket are left unchanged.
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param name path string true "Event name"
// @Param address path string true "Ticket holder"
// @Success 200 {object} controllers.TicketStatusSuccessResponse "data contains the holder's status after check-in"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{name}/tickets/{address}/check-in [post]
func (c *TicketController) CheckInTicket(w http.ResponseWriter, r *http.Request) {
	name, holder, ok := eventAndAddress(w, r)
	if !ok {
		return
	}
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	if err := c.Service.CheckInTicket(r.Context(), caller, name, holder); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	status, err := c.Service.GetTicketStatus(r.Context(), name, holder)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, TicketStatusResponse{Event: name, Holder: holder, Status: status})
}

// GetTicketStatus godoc
// @Summary Get ticket status
// @Description Returns none, unclaimed or claimed for a holder. Unknown events report none.
// @Tags tickets
// @Produce json
// @Param name path string true "Event name"
// @Param address path string true "Ticket holder"
// @Success 200 {object} controllers.TicketStatusSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{name}/tickets/{address} [get]
func (c *TicketController) GetTicketStatus(w http.ResponseWriter, r *http.Request) {
	name, holder, ok := eventAndAddress(w, r)
	if !ok {
		return
	}
	status, err := c.Service.GetTicketStatus(r.Context(), name, holder)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, TicketStatusResponse{Event: name, Holder: holder, Status: status})
}
