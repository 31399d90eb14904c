package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"eventticketing/internal/delivery/http/helpers"
	"eventticketing/internal/domain"
)

// CreateEventRequest is the request body for POST /events.
type CreateEventRequest struct {
	Name           string `json:"name"`
	TicketPrice    uint64 `json:"ticket_price"`
	TicketQuantity uint64 `json:"ticket_quantity"`
}

// Validate implements Validator. The quantity rule is left to the ledger so
// the response carries invalid_quantity.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// EventSuccessResponse is the success response envelope for event endpoints.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CheckerStatusResponse is the data payload for checker endpoints.
type CheckerStatusResponse struct {
	Event     string         `json:"event"`
	Address   domain.Address `json:"address"`
	IsChecker bool           `json:"is_checker"`
}

// CheckerStatusSuccessResponse is the success response envelope for checker endpoints.
type CheckerStatusSuccessResponse struct {
	Data  CheckerStatusResponse `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.TicketSalesService
}

func NewEventController(logger *slog.Logger, svc domain.TicketSalesService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Register a ticketed event. The authenticated caller becomes the owner and its first checker. Names are unique and case sensitive.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event name, ticket price and ticket supply"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, invalid_quantity"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: already_exists"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), caller, req.Name, req.TicketPrice, req.TicketQuantity)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// GetEvent godoc
// @Summary Get an event
// @Description Returns the owner, ticket price, ticket supply and issued count of an event.
// @Tags events
// @Produce json
// @Param name path string true "Event name"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{name} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing event name")
		return
	}
	event, err := c.Service.GetEventData(r.Context(), name)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// GetCheckerStatus godoc
// @Summary Get checker status
// @Description Reports whether an address may check in tickets for an event. Unknown events report false.
// @Tags checkers
// @Produce json
// @Param name path string true "Event name"
// @Param address path string true "Address"
// @Success 200 {object} controllers.CheckerStatusSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{name}/checkers/{address} [get]
func (c *EventController) GetCheckerStatus(w http.ResponseWriter, r *http.Request) {
	name, addr, ok := eventAndAddress(w, r)
	if !ok {
		return
	}
	isChecker, err := c.Service.GetCheckerStatus(r.Context(), name, addr)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, CheckerStatusResponse{Event: name, Address: addr, IsChecker: isChecker})
}

// AddChecker godoc
// @Summary Add a checker
// @Description Grants check-in authority for an event. Only the event owner may add checkers.
// @Tags checkers
// @Produce json
// @Security BearerAuth
// @Param name path string true "Event name"
// @Param address path string true "Address to grant"
// @Success 200 {object} controllers.CheckerStatusSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: already_checker"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{name}/checkers/{address} [put]
func (c *EventController) AddChecker(w http.ResponseWriter, r *http.Request) {
	name, addr, ok := eventAndAddress(w, r)
	if !ok {
		return
	}
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	if err := c.Service.AddChecker(r.Context(), caller, name, addr); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, CheckerStatusResponse{Event: name, Address: addr, IsChecker: true})
}

// RemoveChecker godoc
// @Summary Remove a checker
// @Description Revokes check-in authority for an event. Only the event owner may remove checkers, including itself.
// @Tags checkers
// @Produce json
// @Security BearerAuth
// @Param name path string true "Event name"
// @Param address path string true "Address to revoke"
// @Success 200 {object} controllers.CheckerStatusSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: not_a_checker"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{name}/checkers/{address} [delete]
func (c *EventController) RemoveChecker(w http.ResponseWriter, r *http.Request) {
	name, addr, ok := eventAndAddress(w, r)
	if !ok {
		return
	}
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	if err := c.Service.RemoveChecker(r.Context(), caller, name, addr); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, CheckerStatusResponse{Event: name, Address: addr, IsChecker: false})
}

// eventAndAddress reads the name and address path values, writing 400 when either is missing.
func eventAndAddress(w http.ResponseWriter, r *http.Request) (string, domain.Address, bool) {
	name := r.PathValue("name")
	addr := r.PathValue("address")
	if name == "" || addr == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing event name or address")
		return "", "", false
	}
	return name, domain.Address(addr), true
}
