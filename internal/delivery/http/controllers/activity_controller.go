package controllers

import (
	"log/slog"
	"net/http"

	"eventticketing/internal/delivery/http/helpers"
	"eventticketing/internal/domain"
)

// ListEventActivityResponse is the data payload for GET /activity/events.
type ListEventActivityResponse struct {
	Items      []*domain.EventCreatedRecord `json:"items"`
	Pagination helpers.PageInfo             `json:"pagination"`
}

// ListEventActivitySuccessResponse is the success response envelope for GET /activity/events.
type ListEventActivitySuccessResponse struct {
	Data  ListEventActivityResponse `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

// ListWithdrawalActivityResponse is the data payload for GET /activity/withdrawals.
type ListWithdrawalActivityResponse struct {
	Items      []*domain.BalanceWithdrawnRecord `json:"items"`
	Pagination helpers.PageInfo                 `json:"pagination"`
}

// ListWithdrawalActivitySuccessResponse is the success response envelope for GET /activity/withdrawals.
type ListWithdrawalActivitySuccessResponse struct {
	Data  ListWithdrawalActivityResponse `json:"data"`
	Error *helpers.APIError              `json:"error"`
}

type ActivityController struct {
	Logger  *slog.Logger
	Service domain.ActivityService
}

func NewActivityController(logger *slog.Logger, svc domain.ActivityService) *ActivityController {
	return &ActivityController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List created events by owner
// @Description Paginated feed of event creation records for an owner, newest first.
// @Tags activity
// @Produce json
// @Param owner query string true "Owner address"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListEventActivitySuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /activity/events [get]
func (c *ActivityController) ListEvents(w http.ResponseWriter, r *http.Request) {
	owner := domain.Address(r.URL.Query().Get("owner"))
	if owner == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "owner is required")
		return
	}
	params := helpers.ParsePageRequest(r)
	items, total, err := c.Service.ListEventsByOwner(r.Context(), owner, params)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if items == nil {
		items = []*domain.EventCreatedRecord{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListEventActivityResponse{
		Items:      items,
		Pagination: helpers.NewPageInfo(params, total),
	})
}

// ListWithdrawals godoc
// @Summary List withdrawals by receiver
// @Description Paginated feed of escrow withdrawals for a receiver, newest first.
// @Tags activity
// @Produce json
// @Param receiver query string true "Receiver address"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListWithdrawalActivitySuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /activity/withdrawals [get]
func (c *ActivityController) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	receiver := domain.Address(r.URL.Query().Get("receiver"))
	if receiver == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "receiver is required")
		return
	}
	params := helpers.ParsePageRequest(r)
	items, total, err := c.Service.ListWithdrawalsByReceiver(r.Context(), receiver, params)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if items == nil {
		items = []*domain.BalanceWithdrawnRecord{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListWithdrawalActivityResponse{
		Items:      items,
		Pagination: helpers.NewPageInfo(params, total),
	})
}
