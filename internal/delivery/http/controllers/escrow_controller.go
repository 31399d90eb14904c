package controllers

import (
	"log/slog"
	"net/http"

	"eventticketing/internal/delivery/http/helpers"
	"eventticketing/internal/domain"
)

// BalanceResponse is the data payload for balance endpoints.
type BalanceResponse struct {
	Owner  domain.Address `json:"owner"`
	Asset  domain.AssetID `json:"asset"`
	Amount uint64         `json:"amount"`
}

// BalanceSuccessResponse is the success response envelope for balance endpoints.
type BalanceSuccessResponse struct {
	Data  BalanceResponse   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ClaimResponse is the data payload for POST /balances/{asset}/claim.
type ClaimResponse struct {
	Receiver domain.Address `json:"receiver"`
	Asset    domain.AssetID `json:"asset"`
	Amount   uint64         `json:"amount"`
}

// ClaimSuccessResponse is the success response envelope for POST /balances/{asset}/claim.
type ClaimSuccessResponse struct {
	Data  ClaimResponse     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EscrowController struct {
	Logger  *slog.Logger
	Service domain.TicketSalesService
}

func NewEscrowController(logger *slog.Logger, svc domain.TicketSalesService) *EscrowController {
	return &EscrowController{
		Logger:  logger,
		Service: svc,
	}
}

// GetBalance godoc
// @Summary Get escrow balance
// @Description Returns the sales proceeds held for an owner in an asset.
// @Tags balances
// @Produce json
// @Param address path string true "Owner address"
// @Param asset path string true "Asset code, e.g. DAI"
// @Success 200 {object} controllers.BalanceSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /balances/{address}/{asset} [get]
func (c *EscrowController) GetBalance(w http.ResponseWriter, r *http.Request) {
	owner := domain.Address(r.PathValue("address"))
	asset := domain.AssetID(r.PathValue("asset"))
	if owner == "" || asset == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing address or asset")
		return
	}
	amount, err := c.Service.GetBalance(r.Context(), owner, asset)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, BalanceResponse{Owner: owner, Asset: asset, Amount: amount})
}

// ClaimBalance godoc
// @Summary Withdraw escrow balance
// @Description Transfers the caller's whole escrow balance in the asset from custody to the caller.
// @Tags balances
// @Produce json
// @Security BearerAuth
// @Param asset path string true "Asset code, e.g. DAI"
// @Success 200 {object} controllers.ClaimSuccessResponse "data contains the withdrawn amount"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: zero_balance"
// @Failure 502 {object} helpers.APIResponse "error.code: asset_transfer_failed"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /balances/{asset}/claim [post]
func (c *EscrowController) ClaimBalance(w http.ResponseWriter, r *http.Request) {
	asset := domain.AssetID(r.PathValue("asset"))
	if asset == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing asset")
		return
	}
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	amount, err := c.Service.ClaimBalance(r.Context(), caller, asset)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ClaimResponse{Receiver: caller, Asset: asset, Amount: amount})
}
