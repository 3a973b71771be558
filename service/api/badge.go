package api

import (
	"github.com/QuangTung97/crowdfund/model"
	"github.com/go-chi/chi/v5"
	"net/http"
	"strconv"
)

type badgeResponse struct {
	TokenID  int64         `json:"token_id"`
	Owner    model.Address `json:"owner"`
	Approved model.Address `json:"approved"`
}

type ownerResponse struct {
	Owner          model.Address `json:"owner"`
	Balance        int64         `json:"balance"`
	Operator       model.Address `json:"operator,omitempty"`
	ApprovedForAll *bool         `json:"approved_for_all,omitempty"`
}

type transferRequest struct {
	From model.Address `json:"from"`
	To   model.Address `json:"to"`
}

type approveRequest struct {
	To model.Address `json:"to"`
}

type operatorRequest struct {
	Operator model.Address `json:"operator"`
	Approved bool          `json:"approved"`
}

type operatorResponse struct {
	Owner    model.Address `json:"owner"`
	Operator model.Address `json:"operator"`
	Approved bool          `json:"approved"`
}

func tokenIDOf(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "tokenID"), 10, 64)
	if err != nil {
		return 0, ErrBadRequest
	}
	return id, nil
}

func (h *Handler) writeBadge(w http.ResponseWriter, r *http.Request, tokenID int64) {
	esc, err := h.getEscrow(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	b, err := esc.Badge(tokenID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, badgeResponse{
		TokenID:  b.TokenID,
		Owner:    b.Owner,
		Approved: b.Approved,
	})
}

func (h *Handler) handleGetBadge(w http.ResponseWriter, r *http.Request) {
	tokenID, err := tokenIDOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writeBadge(w, r, tokenID)
}

func (h *Handler) handleGetOwner(w http.ResponseWriter, r *http.Request) {
	esc, err := h.getEscrow(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	owner := model.Address(chi.URLParam(r, "owner"))
	resp := ownerResponse{
		Owner:   owner,
		Balance: esc.BalanceOf(owner),
	}

	operator := model.Address(r.URL.Query().Get("operator"))
	if operator != "" {
		approved := esc.IsApprovedForAll(owner, operator)
		resp.Operator = operator
		resp.ApprovedForAll = &approved
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleTransferBadge(w http.ResponseWriter, r *http.Request) {
	tokenID, err := tokenIDOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req transferRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	err = h.svc.TransferBadge(r.Context(), campaignAddress(r), callerOf(r), req.From, req.To, tokenID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writeBadge(w, r, tokenID)
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	tokenID, err := tokenIDOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req approveRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	err = h.svc.Approve(r.Context(), campaignAddress(r), callerOf(r), req.To, tokenID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writeBadge(w, r, tokenID)
}

func (h *Handler) handleSetOperator(w http.ResponseWriter, r *http.Request) {
	var req operatorRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	caller := callerOf(r)
	err := h.svc.SetApprovalForAll(r.Context(), campaignAddress(r), caller, req.Operator, req.Approved)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, operatorResponse{
		Owner:    caller,
		Operator: req.Operator,
		Approved: req.Approved,
	})
}
