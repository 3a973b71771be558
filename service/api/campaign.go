package api

import (
	"encoding/json"
	"github.com/QuangTung97/crowdfund/model"
	"github.com/QuangTung97/crowdfund/service/escrow"
	"github.com/QuangTung97/crowdfund/service/registry"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"net/http"
	"time"
)

type campaignResponse struct {
	Address          model.Address   `json:"address"`
	Name             string          `json:"name"`
	Symbol           string          `json:"symbol"`
	Creator          model.Address   `json:"creator"`
	Goal             decimal.Decimal `json:"goal"`
	Deadline         time.Time       `json:"deadline"`
	RaisedAmount     decimal.Decimal `json:"raised_amount"`
	TotalContributed decimal.Decimal `json:"total_contributed"`
	Status           string          `json:"status"`
	TokenCount       int64           `json:"token_count"`
	Version          int64           `json:"version"`
	CreatedAt        time.Time       `json:"created_at"`
}

func newCampaignResponse(esc *escrow.Escrow) campaignResponse {
	c := esc.Snapshot()
	return campaignResponse{
		Address:          c.Address,
		Name:             c.Name,
		Symbol:           c.Symbol,
		Creator:          c.Creator,
		Goal:             c.Goal,
		Deadline:         c.Deadline,
		RaisedAmount:     c.RaisedAmount,
		TotalContributed: c.TotalContributed,
		Status:           esc.Status().String(),
		TokenCount:       c.NextTokenID,
		Version:          c.Version,
		CreatedAt:        c.CreatedAt,
	}
}

type contributorResponse struct {
	Address    model.Address   `json:"address"`
	Amount     decimal.Decimal `json:"amount"`
	BadgeCount int64           `json:"badge_count"`
}

func newContributorResponse(c model.Contributor) contributorResponse {
	return contributorResponse{
		Address:    c.Address,
		Amount:     c.Amount,
		BadgeCount: c.BadgeCount,
	}
}

type createCampaignRequest struct {
	Name   string          `json:"name"`
	Symbol string          `json:"symbol"`
	Goal   decimal.Decimal `json:"goal"`
}

type amountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type contributeResponse struct {
	Contributor contributorResponse `json:"contributor"`
	BadgesAdded int64               `json:"badges_added"`
	TokenIDs    []int64             `json:"token_ids"`
	Status      string              `json:"status"`
}

type refundResponse struct {
	Amount decimal.Decimal `json:"amount"`
}

type summaryResponse struct {
	Address      model.Address   `json:"address"`
	Creator      model.Address   `json:"creator"`
	Status       string          `json:"status"`
	RaisedAmount decimal.Decimal `json:"raised_amount"`
	Goal         decimal.Decimal `json:"goal"`
}

type listCampaignsResponse struct {
	Campaigns []summaryResponse `json:"campaigns"`
	Counts    map[string]int    `json:"counts"`
	Escrowed  decimal.Decimal   `json:"escrowed"`
}

type creatorCampaignsResponse struct {
	Creator   model.Address   `json:"creator"`
	Campaigns []model.Address `json:"campaigns"`
}

type eventResponse struct {
	Seq       uint64          `json:"seq"`
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
}

func campaignAddress(r *http.Request) model.Address {
	return model.Address(chi.URLParam(r, "address"))
}

func (h *Handler) getEscrow(r *http.Request) (*escrow.Escrow, error) {
	return h.reg.Get(campaignAddress(r))
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	c, err := h.svc.CreateCampaign(r.Context(), callerOf(r), registry.CreateInput{
		Name:   req.Name,
		Symbol: req.Symbol,
		Goal:   req.Goal,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	esc, err := h.reg.Get(c.Address)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, newCampaignResponse(esc))
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, _ *http.Request) {
	stats := h.reg.Stats()

	resp := listCampaignsResponse{
		Campaigns: make([]summaryResponse, 0, len(stats.Campaigns)),
		Counts:    map[string]int{},
		Escrowed:  stats.Escrowed,
	}
	for _, s := range stats.Campaigns {
		resp.Campaigns = append(resp.Campaigns, summaryResponse{
			Address:      s.Address,
			Creator:      s.Creator,
			Status:       s.Status.String(),
			RaisedAmount: s.RaisedAmount,
			Goal:         s.Goal,
		})
	}
	for status, n := range stats.Counts {
		resp.Counts[status.String()] = n
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	esc, err := h.getEscrow(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newCampaignResponse(esc))
}

func (h *Handler) handleCreatorCampaigns(w http.ResponseWriter, r *http.Request) {
	creator := model.Address(chi.URLParam(r, "creator"))
	writeJSON(w, http.StatusOK, creatorCampaignsResponse{
		Creator:   creator,
		Campaigns: h.reg.CampaignsOf(creator),
	})
}

func (h *Handler) handleContribute(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.svc.Contribute(r.Context(), campaignAddress(r), callerOf(r), req.Amount)
	if err != nil {
		writeError(w, r, err)
		return
	}

	tokenIDs := out.TokenIDs
	if tokenIDs == nil {
		tokenIDs = []int64{}
	}
	writeJSON(w, http.StatusOK, contributeResponse{
		Contributor: newContributorResponse(out.Contributor),
		BadgesAdded: out.BadgesAdded,
		TokenIDs:    tokenIDs,
		Status:      out.Status.String(),
	})
}

func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	err := h.svc.WithdrawCreatorFunds(r.Context(), campaignAddress(r), callerOf(r), req.Amount)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.handleGetCampaign(w, r)
}

func (h *Handler) handleRefund(w http.ResponseWriter, r *http.Request) {
	amount, err := h.svc.GetRefund(r.Context(), campaignAddress(r), callerOf(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, refundResponse{Amount: amount})
}

func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request) {
	err := h.svc.CancelCampaign(r.Context(), campaignAddress(r), callerOf(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.handleGetCampaign(w, r)
}

func (h *Handler) handleGetContributor(w http.ResponseWriter, r *http.Request) {
	esc, err := h.getEscrow(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	c := esc.Contributor(model.Address(chi.URLParam(r, "contributor")))
	writeJSON(w, http.StatusOK, newContributorResponse(c))
}

func (h *Handler) handleEvents(w http.ResponseWriter, r *http.Request) {
	esc, err := h.getEscrow(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	events := esc.Events()
	resp := make([]eventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, eventResponse{
			Seq:       e.Seq,
			Type:      e.Type.String(),
			Data:      e.Data,
			CreatedAt: e.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
