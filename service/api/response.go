package api

import (
	"encoding/json"
	"errors"
	"github.com/QuangTung97/crowdfund/pkg/otellib"
	"github.com/QuangTung97/crowdfund/service/escrow"
	"github.com/QuangTung97/crowdfund/service/registry"
	"net/http"
)

// ErrBadRequest ...
var ErrBadRequest = errors.New("invalid request body")

type errorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return ErrBadRequest
	}
	return nil
}

// StatusOf maps an error to its http status code
func StatusOf(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, escrow.ErrEmptyCaller):
		return http.StatusUnauthorized
	case errors.Is(err, registry.ErrCampaignNotFound), errors.Is(err, escrow.ErrUnknownToken):
		return http.StatusNotFound
	}

	switch escrow.KindOf(err) {
	case escrow.KindAuthorization:
		return http.StatusForbidden
	case escrow.KindLifecycle:
		return http.StatusConflict
	case escrow.KindAmount:
		return http.StatusUnprocessableEntity
	case escrow.KindReference:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusOf(err)

	kind := escrow.KindOf(err).String()
	msg := err.Error()
	if errors.Is(err, ErrBadRequest) {
		kind = "request"
	}
	if status == http.StatusInternalServerError {
		otellib.WrapError(r.Context(), err)
		msg = http.StatusText(status)
	}

	writeJSON(w, status, errorResponse{
		Error: errorBody{
			Kind:    kind,
			Message: msg,
		},
	})
}
