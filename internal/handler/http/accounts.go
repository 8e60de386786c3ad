// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/utils"
	"github.com/MKhiriev/go-account-service/models"
	"github.com/go-chi/chi/v5"
)

const (
	accountIDParam = "id"

	// maxRequestBodyBytes bounds create and update bodies.
	maxRequestBodyBytes = 1 << 20
)

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	payload, err := decodeAccountPayload(w, r)
	if err != nil {
		writeServiceError(w, r, "*Handler.createAccount", "", err)
		return
	}

	account, err := h.services.AccountService.CreateAccount(r.Context(), payload)
	if err != nil {
		writeServiceError(w, r, "*Handler.createAccount", "", err)
		return
	}

	log.Info().Int64("account_id", account.ID).Msg("account created")

	w.Header().Set("Location", accountLocation(account.ID))
	if _, err = utils.WriteJSON(w, account, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.createAccount").Msg("error writing response")
	}
}

func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, rawID, ok := accountIDFromRequest(r)
	if !ok {
		writeError(w, http.StatusNotFound, accountNotFoundMessage(rawID))
		return
	}

	account, err := h.services.AccountService.GetAccount(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "*Handler.getAccount", rawID, err)
		return
	}

	if _, err = utils.WriteJSON(w, account, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getAccount").Msg("error writing response")
	}
}

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	accounts, err := h.services.AccountService.ListAccounts(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.listAccounts", "", err)
		return
	}
	// an empty store still serializes as []
	if accounts == nil {
		accounts = []models.Account{}
	}

	if _, err = utils.WriteJSON(w, accounts, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listAccounts").Msg("error writing response")
	}
}

func (h *Handler) updateAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, rawID, ok := accountIDFromRequest(r)
	if !ok {
		writeError(w, http.StatusNotFound, accountNotFoundMessage(rawID))
		return
	}

	payload, err := decodeAccountPayload(w, r)
	if err != nil {
		writeServiceError(w, r, "*Handler.updateAccount", rawID, err)
		return
	}

	account, err := h.services.AccountService.UpdateAccount(r.Context(), id, payload)
	if err != nil {
		writeServiceError(w, r, "*Handler.updateAccount", rawID, err)
		return
	}

	log.Info().Int64("account_id", account.ID).Msg("account updated")

	if _, err = utils.WriteJSON(w, account, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.updateAccount").Msg("error writing response")
	}
}

// deleteAccount answers 204 whether or not the account existed. An {id}
// that is not a positive integer names no account and is treated the same.
func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if id, rawID, ok := accountIDFromRequest(r); ok {
		if err := h.services.AccountService.DeleteAccount(r.Context(), id); err != nil {
			writeServiceError(w, r, "*Handler.deleteAccount", rawID, err)
			return
		}
		log.Info().Int64("account_id", id).Msg("account deleted")
	}

	w.WriteHeader(http.StatusNoContent)
}

// accountIDFromRequest reads the {id} path parameter. ok is false unless the
// parameter is a positive integer.
func accountIDFromRequest(r *http.Request) (id int64, rawID string, ok bool) {
	rawID = chi.URLParam(r, accountIDParam)

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		return 0, rawID, false
	}
	return id, rawID, true
}

func decodeAccountPayload(w http.ResponseWriter, r *http.Request) (models.AccountPayload, error) {
	var payload models.AccountPayload

	if err := utils.DecodeJSON(w, r, maxRequestBodyBytes, &payload); err != nil {
		if errors.Is(err, utils.ErrRequestBodyTooLarge) {
			return models.AccountPayload{}, err
		}
		return models.AccountPayload{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return payload, nil
}

func accountLocation(id int64) string {
	return "/accounts/" + strconv.FormatInt(id, 10)
}
