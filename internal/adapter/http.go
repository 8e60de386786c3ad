// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-account-service/internal/config"
	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/utils"
	"github.com/MKhiriev/go-account-service/models"
	"github.com/go-resty/resty/v2"
)

const traceIDHeader = "X-Trace-ID"

type httpAccountAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPAccountAdapter constructs the HTTP/REST implementation of
// [AccountAdapter]. The base URL comes from cfg.HTTPAddress; a missing scheme
// defaults to http.
//
// Returns [ErrInvalidAddress] (wrapped) if the address is empty or cannot be
// parsed.
func NewHTTPAccountAdapter(cfg config.ClientAdapter, logger *logger.Logger) (AccountAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json").
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			logger.Debug().
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL).
				Int("status", resp.StatusCode()).
				Str("trace_id", resp.Header().Get(traceIDHeader)).
				Dur("duration", resp.Time()).
				Msg("response received")
			return nil
		})

	return &httpAccountAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func accountPath(id int64) string {
	return "/accounts/" + strconv.FormatInt(id, 10)
}

// CreateAccount implements [AccountAdapter]. It POSTs payload to
// POST /accounts and returns the created account and its Location header.
func (h *httpAccountAdapter) CreateAccount(ctx context.Context, payload models.AccountPayload) (models.Account, string, error) {
	var created models.Account

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&created).
		Post("/accounts")
	if err != nil {
		return models.Account{}, "", fmt.Errorf("create account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, "", err
	}

	return created, resp.Header().Get("Location"), nil
}

// GetAccount implements [AccountAdapter] via GET /accounts/{id}.
func (h *httpAccountAdapter) GetAccount(ctx context.Context, id int64) (models.Account, error) {
	var account models.Account

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&account).
		Get(accountPath(id))
	if err != nil {
		return models.Account{}, fmt.Errorf("get account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	return account, nil
}

// ListAccounts implements [AccountAdapter] via GET /accounts.
func (h *httpAccountAdapter) ListAccounts(ctx context.Context) ([]models.Account, error) {
	accounts := make([]models.Account, 0)

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&accounts).
		Get("/accounts")
	if err != nil {
		return nil, fmt.Errorf("list accounts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return accounts, nil
}

// UpdateAccount implements [AccountAdapter] via PUT /accounts/{id}.
func (h *httpAccountAdapter) UpdateAccount(ctx context.Context, id int64, payload models.AccountPayload) (models.Account, error) {
	var updated models.Account

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&updated).
		Put(accountPath(id))
	if err != nil {
		return models.Account{}, fmt.Errorf("update account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	return updated, nil
}

// DeleteAccount implements [AccountAdapter] via DELETE /accounts/{id}.
func (h *httpAccountAdapter) DeleteAccount(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(accountPath(id))
	if err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}

	return mapHTTPError(resp)
}

// Health implements [AccountAdapter] via GET /health.
func (h *httpAccountAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return health, nil
}
