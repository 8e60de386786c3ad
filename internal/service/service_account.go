// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/store"
	"github.com/MKhiriev/go-account-service/internal/validators"
	"github.com/MKhiriev/go-account-service/models"
)

type accountService struct {
	accountRepository store.AccountRepository
	validator         validators.Validator
	today             func() models.Date

	logger *logger.Logger
}

func NewAccountService(accountRepository store.AccountRepository, validator validators.Validator, logger *logger.Logger) AccountService {
	return &accountService{
		accountRepository: accountRepository,
		validator:         validator,
		today:             models.Today,
		logger:            logger,
	}
}

func (a *accountService) CreateAccount(ctx context.Context, payload models.AccountPayload) (models.Account, error) {
	if err := a.validator.Validate(ctx, payload); err != nil {
		return models.Account{}, err
	}

	created, err := a.accountRepository.Create(ctx, payload.ToAccount(a.today()))
	if err != nil {
		return models.Account{}, a.mapStoreError(ctx, "accountService.CreateAccount", err)
	}

	return created, nil
}

func (a *accountService) GetAccount(ctx context.Context, id int64) (models.Account, error) {
	if id <= 0 {
		return models.Account{}, ErrAccountNotFound
	}

	account, err := a.accountRepository.FindByID(ctx, id)
	if err != nil {
		return models.Account{}, err
	}
	if account == nil {
		return models.Account{}, ErrAccountNotFound
	}

	return *account, nil
}

func (a *accountService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return a.accountRepository.List(ctx)
}

// UpdateAccount checks existence before validating the payload, so an
// unknown id yields ErrAccountNotFound even for a malformed body.
func (a *accountService) UpdateAccount(ctx context.Context, id int64, payload models.AccountPayload) (models.Account, error) {
	existing, err := a.GetAccount(ctx, id)
	if err != nil {
		return models.Account{}, err
	}

	if err = a.validator.Validate(ctx, payload); err != nil {
		return models.Account{}, err
	}

	updated := existing.Apply(payload)
	if err = a.accountRepository.Update(ctx, updated); err != nil {
		return models.Account{}, a.mapStoreError(ctx, "accountService.UpdateAccount", err)
	}

	return updated, nil
}

func (a *accountService) DeleteAccount(ctx context.Context, id int64) error {
	if id <= 0 {
		return nil
	}

	return a.accountRepository.Delete(ctx, id)
}

// mapStoreError translates repository sentinels into service errors. The
// driver detail behind store.ErrInvalidAccountData is logged, not returned.
func (a *accountService) mapStoreError(ctx context.Context, fn string, err error) error {
	switch {
	case errors.Is(err, store.ErrAccountNotFound):
		return ErrAccountNotFound
	case errors.Is(err, store.ErrInvalidAccountData):
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("storage rejected account data")
		return fmt.Errorf("%w: a field exceeds its storage limit", ErrInvalidAccount)
	default:
		return err
	}
}
