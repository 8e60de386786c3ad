package http

import (
	"context"

	"github.com/MKhiriev/go-account-service/models"
)

// ---- Mock: AccountService ----

type mockAccountSvc struct {
	createFn func(ctx context.Context, payload models.AccountPayload) (models.Account, error)
	getFn    func(ctx context.Context, id int64) (models.Account, error)
	listFn   func(ctx context.Context) ([]models.Account, error)
	updateFn func(ctx context.Context, id int64, payload models.AccountPayload) (models.Account, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockAccountSvc) CreateAccount(ctx context.Context, payload models.AccountPayload) (models.Account, error) {
	if m.createFn != nil {
		return m.createFn(ctx, payload)
	}
	return models.Account{}, nil
}

func (m *mockAccountSvc) GetAccount(ctx context.Context, id int64) (models.Account, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Account{}, nil
}

func (m *mockAccountSvc) ListAccounts(ctx context.Context) ([]models.Account, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockAccountSvc) UpdateAccount(ctx context.Context, id int64, payload models.AccountPayload) (models.Account, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, payload)
	}
	return models.Account{}, nil
}

func (m *mockAccountSvc) DeleteAccount(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// ---- Mock: AppInfoService ----

type mockAppInfoSvc struct {
	name    string
	version string
}

func (m *mockAppInfoSvc) GetAppName(_ context.Context) string {
	return m.name
}

func (m *mockAppInfoSvc) GetAppVersion(_ context.Context) string {
	return m.version
}
