// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Account is a customer record managed by the service.
//
// The struct carries no persistence state: identifiers and join dates are
// assigned by the store and only read back into it.
type Account struct {
	// ID is the store-generated identifier. Zero means "not persisted yet"
	// and is omitted from JSON.
	ID int64 `json:"id,omitempty"`

	// Name is the display name of the account holder.
	Name string `json:"name"`

	// Email is the contact e-mail address.
	Email string `json:"email"`

	// Address is the postal address.
	Address string `json:"address"`

	// PhoneNumber is the contact phone number.
	PhoneNumber string `json:"phone_number"`

	// DateJoined is the creation date. It is set once when the account is
	// created and never changed by updates.
	DateJoined Date `json:"date_joined"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// Apply returns a copy of a with every client-editable field replaced from p.
// ID and DateJoined are kept as they are.
func (a Account) Apply(p AccountPayload) Account {
	a.Name = p.Name
	a.Email = p.Email
	a.Address = p.Address
	a.PhoneNumber = p.PhoneNumber
	return a
}

// Payload returns the client-editable view of a.
func (a Account) Payload() AccountPayload {
	p := AccountPayload{
		Name:        a.Name,
		Email:       a.Email,
		Address:     a.Address,
		PhoneNumber: a.PhoneNumber,
	}
	if !a.DateJoined.IsZero() {
		dateJoined := a.DateJoined
		p.DateJoined = &dateJoined
	}
	return p
}

// AccountPayload is the body of create and update requests.
//
// Unknown JSON keys (including "id") are ignored when decoding. Length limits
// mirror the column sizes of the accounts table.
type AccountPayload struct {
	Name        string `json:"name" validate:"required,max=64"`
	Email       string `json:"email" validate:"required,max=64"`
	Address     string `json:"address" validate:"required,max=256"`
	PhoneNumber string `json:"phone_number" validate:"required,max=32"`

	// DateJoined is optional; when absent a new account joins today.
	DateJoined *Date `json:"date_joined,omitempty"`
}

// ToAccount builds a new, not yet persisted Account from p. When p carries no
// join date, today is used.
func (p AccountPayload) ToAccount(today Date) Account {
	dateJoined := today
	if p.DateJoined != nil && !p.DateJoined.IsZero() {
		dateJoined = *p.DateJoined
	}

	return Account{
		Name:        p.Name,
		Email:       p.Email,
		Address:     p.Address,
		PhoneNumber: p.PhoneNumber,
		DateJoined:  dateJoined,
	}
}
