package client

import "errors"

var (
	ErrNoCommand      = errors.New("no command given")
	ErrUnknownCommand = errors.New("unknown command")
	ErrWrongArgCount  = errors.New("wrong number of arguments")
	ErrInvalidID      = errors.New("account id must be a positive integer")
	ErrInvalidPayload = errors.New("invalid account payload")
)
