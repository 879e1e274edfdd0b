package api

import "smartbus/internal/pkg/errs"

var (
	errUnauthenticated = errs.New("missing authenticated actor")
	errActorMismatch   = errs.New("riders may only act on their own account")
)
