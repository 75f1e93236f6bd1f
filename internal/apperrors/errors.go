package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicateReference indicates that the ledger already holds an entry with the submitted reference number.
var ErrDuplicateReference = errors.New("reference number already exists")

// ErrUnbalanced indicates that the ledger refused an entry whose debits and credits differ.
var ErrUnbalanced = errors.New("journal entry is not balanced")

// ErrAccountSetup indicates that an account code required by the entry is missing on the ledger side.
var ErrAccountSetup = errors.New("required ledger account is missing")

// ErrUpstream indicates that the remote ledger API failed or returned something unusable.
var ErrUpstream = errors.New("ledger api unavailable")

// ErrUnauthorized indicates that the caller is not authenticated.
var ErrUnauthorized = errors.New("unauthorized")
