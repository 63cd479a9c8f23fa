package domain

import "errors"

// ============================================================================
// MTE Errors
// ============================================================================

// Validation errors
var (
	ErrInvalidContextName = errors.New("context name is required")
	ErrInvalidObjectName  = errors.New("object name is required")
	ErrInvalidMTEName     = errors.New("mte name is required")
)

// Lookup errors
var (
	ErrTIDNotFound       = errors.New("no TID returned for monitoring tree element")
	ErrUnsupportedClass  = errors.New("unsupported monitoring tree element class")
	ErrValueFieldMissing = errors.New("value field missing in BAPI response")
)

// ============================================================================
// RFC / XMI Errors
// ============================================================================

var (
	ErrBAPICallFailed = errors.New("BAPI returned an error")
	ErrXMILogonFailed = errors.New("XMI interface logon failed")
)

// ============================================================================
// Credential Errors
// ============================================================================

var (
	ErrCredentialIncomplete = errors.New("SAP credential is missing required fields")
	ErrSecretMalformed      = errors.New("secret payload is not valid credential JSON")
)

// ============================================================================
// Reading Archive Errors
// ============================================================================

var (
	ErrReadingNotFound = errors.New("reading not found")
	ErrArchiveDisabled = errors.New("reading archive is not enabled")
)
