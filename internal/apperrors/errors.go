package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrInvestmentNotFound indicates that an external investment with the given ID does not exist.
	ErrInvestmentNotFound = errors.New("investment not found")

	// ErrExpenseNotFound indicates that a recurring expense with the given ID does not exist.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrGoalNotFound indicates that a future expense with the given ID does not exist.
	ErrGoalNotFound = errors.New("future expense not found")

	// ErrProfileNotFound indicates that the user profile has not been created yet.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrReportNotFound indicates that an analysis report with the given ID does not exist.
	ErrReportNotFound = errors.New("analysis report not found")

	// ErrBrokerSessionNotFound indicates that no brokerage session has been established.
	ErrBrokerSessionNotFound = errors.New("broker session not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrSnapshotRequired indicates that an analysis run was attempted without a snapshot.
	ErrSnapshotRequired = errors.New("portfolio snapshot is required")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrBrokerSessionExpired indicates that the stored brokerage access token is no longer valid.
	ErrBrokerSessionExpired = errors.New("broker session expired")

	// ErrBrokerNotConfigured indicates that brokerage API credentials have not been set up.
	ErrBrokerNotConfigured = errors.New("broker credentials not configured")

	// Validation errors for required fields
	ErrInvalidName         = errors.New("name is required")
	ErrInvalidAmount       = errors.New("amount is required")
	ErrInvalidRequestToken = errors.New("request token is required")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
// These errors indicate that an operation failed, but not due to missing entities or validation issues.
var (
	// Record operation errors
	ErrFailedToRetrieveInvestments = errors.New("failed to retrieve investments")
	ErrFailedToRetrieveExpenses    = errors.New("failed to retrieve expenses")
	ErrFailedToRetrieveGoals       = errors.New("failed to retrieve future expenses")
	ErrFailedToRetrieveProfile     = errors.New("failed to retrieve profile")
	ErrFailedToRetrieveHoldings    = errors.New("failed to retrieve holdings")

	// Analysis operation errors
	ErrFailedToBuildSnapshot = errors.New("failed to assemble portfolio snapshot")
	ErrFailedToRunAnalysis   = errors.New("failed to run analysis")
	ErrFailedToStoreReport   = errors.New("failed to store analysis report")

	// Broker operation errors
	ErrFailedToExchangeToken = errors.New("failed to exchange broker request token")
	ErrFailedToSyncHoldings  = errors.New("failed to sync broker holdings")
	ErrFailedToSealToken     = errors.New("failed to encrypt broker access token")
	ErrFailedToOpenToken     = errors.New("failed to decrypt broker access token")

	// System operation errors
	ErrFailedToGetVersionInfo = errors.New("failed to get version information")
)

// Data integrity errors represent inconsistencies or corruption in the data.
var (
	// ErrDataInconsistency indicates that the data is in an inconsistent state.
	ErrDataInconsistency = errors.New("data inconsistency detected")

	// ErrMissingRequiredField indicates that a required field is missing or empty.
	ErrMissingRequiredField = errors.New("missing required field")
)
