package domain

import (
	interfaces "passkeeper/internal/domain/interfaces"
	types "passkeeper/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Record  = types.Record
	Outcome = types.Outcome
)

const (
	OutcomeNone           = types.OutcomeNone
	OutcomeLoadSucceeded  = types.OutcomeLoadSucceeded
	OutcomeLoadFailed     = types.OutcomeLoadFailed
	OutcomeLoadCorrupted  = types.OutcomeLoadCorrupted
	OutcomeStoreSucceeded = types.OutcomeStoreSucceeded
	OutcomeStoreFailed    = types.OutcomeStoreFailed
)

// CloneRecords copies a record list.
func CloneRecords(recs []Record) []Record { return types.CloneRecords(recs) }

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	FileProvider    = interfaces.FileProvider
	CryptoProvider  = interfaces.CryptoProvider
	RecordStore     = interfaces.RecordStore
	Observer        = interfaces.Observer
	Listener        = interfaces.Listener
	PasswordService = interfaces.PasswordService
)
