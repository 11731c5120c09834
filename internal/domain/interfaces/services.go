package interfaces

import domaintypes "passkeeper/internal/domain/types"

// Observer receives the complete, ordered record list after every successful
// mutation and after every load.
type Observer interface {
	RecordsChanged(records []domaintypes.Record)
}

// Listener is an Observer that also wants the load/store outcomes.
type Listener interface {
	Observer
	Outcome(outcome domaintypes.Outcome)
}

// PasswordService is the façade used by presentation code.
type PasswordService interface {
	SetPassword(password string)
	LoadPasswords() domaintypes.Outcome
	StorePasswords() domaintypes.Outcome

	AddPassword(label, secret string) bool
	UpdatePassword(label, secret string) bool
	RemovePassword(label string) bool
	Find(label string) (domaintypes.Record, bool)
	Passwords() []domaintypes.Record

	SetListener(l Observer)
	Destroy()
}
