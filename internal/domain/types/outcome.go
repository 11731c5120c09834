package types

// Outcome is the discrete result the façade reports for load and store.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeLoadSucceeded
	OutcomeLoadFailed
	// OutcomeLoadCorrupted means the file decrypted but the plaintext did not
	// parse: a damaged file or a wrong password that slipped past the cipher.
	OutcomeLoadCorrupted
	OutcomeStoreSucceeded
	OutcomeStoreFailed
)

var outcomeNames = map[Outcome]string{
	OutcomeNone:           "none",
	OutcomeLoadSucceeded:  "load succeeded",
	OutcomeLoadFailed:     "load failed",
	OutcomeLoadCorrupted:  "load corrupted",
	OutcomeStoreSucceeded: "store succeeded",
	OutcomeStoreFailed:    "store failed",
}

// String returns a human readable name.
func (o Outcome) String() string {
	if s, ok := outcomeNames[o]; ok {
		return s
	}
	return "unknown"
}

// Succeeded reports whether o is one of the success outcomes.
func (o Outcome) Succeeded() bool {
	return o == OutcomeLoadSucceeded || o == OutcomeStoreSucceeded
}
