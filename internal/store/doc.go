// Package store holds the password records and persists them as a single
// encrypted file.
//
// Keeper owns the ordered records, the master password and the dirty flag.
// It encodes records into the PassKeeper text format, encrypts the result
// through a domain.CryptoProvider and writes it through a
// domain.FileProvider. FileStore is the file provider used in production.
//
// # File format
//
// The plaintext is the magic token followed by label/secret pairs, all joined
// by CRLF:
//
//	PassKeeper\r\n<label>\r\n<secret>\r\n<label>\r\n<secret>...
//
// The file holds only the ciphertext of that text: no header, version or
// checksum. Labels and secrets containing CR or LF cannot be represented;
// ValidateField reports them before they reach the Keeper.
//
// All Keeper methods are safe for concurrent use via a single mutex.
package store
