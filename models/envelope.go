package models

type (
	// Envelope is a string alias representing one encrypted payload in the
	// textual form hex(iv):hex(tag):hex(ciphertext). The database treats the
	// value as opaque; only the crypto package knows how to open it.
	Envelope string
)
