package models

// SecretFields is the plaintext structure that gets serialized and sealed
// into an [Envelope]. Every named field is optional; absent fields are
// omitted from the serialized form entirely so that stored ciphertext does
// not leak which fields a record carries.
//
// The JSON field names are part of the persisted envelope format and must
// not change: an envelope written by one deployment has to open and decode
// on any other deployment sharing the same encryption secret.
type SecretFields struct {
	// LoginPassword is the password used to sign in to the service.
	LoginPassword string `json:"loginPassword,omitempty"`

	// TransactionPassword is a separate password required to authorize
	// transactions (common with banking portals).
	TransactionPassword string `json:"transactionPassword,omitempty"`

	// SMSPassword is a password delivered or verified via SMS.
	SMSPassword string `json:"smsPassword,omitempty"`

	// PIN is a generic numeric PIN.
	PIN string `json:"pin,omitempty"`

	// ATMPin is the PIN for card usage at ATMs.
	ATMPin string `json:"atmPin,omitempty"`

	// UPIPin is the PIN used to confirm UPI payments.
	UPIPin string `json:"upiPin,omitempty"`

	// MPIN is the mobile-banking PIN.
	MPIN string `json:"mpin,omitempty"`

	// SecretQuestion is the account-recovery question.
	SecretQuestion string `json:"secretQuestion,omitempty"`

	// SecretAnswer is the answer to SecretQuestion.
	SecretAnswer string `json:"secretAnswer,omitempty"`

	// CustomFields holds free-form key/value pairs in user-defined order.
	// Insertion order is preserved and duplicate keys are kept as-is;
	// every entry the user stored comes back on decode.
	CustomFields []CustomField `json:"customFields,omitempty"`
}

// CustomField is one user-defined key/value pair inside [SecretFields].
type CustomField struct {
	// Key is the user-chosen field label. Not required to be unique.
	Key string `json:"key"`

	// Value is the sensitive field content.
	Value string `json:"value"`
}

// IsEmpty reports whether no named field is set and no custom fields exist.
func (f SecretFields) IsEmpty() bool {
	return f.LoginPassword == "" &&
		f.TransactionPassword == "" &&
		f.SMSPassword == "" &&
		f.PIN == "" &&
		f.ATMPin == "" &&
		f.UPIPin == "" &&
		f.MPIN == "" &&
		f.SecretQuestion == "" &&
		f.SecretAnswer == "" &&
		len(f.CustomFields) == 0
}
