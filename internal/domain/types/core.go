package types

// AccountLabel is the local, human-chosen name of an account.
type AccountLabel string

// String returns the string form of the label.
func (l AccountLabel) String() string { return string(l) }

// KeySource records where an account's secret key comes from.
type KeySource string

const (
	// SourceMnemonic marks keys derived from a stored mnemonic.
	SourceMnemonic KeySource = "mnemonic"
	// SourceKeystore marks keys held in a secret-key keystore file.
	SourceKeystore KeySource = "keystore"
	// SourcePEM marks keys imported from a PEM file.
	SourcePEM KeySource = "pem"
)
