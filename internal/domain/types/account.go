package types

import "time"

// Account is the local index entry for one account.
type Account struct {
	Label     AccountLabel `json:"label"`
	Address   string       `json:"address"`
	PublicKey string       `json:"public_key"`
	Index     int          `json:"index"`
	Source    KeySource    `json:"source"`
	Keystore  string       `json:"keystore"`
	CreatedAt time.Time    `json:"created_at"`
}
