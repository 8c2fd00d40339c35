package types

// DecryptedMessage is what MessageService.Open returns.
type DecryptedMessage struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Plaintext []byte `json:"plaintext"`
}
