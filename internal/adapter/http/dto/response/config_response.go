package response

// ConfigResponse is what the config route returns to browsers. Only the public
// key is exposed; an unset key is rendered as null.
type ConfigResponse struct {
	PublicKey *string `json:"publicKey"`
}

func FromPublicKey(publicKey string) ConfigResponse {
	if publicKey == "" {
		return ConfigResponse{}
	}
	return ConfigResponse{PublicKey: &publicKey}
}
