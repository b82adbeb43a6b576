package models

type ErrorResponse struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type HealthResponse struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Checks  map[string]string `json:"checks,omitempty"`
}
