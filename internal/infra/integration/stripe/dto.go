package stripe

// PaymentLinkInput é o DTO limpo que o usecase enxerga; a conversão pro
// formato form-encoded do Stripe fica toda no client.
type PaymentLinkInput struct {
	AmountCents int
	Currency    string
	ProductName string
	RedirectURL string
	Metadata    map[string]string
}

type priceResponse struct {
	ID    string    `json:"id"`
	Error *apiError `json:"error,omitempty"`
}

type paymentLinkResponse struct {
	ID    string    `json:"id"`
	URL   string    `json:"url"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
