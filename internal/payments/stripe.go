// Package payments envuelve al SDK de Stripe: creacion del payment
// intent de desbloqueo premium y verificacion de webhooks.
package payments

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"github.com/stripe/stripe-go/v82/webhook"
)

// Event es un evento de webhook ya verificado. DataRaw trae el JSON del
// data.object para que cada handler desarme solo lo que necesita.
type Event struct {
	ID      string
	Type    string
	DataRaw json.RawMessage
}

// CheckoutParams son los datos para crear el intent de desbloqueo.
type CheckoutParams struct {
	AmountCents int64
	Currency    string
	Email       string
	SessionID   string
	MBTIType    string
}

// Client abstrae los llamados a Stripe; los tests inyectan un stub.
type Client interface {
	CreateUnlockIntent(ctx context.Context, p CheckoutParams) (clientSecret string, err error)
	VerifyWebhook(payload []byte, sigHeader, secret string) (Event, error)
}

type stripeClient struct {
	secretKey string
}

func NewClient(secretKey string) Client {
	return &stripeClient{secretKey: secretKey}
}

func (c *stripeClient) CreateUnlockIntent(ctx context.Context, p CheckoutParams) (string, error) {
	stripe.Key = c.secretKey

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(p.AmountCents),
		Currency: stripe.String(p.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		// el webhook usa esta metadata para saber que desbloquear
		Metadata: map[string]string{
			"session_id": p.SessionID,
			"mbti_type":  p.MBTIType,
		},
	}
	if p.Email != "" {
		params.ReceiptEmail = stripe.String(p.Email)
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe: create unlock intent: %w", err)
	}
	return pi.ClientSecret, nil
}

func (c *stripeClient) VerifyWebhook(payload []byte, sigHeader, secret string) (Event, error) {
	event, err := webhook.ConstructEvent(payload, sigHeader, secret)
	if err != nil {
		return Event{}, fmt.Errorf("stripe: verify webhook: %w", err)
	}
	return Event{
		ID:      event.ID,
		Type:    string(event.Type),
		DataRaw: event.Data.Raw,
	}, nil
}

// ExtractUnlockMetadata saca (session_id, mbti_type) de la metadata de un
// payment_intent.* event.
func ExtractUnlockMetadata(event Event) (sessionID, mbtiType string, err error) {
	var obj struct {
		Metadata map[string]string `json:"metadata"`
	}
	if err := json.Unmarshal(event.DataRaw, &obj); err != nil {
		return "", "", fmt.Errorf("stripe: unmarshal payment intent: %w", err)
	}
	sessionID = obj.Metadata["session_id"]
	mbtiType = obj.Metadata["mbti_type"]
	if sessionID == "" || mbtiType == "" {
		return "", "", fmt.Errorf("stripe: event %s has no unlock metadata", event.ID)
	}
	return sessionID, mbtiType, nil
}
