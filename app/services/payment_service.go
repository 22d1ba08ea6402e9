package services

import (
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"
	"github.com/stripe/stripe-go/v81/webhook"

	"github.com/shashiranjanraj/kashvi-store/app/models"
	"github.com/shashiranjanraj/kashvi-store/config"
	"github.com/shashiranjanraj/kashvi-store/pkg/orm"
)

// PaymentService creates Stripe checkout sessions for card payments.
// When no Stripe key is configured the store falls back to cash-on-delivery
// and this service reports itself disabled.
type PaymentService struct{}

func NewPaymentService() *PaymentService {
	return &PaymentService{}
}

// Enabled reports whether card payments are configured.
func (s *PaymentService) Enabled() bool {
	return config.StripeSecretKey() != ""
}

// CreateCheckoutSession opens a Stripe hosted checkout for the order and
// records the session id on the order row so the webhook can find it later.
// The order must have Items with Gemstone preloaded.
func (s *PaymentService) CreateCheckoutSession(order models.Order) (string, error) {
	stripe.Key = config.StripeSecretKey()

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(order.Items))
	for _, item := range order.Items {
		name := fmt.Sprintf("Item #%d", item.GemstoneID)
		if item.Gemstone != nil {
			name = item.Gemstone.Name
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(int64(item.Quantity)),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(string(stripe.CurrencyUSD)),
				UnitAmount: stripe.Int64(int64(item.Price * 100)), // cents
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(name),
				},
			},
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  lineItems,
		SuccessURL: stripe.String(config.CheckoutSuccessURL()),
		CancelURL:  stripe.String(config.CheckoutCancelURL()),
		Metadata: map[string]string{
			"order_number": order.OrderNumber,
		},
	}

	sess, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("payment: create checkout session: %w", err)
	}

	if err := orm.DB().Model(&models.Order{}).
		Where("id = ?", order.ID).
		Update("stripe_session_id", sess.ID); err != nil {
		return "", fmt.Errorf("payment: store session id: %w", err)
	}

	return sess.URL, nil
}

// VerifyWebhook validates the Stripe webhook signature when a signing secret
// is configured; without one the payload is accepted as-is (dev mode).
func (s *PaymentService) VerifyWebhook(payload []byte, signature string) (stripe.Event, error) {
	secret := config.StripeWebhookSecret()
	if secret != "" {
		event, err := webhook.ConstructEvent(payload, signature, secret)
		if err != nil {
			return stripe.Event{}, fmt.Errorf("payment: verify webhook: %w", err)
		}
		return event, nil
	}

	var event stripe.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return stripe.Event{}, fmt.Errorf("payment: parse webhook: %w", err)
	}
	return event, nil
}
