// Package payment implements the digital-wallet path against MercadoPago.
// The system never touches card data: it registers a preference for the
// draft order and lets the provider's widget run the payment.
package payment

import (
	"context"

	"fogon/config"
	"fogon/internal/domain/entity"
	"fogon/internal/domain/service"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/pkg/errors"
)

type mercadoPagoGateway struct {
	client     preference.Client
	successURL string
	pendingURL string
	failureURL string
}

// NewMercadoPagoGateway creates the preference client from the configured
// access token and fixed redirect targets.
func NewMercadoPagoGateway(cfg *config.Config) (service.PaymentGateway, error) {
	if cfg.MercadoPago == nil || cfg.MercadoPago.AccessToken == "" {
		return nil, errors.New("mercadopago access token is required")
	}

	mpCfg, err := mpconfig.New(cfg.MercadoPago.AccessToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to configure mercadopago client")
	}

	return &mercadoPagoGateway{
		client:     preference.NewClient(mpCfg),
		successURL: cfg.MercadoPago.SuccessURL,
		pendingURL: cfg.MercadoPago.PendingURL,
		failureURL: cfg.MercadoPago.FailureURL,
	}, nil
}

// CreatePreference registers the order lines plus its service fee and
// commission as preference items. The external reference is the draft
// order id, so the redirect callback can finalize the same document the
// cart has been updating.
func (g *mercadoPagoGateway) CreatePreference(ctx context.Context, order *entity.Order) (*service.WalletPreference, error) {
	items := make([]preference.ItemRequest, 0, len(order.Items)+2)
	for _, item := range order.Items {
		title := item.Name
		if item.Customization != "" {
			title = title + " (" + item.Customization + ")"
		}
		items = append(items, preference.ItemRequest{
			ID:        item.ProductID,
			Title:     title,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
		})
	}
	if order.ServiceFee > 0 {
		items = append(items, preference.ItemRequest{
			ID:        "service-fee",
			Title:     "Servicio",
			Quantity:  1,
			UnitPrice: order.ServiceFee,
		})
	}
	if order.Commission > 0 {
		items = append(items, preference.ItemRequest{
			ID:        "commission",
			Title:     "Comisión",
			Quantity:  1,
			UnitPrice: order.Commission,
		})
	}

	req := preference.Request{
		Items:             items,
		ExternalReference: order.ID,
		BackURLs: &preference.BackURLsRequest{
			Success: g.successURL,
			Pending: g.pendingURL,
			Failure: g.failureURL,
		},
		AutoReturn: "approved",
	}

	resource, err := g.client.Create(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create payment preference")
	}

	return &service.WalletPreference{
		ID:        resource.ID,
		InitPoint: resource.InitPoint,
	}, nil
}
