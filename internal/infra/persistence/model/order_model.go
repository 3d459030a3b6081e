package model

import (
	"time"

	"fogon/internal/domain/entity"
)

// OrderModel is the `orders` collection document shape.
type OrderModel struct {
	UserID         string           `firestore:"userId"`
	UserName       string           `firestore:"userName"`
	Items          []OrderItemModel `firestore:"items"`
	Subtotal       float64          `firestore:"subtotal"`
	ServiceFee     float64          `firestore:"serviceFee"`
	Commission     float64          `firestore:"commission"`
	Total          float64          `firestore:"total"`
	Type           string           `firestore:"type"`
	Detail         string           `firestore:"detail"`
	PaymentMethod  string           `firestore:"paymentMethod"`
	Status         string           `firestore:"status"`
	ProofOfPayment string           `firestore:"proofOfPayment,omitempty"`
	TransferTo     string           `firestore:"transferTo,omitempty"`
	CreatedAt      any              `firestore:"createdAt"`
	UpdatedAt      any              `firestore:"updatedAt,omitempty"`
}

// OrderItemModel is one line inside an order document.
type OrderItemModel struct {
	ProductID     string  `firestore:"productId"`
	Name          string  `firestore:"name"`
	Category      string  `firestore:"category"`
	Price         float64 `firestore:"price"`
	Quantity      int     `firestore:"quantity"`
	Customization string  `firestore:"customization,omitempty"`
}

// ToEntity converts the document into the domain order.
func (m *OrderModel) ToEntity(id string) *entity.Order {
	items := make([]entity.OrderItem, 0, len(m.Items))
	for _, item := range m.Items {
		items = append(items, entity.OrderItem{
			ProductID:     item.ProductID,
			Name:          item.Name,
			Category:      item.Category,
			Price:         item.Price,
			Quantity:      item.Quantity,
			Customization: item.Customization,
		})
	}

	return &entity.Order{
		ID:             id,
		UserID:         m.UserID,
		UserName:       m.UserName,
		Items:          items,
		Subtotal:       m.Subtotal,
		ServiceFee:     m.ServiceFee,
		Commission:     m.Commission,
		Total:          m.Total,
		Type:           entity.FulfillmentType(m.Type),
		Detail:         m.Detail,
		PaymentMethod:  entity.PaymentMethod(m.PaymentMethod),
		Status:         entity.OrderStatus(m.Status),
		ProofOfPayment: m.ProofOfPayment,
		TransferTo:     m.TransferTo,
		CreatedAt:      NormalizeTime(m.CreatedAt),
		UpdatedAt:      NormalizeTime(m.UpdatedAt),
	}
}

// OrderFromEntity converts a domain order into its document shape.
func OrderFromEntity(order *entity.Order) *OrderModel {
	items := make([]OrderItemModel, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemModel{
			ProductID:     item.ProductID,
			Name:          item.Name,
			Category:      item.Category,
			Price:         item.Price,
			Quantity:      item.Quantity,
			Customization: item.Customization,
		})
	}

	createdAt := order.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	return &OrderModel{
		UserID:         order.UserID,
		UserName:       order.UserName,
		Items:          items,
		Subtotal:       order.Subtotal,
		ServiceFee:     order.ServiceFee,
		Commission:     order.Commission,
		Total:          order.Total,
		Type:           string(order.Type),
		Detail:         order.Detail,
		PaymentMethod:  string(order.PaymentMethod),
		Status:         string(order.Status),
		ProofOfPayment: order.ProofOfPayment,
		TransferTo:     order.TransferTo,
		CreatedAt:      createdAt,
		UpdatedAt:      time.Now(),
	}
}
