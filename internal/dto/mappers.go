package dto

import "palantir/internal/domain"

func NewOrderDTO(order *domain.Order) OrderDTO {
	props := order.Props()
	items := make([]OrderItemDTO, len(props.Items))
	for i, item := range order.Items() {
		items[i] = OrderItemDTO{
			ID:        item.ID(),
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			Subtotal:  item.Subtotal(),
		}
	}

	return OrderDTO{
		ID:         props.ID,
		StoreID:    props.StoreID,
		CustomerID: props.CustomerID,
		TotemID:    props.TotemID,
		Status:     string(props.Status),
		TotalPrice: order.TotalPrice(),
		Items:      items,
		CreatedAt:  props.CreatedAt,
		UpdatedAt:  props.UpdatedAt,
	}
}

func NewPaymentDTO(payment *domain.Payment) PaymentDTO {
	props := payment.Props()
	return PaymentDTO{
		ID:          props.ID,
		OrderID:     props.OrderID,
		StoreID:     props.StoreID,
		PaymentType: string(props.PaymentType),
		Status:      string(props.Status),
		Total:       props.Total,
		ExternalID:  props.ExternalID,
		QrCode:      props.QrCode,
		Platform:    props.Platform,
		CreatedAt:   props.CreatedAt,
		UpdatedAt:   props.UpdatedAt,
	}
}

func NewNotificationDTO(notification *domain.Notification) NotificationDTO {
	props := notification.Props()
	return NotificationDTO{
		ID:           props.ID,
		Channel:      string(props.Channel),
		Destination:  props.Destination,
		Message:      props.Message,
		Status:       string(props.Status),
		SentAt:       props.SentAt,
		ErrorMessage: props.ErrorMessage,
		CreatedAt:    props.CreatedAt,
	}
}

func NewCustomerDTO(customer *domain.Customer) CustomerDTO {
	out := CustomerDTO{
		ID:        customer.ID,
		Name:      customer.Name,
		Email:     customer.Email.String(),
		CreatedAt: customer.CreatedAt,
	}
	if customer.CPF != nil {
		cpf := customer.CPF.Formatted()
		out.CPF = &cpf
	}
	if customer.Phone != nil {
		phone := customer.Phone.String()
		out.Phone = &phone
	}
	return out
}

func NewProductDTO(p domain.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		IsActive:    p.IsActive,
	}
}
