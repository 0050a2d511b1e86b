package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/example/minimart/pkg/models"
	"github.com/example/minimart/pkg/store"
)

type orderLine struct {
	models.OrderItem
	Product *models.Product `json:"product"`
}

// orderDetail is an order with its lines joined against the live product
// catalog. The embedded Items are shadowed by the joined ones.
type orderDetail struct {
	models.Order
	Items []orderLine `json:"items"`
}

type placeOrderRequest struct {
	ShippingAddress string `json:"shippingAddress"`
	PaymentMethod   string `json:"paymentMethod"`
}

func (s *Server) placeOrder(c *gin.Context) {
	userID := s.currentUserID(c)

	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ShippingAddress == "" || req.PaymentMethod == "" {
		s.respond(c, http.StatusBadRequest, nil, "shipping_payment_required")
		return
	}

	// The order insert and the cart clear happen inside one Update so both
	// land in the same flush.
	var order models.Order
	err := s.store.Update(func(d *store.Data) error {
		items := make([]models.OrderItem, 0)
		total := 0.0
		for _, row := range d.Cart {
			if row.UserID != userID {
				continue
			}
			price := 0.0
			for _, p := range d.Products {
				if p.ID == row.ProductID {
					price = p.Price
					break
				}
			}
			items = append(items, models.OrderItem{
				ProductID: row.ProductID,
				Quantity:  row.Quantity,
				Price:     price,
			})
			total += price * float64(row.Quantity)
		}
		if len(items) == 0 {
			return errEmptyCart
		}

		order = models.Order{
			ID:              store.NextID(d.Orders, func(o models.Order) int { return o.ID }),
			UserID:          userID,
			Items:           items,
			Total:           round2(total),
			Status:          "processing",
			ShippingAddress: req.ShippingAddress,
			PaymentMethod:   req.PaymentMethod,
			CreatedAt:       time.Now().UTC().Format(time.RFC3339),
		}
		d.Orders = append(d.Orders, order)

		remaining := d.Cart[:0]
		for _, row := range d.Cart {
			if row.UserID != userID {
				remaining = append(remaining, row)
			}
		}
		d.Cart = remaining
		return nil
	})
	if err != nil {
		s.respond(c, http.StatusBadRequest, nil, "cart_is_empty")
		return
	}

	s.respond(c, http.StatusCreated, order, "order_placed")
}

func joinOrder(d *store.Data, order models.Order) orderDetail {
	detail := orderDetail{Order: order, Items: make([]orderLine, 0, len(order.Items))}
	for _, item := range order.Items {
		line := orderLine{OrderItem: item}
		for _, p := range d.Products {
			if p.ID == item.ProductID {
				product := p
				line.Product = &product
				break
			}
		}
		detail.Items = append(detail.Items, line)
	}
	return detail
}

func (s *Server) getOrder(c *gin.Context) {
	userID := s.currentUserID(c)

	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}

	var detail orderDetail
	found := false
	owned := false
	s.store.View(func(d *store.Data) {
		for _, o := range d.Orders {
			if o.ID != id {
				continue
			}
			found = true
			if o.UserID != userID {
				return
			}
			owned = true
			detail = joinOrder(d, o)
			return
		}
	})
	if !found {
		s.respond(c, http.StatusNotFound, nil, "order_not_found")
		return
	}
	if !owned {
		s.respond(c, http.StatusForbidden, nil, "access_denied")
		return
	}

	s.respond(c, http.StatusOK, detail, "order_retrieved")
}

func (s *Server) listUserOrders(c *gin.Context) {
	callerID := s.currentUserID(c)

	userID, ok := s.pathID(c, "userId")
	if !ok {
		return
	}
	if userID != callerID {
		s.respond(c, http.StatusForbidden, nil, "access_denied")
		return
	}

	details := make([]orderDetail, 0)
	s.store.View(func(d *store.Data) {
		for _, o := range d.Orders {
			if o.UserID == userID {
				details = append(details, joinOrder(d, o))
			}
		}
	})

	s.respond(c, http.StatusOK, details, "orders_retrieved")
}
