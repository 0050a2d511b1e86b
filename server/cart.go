package server

import (
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/example/minimart/pkg/models"
	"github.com/example/minimart/pkg/store"
)

// cartLine joins a cart row with its product. Product is null when the
// product was deleted after the row was added.
type cartLine struct {
	models.CartItem
	Product *models.Product `json:"product"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (s *Server) getCart(c *gin.Context) {
	userID := s.currentUserID(c)

	items := make([]cartLine, 0)
	total := 0.0
	s.store.View(func(d *store.Data) {
		for _, item := range d.Cart {
			if item.UserID != userID {
				continue
			}
			line := cartLine{CartItem: item}
			for _, p := range d.Products {
				if p.ID == item.ProductID {
					product := p
					line.Product = &product
					total += p.Price * float64(item.Quantity)
					break
				}
			}
			items = append(items, line)
		}
	})

	s.respond(c, http.StatusOK, gin.H{
		"items": items,
		"total": round2(total),
	}, "cart_retrieved")
}

type addToCartRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

func (s *Server) addToCart(c *gin.Context) {
	userID := s.currentUserID(c)

	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID < 1 {
		s.respond(c, http.StatusBadRequest, nil, "product_id_required")
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	err := s.store.Update(func(d *store.Data) error {
		found := false
		for _, p := range d.Products {
			if p.ID == req.ProductID {
				found = true
				break
			}
		}
		if !found {
			return errNotFound
		}

		// Merge with an existing row for the same product.
		for i := range d.Cart {
			if d.Cart[i].UserID == userID && d.Cart[i].ProductID == req.ProductID {
				d.Cart[i].Quantity += req.Quantity
				return nil
			}
		}

		d.Cart = append(d.Cart, models.CartItem{
			ID:        store.NextID(d.Cart, func(ci models.CartItem) int { return ci.ID }),
			UserID:    userID,
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
			AddedAt:   time.Now().UTC().Format(time.RFC3339),
		})
		return nil
	})
	if err != nil {
		s.respond(c, http.StatusNotFound, nil, "product_not_found")
		return
	}

	s.respond(c, http.StatusCreated, nil, "item_added_to_cart")
}

type cartUpdateRequest struct {
	Quantity int `json:"quantity"`
}

func (s *Server) updateCartItem(c *gin.Context) {
	userID := s.currentUserID(c)

	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}

	var req cartUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity < 1 {
		s.respond(c, http.StatusBadRequest, nil, "valid_quantity_required")
		return
	}

	err := s.store.Update(func(d *store.Data) error {
		for i := range d.Cart {
			if d.Cart[i].ID == id && d.Cart[i].UserID == userID {
				d.Cart[i].Quantity = req.Quantity
				return nil
			}
		}
		return errNotFound
	})
	if err != nil {
		s.respond(c, http.StatusNotFound, nil, "cart_item_not_found")
		return
	}

	s.respond(c, http.StatusOK, nil, "cart_item_updated")
}

func (s *Server) removeCartItem(c *gin.Context) {
	userID := s.currentUserID(c)

	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}

	err := s.store.Update(func(d *store.Data) error {
		for i := range d.Cart {
			if d.Cart[i].ID == id && d.Cart[i].UserID == userID {
				d.Cart = append(d.Cart[:i], d.Cart[i+1:]...)
				return nil
			}
		}
		return errNotFound
	})
	if err != nil {
		s.respond(c, http.StatusNotFound, nil, "cart_item_not_found")
		return
	}

	s.respond(c, http.StatusOK, nil, "item_removed_from_cart")
}
