package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/example/minimart/pkg/models"
	"github.com/example/minimart/pkg/store"
)

const defaultProductImage = "https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=400&h=400&fit=crop"

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

func (s *Server) listProducts(c *gin.Context) {
	var categoryID int
	if raw := c.Query("category"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 1 {
			s.respond(c, http.StatusBadRequest, nil, "invalid_id")
			return
		}
		categoryID = id
	}
	search := strings.ToLower(c.Query("search"))

	page := 1
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		page = v
	}
	limit := 10
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}

	matched := make([]models.Product, 0)
	s.store.View(func(d *store.Data) {
		for _, p := range d.Products {
			if categoryID != 0 && p.CategoryID != categoryID {
				continue
			}
			if search != "" &&
				!strings.Contains(strings.ToLower(p.Name), search) &&
				!strings.Contains(strings.ToLower(p.Description), search) {
				continue
			}
			matched = append(matched, p)
		}
	})

	total := len(matched)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	s.respond(c, http.StatusOK, gin.H{
		"products": matched[start:end],
		"pagination": pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: (total + limit - 1) / limit,
		},
	}, "products_retrieved")
}

func (s *Server) getProduct(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}

	var product models.Product
	found := false
	s.store.View(func(d *store.Data) {
		for _, p := range d.Products {
			if p.ID == id {
				product = p
				found = true
				return
			}
		}
	})
	if !found {
		s.respond(c, http.StatusNotFound, nil, "product_not_found")
		return
	}

	s.respond(c, http.StatusOK, product, "product_retrieved")
}

type productCreateRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CategoryID  int     `json:"categoryId"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock"`
	Brand       string  `json:"brand"`
}

func (s *Server) createProduct(c *gin.Context) {
	var req productCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.Name == "" || req.Description == "" || req.Price <= 0 || req.CategoryID < 1 {
		s.respond(c, http.StatusBadRequest, nil, "product_fields_required")
		return
	}

	if req.Image == "" {
		req.Image = defaultProductImage
	}
	if req.Brand == "" {
		req.Brand = "Generic"
	}

	var product models.Product
	err := s.store.Update(func(d *store.Data) error {
		product = models.Product{
			ID:          store.NextID(d.Products, func(p models.Product) int { return p.ID }),
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			CategoryID:  req.CategoryID,
			Image:       req.Image,
			Stock:       req.Stock,
			Rating:      0,
			Reviews:     0,
			Brand:       req.Brand,
			CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		}
		d.Products = append(d.Products, product)
		return nil
	})
	if err != nil {
		s.respond(c, http.StatusInternalServerError, nil, "server_error")
		return
	}

	s.respond(c, http.StatusCreated, product, "product_created")
}

// productUpdateRequest is the allow-list of mutable product fields. The id
// is never client-writable.
type productUpdateRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	CategoryID  *int     `json:"categoryId"`
	Image       *string  `json:"image"`
	Stock       *int     `json:"stock"`
	Rating      *float64 `json:"rating"`
	Reviews     *int     `json:"reviews"`
	Brand       *string  `json:"brand"`
}

func (s *Server) updateProduct(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}

	var req productUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respond(c, http.StatusBadRequest, nil, "server_error")
		return
	}

	var product models.Product
	err := s.store.Update(func(d *store.Data) error {
		for i := range d.Products {
			if d.Products[i].ID != id {
				continue
			}
			p := &d.Products[i]
			if req.Name != nil {
				p.Name = *req.Name
			}
			if req.Description != nil {
				p.Description = *req.Description
			}
			if req.Price != nil {
				p.Price = *req.Price
			}
			if req.CategoryID != nil {
				p.CategoryID = *req.CategoryID
			}
			if req.Image != nil {
				p.Image = *req.Image
			}
			if req.Stock != nil {
				p.Stock = *req.Stock
			}
			if req.Rating != nil {
				p.Rating = *req.Rating
			}
			if req.Reviews != nil {
				p.Reviews = *req.Reviews
			}
			if req.Brand != nil {
				p.Brand = *req.Brand
			}
			product = *p
			return nil
		}
		return errNotFound
	})
	if err != nil {
		s.respond(c, http.StatusNotFound, nil, "product_not_found")
		return
	}

	s.respond(c, http.StatusOK, product, "product_updated")
}

func (s *Server) deleteProduct(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}

	err := s.store.Update(func(d *store.Data) error {
		for i := range d.Products {
			if d.Products[i].ID == id {
				d.Products = append(d.Products[:i], d.Products[i+1:]...)
				return nil
			}
		}
		return errNotFound
	})
	if err != nil {
		s.respond(c, http.StatusNotFound, nil, "product_not_found")
		return
	}

	s.respond(c, http.StatusOK, nil, "product_deleted")
}
