package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/minimart/pkg/models"
	"github.com/example/minimart/pkg/store"
)

// categoryDetail embeds the products belonging to the category.
type categoryDetail struct {
	models.Category
	Products []models.Product `json:"products"`
}

func (s *Server) listCategories(c *gin.Context) {
	categories := make([]models.Category, 0)
	s.store.View(func(d *store.Data) {
		categories = append(categories, d.Categories...)
	})
	s.respond(c, http.StatusOK, categories, "categories_retrieved")
}

func (s *Server) getCategory(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}

	var detail categoryDetail
	found := false
	s.store.View(func(d *store.Data) {
		for _, cat := range d.Categories {
			if cat.ID != id {
				continue
			}
			detail = categoryDetail{Category: cat, Products: make([]models.Product, 0)}
			for _, p := range d.Products {
				if p.CategoryID == cat.ID {
					detail.Products = append(detail.Products, p)
				}
			}
			found = true
			return
		}
	})
	if !found {
		s.respond(c, http.StatusNotFound, nil, "category_not_found")
		return
	}

	s.respond(c, http.StatusOK, detail, "category_retrieved")
}

type categoryCreateRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

func (s *Server) createCategory(c *gin.Context) {
	var req categoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		s.respond(c, http.StatusBadRequest, nil, "category_fields_required")
		return
	}

	var category models.Category
	err := s.store.Update(func(d *store.Data) error {
		category = models.Category{
			ID:    store.NextID(d.Categories, func(cat models.Category) int { return cat.ID }),
			Name:  req.Name,
			Image: req.Image,
		}
		d.Categories = append(d.Categories, category)
		return nil
	})
	if err != nil {
		s.respond(c, http.StatusInternalServerError, nil, "server_error")
		return
	}

	s.respond(c, http.StatusCreated, category, "category_created")
}

type categoryUpdateRequest struct {
	Name  *string `json:"name"`
	Image *string `json:"image"`
}

func (s *Server) updateCategory(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}

	var req categoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respond(c, http.StatusBadRequest, nil, "server_error")
		return
	}

	var category models.Category
	err := s.store.Update(func(d *store.Data) error {
		for i := range d.Categories {
			if d.Categories[i].ID != id {
				continue
			}
			if req.Name != nil {
				d.Categories[i].Name = *req.Name
			}
			if req.Image != nil {
				d.Categories[i].Image = *req.Image
			}
			category = d.Categories[i]
			return nil
		}
		return errNotFound
	})
	if err != nil {
		s.respond(c, http.StatusNotFound, nil, "category_not_found")
		return
	}

	s.respond(c, http.StatusOK, category, "category_updated")
}

func (s *Server) deleteCategory(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}

	err := s.store.Update(func(d *store.Data) error {
		for i := range d.Categories {
			if d.Categories[i].ID == id {
				d.Categories = append(d.Categories[:i], d.Categories[i+1:]...)
				return nil
			}
		}
		return errNotFound
	})
	if err != nil {
		s.respond(c, http.StatusNotFound, nil, "category_not_found")
		return
	}

	s.respond(c, http.StatusOK, nil, "category_deleted")
}
