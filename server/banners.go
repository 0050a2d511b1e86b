package server

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/example/minimart/pkg/models"
	"github.com/example/minimart/pkg/store"
)

func (s *Server) listBanners(c *gin.Context) {
	position := c.Query("position")
	active := c.Query("active")

	banners := make([]models.Banner, 0)
	s.store.View(func(d *store.Data) {
		for _, b := range d.Banners {
			if position != "" && b.Position != position {
				continue
			}
			if active != "" && b.IsActive != (active == "true") {
				continue
			}
			banners = append(banners, b)
		}
	})

	sort.SliceStable(banners, func(i, j int) bool {
		return banners[i].Priority < banners[j].Priority
	})

	s.respond(c, http.StatusOK, banners, "banners_retrieved")
}

func (s *Server) getBanner(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}

	var banner models.Banner
	found := false
	s.store.View(func(d *store.Data) {
		for _, b := range d.Banners {
			if b.ID == id {
				banner = b
				found = true
				return
			}
		}
	})
	if !found {
		s.respond(c, http.StatusNotFound, nil, "banner_not_found")
		return
	}

	s.respond(c, http.StatusOK, banner, "banner_retrieved")
}

type bannerCreateRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Link        string  `json:"link"`
	Position    string  `json:"position"`
	Priority    int     `json:"priority"`
	IsActive    *bool   `json:"isActive"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate"`
}

func (s *Server) createBanner(c *gin.Context) {
	var req bannerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.Title == "" || req.Description == "" || req.Image == "" || req.Link == "" {
		s.respond(c, http.StatusBadRequest, nil, "banner_fields_required")
		return
	}

	if req.Position == "" {
		req.Position = "hero"
	}
	if req.Priority == 0 {
		req.Priority = 1
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if req.StartDate == "" {
		req.StartDate = now
	}

	var banner models.Banner
	err := s.store.Update(func(d *store.Data) error {
		banner = models.Banner{
			ID:          store.NextID(d.Banners, func(b models.Banner) int { return b.ID }),
			Title:       req.Title,
			Description: req.Description,
			Image:       req.Image,
			Link:        req.Link,
			Position:    req.Position,
			Priority:    req.Priority,
			IsActive:    isActive,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			CreatedAt:   now,
		}
		d.Banners = append(d.Banners, banner)
		return nil
	})
	if err != nil {
		s.respond(c, http.StatusInternalServerError, nil, "server_error")
		return
	}

	s.respond(c, http.StatusCreated, banner, "banner_created")
}

type bannerUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Link        *string `json:"link"`
	Position    *string `json:"position"`
	Priority    *int    `json:"priority"`
	IsActive    *bool   `json:"isActive"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
}

func (s *Server) updateBanner(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}

	var req bannerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respond(c, http.StatusBadRequest, nil, "server_error")
		return
	}

	var banner models.Banner
	err := s.store.Update(func(d *store.Data) error {
		for i := range d.Banners {
			if d.Banners[i].ID != id {
				continue
			}
			b := &d.Banners[i]
			if req.Title != nil {
				b.Title = *req.Title
			}
			if req.Description != nil {
				b.Description = *req.Description
			}
			if req.Image != nil {
				b.Image = *req.Image
			}
			if req.Link != nil {
				b.Link = *req.Link
			}
			if req.Position != nil {
				b.Position = *req.Position
			}
			if req.Priority != nil {
				b.Priority = *req.Priority
			}
			if req.IsActive != nil {
				b.IsActive = *req.IsActive
			}
			if req.StartDate != nil {
				b.StartDate = *req.StartDate
			}
			if req.EndDate != nil {
				b.EndDate = req.EndDate
			}
			banner = *b
			return nil
		}
		return errNotFound
	})
	if err != nil {
		s.respond(c, http.StatusNotFound, nil, "banner_not_found")
		return
	}

	s.respond(c, http.StatusOK, banner, "banner_updated")
}

func (s *Server) deleteBanner(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}

	err := s.store.Update(func(d *store.Data) error {
		for i := range d.Banners {
			if d.Banners[i].ID == id {
				d.Banners = append(d.Banners[:i], d.Banners[i+1:]...)
				return nil
			}
		}
		return errNotFound
	})
	if err != nil {
		s.respond(c, http.StatusNotFound, nil, "banner_not_found")
		return
	}

	s.respond(c, http.StatusOK, nil, "banner_deleted")
}
