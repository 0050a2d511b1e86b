package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/minimart/pkg/auth"
	"github.com/example/minimart/pkg/models"
	"github.com/example/minimart/pkg/store"
)

const defaultAvatar = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=400&h=400&fit=crop&crop=face"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Image    string `json:"image"`
}

type authResponse struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		s.respond(c, http.StatusBadRequest, nil, "email_password_required")
		return
	}

	var user models.User
	found := false
	s.store.View(func(d *store.Data) {
		for _, u := range d.Users {
			if u.Email == req.Email {
				user = u
				found = true
				return
			}
		}
	})
	if !found {
		s.respond(c, http.StatusUnauthorized, nil, "invalid_credentials")
		return
	}

	demo := s.config.Auth.DemoPassword
	if !(demo != "" && req.Password == demo) && !auth.CheckPassword(user.Password, req.Password) {
		s.respond(c, http.StatusUnauthorized, nil, "invalid_credentials")
		return
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		s.logger.Error("issue token failed", zap.Error(err))
		s.respond(c, http.StatusInternalServerError, nil, "server_error")
		return
	}

	s.respond(c, http.StatusOK, authResponse{Token: token, User: user.Public()}, "login_success")
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Email == "" || req.Password == "" {
		s.respond(c, http.StatusBadRequest, nil, "name_email_password_required")
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("hash password failed", zap.Error(err))
		s.respond(c, http.StatusInternalServerError, nil, "server_error")
		return
	}

	image := req.Image
	if image == "" {
		image = defaultAvatar
	}

	var user models.User
	err = s.store.Update(func(d *store.Data) error {
		for _, u := range d.Users {
			if u.Email == req.Email {
				return errAlreadyExists
			}
		}
		user = models.User{
			ID:       store.NextID(d.Users, func(u models.User) int { return u.ID }),
			Name:     req.Name,
			Email:    req.Email,
			Password: hashed,
			Phone:    req.Phone,
			Image:    image,
			Role:     "customer",
		}
		d.Users = append(d.Users, user)
		return nil
	})
	if err != nil {
		s.respond(c, http.StatusConflict, nil, "user_already_exists")
		return
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		s.logger.Error("issue token failed", zap.Error(err))
		s.respond(c, http.StatusInternalServerError, nil, "server_error")
		return
	}

	s.respond(c, http.StatusCreated, authResponse{Token: token, User: user.Public()}, "registration_success")
}

type profileUpdateRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Image *string `json:"image"`
}

func (s *Server) getProfile(c *gin.Context) {
	userID := s.currentUserID(c)

	var user models.User
	found := false
	s.store.View(func(d *store.Data) {
		for _, u := range d.Users {
			if u.ID == userID {
				user = u
				found = true
				return
			}
		}
	})
	if !found {
		s.respond(c, http.StatusNotFound, nil, "user_not_found")
		return
	}

	s.respond(c, http.StatusOK, user.Public(), "profile_retrieved")
}

func (s *Server) updateProfile(c *gin.Context) {
	userID := s.currentUserID(c)

	var req profileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respond(c, http.StatusBadRequest, nil, "server_error")
		return
	}

	var user models.User
	err := s.store.Update(func(d *store.Data) error {
		for i := range d.Users {
			if d.Users[i].ID != userID {
				continue
			}
			if req.Name != nil {
				d.Users[i].Name = *req.Name
			}
			if req.Phone != nil {
				d.Users[i].Phone = *req.Phone
			}
			if req.Image != nil {
				d.Users[i].Image = *req.Image
			}
			user = d.Users[i]
			return nil
		}
		return errNotFound
	})
	if err != nil {
		s.respond(c, http.StatusNotFound, nil, "user_not_found")
		return
	}

	s.respond(c, http.StatusOK, user.Public(), "profile_updated")
}
