package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/example/minimart/pkg/i18n"
)

// envelope is the uniform response wrapper. The semantic status lives in
// StatusCode; the transport status is always 200.
type envelope struct {
	StatusCode int         `json:"status_code"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
}

func (s *Server) respond(c *gin.Context, statusCode int, data interface{}, messageKey string) {
	lang := i18n.Lang(c.GetString(langKey))
	c.JSON(http.StatusOK, envelope{
		StatusCode: statusCode,
		Data:       data,
		Message:    i18n.Message(messageKey, lang),
	})
}

// pathID parses the named path parameter as a positive integer. Malformed
// ids are rejected with a 400 envelope instead of silently failing lookups.
func (s *Server) pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		s.respond(c, http.StatusBadRequest, nil, "invalid_id")
		return 0, false
	}
	return id, true
}
