package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/junianwoo/fyd-sub001/store"
)

// accountRegister is the API for registering a new account
func (s *Server) accountRegister(c *gin.Context) {
	logger := log.WithField("api", "accountRegister")

	var params struct {
		Email             string `json:"email"`
		PreferredLanguage string `json:"preferred_language"`
	}

	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorInvalidParameters.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	params.Email = strings.TrimSpace(params.Email)
	if params.Email == "" || !strings.Contains(params.Email, "@") {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	a, err := s.store.CreateAccount(params.Email, params.PreferredLanguage)
	if err != nil {
		if err == store.ErrEmailTaken {
			abortWithEncoding(c, http.StatusForbidden, errorEmailTaken)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	// the auth token is shown exactly once, at registration
	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"account_number":     a.AccountNumber,
			"auth_token":         a.AuthToken,
			"preferred_language": a.PreferredLanguage,
			"plan":               a.Plan,
		},
	})
}
