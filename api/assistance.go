package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junianwoo/fyd-sub001/store"
)

// assistedAccessApply is the API to apply for the assisted-access plan
func (s *Server) assistedAccessApply(c *gin.Context) {
	accountNumber := c.GetString("requester")

	var params struct {
		Reason string `json:"reason"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	application, err := s.store.CreateAssistedAccessApplication(accountNumber, params.Reason)
	if err == store.ErrApplicationExists {
		abortWithEncoding(c, http.StatusForbidden, errorApplicationExists)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"application": application})
}

// assistedAccessDetail is the API to query the requester's own application
func (s *Server) assistedAccessDetail(c *gin.Context) {
	accountNumber := c.GetString("requester")

	application, err := s.store.GetAssistedAccessApplication(accountNumber)
	if err == store.ErrApplicationNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorApplicationNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"application": application})
}
