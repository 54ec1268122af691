package handler

import (
	"errors"
	"net/http"

	"github.com/devsapp/serverless-aml-controller/pkg/config"
	"github.com/devsapp/serverless-aml-controller/pkg/controller"
	"github.com/devsapp/serverless-aml-controller/pkg/datastore"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"
)

const (
	requestOk        = http.StatusOK
	asyncSuccessCode = http.StatusAccepted
	jsonContentType  = "application/json"
)

func getBindResult(c *gin.Context, in interface{}) error {
	if err := binding.JSON.Bind(c.Request, in); err != nil {
		return err
	}
	return nil
}

func handleError(c *gin.Context, code int, err string) {
	c.JSON(code, gin.H{"message": err})
}

// handleFailure map a controller or catalog error to its status code
func handleFailure(c *gin.Context, err error) {
	switch {
	case errors.Is(err, datastore.ErrNotFound):
		handleError(c, http.StatusNotFound, err.Error())
	case controller.IsRemoteCallFailure(err):
		handleError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, controller.ErrInvalidFilterValue),
		errors.Is(err, controller.ErrMissingModelId),
		errors.Is(err, controller.ErrMissingEndpoint):
		handleError(c, http.StatusBadRequest, err.Error())
	default:
		logrus.WithFields(logrus.Fields{
			"path": c.FullPath(),
		}).Errorf("request fail: %s", err.Error())
		handleError(c, http.StatusInternalServerError, config.INTERNALERROR)
	}
}
