/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package api

import (
	"errors"
	"net/http"

	"github.com/contaplus/cxc/internal/apierror"
	"github.com/contaplus/cxc/model"
	"github.com/gin-gonic/gin"
)

// entradasError keeps the generic bodies callers of /cxc/entradas rely on
// while passing the upstream status through.
func entradasError(c *gin.Context, err error, upstreamMessage string) {
	_ = c.Error(err)

	var timeoutErr *apierror.TimeoutError
	var externalErr *apierror.ExternalServiceError
	var validationErr *apierror.ValidationError
	switch {
	case errors.As(err, &timeoutErr):
		c.JSON(http.StatusRequestTimeout, gin.H{"error": "Request timeout"})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.As(err, &externalErr):
		c.JSON(externalErr.Status, gin.H{"error": upstreamMessage})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func (a Api) ListEntradas(c *gin.Context) {
	items, err := a.cxc.ListEntradas(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		entradasError(c, err, "Failed to fetch entries from external API")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (a Api) CreateEntrada(c *gin.Context) {
	var fila model.FilaCxC
	if err := c.ShouldBindJSON(&fila); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := a.cxc.CreateEntrada(c.Request.Context(), fila)
	if err != nil {
		entradasError(c, err, "Failed to create entry in external API")
		return
	}
	c.JSON(http.StatusOK, created)
}
