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
	"net/http"
	"strconv"

	"github.com/contaplus/cxc"
	"github.com/contaplus/cxc/api/middleware"
	"github.com/contaplus/cxc/config"
	"github.com/contaplus/cxc/internal/apierror"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type Api struct {
	cxc    *cxc.Cxc
	router *gin.Engine
}

func (a Api) Router() *gin.Engine {
	router := a.router

	router.GET("/asiento-cxc", a.GetReconciliation)
	router.POST("/asiento-cxc/contabilizar", a.Contabilizar)
	router.GET("/asiento-cxc/estado", a.GetWorkflowState)

	router.GET("/cxc/entradas", a.ListEntradas)
	router.POST("/cxc/entradas", a.CreateEntrada)

	router.POST("/clientes", a.CreateCliente)
	router.GET("/clientes", a.GetAllClientes)
	router.GET("/clientes/:id", a.GetCliente)
	router.PUT("/clientes/:id", a.UpdateCliente)
	router.DELETE("/clientes/:id", a.DeleteCliente)

	router.POST("/tipos-documentos", a.CreateTipoDocumento)
	router.GET("/tipos-documentos", a.GetAllTiposDocumentos)
	router.GET("/tipos-documentos/:id", a.GetTipoDocumento)
	router.PUT("/tipos-documentos/:id", a.UpdateTipoDocumento)
	router.DELETE("/tipos-documentos/:id", a.DeleteTipoDocumento)

	router.POST("/asientos-contables", a.CreateAsientoContable)
	router.GET("/asientos-contables", a.GetAllAsientosContables)
	router.GET("/asientos-contables/:id", a.GetAsientoContable)
	router.PUT("/asientos-contables/:id", a.UpdateAsientoContable)
	router.DELETE("/asientos-contables/:id", a.DeleteAsientoContable)

	router.POST("/transacciones", a.CreateTransaccion)
	router.GET("/transacciones", a.GetTransacciones)
	router.GET("/transacciones/:id", a.GetTransaccion)
	router.PUT("/transacciones/:id", a.UpdateTransaccion)
	router.DELETE("/transacciones/:id", a.DeleteTransaccion)

	return a.router
}

func NewAPI(c *cxc.Cxc) *Api {
	gin.SetMode(gin.ReleaseMode)
	conf, err := config.Fetch()
	if err != nil {
		return nil
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.RateLimitMiddleware(conf))
	if conf.EnableTelemetry {
		r.Use(otelgin.Middleware(conf.ProjectName))
	}

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, "server running...")
	})

	return &Api{cxc: c, router: r}
}

// respondError maps err onto its HTTP status and the usual error body.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"error": err.Error()})
}

func idParam(c *gin.Context) (int, bool) {
	raw, passed := c.Params.Get("id")
	if !passed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required. pass id in the route /:id"})
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
		return 0, false
	}
	return id, true
}
