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

	model2 "github.com/contaplus/cxc/api/model"
	"github.com/gin-gonic/gin"
)

func (a Api) CreateCliente(c *gin.Context) {
	var newCliente model2.CreateCliente
	if err := c.ShouldBindJSON(&newCliente); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	if err := newCliente.ValidateCreateCliente(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	resp, err := a.cxc.CreateCliente(c.Request.Context(), newCliente.ToCliente())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (a Api) GetCliente(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	resp, err := a.cxc.GetCliente(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (a Api) GetAllClientes(c *gin.Context) {
	resp, err := a.cxc.GetAllClientes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (a Api) UpdateCliente(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var body model2.CreateCliente
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}
	if err := body.ValidateCreateCliente(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	cliente := body.ToCliente()
	cliente.ID = id
	resp, err := a.cxc.UpdateCliente(c.Request.Context(), cliente)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (a Api) DeleteCliente(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := a.cxc.DeleteCliente(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cliente eliminado exitosamente"})
}

func (a Api) CreateTipoDocumento(c *gin.Context) {
	var newTipo model2.CreateTipoDocumento
	if err := c.ShouldBindJSON(&newTipo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	if err := newTipo.ValidateCreateTipoDocumento(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	resp, err := a.cxc.CreateTipoDocumento(c.Request.Context(), newTipo.ToTipoDocumento())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (a Api) GetTipoDocumento(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	resp, err := a.cxc.GetTipoDocumento(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (a Api) GetAllTiposDocumentos(c *gin.Context) {
	resp, err := a.cxc.GetAllTiposDocumentos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (a Api) UpdateTipoDocumento(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var body model2.CreateTipoDocumento
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}
	if err := body.ValidateCreateTipoDocumento(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	tipo := body.ToTipoDocumento()
	tipo.ID = id
	resp, err := a.cxc.UpdateTipoDocumento(c.Request.Context(), tipo)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (a Api) DeleteTipoDocumento(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := a.cxc.DeleteTipoDocumento(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tipo de documento eliminado exitosamente"})
}

func (a Api) CreateAsientoContable(c *gin.Context) {
	var newAsiento model2.CreateAsientoContable
	if err := c.ShouldBindJSON(&newAsiento); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	if err := newAsiento.ValidateCreateAsientoContable(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	resp, err := a.cxc.CreateAsientoContable(c.Request.Context(), newAsiento.ToAsientoContable())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (a Api) GetAsientoContable(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	resp, err := a.cxc.GetAsientoContable(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (a Api) GetAllAsientosContables(c *gin.Context) {
	resp, err := a.cxc.GetAllAsientosContables(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (a Api) UpdateAsientoContable(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var body model2.CreateAsientoContable
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}
	if err := body.ValidateCreateAsientoContable(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	asiento := body.ToAsientoContable()
	asiento.ID = id
	resp, err := a.cxc.UpdateAsientoContable(c.Request.Context(), asiento)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (a Api) DeleteAsientoContable(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := a.cxc.DeleteAsientoContable(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Asiento contable eliminado exitosamente"})
}

func (a Api) CreateTransaccion(c *gin.Context) {
	var newTransaccion model2.CreateTransaccion
	if err := c.ShouldBindJSON(&newTransaccion); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	if err := newTransaccion.ValidateCreateTransaccion(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	resp, err := a.cxc.CreateTransaccion(c.Request.Context(), newTransaccion.ToTransaccion())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (a Api) GetTransaccion(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	resp, err := a.cxc.GetTransaccion(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetTransacciones lists all lines, or those of ?asientoId= when given.
func (a Api) GetTransacciones(c *gin.Context) {
	asientoID := 0
	if raw := c.Query("asientoId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "asientoId must be an integer"})
			return
		}
		asientoID = id
	}

	resp, err := a.cxc.GetTransacciones(c.Request.Context(), asientoID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (a Api) UpdateTransaccion(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var body model2.CreateTransaccion
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}
	if err := body.ValidateCreateTransaccion(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	txn := body.ToTransaccion()
	txn.ID = id
	resp, err := a.cxc.UpdateTransaccion(c.Request.Context(), txn)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (a Api) DeleteTransaccion(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := a.cxc.DeleteTransaccion(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transacción eliminada exitosamente"})
}
