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

	"github.com/contaplus/cxc"
	model2 "github.com/contaplus/cxc/api/model"
	redlock "github.com/contaplus/cxc/internal/lock"
	"github.com/contaplus/cxc/model"
	"github.com/gin-gonic/gin"
)

// ReconciliationPage is one page of the reconciled view plus its totals.
type ReconciliationPage struct {
	RunID        string                  `json:"run_id"`
	DateFrom     string                  `json:"fecha_desde"`
	DateTo       string                  `json:"fecha_hasta"`
	Rows         []model.ConsolidatedRow `json:"rows"`
	Page         int                     `json:"page"`
	PerPage      int                     `json:"per_page"`
	TotalPages   int                     `json:"total_pages"`
	TotalRows    int                     `json:"total_rows"`
	TotalAmount  float64                 `json:"total_amount"`
	PostedCount  int                     `json:"posted_count"`
	PendingCount int                     `json:"pending_count"`
}

func newReconciliationPage(view model.ReconciledView, page, perPage int) ReconciliationPage {
	if page < 1 {
		page = 1
	}
	return ReconciliationPage{
		RunID:        view.RunID,
		DateFrom:     view.DateFrom,
		DateTo:       view.DateTo,
		Rows:         view.Page(page, perPage),
		Page:         page,
		PerPage:      perPage,
		TotalPages:   view.TotalPages(perPage),
		TotalRows:    len(view.Rows),
		TotalAmount:  view.TotalAmount,
		PostedCount:  view.PostedCount,
		PendingCount: view.PendingCount,
	}
}

func workflowStatus(err error) int {
	switch {
	case errors.Is(err, cxc.ErrBusy), errors.Is(err, redlock.ErrLockHeld):
		return http.StatusConflict
	case errors.Is(err, cxc.ErrNothingToPost):
		return http.StatusBadRequest
	}
	return 0
}

// GetReconciliation runs a reconciliation pass for ?desde=&hasta= and returns
// the requested page. ?refresh=true bypasses cached source records.
func (a Api) GetReconciliation(c *gin.Context) {
	var query model2.ReconciliationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}
	if err := query.ValidateReconciliationQuery(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	perPage := query.PerPage
	if perPage == 0 {
		perPage = a.cxc.Config().Reconciliation.PageSize
	}

	if query.Refresh {
		a.cxc.RefreshSource(c.Request.Context())
	}

	view, err := a.cxc.Load(c.Request.Context(), query.Desde, query.Hasta)
	if err != nil {
		if status := workflowStatus(err); status != 0 {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newReconciliationPage(view, query.Page, perPage))
}

// Contabilizar posts the pending rows of the last loaded view and returns the
// summary together with the first page of the reloaded view.
func (a Api) Contabilizar(c *gin.Context) {
	summary, view, err := a.cxc.Contabilizar(c.Request.Context())
	if err != nil {
		if status := workflowStatus(err); status != 0 {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		if summary.BatchID == "" {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"summary": summary, "reload_error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary": summary,
		"view":    newReconciliationPage(view, 1, a.cxc.Config().Reconciliation.PageSize),
	})
}

func (a Api) GetWorkflowState(c *gin.Context) {
	state := a.cxc.Workflow().State()
	state.View = nil
	c.JSON(http.StatusOK, state)
}
