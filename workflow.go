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
package cxc

import (
	"errors"
	"sync"

	"github.com/contaplus/cxc/model"
)

var (
	ErrBusy          = errors.New("a load or posting cycle is already running")
	ErrNothingToPost = errors.New("no pending rows to post")
)

// Phase is the step of the load and post cycle the workflow is in.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseReady   Phase = "ready"
	PhasePosting Phase = "posting"
)

// WorkflowState is a snapshot of the workflow.
type WorkflowState struct {
	Phase       Phase                 `json:"phase"`
	Pending     int                   `json:"pending"`
	DateFrom    string                `json:"fecha_desde,omitempty"`
	DateTo      string                `json:"fecha_hasta,omitempty"`
	View        *model.ReconciledView `json:"view,omitempty"`
	LastSummary *model.PostSummary    `json:"last_summary,omitempty"`
	LastError   string                `json:"last_error,omitempty"`
}

// Workflow guards the load and post cycle. Posting is only entered from
// Ready with pending rows, and nothing starts while a load or post runs.
type Workflow struct {
	mu          sync.Mutex
	phase       Phase
	view        *model.ReconciledView
	dateFrom    string
	dateTo      string
	lastSummary *model.PostSummary
	lastErr     error
}

// NewWorkflow returns a workflow in PhaseIdle with no view loaded.
func NewWorkflow() *Workflow {
	return &Workflow{phase: PhaseIdle}
}

// State returns a snapshot that stays valid after later transitions.
func (w *Workflow) State() WorkflowState {
	w.mu.Lock()
	defer w.mu.Unlock()

	state := WorkflowState{
		Phase:       w.phase,
		DateFrom:    w.dateFrom,
		DateTo:      w.dateTo,
		LastSummary: w.lastSummary,
	}
	if w.view != nil {
		view := *w.view
		state.View = &view
		state.Pending = view.PendingCount
	}
	if w.lastErr != nil {
		state.LastError = w.lastErr.Error()
	}
	return state
}

func (w *Workflow) busy() bool {
	return w.phase == PhaseLoading || w.phase == PhasePosting
}

func (w *Workflow) beginLoad(dateFrom, dateTo string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.busy() {
		return ErrBusy
	}
	w.phase = PhaseLoading
	w.dateFrom = dateFrom
	w.dateTo = dateTo
	return nil
}

// finishLoad replaces the view. A failed load leaves the workflow Idle with
// no view, since the previous data set is no longer current.
func (w *Workflow) finishLoad(view model.ReconciledView, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lastErr = err
	if err != nil {
		w.phase = PhaseIdle
		w.view = nil
		return
	}
	w.phase = PhaseReady
	w.view = &view
}

func (w *Workflow) beginPost() ([]model.ConsolidatedRow, string, string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.busy() {
		return nil, "", "", ErrBusy
	}
	if w.phase != PhaseReady || w.view == nil || len(w.view.Pending) == 0 {
		return nil, "", "", ErrNothingToPost
	}
	w.phase = PhasePosting
	rows := make([]model.ConsolidatedRow, len(w.view.Pending))
	copy(rows, w.view.Pending)
	return rows, w.dateFrom, w.dateTo, nil
}

func (w *Workflow) abortPost() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.phase = PhaseReady
}

func (w *Workflow) postDone(summary model.PostSummary) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lastSummary = &summary
	w.phase = PhaseLoading
}
