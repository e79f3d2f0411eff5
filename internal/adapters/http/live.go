package httpadapter

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/edcottrell/sudoku-solver/internal/domain"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // same-origin UI and local tools only
	},
}

// liveEvent is one websocket frame: either an action record or the
// final summary.
type liveEvent struct {
	Action  *domain.Action `json:"action,omitempty"`
	Done    bool           `json:"done,omitempty"`
	Outcome string         `json:"outcome,omitempty"`
	Checks  int            `json:"checks,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// handleSolveLive upgrades to a websocket, expects one board message,
// runs the solver and replays the action log frame by frame, closing
// with a summary. The engine is synchronous, so the replay happens
// after the solve completes; the log order is exactly the inference
// order.
func (h *Handler) handleSolveLive(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	var req solveReq
	if err := conn.ReadJSON(&req); err != nil {
		_ = conn.WriteJSON(liveEvent{Done: true, Error: "invalid board message: " + err.Error()})
		return
	}
	in := &domain.Board{Values: req.Board}
	_, report, _, err := h.UC.Solve(r.Context(), in)
	if err != nil {
		_ = conn.WriteJSON(liveEvent{Done: true, Error: err.Error()})
		return
	}
	for i := range report.Actions {
		if err := conn.WriteJSON(liveEvent{Action: &report.Actions[i]}); err != nil {
			return
		}
	}
	_ = conn.WriteJSON(liveEvent{
		Done:    true,
		Outcome: report.Outcome.String(),
		Checks:  report.Checks,
	})
}
