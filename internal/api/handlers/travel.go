package handlers

import (
	"context"
	"net/http"
	"strings"
	"travel-duration-service/internal/api/dto"
	"travel-duration-service/internal/platform/obs"
	"travel-duration-service/internal/services"
)

type Estimator interface {
	Estimate(ctx context.Context, from, to string) services.Report
}

type TravelHandler struct {
	Estimator Estimator
}

// TravelTimes reports rail and driving estimates between the from and to
// query parameters. A failed chain is reported in its *_error field and
// does not change the status code.
func (h *TravelHandler) TravelTimes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()
	from := strings.TrimSpace(q.Get("from"))
	to := strings.TrimSpace(q.Get("to"))
	if from == "" || to == "" {
		writeError(w, r, http.StatusBadRequest, "from and to are required")
		return
	}

	report := h.Estimator.Estimate(r.Context(), from, to)

	res := dto.TravelTimesResponse{From: report.From, To: report.To}

	if err := report.Rail.Err; err != nil {
		obs.Logger().Infow("rail chain failed", "from", from, "to", to, "err", err)
		res.RailError = &dto.ChainError{Error: err.Error()}
	} else {
		it := report.Rail.Itinerary
		res.Rail = &dto.RailResponse{
			Minutes:   it.Minutes,
			Transfers: it.Transfers,
			Departure: report.Rail.Connection.Departure,
			Arrival:   report.Rail.Connection.Arrival,
			Summary:   it.Header(),
			Legs:      append([]string{}, it.Legs...),
		}
	}

	if err := report.Driving.Err; err != nil {
		obs.Logger().Infow("driving chain failed", "from", from, "to", to, "err", err)
		res.DrivingError = &dto.ChainError{Error: err.Error()}
	} else {
		res.Driving = &dto.DrivingResponse{Minutes: report.Driving.Minutes}
	}

	writeJSON(w, r, http.StatusOK, res)
}
