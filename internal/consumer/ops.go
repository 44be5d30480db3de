package consumer

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/domain"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/repository"
)

// defaultStatsWindow is the time range /stats reports over when the caller
// does not pass one.
const defaultStatsWindow = 24 * time.Hour

// OpsHandler is the consumer's operational HTTP surface: a liveness probe
// backed by the durable store and an aggregate-counts endpoint that reads
// written events back out of it.
type OpsHandler struct {
	repo repository.EventRepository
	log  *zap.Logger
	mux  *http.ServeMux
}

// NewOpsHandler creates the handler for the consumer's health-check port.
func NewOpsHandler(repo repository.EventRepository, log *zap.Logger) *OpsHandler {
	h := &OpsHandler{
		repo: repo,
		log:  log,
		mux:  http.NewServeMux(),
	}
	h.mux.HandleFunc("/health", h.health)
	h.mux.HandleFunc("/stats", h.stats)
	return h
}

func (h *OpsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *OpsHandler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Ping(r.Context()); err != nil {
		h.log.Warn("Health check failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
}

type statsGroup struct {
	Group string `json:"group"`
	Count uint64 `json:"count"`
}

type statsResponse struct {
	TotalEvents uint64       `json:"total_events"`
	UniqueUsers uint64       `json:"unique_users"`
	From        time.Time    `json:"from"`
	To          time.Time    `json:"to"`
	Groups      []statsGroup `json:"groups,omitempty"`
}

// stats serves GET /stats?category=&group_by=&from=&to=. Timestamps are
// RFC 3339; the range defaults to the trailing 24 hours.
func (h *OpsHandler) stats(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	query := repository.CountsQuery{}

	if raw := params.Get("category"); raw != "" {
		category, err := domain.ParseCategory(raw)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		query.Category = category
	}

	switch groupBy := params.Get("group_by"); groupBy {
	case "", "category", "hour", "day":
		query.GroupBy = groupBy
	default:
		h.writeError(w, http.StatusBadRequest, "group_by must be one of: category, hour, day")
		return
	}

	now := time.Now()
	query.From = now.Add(-defaultStatsWindow)
	query.To = now

	if raw := params.Get("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "from must be an RFC 3339 timestamp")
			return
		}
		query.From = from
	}
	if raw := params.Get("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "to must be an RFC 3339 timestamp")
			return
		}
		query.To = to
	}

	result, err := h.repo.GetEventCounts(r.Context(), query)
	if err != nil {
		h.log.Error("Failed to query event counts", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "failed to query event counts")
		return
	}

	resp := statsResponse{
		TotalEvents: result.TotalCount,
		UniqueUsers: result.UniqueUsers,
		From:        query.From,
		To:          query.To,
	}
	for _, group := range result.Groups {
		resp.Groups = append(resp.Groups, statsGroup{
			Group: group.GroupValue,
			Count: group.TotalCount,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.log.Error("Failed to encode stats response", zap.Error(err))
	}
}

func (h *OpsHandler) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		h.log.Error("Failed to encode error response", zap.Error(err))
	}
}
