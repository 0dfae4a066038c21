package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/retell-relay/internal/agents"
	"github.com/phrazzld/retell-relay/internal/api/shared"
)

// AgentCatalog provides read access to the configured agents.
type AgentCatalog interface {
	List() []agents.Agent
	Get(id string) (agents.Agent, bool)
}

// AgentHandler serves the agent catalog to the frontend.
type AgentHandler struct {
	catalog AgentCatalog
}

// NewAgentHandler creates a new AgentHandler
func NewAgentHandler(catalog AgentCatalog) *AgentHandler {
	return &AgentHandler{catalog: catalog}
}

// ListAgents handles GET /api/agents requests.
// The optional team and status query parameters narrow the list to exact matches.
func (h *AgentHandler) ListAgents(w http.ResponseWriter, r *http.Request) {
	team := r.URL.Query().Get("team")
	status := r.URL.Query().Get("status")

	all := h.catalog.List()
	if team == "" && status == "" {
		shared.RespondWithJSON(w, r, http.StatusOK, all)
		return
	}

	filtered := make([]agents.Agent, 0, len(all))
	for _, agent := range all {
		if team != "" && agent.Team != team {
			continue
		}
		if status != "" && agent.Status != status {
			continue
		}
		filtered = append(filtered, agent)
	}
	shared.RespondWithJSON(w, r, http.StatusOK, filtered)
}

// GetAgent handles GET /api/agents/{id} requests
func (h *AgentHandler) GetAgent(w http.ResponseWriter, r *http.Request) {
	agent, ok := h.catalog.Get(chi.URLParam(r, "id"))
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, MsgAgentNotFound)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, agent)
}
