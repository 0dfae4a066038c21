package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/retell-relay/internal/api/shared"
	"github.com/phrazzld/retell-relay/internal/domain"
	"github.com/phrazzld/retell-relay/internal/metrics"
	"github.com/phrazzld/retell-relay/internal/platform/logger"
	"github.com/phrazzld/retell-relay/internal/platform/retell"
	"github.com/phrazzld/retell-relay/internal/redact"
)

// MaxRequestBodyBytes caps the size of an inbound call request.
const MaxRequestBodyBytes = 1 << 20

// CallCreator places outbound phone calls through the voice-call provider.
type CallCreator interface {
	CreatePhoneCall(ctx context.Context, params retell.CreatePhoneCallParams) retell.CallResult
}

// CallHandler handles call-creation HTTP requests.
type CallHandler struct {
	creator CallCreator
	logger  *slog.Logger
}

// NewCallHandler creates a new CallHandler
func NewCallHandler(creator CallCreator, logger *slog.Logger) *CallHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CallHandler{
		creator: creator,
		logger:  logger.With("component", "call_handler"),
	}
}

// CreateCall handles POST /api/retell/call requests.
//
// Responses:
//   - 201 with the provider's call object on success
//   - 400 when the body is not a JSON object or required parameters are missing
//   - 500 when the provider fails, with the provider error in "details"
func (h *CallHandler) CreateCall(w http.ResponseWriter, r *http.Request) {
	log := h.logger
	if reqLog := logger.FromContext(r.Context()); reqLog != nil {
		log = reqLog.With("component", "call_handler")
	}

	req, err := domain.ParseCallRequest(http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes))
	if err != nil {
		metrics.CallOutcomes.WithLabelValues(metrics.OutcomeRejected).Inc()
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err),
			GetSafeErrorMessage(err),
			GetErrorDetails(err),
			err)
		return
	}

	log.Info("attempting call",
		"agent_id", req.AgentID,
		"dynamic_variables", redact.String(fmt.Sprint(req.DynamicVariables)))

	start := time.Now()
	result := h.creator.CreatePhoneCall(r.Context(), retell.CreatePhoneCallParams{
		FromNumber:                req.FromNumber,
		ToNumber:                  req.ToNumber,
		OverrideAgentID:           req.AgentID,
		RetellLLMDynamicVariables: req.DynamicVariables,
	})
	metrics.ProviderLatency.Observe(time.Since(start).Seconds())

	if result.Failed() {
		cause := result.Err
		if cause == nil {
			cause = retell.ErrMissingCallID
		}
		err := newUpstreamError(cause)

		metrics.CallOutcomes.WithLabelValues(metrics.OutcomeFailed).Inc()
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError,
			GetSafeErrorMessage(err),
			GetErrorDetails(err),
			err)
		return
	}

	log.Info("call created", "call_id", result.Call.CallID, "agent_id", req.AgentID)
	metrics.CallOutcomes.WithLabelValues(metrics.OutcomeCreated).Inc()

	shared.RespondWithJSON(w, r, http.StatusCreated, result.Call)
}
