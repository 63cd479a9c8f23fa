package lambdahandler

import (
	"context"

	"github.com/aws/aws-lambda-go/lambdacontext"
	log "github.com/sirupsen/logrus"

	"ccms-monitor/internal/core/services"
)

type Handler struct {
	monitorSvc *services.MonitorService
}

func New(monitorSvc *services.MonitorService) *Handler {
	return &Handler{monitorSvc: monitorSvc}
}

// Handle processes one invocation. Errors propagate to the runtime so the
// platform reports the invocation as failed.
func (h *Handler) Handle(ctx context.Context, event Event) (*Response, error) {
	var requestID string
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		requestID = lc.AwsRequestID
	}

	logger := log.WithFields(log.Fields{
		"request_id": requestID,
		"context":    event.ContextName,
		"object":     event.ObjectName,
		"mte":        event.MTEName,
	})

	reading, err := h.monitorSvc.Fetch(ctx, event.ToMTE())
	if err != nil {
		logger.WithError(err).Error("fetch mte value failed")
		return nil, err
	}

	return ToResponse(reading, requestID), nil
}
