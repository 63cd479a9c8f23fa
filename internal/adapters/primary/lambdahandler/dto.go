package lambdahandler

import (
	"time"

	"ccms-monitor/internal/core/domain"
)

// Event is the invocation payload: the full path of the MTE to read.
type Event struct {
	ContextName string `json:"context_name"`
	ObjectName  string `json:"object_name"`
	MTEName     string `json:"mte_name"`
}

func (e Event) ToMTE() domain.MTE {
	return domain.MTE{
		ContextName: e.ContextName,
		ObjectName:  e.ObjectName,
		MTEName:     e.MTEName,
	}
}

// Response carries the fetched value back to the invoker.
type Response struct {
	SID         string    `json:"sid"`
	ContextName string    `json:"context_name"`
	ObjectName  string    `json:"object_name"`
	MTEName     string    `json:"mte_name"`
	Class       string    `json:"class"`
	Value       string    `json:"value"`
	CollectedAt time.Time `json:"collected_at"`
	RequestID   string    `json:"request_id,omitempty"`
}

func ToResponse(reading *domain.Reading, requestID string) *Response {
	return &Response{
		SID:         reading.SID,
		ContextName: reading.MTE.ContextName,
		ObjectName:  reading.MTE.ObjectName,
		MTEName:     reading.MTE.MTEName,
		Class:       string(reading.Class),
		Value:       reading.Value,
		CollectedAt: reading.CollectedAt,
		RequestID:   requestID,
	}
}
