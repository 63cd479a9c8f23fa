package domain

import "time"

// MTE identifies one node in the CCMS monitoring tree by its full path.
type MTE struct {
	ContextName string `json:"context_name"`
	ObjectName  string `json:"object_name"`
	MTEName     string `json:"mte_name"`
}

func (m MTE) Validate() error {
	if m.ContextName == "" {
		return ErrInvalidContextName
	}
	if m.ObjectName == "" {
		return ErrInvalidObjectName
	}
	if m.MTEName == "" {
		return ErrInvalidMTEName
	}
	return nil
}

// MTEClass is the MTCLASS discriminator returned by
// BAPI_SYSTEM_MTE_GETTIDBYNAME. It decides which value BAPI applies.
type MTEClass string

const (
	MTEClassPerformance MTEClass = "100"
	MTEClassLog         MTEClass = "101"
	MTEClassStatus      MTEClass = "102"
	MTEClassText        MTEClass = "111"
)

func (c MTEClass) Supported() bool {
	switch c {
	case MTEClassPerformance, MTEClassLog, MTEClassStatus, MTEClassText:
		return true
	}
	return false
}

// Reading is one value fetched for an MTE.
type Reading struct {
	ID          string    `json:"id"`
	SID         string    `json:"sid"`
	MTE         MTE       `json:"mte"`
	Class       MTEClass  `json:"class"`
	Value       string    `json:"value"`
	CollectedAt time.Time `json:"collected_at"`
}
