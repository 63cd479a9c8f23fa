package saprfc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ccms-monitor/internal/core/domain"
)

func TestConnParams(t *testing.T) {
	c := &connector{lang: "EN"}

	params := c.connParams(domain.Credential{
		AsHost: "sap.example.com",
		SysNr:  "00",
		Client: "001",
		User:   "monitor",
		Passwd: "secret",
		Trace:  "2",
	})

	assert.Equal(t, map[string]string{
		"ashost": "sap.example.com",
		"sysnr":  "00",
		"client": "001",
		"user":   "monitor",
		"passwd": "secret",
		"lang":   "EN",
		"trace":  "2",
	}, map[string]string(params))
}
