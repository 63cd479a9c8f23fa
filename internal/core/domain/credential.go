package domain

const defaultTraceLevel = "0"

// Credential holds the SAP application-server logon data stored in the
// secret payload. Field tags match the JSON keys of the stored secret.
type Credential struct {
	AsHost string `json:"ashost"`
	SysNr  string `json:"sysnr"`
	Client string `json:"client"`
	User   string `json:"user"`
	Passwd string `json:"passwd"`
	Trace  string `json:"trace"`
}

func (c *Credential) Validate() error {
	if c.AsHost == "" || c.SysNr == "" || c.Client == "" || c.User == "" || c.Passwd == "" {
		return ErrCredentialIncomplete
	}
	if c.Trace == "" {
		c.Trace = defaultTraceLevel
	}
	return nil
}
