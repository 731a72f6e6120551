package models

// Proxy holds HTTP proxy connection details.
type Proxy struct {
	Host     string
	Port     uint64
	Username string
	Password string
}

// IsConfigured reports whether a proxy host and port are set.
func (p Proxy) IsConfigured() bool {
	return p.Host != "" && p.Port != 0
}

// Settings is the single row of user-configurable settings. It is not
// dirty-tracked.
type Settings struct {
	UseProxy         bool
	Proxy            Proxy
	UseIdleDetection bool
}

// UpdateChannel selects which application builds are offered for update.
type UpdateChannel string

const (
	UpdateChannelStable UpdateChannel = "stable"
	UpdateChannelBeta   UpdateChannel = "beta"
	UpdateChannelDev    UpdateChannel = "dev"
)

// Valid reports whether c is one of the known channels.
func (c UpdateChannel) Valid() bool {
	switch c {
	case UpdateChannelStable, UpdateChannelBeta, UpdateChannelDev:
		return true
	}
	return false
}
