package constants

import (
	"time"
)

const (
	AppName    = "peplink-monitor"
	AppLabel   = "Peplink Monitor"
	SourceType = "peplink-router"
)

const (
	// router cli.
	CommandGetWAN          = "get wan"
	CommandExit            = "exit"
	PromptMarker           = ">"
	WANMarker              = "WAN Connection"
	ConnectionTypeCellular = "Cellular"
	SectionCellularStatus  = "cellularStatus"
)

const (
	FieldRSSI          = "rssi"
	FieldSINR          = "sinr"
	FieldRSRP          = "rsrp"
	FieldRSRQ          = "rsrq"
	FieldSignalQuality = "signalQuality"
	FieldDNSServers    = "dnsServers"
)

const (
	SessionTimeout = 30 * time.Second
	SSHTerminal    = "vt100"
	SSHTermHeight  = 80
	SSHTermWidth   = 200
)

const (
	DefaultSSHPort      = 22
	DefaultUsername     = "admin"
	DefaultPollInterval = 30 * time.Second
	DefaultLogLevel     = "info"
)

const (
	// NullResult is printed when no signal quality is available.
	NullResult = "null"
)

const (
	// rolling log file.
	LogDirPerm    = 0755
	LogMaxSizeMB  = 15
	LogMaxAgeDays = 30
	LogMaxBackups = 10
)
