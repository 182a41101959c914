package constants

const (
	// out messages.
	MQSignalQuality = "peplink.cellular.signal_quality"
)
