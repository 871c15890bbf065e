package ako

// Status is the exact error taxonomy the encoder and decoder surface.
// Ok is the zero value so a freshly declared Status reads as success.
type Status int

const (
	Ok Status = iota
	Error
	NotImplemented
	NoEnoughMemory
	InvalidCallbacks
	InvalidInput
	InvalidSettings
	InvalidTilesDimension
	InvalidDimensions
	InvalidChannelsNo
	InvalidDepth
	TruncatedImageHead
	TruncatedTileHead
	TruncatedTileData
	NotAnAkoFile
	InvalidColor
	InvalidWavelet
	InvalidWrap
	InvalidCompression
	InvalidTileHead
)

func (s Status) String() string {
	switch s {
	case Ok:
		return "Ok"
	case Error:
		return "Error"
	case NotImplemented:
		return "NotImplemented"
	case NoEnoughMemory:
		return "NoEnoughMemory"
	case InvalidCallbacks:
		return "InvalidCallbacks"
	case InvalidInput:
		return "InvalidInput"
	case InvalidSettings:
		return "InvalidSettings"
	case InvalidTilesDimension:
		return "InvalidTilesDimension"
	case InvalidDimensions:
		return "InvalidDimensions"
	case InvalidChannelsNo:
		return "InvalidChannelsNo"
	case InvalidDepth:
		return "InvalidDepth"
	case TruncatedImageHead:
		return "TruncatedImageHead"
	case TruncatedTileHead:
		return "TruncatedTileHead"
	case TruncatedTileData:
		return "TruncatedTileData"
	case NotAnAkoFile:
		return "NotAnAkoFile"
	case InvalidColor:
		return "InvalidColor"
	case InvalidWavelet:
		return "InvalidWavelet"
	case InvalidWrap:
		return "InvalidWrap"
	case InvalidCompression:
		return "InvalidCompression"
	case InvalidTileHead:
		return "InvalidTileHead"
	default:
		return "Unknown"
	}
}

// Error implements the error interface so a Status can be returned (and
// compared with errors.Is) anywhere Go code expects one, while the
// orchestrator's own API keeps returning a bare Status for callers that
// want to switch on the exact taxonomy.
func (s Status) Error() string {
	return "ako: " + s.String()
}
