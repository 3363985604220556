package errorx

type Code int

var Unknown = Error{Code: 100000, Message: "Request failed"}

const (
	// Common codes
	BadRequest       Code = 100001
	BadResponse      Code = 100002
	PermissionDenied Code = 100003
	NotFound         Code = 100004
	Internal         Code = 100007
	Unavailable      Code = 100008

	// Mint codes
	AccountRequired Code = 500001
	NotLoaded       Code = 500002
	AlreadyClaimed  Code = 500003
	MintPending     Code = 500004
	MintCompleted   Code = 500005
	FeeUnknown      Code = 500006
)
