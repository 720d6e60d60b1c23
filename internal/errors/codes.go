package errors

// Code represents an error code
type Code string

// General error codes
const (
	CodeOK              Code = "OK"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeAlreadyExists   Code = "ALREADY_EXISTS"
	CodeInternal        Code = "INTERNAL"
	CodeUnavailable     Code = "UNAVAILABLE"
)

// Progression error codes. All of these are expected outcomes of a user
// action and are reported back to the caller, never treated as crashes.
const (
	CodeBusy                 Code = "BUSY"
	CodeNotInThisState       Code = "NOT_IN_THIS_STATE"
	CodeNotYetDue            Code = "NOT_YET_DUE"
	CodeInsufficientResource Code = "INSUFFICIENT_RESOURCE"
	CodeCooldownActive       Code = "COOLDOWN_ACTIVE"
	CodeAlreadyClaimedToday  Code = "ALREADY_CLAIMED_TODAY"
	CodeLevelTooLow          Code = "LEVEL_TOO_LOW"
)

// Reasons attached as metadata to InvalidArgument errors
const (
	ReasonInvalidClass    = "invalid_class"
	ReasonInvalidStat     = "invalid_stat"
	ReasonDungeonNotFound = "dungeon_not_found"
	ReasonInvalidItem     = "invalid_item"
)

// MetaReason is the metadata key holding a Reason* value
const MetaReason = "reason"

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Recoverable reports whether the code describes an expected outcome the
// caller can show to the user, as opposed to a storage or programming fault.
func (c Code) Recoverable() bool {
	switch c {
	case CodeInternal, CodeUnavailable:
		return false
	default:
		return true
	}
}
