package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}

	return nil
}

// GetReason returns the MetaReason attached to an error, if any
func GetReason(err error) string {
	reason, _ := GetMeta(err)[MetaReason].(string)
	return reason
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return GetCode(err) == CodeAlreadyExists
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsBusy checks if an error is a busy error
func IsBusy(err error) bool {
	return GetCode(err) == CodeBusy
}

// IsNotInThisState checks if an error is a wrong-state error
func IsNotInThisState(err error) bool {
	return GetCode(err) == CodeNotInThisState
}

// IsNotYetDue checks if an error is a not-yet-due error
func IsNotYetDue(err error) bool {
	return GetCode(err) == CodeNotYetDue
}

// IsInsufficientResource checks if an error is an insufficient resource error
func IsInsufficientResource(err error) bool {
	return GetCode(err) == CodeInsufficientResource
}

// IsCooldownActive checks if an error is a cooldown error
func IsCooldownActive(err error) bool {
	return GetCode(err) == CodeCooldownActive
}

// IsAlreadyClaimedToday checks if an error is a repeated daily claim
func IsAlreadyClaimedToday(err error) bool {
	return GetCode(err) == CodeAlreadyClaimedToday
}

// IsLevelTooLow checks if an error is a level gate error
func IsLevelTooLow(err error) bool {
	return GetCode(err) == CodeLevelTooLow
}
