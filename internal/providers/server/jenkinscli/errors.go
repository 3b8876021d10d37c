package jenkinscli

import "github.com/crmarques/jenkview/faults"

func validationError(message string, cause error) error {
	return faults.NewTypedError(faults.ValidationError, message, cause)
}

func transportError(message string, cause error) error {
	return faults.NewTypedError(faults.TransportError, message, cause)
}

func malformedStateError(message string, cause error) error {
	return faults.NewTypedError(faults.MalformedStateError, message, cause)
}
