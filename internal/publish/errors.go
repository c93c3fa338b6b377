package publish

import "errors"

// The four failure kinds a publish can produce. The driver treats them
// uniformly (print and exit non-zero); the types exist so callers and tests
// can tell them apart.

type configError struct{ err error }

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

// IsConfigError checks if an error is a provider configuration error.
func IsConfigError(err error) bool {
	var ce *configError
	return errors.As(err, &ce)
}

type dependencyError struct{ err error }

func (e *dependencyError) Error() string { return e.err.Error() }
func (e *dependencyError) Unwrap() error { return e.err }

// IsDependencyError checks if an error means an external dependency (the
// ssh/scp binaries, the AWS SDK setup) is missing or unusable.
func IsDependencyError(err error) bool {
	var de *dependencyError
	return errors.As(err, &de)
}

type transportError struct{ err error }

func (e *transportError) Error() string { return e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }

// IsTransportError checks if an error came from a remote command or copy
// step.
func IsTransportError(err error) bool {
	var te *transportError
	return errors.As(err, &te)
}

type uploadError struct{ err error }

func (e *uploadError) Error() string { return e.err.Error() }
func (e *uploadError) Unwrap() error { return e.err }

// IsUploadError checks if an error came from an object-storage upload.
func IsUploadError(err error) bool {
	var ue *uploadError
	return errors.As(err, &ue)
}
