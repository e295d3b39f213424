package cpu

import "fmt"

// CPUError is the outer error returned from the step driver. It wraps
// either a memory overflow or a resolution failure; microcode never
// catches either, it only lets them propagate.
type CPUError struct {
	Memory     error
	Resolution *ResolutionError
}

func (e *CPUError) Error() string {
	if e.Resolution != nil {
		return fmt.Sprintf("cpu: %v", e.Resolution)
	}
	return fmt.Sprintf("cpu: %v", e.Memory)
}

func (e *CPUError) Unwrap() error {
	if e.Resolution != nil {
		return e.Resolution
	}
	return e.Memory
}

func wrapMemoryErr(err error) error {
	if err == nil {
		return nil
	}
	return &CPUError{Memory: err}
}

func wrapResolutionErr(err error) error {
	if err == nil {
		return nil
	}
	if re, ok := err.(*ResolutionError); ok {
		return &CPUError{Resolution: re}
	}
	return &CPUError{Memory: err}
}
