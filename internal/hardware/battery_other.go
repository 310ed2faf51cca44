//go:build !linux && !windows

package hardware

import "context"

// Batteries is not implemented on this platform and reports none.
func (s *System) Batteries(_ context.Context) ([]Battery, error) {
	return nil, nil
}
