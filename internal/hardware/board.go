package hardware

import (
	"context"
	"fmt"

	"github.com/jaypipes/ghw"
)

// MainBoard reads the baseboard identity from DMI.
func (s *System) MainBoard(_ context.Context) (MainBoard, error) {
	bb, err := ghw.Baseboard(ghw.WithDisableWarnings())
	if err != nil {
		return MainBoard{}, fmt.Errorf("baseboard: %w", err)
	}
	return MainBoard{
		Vendor:       bb.Vendor,
		Name:         bb.Product,
		Version:      bb.Version,
		SerialNumber: bb.SerialNumber,
	}, nil
}
