package scenarios

import (
	"errors"
	"fmt"
)

// ErrUnknownScenario indicates Build was asked for a name not present
// in the registry.
var ErrUnknownScenario = errors.New("scenarios: unknown scenario name")

func scenarioErrorf(tag string, err error) error {
	return fmt.Errorf("scenarios.%s: %w", tag, err)
}
