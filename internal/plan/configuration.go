package plan

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	planReadErrorTemplateConstant      = "unable to read plan file %s: %w"
	planParseErrorTemplateConstant     = "unable to parse plan file %s: %w"
	planEmptyMessageConstant           = "plan contains no relocations"
	stepSourceRequiredTemplateConstant = "relocation %d: source must be provided"
	stepDestinationRequiredTemplate    = "relocation %d: destination must be provided"
)

// ErrPlanEmpty indicates the plan file declared no relocation steps.
var ErrPlanEmpty = errors.New(planEmptyMessageConstant)

// Configuration describes an ordered list of relocation steps.
type Configuration struct {
	Relocations []Step `yaml:"relocations"`
}

// Step describes one source-to-destination relocation.
type Step struct {
	Source      string `yaml:"source"`
	Destination string `yaml:"destination"`
	Copy        bool   `yaml:"copy"`
}

// LoadConfiguration reads and validates a YAML plan file before any step runs.
func LoadConfiguration(planFilePath string) (Configuration, error) {
	contentBytes, readError := os.ReadFile(planFilePath)
	if readError != nil {
		return Configuration{}, fmt.Errorf(planReadErrorTemplateConstant, planFilePath, readError)
	}

	var configuration Configuration
	if unmarshalError := yaml.Unmarshal(contentBytes, &configuration); unmarshalError != nil {
		return Configuration{}, fmt.Errorf(planParseErrorTemplateConstant, planFilePath, unmarshalError)
	}

	if validationError := configuration.Validate(); validationError != nil {
		return Configuration{}, validationError
	}

	return configuration, nil
}

// Validate confirms the plan declares at least one complete relocation step.
func (configuration Configuration) Validate() error {
	if len(configuration.Relocations) == 0 {
		return ErrPlanEmpty
	}

	for stepIndex, relocationStep := range configuration.Relocations {
		if len(strings.TrimSpace(relocationStep.Source)) == 0 {
			return fmt.Errorf(stepSourceRequiredTemplateConstant, stepIndex)
		}
		if len(strings.TrimSpace(relocationStep.Destination)) == 0 {
			return fmt.Errorf(stepDestinationRequiredTemplate, stepIndex)
		}
	}

	return nil
}
