package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/povarna/dlist/internal/executor"
	"github.com/povarna/dlist/internal/models"
	"go.yaml.in/yaml/v3"
)

const (
	DefaultScenarioPath = "configs/scenario.yaml"
	DefaultListName     = "default"
)

// Scenario is a scripted sequence of list commands.
type Scenario struct {
	Name            string `yaml:"name"`
	List            string `yaml:"list"`
	ContinueOnError bool   `yaml:"continue_on_error"`
	Steps           []Step `yaml:"steps"`
}

// Step is one command; List defaults to the scenario's list.
type Step struct {
	List   string           `yaml:"list,omitempty"`
	Op     models.Operation `yaml:"op"`
	Value  *int             `yaml:"value,omitempty"`
	Index  *int             `yaml:"index,omitempty"`
	Target string           `yaml:"target,omitempty"`
}

// LoadScenario reads a scenario from path, falling back to SCENARIO_PATH and
// then to configs/scenario.yaml.
func LoadScenario(path string) (*Scenario, error) {
	if path == "" {
		path = os.Getenv("SCENARIO_PATH")
	}
	if path == "" {
		path = DefaultScenarioPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file %s: %w", path, err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	applyDefaults(&sc)

	if err := sc.Validate(); err != nil {
		return nil, err
	}

	return &sc, nil
}

func applyDefaults(sc *Scenario) {
	if sc.List == "" {
		sc.List = DefaultListName
	}
	for i := range sc.Steps {
		if sc.Steps[i].List == "" {
			sc.Steps[i].List = sc.List
		}
	}
}

// Validate applies the same command checks the executor runs, so a bad
// step is rejected at load time instead of midway through a run.
func (sc *Scenario) Validate() error {
	if len(sc.Steps) == 0 {
		return errors.New("no steps configured")
	}

	for i, cmd := range sc.Commands() {
		if cmd.List == "" {
			cmd.List = sc.listName()
		}
		if err := executor.Validate(cmd); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}

	return nil
}

func (sc *Scenario) listName() string {
	if sc.List != "" {
		return sc.List
	}
	return DefaultListName
}

func (sc *Scenario) Commands() []models.Command {
	commands := make([]models.Command, 0, len(sc.Steps))
	for i, step := range sc.Steps {
		commands = append(commands, models.Command{
			ID:     fmt.Sprintf("%s-%d", sc.Name, i),
			List:   step.List,
			Op:     step.Op,
			Value:  step.Value,
			Index:  step.Index,
			Target: step.Target,
		})
	}
	return commands
}

// DefaultScenario is the demonstration run: build a queue, reverse it and
// keep inserting in descending order.
func DefaultScenario() *Scenario {
	value := func(v int) *int { return &v }

	sc := &Scenario{
		Name: "demo",
		List: "demo",
		Steps: []Step{
			{Op: models.OpEnqueue, Value: value(90)},
			{Op: models.OpEnqueue, Value: value(105)},
			{Op: models.OpEnqueue, Value: value(108)},
			{Op: models.OpPush, Value: value(85)},
			{Op: models.OpEnqueue, Value: value(120)},
			{Op: models.OpReverse},
			{Op: models.OpRender},
			{Op: models.OpSortedInsert, Value: value(110)},
			{Op: models.OpRender},
			{Op: models.OpSortedInsert, Value: value(84)},
			{Op: models.OpRender},
			{Op: models.OpSortedInsert, Value: value(121)},
			{Op: models.OpRender},
		},
	}

	applyDefaults(sc)
	return sc
}
