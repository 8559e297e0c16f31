package scenario

import (
	"maps"
	"os"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/percona/fwdlist/errors"
)

// Operation names.
const (
	OpPushFront   = "push_front"
	OpPopFront    = "pop_front"
	OpInsertAfter = "insert_after"
	OpEraseAfter  = "erase_after"
	OpClear       = "clear"
	OpCopy        = "copy"
	OpAssign      = "assign"
	OpSwap        = "swap"
	OpExpect      = "expect"
	OpCompare     = "compare"
)

// BeforeBegin is the step position of the sentinel.
const BeforeBegin = -1

// Scenario is a script of list operations.
type Scenario struct {
	Name  string           `yaml:"name"`
	Lists map[string][]int `yaml:"lists"`
	Steps []Step           `yaml:"steps"`
}

// Step is a single operation of a scenario. Fields not used by Op are ignored.
type Step struct {
	Op   string `yaml:"op"`
	List string `yaml:"list"`

	// Pos is the position for insert_after and erase_after: BeforeBegin or
	// the zero-based index of an element.
	Pos   int `yaml:"pos"`
	Value int `yaml:"value"`

	// Src is the source list of copy and assign.
	Src string `yaml:"src"`
	// Other is the second list of swap and compare.
	Other string `yaml:"other"`

	// Values are the expected elements of expect.
	Values []int `yaml:"values"`
	// Want is the expected relation of compare: ==, !=, <, <=, >, >=.
	Want string `yaml:"want"`
}

// Parse decodes a scenario from YAML.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario

	err := yaml.Unmarshal(data, &s)
	if err != nil {
		return nil, errors.Wrap(err, "decode yaml")
	}

	err = s.validate()
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// Load reads and parses a scenario file. A scenario without a name is named
// after the file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read")
	}

	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}

	if s.Name == "" {
		s.Name = path
	}

	return s, nil
}

// validate checks the static shape of the steps. List existence and positions
// depend on the list state and are checked while running.
func (s *Scenario) validate() error {
	for i, step := range s.Steps {
		var err error

		switch step.Op {
		case OpPushFront, OpPopFront, OpInsertAfter, OpEraseAfter, OpClear, OpExpect:
		case OpCopy, OpAssign:
			if step.Src == "" {
				err = errors.New("missing src")
			}
		case OpSwap:
			if step.Other == "" {
				err = errors.New("missing other")
			}
		case OpCompare:
			if step.Other == "" {
				err = errors.New("missing other")
			} else if _, ok := relations[step.Want]; !ok {
				err = errors.Errorf("unknown relation %q", step.Want)
			}
		default:
			err = ErrUnknownOp
		}

		if err == nil && step.List == "" {
			err = errors.New("missing list")
		}

		if err != nil {
			return &StepError{Index: i, Op: step.Op, cause: err}
		}
	}

	return nil
}

// listNames returns the declared list names in a stable order.
func (s *Scenario) listNames() []string {
	return slices.Sorted(maps.Keys(s.Lists))
}

// StepError reports the step at which a scenario failed.
type StepError struct {
	Index int
	Op    string
	cause error
}

func (e *StepError) Error() string {
	return "step " + strconv.Itoa(e.Index) + " (" + e.Op + "): " + e.cause.Error()
}

func (e *StepError) Unwrap() error {
	return e.cause
}
