package scenario

import (
	"context"

	"github.com/percona/fwdlist/errors"
	"github.com/percona/fwdlist/list"
	"github.com/percona/fwdlist/log"
	"github.com/percona/fwdlist/metrics"
)

//nolint:gochecknoglobals
var relations = map[string]func(a, b *list.List[int]) bool{
	"==": list.Equal[int],
	"!=": func(a, b *list.List[int]) bool { return !list.Equal(a, b) },
	"<":  list.Less[int],
	"<=": list.LessOrEqual[int],
	">":  list.Greater[int],
	">=": list.GreaterOrEqual[int],
}

// Result is the outcome of a scenario run.
type Result struct {
	Name string
	// Steps is the number of steps applied successfully.
	Steps int
	// Total is the number of steps of the scenario.
	Total int
	// Lists is the content of every list after the last applied step.
	Lists map[string][]int
}

type runner struct {
	lists map[string]*list.List[int]
	total int
}

// Run replays the steps in order against fresh lists built from s.Lists.
//
// List preconditions are checked before each operation, so a bad step fails
// with a *StepError instead of corrupting a list. The returned Result reflects
// the state reached before the failing step.
func (s *Scenario) Run(ctx context.Context) (*Result, error) {
	ctx = log.WithAttrs(ctx, log.Scope("scenario"))

	r := &runner{
		lists: make(map[string]*list.List[int], len(s.Lists)),
		total: len(s.Steps),
	}
	for _, name := range s.listNames() {
		r.lists[name] = list.New(s.Lists[name]...)
	}

	log.Debugf(ctx, "run %q: %d lists, %d steps", s.Name, len(r.lists), len(s.Steps))

	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return r.result(s.Name, i), errors.Wrapf(err, "step %d", i)
		}

		stepCtx := log.WithAttrs(ctx, log.Step(i), log.Operation(step.Op), log.List(step.List))

		err := r.apply(step)
		if err != nil {
			if errors.Is(err, ErrExpectation) {
				metrics.AddExpectationFailure()
			}

			log.Error(stepCtx, err, "step failed")

			return r.result(s.Name, i), &StepError{Index: i, Op: step.Op, cause: err}
		}

		metrics.AddScenarioStep(step.Op)
		log.Debugf(stepCtx, "%s = %s", step.List, r.lists[step.List])
	}

	return r.result(s.Name, len(s.Steps)), nil
}

func (r *runner) result(name string, steps int) *Result {
	res := &Result{
		Name:  name,
		Steps: steps,
		Total: r.total,
		Lists: make(map[string][]int, len(r.lists)),
	}

	for n, l := range r.lists {
		res.Lists[n] = l.Values()
	}

	return res
}

func (r *runner) get(name string) (*list.List[int], error) {
	l, ok := r.lists[name]
	if !ok {
		return nil, errors.Wrap(ErrUnknownList, name)
	}

	return l, nil
}

func (r *runner) apply(step Step) error { //nolint:cyclop
	switch step.Op {
	case OpCopy:
		src, err := r.get(step.Src)
		if err != nil {
			return err
		}

		r.lists[step.List] = src.Clone()
		return nil

	case OpAssign, OpSwap, OpCompare:
		return r.applyBinary(step)
	}

	l, err := r.get(step.List)
	if err != nil {
		return err
	}

	switch step.Op {
	case OpPushFront:
		l.PushFront(step.Value)

	case OpPopFront:
		if l.IsEmpty() {
			return ErrEmptyList
		}
		l.PopFront()

	case OpInsertAfter:
		pos, err := position(l, step.Pos)
		if err != nil {
			return err
		}
		l.InsertAfter(pos, step.Value)

	case OpEraseAfter:
		pos, err := position(l, step.Pos)
		if err != nil {
			return err
		}
		if pos.Next().Equal(l.CEnd()) {
			return errors.Wrapf(ErrNoSuccessor, "pos %d", step.Pos)
		}
		l.EraseAfter(pos)

	case OpClear:
		l.Clear()

	case OpExpect:
		want := list.New(step.Values...)
		if !list.Equal(l, want) {
			return errors.Wrapf(ErrExpectation, "got %s, want %s", l, want)
		}

	default:
		return errors.Wrap(ErrUnknownOp, step.Op)
	}

	return nil
}

// applyBinary applies the operations involving two existing lists.
func (r *runner) applyBinary(step Step) error {
	otherName := step.Other
	if step.Op == OpAssign {
		otherName = step.Src
	}

	l, err := r.get(step.List)
	if err != nil {
		return err
	}

	other, err := r.get(otherName)
	if err != nil {
		return err
	}

	switch step.Op {
	case OpAssign:
		l.Assign(other)

	case OpSwap:
		list.Swap(l, other)

	case OpCompare:
		rel, ok := relations[step.Want]
		if !ok {
			return errors.Errorf("unknown relation %q", step.Want)
		}
		if !rel(l, other) {
			return errors.Wrapf(ErrExpectation, "%s %s %s is false", l, step.Want, other)
		}
	}

	return nil
}

// position resolves a step position to an iterator: BeforeBegin or the index
// of an existing element.
func position(l *list.List[int], pos int) (list.ConstIterator[int], error) {
	if pos == BeforeBegin {
		return l.CBeforeBegin(), nil
	}

	if pos < 0 || pos >= l.Len() {
		return list.ConstIterator[int]{}, errors.Wrapf(ErrPositionRange, "pos %d, len %d", pos, l.Len())
	}

	it := l.CBegin()
	for range pos {
		it = it.Next()
	}

	return it, nil
}
