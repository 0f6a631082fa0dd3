package lifecycle_test

import (
	"context"
	"errors"
	"testing"

	"github.com/JaimeStill/superbowl/pkg/lifecycle"
)

func record(log *[]string, name string, err error) lifecycle.Action {
	return lifecycle.Action{
		Name: name,
		Run: func(context.Context) error {
			*log = append(*log, name)
			return err
		},
	}
}

func TestActions_Run_Order(t *testing.T) {
	var log []string
	a := lifecycle.NewActions()

	late := record(&log, "late", nil)
	late.Order = 200
	early := record(&log, "early", nil)
	early.Order = 10
	tieA := record(&log, "tie-a", nil)
	tieA.Order = 100
	tieB := record(&log, "tie-b", nil)
	tieB.Order = 100

	for _, action := range []lifecycle.Action{late, tieA, early, tieB} {
		if err := a.Add(action); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	want := []string{"early", "tie-a", "tie-b", "late"}
	names := a.Names()
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %s, want %s", i, names[i], want[i])
		}
	}

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("run[%d] = %s, want %s", i, log[i], want[i])
		}
	}
}

func TestActions_Run_Once(t *testing.T) {
	var log []string
	a := lifecycle.NewActions()
	a.Add(record(&log, "startup", nil))

	a.Run(context.Background())
	a.Run(context.Background())

	if len(log) != 1 {
		t.Errorf("runs = %d, want 1", len(log))
	}
}

func TestActions_Run_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	var log []string

	a := lifecycle.NewActions()
	first := record(&log, "seed", boom)
	second := record(&log, "after", nil)
	second.Order = 1
	a.Add(first)
	a.Add(second)

	err := a.Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Run() = %v, want %v", err, boom)
	}
	if len(log) != 1 || log[0] != "seed" {
		t.Errorf("run log = %v, want [seed]", log)
	}

	if again := a.Run(context.Background()); !errors.Is(again, boom) {
		t.Errorf("second Run() = %v, want %v", again, boom)
	}
}

func TestActions_Add_AfterRun(t *testing.T) {
	var log []string
	a := lifecycle.NewActions()
	a.Run(context.Background())

	err := a.Add(record(&log, "late", nil))
	if !errors.Is(err, lifecycle.ErrActionsRan) {
		t.Errorf("Add() = %v, want %v", err, lifecycle.ErrActionsRan)
	}
}

func TestActions_Add_NilRun(t *testing.T) {
	if err := lifecycle.NewActions().Add(lifecycle.Action{Name: "empty"}); err == nil {
		t.Error("Add() error = nil, want error")
	}
}
