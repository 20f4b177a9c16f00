package journal_test

import (
	"testing"

	"github.com/deixis/journal"
	"github.com/deixis/journal/journaltest"
)

func TestEnvIdentity(t *testing.T) {
	env, err := journal.New(journal.NS("myapp"), "test")
	if err != nil {
		t.Fatal(err)
	}
	defer env.Close()

	if !env.App().Equal(journal.NS("myapp")) {
		t.Errorf("expect app namespace [myapp], but got %v", env.App())
	}
	if env.Environment() != "test" {
		t.Errorf("expect environment test, but got %s", env.Environment())
	}
	if env.Host() == "" {
		t.Error("expect host to be resolved")
	}
	if env.PID() == "" {
		t.Error("expect pid to be resolved")
	}
	if env.Now().IsZero() {
		t.Error("expect the clock to be running")
	}
}

func TestRegisterScribe(t *testing.T) {
	env, err := journal.New(journal.NS("myapp"), "test")
	if err != nil {
		t.Fatal(err)
	}
	defer env.Close()

	rec := journaltest.NewRecorder()
	next := env.RegisterScribe("x", rec)

	if _, ok := env.Scribe("x"); ok {
		t.Error("expect the prior environment to be unchanged")
	}
	s, ok := next.Scribe("x")
	if !ok {
		t.Fatal("expect the new environment to bind x")
	}
	if s != journal.Scribe(rec) {
		t.Error("expect x to be bound to the registered scribe")
	}
}

func TestRegisterScribe_Replace(t *testing.T) {
	env, err := journal.New(journal.NS("myapp"), "test")
	if err != nil {
		t.Fatal(err)
	}
	defer env.Close()

	first := journaltest.NewRecorder()
	second := journaltest.NewRecorder()
	env2 := env.RegisterScribe("x", first).RegisterScribe("x", second)

	s, ok := env2.Scribe("x")
	if !ok {
		t.Fatal("expect x to be bound")
	}
	if s != journal.Scribe(second) {
		t.Error("expect the second registration to replace the first")
	}
	if got := len(env2.ScribeNames()); got != 1 {
		t.Errorf("expect 1 registry entry, but got %d", got)
	}
}

func TestUnregisterScribe(t *testing.T) {
	env, err := journal.New(journal.NS("myapp"), "test")
	if err != nil {
		t.Fatal(err)
	}
	defer env.Close()

	env2 := env.RegisterScribe("x", journaltest.NewRecorder())
	env3 := env2.UnregisterScribe("x")

	if _, ok := env3.Scribe("x"); ok {
		t.Error("expect x to be unbound")
	}
	if _, ok := env2.Scribe("x"); !ok {
		t.Error("expect the prior environment to be unchanged")
	}
}

func TestUnregisterScribe_Absent(t *testing.T) {
	env, err := journal.New(journal.NS("myapp"), "test")
	if err != nil {
		t.Fatal(err)
	}
	defer env.Close()

	env2 := env.RegisterScribe("x", journaltest.NewRecorder())
	env3 := env2.UnregisterScribe("ghost")

	if _, ok := env3.Scribe("x"); !ok {
		t.Error("expect the other entries to be preserved")
	}
	if got := len(env3.ScribeNames()); got != 1 {
		t.Errorf("expect 1 registry entry, but got %d", got)
	}
}

func TestScribeNames_Sorted(t *testing.T) {
	env, err := journal.New(journal.NS("myapp"), "test")
	if err != nil {
		t.Fatal(err)
	}
	defer env.Close()

	env = env.
		RegisterScribe("console", journaltest.NewRecorder()).
		RegisterScribe("audit", journaltest.NewRecorder()).
		RegisterScribe("ship", journaltest.NewRecorder())

	names := env.ScribeNames()
	expect := []string{"audit", "console", "ship"}
	if len(names) != len(expect) {
		t.Fatalf("expect names %v, but got %v", expect, names)
	}
	for i := range expect {
		if names[i] != expect[i] {
			t.Fatalf("expect names %v, but got %v", expect, names)
		}
	}
}
