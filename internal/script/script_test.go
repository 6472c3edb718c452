package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/segmentio/intrusive/internal/contract"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

func TestMain(m *testing.M) {
	restore := contract.Configure(contract.WithMode(contract.ModePanic))
	code := m.Run()
	restore()
	os.Exit(code)
}

const common = `
[[step]]
op = "push_back"
values = [5, 2, 8, 1]

[[step]]
op = "push_front"
values = [3]
expect = [3, 5, 2, 8, 1]

[[step]]
op = "sort"
expect = [1, 2, 3, 5, 8]

[[step]]
op = "sort"
order = "desc"
expect = [8, 5, 3, 2, 1]

[[step]]
op = "remove_if"
pred = "even"
expect = [5, 3, 1]

[[step]]
op = "reverse"
expect = [1, 3, 5]

[[step]]
op = "pop_front"
expect = [3, 5]
`

func decode(t *testing.T, doc string) *Script {
	t.Helper()
	s, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestRun(t *testing.T) {
	tests := []struct {
		scenario string
		kind     string
		extra    string
		want     []int
	}{
		{
			scenario: "doubly linked list",
			kind:     "list",
			extra:    "[[step]]\nop = \"pop_back\"\n",
			want:     []int{3},
		},

		{
			scenario: "default kind is the doubly linked list",
			kind:     "",
			want:     []int{3, 5},
		},

		{
			scenario: "singly linked list",
			kind:     "slist",
			extra:    "[[step]]\nop = \"remove_if\"\npred = \"gt\"\narg = 4\n",
			want:     []int{3},
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			s := decode(t, "kind = \""+test.kind+"\"\n"+common+test.extra)
			logger, hook := logtest.NewNullLogger()
			logger.SetLevel(logrus.DebugLevel)

			got, err := s.Run(logger)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("list content mismatch (-want +got):\n%s", diff)
			}
			if n := len(hook.AllEntries()); n != len(s.Steps) {
				t.Errorf("wrong number of log entries: got=%d want=%d", n, len(s.Steps))
			}
		})
	}
}

func TestRunRing(t *testing.T) {
	s := decode(t, `
kind = "ring"

[[step]]
op = "push_back"
values = [1, 2, 3, 4]

[[step]]
op = "shift"
expect = [2, 3, 4, 1]

[[step]]
op = "reverse"
expect = [1, 4, 3, 2]

[[step]]
op = "remove_if"
pred = "lt"
arg = 3
expect = [4, 3]

[[step]]
op = "pop_back"
expect = [4]
`)
	logger, _ := logtest.NewNullLogger()
	got, err := s.Run(logger)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{4}, got); diff != "" {
		t.Errorf("list content mismatch (-want +got):\n%s", diff)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		scenario string
		doc      string
		cause    error
	}{
		{
			scenario: "expectations which do not match fail with ErrMismatch",
			doc:      "[[step]]\nop = \"push_back\"\nvalues = [1]\nexpect = [2]\n",
			cause:    ErrMismatch,
		},

		{
			scenario: "operations missing from the kind of list fail with ErrUnsupported",
			doc:      "kind = \"slist\"\n[[step]]\nop = \"pop_back\"\n",
			cause:    ErrUnsupported,
		},

		{
			scenario: "rings cannot be sorted",
			doc:      "kind = \"ring\"\n[[step]]\nop = \"sort\"\n",
			cause:    ErrUnsupported,
		},

		{
			scenario: "unknown operations fail",
			doc:      "[[step]]\nop = \"shuffle\"\n",
		},

		{
			scenario: "unknown predicates fail",
			doc:      "[[step]]\nop = \"remove_if\"\npred = \"prime\"\n",
		},

		{
			scenario: "popping from an empty list fails",
			doc:      "[[step]]\nop = \"pop_front\"\n",
		},

		{
			scenario: "unknown kinds of lists fail",
			doc:      "kind = \"tree\"\n",
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			logger, _ := logtest.NewNullLogger()
			_, err := decode(t, test.doc).Run(logger)
			if err == nil {
				t.Fatal("running the script succeeded")
			}
			if test.cause != nil && errors.Cause(err) != test.cause {
				t.Errorf("wrong error cause: got=%v want=%v", errors.Cause(err), test.cause)
			}
		})
	}
}

func TestDecodeUnknownKey(t *testing.T) {
	if _, err := Decode(strings.NewReader("[[step]]\nop = \"clear\"\ncount = 3\n")); err == nil {
		t.Error("decoding a script with an unknown key succeeded")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.toml")
	if err := os.WriteFile(path, []byte(common), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(s.Steps); n != 7 {
		t.Errorf("wrong number of steps: got=%d want=7", n)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("loading a missing script succeeded")
	}

	misspelled := filepath.Join(t.TempDir(), "misspelled.toml")
	doc := "[[step]]\nop = \"push_back\"\nvalues = [1, 2]\nexepct = [9, 9]\n"
	if err := os.WriteFile(misspelled, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(misspelled); err == nil {
		t.Error("loading a script with an unknown key succeeded")
	}
}
