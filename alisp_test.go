package alisp_test

import (
	"strings"
	"testing"

	"github.com/rogpeppe/go-internal/txtar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akuukka/go-alisp"
)

// scenarioArchive holds spec §8's literal-input/literal-output end-to-
// end scenarios as a txtar fixture, one input/output file pair per
// scenario, generalizing the teacher's cuetxtar-driven fixture style
// down to a direct txtar.Parse (this repository has no separate
// fixture-loading harness to generalize to). The two scenarios that
// aren't an exact printed-output match (the approximate-float and
// division-by-zero halves of scenario 6) are exercised instead by
// cmd/alisp's --test runner, which checks a numeric tolerance and an
// error kind rather than a literal string.
const scenarioArchive = `
-- cyclic-list/input --
(progn (setq z (list 1 2 3)) (setcdr (cdr (cdr z)) (cdr z)) z)
-- cyclic-list/output --
(1 2 3 2 . #2)
-- self-cycle/input --
(let ((a (list 1))) (setcdr a a))
-- self-cycle/output --
(1 . #0)
-- make-list-sharing/input --
(progn (setq l (make-list 3 '(a b))) (eq (car l) (cadr l)))
-- make-list-sharing/output --
t
-- let-scope/input --
(let ((x 1) (y (+ 1 2))) (+ x y))
-- let-scope/output --
4
-- macro-expansion/input --
(defmacro inc (v) (list 'setq v (list '1+ v))) (setq x 1) (inc x)
-- macro-expansion/output --
2
`

func TestEndToEndScenarios(t *testing.T) {
	archive := txtar.Parse([]byte(scenarioArchive))
	inputs := map[string]string{}
	outputs := map[string]string{}
	for _, f := range archive.Files {
		content := strings.TrimSpace(string(f.Data))
		switch {
		case strings.HasSuffix(f.Name, "/input"):
			inputs[strings.TrimSuffix(f.Name, "/input")] = content
		case strings.HasSuffix(f.Name, "/output"):
			outputs[strings.TrimSuffix(f.Name, "/output")] = content
		}
	}
	require.NotEmpty(t, inputs)

	for name, src := range inputs {
		want, ok := outputs[name]
		require.True(t, ok, "scenario %s has no expected output", name)

		m, err := alisp.New(true)
		require.NoError(t, err)

		v, err := m.Evaluate(src)
		require.NoError(t, err, "scenario %s", name)
		assert.Equal(t, want, alisp.Print(v), "scenario %s", name)
	}
}
