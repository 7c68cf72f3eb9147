package stdlib

import (
	"github.com/akuukka/go-alisp/internal/eval"
	"github.com/akuukka/go-alisp/internal/reader"
)

// bootstrapSource is the convenience layer defined in terms of the
// native functions above, verbatim. setq is defined here too even
// though a setq special form already exists (eval's special form wins
// at dispatch, see evalCons) because the source program defines it
// this way; installing the macro anyway costs nothing and keeps this
// layer a faithful copy.
const bootstrapSource = `
(defun caar (c) (car (car c)))
(defun cadr (c) (nth 1 c))
(defun cdar (c) (cdr (car c)))
(defun cddr (c) (cdr (cdr c)))
(defun car-safe (o) (let ((x o)) (if (consp x) (car x) nil)))
(defun cdr-safe (o) (let ((x o)) (if (consp x) (cdr x) nil)))
(defmacro pop (l) (list 'prog1 (list 'car l) (list 'setq l (list 'cdr l))))
(defmacro push (e l) (list 'setq l (list 'cons e l)))
(defmacro setq (s v) (list 'set (list 'quote s) v))
`

// Bootstrap parses and evaluates bootstrapSource against e, installing
// the convenience layer above Install's native functions. Machine.New
// runs this whenever it is asked to initialize the standard library.
// ReadAll wraps the source's multiple top-level forms in an implicit
// progn, so one Eval call runs the whole thing.
func Bootstrap(e *eval.Evaluator) error {
	form, err := reader.ReadAll(bootstrapSource)
	if err != nil {
		return err
	}
	_, err = e.Eval(form)
	return err
}
