// Package stdlib is the built-in library: the native functions named
// throughout spec §8's end-to-end scenarios (arithmetic, list and
// sequence access, predicates, strings, symbols, error signaling) plus
// the bootstrap program of §6, installed into a fresh symtab.Table the
// same way a defun would install a user function.
//
// Grounded on original_source's per-concern Machine::init*Functions
// methods (MathFunctions.cpp, ListFunctions.cpp, SequenceFunctions.cpp,
// StringFunctions.cpp, SymbolFunctions.cpp, Error.cpp, MacroFunctions.cpp),
// ported from FArgs-driven native closures to internal/builtin's
// declarative Builtin{Name, MinArgs, MaxArgs, Fn} table, the pattern
// pkg/math/pkg.go and pkg/list/list.go use for CUE's own built-ins.
package stdlib

import (
	"github.com/akuukka/go-alisp/internal/builtin"
	"github.com/akuukka/go-alisp/internal/eval"
	"github.com/akuukka/go-alisp/internal/symtab"
)

// Install registers every native function this package provides into
// table, and registers macroexpand/macroexpand-1 against e (they need
// the evaluator's own macro-expansion step, not just value-level
// primitives). Call Bootstrap afterward to additionally define the
// small convenience layer of §6 in terms of these natives.
//
// The returned MessageSink is message's output target; the Machine
// facade keeps it and rewires Handler for SetMessageHandler.
func Install(table *symtab.Table, e *eval.Evaluator) *MessageSink {
	reg := builtin.NewRegistry()
	trueSym := table.Intern("t")
	sink := &MessageSink{}

	addArithmetic(reg, trueSym)
	addPredicates(reg, trueSym)
	addListFunctions(reg, trueSym)
	addSequenceFunctions(reg)
	addStringFunctions(reg)
	addSymbolFunctions(reg, table)
	addErrorFunctions(reg, sink)

	reg.Install(table)
	installMacroExpansion(table, e)
	return sink
}
