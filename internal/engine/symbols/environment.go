package symbols

import (
	"importprune/internal/core/errors"
	"importprune/internal/lang"
)

// Environment maps exposed module names to the symbol tables they publish.
// It is built once per analysis run and shared read-only between workers;
// nothing in the engine mutates it after construction.
type Environment map[lang.ModuleName]Table

// ResolveFunc is the collaborator primitive that combines module ASTs and
// resolves cross-module references into one environment. The actual
// name-resolution pass lives outside this core; callers inject it.
type ResolveFunc func(modules []*lang.Module) (Environment, error)

// BuildEnvironment resolves the exposed and internal modules of one package
// together and restricts the result to the exposed surface. Internal modules
// must take part in resolution (their declarations may be re-exported through
// an exposed module) but can never be imported by an external consumer, so
// their entries are deleted from the output.
//
// A resolution failure is surfaced as-is: analysis on a partial environment
// would produce false "unused" verdicts, which is worse than no answer.
func BuildEnvironment(resolve ResolveFunc, exposed, internal []*lang.Module) (Environment, error) {
	all := make([]*lang.Module, 0, len(exposed)+len(internal))
	all = append(all, exposed...)
	all = append(all, internal...)

	env, err := resolve(all)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeResolution, "resolve package modules")
	}

	for _, mod := range internal {
		delete(env, mod.Name)
	}
	return env, nil
}

// Known reports whether the environment carries information about the
// module. Imports of unknown modules are never touched: absence of evidence
// is not evidence of non-use.
func (e Environment) Known(module lang.ModuleName) bool {
	_, ok := e[module]
	return ok
}
