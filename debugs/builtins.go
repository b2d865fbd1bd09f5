package debugs

import (
	"github.com/reusee/vana/vanalang"
	"go.starlark.net/starlark"
)

// builtins are predeclared in every tap.
func builtins() starlark.StringDict {
	return starlark.StringDict{
		"tokenize": starlark.NewBuiltin("tokenize", tokenizeBuiltin),
		"parse":    starlark.NewBuiltin("parse", parseBuiltin),
		"keywords": toStarlarkValue(keywordNames()),
	}
}

func tokenizeBuiltin(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var text string
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &text); err != nil {
		return nil, err
	}
	tokens, errs := vanalang.Tokenize(vanalang.NewSource("<tap>", text))
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return toStarlarkValue(tokens), nil
}

func parseBuiltin(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var text string
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &text); err != nil {
		return nil, err
	}
	nodes, err := vanalang.ParseAllSource(vanalang.NewSource("<tap>", text))
	if err != nil {
		return nil, err
	}
	return toStarlarkValue(nodes), nil
}

func keywordNames() map[string]any {
	ret := make(map[string]any)
	for word, kind := range vanalang.Keywords() {
		ret[word] = kind.String()
	}
	return ret
}
