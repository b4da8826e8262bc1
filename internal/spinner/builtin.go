package spinner

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"
)

//go:embed assets/spinners.json
var builtinJSON []byte

var (
	builtinOnce sync.Once
	builtinReg  *Registry
	builtinErr  error
)

// Builtin returns the registry of embedded definitions. The embedded file
// is decoded once; a decode failure here is a packaging bug and is
// returned on every call.
func Builtin() (*Registry, error) {
	builtinOnce.Do(func() {
		defs, err := Decode(bytes.NewReader(builtinJSON), MatchStrict)
		if err != nil {
			builtinErr = fmt.Errorf("builtin spinner definitions are broken: %w", err)
			return
		}
		reg := NewRegistry()
		if err := reg.AddAll(defs); err != nil {
			builtinErr = fmt.Errorf("builtin spinner definitions are broken: %w", err)
			return
		}
		builtinReg = reg
	})
	return builtinReg, builtinErr
}

// DefaultName is the spinner used when neither config nor flags pick one.
const DefaultName = "dots"
