package tools

import (
	"context"
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// scriptTimeout bounds a single script evaluation.
const scriptTimeout = 5 * time.Second

// invokeScript evaluates the tool's Lua source in a restricted state: only
// the base, table, string, and math libraries are opened, and the file
// loaders are removed, so scripts have no filesystem or network access.
// Parameters arrive in a global `params` table; the script's return value (or
// the `result` global) becomes the tool output.
func (r *Runner) invokeScript(ctx context.Context, def Definition, params map[string]string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, scriptTimeout)
	defer cancel()

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	L.SetContext(ctx)

	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
	for _, name := range []string{"dofile", "loadfile", "print"} {
		L.SetGlobal(name, lua.LNil)
	}

	tbl := L.NewTable()
	for k, v := range params {
		tbl.RawSetString(k, lua.LString(v))
	}
	L.SetGlobal("params", tbl)

	if err := L.DoString(def.Source); err != nil {
		return "", fmt.Errorf("script tool %q failed: %w", def.Name, err)
	}

	if L.GetTop() >= 1 {
		if ret := L.Get(-1); ret != lua.LNil {
			return lua.LVAsString(ret), nil
		}
	}
	if res := L.GetGlobal("result"); res != lua.LNil {
		return lua.LVAsString(res), nil
	}
	return "", nil
}
