// Package script drives fighters from tengo scripts. A script defines
// update(view, state) and returns a map with any of x, z, defend, jump,
// attack and special. state is a map kept between calls.
package script

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/automoto/brawlsim/components"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

const dispatchScript = `
__result = update(__view, __state)
`

// Controller runs one compiled script for one fighter.
type Controller struct {
	name     string
	compiled *tengo.Compiled
	state    *tengo.Map
}

// Compile prepares src for running. name is only used in errors.
func Compile(name string, src []byte) (*Controller, error) {
	script := tengo.NewScript([]byte(string(src) + "\n" + dispatchScript))
	_ = script.Add("__view", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	_ = script.Add("__result", nil)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile script %s: %w", name, err)
	}
	return &Controller{
		name:     name,
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

// Load reads and compiles the script at path in fsys.
func Load(fsys fs.FS, path string) (*Controller, error) {
	src, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("load script: %w", err)
	}
	return Compile(path, src)
}

// Clone returns a controller sharing the compiled code with fresh state.
func (c *Controller) Clone() *Controller {
	return &Controller{
		name:     c.name,
		compiled: c.compiled.Clone(),
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}
}

func (c *Controller) Name() string {
	return c.name
}

// Next runs update once and returns the controller state it asked for.
func (c *Controller) Next(v View) (components.ControlState, error) {
	if err := c.compiled.Set("__view", v.object()); err != nil {
		return components.ControlState{}, err
	}
	if err := c.compiled.Set("__state", c.state); err != nil {
		return components.ControlState{}, err
	}
	if err := c.compiled.Run(); err != nil {
		return components.ControlState{}, fmt.Errorf("run script %s: %w", c.name, err)
	}
	return controlStateOf(c.compiled.Get("__result").Object())
}

func controlStateOf(obj tengo.Object) (components.ControlState, error) {
	var fields map[string]tengo.Object
	switch v := obj.(type) {
	case *tengo.Map:
		fields = v.Value
	case *tengo.ImmutableMap:
		fields = v.Value
	case *tengo.Undefined, nil:
		return components.ControlState{}, nil
	default:
		return components.ControlState{}, fmt.Errorf("update returned %s, want a map", obj.TypeName())
	}

	var cs components.ControlState
	for key, val := range fields {
		switch strings.ToLower(key) {
		case "x":
			cs.XAxis = clampAxis(objectAsFloat(val))
		case "z":
			cs.ZAxis = clampAxis(objectAsFloat(val))
		case "defend":
			cs.Defend = !val.IsFalsy()
		case "jump":
			cs.Jump = !val.IsFalsy()
		case "attack":
			cs.Attack = !val.IsFalsy()
		case "special":
			cs.Special = !val.IsFalsy()
		}
	}
	return cs, nil
}

func objectAsFloat(obj tengo.Object) float64 {
	switch v := obj.(type) {
	case *tengo.Float:
		return v.Value
	case *tengo.Int:
		return float64(v.Value)
	case *tengo.Bool:
		if v.IsFalsy() {
			return 0
		}
		return 1
	}
	return 0
}

func clampAxis(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
