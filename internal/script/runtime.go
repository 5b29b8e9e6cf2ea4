// Package script runs Lua drawing scripts against a pxl canvas.
//
// Scripts see a small set of globals (clear, line, rect, circle, text and
// so on) bound to one canvas. Execution runs under CPU and memory limits.
package script

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/arnodel/golua/lib"
	rt "github.com/arnodel/golua/runtime"

	"github.com/pxlforge/pxl"
)

// ErrResourceLimit is returned when a script exceeds its CPU or memory limit.
var ErrResourceLimit = errors.New("script: resource limit exceeded")

// Config contains configuration options for the Lua runtime.
type Config struct {
	// CPULimit is the CPU instruction limit for one execution.
	// 0 means unlimited.
	CPULimit uint64
	// MemoryLimit is the maximum memory in bytes a script may allocate.
	// 0 means unlimited.
	MemoryLimit uint64
	// Stdout receives Lua print output. If nil, output is discarded.
	Stdout io.Writer
}

// DefaultConfig returns 10,000,000 instructions, 32 MB and os.Stdout.
func DefaultConfig() Config {
	return Config{
		CPULimit:    10_000_000,
		MemoryLimit: 32 * 1024 * 1024,
		Stdout:      os.Stdout,
	}
}

// Runtime is a Lua state bound to one canvas. It is not safe for concurrent use.
type Runtime struct {
	config  Config
	runtime *rt.Runtime
	cleanup func()
	canvas  *pxl.Canvas
}

// New creates a runtime with the Lua standard libraries and the drawing
// globals registered against canvas.
func New(canvas *pxl.Canvas, config Config) (*Runtime, error) {
	if canvas == nil {
		return nil, errors.New("script: canvas cannot be nil")
	}
	stdout := config.Stdout
	if stdout == nil {
		stdout = io.Discard
	}

	r := rt.New(stdout)
	s := &Runtime{
		config:  config,
		runtime: r,
		cleanup: lib.LoadAll(r),
		canvas:  canvas,
	}
	s.registerFunctions()
	return s, nil
}

// Canvas returns the canvas the globals draw on.
func (s *Runtime) Canvas() *pxl.Canvas {
	return s.canvas
}

// ExecuteString compiles and runs a chunk of Lua code.
func (s *Runtime) ExecuteString(name, code string) error {
	return s.execute(name, []byte(code))
}

// ExecuteFile reads and runs a Lua file.
func (s *Runtime) ExecuteFile(path string) error {
	code, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("script: read %s: %w", path, err)
	}
	return s.execute(path, code)
}

func (s *Runtime) execute(name string, code []byte) (err error) {
	closure, err := s.runtime.CompileAndLoadLuaChunk(name, code, rt.TableValue(s.runtime.GlobalEnv()))
	if err != nil {
		return fmt.Errorf("script: load %s: %w", name, err)
	}

	s.runtime.PushContext(rt.RuntimeContextDef{
		HardLimits: rt.RuntimeResources{
			Cpu:    s.config.CPULimit,
			Memory: s.config.MemoryLimit,
		},
	})
	defer s.runtime.PopContext()

	// golua panics when a hard limit is hit.
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w in %s: %v", ErrResourceLimit, name, p)
		}
	}()

	if _, err := rt.Call1(s.runtime.MainThread(), rt.FunctionValue(closure)); err != nil {
		return fmt.Errorf("script: run %s: %w", name, err)
	}
	return nil
}

// setGoFunction registers fn as a global, declared safe under resource limits.
func (s *Runtime) setGoFunction(name string, fn rt.GoFunctionFunc, nArgs int, hasVarArgs bool) {
	goFunc := rt.NewGoFunction(fn, name, nArgs, hasVarArgs)
	rt.SolemnlyDeclareCompliance(rt.ComplyMemSafe|rt.ComplyCpuSafe, goFunc)
	s.runtime.GlobalEnv().Set(rt.StringValue(name), rt.FunctionValue(goFunc))
}

// Close releases the Lua state. The canvas is not touched.
func (s *Runtime) Close() error {
	if s.cleanup != nil {
		s.cleanup()
		s.cleanup = nil
	}
	return nil
}
