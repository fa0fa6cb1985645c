// Package wgslconv lowers WGSL pipeline shaders to GLSL so they can be
// cached and emitted like hand-written GLSL stages.
package wgslconv

import (
	"errors"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/glsl"
	"github.com/gogpu/naga/ir"

	"github.com/gogpu/glexport/internal/lru"
)

var (
	// ErrTranslate wraps every failure to turn WGSL into GLSL.
	ErrTranslate = errors.New("wgslconv: translation failed")

	// ErrNoEntryPoint is returned when a required stage has no entry point.
	ErrNoEntryPoint = errors.New("wgslconv: entry point not found")
)

// Entries names the WGSL entry points to compile.
// An empty name selects the first entry point of that stage.
type Entries struct {
	Vertex   string
	Fragment string
}

// Result holds the GLSL source of both stages.
type Result struct {
	Vertex   string
	Fragment string
}

type request struct {
	source  string
	entries Entries
}

// translations memoizes successful translations. Pipelines commonly share
// one WGSL module.
var translations = lru.New[request, Result](lru.DefaultCapacity)

// Translate parses and lowers a WGSL module once and compiles its vertex and
// fragment entry points to GLSL 3.30 core. Results are cached per source and
// entry point pair.
func Translate(source string, entries Entries) (Result, error) {
	return translations.GetOrCreate(request{source, entries}, func() (Result, error) {
		return translate(source, entries)
	})
}

// CacheStats returns the counters of the translation cache.
func CacheStats() lru.Stats {
	return translations.Stats()
}

func translate(source string, entries Entries) (Result, error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrTranslate, err)
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrTranslate, err)
	}

	vertex, err := compileStage(module, ir.StageVertex, entries.Vertex)
	if err != nil {
		return Result{}, err
	}
	fragment, err := compileStage(module, ir.StageFragment, entries.Fragment)
	if err != nil {
		return Result{}, err
	}
	return Result{Vertex: vertex, Fragment: fragment}, nil
}

func compileStage(module *ir.Module, stage ir.ShaderStage, name string) (string, error) {
	ep, ok := findEntryPoint(module, stage, name)
	if !ok {
		if name == "" {
			return "", fmt.Errorf("%w: no %s entry point", ErrNoEntryPoint, stageName(stage))
		}
		return "", fmt.Errorf("%w: %q (%s)", ErrNoEntryPoint, name, stageName(stage))
	}

	src, _, err := glsl.Compile(module, glsl.Options{
		LangVersion:        glsl.Version330,
		EntryPoint:         ep,
		ForceHighPrecision: true,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s entry point %q: %w", ErrTranslate, stageName(stage), ep, err)
	}
	return src, nil
}

func findEntryPoint(module *ir.Module, stage ir.ShaderStage, name string) (string, bool) {
	for _, ep := range module.EntryPoints {
		if ep.Stage != stage {
			continue
		}
		if name == "" || ep.Name == name {
			return ep.Name, true
		}
	}
	return "", false
}

func stageName(stage ir.ShaderStage) string {
	switch stage {
	case ir.StageVertex:
		return "vertex"
	case ir.StageFragment:
		return "fragment"
	default:
		return "compute"
	}
}
