package hcl_adapter

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cianwilson/TerraFERMA/internal/bucket"
	"github.com/cianwilson/TerraFERMA/internal/ctxlog"
	"github.com/cianwilson/TerraFERMA/internal/fsutil"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// Extension is the file extension searched for in options directories.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	env map[string]string
}

// NewLoader creates a loader whose env object mirrors the process environment.
func NewLoader() *Loader {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = v
		}
	}
	return NewLoaderWithEnv(env)
}

// NewLoaderWithEnv creates a loader with a fixed env object.
func NewLoaderWithEnv(env map[string]string) *Loader {
	return &Loader{env: env}
}

// pendingMesh is a system whose mesh reference can only be resolved once
// every file has been read.
type pendingMesh struct {
	system *bucket.System
	rng    hcl.Range
}

// Load parses every options file found under paths and merges their blocks,
// in file order, into one bucket.
func (l *Loader) Load(ctx context.Context, paths ...string) (*bucket.Bucket, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, Extension)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s files found in %s", Extension, strings.Join(paths, ", "))
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	b := bucket.New()
	b.VisElement = bucket.VisElement{Family: "CG", Degree: 1}

	parser := hclparse.NewParser()
	evalCtx := l.evalContext()

	var (
		diags      hcl.Diagnostics
		visualSeen *hcl.Range
		meshRanges = make(map[string]hcl.Range)
		pending    []pendingMesh
	)

	for _, file := range files {
		hclFile, parseDiags := parser.ParseHCLFile(file)
		if parseDiags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, parseDiags)
		}

		content, contentDiags := hclFile.Body.Content(rootSchema)
		diags = append(diags, contentDiags...)

		if attr, ok := content.Attributes["cpp_libraries"]; ok {
			var libs []string
			diags = append(diags, gohcl.DecodeExpression(attr.Expr, evalCtx, &libs)...)
			b.CppLibraries = append(b.CppLibraries, libs...)
		}

		vis, visDiags := findUniqueBlock(content.Blocks, "visualization")
		diags = append(diags, visDiags...)
		if vis != nil {
			if visualSeen != nil {
				diags = append(diags, duplicateBlock("visualization", vis, visualSeen))
			} else {
				visualSeen = &vis.DefRange
				var v hclVisualization
				diags = append(diags, gohcl.DecodeBody(vis.Body, evalCtx, &v)...)
				b.VisElement = translateVisualization(&v)
			}
		}

		for _, block := range content.Blocks {
			switch block.Type {
			case "mesh":
				var m hclMesh
				diags = append(diags, gohcl.DecodeBody(block.Body, evalCtx, &m)...)
				name := block.Labels[0]
				if !b.AddMesh(name, m.Cell) {
					prev := meshRanges[name]
					diags = append(diags, &hcl.Diagnostic{
						Severity: hcl.DiagError,
						Summary:  "Duplicate mesh",
						Detail:   fmt.Sprintf("A mesh named %q was already declared at %s.", name, prev.String()),
						Subject:  block.DefRange.Ptr(),
					})
					continue
				}
				meshRanges[name] = block.DefRange

			case "system":
				var s hclSystem
				bodyDiags := gohcl.DecodeBody(block.Body, evalCtx, &s)
				diags = append(diags, bodyDiags...)
				if bodyDiags.HasErrors() {
					continue
				}
				sys, sysDiags := translateSystem(block, &s)
				diags = append(diags, sysDiags...)
				b.AddSystem(sys)
				if sys.Mesh != "" {
					pending = append(pending, pendingMesh{system: sys, rng: block.DefRange})
				}
			}
		}
	}

	for _, p := range pending {
		if b.Mesh(p.system.Mesh) == nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unknown mesh",
				Detail:   fmt.Sprintf("System %q refers to mesh %q, which is not declared.", p.system.Name, p.system.Mesh),
				Subject:  p.rng.Ptr(),
			})
		}
	}

	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to load options: %w", diags)
	}

	logger.Debug("HCL loading complete.", "meshes", len(b.Meshes), "systems", len(b.Systems))
	return b, nil
}

// evalContext exposes a few string functions and the env object to option
// expressions.
func (l *Loader) evalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value, len(l.env))
	for k, v := range l.env {
		env[k] = cty.StringVal(v)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
		Functions: map[string]function.Function{
			"upper":  stdlib.UpperFunc,
			"lower":  stdlib.LowerFunc,
			"join":   stdlib.JoinFunc,
			"format": stdlib.FormatFunc,
			"concat": stdlib.ConcatFunc,
		},
	}
}

// findUniqueBlock returns the only block of the given type in blocks, or a
// diagnostic for every extra one.
func findUniqueBlock(blocks hcl.Blocks, name string) (*hcl.Block, hcl.Diagnostics) {
	var found *hcl.Block
	var diags hcl.Diagnostics

	for _, block := range blocks {
		if block.Type == name {
			if found != nil {
				diags = append(diags, duplicateBlock(name, block, &found.DefRange))
				continue
			}
			found = block
		}
	}

	return found, diags
}

func duplicateBlock(name string, block *hcl.Block, first *hcl.Range) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Duplicate \"" + name + "\" block",
		Detail:   fmt.Sprintf("Only one %q block is allowed; the first one is at %s.", name, first.String()),
		Subject:  block.DefRange.Ptr(),
	}
}
