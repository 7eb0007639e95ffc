// Package blaze2jsx compiles Blaze document trees into JSX.
package blaze2jsx

import (
	"fmt"

	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/compile"
	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/jsx"
	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/treeyaml"
)

// Options configures a Compiler.
type Options struct {
	// MaxDepth bounds the nesting of input trees; zero uses the default.
	MaxDepth int
}

// Compiler compiles trees with fixed options. It is safe for concurrent use.
type Compiler struct {
	c *compile.Compiler
}

func New(opts Options) *Compiler {
	return &Compiler{c: compile.New(compile.Options{MaxDepth: opts.MaxDepth})}
}

var std = New(Options{})

// Compile lowers a document tree to a JSX expression tree.
func (c *Compiler) Compile(tree any) (jsx.Node, error) {
	return c.c.Compile(tree)
}

// CompileToString compiles tree and prints it.
func (c *Compiler) CompileToString(tree any) (string, error) {
	n, err := c.c.Compile(tree)
	if err != nil {
		return "", err
	}
	return jsx.Print(n)
}

// CompileFile compiles a YAML document tree read from path into JSX source
// ending in a newline. path is only used in error messages.
func (c *Compiler) CompileFile(path string, src []byte) ([]byte, error) {
	tree, err := treeyaml.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	out, err := c.CompileToString(tree)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return []byte(out + "\n"), nil
}

func Compile(tree any) (jsx.Node, error) { return std.Compile(tree) }

func CompileToString(tree any) (string, error) { return std.CompileToString(tree) }

// CompileFile compiles YAML source with default options. The result is meant
// for writing to "<name>.jsx" next to "<name>.blaze.yaml".
func CompileFile(path string, src []byte) ([]byte, error) { return std.CompileFile(path, src) }
