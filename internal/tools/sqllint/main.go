// Command sqllint checks that every SQL constant carries a unique
// "--sql <uuid>" audit marker on its first line.
package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	sqlPattern    = regexp.MustCompile(`(?i)\b(select|insert|update|delete|with|create)\b`)
	markerPattern = regexp.MustCompile(`^--sql ([0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12})$`)
)

type violation struct {
	pos     token.Position
	name    string
	message string
}

func main() {
	flag.Parse()
	targets := flag.Args()
	if len(targets) == 0 {
		targets = []string{"internal/sqlinline"}
	}
	os.Exit(run(targets, os.Stderr))
}

func run(targets []string, stderr io.Writer) int {
	violations, err := lint(targets)
	if err != nil {
		fmt.Fprintf(stderr, "sqllint: %v\n", err)
		return 2
	}
	if len(violations) == 0 {
		return 0
	}
	fmt.Fprintln(stderr, "sqllint: SQL audit marker problems")
	for _, v := range violations {
		fmt.Fprintf(stderr, "  %s:%d %s (%s)\n", v.pos.Filename, v.pos.Line, v.message, v.name)
	}
	return 1
}

func lint(targets []string) ([]violation, error) {
	fset := token.NewFileSet()
	seen := map[string]string{}
	var out []violation
	for _, target := range targets {
		err := filepath.WalkDir(target, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != target && (strings.HasPrefix(d.Name(), ".") || d.Name() == "testdata" || d.Name() == "_examples") {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) != ".go" || strings.HasSuffix(path, "_test.go") {
				return nil
			}
			vs, err := lintFile(fset, path, seen)
			if err != nil {
				return err
			}
			out = append(out, vs...)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// lintFile reports string constants that look like SQL but lack a valid
// marker, and markers already used elsewhere (tracked in seen).
func lintFile(fset *token.FileSet, path string, seen map[string]string) ([]violation, error) {
	file, err := parser.ParseFile(fset, path, nil, 0)
	if err != nil {
		return nil, err
	}
	var out []violation
	ast.Inspect(file, func(n ast.Node) bool {
		spec, ok := n.(*ast.ValueSpec)
		if !ok {
			return true
		}
		for i, value := range spec.Values {
			lit, ok := value.(*ast.BasicLit)
			if !ok || lit.Kind != token.STRING {
				continue
			}
			raw, err := unquote(lit.Value)
			if err != nil || !sqlPattern.MatchString(raw) {
				continue
			}
			name := "_"
			if i < len(spec.Names) {
				name = spec.Names[i].Name
			}
			pos := fset.Position(lit.Pos())
			m := markerPattern.FindStringSubmatch(firstLine(raw))
			if m == nil {
				out = append(out, violation{pos: pos, name: name, message: "missing or invalid --sql <uuid> marker"})
				continue
			}
			if prev, dup := seen[m[1]]; dup {
				out = append(out, violation{pos: pos, name: name, message: "marker already used by " + prev})
				continue
			}
			seen[m[1]] = name
		}
		return true
	})
	return out, nil
}

func firstLine(s string) string {
	s = strings.TrimLeft(s, "\n\r \t")
	if idx := strings.IndexAny(s, "\n\r"); idx >= 0 {
		return strings.TrimSpace(s[:idx])
	}
	return strings.TrimSpace(s)
}

func unquote(v string) (string, error) {
	if strings.HasPrefix(v, "`") {
		return strings.Trim(v, "`"), nil
	}
	return strconv.Unquote(v)
}
