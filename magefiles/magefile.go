//go:build mage

// Package main contains Mage build targets for paper-tables developer tooling.
package main

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "paper-tables"
	cmdPkg  = "./cmd/paper-tables"

	papersCSV  = "papers.csv"
	readmeFile = "README.md"
	marker     = "<!-- TABLES_START -->"
)

const sampleCSV = `topic,title,authors,code,arxiv page,project page,summary
State Space Models,Mamba: Linear-Time Sequence Modeling with Selective State Spaces,"Albert Gu, Tri Dao",https://github.com/state-spaces/mamba,https://arxiv.org/abs/2312.00752,,Input-dependent SSM parameters with a hardware-aware scan.
`

// Init writes a starter papers.csv and a README.md carrying the marker token.
// Existing files are left untouched.
func Init() error {
	starters := map[string]string{
		papersCSV:  sampleCSV,
		readmeFile: "# Awesome Papers\n\n" + marker + "\n",
	}
	for name, content := range starters {
		if _, err := os.Stat(name); err == nil {
			fmt.Println("   exists:", name)
			continue
		}
		if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
			return fmt.Errorf("creating %s: %w", name, err)
		}
		fmt.Println("  ", name)
	}
	return nil
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests for all packages.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Tables regenerates the README tables from papers.csv.
func Tables() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "--csv", papersCSV, "--output", readmeFile)
}

// Stats prints non-blank Go line counts for production and test code.
func Stats() error {
	var prod, test int
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), "_") || d.Name() == binDir {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		n, err := countLines(path)
		if err != nil {
			return err
		}
		if strings.HasSuffix(path, "_test.go") {
			test += n
		} else {
			prod += n
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prod)
	fmt.Printf("Lines of code (Go, tests):      %d\n", test)
	return nil
}

// countLines returns the number of non-blank lines in the file at path.
func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	n := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			n++
		}
	}
	return n, sc.Err()
}
