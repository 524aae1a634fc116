// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/fixedstring/lib/ident"
	"github.com/bureau-foundation/fixedstring/lib/pathname"
	"github.com/bureau-foundation/fixedstring/lib/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Handle --version before flag parsing to match other binaries.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Println(versionString(os.Args[2:]))
		return 0
	}

	var kind string
	var manifestPath string
	var quiet bool

	flagSet := pflag.NewFlagSet("fixedstring-check", pflag.ContinueOnError)
	flagSet.StringVar(&kind, "kind", "", "grammar to validate against: filename, filepath, path, username, groupname")
	flagSet.StringVar(&manifestPath, "manifest", "", "YAML manifest of {value, kind} entries to validate")
	flagSet.BoolVarP(&quiet, "quiet", "q", false, "suppress per-value output, report via exit code only")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return 0
	}

	var entries []entry
	switch {
	case manifestPath != "":
		if kind != "" || flagSet.NArg() > 0 {
			fmt.Fprintf(os.Stderr, "error: --manifest cannot be combined with --kind or positional values\n")
			return 2
		}
		loaded, err := loadManifest(manifestPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 2
		}
		entries = loaded
	case kind != "":
		if flagSet.NArg() == 0 {
			fmt.Fprintf(os.Stderr, "error: --kind requires at least one value to validate\n")
			return 2
		}
		for _, value := range flagSet.Args() {
			entries = append(entries, entry{Value: value, Kind: kind})
		}
	default:
		fmt.Fprintf(os.Stderr, "error: either --kind or --manifest is required\n")
		printHelp(flagSet)
		return 2
	}

	invalid := 0
	for _, e := range entries {
		validate, err := validator(e.Kind)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 2
		}
		if err := validate([]byte(e.Value)); err != nil {
			invalid++
			if !quiet {
				fmt.Fprintf(os.Stderr, "invalid %s %q: %v\n", e.Kind, e.Value, err)
			}
			continue
		}
		if !quiet {
			fmt.Printf("ok %s %q\n", e.Kind, e.Value)
		}
	}

	if invalid > 0 {
		return 1
	}
	return 0
}

// versionString formats the --version output: the build summary by
// default, or the detailed form including Go version and platform when
// --full is also given.
func versionString(args []string) string {
	for _, argument := range args {
		if argument == "--full" {
			return "fixedstring-check " + version.Full()
		}
	}
	return "fixedstring-check " + version.Info()
}

// entry is one value to validate, paired with the grammar to validate
// it against.
type entry struct {
	Value string `yaml:"value"`
	Kind  string `yaml:"kind"`
}

// manifest is the YAML document shape accepted by --manifest.
type manifest struct {
	Entries []entry `yaml:"entries"`
}

func loadManifest(path string) ([]entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var doc manifest
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if len(doc.Entries) == 0 {
		return nil, fmt.Errorf("manifest %s contains no entries", path)
	}
	for i, e := range doc.Entries {
		if e.Kind == "" {
			return nil, fmt.Errorf("manifest %s: entry %d has no kind", path, i)
		}
	}
	return doc.Entries, nil
}

// validator maps a kind name to the constructor for that grammar. The
// constructors discard the built value; only the validation outcome
// matters here.
func validator(kind string) (func([]byte) error, error) {
	switch kind {
	case "filename":
		return func(value []byte) error {
			_, err := pathname.NewFileName(value)
			return err
		}, nil
	case "filepath":
		return func(value []byte) error {
			_, err := pathname.NewFilePath(value)
			return err
		}, nil
	case "path":
		return func(value []byte) error {
			_, err := pathname.NewPath(value)
			return err
		}, nil
	case "username":
		return func(value []byte) error {
			_, err := ident.NewUserName(value)
			return err
		}, nil
	case "groupname":
		return func(value []byte) error {
			_, err := ident.NewGroupName(value)
			return err
		}, nil
	default:
		return nil, fmt.Errorf("unknown kind %q (want filename, filepath, path, username, or groupname)", kind)
	}
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `fixedstring-check — validate identifier values against grammars.

Usage:
  fixedstring-check --kind KIND VALUE [VALUE...]
  fixedstring-check --manifest FILE

Manifest format (YAML):

  entries:
    - value: my-segment.shm
      kind: filename
    - value: /var/run/svc.sock
      kind: filepath

Exit codes:
  0  all values valid
  1  at least one value invalid
  2  usage error

Flags:
%s`, flagSet.FlagUsages())
}
