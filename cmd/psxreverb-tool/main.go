// License: GPLv3 or later

// psxreverb-tool is a diagnostic CLI: it dumps the canonical register table
// for a preset as YAML, diffs two presets field by field, and offers an
// interactive raw-terminal mode that switches between presets by keypress
// (modeled on the teacher's terminal_host.go raw-mode keypress loop). That
// mode prints the selected preset's name; it plays no audio.
package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/nullwave/psxreverb"
	"github.com/nullwave/psxreverb/internal/presets"
)

func main() {
	dump := pflag.StringP("dump", "d", "", "dump one preset's register table as YAML")
	diffA := pflag.String("diff-a", "", "first preset to diff")
	diffB := pflag.String("diff-b", "", "second preset to diff")
	list := pflag.BoolP("list", "l", false, "list canonical preset names")
	interactive := pflag.BoolP("interactive", "i", false, "enter raw-terminal live preset-switch mode")
	pflag.Usage = func() {
		os.Stderr.WriteString("psxreverb-tool: inspect and audition PSX SPU reverb presets\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "psxreverb-tool"})

	switch {
	case *list:
		runList()
	case *dump != "":
		runDump(logger, *dump)
	case *diffA != "" && *diffB != "":
		runDiff(logger, *diffA, *diffB)
	case *interactive:
		runInteractive(logger)
	default:
		pflag.Usage()
		os.Exit(2)
	}
}

func runList() {
	for _, name := range presets.Names {
		fmt.Println(name)
	}
}

func runDump(logger *log.Logger, name string) {
	p, ok := presets.Lookup(name)
	if !ok {
		logger.Fatal("unknown preset", "name", name)
	}
	out, err := yaml.Marshal(p)
	if err != nil {
		logger.Fatal("marshal failed", "err", err)
	}
	os.Stdout.Write(out)
}

// runDiff prints every register field that differs between two presets,
// reflection-free: both presets are marshaled to YAML maps and compared key
// by key, since Preset carries no reflection-friendly tags of its own.
func runDiff(logger *log.Logger, nameA, nameB string) {
	a, ok := presets.Lookup(nameA)
	if !ok {
		logger.Fatal("unknown preset", "name", nameA)
	}
	b, ok := presets.Lookup(nameB)
	if !ok {
		logger.Fatal("unknown preset", "name", nameB)
	}

	mapA, err := toYAMLMap(a)
	if err != nil {
		logger.Fatal("marshal failed", "err", err)
	}
	mapB, err := toYAMLMap(b)
	if err != nil {
		logger.Fatal("marshal failed", "err", err)
	}

	keys := make([]string, 0, len(mapA))
	for k := range mapA {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Printf("# diff %s vs %s\n", nameA, nameB)
	for _, k := range keys {
		if fmt.Sprint(mapA[k]) != fmt.Sprint(mapB[k]) {
			fmt.Printf("%-10s %v -> %v\n", k, mapA[k], mapB[k])
		}
	}
}

func toYAMLMap(p presets.Preset) (map[string]any, error) {
	raw, err := yaml.Marshal(p)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// runInteractive puts the terminal in raw mode and lets the operator step
// through the ten canonical presets with the digit keys, printing the chosen
// preset's name after every switch. The register table is not printed and no
// audio is played. Press q to quit.
func runInteractive(logger *log.Logger) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logger.Fatal("failed to set raw mode", "err", err)
	}
	defer term.Restore(fd, oldState)

	idx := 0
	printCurrent(idx)

	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			time.Sleep(5 * time.Millisecond)
			continue
		}
		switch b := buf[0]; {
		case b == 'q' || b == 'Q' || b == 0x03:
			return
		case b >= '0' && b <= '9':
			digit := int(b - '0')
			next := (digit + 9) % 10 // '1'-'9' map to 0-8, '0' maps to 9
			idx = next
			printCurrent(idx)
		}
	}
}

func printCurrent(idx int) {
	name := presets.Names[idx]
	inst, err := psxreverb.NewInstance(name)
	if err != nil {
		return
	}
	inst.SetWet(1.0)
	fmt.Printf("\r\n-- now auditioning: %s --\r\n", name)
}
