/*
Generator for the per-language rule tables of package locale.

Rule tables are authored as YAML files in the rules/ sub-directory, one
file per language. The generator sorts all maps by source rune, computes
the derived flags (UnigramCJK, RequiresPeekAhead, NeedsSegmentation,
Fusable) and emits a single Go file "tables.go" into the locale package.

Usage

The generator has just one option, a "verbose" flag:

   generator [-v]

It is designed to be called from the locale/internal/generator directory
and writes ../../tables.go.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"
	"unicode/utf8"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/utils"
	"gopkg.in/yaml.v3"
)

var logger = log.New(os.Stderr, "locale generator: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

// ruleFile is the YAML schema of an authored rule table.
type ruleFile struct {
	Code       string     `yaml:"code"`
	Name       string     `yaml:"name"`
	Case       []pairRule `yaml:"case"`
	Fold       []foldRule `yaml:"fold"`
	Base       []pairRule `yaml:"base"`
	Diacritics []string   `yaml:"diacritics"`
	Peek       []peekRule `yaml:"peek"`
	Rules      []string   `yaml:"rules"`
}

type pairRule struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

type foldRule struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

type peekRule struct {
	First  string `yaml:"first"`
	Second string `yaml:"second"`
	Repl   string `yaml:"repl"`
}

// lang is the generator's working representation of one language entry,
// handed to the output template.
type lang struct {
	Code       string
	Name       string
	Case       []pair
	Fold       []fold
	Base       []pair
	Diacritics []rune
	Peek       []peek
	Rules      []string

	UnigramCJK        bool
	RequiresPeekAhead bool
	NeedsSegmentation bool
	Fusable           bool
}

type pair struct{ From, To rune }
type fold struct {
	From rune
	To   string
}
type peek struct {
	First, Second rune
	Repl          string
}

func main() {
	doVerbose := flag.Bool("v", false, "verbose generator output")
	flag.Parse()
	verbose = *doVerbose
	defer timeTrack(time.Now(), "generating locale tables")

	langs := loadRuleFiles("rules")
	emit(langs, filepath.Join("..", "..", "tables.go"))
}

// loadRuleFiles reads every YAML file in dir into a work list, sorted by
// language code for deterministic output.
func loadRuleFiles(dir string) *arraylist.List {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Fatal(err)
	}
	langs := arraylist.New()
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		if verbose {
			logger.Printf("reading %s", entry.Name())
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			log.Fatal(err)
		}
		var rf ruleFile
		if err := yaml.Unmarshal(data, &rf); err != nil {
			log.Fatalf("%s: %v", entry.Name(), err)
		}
		langs.Add(buildLang(rf))
	}
	langs.Sort(func(a, b interface{}) int {
		return utils.StringComparator(a.(lang).Code, b.(lang).Code)
	})
	return langs
}

// buildLang converts an authored rule file into a table entry: parses the
// rune spellings, sorts every map by source rune and computes the derived
// flags.
func buildLang(rf ruleFile) lang {
	l := lang{Code: rf.Code, Name: rf.Name, Rules: rf.Rules}
	for _, c := range rf.Case {
		l.Case = append(l.Case, pair{From: oneRune(c.From), To: oneRune(c.To)})
	}
	for _, f := range rf.Fold {
		l.Fold = append(l.Fold, fold{From: oneRune(f.From), To: f.To})
	}
	for _, b := range rf.Base {
		l.Base = append(l.Base, pair{From: oneRune(b.From), To: oneRune(b.To)})
	}
	for _, d := range rf.Diacritics {
		l.Diacritics = append(l.Diacritics, oneRune(d))
	}
	for _, p := range rf.Peek {
		l.Peek = append(l.Peek, peek{
			First:  oneRune(p.First),
			Second: oneRune(p.Second),
			Repl:   p.Repl,
		})
	}
	sort.Slice(l.Case, func(i, j int) bool { return l.Case[i].From < l.Case[j].From })
	sort.Slice(l.Fold, func(i, j int) bool { return l.Fold[i].From < l.Fold[j].From })
	sort.Slice(l.Base, func(i, j int) bool { return l.Base[i].From < l.Base[j].From })
	sort.Slice(l.Diacritics, func(i, j int) bool { return l.Diacritics[i] < l.Diacritics[j] })
	sort.Slice(l.Peek, func(i, j int) bool {
		if l.Peek[i].First != l.Peek[j].First {
			return l.Peek[i].First < l.Peek[j].First
		}
		return l.Peek[i].Second < l.Peek[j].Second
	})
	multi := false
	for _, f := range l.Fold {
		if utf8.RuneCountInString(f.To) > 1 {
			multi = true
		}
	}
	l.RequiresPeekAhead = len(l.Peek) > 0
	l.NeedsSegmentation = len(l.Rules) > 0
	l.Fusable = !multi && !l.RequiresPeekAhead
	for _, r := range l.Rules {
		if r == "cjk_unigram" {
			l.UnigramCJK = true
		}
	}
	return l
}

// oneRune parses a rune spelling, either a literal character or a
// "U+XXXX" escape.
func oneRune(s string) rune {
	if strings.HasPrefix(s, "U+") {
		var r rune
		if _, err := fmt.Sscanf(s, "U+%X", &r); err != nil {
			log.Fatalf("bad rune spelling %q: %v", s, err)
		}
		return r
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) {
		log.Fatalf("rune spelling %q is not a single character", s)
	}
	return r
}

func emit(langs *arraylist.List, path string) {
	out, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()
	var items []lang
	langs.Each(func(_ int, v interface{}) {
		items = append(items, v.(lang))
	})
	if err := tablesTemplate.Execute(out, items); err != nil {
		log.Fatal(err)
	}
	if verbose {
		logger.Printf("wrote %s with %d language(s)", path, len(items))
	}
}

func timeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	if verbose {
		logger.Printf("%s took %s", name, elapsed)
	}
}

// --- Output template --------------------------------------------------

var funcs = template.FuncMap{
	"runelit": func(r rune) string {
		if r <= 0x20 || (r >= 0x300 && r <= 0x36F) {
			return fmt.Sprintf("0x%04X", r)
		}
		return fmt.Sprintf("%q", r)
	},
	"rulemask": func(rules []string) string {
		var parts []string
		for _, r := range rules {
			switch r {
			case "western_to_script":
				parts = append(parts, "WesternToScript")
			case "script_to_western":
				parts = append(parts, "ScriptToWestern")
			case "cjk_unigram":
				parts = append(parts, "CJKIdeographUnigram")
			default:
				log.Fatalf("unknown segment rule %q", r)
			}
		}
		return strings.Join(parts, " | ")
	},
}

var tablesTemplate = template.Must(template.New("tables").Funcs(funcs).Parse(
	`package locale

// Code generated by locale/internal/generator from rules/*.yaml. DO NOT EDIT.

// langNames maps language codes to display names.
var langNames = map[string]string{
{{- range .}}
	"{{.Code}}": "{{.Name}}",
{{- end}}
}

// langTable maps language codes to their rule tables. All slice fields
// are sorted by source rune.
var langTable = map[string]*LangEntry{
{{- range .}}
	"{{.Code}}": {
{{- if .Case}}
		CaseMap: []RunePair{
{{- range .Case}}
			{From: {{runelit .From}}, To: {{runelit .To}}},
{{- end}}
		},
{{- end}}
{{- if .Fold}}
		FoldMap: []FoldEntry{
{{- range .Fold}}
			{From: {{runelit .From}}, To: {{printf "%q" .To}}},
{{- end}}
		},
{{- end}}
{{- if .Base}}
		BaseMap: []RunePair{
{{- range .Base}}
			{From: {{runelit .From}}, To: {{runelit .To}}},
{{- end}}
		},
{{- end}}
{{- if .Diacritics}}
		Diacritics: []rune{
{{- range .Diacritics}}
			{{runelit .}},
{{- end}}
		},
{{- end}}
{{- if .Peek}}
		PeekPairs: []PeekPair{
{{- range .Peek}}
			{First: {{runelit .First}}, Second: {{runelit .Second}}, Repl: {{printf "%q" .Repl}}},
{{- end}}
		},
{{- end}}
{{- if .Rules}}
		Rules: {{rulemask .Rules}},
{{- end}}
{{- if .UnigramCJK}}
		UnigramCJK: true,
{{- end}}
{{- if .RequiresPeekAhead}}
		RequiresPeekAhead: true,
{{- end}}
{{- if .NeedsSegmentation}}
		NeedsSegmentation: true,
{{- end}}
{{- if .Fusable}}
		Fusable: true,
{{- end}}
	},
{{- end}}
}
`))
