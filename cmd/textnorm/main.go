// textnorm CLI - locale-aware text normalization.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/pflag"

	"github.com/npillmayer/textnorm/locale"
	"github.com/npillmayer/textnorm/pipeline"
)

func main() {
	// Flags
	localeFlag := pflag.StringP("locale", "l", "", "IETF language tag (default: detect from environment)")
	profileFlag := pflag.StringP("profile", "p", "search", "Normalization profile (search, web_scraping, display)")
	configFlag := pflag.StringP("config", "c", "", "TOML file with additional profile definitions")
	stagesFlag := pflag.StringP("stages", "s", "", "Comma-separated stage list (overrides --profile)")
	quiet := pflag.BoolP("quiet", "q", false, "Print normalized text only")
	pflag.Parse()

	if *quiet {
		pterm.DisableOutput()
	}

	// Resolve the locale: explicit flag first, environment second.
	var ctx *locale.Context
	if *localeFlag != "" {
		ctx = locale.ContextFromLocale(*localeFlag)
	} else {
		ctx = locale.ContextFromEnvironment()
	}

	if *configFlag != "" {
		if _, err := pipeline.LoadProfiles(*configFlag); err != nil {
			fail(err)
		}
	}

	pipe, profileName, err := buildPipeline(ctx, *profileFlag, *stagesFlag)
	if err != nil {
		fail(err)
	}

	pterm.DefaultSection.Println("textnorm")
	pterm.DefaultTable.WithData([][]string{
		{"Locale", fmt.Sprintf("%s (%s)", ctx.Lang.Name, ctx.Lang.Code)},
		{"Profile", profileName},
		{"Fused", fmt.Sprintf("%t", pipe.Fused())},
	}).Render()
	fmt.Println()

	// Input: arguments joined, or stdin line by line.
	if pflag.NArg() > 0 {
		normalize(pipe, strings.Join(pflag.Args(), " "), *quiet)
		return
	}
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		normalize(pipe, scanner.Text(), *quiet)
	}
	if err := scanner.Err(); err != nil {
		fail(err)
	}
}

func buildPipeline(ctx *locale.Context, profile, stages string) (*pipeline.Pipeline, string, error) {
	if stages != "" {
		b := pipeline.NewBuilder().Context(ctx)
		for _, name := range strings.Split(stages, ",") {
			stage, err := pipeline.StageByName(strings.TrimSpace(name))
			if err != nil {
				return nil, "", err
			}
			b.AddStage(stage)
		}
		return b.Build(), "(custom)", nil
	}
	p, err := pipeline.ProfileByName(profile)
	if err != nil {
		return nil, "", err
	}
	pipe, err := p.Pipeline(ctx.Lang)
	if err != nil {
		return nil, "", err
	}
	return pipe, p.Name, nil
}

func normalize(pipe *pipeline.Pipeline, text string, quiet bool) {
	res, err := pipe.Normalize(text)
	if err != nil {
		fail(err)
	}
	if quiet {
		fmt.Println(res.String())
		return
	}
	tag := pterm.FgGreen.Sprint("borrowed")
	if res.IsOwned() {
		tag = pterm.FgYellow.Sprint("owned")
	}
	pterm.Printf("%s  %s\n", tag, res.String())
}

func fail(err error) {
	pterm.EnableOutput()
	pterm.Error.Println(err)
	os.Exit(1)
}
