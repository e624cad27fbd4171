package pipeline

import (
	"fmt"
	"sync"

	"github.com/npillmayer/textnorm"
	"github.com/npillmayer/textnorm/casefold"
	"github.com/npillmayer/textnorm/diacritics"
	"github.com/npillmayer/textnorm/locale"
	"github.com/npillmayer/textnorm/punct"
	"github.com/npillmayer/textnorm/segword"
	"github.com/npillmayer/textnorm/strip"
	"github.com/npillmayer/textnorm/translit"
	"github.com/npillmayer/textnorm/unicodenorm"
	"github.com/npillmayer/textnorm/validate"
	"github.com/npillmayer/textnorm/whitespace"
	"github.com/npillmayer/textnorm/width"
)

// A Profile is a named stage recipe. Profiles carry stage names rather
// than stage instances, so they can be declared in configuration files
// and instantiated per locale.
type Profile struct {
	Name   string
	Stages []string
}

// Pipeline instantiates the profile for a language.
func (p *Profile) Pipeline(lang locale.Lang) (*Pipeline, error) {
	b := NewBuilder().Locale(lang)
	for _, name := range p.Stages {
		stage, err := StageByName(name)
		if err != nil {
			return nil, &textnorm.ProfileError{Profile: p.Name, Err: err}
		}
		b.AddStage(stage)
	}
	return b.Build(), nil
}

// Normalize instantiates the profile for lang and runs it over text.
// Errors are wrapped in a ProfileError naming the profile.
func (p *Profile) Normalize(text string, lang locale.Lang) (textnorm.Result, error) {
	pipe, err := p.Pipeline(lang)
	if err != nil {
		return textnorm.Result{}, err
	}
	res, err := pipe.Normalize(text)
	if err != nil {
		return textnorm.Result{}, &textnorm.ProfileError{Profile: p.Name, Err: err}
	}
	return res, nil
}

// NormalizeWithProfile looks up a registered profile by name and runs it
// over text for the given language.
func NormalizeWithProfile(name, text string, lang locale.Lang) (textnorm.Result, error) {
	p, err := ProfileByName(name)
	if err != nil {
		return textnorm.Result{}, err
	}
	return p.Normalize(text, lang)
}

// --- Built-in profiles ------------------------------------------------

// Search folds text for index and query normalization: aggressive case
// folding, diacritic removal and word segmentation.
var Search = &Profile{
	Name: "search",
	Stages: []string{
		"nfc", "width", "casefold", "diacritics", "segword", "whitespace",
	},
}

// WebScraping cleans text pulled from markup: control and format
// characters are dropped, typographic punctuation is simplified and
// whitespace is collapsed.
var WebScraping = &Profile{
	Name: "web_scraping",
	Stages: []string{
		"strip_controls", "strip_format", "punct", "whitespace",
	},
}

// Display tidies text for rendering without destroying case or
// diacritics.
var Display = &Profile{
	Name:   "display",
	Stages: []string{"nfc", "width", "whitespace"},
}

// --- Profile registry -------------------------------------------------

var (
	profileMu  sync.RWMutex
	profileMap = map[string]*Profile{
		Search.Name:      Search,
		WebScraping.Name: WebScraping,
		Display.Name:     Display,
	}
)

// RegisterProfile adds or replaces a profile in the registry.
func RegisterProfile(p *Profile) {
	profileMu.Lock()
	defer profileMu.Unlock()
	profileMap[p.Name] = p
}

// ProfileByName returns a registered profile.
func ProfileByName(name string) (*Profile, error) {
	profileMu.RLock()
	defer profileMu.RUnlock()
	p, ok := profileMap[name]
	if !ok {
		return nil, &textnorm.ProfileError{Profile: name, Err: errUnknownProfile}
	}
	return p, nil
}

var errUnknownProfile = fmt.Errorf("profile is not registered")

// StageByName instantiates a stage from its configuration name.
func StageByName(name string) (textnorm.Stage, error) {
	switch name {
	case "casefold":
		return casefold.New(), nil
	case "diacritics":
		return diacritics.New(), nil
	case "segword":
		return segword.New(), nil
	case "whitespace":
		return whitespace.Default(), nil
	case "width":
		return width.New(), nil
	case "punct":
		return punct.New(), nil
	case "strip_controls":
		return strip.NewControls(), nil
	case "strip_format":
		return strip.NewFormatControls(), nil
	case "nfc":
		return unicodenorm.NFC(), nil
	case "nfd":
		return unicodenorm.NFD(), nil
	case "nfkc":
		return unicodenorm.NFKC(), nil
	case "nfkd":
		return unicodenorm.NFKD(), nil
	case "translit":
		return translit.New(), nil
	case "validate_utf8":
		return validate.New(), nil
	}
	return nil, fmt.Errorf("unknown stage %q", name)
}
