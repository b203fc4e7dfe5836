// Package plan loads the day plan: the ordered task list shown as the belt.
package plan

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"daybelt/internal/domain"
	"daybelt/internal/errors"
	"daybelt/internal/logging"
	"daybelt/internal/validation"
)

const (
	DefaultTitle   = "🚂 Liz’s No-Decisions Day Plan"
	DefaultCaption = "One conveyor belt. Zero decisions. Check the box and roll."
	DefaultTip     = "Tip: point BELT_PLAN at a YAML or TOML file to change your schedule. Keep it tiny, keep it moving. 💪"
)

// searchNames are looked up in the data directory when no plan is configured.
var searchNames = []string{"plan.yaml", "plan.yml", "plan.toml"}

// Plan is a titled, ordered list of tasks.
type Plan struct {
	Title   string        `yaml:"title" toml:"title"`
	Caption string        `yaml:"caption" toml:"caption"`
	Tip     string        `yaml:"tip" toml:"tip"`
	Tasks   []domain.Task `yaml:"tasks" toml:"tasks"`

	// Source is the file the plan came from, empty for the built-in plan.
	Source string `yaml:"-" toml:"-"`
}

// Default returns the built-in schedule.
func Default() *Plan {
	return &Plan{
		Title:   DefaultTitle,
		Caption: DefaultCaption,
		Tip:     DefaultTip,
		Tasks: []domain.Task{
			domain.NewTask("10:00–10:20", "Quick living room pick up + vacuum phase 1"),
			domain.NewTask("10:20–10:40", "Dishes"),
			domain.NewTask("10:40–11:00", "Laundry → switch/dry + fold one load"),
			domain.NewTask("11:00–11:20", "Half bath clean"),
			domain.NewTask("11:20–11:40", "Vacuum phase 2"),
			domain.NewTask("11:40–12:00", "Pay 2 credit cards"),
			domain.NewTask("12:00–12:30", "Financial plan (weekly saving math)"),
			domain.NewTask("12:30–13:00", "Walk Bo 🐾"),
			domain.NewTask("13:00–13:30", "Lunch"),
			domain.NewTask("13:30–14:00", "Master bath clean"),
			domain.NewTask("14:00–14:20", "Laundry → second load folded/put away"),
			domain.NewTask("14:20–14:40", "Vacuum phase 3"),
			domain.NewTask("14:40–15:00", "Fridge clean out"),
			domain.NewTask("15:00–15:30", "Wash bed sheets + start dryer"),
			domain.NewTask("15:30–16:00", "Easy name changes"),
			domain.NewTask("16:00–16:30", "Put stuff in new bookshelf upstairs"),
			domain.NewTask("16:30–17:00", "Errand → get drywall anchors"),
			domain.NewTask("17:00–17:30", "Hang carpet remnants for cats 🐈"),
			domain.NewTask("17:30–18:30", "Dinner + chill/reset"),
			domain.NewTask("18:30–19:30", "Project: Sunflower site OR Coffee trailer"),
			domain.NewTask("19:30–20:00", "Project: the other one / wrap-up"),
		},
	}
}

// Load reads and validates a plan file. The format follows the extension:
// .yaml/.yml or .toml. Missing title, caption or tip fall back to the
// built-in text.
func Load(path string, labelMaxLength int) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewPlanError(path, err)
	}

	p, err := Parse(data, formatOf(path))
	if err != nil {
		return nil, errors.NewPlanError(path, err)
	}
	p.Source = path

	pv := validation.NewPlanValidator(labelMaxLength)
	if err := pv.ValidateTasks(p.Tasks); err != nil {
		return nil, errors.NewPlanError(path, err)
	}
	for _, i := range pv.MalformedRanges(p.Tasks) {
		logging.Debugf("plan %s: task %d has unparseable time range %q; it will never be highlighted", path, i+1, p.Tasks[i].Time)
	}

	return p, nil
}

// Format names a plan file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return ""
	}
}

// Parse decodes plan bytes in the given format and fills in default text.
func Parse(data []byte, format Format) (*Plan, error) {
	var p Plan

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &p)
		if err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("parse toml: unknown key %q", undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("unsupported plan format %q: use .yaml, .yml or .toml", format)
	}

	if p.Title == "" {
		p.Title = DefaultTitle
	}
	if p.Caption == "" {
		p.Caption = DefaultCaption
	}
	if p.Tip == "" {
		p.Tip = DefaultTip
	}
	return &p, nil
}

// Resolve picks the plan to use: the configured path when set, otherwise the
// first plan file found in dataDir, otherwise the built-in plan.
func Resolve(configured, dataDir string, labelMaxLength int) (*Plan, error) {
	if configured != "" {
		return Load(configured, labelMaxLength)
	}

	for _, name := range searchNames {
		candidate := filepath.Join(dataDir, name)
		if _, err := os.Stat(candidate); err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, errors.NewPlanError(candidate, err)
		}
		return Load(candidate, labelMaxLength)
	}

	logging.Debugln("no plan file found; using the built-in plan")
	return Default(), nil
}
