package config

import (
	"os"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// File mirrors config.yaml.
type File struct {
	LeagueID  int64         `yaml:"league_id" validate:"required,gt=0"`
	SeasonID  int           `yaml:"season_id" validate:"required,gte=2018"`
	WeeklyPot WeeklyPotFile `yaml:"weekly_pot"`
}

type WeeklyPotFile struct {
	Payout               *float64 `yaml:"payout" validate:"required,gte=0"`
	Participants         []string `yaml:"participants" validate:"min=1,dive,required"`
	ValidateParticipants bool     `yaml:"validate_participants"`
	CurrencySymbol       string   `yaml:"currency_symbol"`
}

var fileValidator = validator.New()

func readFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return File{}, crerr.Newf("config file %s not found; copy config.example.yaml and set league_id, season_id and weekly_pot", path)
		}
		return File{}, crerr.Wrapf(err, "read config %s", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return File{}, crerr.Wrapf(err, "parse config %s", path)
	}
	file.normalize()

	if err := fileValidator.Struct(file); err != nil {
		return File{}, crerr.Wrapf(err, "validate config %s", path)
	}
	return file, nil
}

// normalize lowercases and trims participants, dropping blanks and repeats.
func (f *File) normalize() {
	seen := make(map[string]struct{}, len(f.WeeklyPot.Participants))
	out := make([]string, 0, len(f.WeeklyPot.Participants))
	for _, name := range f.WeeklyPot.Participants {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	f.WeeklyPot.Participants = out
	f.WeeklyPot.CurrencySymbol = strings.TrimSpace(f.WeeklyPot.CurrencySymbol)
}
