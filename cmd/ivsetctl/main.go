// Command ivsetctl is a small debug/demo CLI for the ivset library. It
// builds an IntervalSet[int64] from a sequence of offsetrange-grammar
// operations and prints the result after each step, so the set algebra in
// the library can be driven and inspected from a terminal without writing
// a Go program.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/quictools/ivset"
)

// config holds the optional settings ivsetctl reads from --config, using
// the same library (gopkg.in/yaml.v3) and shape abh-rrrgo's rrr-server
// config uses: a small struct whose defaults loadConfig fills in before
// reading the file.
type config struct {
	LogLevel string `yaml:"log_level"`
}

func loadConfig(path string) (config, error) {
	cfg := config{LogLevel: "info"}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// CLI is ivsetctl's command-line surface.
type CLI struct {
	Config string `help:"Optional YAML config file (log_level)." type:"path"`

	Union        []string `help:"Offset-range clause(s) to union into the set." placeholder:"RANGE"`
	Intersect    []string `help:"Offset-range clause(s) to intersect the set against." placeholder:"RANGE"`
	Difference   []string `help:"Offset-range clause(s) to subtract from the set." placeholder:"RANGE"`
	ComplementOf string    `help:"Complement the set relative to MIN,MAX." placeholder:"MIN,MAX"`

	Version kong.VersionFlag `short:"V" help:"Show version."`
}

func (c *CLI) Run(log *logrus.Logger) error {
	set := ivset.New[int64]()

	steps := []struct {
		op      string
		clauses []string
	}{
		{"union", c.Union},
		{"intersect", c.Intersect},
		{"difference", c.Difference},
	}

	for _, step := range steps {
		clauses := lo.Filter(step.clauses, func(clause string, _ int) bool {
			return clause != ""
		})
		for _, clause := range clauses {
			operand, err := ivset.ParseOffsetRange(clause)
			if err != nil {
				return fmt.Errorf("parsing %q: %w", clause, err)
			}
			switch step.op {
			case "union":
				set.Union(operand)
			case "intersect":
				set.Intersection(operand)
			case "difference":
				set.DifferenceSet(operand)
			}
			log.WithFields(logrus.Fields{
				"op":     step.op,
				"clause": clause,
				"result": set.String(),
			}).Info("ivsetctl: applied operation")
		}
	}

	if c.ComplementOf != "" {
		min, max, err := parseMinMax(c.ComplementOf)
		if err != nil {
			return err
		}
		set.Complement(min, max)
		log.WithFields(logrus.Fields{
			"op":     "complement",
			"bounds": c.ComplementOf,
			"result": set.String(),
		}).Info("ivsetctl: applied operation")
	}

	fmt.Println(set.String())
	return nil
}

func parseMinMax(s string) (int64, int64, error) {
	var min, max int64
	if _, err := fmt.Sscanf(s, "%d,%d", &min, &max); err != nil {
		return 0, 0, fmt.Errorf("invalid MIN,MAX %q: %w", s, err)
	}
	return min, max, nil
}

func main() {
	var cli CLI
	parser := kong.Parse(&cli, kong.Name("ivsetctl"),
		kong.Description("Drive github.com/quictools/ivset's set algebra from the command line."),
		kong.Vars{"version": "0.1.0"},
	)

	log := logrus.New()
	cfg, err := loadConfig(cli.Config)
	parser.FatalIfErrorf(err)
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	parser.FatalIfErrorf(cli.Run(log))
}
