package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mdm/lexical-numbers/internal/config"
	"github.com/mdm/lexical-numbers/internal/logging"
	"github.com/mdm/lexical-numbers/lexical"
)

// app carries state shared by subcommands once flags are parsed.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	logFormat  string

	cfg *config.Config
	log *logrus.Logger
}

func (a *app) logger(module string) *logrus.Entry {
	return logging.Module(a.log, module)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "lexsort",
		Short:         "Order integers by their English names",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (overrides config)")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json (overrides config)")

	root.AddCommand(newSortCmd(a), newNameCmd(a), newParseCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}

	log, err := logging.New(a.stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	a.cfg, a.log = cfg, log
	return nil
}

func newSortCmd(a *app) *cobra.Command {
	var (
		start, count uint64
		output       string
		numeric      bool
	)

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Print a range of integers sorted by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fs := cmd.Flags()
			if fs.Changed("start") {
				a.cfg.Start = start
			}
			if fs.Changed("count") {
				a.cfg.Count = count
			}
			if fs.Changed("output") {
				a.cfg.Output = output
			}
			if fs.Changed("numeric") {
				a.cfg.Numeric = numeric
			}
			if err := a.cfg.Validate(); err != nil {
				return errors.Wrap(err, "invalid settings")
			}
			return a.runSort()
		},
	}

	fs := cmd.Flags()
	fs.Uint64Var(&start, "start", 0, "first integer of the range")
	fs.Uint64Var(&count, "count", 0, "number of integers in the range")
	fs.StringVar(&output, "output", config.OutputText, "output format: text or json")
	fs.BoolVar(&numeric, "numeric", false, "prefix each name with its value")
	return cmd
}

// sortedEntry is one line of sort output.
type sortedEntry struct {
	Value uint64         `json:"value"`
	Name  lexical.Number `json:"name"`
}

func (a *app) runSort() error {
	values := a.cfg.Values()
	lexical.Sort(values)

	a.logger("sort").WithFields(logrus.Fields{
		"start": a.cfg.Start,
		"count": a.cfg.Count,
	}).Debug("sorted range by name")

	if a.cfg.Output == config.OutputJSON {
		entries := make([]sortedEntry, len(values))
		for i, v := range values {
			entries[i] = sortedEntry{Value: v, Name: lexical.New(v)}
		}
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(entries), "write json")
	}

	for _, v := range values {
		var err error
		if a.cfg.Numeric {
			_, err = fmt.Fprintf(a.stdout, "%s\t%s\n", humanize.BigComma(new(big.Int).SetUint64(v)), lexical.New(v))
		} else {
			_, err = fmt.Fprintln(a.stdout, lexical.New(v))
		}
		if err != nil {
			return errors.Wrap(err, "write output")
		}
	}
	return nil
}

const nameLong = `Print the English name of each integer.

Arguments starting with '-' are read as flags; put them after "--",
e.g. lexsort name -- -5.`

func newNameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "name [--] <integer>...",
		Short: "Print the English name of each integer",
		Long:  nameLong,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			log := a.logger("name")
			for _, arg := range args {
				v, ok := new(big.Int).SetString(strings.ReplaceAll(arg, "_", ""), 10)
				if !ok {
					return errors.Errorf("invalid integer %q", arg)
				}
				name, err := lexical.FormatBig(v)
				if err != nil {
					log.WithError(err).WithField("value", arg).Warn("value has no name")
					return errors.Wrapf(err, "name %s", arg)
				}
				if _, err := fmt.Fprintln(a.stdout, name); err != nil {
					return errors.Wrap(err, "write output")
				}
			}
			return nil
		},
	}
}

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <words>...",
		Short: "Print the integer named by the words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			v, err := lexical.Parse(text)
			if err != nil {
				return errors.Wrapf(err, "parse %q", text)
			}
			a.logger("parse").WithField("value", v).Debug("parsed name")
			_, err = fmt.Fprintln(a.stdout, v)
			return errors.Wrap(err, "write output")
		},
	}
}
