package main

import (
	"github.com/fatih/color"
	desc "github.com/rmera/stereodesc"
	"github.com/rmera/stereodesc/desccache"
	"github.com/rmera/stereodesc/descjson"
	"github.com/rmera/stereodesc/descplot"
	"github.com/rmera/stereodesc/internal/config"
	"github.com/rmera/stereodesc/internal/logging"
	"github.com/rmera/stereodesc/rdkit"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const plotTitle = "Crippen cLogP vs. molecular weight"

func newReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [files...]",
		Short: "Describe molecules and classify their stereochemistry (default command)",
		Args:  cobra.ArbitraryArgs,
		RunE:  runReport,
	}
	addReportFlags(cmd)
	return cmd
}

func addReportFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("engine", config.EngineExec, "RDKit engine: exec (external Python) or minimallib (needs the rdkit build tag)")
	f.String("python", "python3", "Python interpreter with RDKit, for the exec engine")
	f.String("format", config.FormatText, "output format: text or json")
	f.Bool("summary", false, "print summary statistics after the report")
	f.String("plot", "", "save a scatter plot of CrippenClogP vs amw to this file (png, svg, pdf...)")
	f.String("cache", "", "SQLite file to cache descriptors in")
}

func runReport(cmd *cobra.Command, args []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}
	colored := cfg.Color && !color.NoColor
	log, err := logging.New(logging.Options{
		Level:   cfg.Log.Level,
		File:    cfg.Log.File,
		Console: cmd.ErrOrStderr(),
		Color:   colored,
	})
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck
	out := cmd.OutOrStdout()

	samples := desc.DefaultSamples()
	if len(args) > 0 {
		samples, err = desc.SamplesFromFiles(args...)
		if err != nil {
			if cfg.Format == config.FormatJSON {
				J := descjson.NewReport(nil, nil)
				J.Error = descjson.NewError("input", err)
				J.Send(out) //nolint:errcheck
			}
			return err
		}
	}

	engine, err := newEngine(cfg, log)
	if err != nil {
		return err
	}
	if cfg.Cache != "" {
		cache, err := desccache.Open(cfg.Cache, log)
		if err != nil {
			return err
		}
		defer cache.Close()
		cached := cache.Wrap(engine)
		defer func() {
			hits, misses := cached.Stats()
			log.Info("descriptor cache", zap.String("path", cfg.Cache), zap.Int("hits", hits), zap.Int("misses", misses))
		}()
		engine = cached
	}

	var rep *desc.Report
	if cfg.Format == config.FormatJSON {
		rep, err = desc.Run(engine, samples, desc.WithLogger(log))
		var sum *desc.Summary
		if cfg.Summary && err == nil {
			sum = desc.Summarize(rep.Entries)
		}
		J := descjson.NewReport(rep, sum)
		if err != nil {
			J.Error = descjson.NewError("run", err)
		}
		if err2 := J.Send(out); err2 != nil && err == nil {
			err = err2
		}
	} else {
		tw := desc.NewTextWriter(out, colored)
		rep, err = desc.Run(engine, samples, desc.WithLogger(log), desc.WithEntryFunc(tw.WriteEntry))
		if err == nil && cfg.Summary {
			err = tw.WriteSummary(desc.Summarize(rep.Entries))
		}
	}
	if err != nil {
		return err
	}
	if cfg.Plot != "" {
		if err := descplot.Scatter(rep.Entries, plotTitle, cfg.Plot); err != nil {
			return err
		}
		log.Info("plot saved", zap.String("file", cfg.Plot))
	}
	return nil
}

func newEngine(cfg *config.Config, log *zap.Logger) (desc.Engine, error) {
	if cfg.Engine == config.EngineMinimalLib {
		ml, err := rdkit.NewMinimalLib()
		if err != nil {
			return nil, err
		}
		return ml, nil
	}
	return rdkit.NewExec(cfg.Python, log), nil
}
