package main

import (
	"github.com/spf13/cobra"

	"github.com/polyguard/protect-cli/internal/client"
	"github.com/polyguard/protect-cli/internal/config"
	"github.com/polyguard/protect-cli/internal/dispatch"
	"github.com/polyguard/protect-cli/internal/files"
	"github.com/polyguard/protect-cli/internal/logger"
	"github.com/polyguard/protect-cli/models"
)

// debugEnabled is set once the configuration is resolved so main can decide
// how much of a failure to print.
var debugEnabled bool

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "protect [options] <file-or-glob ...>",
		Short: "Protect source files with the remote protection service",
		Long: "protect resolves its configuration from flags, an optional JSON config\n" +
			"file and built-in defaults, expands the given glob patterns into a file\n" +
			"list and either protects those files or downloads the source maps of an\n" +
			"existing protection (-m).",
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	config.RegisterFlags(cmd)
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	envCfg, err := config.ParseEnv()
	if err != nil {
		return err
	}

	flagLayer, configPath, err := config.LayerFromFlags(cmd.Flags(), args)
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(flagLayer, configPath)
	if err != nil {
		return err
	}

	debugEnabled = cfg.DebugMode || envCfg.Debug
	log := logger.NewCLILogger("protect", debugEnabled)

	matched, err := files.Resolve(cfg.FilesSrc, files.Options{
		Werror: cfg.WerrorEnabled(),
		Cwd:    cfg.Cwd,
		Log:    log,
	})
	if err != nil {
		return err
	}

	svc := client.New(client.Config{
		BaseURL: client.BaseURL(models.Connection{
			Host:     cfg.Host,
			Port:     cfg.Port,
			Protocol: cfg.Protocol,
		}),
		Keys:   models.Keys{AccessKey: cfg.AccessKey, SecretKey: cfg.SecretKey},
		CAFile: cfg.CAFile,
		Proxy:  cfg.Proxy,
	}, log)

	return dispatch.New(svc, log).Dispatch(cmd.Context(), cfg, matched)
}
