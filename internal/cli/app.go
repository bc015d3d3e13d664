package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dmeister/py-github/internal/domain"
	"github.com/dmeister/py-github/internal/github"
	"github.com/dmeister/py-github/internal/infra/config"
	"github.com/dmeister/py-github/internal/infra/filefetcher"
	"github.com/dmeister/py-github/internal/infra/httpclient"
	"github.com/dmeister/py-github/internal/infra/logger"
	"github.com/dmeister/py-github/internal/ports"
	"github.com/dmeister/py-github/internal/render"
)

// app is the state built once per invocation from config, env and flags.
type app struct {
	opts  rootOptions
	flags *globalFlags

	cfg     domain.Config
	client  *github.Client
	cleanup func() error
}

func (a *app) init(cmd *cobra.Command) error {
	wd := a.opts.workDir
	if wd == "" {
		var err error
		if wd, err = os.Getwd(); err != nil {
			wd = "."
		}
	}

	cfg, cfgPath, err := config.LoadOrDefault(a.flags.configPath, wd)
	if err != nil {
		return err
	}
	cfg = config.ApplyEnv(cfg, a.opts.getenv)
	a.applyFlags(&cfg)
	if err := config.Validate(cfg); err != nil {
		return err
	}
	a.cfg = cfg

	lc := logger.Config{Path: cfg.Log.Path, Level: cfg.Log.Level, Debug: a.flags.debug}
	if lc.Path == "" {
		lc.Writer = cmd.ErrOrStderr()
	}
	cleanup, err := logger.Setup(lc)
	if err != nil {
		return &domain.OpError{Op: "cli.init", Kind: domain.KindInvalidConfig, Path: cfg.Log.Path, Err: err}
	}
	a.cleanup = cleanup
	logger.L().Debug("cli.config", "path", cfgPath, "base_url", cfg.API.BaseURL, "authenticated", cfg.API.Authenticated())

	a.client = github.New(
		github.WithFetcher(a.fetcher()),
		github.WithBaseURL(cfg.API.BaseURL),
		github.WithAuth(cfg.API.Login, cfg.API.Token),
		github.WithLogger(logger.L()),
	)
	return nil
}

func (a *app) applyFlags(cfg *domain.Config) {
	f := a.flags
	if f.login != "" {
		cfg.API.Login = f.login
	}
	if f.token != "" {
		cfg.API.Token = f.token
	}
	if f.baseURL != "" {
		cfg.API.BaseURL = f.baseURL
	}
	if f.format != "" {
		cfg.Output.Format = f.format
	}
	if f.debug {
		cfg.Log.Level = "debug"
	}
}

func (a *app) fetcher() ports.Fetcher {
	if a.opts.fetcher != nil {
		return a.opts.fetcher
	}
	if a.flags.fixtures != "" {
		return filefetcher.New(a.flags.fixtures, filefetcher.WithBaseURL(a.cfg.API.BaseURL))
	}
	hc := httpclient.FromDomain(a.cfg.HTTP)
	return httpclient.NewFetcher(
		httpclient.WithClient(httpclient.New(hc)),
		httpclient.WithTimeout(hc.Timeout),
		httpclient.WithMaxBodyBytes(a.cfg.HTTP.MaxBodyBytes),
	)
}

func (a *app) close() error {
	if a.cleanup == nil {
		return nil
	}
	err := a.cleanup()
	a.cleanup = nil
	return err
}

func (a *app) print(cmd *cobra.Command, v any) error {
	return render.Write(cmd.OutOrStdout(), v, render.Options{
		Format: a.cfg.Output.Format,
		Select: a.flags.selectExpr,
	})
}
