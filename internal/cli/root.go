package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmeister/py-github/internal/buildinfo"
	"github.com/dmeister/py-github/internal/domain"
	"github.com/dmeister/py-github/internal/infra/config"
	"github.com/dmeister/py-github/internal/ports"
)

func Execute() {
	if err := run(rootOptions{}, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(exitCode(err))
	}
}

// run executes one command line and always releases the logger.
func run(opts rootOptions, args []string, stdout, stderr io.Writer) error {
	cmd, a := newRootCmd(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	if cerr := a.close(); err == nil {
		err = cerr
	}
	return err
}

// rootOptions are the seams tests use; zero values mean the real thing.
type rootOptions struct {
	getenv  func(string) string
	workDir string
	fetcher ports.Fetcher
}

// globalFlags hold the persistent flags shared by every subcommand.
type globalFlags struct {
	configPath string
	debug      bool
	format     string
	selectExpr string
	login      string
	token      string
	baseURL    string
	fixtures   string
}

func newRootCmd(opts rootOptions) (*cobra.Command, *app) {
	g := &globalFlags{}
	a := &app{opts: opts, flags: g}

	cmd := &cobra.Command{
		Use:          "ghxml",
		Short:        "Read-only client for the GitHub v2 XML API",
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	cmd.SetVersionTemplate(buildinfo.String() + "\n")

	pf := cmd.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "config file (default: nearest .ghxml.yaml or .ghxml.toml)")
	pf.BoolVar(&g.debug, "debug", false, "enable debug logging")
	pf.StringVar(&g.format, "format", "", "output format: pretty|json (default from config)")
	pf.StringVar(&g.selectExpr, "select", "", "print only the value at this JSONPath, e.g. '$[0].name'")
	pf.StringVar(&g.login, "login", "", "API login (env "+config.EnvLogin+")")
	pf.StringVar(&g.token, "token", "", "API token (env "+config.EnvToken+")")
	pf.StringVar(&g.baseURL, "base-url", "", "API root (env "+config.EnvBaseURL+", default "+domain.DefaultBaseURL+")")
	pf.StringVar(&g.fixtures, "fixtures", "", "serve responses from XML files under this directory instead of the network")

	cmd.AddCommand(
		usersCmd(a),
		reposCmd(a),
		commitsCmd(a),
		issuesCmd(a),
		initCmd(a),
		versionCmd(),
	)
	return cmd, a
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// No config or logger needed.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
			return err
		},
	}
}

// exitCode maps error kinds to distinct process exit codes.
func exitCode(err error) int {
	switch domain.KindOf(err) {
	case domain.KindInvalidConfig:
		return 2
	case domain.KindNotFound:
		return 3
	case domain.KindFetch, domain.KindRemote:
		return 4
	case domain.KindParse, domain.KindMapping:
		return 5
	default:
		return 1
	}
}
