// Command urlx parses, builds and derives URLs from the command line.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/VolodymyrBor/urlx"
	"github.com/VolodymyrBor/urlx/internal/log"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

type app struct {
	logLevel string
	devLog   bool
	secure   bool

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: log.Noop}

	rootCmd := &cobra.Command{
		Use:   "urlx",
		Short: "Parse, build and derive URLs",
		Long: `urlx works with URLs of the form

  protocol://[username:password@]host[:port]/[path][?key1=val1&key2=val2]

Commands:
  parse    Split a URL into its components
  build    Build a URL from flags
  join     Append path segments to a URL
  query    Set or delete query parameters of a URL`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := log.ParseLevel(a.logLevel)
			if err != nil {
				return errtrace.Wrap(fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err))
			}
			a.logger = log.New(cmd.ErrOrStderr(), &log.Options{Level: lvl, Dev: a.devLog})
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&a.devLog, "dev-log", false, "Use the developer log format")
	rootCmd.PersistentFlags().BoolVar(&a.secure, "secure", false, "Replace passwords with "+urlx.PasswordMask+" in the output")

	rootCmd.AddCommand(
		a.parseCmd(),
		a.buildCmd(),
		a.joinCmd(),
		a.queryCmd(),
		versionCmd(),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// render returns the URL in the form selected by --secure.
func (a *app) render(u *urlx.URL) string {
	return u.Render(&urlx.RenderOptions{SecurePassword: a.secure})
}

func (a *app) printURL(w io.Writer, u *urlx.URL) error {
	_, err := fmt.Fprintln(w, a.render(u))
	return errtrace.Wrap(err)
}

func (a *app) parse(raw string) (*urlx.URL, error) {
	u, err := urlx.Parse(raw)
	if err != nil {
		a.logger.Debug("failed to parse url", "error", err)
		return nil, errtrace.Wrap(err)
	}
	a.logger.Debug("url parsed", "url", u, "path", u.Path(), "query", u.Query())
	return u, nil
}
