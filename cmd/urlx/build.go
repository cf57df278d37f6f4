package main

import (
	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/VolodymyrBor/urlx"
)

func (a *app) buildCmd() *cobra.Command {
	var (
		proto, host, user, passwd string
		port                      int
		path                      []string
		query                     []string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a URL from flags",
		Long: `Build a URL from flags.

Flags that are not given keep their defaults: protocol "` + urlx.DefaultProtocol + `",
host "` + urlx.DefaultHost + `", no port, no credentials, empty path and query.`,
		Example: `  urlx build --protocol ftp --host myhost --port 21 \
    --username ubuntu --password admin \
    --path home/ubuntu/items.csv --query param1=val1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()

			var opts []urlx.Option
			if flags.Changed("protocol") {
				opts = append(opts, urlx.WithProtocol(proto))
			}
			if flags.Changed("host") {
				opts = append(opts, urlx.WithHost(host))
			}
			if flags.Changed("port") {
				opts = append(opts, urlx.WithPort(port))
			}
			if flags.Changed("username") {
				opts = append(opts, urlx.WithUsername(user))
			}
			if flags.Changed("password") {
				opts = append(opts, urlx.WithPassword(passwd))
			}
			if flags.Changed("path") {
				opts = append(opts, urlx.WithPath(path...))
			}
			if flags.Changed("query") {
				q, err := queryFromArgs(query)
				if err != nil {
					return errtrace.Wrap(err)
				}
				opts = append(opts, urlx.WithQuery(q))
			}

			u := urlx.New(opts...)
			a.logger.Debug("url built", "url", u)
			return errtrace.Wrap(a.printURL(cmd.OutOrStdout(), u))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&proto, "protocol", urlx.DefaultProtocol, "Protocol (scheme)")
	flags.StringVar(&host, "host", urlx.DefaultHost, "Host")
	flags.IntVar(&port, "port", 0, "Port")
	flags.StringVar(&user, "username", "", "Username")
	flags.StringVar(&passwd, "password", "", "Password")
	flags.StringArrayVar(&path, "path", nil, "Path segment (repeatable)")
	flags.StringArrayVar(&query, "query", nil, "Query parameter as key=value (repeatable)")

	return cmd
}
