package main

import (
	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/VolodymyrBor/urlx"
)

func (a *app) queryCmd() *cobra.Command {
	var del []string

	cmd := &cobra.Command{
		Use:   "query <url> [key=value]...",
		Short: "Set or delete query parameters of a URL",
		Example: `  urlx query "https://localhost/?page=1" page=2 size=50
  urlx query --del page "https://localhost/?page=1&size=50"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.parse(args[0])
			if err != nil {
				return errtrace.Wrap(err)
			}
			upd, err := queryFromArgs(args[1:])
			if err != nil {
				return errtrace.Wrap(err)
			}
			u = u.UpdateQuery(upd)
			if len(del) > 0 {
				q := u.Query()
				for _, k := range del {
					q = q.Del(k)
				}
				u = u.With(urlx.WithQuery(q))
			}
			a.logger.Debug("query updated", "url", u, "query", u.Query())
			return errtrace.Wrap(a.printURL(cmd.OutOrStdout(), u))
		},
	}

	cmd.Flags().StringArrayVar(&del, "del", nil, "Delete a query parameter (repeatable)")

	return cmd
}
