package main

import (
	"braces.dev/errtrace"
	"github.com/spf13/cobra"
)

func (a *app) joinCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "join <url> <segment>...",
		Short:   "Append path segments to a URL",
		Example: `  urlx join https://localhost/api /users/ 42`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.parse(args[0])
			if err != nil {
				return errtrace.Wrap(err)
			}
			u = u.JoinPath(args[1:]...)
			a.logger.Debug("path joined", "url", u, "path", u.Path())
			return errtrace.Wrap(a.printURL(cmd.OutOrStdout(), u))
		},
	}
}
