package main

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/VolodymyrBor/urlx"
	"github.com/VolodymyrBor/urlx/internal/errorutil"
)

// queryFromArgs builds a query from "key=value" arguments, keeping their order.
func queryFromArgs(args []string) (urlx.Query, error) {
	kvs := make([]string, 0, 2*len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok {
			return urlx.Query{}, errtrace.Wrap(errorutil.NewWrapperError(urlx.ErrMalformedInput, "query parameter %q has no '=' separator", arg))
		}
		kvs = append(kvs, k, v)
	}
	return urlx.QueryOf(kvs...), nil
}
