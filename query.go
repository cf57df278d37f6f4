package urlx

import (
	"io"
	"iter"
	"maps"
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/VolodymyrBor/urlx/internal/ioutil"
	"github.com/VolodymyrBor/urlx/internal/util"
)

// Query is an immutable insertion-ordered mapping of query keys to values.
//
// Every method that changes the content returns a new Query and leaves the
// receiver untouched, so a Query obtained from [URL.Query] can never be used
// to modify the URL it came from. The zero value is an empty query.
type Query struct {
	keys []string
	vals map[string]string
}

// QueryOf builds a query from alternating keys and values.
// A trailing key without a value gets an empty value.
// Later duplicates overwrite earlier ones but keep the first position.
func QueryOf(kvs ...string) Query {
	var q Query
	for i := 0; i < len(kvs); i += 2 {
		var v string
		if i+1 < len(kvs) {
			v = kvs[i+1]
		}
		q.put(kvs[i], v)
	}
	return q
}

// QueryFromMap builds a query from a map. Go maps are unordered,
// so the entries are inserted in ascending key order.
func QueryFromMap(m map[string]string) Query {
	var q Query
	for _, k := range slices.Sorted(maps.Keys(m)) {
		q.put(k, m[k])
	}
	return q
}

// ParseQuery parses a raw query string of the form "k1=v1&k2=v2".
// Every "&"-separated piece must contain "=". No unescaping is performed.
func ParseQuery(raw string) (Query, error) {
	var q Query
	for part := range strings.SplitSeq(raw, "&") {
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			return Query{}, errtrace.Wrap(newMalformedInputErr("query pair %q has no '='", part))
		}
		q.put(k, v)
	}
	return q, nil
}

// put must only be called on a query that is not yet shared.
func (q *Query) put(k, v string) {
	if q.vals == nil {
		q.vals = make(map[string]string)
	}
	if _, ok := q.vals[k]; !ok {
		q.keys = append(q.keys, k)
	}
	q.vals[k] = v
}

func (q Query) clone() Query {
	if len(q.keys) == 0 {
		return Query{}
	}
	return Query{
		keys: slices.Clone(q.keys),
		vals: maps.Clone(q.vals),
	}
}

// Len returns the number of entries.
func (q Query) Len() int { return len(q.keys) }

// Get returns the value of the key and whether it is present.
func (q Query) Get(key string) (string, bool) {
	v, ok := q.vals[key]
	return v, ok
}

// Has reports whether the key is present.
func (q Query) Has(key string) bool {
	_, ok := q.vals[key]
	return ok
}

// Keys returns a fresh slice of keys in insertion order.
func (q Query) Keys() []string { return slices.Clone(q.keys) }

// All returns an iterator over the entries in insertion order.
func (q Query) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range q.keys {
			if !yield(k, q.vals[k]) {
				return
			}
		}
	}
}

// Map returns a fresh map with the query entries.
func (q Query) Map() map[string]string {
	m := make(map[string]string, len(q.keys))
	maps.Copy(m, q.vals)
	return m
}

// Set returns a copy of the query with the key set to the value.
func (q Query) Set(key, value string) Query {
	q2 := q.clone()
	q2.put(key, value)
	return q2
}

// Del returns a copy of the query without the key.
func (q Query) Del(key string) Query {
	if !q.Has(key) {
		return q.clone()
	}
	var q2 Query
	for k, v := range q.All() {
		if k != key {
			q2.put(k, v)
		}
	}
	return q2
}

// Merge returns a copy of the query with the entries of other overlaid.
// Existing keys keep their position and take the value from other,
// new keys are appended in the order of other.
func (q Query) Merge(other Query) Query {
	q2 := q.clone()
	for k, v := range other.All() {
		q2.put(k, v)
	}
	return q2
}

// Equal reports whether the query has the same entries as val, ignoring order.
// It accepts Query and *Query.
func (q Query) Equal(val any) bool {
	var other Query
	switch v := val.(type) {
	case Query:
		other = v
	case *Query:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return len(q.keys) == len(other.keys) && maps.Equal(q.vals, other.vals)
}

// RenderTo writes the query as "k1=v1&k2=v2" without the leading "?".
func (q Query) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for i, k := range q.keys {
		if i > 0 {
			cw.WriteStrings("&")
		}
		cw.WriteStrings(k, "=", q.vals[k])
	}
	return errtrace.Wrap2(cw.Result())
}

// String returns the query as "k1=v1&k2=v2".
func (q Query) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	q.RenderTo(sb) //nolint:errcheck
	return sb.String()
}
