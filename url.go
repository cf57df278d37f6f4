package urlx

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/cespare/xxhash/v2"

	"github.com/VolodymyrBor/urlx/internal/constraints"
	"github.com/VolodymyrBor/urlx/internal/ioutil"
	"github.com/VolodymyrBor/urlx/internal/util"
)

const (
	// DefaultProtocol is the protocol of a URL built without [WithProtocol].
	DefaultProtocol = "https"
	// DefaultHost is the host of a URL built without [WithHost].
	DefaultHost = "localhost"
	// PasswordMask replaces the password when rendering with [RenderOptions.SecurePassword].
	PasswordMask = "<password>"
)

// RenderOptions controls [URL.Render] and [URL.RenderTo].
type RenderOptions struct {
	// SecurePassword replaces the password with [PasswordMask].
	SecurePassword bool `json:"secure_password,omitempty"`
}

func (o *RenderOptions) securePassword() bool { return o != nil && o.SecurePassword }

// URL is an immutable URL value.
//
// A URL is created with [New] or [Parse] and never changes afterwards.
// Methods that "modify" a URL return a new one, so a *URL may be shared
// between goroutines without synchronization.
type URL struct {
	proto     string
	host      string
	port      int
	user      string
	passwd    string
	path      Path
	query     Query
	hasPort   bool
	hasUser   bool
	hasPasswd bool

	canon string
}

// New returns a URL with default fields overridden by opts.
//
// Defaults are protocol [DefaultProtocol], host [DefaultHost],
// no port, no credentials, an empty path and an empty query.
func New(opts ...Option) *URL {
	u := &URL{
		proto: DefaultProtocol,
		host:  DefaultHost,
	}
	return u.seal(opts)
}

func (u *URL) seal(opts []Option) *URL {
	for _, opt := range opts {
		if opt != nil {
			opt(u)
		}
	}
	u.canon = u.build(nil)
	return u
}

// MustParse is like [Parse] but panics on error.
func MustParse[T constraints.Byteseq](src T) *URL {
	return util.Must2(Parse(src))
}

// Parse parses a URL of the form
//
//	protocol://[username:password@]host[:port]/[path][?key1=val1&key2=val2]
//
// Each separator is matched literally and only its first occurrence is significant.
// No unescaping is performed. Any deviation is reported as [ErrMalformedInput].
func Parse[T constraints.Byteseq](src T) (*URL, error) {
	if len(src) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}

	u := new(URL)
	proto, rest, ok := strings.Cut(string(src), "://")
	if !ok {
		return nil, errtrace.Wrap(newMalformedInputErr(`missing "://" separator`))
	}
	u.proto = proto

	if userinfo, after, ok := strings.Cut(rest, "@"); ok {
		usr, pwd, ok := strings.Cut(userinfo, ":")
		if !ok {
			return nil, errtrace.Wrap(newMalformedInputErr("userinfo %q has no ':' separator", userinfo))
		}
		u.user, u.hasUser = usr, true
		u.passwd, u.hasPasswd = pwd, true
		rest = after
	}

	hostport, rest, ok := strings.Cut(rest, "/")
	if !ok {
		return nil, errtrace.Wrap(newMalformedInputErr(`missing "/" path separator`))
	}
	host, rawPort, ok := strings.Cut(hostport, ":")
	if ok {
		port, err := strconv.Atoi(rawPort)
		if err != nil {
			return nil, errtrace.Wrap(newMalformedInputErr("invalid port %q", rawPort))
		}
		u.port, u.hasPort = port, true
	}
	u.host = host

	rawPath, rawQuery, ok := strings.Cut(rest, "?")
	if ok {
		q, err := ParseQuery(rawQuery)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		u.query = q
	}
	u.path = NewPath(rawPath)

	return u.seal(nil), nil
}

// Protocol returns the protocol (scheme), e.g. "https".
func (u *URL) Protocol() string {
	if u == nil {
		return ""
	}
	return u.proto
}

// Host returns the host.
func (u *URL) Host() string {
	if u == nil {
		return ""
	}
	return u.host
}

// Port returns the port, in case it is set, and a bool flag indicating whether it is set.
func (u *URL) Port() (int, bool) {
	if u == nil {
		return 0, false
	}
	return u.port, u.hasPort
}

// Username returns the username, in case it is set, and a bool flag indicating whether it is set.
func (u *URL) Username() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.user, u.hasUser
}

// Password returns the password, in case it is set, and a bool flag indicating whether it is set.
func (u *URL) Password() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.passwd, u.hasPasswd
}

// Path returns the normalized path.
func (u *URL) Path() Path {
	if u == nil {
		return Path{}
	}
	return u.path
}

// Query returns a copy of the query. Nothing done with the result affects u.
func (u *URL) Query() Query {
	if u == nil {
		return Query{}
	}
	return u.query.clone()
}

// ContainsAuth reports whether both the username and the password are set.
// Only then the credentials are rendered.
func (u *URL) ContainsAuth() bool {
	return u != nil && u.hasUser && u.hasPasswd
}

// With returns a copy of the URL with fields overridden by opts.
// Fields without an option keep their values.
func (u *URL) With(opts ...Option) *URL {
	if u == nil {
		return nil
	}
	u2 := *u
	u2.query = u.query.clone()
	return u2.seal(opts)
}

// JoinPath returns a copy of the URL with elems appended to the path.
// Leading and trailing separators of both sides are irrelevant.
func (u *URL) JoinPath(elems ...string) *URL {
	if u == nil {
		return nil
	}
	return u.With(WithPathValue(u.path.Join(elems...)))
}

// UpdateQuery returns a copy of the URL whose query is the current one with q overlaid.
// Keys present in both take the value from q.
func (u *URL) UpdateQuery(q Query) *URL {
	if u == nil {
		return nil
	}
	return u.With(WithQuery(u.query.Merge(q)))
}

// RenderTo writes the URL to the provided writer.
func (u *URL) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteStrings(u.proto, "://")
	if u.ContainsAuth() {
		passwd := u.passwd
		if opts.securePassword() {
			passwd = PasswordMask
		}
		cw.WriteStrings(u.user, ":", passwd, "@")
	}
	cw.WriteStrings(u.host)
	if u.hasPort {
		cw.WriteStrings(":", strconv.Itoa(u.port))
	}
	cw.WriteStrings("/", u.path.String())
	if u.query.Len() > 0 {
		cw.WriteStrings("?")
		cw.Call(u.query.RenderTo)
	}
	return errtrace.Wrap2(cw.Result())
}

func (u *URL) build(opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// Render returns the string representation of the URL.
func (u *URL) Render(opts *RenderOptions) string {
	if u == nil {
		return ""
	}
	if u.canon != "" && !opts.securePassword() {
		return u.canon
	}
	return u.build(opts)
}

// String returns the canonical string form of the URL, password included.
func (u *URL) String() string {
	return u.Render(nil)
}

// Redacted returns the string form of the URL with the password replaced by [PasswordMask].
func (u *URL) Redacted() string {
	return u.Render(&RenderOptions{SecurePassword: true})
}

// GoString returns a Go expression that parses back into the URL.
func (u *URL) GoString() string {
	if u == nil {
		return "(*urlx.URL)(nil)"
	}
	return "urlx.MustParse(" + strconv.Quote(u.String()) + ")"
}

// Format implements fmt.Formatter for custom formatting of the URL.
func (u *URL) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	case 'v':
		if f.Flag('#') {
			fmt.Fprint(f, u.GoString())
			return
		}
		if !f.Flag('+') {
			fmt.Fprint(f, u.String())
			return
		}
		fallthrough
	default:
		type hideMethods URL
		type URL hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URL)(u))
		return
	}
}

// LogValue implements [slog.LogValuer]. Logged URLs never expose the password.
func (u *URL) LogValue() slog.Value {
	return slog.StringValue(u.Redacted())
}

// Equal compares this URL with another for equality, accepting URL and *URL.
//
// Protocol, host, port, path and query (ignoring order) must match.
// Credentials are compared only when the receiver [URL.ContainsAuth],
// so the relation is not symmetric: a URL without credentials equals
// the same URL with credentials, but not the other way round.
func (u *URL) Equal(val any) bool {
	var other *URL
	switch v := val.(type) {
	case URL:
		other = &v
	case *URL:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}

	if u.ContainsAuth() &&
		(u.user != other.user || u.hasUser != other.hasUser ||
			u.passwd != other.passwd || u.hasPasswd != other.hasPasswd) {
		return false
	}
	return u.proto == other.proto &&
		u.host == other.host &&
		u.port == other.port && u.hasPort == other.hasPort &&
		u.path == other.path &&
		u.query.Equal(other.query)
}

// Hash returns a hash of the canonical string form.
// URLs that render to the same string have the same hash.
func (u *URL) Hash() uint64 {
	return xxhash.Sum64String(u.String())
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}
