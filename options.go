package urlx

import "github.com/VolodymyrBor/urlx/internal/constraints"

// Option overrides one field of a [URL] during [New] or [URL.With].
//
// An option that is not passed leaves the field as it is. The Without*
// options explicitly make an optional field absent, which is different
// from leaving it alone.
type Option func(u *URL)

// WithProtocol sets the protocol (scheme). It accepts a plain string
// as well as any string-based enumeration such as urlenum.Protocol.
func WithProtocol[T ~string](proto T) Option {
	return func(u *URL) { u.proto = string(proto) }
}

// WithHost sets the host.
func WithHost(host string) Option {
	return func(u *URL) { u.host = host }
}

// WithPort sets the port. It accepts any integer type,
// including enumerations such as urlenum.Port.
func WithPort[T constraints.Integer](port T) Option {
	return func(u *URL) {
		u.port = int(port)
		u.hasPort = true
	}
}

// WithoutPort makes the port absent.
func WithoutPort() Option {
	return func(u *URL) {
		u.port = 0
		u.hasPort = false
	}
}

// WithUsername sets the username.
func WithUsername(usr string) Option {
	return func(u *URL) {
		u.user = usr
		u.hasUser = true
	}
}

// WithoutUsername makes the username absent.
func WithoutUsername() Option {
	return func(u *URL) {
		u.user = ""
		u.hasUser = false
	}
}

// WithPassword sets the password.
func WithPassword(pwd string) Option {
	return func(u *URL) {
		u.passwd = pwd
		u.hasPasswd = true
	}
}

// WithoutPassword makes the password absent.
func WithoutPassword() Option {
	return func(u *URL) {
		u.passwd = ""
		u.hasPasswd = false
	}
}

// WithUserPassword sets both the username and the password.
func WithUserPassword(usr, pwd string) Option {
	return func(u *URL) {
		WithUsername(usr)(u)
		WithPassword(pwd)(u)
	}
}

// WithPath replaces the path with elems joined and normalized as by [NewPath].
func WithPath[T ~string](elems ...T) Option {
	ss := make([]string, len(elems))
	for i, e := range elems {
		ss[i] = string(e)
	}
	p := NewPath(ss...)
	return func(u *URL) { u.path = p }
}

// WithPathValue replaces the path.
func WithPathValue(p Path) Option {
	return func(u *URL) { u.path = p }
}

// WithQuery replaces the query.
func WithQuery(q Query) Option {
	q = q.clone()
	return func(u *URL) { u.query = q }
}
