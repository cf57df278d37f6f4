// Package urlenum lists well-known URL protocols and ports.
//
// Both enumerations can be passed to urlx options in place of plain values:
//
//	urlx.New(urlx.WithProtocol(urlenum.ProtocolRedis), urlx.WithPort(urlenum.PortRedis))
package urlenum

import "slices"

// Protocol is a URL protocol (scheme) name.
type Protocol string

const (
	// HTTP
	ProtocolHTTP  Protocol = "http"
	ProtocolHTTPS Protocol = "https"

	// FTP
	ProtocolFTP  Protocol = "ftp"
	ProtocolFTPS Protocol = "ftps"

	// Cloud storages
	ProtocolS3            Protocol = "s3"
	ProtocolGoogleStorage Protocol = "gs"

	// Advanced Message Queuing Protocol
	ProtocolAMQP Protocol = "amqp"

	ProtocolWebSocket Protocol = "ws"

	// Databases
	ProtocolRedis        Protocol = "redis"
	ProtocolPostgres     Protocol = "postgres"
	ProtocolJDBCMySQL    Protocol = "jdbc:mysql"
	ProtocolJDBCRedshift Protocol = "jdbc:redshift"
)

var protocols = []Protocol{
	ProtocolHTTP,
	ProtocolHTTPS,
	ProtocolFTP,
	ProtocolFTPS,
	ProtocolS3,
	ProtocolGoogleStorage,
	ProtocolAMQP,
	ProtocolWebSocket,
	ProtocolRedis,
	ProtocolPostgres,
	ProtocolJDBCMySQL,
	ProtocolJDBCRedshift,
}

var defaultPorts = map[Protocol]Port{
	ProtocolHTTP:         PortHTTP,
	ProtocolHTTPS:        PortHTTPS,
	ProtocolFTP:          PortFTP,
	ProtocolAMQP:         PortRabbitMQ,
	ProtocolWebSocket:    PortHTTP,
	ProtocolRedis:        PortRedis,
	ProtocolPostgres:     PortPostgres,
	ProtocolJDBCMySQL:    PortMySQL,
	ProtocolJDBCRedshift: PortRedshift,
}

// Protocols returns all known protocols in declaration order.
func Protocols() []Protocol { return slices.Clone(protocols) }

func (p Protocol) String() string { return string(p) }

// IsKnown reports whether p is one of the declared protocols.
func (p Protocol) IsKnown() bool { return slices.Contains(protocols, p) }

// DefaultPort returns the port conventionally used by the protocol, if there is one.
func (p Protocol) DefaultPort() (Port, bool) {
	port, ok := defaultPorts[p]
	return port, ok
}
