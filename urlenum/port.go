package urlenum

import (
	"slices"
	"strconv"
)

// Port is a well-known network port number.
type Port int

const (
	// HTTP
	PortHTTP  Port = 80
	PortHTTPS Port = 443

	// Emails
	PortSMTP    Port = 25
	PortSMTPTLS Port = 465

	// FTP
	PortFTPData Port = 20
	PortFTP     Port = 21

	PortSSH Port = 22

	// Databases
	PortRedis    Port = 6379
	PortMySQL    Port = 3306
	PortRedshift Port = 5439
	PortPostgres Port = 5432

	// Queue services
	PortRabbitMQ Port = 5672
)

var ports = []Port{
	PortHTTP,
	PortHTTPS,
	PortSMTP,
	PortSMTPTLS,
	PortFTPData,
	PortFTP,
	PortSSH,
	PortRedis,
	PortMySQL,
	PortRedshift,
	PortPostgres,
	PortRabbitMQ,
}

// Ports returns all known ports in declaration order.
func Ports() []Port { return slices.Clone(ports) }

// String renders the port number.
func (p Port) String() string { return strconv.Itoa(int(p)) }

// IsKnown reports whether p is one of the declared ports.
func (p Port) IsKnown() bool { return slices.Contains(ports, p) }
