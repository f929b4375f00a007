package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-db-driver database driver (postgres, sqlite)
//	-c/-config json file path with configs
//	-session-ttl session lifetime (e.g., "24h")
//	-bcrypt-cost bcrypt work factor
//	-cookie-secure mark the session cookie as Secure
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-session-sweep-interval expired session purge interval (e.g., "1h", 0 disables)
//	-server API address used by the client in format [host]:[port]
//	-user login used by the client
//	-password password used by the client
func ParseFlags() *StructuredConfig {
	var serverAddress, adapterAddress NetAddress
	var databaseDSN string
	var databaseDriver string
	var jsonConfigPath string
	var sessionTTL time.Duration
	var bcryptCost int
	var cookieSecure bool
	var requestTimeout time.Duration
	var sessionSweepInterval time.Duration
	var username, password string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "db-driver", "", "Database driver (postgres, sqlite)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&sessionTTL, "session-ttl", 0, "Session lifetime (e.g., 24h)")
	flag.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt work factor")
	flag.BoolVar(&cookieSecure, "cookie-secure", false, "Mark session cookie as Secure")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&sessionSweepInterval, "session-sweep-interval", 0, "Expired session purge interval (e.g., 1h)")
	flag.Var(&adapterAddress, "server", "API address used by the client host:port")
	flag.StringVar(&username, "user", "", "Login used by the client")
	flag.StringVar(&password, "password", "", "Password used by the client")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			SessionTTL:   sessionTTL,
			BcryptCost:   bcryptCost,
			CookieSecure: cookieSecure,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress: adapterAddress.String(),
			Username:    username,
			Password:    password,
		},
		Workers: Workers{
			SessionSweepInterval: sessionSweepInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
