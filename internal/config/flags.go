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
//	-a devserver listen address in format [host]:[port]
//	-base-url backend API base URL
//	-d local preference database path
//	-export health data JSON export path
//	-c/-config json file path with configs
//	-token-sign-key devserver token signing key
//	-token-duration devserver token duration (e.g., "24h")
//	-request-timeout outbound request timeout (e.g., "15s")
//	-bg-interval background trigger interval (e.g., "15m")
//	-total-chunks number of historical backfill chunks
//	-priority-days priority sync window in days
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var baseURL string
	var databaseDSN string
	var exportPath string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var backgroundInterval time.Duration
	var totalChunks int
	var priorityDays int

	flag.Var(&serverAddress, "a", "Devserver net address host:port")
	flag.StringVar(&baseURL, "base-url", "", "Backend API base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local preference database path")
	flag.StringVar(&exportPath, "export", "", "Health data JSON export path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	flag.DurationVar(&backgroundInterval, "bg-interval", 0, "Background trigger interval (e.g., 15m)")
	flag.IntVar(&totalChunks, "total-chunks", 0, "Number of historical backfill chunks")
	flag.IntVar(&priorityDays, "priority-days", 0, "Priority sync window in days")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Health: Health{
			ExportPath: exportPath,
		},
		Workers: Workers{
			BackgroundInterval: backgroundInterval,
			TotalChunks:        totalChunks,
			PriorityWindowDays: priorityDays,
		},
		Server: Server{
			HTTPAddress:   serverAddress.String(),
			TokenSignKey:  tokenSignKey,
			TokenDuration: tokenDuration,
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
