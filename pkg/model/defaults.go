package model

const (
	// DefaultClientID is the well known web client identifier, tried before scraping a fresh one
	DefaultClientID = "KhqBlYHkMDSGNC9DdLrcJHXqaLv5kOrh"
	// DefaultPageSize is the number of stream entries requested per page
	DefaultPageSize = 1000

	DefaultLogMaxSize    = 50 // megabytes
	DefaultLogMaxAge     = 30 // days
	DefaultLogMaxBackups = 7
)
