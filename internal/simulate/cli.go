package simulate

import "os"

// ShowHelp prints usage information for the simulation tool.
func ShowHelp() {
	os.Stdout.WriteString(`Tombola Raffle Simulator
========================

Seeds a running tombola service, executes draws over HTTP, and verifies
the engine's bookkeeping (unique winners, prize assignment, history order,
ticket arithmetic).

Usage:
  go run cmd/raffle-sim/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -tickets int
        Number of tickets to seed (default 100)
  -owners int
        Number of owners to seed (default 10)
  -draws int
        Number of draws to execute (default 5)
  -group int
        Winners per draw (default 3)
  -category string
        Prize category used for all draws (default "A")
  -timeout duration
        HTTP request timeout (default 30s)
  -verbose
        Log every winner
  -help
        Show this help message

Examples:
  # Simulate with default settings
  go run cmd/raffle-sim/main.go

  # Heavier run against a remote service
  go run cmd/raffle-sim/main.go -url http://raffle:9080 -tickets 5000 -draws 50 -group 5
`)
}
