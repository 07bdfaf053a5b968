// Command dashctl is the terminal client for the flight insights dashboard.
package main

import "github.com/celesia/flight-insights/internal/cli"

func main() {
	cli.Execute()
}
