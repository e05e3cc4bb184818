// Package config loads the settings shared by the example programs: pool
// size, logging, and the shape of the demo workloads.
package config
