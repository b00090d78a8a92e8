// Package models holds the data types shared across layers: JSON response
// envelopes written by the HTTP transport, rate-limit windows and decisions
// exchanged between the stores and the services, and build metadata.
package models
