// Package stream provides the VM's byte streams: an input queue consumed from
// the front and an append-only output sequence.
package stream
