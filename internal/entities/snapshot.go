// Package entities contains core business entities.
package entities

// Snapshot is a read handle on one dataset generation. Users must not be modified
// and must not be used after Release.
type Snapshot interface {
	Users() []User
	Len() int
	Generation() uint64
	Release()
}
