package interfaces

// SlotInterface is a single durable key-value slot holding the encoded
// snapshot.
type SlotInterface interface {
	Read() ([]byte, error)
	Write(data []byte) error
	Remove() error
	Close() error
}
