package outbound

// ScratchStorePort holds provider output on local disk for the duration of
// the upload step. Every path written must be removed before the miss branch
// returns, success or failure alike.
type ScratchStorePort interface {
	Write(name string, data []byte) (string, error)
	Remove(path string) error
}
