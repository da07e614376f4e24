package storage

import "context"

// UploadSignature is the credential a client needs to upload directly to the
// media provider.
type UploadSignature struct {
	Signature string `json:"signature"`
	APIKey    string `json:"apiKey"`
	CloudName string `json:"cloudName"`
	Timestamp int64  `json:"timestamp"`
}

// StorageService defines the media storage operations: request signing for
// client-side uploads and a server-side upload path.
type StorageService interface {
	// SignUploadRequest signs the given upload parameters so the client can
	// upload directly to the media provider.
	SignUploadRequest(folder, publicID string, timestamp int64) (*UploadSignature, error)
	// UploadFile uploads a local file into the given folder and returns the
	// secure URL of the stored asset.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	// DeleteFile removes a stored asset by its public ID.
	DeleteFile(ctx context.Context, publicID string) error
}
