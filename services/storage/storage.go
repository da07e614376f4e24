package storage

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageServiceImpl implements StorageService on Cloudinary.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
	apiKey    string
	apiSecret string
}

// NewStorageService creates a Cloudinary-backed StorageService.
func NewStorageService(cloudName, apiKey, apiSecret string) (StorageService, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &StorageServiceImpl{
		cld:       cld,
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
	}, nil
}

// SignUploadRequest signs the upload parameters the way Cloudinary's
// api_sign_request does: parameters sorted by key, joined with "&", the API
// secret appended, SHA-1 over the whole string.
func (s *StorageServiceImpl) SignUploadRequest(folder, publicID string, timestamp int64) (*UploadSignature, error) {
	if folder == "" || publicID == "" || timestamp == 0 {
		return nil, fmt.Errorf("folder, publicID and timestamp are all required")
	}

	params := url.Values{}
	params.Set("folder", folder)
	params.Set("public_id", publicID)
	params.Set("timestamp", fmt.Sprintf("%d", timestamp))

	return &UploadSignature{
		Signature: signParams(params, s.apiSecret),
		APIKey:    s.apiKey,
		CloudName: s.cloudName,
		Timestamp: timestamp,
	}, nil
}

// signParams computes the hex SHA-1 signature over the sorted parameter set.
func signParams(params url.Values, apiSecret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params.Get(k))
	}

	toSign := strings.Join(pairs, "&") + apiSecret
	sum := sha1.Sum([]byte(toSign))
	return hex.EncodeToString(sum[:])
}

// UploadFile uploads a file to Cloudinary into the specified folder and
// returns the secure URL of the stored asset.
func (s *StorageServiceImpl) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{
		Folder: destFolder,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("no secure URL returned for uploaded file")
	}
	return result.SecureURL, nil
}

// DeleteFile deletes a file from Cloudinary given its public ID.
func (s *StorageServiceImpl) DeleteFile(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
