// Package bucket stores uploaded media in s3 compatible object storage.
package bucket

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/atlasdigitalize/atlas-website-backend/internal/dependency"
)

const (
	contentTypeJPEG = "image/jpeg"
	contentTypePNG  = "image/png"
	contentTypeWEBP = "image/webp"
	contentTypeSVG  = "image/svg+xml"
)

type Config struct {
	S3AccessKey       string `mapstructure:"s3_access_key"`
	S3SecretAccessKey string `mapstructure:"s3_secret_access_key"`
	S3Endpoint        string `mapstructure:"s3_endpoint"`
	S3BucketName      string `mapstructure:"s3_bucket_name"`
	S3BucketLocation  string `mapstructure:"s3_bucket_location"`
	BaseFolder        string `mapstructure:"base_folder"`
}

type Bucket struct {
	*minio.Client
	*Config
}

// New creates the object storage client.
func New(c *Config) (dependency.FileStore, error) {
	cli, err := minio.New(c.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(c.S3AccessKey, c.S3SecretAccessKey, ""),
		Secure: true,
		Region: c.S3BucketLocation,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating s3 client: %w", err)
	}
	return &Bucket{
		Client: cli,
		Config: c,
	}, nil
}

type b64Image struct {
	content     []byte
	contentType string
}

// getB64ImageFromString extracts the content type and the byte content from a
// raw base64 image string of the form "data:[<mediatype>];base64,[<data>]".
func getB64ImageFromString(rawB64Image string) (*b64Image, error) {
	const base64Prefix = ";base64,"
	parts := strings.Split(rawB64Image, base64Prefix)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid base64 image format: expected 'data:[mediatype];base64,[data]'")
	}

	contentType := strings.TrimPrefix(parts[0], "data:")
	switch contentType {
	case contentTypeJPEG, contentTypePNG, contentTypeWEBP, contentTypeSVG:
	default:
		return nil, fmt.Errorf("file type is not supported [%s]", contentType)
	}

	content, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("error decoding base64 image: %w", err)
	}

	return &b64Image{
		content:     content,
		contentType: contentType,
	}, nil
}

func fileExtensionFromContentType(contentType string) string {
	switch contentType {
	case contentTypeJPEG:
		return "jpg"
	case contentTypePNG:
		return "png"
	case contentTypeWEBP:
		return "webp"
	case contentTypeSVG:
		return "svg"
	default:
		parts := strings.Split(contentType, "/")
		if len(parts) > 1 {
			return parts[1]
		}
		return contentType
	}
}

func (b *Bucket) constructFullPath(folder, fileName, ext string) string {
	return path.Clean(path.Join(b.BaseFolder, folder, fileName) + "." + ext)
}

func (b *Bucket) getCDNURL(filePath string) string {
	return fmt.Sprintf("https://%s.%s/%s", b.S3BucketName, b.S3Endpoint, filePath)
}

// UploadContentImage decodes a base64 data url and uploads it, returning the
// public URL used as featured_image, logo or solution image.
func (b *Bucket) UploadContentImage(ctx context.Context, rawB64Image, folder, imageName string) (string, error) {
	img, err := getB64ImageFromString(rawB64Image)
	if err != nil {
		return "", err
	}

	ext := fileExtensionFromContentType(img.contentType)
	fp := b.constructFullPath(folder, imageName, ext)

	r := bytes.NewReader(img.content)
	_, err = b.Client.PutObject(ctx, b.S3BucketName, fp, r, int64(r.Len()),
		minio.PutObjectOptions{
			ContentType:  img.contentType,
			CacheControl: "max-age=31536000",
			UserMetadata: map[string]string{"x-amz-acl": "public-read"},
		},
	)
	if err != nil {
		return "", fmt.Errorf("error putting object: %w", err)
	}

	return b.getCDNURL(fp), nil
}
