package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/sitecms/internal/models"
	"github.com/dmitrijs2005/sitecms/internal/shared"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// MaxUploadSize is the largest accepted image.
const MaxUploadSize = 5 << 20

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}
)

// MediaStore persists an uploaded file under key and returns its public URL.
type MediaStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// MediaService validates image uploads and hands them to a MediaStore.
type MediaService struct {
	store MediaStore
	now   func() time.Time
}

func NewMediaService(store MediaStore) *MediaService {
	return &MediaService{store: store, now: time.Now}
}

// StorageKey returns a unique dated key keeping the sniffed extension.
func (s *MediaService) StorageKey(ext string) string {
	d := s.now().UTC()
	return fmt.Sprintf("uploads/%d/%02d/%s%s", d.Year(), d.Month(), uuid.NewString(), ext)
}

// Upload reads at most MaxUploadSize bytes from r and stores them when they
// sniff as an image.
func (s *MediaService) Upload(ctx context.Context, filename string, r io.Reader) (*models.UploadResult, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(data) > MaxUploadSize {
		return nil, shared.ErrorFileTooLarge
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return nil, shared.ErrorNotAnImage
	}

	key := s.StorageKey(mt.Extension())
	url, err := s.store.Put(ctx, key, mt.String(), data)
	if err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}
	return &models.UploadResult{URL: url, Filename: path.Base(filename)}, nil
}

// StoredFile is an upload kept by MemoryMediaStore.
type StoredFile struct {
	ContentType string
	Data        []byte
}

// MemoryMediaStore keeps uploads in memory and serves them under baseURL.
type MemoryMediaStore struct {
	mu      sync.RWMutex
	files   map[string]StoredFile
	baseURL string
}

func NewMemoryMediaStore(baseURL string) *MemoryMediaStore {
	return &MemoryMediaStore{files: make(map[string]StoredFile), baseURL: strings.TrimRight(baseURL, "/")}
}

func (m *MemoryMediaStore) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[key] = StoredFile{ContentType: contentType, Data: bytes.Clone(data)}
	return m.baseURL + "/" + key, nil
}

func (m *MemoryMediaStore) Get(key string) (StoredFile, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.files[strings.TrimPrefix(key, "/")]
	return f, ok
}

// S3Config points S3MediaStore at an S3-compatible bucket.
type S3Config struct {
	Bucket       string
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
}

// S3MediaStore uploads to a bucket with path-style addressing so that MinIO
// works out of the box.
type S3MediaStore struct {
	cfg    S3Config
	client *s3.Client
}

func NewS3MediaStore(ctx context.Context, cfg S3Config) (*S3MediaStore, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
		}
		o.UsePathStyle = true
	})
	return &S3MediaStore{cfg: cfg, client: client}, nil
}

func (m *S3MediaStore) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	_, err := putObject(m.client, ctx, &s3.PutObjectInput{
		Bucket:        aws.String(m.cfg.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", err
	}
	return m.ObjectURL(key), nil
}

// ObjectURL is the path-style URL of key.
func (m *S3MediaStore) ObjectURL(key string) string {
	endpoint := m.cfg.BaseEndpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://s3.%s.amazonaws.com", m.cfg.Region)
	}
	return strings.TrimRight(endpoint, "/") + "/" + m.cfg.Bucket + "/" + key
}
