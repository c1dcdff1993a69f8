package config

import "time"

type Storage struct {
	Endpoint        string        `env:"S3_ENDPOINT" envDefault:"bucket.poehali.dev"`
	UseSSL          bool          `env:"S3_USE_SSL" envDefault:"true"`
	Region          string        `env:"S3_REGION"`
	Bucket          string        `env:"S3_BUCKET" envDefault:"files"`
	Timeout         time.Duration `env:"S3_TIMEOUT" envDefault:"30s"`
	AccessKeyID     string        `env:"AWS_ACCESS_KEY_ID,required,notEmpty"`
	SecretAccessKey string        `env:"AWS_SECRET_ACCESS_KEY,required,notEmpty" json:"-"`
	CDNBaseURL      string        `env:"CDN_BASE_URL" envDefault:"https://cdn.poehali.dev/projects"`
	FailOnError     bool          `env:"STORAGE_FAIL_ON_ERROR" envDefault:"false"`
}
