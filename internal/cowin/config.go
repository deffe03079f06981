// internal/cowin/config.go
package cowin

import "time"

type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}
