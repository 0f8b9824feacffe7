package gateway

import (
	"time"

	httppkg "github.com/tumpangan/tumpangan/internal/pkg/http"
	"github.com/tumpangan/tumpangan/internal/pkg/models"
)

// PushGW implements the push gateway against an FCM legacy HTTP endpoint
type PushGW struct {
	client *httppkg.Client
}

// NewPushGW creates a new push gateway
func NewPushGW(cfg models.PushConfig) *PushGW {
	client := httppkg.NewClient(cfg.Endpoint, 10*time.Second)
	client.SetHeader("Authorization", "key="+cfg.ServerKey)
	return &PushGW{client: client}
}
