package databases

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/legaldesk/legal-case-api/config"
)

// connectTimeout bounds the one-time cloud reachability probe at boot.
const connectTimeout = 5 * time.Second

// ConnectCloud decides once, at process start, whether cloud persistence is
// usable: it builds a client, connects and pings within connectTimeout. Any
// failure is logged and reported as unavailable rather than propagated,
// since the whole read path depends on this resolving. The decision is never
// re-evaluated; a cloud outage after a successful boot is not detected here.
func ConnectCloud(conf *config.Config) (*CloudStore, bool) {
	if conf.URL == "" {
		zap.S().Infow("no cloud configuration present, using local storage")
		return nil, false
	}

	client, err := NewClient(conf)
	if err != nil {
		zap.S().Warnw("failed to build cloud client, using local storage", "error", err)
		return nil, false
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := client.Connect(ctx); err != nil {
		zap.S().Warnw("failed to connect to cloud store, using local storage", "error", err)
		return nil, false
	}
	if err := client.Ping(ctx); err != nil {
		zap.S().Warnw("cloud store unreachable, using local storage", "error", err)
		return nil, false
	}

	zap.S().Infow("cloud store connected", "database", conf.DatabaseName)
	return NewCloudStore(NewDatabase(conf, client)), true
}
