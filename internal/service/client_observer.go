package service

import (
	"context"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) SyncAborted(error)                 {}
func (NopObserver) SyncCompleted()                    {}
func (NopObserver) SessionExpired()                   {}
func (NopObserver) ItemMerged(*models.Item)           {}
func (NopObserver) PushRequested()                    {}
func (NopObserver) Progress(models.ProgressKind, int) {}

// LoggingObserver writes every notification to the log.
type LoggingObserver struct {
	Logger *logger.Logger
}

func (o LoggingObserver) SyncAborted(err error) {
	o.Logger.Err(err).Str("event", "syncAborted").Msg("sync aborted")
}

func (o LoggingObserver) SyncCompleted() {
	o.Logger.Info().Str("event", "syncCompleted").Msg("sync completed")
}

func (o LoggingObserver) SessionExpired() {
	o.Logger.Warn().Str("event", "sessionExpired").Msg(MsgEncryptionKey)
}

func (o LoggingObserver) ItemMerged(item *models.Item) {
	o.Logger.Debug().Str("event", "itemMerged").
		Str("id", item.ID).
		Str("type", string(item.RoutingType())).
		Bool("deleted", item.Deleted).
		Bool("conflicted", item.Conflicted).
		Msg("item merged")
}

func (o LoggingObserver) PushRequested() {
	o.Logger.Info().Str("event", "pushRequested").Msg("another device pushed changes")
}

func (o LoggingObserver) Progress(kind models.ProgressKind, done int) {
	o.Logger.Debug().Str("event", "progress").Str("kind", string(kind)).Int("done", done).Msg("sync progress")
}

// Observers fans notifications out to every observer in order.
type Observers []SyncObserver

func (os Observers) SyncAborted(err error) {
	for _, o := range os {
		o.SyncAborted(err)
	}
}

func (os Observers) SyncCompleted() {
	for _, o := range os {
		o.SyncCompleted()
	}
}

func (os Observers) SessionExpired() {
	for _, o := range os {
		o.SessionExpired()
	}
}

func (os Observers) ItemMerged(item *models.Item) {
	for _, o := range os {
		o.ItemMerged(item)
	}
}

func (os Observers) PushRequested() {
	for _, o := range os {
		o.PushRequested()
	}
}

func (os Observers) Progress(kind models.ProgressKind, done int) {
	for _, o := range os {
		o.Progress(kind, done)
	}
}

// StaticPolicy is a [SyncPolicy] with fixed answers.
type StaticPolicy struct {
	Sync     bool
	AutoSync bool
}

func (p StaticPolicy) SyncEnabled(context.Context) bool     { return p.Sync }
func (p StaticPolicy) AutoSyncEnabled(context.Context) bool { return p.AutoSync }

// RefreshSharedArtifacts does nothing; there are no shared artifacts to
// rebuild without a sharing backend.
func (StaticPolicy) RefreshSharedArtifacts(context.Context) {}
