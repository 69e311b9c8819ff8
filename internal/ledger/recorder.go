package ledger

import (
	"context"
	"log/slog"
)

// Recorder adapts a Store to the run context's recorder hook. The hook
// carries no error channel; append failures are logged and the run
// continues, since app-testing records are diagnostics, not app state.
type Recorder struct {
	Store *Store
	Log   *slog.Logger
}

// NewRecorder wraps a store. A nil logger falls back to slog.Default.
func NewRecorder(store *Store, log *slog.Logger) *Recorder {
	if log == nil {
		log = slog.Default()
	}
	return &Recorder{Store: store, Log: log}
}

// Record implements the run context's recorder interface.
func (r *Recorder) Record(runToken string, seq int64, widgetID, label string) {
	err := r.Store.Append(context.Background(), Entry{
		RunToken: runToken,
		Seq:      seq,
		WidgetID: widgetID,
		Label:    label,
	})
	if err != nil {
		r.Log.Warn("ledger append failed",
			"run_token", runToken,
			"seq", seq,
			"widget_id", widgetID,
			"error", err)
	}
}
