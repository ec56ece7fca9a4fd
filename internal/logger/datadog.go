package logger

import (
	"context"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/DataDog/datadog-api-client-go/v2/api/datadog"
	"github.com/DataDog/datadog-api-client-go/v2/api/datadogV2"
)

const (
	dataDogBatchSize     = 100
	dataDogQueueSize     = 1024
	dataDogFlushInterval = time.Second
	dataDogDefaultWait   = 5 * time.Second
)

// logSubmitter is the part of datadogV2.LogsApi the writer needs.
type logSubmitter interface {
	SubmitLog(
		ctx context.Context,
		body []datadogV2.HTTPLogItem,
		o ...datadogV2.SubmitLogOptionalParameters,
	) (interface{}, *http.Response, error)
}

// DataDogWriter ships zerolog lines to the Datadog logs intake in batches.
// Writes never block: when the queue is full the line is dropped.
type DataDogWriter struct {
	api      logSubmitter
	ctx      context.Context
	cfg      DataDog
	hostname string
	entries  chan string
	done     chan struct{}
	mu       sync.RWMutex
	closed   bool
}

// NewDataDogWriter creates a writer using the Datadog API client.
func NewDataDogWriter(cfg DataDog) *DataDogWriter {
	ctx := context.WithValue(
		context.Background(),
		datadog.ContextAPIKeys,
		map[string]datadog.APIKey{"apiKeyAuth": {Key: cfg.APIKey}},
	)

	if cfg.Site != "" {
		ctx = context.WithValue(ctx, datadog.ContextServerVariables, map[string]string{"site": cfg.Site})
	}

	api := datadogV2.NewLogsApi(datadog.NewAPIClient(datadog.NewConfiguration()))

	return newDataDogWriter(ctx, api, cfg)
}

func newDataDogWriter(ctx context.Context, api logSubmitter, cfg DataDog) *DataDogWriter {
	hostname, _ := os.Hostname()

	if cfg.Timeout == 0 {
		cfg.Timeout = dataDogDefaultWait
	}

	w := &DataDogWriter{
		api:      api,
		ctx:      ctx,
		cfg:      cfg,
		hostname: hostname,
		entries:  make(chan string, dataDogQueueSize),
		done:     make(chan struct{}),
	}

	go w.run()

	return w
}

// Write implements io.Writer. Lines written after Close are dropped.
func (w *DataDogWriter) Write(p []byte) (int, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.closed {
		return len(p), nil
	}

	select {
	case w.entries <- strings.TrimRight(string(p), "\n"):
	default:
	}

	return len(p), nil
}

// Close flushes queued lines and stops the writer.
func (w *DataDogWriter) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}

	w.closed = true
	close(w.entries)
	w.mu.Unlock()

	<-w.done

	return nil
}

func (w *DataDogWriter) run() {
	defer close(w.done)

	var (
		batch  = make([]string, 0, dataDogBatchSize)
		ticker = time.NewTicker(dataDogFlushInterval)
	)

	defer ticker.Stop()

	for {
		select {
		case line, ok := <-w.entries:
			if !ok {
				w.flush(batch)
				return
			}

			batch = append(batch, line)
			if len(batch) >= dataDogBatchSize {
				w.flush(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			w.flush(batch)
			batch = batch[:0]
		}
	}
}

func (w *DataDogWriter) flush(batch []string) {
	if len(batch) == 0 {
		return
	}

	items := make([]datadogV2.HTTPLogItem, 0, len(batch))
	for _, line := range batch {
		items = append(items, datadogV2.HTTPLogItem{
			Ddsource: datadog.PtrString(w.cfg.Source),
			Ddtags:   datadog.PtrString(w.cfg.Tags),
			Hostname: datadog.PtrString(w.hostname),
			Message:  line,
			Service:  datadog.PtrString(w.cfg.ServiceName),
		})
	}

	ctx, cancel := context.WithTimeout(w.ctx, w.cfg.Timeout)
	defer cancel()

	if _, _, err := w.api.SubmitLog(ctx, items); err != nil {
		// the global logger writes here, report on stderr only
		ErrorHandler(err)
	}
}
