package log

import (
	"encoding/json"
	"sync"

	"github.com/devsapp/serverless-aml-controller/pkg/models"
	"github.com/devsapp/serverless-aml-controller/pkg/utils"
	"github.com/sirupsen/logrus"
)

// send trace
const (
	defaultCacheCount = 64
	defaultFlowSize   = 8192
	tracePath         = "collect/tracker"
)

// InitLog debug|dev|product
func InitLog(mode string) {
	switch mode {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
		// include function and file
		logrus.SetReportCaller(true)
	case "dev":
		logrus.SetLevel(logrus.InfoLevel)
	default:
		logrus.SetLevel(logrus.WarnLevel)
	}
}

// Trace one accepted submission
type Trace struct {
	Key     string       `json:"key"`
	Ts      int64        `json:"ts"`
	Payload TracePayload `json:"payload"`
	Source  string       `json:"source"`
}

type TracePayload struct {
	OperationType  string `json:"operationType"`
	ExperimentName string `json:"experimentName"`
}

type poster interface {
	Post(body []byte, path string) error
}

// OperationTracker logs submissions and, with a monitor, ships them to the
// remote collector in batches of defaultCacheCount
type OperationTracker struct {
	source     string
	monitor    poster
	traceFlow  chan *Trace
	cacheTrace []*Trace
	closeTrace chan struct{}
	done       chan struct{}
	closeOnce  sync.Once
}

// NewOperationTracker monitor nil only logs
func NewOperationTracker(source string, monitor *Monitor) *OperationTracker {
	t := &OperationTracker{
		source:     source,
		traceFlow:  make(chan *Trace, defaultFlowSize),
		cacheTrace: make([]*Trace, 0, defaultCacheCount),
		closeTrace: make(chan struct{}),
		done:       make(chan struct{}),
	}
	if monitor != nil {
		t.monitor = monitor
	}
	go t.consumeTrace()
	return t
}

// Track never blocks the submission, a full flow drops the trace
func (t *OperationTracker) Track(kind models.OperationKind, experimentName, id string) {
	trace := &Trace{
		Key: id,
		Ts:  utils.TimestampS(),
		Payload: TracePayload{
			OperationType:  string(kind),
			ExperimentName: experimentName,
		},
		Source: t.source,
	}
	select {
	case t.traceFlow <- trace:
	default:
		logrus.Warnf("trace flow full, drop trace of %s", id)
	}
}

func (t *OperationTracker) consumeTrace() {
	defer close(t.done)
	for {
		select {
		case trace := <-t.traceFlow:
			t.handle(trace)
		case <-t.closeTrace:
			for {
				select {
				case trace := <-t.traceFlow:
					t.handle(trace)
				default:
					t.flush()
					return
				}
			}
		}
	}
}

func (t *OperationTracker) handle(trace *Trace) {
	logrus.WithFields(logrus.Fields{
		"operationId":    trace.Key,
		"operationType":  trace.Payload.OperationType,
		"experimentName": trace.Payload.ExperimentName,
	}).Info("operation submitted")
	if t.monitor == nil {
		return
	}
	t.cacheTrace = append(t.cacheTrace, trace)
	if len(t.cacheTrace) >= defaultCacheCount {
		t.flush()
	}
}

func (t *OperationTracker) flush() {
	if t.monitor == nil || len(t.cacheTrace) == 0 {
		return
	}
	if body, err := json.Marshal(t.cacheTrace); err == nil {
		if err := t.monitor.Post(body, tracePath); err != nil {
			logrus.Warnf("send trace fail: %s", err.Error())
		}
	}
	t.cacheTrace = make([]*Trace, 0, defaultCacheCount)
}

// Close drain pending traces and send the last batch
func (t *OperationTracker) Close() {
	t.closeOnce.Do(func() {
		close(t.closeTrace)
		<-t.done
	})
}
