package metrics

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/kilianp07/fabric/core/metrics"
	"github.com/kilianp07/fabric/infra/logger"
)

// InfluxSink writes registry events to an InfluxDB instance using the official client.
// Points are queued on the client's batching write API, so recording never
// waits on the network. Write failures are logged.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPI
	log      logger.Logger
	done     chan struct{}
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().
			SetHTTPClient(&http.Client{Timeout: 5 * time.Second}).
			SetBatchSize(500).
			SetFlushInterval(1000))
	s := &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPI(org, bucket),
		log:      logger.New("influx-sink"),
		done:     make(chan struct{}),
	}
	go s.drainErrors(s.writeAPI.Errors())
	return s
}

// drainErrors logs write failures until the client closes errs.
func (s *InfluxSink) drainErrors(errs <-chan error) {
	defer close(s.done)
	for err := range errs {
		s.log.Errorf("influx write: %v", err)
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and
// returns a NopSink if the health check fails.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.MetricsSink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// Flush sends all queued points.
func (s *InfluxSink) Flush() { s.writeAPI.Flush() }

// Close flushes queued points and releases the underlying client.
func (s *InfluxSink) Close() {
	s.writeAPI.Flush()
	s.client.Close()
	select {
	case <-s.done:
	case <-time.After(5 * time.Second):
		s.log.Warnf("influx error drain did not stop")
	}
}

// RecordRegistration writes one block_registration point.
func (s *InfluxSink) RecordRegistration(ev coremetrics.RegistrationEvent) error {
	p := write.NewPointWithMeasurement("block_registration").
		AddTag("table", string(ev.Table)).
		AddTag("ident", ev.Ident).
		AddTag("accepted", strconv.FormatBool(ev.Accepted)).
		AddField("name", ev.Name)
	if ev.Reason != "" {
		p = p.AddField("reason", ev.Reason)
	}
	s.writeAPI.WritePoint(p.SetTime(ev.Time))
	return nil
}

// RecordResolution writes one block_resolution point.
func (s *InfluxSink) RecordResolution(ev coremetrics.ResolutionEvent) error {
	p := write.NewPointWithMeasurement("block_resolution").
		AddTag("noc_id", ev.NocID.String()).
		AddTag("found", strconv.FormatBool(ev.Found))
	if ev.Table != "" {
		p = p.AddTag("table", string(ev.Table))
	}
	s.writeAPI.WritePoint(p.AddField("name", ev.Name).SetTime(ev.Time))
	return nil
}

// RecordEnumeration writes one enumeration point.
func (s *InfluxSink) RecordEnumeration(ev coremetrics.EnumerationEvent) error {
	p := write.NewPointWithMeasurement("enumeration").
		AddTag("run_id", ev.RunID).
		AddTag("failed", strconv.FormatBool(ev.Failed)).
		AddField("slots", ev.Slots).
		AddField("constructed", ev.Constructed).
		AddField("skipped", ev.Skipped).
		AddField("duration_ms", ev.Duration.Milliseconds()).
		SetTime(ev.Time)
	s.writeAPI.WritePoint(p)
	return nil
}
