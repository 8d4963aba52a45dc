package metrics

import (
	"context"
	"net/http"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/ajoux/workplan/core/logger"
	coremetrics "github.com/ajoux/workplan/core/metrics"
	infralogger "github.com/ajoux/workplan/infra/logger"
)

// InfluxSink writes assignment runs to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a sink for the given InfluxDB endpoint.
func NewInfluxSink(cfg coremetrics.Config) *InfluxSink {
	client := influxdb2.NewClientWithOptions(cfg.InfluxURL, cfg.InfluxToken,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.InfluxOrg, cfg.InfluxBucket),
		log:      infralogger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback pings the InfluxDB instance and returns a
// NopSink when the health check fails, so a down database never blocks
// assignment runs.
func NewInfluxSinkWithFallback(cfg coremetrics.Config) coremetrics.Sink {
	sink := NewInfluxSink(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordRun writes one point per run.
func (s *InfluxSink) RecordRun(ev coremetrics.RunEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("assignment_run").
		AddTag("run_id", ev.RunID).
		AddTag("plan", ev.PlanLabel).
		AddField("rows", ev.Rows).
		AddField("tasks", ev.Tasks).
		AddField("assigned", ev.Assigned).
		AddField("pre_assigned", ev.PreAssigned).
		AddField("unassigned", ev.Unassigned).
		AddField("mean_load", ev.MeanLoad).
		AddField("duration_ms", ev.Duration.Milliseconds()).
		SetTime(ev.Timestamp)
	if err := s.writeAPI.WritePoint(ctx, p); err != nil {
		s.log.Errorf("influx write run: %v", err)
	}
}

// RecordTasks writes one point per task outcome.
func (s *InfluxSink) RecordTasks(events []coremetrics.TaskEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, ev := range events {
		p := write.NewPointWithMeasurement("assignment_task").
			AddTag("run_id", ev.RunID).
			AddTag("outcome", ev.Outcome).
			AddTag("module", ev.Module).
			AddField("task_id", ev.TaskID).
			AddField("hours", ev.Hours).
			AddField("priority", ev.Priority).
			AddField("assignee", ev.Assignee)
		if err := s.writeAPI.WritePoint(ctx, p); err != nil {
			s.log.Errorf("influx write task: %v", err)
			return
		}
	}
}

// Close releases the underlying client.
func (s *InfluxSink) Close() {
	s.client.Close()
}
