package metrics

// Config selects which sinks the service records runs to.
type Config struct {
	PrometheusEnabled bool `json:"prometheus_enabled"`
	// PrometheusPort serves /metrics on a dedicated listener when set;
	// when empty the main API mux exposes it instead.
	PrometheusPort string `json:"prometheus_port"`

	InfluxEnabled bool   `json:"influx_enabled"`
	InfluxURL     string `json:"influx_url"`
	InfluxToken   string `json:"influx_token"`
	InfluxOrg     string `json:"influx_org"`
	InfluxBucket  string `json:"influx_bucket"`
}
