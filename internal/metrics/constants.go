package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"

	MetricNameLootboxesCreated = "lootboxes_created_total"
	MetricNameLootboxesRemoved = "lootboxes_removed_total"
	MetricNameSkinsAdded       = "lootbox_skins_added_total"
	MetricNamePricesRecomputed = "lootbox_prices_recomputed_total"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextLootboxesCreated = "Total number of lootboxes created"
	HelpTextLootboxesRemoved = "Total number of lootboxes removed"
	HelpTextSkinsAdded       = "Total number of skins added to lootboxes"
	HelpTextPricesRecomputed = "Total number of lootbox price recomputations"
)

// Label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelLootbox = "lootbox"
)

// HTTPLatencyBuckets are the histogram buckets for request duration
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
