package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "vaultsim_http_requests_total"
	MetricNameHTTPRequestDuration  = "vaultsim_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "vaultsim_http_requests_in_flight"

	MetricNameVaultsOpened     = "vaultsim_vaults_opened_total"
	MetricNameCreditsSpent     = "vaultsim_credits_spent_total"
	MetricNameCreditsEarned    = "vaultsim_credits_earned_total"
	MetricNameQuestsCompleted  = "vaultsim_quests_completed_total"
	MetricNameRevealDuration   = "vaultsim_reveal_duration_seconds"
	MetricNameSnapshotFailures = "vaultsim_snapshot_write_failures_total"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency distribution"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextVaultsOpened     = "Total vault reveals resolved, by tier and rarity"
	HelpTextCreditsSpent     = "Total credits spent across all players"
	HelpTextCreditsEarned    = "Total credits earned across all players"
	HelpTextQuestsCompleted  = "Total quests completed, by quest"
	HelpTextRevealDuration   = "Wall time of the full reveal stage sequence"
	HelpTextSnapshotFailures = "Snapshot writes that failed and were swallowed, by backend"
)

// Label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelTier    = "tier"
	LabelRarity  = "rarity"
	LabelQuest   = "quest"
	LabelBackend = "backend"
)

// HTTPLatencyBuckets are the histogram buckets for request latency in seconds
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
