package metrics

//go:generate mockery --name MetricsProvider --dir . --output ../../mocks/metrics --outpkg mocks --filename MetricsProvider.go
type MetricsProvider interface {
	IncrementHTTPRequests(method, path, status string)
	RecordHTTPRequestDuration(method, path string, seconds float64)

	IncrementPostOperations(operation string, success bool)
	IncrementCommentOperations(operation string, success bool)
	IncrementAuthOperations(operation string, success bool)

	SetServiceHealth(healthy bool)
}
