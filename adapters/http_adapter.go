package adapters

// HTTPResponse represents the collector's response to a batch upload.
type HTTPResponse struct {
	OK     bool
	Status int
}

// HTTPAdapter is the transport boundary toward the remote collector.
// Implement this interface to use a custom HTTP client.
type HTTPAdapter interface {
	// Send uploads one batch to the specified endpoint.
	//
	// Parameters:
	//   - endpoint: The collector endpoint URL
	//   - batch: The batch to upload
	//   - headers: Optional custom headers to merge with defaults
	//
	// A non-nil error means no HTTP response was produced at all
	// (network failure, timeout). A response with a non-2xx status is
	// returned without an error.
	Send(endpoint string, batch Batch, headers map[string]string) (*HTTPResponse, error)
}
