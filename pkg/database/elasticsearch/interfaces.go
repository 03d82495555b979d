package elasticsearch

import (
	"net/http"
)

// ElasticClient is the transport contract for executing esapi requests.
// Satisfied by *elasticsearch.Client; tests substitute a canned transport.
type ElasticClient interface {
	Perform(*http.Request) (*http.Response, error)
}
