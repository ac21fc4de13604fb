package changesink

import (
	"bytes"
	"net/http"
	"time"

	"github.com/go-logr/logr"
)

// HTTPSink notifies a downstream HTTP endpoint (the out-of-scope "MP3" service from spec.md) whenever membership
// changes. The request carries no body describing the change itself — the contract is purely "go re-read
// LIST_MEM" — so a dropped or slow notification never desynchronizes the downstream service from the engine's own
// state, it only delays how quickly it notices.
//
// OnMembershipChanged blocks the caller until the POST completes or times out, per the ChangeSink contract: it
// runs with the view's mutex held, so a slow or unreachable downstream endpoint stalls every other view access
// until the client's timeout elapses.
type HTTPSink struct {
	logger logr.Logger
	client *http.Client
	url    string
}

// HTTPSink implements Sink.
var _ Sink = (*HTTPSink)(nil)

// NewHTTPSink creates a sink which POSTs an empty notification to url on every membership change.
func NewHTTPSink(logger logr.Logger, url string) *HTTPSink {
	return &HTTPSink{
		logger: logger,
		client: &http.Client{Timeout: 2 * time.Second},
		url:    url,
	}
}

func (s *HTTPSink) OnMembershipChanged() {
	resp, err := s.client.Post(s.url, "application/octet-stream", bytes.NewReader(nil))
	if err != nil {
		s.logger.Error(err, "Notifying downstream change sink.")
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		s.logger.Info("Downstream change sink returned a non-success status.", "status", resp.StatusCode)
	}
}
