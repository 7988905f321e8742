package metrics

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/flow-crowdfund/utils/unittest"
)

func TestServer(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := NewCustodyCollector(registry)
	collector.CampaignCreated()

	server := NewServer(unittest.Logger(), 0, registry, false)
	<-server.Ready()
	require.NotNil(t, server.Addr())
	base := "http://" + server.Addr().String()

	resp, err := http.Get(base + healthEndpoint)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(base + metricsEndpoint)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "crowdfund_custody_campaigns_created_total 1"))

	select {
	case <-server.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("metrics server did not shut down")
	}
}
