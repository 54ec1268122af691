package log

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	timeout = 2 * time.Second
)

type Monitor struct {
	endpoint string
	client   *http.Client
}

func NewMonitor(endpoint string) *Monitor {
	return &Monitor{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (m *Monitor) Post(body []byte, path string) error {
	url := fmt.Sprintf("%s/%s", m.endpoint, path)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("collector response status %d", resp.StatusCode)
	}
	return nil
}
