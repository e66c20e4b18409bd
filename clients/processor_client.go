package clients

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/pr-poehali-dev/office-supply-webshop/logger"
	"github.com/pr-poehali-dev/office-supply-webshop/models"
	"go.uber.org/zap"
)

// ProcessorClient calls the remote price list processing function.
type ProcessorClient struct {
	url    string
	client *http.Client
}

// NewProcessorClient creates a client. A zero timeout means 60 seconds.
func NewProcessorClient(url string, timeout time.Duration) *ProcessorClient {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &ProcessorClient{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Process sends the file as a base64 data URL. Any JSON body is decoded,
// whatever the status code, since the function reports parse failures with
// 4xx responses. A non-JSON body or a network failure is returned as an error.
func (pc *ProcessorClient) Process(ctx context.Context, filename, contentType string, data []byte) (*models.ProcessResponse, error) {
	body, err := json.Marshal(models.ProcessRequest{
		FileData: DataURL(mimeType(filename, contentType), data),
		Filename: filename,
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, pc.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := pc.client.Do(req)
	if err != nil {
		logger.From(ctx).Warn("processor call failed", zap.String("filename", filename), zap.Error(err))
		return nil, fmt.Errorf("processor request: %w", err)
	}
	defer resp.Body.Close()

	var out models.ProcessResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("processor returned status %d with unreadable body: %w", resp.StatusCode, err)
	}
	if !out.Success && out.Error == "" && resp.StatusCode >= 300 {
		out.Error = fmt.Sprintf("processor returned status %d", resp.StatusCode)
	}
	return &out, nil
}

// DataURL encodes data the way a browser FileReader does.
func DataURL(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func mimeType(filename, contentType string) string {
	if contentType != "" && contentType != "application/octet-stream" {
		return contentType
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ".xls":
		return "application/vnd.ms-excel"
	case ".csv":
		return "text/csv"
	}
	return "application/octet-stream"
}
