// Package blob uploads file bytes to the external blob store and hands back
// the permanent URL. The store speaks a single multipart POST authenticated
// with a write token.
package blob

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// Store is what the document service depends on.
type Store interface {
	// Upload stores data under name and returns the public URL.
	Upload(ctx context.Context, name, contentType string, data []byte) (string, error)
}

type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

// NewClient builds a client for the blob endpoint. Uploads are the slowest
// external call in the system, so the timeout is generous but bounded.
func NewClient(endpoint, token string) *Client {
	return &Client{
		endpoint: endpoint,
		token:    token,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type uploadResponse struct {
	URL string `json:"url"`
}

func (c *Client) Upload(ctx context.Context, name, contentType string, data []byte) (string, error) {
	if c.token == "" {
		return "", fmt.Errorf("blob write token not configured")
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(name)))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("blob upload failed with status %d: %s", resp.StatusCode, msg)
	}

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("blob upload returned unreadable body: %w", err)
	}
	if out.URL == "" {
		return "", fmt.Errorf("blob upload returned no url")
	}
	return out.URL, nil
}
