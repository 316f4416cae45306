// Package client provides commands that call a running GM service over REST
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-gm-api/internal/errors"
	"github.com/KirkDiggler/rpg-gm-api/internal/handlers/http/middleware"
)

var (
	// Connection flags
	serverAddr string
	ownerID    string
	timeout    time.Duration
)

// ownerOptional marks commands that do not act as an owner.
const ownerOptional = "owner-optional"

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:               "client",
	Short:             "Client commands for the GM API",
	Long:              `Client commands call a running gm-api server over its REST or gRPC API.`,
	PersistentPreRunE: requireOwner,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "http://localhost:8080", "Server base URL")
	ClientCmd.PersistentFlags().StringVar(&ownerID, "owner", "", "Owner id sent in the X-Owner-ID header (required)")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(statsCmd)
	ClientCmd.AddCommand(draftCmd)
	ClientCmd.AddCommand(previewCmd)
	ClientCmd.AddCommand(healthCmd)
}

func requireOwner(cmd *cobra.Command, _ []string) error {
	if ownerID == "" && cmd.Annotations[ownerOptional] == "" {
		return errors.InvalidArgument(`required flag "owner" not set`)
	}
	return nil
}

// restClient calls the /api/v1 endpoints as one owner.
type restClient struct {
	baseURL string
	owner   string
	http    *http.Client
}

func newRESTClient() *restClient {
	return &restClient{
		baseURL: strings.TrimRight(serverAddr, "/") + "/api/v1",
		owner:   ownerID,
		http:    &http.Client{Timeout: timeout},
	}
}

// do sends body as JSON and decodes the response into out. Error envelopes
// come back as *errors.Error with the server's code.
func (c *restClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("X-Owner-ID", c.owner)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "request failed")
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck // body fully read
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var envelope middleware.ErrorBody
		if err := json.Unmarshal(data, &envelope); err != nil || envelope.Error.Code == "" {
			return errors.Internalf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
		}
		return errors.New(errors.Code(envelope.Error.Code), envelope.Error.Message).WithMetaMap(envelope.Error.Meta)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}
	return nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
