package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"shopadmin/internal/domain"
)

// DefaultBaseURL is the backend origin used when none is configured.
const DefaultBaseURL = "http://localhost:3000"

// maxBody caps how much of a response body is read.
const maxBody = 4 << 20

type HTTP struct {
	Base string
	HTTP *http.Client
	Log  zerolog.Logger
}

// NewHTTP returns a client for base. A nil client means http.DefaultClient.
func NewHTTP(base string, client *http.Client, log zerolog.Logger) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: client, Log: log}
}

type signInResponse struct {
	Token string `json:"token"`
}

type unverifiedResponse struct {
	Data []domain.Shopkeeper `json:"data"`
}

type selectionRequest struct {
	Usernames []domain.ShopkeeperID `json:"usernames"`
}

type acceptResponse struct {
	VerifiedCount *int `json:"verifiedCount"`
}

type deleteResponse struct {
	DeletedCount *int `json:"deletedCount"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func (c *HTTP) SignIn(ctx context.Context, creds domain.Credentials) (string, error) {
	var out signInResponse
	if err := c.do(ctx, "signin", http.MethodPost, "/signin", "", creds, &out); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", &TransportError{Op: "signin", Err: fmt.Errorf("%w: no token", ErrMalformedResponse)}
	}
	return out.Token, nil
}

func (c *HTTP) ListUnverified(ctx context.Context) ([]domain.Shopkeeper, error) {
	var out unverifiedResponse
	if err := c.do(ctx, "unverified", http.MethodGet, "/unverified", "", nil, &out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		return []domain.Shopkeeper{}, nil
	}
	return out.Data, nil
}

// Accept sends ids under the "usernames" key, which is what the server reads.
func (c *HTTP) Accept(
	ctx context.Context,
	token string,
	ids []domain.ShopkeeperID,
) (domain.MutationResult, error) {
	var out acceptResponse
	if err := c.do(ctx, "accept", http.MethodPost, "/accept", token, selectionRequest{Usernames: ids}, &out); err != nil {
		return domain.MutationResult{}, err
	}
	return countResult(out.VerifiedCount), nil
}

func (c *HTTP) Delete(
	ctx context.Context,
	token string,
	ids []domain.ShopkeeperID,
) (domain.MutationResult, error) {
	var out deleteResponse
	if err := c.do(ctx, "delete", http.MethodPost, "/delete", token, selectionRequest{Usernames: ids}, &out); err != nil {
		return domain.MutationResult{}, err
	}
	return countResult(out.DeletedCount), nil
}

func countResult(n *int) domain.MutationResult {
	if n == nil {
		return domain.MutationResult{}
	}
	return domain.MutationResult{Count: *n, Reported: true}
}

func (c *HTTP) do(ctx context.Context, op, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return fmt.Errorf("backend %s: encode request: %w", op, err)
		}
		body = buf
	}
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, body)
	if err != nil {
		return fmt.Errorf("backend %s: %w", op, err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.Log.Debug().Err(err).Str("op", op).Str("request_id", reqID).Msg("backend request failed")
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	c.Log.Debug().
		Str("op", op).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Int("bytes", len(raw)).
		Dur("duration", time.Since(start)).
		Str("request_id", reqID).
		Msg("backend request")
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}

	if resp.StatusCode/100 != 2 {
		var e errorResponse
		if err := json.Unmarshal(raw, &e); err != nil {
			return &TransportError{Op: op, Err: fmt.Errorf("status %s: %w", resp.Status, err)}
		}
		return &APIError{Op: op, Status: resp.StatusCode, Message: e.Message}
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
		}
	}
	return nil
}

var _ domain.Backend = (*HTTP)(nil)
