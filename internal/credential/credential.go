// Package credential turns a static key pair or an STS token endpoint into
// the credential set used to open an OSS client.
package credential

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	apperrors "oss-upload-helper/internal/pkg/errors"
	"time"

	"github.com/tidwall/gjson"
)

// Kind tags a Credential variant
type Kind string

const (
	KindStatic    Kind = "static"
	KindTemporary Kind = "temporary"
)

// Credential is either Static or Temporary
type Credential interface {
	Kind() Kind
	KeyID() string
	KeySecret() string
	sealed()
}

// Static is a long-lived access key pair
type Static struct {
	AccessKeyID     string
	AccessKeySecret string
}

func (Static) Kind() Kind { return KindStatic }
func (s Static) KeyID() string { return s.AccessKeyID }
func (s Static) KeySecret() string { return s.AccessKeySecret }
func (Static) sealed() {}
func (s Static) String() string { return fmt.Sprintf("static(%s)", mask(s.AccessKeyID)) }

// Temporary is an STS credential carrying a session token
type Temporary struct {
	AccessKeyID     string
	AccessKeySecret string
	SecurityToken   string
}

func (Temporary) Kind() Kind { return KindTemporary }
func (t Temporary) KeyID() string { return t.AccessKeyID }
func (t Temporary) KeySecret() string { return t.AccessKeySecret }
func (Temporary) sealed() {}
func (t Temporary) String() string { return fmt.Sprintf("temporary(%s)", mask(t.AccessKeyID)) }

func mask(id string) string {
	if len(id) <= 4 {
		return "****"
	}
	return id[:4] + "****"
}

// Response fields returned by the token endpoint
const (
	fieldAccessKeyID     = "AccessKeyId"
	fieldAccessKeySecret = "AccessKeySecret"
	fieldSecurityToken   = "SecurityToken"
)

// maxTokenBody bounds how much of the token response is read
const maxTokenBody = 1 << 20

// Resolver resolves credentials, fetching from the token endpoint when one is configured.
// It keeps no state between calls.
type Resolver struct {
	httpClient *http.Client
}

// NewResolver creates a resolver; a nil client gets a 30s timeout client
func NewResolver(httpClient *http.Client) *Resolver {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Resolver{httpClient: httpClient}
}

// Resolve returns a Static credential built from keyID/keySecret when tokenURL is empty,
// otherwise a Temporary credential fetched from tokenURL. keyID/keySecret are ignored in the
// latter case. Every call performs a fresh resolution.
func (r *Resolver) Resolve(ctx context.Context, tokenURL, keyID, keySecret string) (Credential, error) {
	if tokenURL == "" {
		return Static{AccessKeyID: keyID, AccessKeySecret: keySecret}, nil
	}
	return r.fetch(ctx, tokenURL)
}

func (r *Resolver) fetch(ctx context.Context, tokenURL string) (Credential, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tokenURL, nil)
	if err != nil {
		return nil, apperrors.NewCredentialFetchError("invalid token endpoint URL", redactError(err))
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewCredentialFetchError("token endpoint request failed", redactError(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTokenBody))
	if err != nil {
		return nil, apperrors.NewCredentialFetchError("failed to read token endpoint response", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.NewCredentialFetchError(
			fmt.Sprintf("token endpoint returned status %d", resp.StatusCode), nil)
	}
	return parseToken(body)
}

// RedactURL drops the query and user info of a token endpoint URL, which may carry secrets
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid url>"
	}
	return u.Scheme + "://" + u.Host + u.Path
}

// redactError strips secrets from the URL quoted by a *url.Error
func redactError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = RedactURL(urlErr.URL)
	}
	return err
}

func parseToken(body []byte) (Credential, error) {
	if !gjson.ValidBytes(body) {
		return nil, apperrors.NewCredentialFetchError("token endpoint response is not valid JSON", nil)
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return nil, apperrors.NewCredentialFetchError("token endpoint response is not a JSON object", nil)
	}

	values := make(map[string]string, 3)
	for _, field := range []string{fieldAccessKeyID, fieldAccessKeySecret, fieldSecurityToken} {
		v := doc.Get(field)
		if !v.Exists() {
			return nil, apperrors.NewCredentialFetchError(fmt.Sprintf("token response missing field %s", field), nil)
		}
		if v.Type != gjson.String {
			return nil, apperrors.NewCredentialFetchError(fmt.Sprintf("token response field %s is not a string", field), nil)
		}
		values[field] = v.String()
	}

	return Temporary{
		AccessKeyID:     values[fieldAccessKeyID],
		AccessKeySecret: values[fieldAccessKeySecret],
		SecurityToken:   values[fieldSecurityToken],
	}, nil
}
