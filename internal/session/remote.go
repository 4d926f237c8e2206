package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	dErrors "socialboot/pkg/domain-errors"
	"socialboot/pkg/email"
)

const (
	loginPath    = "/api/auth/login"
	registerPath = "/api/auth/register"

	loginFailed  = "Login failed"
	signupFailed = "Signup failed"

	maxResponseBytes = 1 << 20
)

// RemoteAuthenticator delegates credential checks to the hosted auth API.
// Each call is a single attempt bounded by ctx and the client timeout.
type RemoteAuthenticator struct {
	baseURL string
	client  *http.Client
}

func NewRemoteAuthenticator(baseURL string, timeout time.Duration) *RemoteAuthenticator {
	return &RemoteAuthenticator{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type remoteUser struct {
	ID       string  `json:"id"`
	MongoID  string  `json:"_id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Username string  `json:"username"`
	Bio      string  `json:"bio"`
	Website  string  `json:"website"`
	Avatar   *string `json:"avatar"`
}

func (u remoteUser) id() string {
	if u.ID != "" {
		return u.ID
	}
	return u.MongoID
}

type remoteResponse struct {
	Token   string      `json:"token"`
	Message string      `json:"message"`
	User    *remoteUser `json:"user"`
	// Some deployments return the user fields at the top level.
	remoteUser
}

func (a *RemoteAuthenticator) Login(ctx context.Context, address, password string) (*Identity, error) {
	body := map[string]string{"email": address, "password": password}
	resp, err := a.post(ctx, loginPath, body, loginFailed)
	if err != nil {
		return nil, err
	}
	rec := Record{
		ID:       SessionID(address),
		Name:     email.DisplayName(address),
		Email:    address,
		Username: email.LocalPart(address),
	}
	if u := resp.user(); u != nil {
		rec = u.merge(rec)
	}
	return &Identity{Record: rec, Token: resp.Token}, nil
}

func (a *RemoteAuthenticator) Signup(ctx context.Context, name, address, password string) (*Identity, error) {
	body := map[string]string{"name": name, "email": address, "password": password}
	resp, err := a.post(ctx, registerPath, body, signupFailed)
	if err != nil {
		return nil, err
	}
	u := resp.user()
	if u == nil {
		return nil, dErrors.New(dErrors.CodeRemoteAuthFailure, signupFailed)
	}
	rec := u.merge(Record{
		Name:     name,
		Email:    address,
		Username: email.LocalPart(address),
	})
	return &Identity{Record: rec, Token: resp.Token}, nil
}

func (r *remoteResponse) user() *remoteUser {
	if r.User != nil && r.User.id() != "" {
		return r.User
	}
	if r.remoteUser.id() != "" {
		return &r.remoteUser
	}
	return nil
}

func (u remoteUser) merge(rec Record) Record {
	rec.ID = u.id()
	if u.Name != "" {
		rec.Name = u.Name
	}
	if u.Email != "" {
		rec.Email = u.Email
	}
	if u.Username != "" {
		rec.Username = u.Username
	}
	rec.Bio = u.Bio
	rec.Website = u.Website
	rec.Avatar = u.Avatar
	return rec
}

func (a *RemoteAuthenticator) post(ctx context.Context, path string, body any, fallback string) (*remoteResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "encode auth request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "build auth request")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := a.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, dErrors.Wrap(err, dErrors.CodeRemoteAuthFailure, fallback)
	}
	defer res.Body.Close()

	var out remoteResponse
	raw, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeRemoteAuthFailure, fallback)
	}
	decodeErr := json.Unmarshal(raw, &out)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		msg := fallback
		if decodeErr == nil && out.Message != "" {
			msg = out.Message
		}
		return nil, dErrors.New(dErrors.CodeRemoteAuthFailure, msg)
	}
	if decodeErr != nil {
		return nil, dErrors.Wrap(fmt.Errorf("decode auth response: %w", decodeErr), dErrors.CodeRemoteAuthFailure, fallback)
	}
	if out.Token == "" {
		return nil, dErrors.New(dErrors.CodeRemoteAuthFailure, fallback)
	}
	return &out, nil
}
