package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	L "pholio/logger"
	"pholio/model"
	"pholio/session"
	"time"
)

// Client is a stateless typed wrapper over the photo backend's REST
// surface. The only cross-request behavior it carries is the session
// manager's single refresh-and-replay rule on a 401.
type Client struct {
	client  *http.Client
	baseUrl string
	tokens  *session.Manager
}

func NewClient(baseUrl string, timeout time.Duration, tokens *session.Manager) *Client {
	return &Client{
		client:  &http.Client{Timeout: timeout},
		baseUrl: baseUrl,
		tokens:  tokens,
	}
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Registration struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

func (c *Client) newRequest(ctx context.Context, method string, path string, contentType string, body []byte) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseUrl+path, reader)
	if err != nil {
		return nil, fmt.Errorf("api: could not create request for %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req, nil
}

// do executes an authenticated call. On a 401 it refreshes the access
// token and replays the original request exactly once; a second 401 is
// surfaced to the caller unchanged. A failure of the refresh call itself
// is not retried: both tokens are cleared and the session is over.
func (c *Client) do(ctx context.Context, method string, path string, contentType string, body []byte) (*http.Response, error) {
	req, err := c.newRequest(ctx, method, path, contentType, body)
	if err != nil {
		return nil, err
	}
	c.tokens.Attach(ctx, req)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: could not reach server: %w", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	refreshToken := c.tokens.RefreshToken(ctx)
	if refreshToken == "" {
		// nothing to refresh with, propagate the 401
		return resp, nil
	}
	resp.Body.Close()

	L.Debug(fmt.Sprintf("api: got 401 for %s %s, refreshing access token", method, path))
	pair, err := c.refreshAccessToken(ctx, refreshToken)
	if err != nil {
		clearErr := c.tokens.Clear(ctx)
		if clearErr != nil {
			L.Error(fmt.Sprintf("api: could not clear session state: %v", clearErr))
		}
		L.Debug(fmt.Sprintf("api: token refresh failed: %v", err))
		return nil, session.ErrSessionExpired
	}
	err = c.tokens.SetAccessToken(ctx, pair.Access)
	if err != nil {
		return nil, err
	}

	// replay the original request once with the fresh token
	retryReq, err := c.newRequest(ctx, method, path, contentType, body)
	if err != nil {
		return nil, err
	}
	c.tokens.Attach(ctx, retryReq)
	retryResp, err := c.client.Do(retryReq)
	if err != nil {
		return nil, fmt.Errorf("api: could not reach server: %w", err)
	}
	return retryResp, nil
}

func (c *Client) refreshAccessToken(ctx context.Context, refreshToken string) (*model.TokenPair, error) {
	body, err := json.Marshal(map[string]string{"refresh": refreshToken})
	if err != nil {
		return nil, err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/token/refresh", "application/json", body)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: could not reach server: %w", err)
	}
	defer resp.Body.Close()
	if !ok(resp) {
		return nil, errorFromResponse(resp)
	}
	var pair model.TokenPair
	err = json.NewDecoder(resp.Body).Decode(&pair)
	if err != nil {
		return nil, fmt.Errorf("api: malformed refresh response: %w", err)
	}
	return &pair, nil
}

func ok(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func decodeInto(resp *http.Response, v any) error {
	defer resp.Body.Close()
	if L.IsVerbose() {
		L.Debug(L.HttpResponseString(resp))
	}
	if !ok(resp) {
		return errorFromResponse(resp)
	}
	if v == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	err := json.NewDecoder(resp.Body).Decode(v)
	if err != nil {
		return fmt.Errorf("api: malformed response body: %w", err)
	}
	return nil
}

func (c *Client) Login(ctx context.Context, creds Credentials) (*model.TokenPair, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return nil, err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/token", "application/json", body)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: could not reach server: %w", err)
	}
	var pair model.TokenPair
	err = decodeInto(resp, &pair)
	if err != nil {
		return nil, err
	}
	return &pair, nil
}

func (c *Client) Register(ctx context.Context, reg Registration) (*model.User, error) {
	body, err := json.Marshal(reg)
	if err != nil {
		return nil, err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/users", "application/json", body)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: could not reach server: %w", err)
	}
	var user model.User
	err = decodeInto(resp, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CurrentUser fetches the authenticated user's profile. The backend
// scopes GET /users to the caller, so the payload is either the profile
// object or a single-element list of it.
func (c *Client) CurrentUser(ctx context.Context) (*model.User, error) {
	resp, err := c.do(ctx, http.MethodGet, "/users", "", nil)
	if err != nil {
		return nil, err
	}
	var raw json.RawMessage
	err = decodeInto(resp, &raw)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var users []model.User
		err = json.Unmarshal(trimmed, &users)
		if err != nil {
			return nil, fmt.Errorf("api: malformed user response: %w", err)
		}
		if len(users) == 0 {
			return nil, &ApiError{StatusCode: http.StatusNotFound, Message: "no user profile returned"}
		}
		return &users[0], nil
	}
	var user model.User
	err = json.Unmarshal(trimmed, &user)
	if err != nil {
		return nil, fmt.Errorf("api: malformed user response: %w", err)
	}
	return &user, nil
}

func (c *Client) ListFolders(ctx context.Context) ([]model.Folder, error) {
	resp, err := c.do(ctx, http.MethodGet, "/folders", "", nil)
	if err != nil {
		return nil, err
	}
	var folders []model.Folder
	err = decodeInto(resp, &folders)
	if err != nil {
		return nil, err
	}
	return folders, nil
}

func (c *Client) CreateFolder(ctx context.Context, name string) (*model.Folder, error) {
	body, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return nil, err
	}
	resp, err := c.do(ctx, http.MethodPost, "/folders", "application/json", body)
	if err != nil {
		return nil, err
	}
	var folder model.Folder
	err = decodeInto(resp, &folder)
	if err != nil {
		return nil, err
	}
	return &folder, nil
}

func (c *Client) DeleteFolder(ctx context.Context, folderId int64) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/folders/%d", folderId), "", nil)
	if err != nil {
		return err
	}
	return decodeInto(resp, nil)
}

func (c *Client) ListFolderPhotos(ctx context.Context, folderId int64) ([]model.Photo, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/folders/%d/photos", folderId), "", nil)
	if err != nil {
		return nil, err
	}
	var photos []model.Photo
	err = decodeInto(resp, &photos)
	if err != nil {
		return nil, err
	}
	return photos, nil
}

// UploadPhoto sends the image as a multipart payload with the filename as
// a separate form field, matching what the backend's upload endpoint
// expects. The payload is buffered so the single 401 replay can resend it.
func (c *Client) UploadPhoto(ctx context.Context, folderId int64, filename string, data []byte) (*model.Photo, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return nil, fmt.Errorf("api: could not build multipart payload: %w", err)
	}
	_, err = part.Write(data)
	if err != nil {
		return nil, fmt.Errorf("api: could not build multipart payload: %w", err)
	}
	err = writer.WriteField("filename", filename)
	if err != nil {
		return nil, fmt.Errorf("api: could not build multipart payload: %w", err)
	}
	err = writer.Close()
	if err != nil {
		return nil, fmt.Errorf("api: could not build multipart payload: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/folders/%d/photos", folderId), writer.FormDataContentType(), buf.Bytes())
	if err != nil {
		return nil, err
	}
	var photo model.Photo
	err = decodeInto(resp, &photo)
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

func (c *Client) DeletePhoto(ctx context.Context, folderId int64, photoId int64) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/folders/%d/photos/%d", folderId, photoId), "", nil)
	if err != nil {
		return err
	}
	return decodeInto(resp, nil)
}

// SetFavorite patches the favorite flag. The endpoint is not guaranteed
// to exist on every deployment; callers decide whether a failure matters.
func (c *Client) SetFavorite(ctx context.Context, photoId int64, favorite bool) error {
	body, err := json.Marshal(map[string]bool{"is_favorite": favorite})
	if err != nil {
		return err
	}
	resp, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/photos/%d", photoId), "application/json", body)
	if err != nil {
		return err
	}
	return decodeInto(resp, nil)
}
