//go:generate mockgen -destination=./mocks/mock_connection.go -package=mocks . Handler
//Package connection provides the REST transport to the Scenario server
package connection

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/wire"
	"github.com/mnikita/scenario-worker/pkg/catalog"
	"github.com/mnikita/scenario-worker/pkg/common"
	"github.com/mnikita/scenario-worker/pkg/log"
)

var WireSet = wire.NewSet(NewConnection,
	wire.Bind(new(Handler), new(*Connection)))

const (
	pollPath    = "/polling/api/namespaces/%s/task-instances/poll"
	statusPath  = "/taskstatus/api/task-statuses"
	catalogPath = "/taskcatalog/api/catalog-task-definitions/%s"

	//error bodies are kept for diagnostics only
	maxErrorBody = 4096
)

type Handler interface {
	Init() error
	Close() error

	Config() *Configuration

	Poll(ctx context.Context, namespace string, taskName string) (*common.TaskInstance, error)
	PostStatus(ctx context.Context, status *common.TaskStatus) error
	PublishCatalog(ctx context.Context, namespace string,
		definitions []*catalog.TaskDefinition, removePrevious bool) error
}

type Configuration struct {
	//Scenario server base URL
	Url string `mapstructure:"url" toml:"url" validate:"required,url"`

	//API key sent as bearer credential
	ApiKey string `mapstructure:"apikey" toml:"apikey" validate:"required"`

	//Timeout applied to every REST call
	Timeout time.Duration `mapstructure:"timeout" toml:"timeout"`

	//Replace the definitions previously published in the namespace
	RemovePreviousTasks bool `mapstructure:"remove_previous_tasks" toml:"remove_previous_tasks"`
}

//TransportError reports a non-success response, or a request that got no response at all
type TransportError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}

	return fmt.Sprintf("[%d] %s", e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

type Connection struct {
	*Configuration

	baseUrl *url.URL
	client  *http.Client
}

func parseUrl(urlText string) (*url.URL, error) {
	if urlText == "" {
		return nil, log.MissingServerUrlError()
	}

	serverUrl, err := url.Parse(urlText)

	if err != nil {
		return nil, log.InvalidServerUrlError(urlText, err)
	}

	if serverUrl.Scheme == "" || serverUrl.Host == "" {
		return nil, log.InvalidServerUrlError(urlText, fmt.Errorf("scheme and host required"))
	}

	return serverUrl, nil
}

func NewConnection(config *Configuration) *Connection {
	return &Connection{Configuration: config}
}

func NewConfiguration() *Configuration {
	//make default configuration
	return &Configuration{
		Timeout: time.Second * 30,
	}
}

func (c *Connection) Init() (err error) {
	c.baseUrl, err = parseUrl(c.Url)

	if err != nil {
		return err
	}

	if c.ApiKey == "" {
		return log.MissingApiKeyError()
	}

	log.Logger().ServerUrl(c.baseUrl.String())

	c.client = &http.Client{Timeout: c.Timeout}

	return nil
}

func (c *Connection) Close() error {
	if c.client != nil {
		c.client.CloseIdleConnections()
	}

	return nil
}

func (c *Connection) Config() *Configuration {
	return c.Configuration
}

func (c *Connection) endpoint(path string, query url.Values) string {
	u := *c.baseUrl
	u.Path = strings.TrimSuffix(u.Path, "/") + path
	u.RawQuery = query.Encode()

	return u.String()
}

func (c *Connection) do(ctx context.Context, endpoint string, body interface{}) (*http.Response, []byte, error) {
	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)

		if err != nil {
			return nil, nil, err
		}

		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, reader)

	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Authorization", "bearer "+c.ApiKey)
	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, nil, &TransportError{Err: fmt.Errorf("request to %s failed: %w", endpoint, err)}
	}

	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return resp, nil, &TransportError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return resp, nil, &TransportError{StatusCode: resp.StatusCode, Err: err}
	}

	return resp, data, nil
}

//Poll retrieves at most one task instance. An empty queue returns nil without error
func (c *Connection) Poll(ctx context.Context, namespace string, taskName string) (*common.TaskInstance, error) {
	query := url.Values{}

	if taskName != "" {
		query.Set("catalogTaskDefinitionName", taskName)
	}

	resp, data, err := c.do(ctx, c.endpoint(fmt.Sprintf(pollPath, namespace), query), nil)

	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	//a null body leaves task nil, which is an empty queue
	var task *common.TaskInstance

	if err = json.Unmarshal(data, &task); err != nil {
		return nil, fmt.Errorf("invalid task instance payload: %w", err)
	}

	return task, nil
}

//PostStatus sends one task status update
func (c *Connection) PostStatus(ctx context.Context, status *common.TaskStatus) error {
	_, _, err := c.do(ctx, c.endpoint(statusPath, nil), status)

	return err
}

//PublishCatalog posts the task definitions of namespace
func (c *Connection) PublishCatalog(ctx context.Context, namespace string,
	definitions []*catalog.TaskDefinition, removePrevious bool) error {
	query := url.Values{}

	if removePrevious {
		query.Set("removePreviousTasks", strconv.FormatBool(removePrevious))
	}

	if definitions == nil {
		definitions = []*catalog.TaskDefinition{}
	}

	_, _, err := c.do(ctx, c.endpoint(fmt.Sprintf(catalogPath, namespace), query), definitions)

	if err != nil {
		return err
	}

	log.Logger().CatalogPublished(namespace, len(definitions))

	return nil
}
