package restapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/DRSN-tech/storefront/pkg/e"
)

// APIError: ответ внешнего API с кодом не 2xx.
type APIError struct {
	Status  int
	Message string
	Path    string
}

func (a *APIError) Error() string {
	if a.Message == "" {
		return fmt.Sprintf("api %s: status %d", a.Path, a.Status)
	}

	return fmt.Sprintf("api %s: status %d: %s", a.Path, a.Status, a.Message)
}

// Unwrap относит ответ к одной из категорий ошибок.
func (a *APIError) Unwrap() error {
	switch {
	case a.Status == http.StatusUnauthorized:
		return e.ErrUnauthorized
	case a.Status == http.StatusForbidden:
		return e.ErrForbidden
	case a.Status == http.StatusNotFound:
		return e.ErrNotFound
	case a.Status >= http.StatusInternalServerError:
		return e.ErrUpstreamServer
	default:
		return e.ErrUpstreamClient
	}
}

// errorBody: тело ошибки API. message бывает строкой или списком строк.
type errorBody struct {
	Message json.RawMessage `json:"message"`
	Error   string          `json:"error"`
}

func parseErrorMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return strings.TrimSpace(string(body))
	}

	var msg string
	if err := json.Unmarshal(eb.Message, &msg); err == nil && msg != "" {
		return msg
	}

	var msgs []string
	if err := json.Unmarshal(eb.Message, &msgs); err == nil && len(msgs) > 0 {
		return strings.Join(msgs, "; ")
	}

	return eb.Error
}

// HTTPStatus: код ответа API.
func (a *APIError) HTTPStatus() int {
	return a.Status
}

// PublicMessage: сообщение API, которое можно показать покупателю.
func (a *APIError) PublicMessage() string {
	return a.Message
}
