package httputil

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/mdayat/daily-reflection-backend-service/internal/dtos"
)

var (
	ErrTrailingData = errors.New("request body must contain a single JSON value")
	ErrNullBody     = errors.New("request body must not be null")
)

// DecodeJSON decodes exactly one non-null JSON value from the request body
// into v.
func DecodeJSON(req *http.Request, v interface{}) error {
	decoder := json.NewDecoder(req.Body)

	var raw json.RawMessage
	if err := decoder.Decode(&raw); err != nil {
		return err
	}

	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}

	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return ErrNullBody
	}

	return json.Unmarshal(raw, v)
}

type SendSuccessResponseParams struct {
	StatusCode int
	ResBody    interface{}
}

// SendSuccessResponse encodes ResBody before touching the response, so an
// encoding error leaves the writer free for an error response.
func SendSuccessResponse(res http.ResponseWriter, params SendSuccessResponseParams) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(params.ResBody); err != nil {
		return err
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(params.StatusCode)
	_, err := res.Write(buf.Bytes())
	return err
}

func SendErrorResponse(res http.ResponseWriter, statusCode int, message string) error {
	return SendSuccessResponse(res, SendSuccessResponseParams{
		StatusCode: statusCode,
		ResBody:    dtos.ErrorResponse{Error: message},
	})
}
