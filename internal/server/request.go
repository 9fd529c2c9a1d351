// Package server holds request decoding helpers shared by the handlers.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gorilla/schema"
	"github.com/qolzam/jobly/internal/apierrors"
	"github.com/qolzam/jobly/internal/pkg/log"
	"github.com/qolzam/jobly/internal/validation"
)

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.SetAliasTag("query")
	d.IgnoreUnknownKeys(false)
	return d
}

// DecodeJSON strictly decodes the request body into dst and validates it.
// Unknown fields and trailing data are rejected.
func DecodeJSON(c *fiber.Ctx, dst interface{}) error {
	body := c.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return apierrors.NewBadRequestError("Request body is required")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apierrors.NewBadRequestError(describeJSONError(err))
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return apierrors.NewBadRequestError("Request body must contain a single JSON object")
	}

	return validation.ValidateStruct(dst)
}

func describeJSONError(err error) string {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.As(err, &syntaxErr):
		return fmt.Sprintf("Malformed JSON at position %d", syntaxErr.Offset)
	case errors.As(err, &typeErr):
		return fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type)
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		return "Unknown field " + strings.TrimPrefix(err.Error(), "json: unknown field ")
	default:
		return "Malformed JSON"
	}
}

// DecodeQuery decodes the query string into dst using its `query` tags.
// Unknown keys and unparsable values are rejected with one message each.
// Invalid percent-escapes are kept literally rather than failing the request.
func DecodeQuery(c *fiber.Ctx, dst interface{}) error {
	if err := queryDecoder.Decode(dst, queryValues(c)); err != nil {
		return apierrors.NewBadRequestError(describeQueryError(err)...)
	}
	log.DebugStruct(c.UserContext(), "decoded query", dst)
	return validation.ValidateStruct(dst)
}

func queryValues(c *fiber.Ctx) url.Values {
	values := url.Values{}
	c.Request().URI().QueryArgs().VisitAll(func(key, value []byte) {
		values.Add(string(key), string(value))
	})
	return values
}

func describeQueryError(err error) []string {
	var multi schema.MultiError
	if !errors.As(err, &multi) {
		return []string{err.Error()}
	}

	keys := make([]string, 0, len(multi))
	for key := range multi {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	messages := make([]string, 0, len(keys))
	for _, key := range keys {
		switch multi[key].(type) {
		case schema.UnknownKeyError:
			messages = append(messages, fmt.Sprintf("Unknown query parameter %q", key))
		case schema.ConversionError:
			messages = append(messages, fmt.Sprintf("%s has an invalid value", key))
		default:
			messages = append(messages, fmt.Sprintf("%s: %v", key, multi[key]))
		}
	}
	return messages
}
