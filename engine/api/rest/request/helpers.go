package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/onflow/flow-crowdfund/engine/api/rest/models"
	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

func parseBody(raw io.Reader, dst interface{}) error {
	dec := json.NewDecoder(raw)
	dec.DisallowUnknownFields()

	err := dec.Decode(&dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError

		switch {
		case errors.As(err, &syntaxError):
			err := fmt.Errorf("request body contains badly-formed JSON (at position %d)", syntaxError.Offset)
			return models.NewBadRequestError(err)

		case errors.Is(err, io.ErrUnexpectedEOF):
			err := fmt.Errorf("request body contains badly-formed JSON")
			return models.NewBadRequestError(err)

		case errors.As(err, &unmarshalTypeError):
			err := fmt.Errorf("request body contains an invalid value for the %q field (at position %d)", unmarshalTypeError.Field, unmarshalTypeError.Offset)
			return models.NewBadRequestError(err)

		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			err := fmt.Errorf("request body contains unknown field %s", fieldName)
			return models.NewBadRequestError(err)

		case errors.Is(err, io.EOF):
			err := fmt.Errorf("request body must not be empty")
			return models.NewBadRequestError(err)

		default:
			return err
		}
	}

	if dst == nil {
		return models.NewBadRequestError(fmt.Errorf("request body must not be empty"))
	}

	return nil
}

// ParseID parses a hex encoded identifier.
func ParseID(raw string) (crowdfund.Identifier, error) {
	if raw == "" {
		return crowdfund.ZeroID, fmt.Errorf("invalid ID: must not be empty")
	}
	id, err := crowdfund.HexStringToIdentifier(raw)
	if err != nil {
		return crowdfund.ZeroID, fmt.Errorf("invalid ID format")
	}
	return id, nil
}
