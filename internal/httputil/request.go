package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// BindData decodes the JSON body of the request into data, which must be
// a pointer.
//
// An empty body is reported as ErrRequestBodyEmpty. A value of the wrong
// type is reported as ErrInvalidBody naming the field. All other errors
// are logged and reported as ErrInvalidBody.
func BindData(c *gin.Context, data any) error {
	err := c.ShouldBindJSON(data)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return ErrRequestBodyEmpty
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Errorf("%w: %s must be of type %s, got %s", ErrInvalidBody, typeErr.Field, typeErr.Type, typeErr.Value)
	}

	log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("could not decode request body")
	return ErrInvalidBody
}
