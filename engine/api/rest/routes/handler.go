package routes

import (
	"encoding/json"
	stdErrors "errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/onflow/flow-crowdfund/custody"
	"github.com/onflow/flow-crowdfund/custody/errors"
	"github.com/onflow/flow-crowdfund/engine/api/rest/models"
	"github.com/onflow/flow-crowdfund/engine/api/rest/request"
	"github.com/onflow/flow-crowdfund/storage"
)

// ApiHandlerFunc is a function that contains endpoint handling logic,
// it fetches necessary resources and returns an error or response model.
type ApiHandlerFunc func(r *request.Request, backend custody.API) (interface{}, error)

// Handler is custom http handler implementing custom handler function.
// Handler function allows easier handling of errors and responses as it
// wraps functionality for handling error and responses outside of endpoint handling.
type Handler struct {
	logger         zerolog.Logger
	backend        custody.API
	apiHandlerFunc ApiHandlerFunc
}

func NewHandler(logger zerolog.Logger, backend custody.API, handlerFunc ApiHandlerFunc) *Handler {
	return &Handler{
		logger:         logger,
		backend:        backend,
		apiHandlerFunc: handlerFunc,
	}
}

// ServerHTTP function acts as a wrapper to each request providing common handling functionality
// such as logging, error handling, request decorators
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// create a logger
	errLog := h.logger.With().Str("request_url", r.URL.String()).Logger()

	// handle response and errors
	response, err := h.apiHandlerFunc(request.Decorate(r), h.backend)
	if err != nil {
		h.errorHandler(w, err, errLog)
		return
	}

	h.jsonResponse(w, http.StatusOK, response, errLog)
}

func (h *Handler) errorHandler(w http.ResponseWriter, err error, errorLogger zerolog.Logger) {
	// rest status type error should be returned with status and user message provided
	var statusErr models.StatusError
	if stdErrors.As(err, &statusErr) {
		h.errorResponse(w, statusErr.Status(), statusErr.UserMessage(), "", errorLogger)
		return
	}

	// custody rejections carry their code to the client
	if coded, ok := errors.Find(err); ok {
		h.errorResponse(w, statusFromCode(coded.Code()), coded.Error(), coded.Code().Name(), errorLogger)
		return
	}

	if stdErrors.Is(err, storage.ErrNotFound) {
		h.errorResponse(w, http.StatusNotFound, "record not found", "", errorLogger)
		return
	}

	// stop going further - catch all error
	msg := "internal server error"
	errorLogger.Error().Err(err).Msg(msg)
	h.errorResponse(w, http.StatusInternalServerError, msg, "", errorLogger)
}

// statusFromCode maps custody error codes to HTTP statuses.
func statusFromCode(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeUnAuthorized:
		return http.StatusForbidden
	case errors.ErrCodeStaleNonce:
		return http.StatusUnauthorized
	case errors.ErrCodeCampaignNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidArgument, errors.ErrCodeBadMilestone, errors.ErrCodeInvalidMilestone:
		return http.StatusBadRequest
	default:
		return http.StatusConflict
	}
}

// jsonResponse builds a JSON response and send it to the client
func (h *Handler) jsonResponse(w http.ResponseWriter, code int, response interface{}, errLogger zerolog.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")

	// serialize response to JSON and handler errors
	encodedResponse, err := json.MarshalIndent(response, "", "\t")
	if err != nil {
		errLogger.Error().Err(err).Str("response", string(encodedResponse)).Msg("failed to indent response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(code)
	// write response to response stream
	_, err = w.Write(encodedResponse)
	if err != nil {
		errLogger.Error().Err(err).Str("response", string(encodedResponse)).Msg("failed to write http response")
	}
}

// errorResponse sends an HTTP error response to the client with the given return code
// and a model error with the given response message in the response body
func (h *Handler) errorResponse(
	w http.ResponseWriter,
	returnCode int,
	responseMessage string,
	errorCode string,
	logger zerolog.Logger,
) {
	// create error response model
	modelError := models.ModelError{
		Code:      int32(returnCode),
		ErrorCode: errorCode,
		Message:   responseMessage,
	}
	h.jsonResponse(w, returnCode, modelError, logger)
}
