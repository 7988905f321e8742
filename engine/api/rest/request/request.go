package request

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/onflow/flow-crowdfund/engine/api/rest/middleware"
	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

// Request a convenience wrapper around the http request to make it easy to read path variables,
// query params and the authenticated signer
type Request struct {
	*http.Request
}

// Decorate wraps the http request.
func Decorate(r *http.Request) *Request {
	return &Request{Request: r}
}

// GetVar returns the path variable with the given name.
func (rd *Request) GetVar(name string) string {
	vars := mux.Vars(rd.Request)
	return vars[name]
}

// GetQueryParam returns the query parameter with the given name.
func (rd *Request) GetQueryParam(name string) string {
	return rd.URL.Query().Get(name)
}

// Signer returns the identity that signed the request.
func (rd *Request) Signer() (crowdfund.Identifier, error) {
	signer, ok := middleware.SignerFromContext(rd.Context())
	if !ok {
		return crowdfund.ZeroID, fmt.Errorf("request is not signed")
	}
	return signer, nil
}

// GetID parses the path variable with the given name as an identifier.
func (rd *Request) GetID(name string) (crowdfund.Identifier, error) {
	return ParseID(rd.GetVar(name))
}
