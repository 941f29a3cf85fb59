package server

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/bokysan/multibase"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// HeaderBase is set on encode and decode responses to the name of the base used
const HeaderBase = "X-Multibase-Base"

// BaseInfo describes one base in the `/bases` listing
type BaseInfo struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Alphabet string `json:"alphabet,omitempty"`
}

// ErrorResponse is returned with every 4xx / 5xx status
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

// Api implements the HTTP endpoints
type Api struct {
	MaxBody int64
}

// Bases lists all registered bases
func (a *Api) Bases(w http.ResponseWriter, r *http.Request) {
	res := make([]BaseInfo, 0)
	for _, b := range multibase.Bases() {
		res = append(res, BaseInfo{
			Code:     string(b.Code()),
			Name:     b.Name(),
			Kind:     b.Kind().String(),
			Alphabet: b.Alphabet(),
		})
	}
	a.writeJSON(w, r, http.StatusOK, res)
}

// Encode takes the raw request body and responds with the multibase string
func (a *Api) Encode(w http.ResponseWriter, r *http.Request) {
	base, err := multibase.Lookup(chi.URLParam(r, "base"))
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	data, err := a.readBody(w, r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set(HeaderBase, base.Name())
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(multibase.Encode(base, data))); err != nil {
		log.WithError(err).Warnf("Could not write the response: %v", err)
	}
}

// Decode takes a multibase string and responds with the raw bytes. A single trailing line ending
// (`\n` or `\r\n`) of the body is ignored, except for the identity base where it is data.
func (a *Api) Decode(w http.ResponseWriter, r *http.Request) {
	data, err := a.readBody(w, r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	base, decoded, err := multibase.Decode(trimLineEnding(string(data)))
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	log.Debugf("Decoded %d bytes of %v", len(decoded), base)

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set(HeaderBase, base.Name())
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(decoded); err != nil {
		log.WithError(err).Warnf("Could not write the response: %v", err)
	}
}

// trimLineEnding removes one trailing `\r\n` or `\n`, unless the input is in the identity base
func trimLineEnding(input string) string {
	if strings.HasPrefix(input, string(multibase.Identity.Code())) {
		return input
	}
	if strings.HasSuffix(input, "\r\n") {
		return input[:len(input)-2]
	}
	return strings.TrimSuffix(input, "\n")
}

// errTooLarge marks bodies over the configured limit
var errTooLarge = errors.New("request body too large")

func (a *Api) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	data, err := ioutil.ReadAll(http.MaxBytesReader(w, r.Body, a.MaxBody))
	if err != nil {
		// MaxBytesReader does not export its error in older go versions
		if strings.Contains(err.Error(), "too large") {
			return nil, errors.Wrapf(errTooLarge, "limit is %d bytes", a.MaxBody)
		}
		return nil, errors.Wrap(err, "Could not read the request")
	}
	return data, nil
}

func (a *Api) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, multibase.ErrUnknownBase), errors.Is(err, multibase.ErrInvalidBaseString):
		status = http.StatusBadRequest
	case errors.Is(err, errTooLarge):
		status = http.StatusRequestEntityTooLarge
	}

	if status >= http.StatusInternalServerError {
		log.WithError(err).Errorf("Request failed: %+v", err)
	} else {
		log.Debugf("Request rejected: %v", err)
	}

	a.writeJSON(w, r, status, &ErrorResponse{
		Error:     err.Error(),
		RequestID: middleware.GetReqID(r.Context()),
	})
}

func (a *Api) writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warnf("Could not write the response to %v: %v", r.RequestURI, err)
	}
}
