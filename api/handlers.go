package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/battlesnakeio/arcade/controller"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const defaultFrameLimit = 100

var errRateLimited = errors.New("api: too many requests")

type directionRequest struct {
	Direction string `json:"direction"`
}

type directionResponse struct {
	Accepted bool `json:"accepted"`
}

type resizeRequest struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type speedRequest struct {
	Speed int `json:"speed"`
}

type framesResponse struct {
	Frames []*rules.Snapshot `json:"frames"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, controller.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, rules.ErrInvalidConfiguration),
		errors.Is(err, rules.ErrInvalidDirection):
		return http.StatusBadRequest
	case errors.Is(err, errRateLimited):
		return http.StatusTooManyRequests
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, r *http.Request, code int, err error) {
	entry := log.WithError(err).WithField("path", r.URL.Path).WithField("status", code)
	if code >= http.StatusInternalServerError {
		entry.Error("api request failed")
	} else {
		entry.Debug("api request rejected")
	}
	writeJSON(w, code, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("failed to write response")
	}
}

func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrap(rules.ErrInvalidConfiguration, err.Error())
	}
	return nil
}

func (s *Server) respondSnapshot(w http.ResponseWriter, r *http.Request) {
	frame, err := s.game.Snapshot(r.Context())
	if err != nil {
		writeError(w, r, statusCode(err), err)
		return
	}
	writeJSON(w, http.StatusOK, frame)
}

func (s *Server) getGame(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.respondSnapshot(w, r)
}

func (s *Server) postDirection(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if !s.input.Allow() {
		writeError(w, r, http.StatusTooManyRequests, errRateLimited)
		return
	}
	req := directionRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	d, err := rules.ParseDirection(req.Direction)
	if err != nil {
		writeError(w, r, statusCode(err), err)
		return
	}
	ok, err := s.game.Steer(r.Context(), d)
	if err != nil {
		writeError(w, r, statusCode(err), err)
		return
	}
	writeJSON(w, http.StatusOK, directionResponse{Accepted: ok})
}

func (s *Server) postResize(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := resizeRequest{}
	if err := decode(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	if err := s.game.Resize(r.Context(), req.Width, req.Height); err != nil {
		writeError(w, r, statusCode(err), err)
		return
	}
	s.respondSnapshot(w, r)
}

func (s *Server) postSpeed(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := speedRequest{}
	if err := decode(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	if err := s.game.SetSpeed(r.Context(), req.Speed); err != nil {
		writeError(w, r, statusCode(err), err)
		return
	}
	s.respondSnapshot(w, r)
}

func (s *Server) postReset(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := s.game.Reset(r.Context()); err != nil {
		writeError(w, r, statusCode(err), err)
		return
	}
	s.respondSnapshot(w, r)
}

func (s *Server) getRecord(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	g, err := s.store.GetGame(r.Context(), ps.ByName("id"))
	if err != nil {
		writeError(w, r, statusCode(err), err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func queryInt(r *http.Request, name string, defaults int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return defaults, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrapf(rules.ErrInvalidConfiguration, "%s: %q is not a number", name, v)
	}
	return i, nil
}

func (s *Server) getFrames(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	limit, err := queryInt(r, "limit", defaultFrameLimit)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	frames, err := s.store.ListGameFrames(r.Context(), ps.ByName("id"), limit, offset)
	if err != nil {
		writeError(w, r, statusCode(err), err)
		return
	}
	if frames == nil {
		frames = []*rules.Snapshot{}
	}
	writeJSON(w, http.StatusOK, framesResponse{Frames: frames})
}
