package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/piwi3910/tagcloud/internal/engine"
	"github.com/piwi3910/tagcloud/internal/export"
	"github.com/piwi3910/tagcloud/internal/model"
)

type createSessionRequest struct {
	Center   *model.Point         `json:"center"`
	Settings model.LayoutSettings `json:"settings"`
}

type sessionResponse struct {
	ID       string               `json:"id"`
	Created  time.Time            `json:"created"`
	Center   model.Point          `json:"center"`
	Settings model.LayoutSettings `json:"settings"`
}

type placeRequest struct {
	Label  string `json:"label"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type placeResponse struct {
	Placement model.Placement `json:"placement"`
	Count     int             `json:"count"`
}

type layoutResponse struct {
	ID          string            `json:"id,omitempty"`
	Center      model.Point       `json:"center"`
	Placements  []model.Placement `json:"placements"`
	Skipped     []model.Word      `json:"skipped,omitempty"`
	BoundingBox model.Rectangle   `json:"bounding_box"`
	UsedArea    int               `json:"used_area"`
	Circularity float64           `json:"circularity"`
	FillRatio   float64           `json:"fill_ratio"`
	Stats       *engine.Stats     `json:"stats,omitempty"`
}

type batchRequest struct {
	Center   *model.Point         `json:"center"`
	Settings model.LayoutSettings `json:"settings"`
	Sizes    []model.Size         `json:"sizes"`
	Words    []model.Word         `json:"words"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newLayoutResponse(id string, result model.LayoutResult, stats *engine.Stats) layoutResponse {
	placements := result.Placements
	if placements == nil {
		placements = []model.Placement{}
	}
	return layoutResponse{
		ID:          id,
		Center:      result.Center,
		Placements:  placements,
		Skipped:     result.Skipped,
		BoundingBox: result.BoundingBox(),
		UsedArea:    result.UsedArea(),
		Circularity: result.Circularity(),
		FillRatio:   result.FillRatio(),
		Stats:       stats,
	}
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	req := createSessionRequest{Settings: s.opts.Defaults}
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}
	if req.Center != nil {
		req.Settings.Center = *req.Center
	}
	if err := checkSettings(req.Settings); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	sess := newSession(req.Settings)
	s.addSession(sess)
	s.logger.Debug("session created", "id", sess.id, "center", sess.layouter.Center())

	writeJSON(w, http.StatusCreated, sessionResponse{
		ID:       sess.id,
		Created:  sess.created,
		Center:   sess.layouter.Center(),
		Settings: sess.layouter.Settings(),
	})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	result, stats := sess.snapshot()
	writeJSON(w, http.StatusOK, newLayoutResponse(sess.id, result, &stats))
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.removeSession(id) {
		writeError(w, http.StatusNotFound, fmt.Errorf("layout %q not found", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePlace(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var req placeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	word := model.NewWord(req.Label, req.Width, req.Height)
	p, count, err := sess.place(word)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusCreated, placeResponse{Placement: p, Count: count})
}

func (s *Server) handlePNG(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	result, _ := sess.snapshot()
	if len(result.Placements) == 0 {
		writeError(w, http.StatusConflict, errors.New("layout has no rectangles yet"))
		return
	}

	var buf bytes.Buffer
	if err := export.WritePNG(&buf, result, s.opts.Render); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Error("writing png", "id", sess.id, "err", err)
	}
}

func (s *Server) handleBatchLayout(w http.ResponseWriter, r *http.Request) {
	req := batchRequest{Settings: s.opts.Defaults}
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Center != nil {
		req.Settings.Center = *req.Center
	}
	if err := checkSettings(req.Settings); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	words := req.Words
	for i, size := range req.Sizes {
		words = append(words, model.NewWord(fmt.Sprintf("word-%d", len(req.Words)+i+1), size.Width, size.Height))
	}

	result, err := engine.Layout(words, req.Settings)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, newLayoutResponse("", result, nil))
}

// lookup resolves the {id} URL parameter, writing a 404 when it is unknown.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*session, bool) {
	id := chi.URLParam(r, "id")
	sess, ok := s.session(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("layout %q not found", id))
	}
	return sess, ok
}

// checkSettings rejects client settings whose coordinates or step sizes
// would push layout arithmetic out of int range.
func checkSettings(st model.LayoutSettings) error {
	switch {
	case !st.Center.InRange():
		return fmt.Errorf("center %s is outside ±%d", st.Center, model.MaxCoord)
	case st.DistanceStep > model.MaxSide:
		return fmt.Errorf("distance_step must be at most %d", model.MaxSide)
	case st.MaxRadius > model.MaxCoord:
		return fmt.Errorf("max_radius must be at most %d", model.MaxCoord)
	case st.IndexCellSize > model.MaxSide:
		return fmt.Errorf("index_cell_size must be at most %d", model.MaxSide)
	}
	return nil
}

// statusFor maps layouter and render errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, engine.ErrInvalidSize):
		return http.StatusBadRequest
	case errors.Is(err, engine.ErrSearchExhausted), errors.Is(err, export.ErrImageTooLarge):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
