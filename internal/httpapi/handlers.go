package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/weatherpath/network"
)

// RouteResponse answers GET /route.
type RouteResponse struct {
	From          string   `json:"from"`
	To            string   `json:"to"`
	Regime        string   `json:"regime"`
	Reachable     bool     `json:"reachable"`
	Distance      *float64 `json:"distance"`
	Path          []string `json:"path"`
	Intermediates []string `json:"intermediates"`
}

// CenterResponse answers GET /center.
type CenterResponse struct {
	Center       *string  `json:"center"`
	Eccentricity *float64 `json:"eccentricity"`
	Regime       string   `json:"regime"`
	Policy       string   `json:"policy"`
}

// DistancesResponse answers GET /distances/:city.
type DistancesResponse struct {
	From      string             `json:"from"`
	Regime    string             `json:"regime"`
	Distances map[string]float64 `json:"distances"`
}

// MatrixResponse answers GET /matrix; nil cells are unreachable.
type MatrixResponse struct {
	Kind   string       `json:"kind"`
	Regime string       `json:"regime"`
	Cities []string     `json:"cities"`
	Rows   [][]*float64 `json:"rows"`
}

// EdgeRequest is the body of POST /edges.
type EdgeRequest struct {
	From   string   `json:"from" binding:"required"`
	To     string   `json:"to" binding:"required"`
	Normal *float64 `json:"normal" binding:"required"`
	Rain   *float64 `json:"rain" binding:"required"`
	Snow   *float64 `json:"snow" binding:"required"`
	Storm  *float64 `json:"storm" binding:"required"`
}

// RegimeUpdateRequest is the body of PATCH /edges/:from/:to.
type RegimeUpdateRequest struct {
	Regime string   `json:"regime" binding:"required"`
	Weight *float64 `json:"weight" binding:"required"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) cities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cities": s.p.Network().Cities(), "regime": s.p.Active().String()})
}

func (s *Server) route(c *gin.Context) {
	r, err := s.regimeParam(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		s.fail(c, fmt.Errorf("%w: from and to are required", errBadRequest))
		return
	}
	res, err := s.p.RouteIn(r, from, to)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, RouteResponse{
		From:          res.From,
		To:            res.To,
		Regime:        res.Regime.String(),
		Reachable:     res.Reachable,
		Distance:      finite(res.Distance),
		Path:          res.Path,
		Intermediates: res.Intermediates,
	})
}

func (s *Server) center(c *gin.Context) {
	r, err := s.regimeParam(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	res, err := s.p.CenterIn(r)
	if err != nil {
		s.fail(c, err)
		return
	}
	out := CenterResponse{Regime: res.Regime.String(), Policy: res.Policy.String()}
	if res.Found {
		city := res.City
		out.Center = &city
		out.Eccentricity = finite(res.Eccentricity)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) distances(c *gin.Context) {
	r, err := s.regimeParam(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	city := c.Param("city")
	d, err := s.p.DistancesFromIn(r, city)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, DistancesResponse{From: city, Regime: r.String(), Distances: d})
}

func (s *Server) matrix(c *gin.Context) {
	r, err := s.regimeParam(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	kind := c.DefaultQuery("kind", "distance")

	var at func(i, j int) (float64, error)
	switch kind {
	case "distance":
		sol, err := s.p.Solution(r)
		if err != nil {
			s.fail(c, err)
			return
		}
		at = sol.Distances().At
	case "adjacency":
		adj, err := s.p.Network().Adjacency(r)
		if err != nil {
			s.fail(c, err)
			return
		}
		at = adj.At
	default:
		s.fail(c, fmt.Errorf("%w: kind must be distance or adjacency", errBadRequest))
		return
	}

	names := s.p.Network().Cities()
	rows := make([][]*float64, len(names))
	for i := range names {
		rows[i] = make([]*float64, len(names))
		for j := range names {
			v, err := at(i, j)
			if err != nil {
				s.fail(c, err)
				return
			}
			rows[i][j] = finite(v)
		}
	}
	c.JSON(http.StatusOK, MatrixResponse{Kind: kind, Regime: r.String(), Cities: names, Rows: rows})
}

func (s *Server) addEdge(c *gin.Context) {
	var req EdgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	w := network.Weights{Normal: *req.Normal, Rain: *req.Rain, Snow: *req.Snow, Storm: *req.Storm}
	if err := s.p.AddEdge(req.From, req.To, w); err != nil {
		s.fail(c, err)
		return
	}
	s.changed()
	c.JSON(http.StatusCreated, gin.H{"from": req.From, "to": req.To})
}

func (s *Server) updateEdge(c *gin.Context) {
	var req RegimeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	r, err := network.ParseRegime(req.Regime)
	if err != nil {
		s.fail(c, err)
		return
	}
	from, to := c.Param("from"), c.Param("to")
	if err = s.p.UpdateRegime(from, to, r, *req.Weight); err != nil {
		s.fail(c, err)
		return
	}
	s.changed()
	c.JSON(http.StatusOK, gin.H{"from": from, "to": to, "regime": r.String(), "weight": *req.Weight})
}

func (s *Server) removeEdge(c *gin.Context) {
	from, to := c.Param("from"), c.Param("to")
	if err := s.p.RemoveEdge(from, to); err != nil {
		s.fail(c, err)
		return
	}
	s.changed()
	c.Status(http.StatusNoContent)
}
