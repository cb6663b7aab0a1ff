package http

import (
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"aquaview.xyz/water-quality-service/pkg/chart"
	"aquaview.xyz/water-quality-service/pkg/common"
	"aquaview.xyz/water-quality-service/pkg/dashboard"
	"aquaview.xyz/water-quality-service/pkg/models"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

// ParameterToggle is the render model for one selection button on the graphs
// page.
type ParameterToggle struct {
	Key      models.ParameterKey
	Label    string
	Selected bool
}

// selectionFromQuery reads the selected parameter list. An absent parameter
// means the default selection; a present but empty one means an explicitly
// empty selection. The two must stay distinguishable.
func selectionFromQuery(c *gin.Context) []models.ParameterKey {
	raw, present := c.GetQuery("selected")
	if !present {
		return nil
	}
	return parseSelection(raw)
}

func parseSelection(raw string) []models.ParameterKey {
	parts := common.Filter(strings.Split(raw, ","), func(p string) bool {
		return strings.TrimSpace(p) != ""
	})
	return common.Mapper(parts, func(p string) models.ParameterKey {
		return models.ParameterKey(strings.TrimSpace(p))
	})
}

func selectionQuery(keys []models.ParameterKey) string {
	return strings.Join(common.Mapper(keys, func(k models.ParameterKey) string {
		return string(k)
	}), ",")
}

func graphsLocation(keys []models.ParameterKey) string {
	return "/graphs?selected=" + url.QueryEscape(selectionQuery(keys))
}

func (rs *RestfulServer) GetOverviewPage(c *gin.Context) {
	tiles, err := rs.Dash.Overview.GetTiles()
	if err != nil && !errors.Is(err, dashboard.ErrEmptyDataset) {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.HTML(http.StatusOK, "overview", gin.H{
		"Active": "overview",
		"Empty":  errors.Is(err, dashboard.ErrEmptyDataset),
		"Tiles":  tiles,
		"Info":   rs.Dash.Overview.GetInfoPanel(),
	})
}

func (rs *RestfulServer) GetGraphsPage(c *gin.Context) {
	selection := rs.Dash.Graphs.NormalizeSelection(selectionFromQuery(c))

	data, err := rs.Dash.Graphs.GetChart(selection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	selected := make(map[models.ParameterKey]bool, len(selection))
	for _, key := range selection {
		selected[key] = true
	}
	toggles := common.Mapper(rs.Dash.Registry.Keys(), func(key models.ParameterKey) ParameterToggle {
		desc, _ := rs.Dash.Registry.Get(key)
		return ParameterToggle{Key: key, Label: desc.Label, Selected: selected[key]}
	})

	c.HTML(http.StatusOK, "graphs", gin.H{
		"Active":        "graphs",
		"Toggles":       toggles,
		"SelectedQuery": selectionQuery(selection),
		"SVG":           template.HTML(chart.RenderSVG(data, chart.DefaultConfig())),
		"Empty":         len(data.Dates) == 0,
	})
}

func (rs *RestfulServer) PostGraphsToggle(c *gin.Context) {
	selection := rs.Dash.Graphs.NormalizeSelection(parseSelection(c.PostForm("selected")))
	key := models.ParameterKey(c.PostForm("key"))

	toggled, err := rs.Dash.Graphs.Toggle(selection, key)
	if err != nil {
		// Unknown keys leave the selection as it was.
		c.Redirect(http.StatusSeeOther, graphsLocation(selection))
		return
	}

	c.Redirect(http.StatusSeeOther, graphsLocation(toggled))
}

type ReadingsPageRequest struct {
	Index int `query:"index" json:"index"`
}

var readingsPageRequestSchema = z.Struct(z.Shape{
	"Index": z.Int().Optional(),
})

func (rs *RestfulServer) GetReadingsPage(c *gin.Context) {
	var req ReadingsPageRequest
	if err := readingsPageRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	page, err := rs.Dash.Readings.GetPage(req.Index)
	if err != nil {
		if errors.Is(err, dashboard.ErrEmptyDataset) {
			c.HTML(http.StatusOK, "readings", gin.H{"Active": "readings", "Empty": true})
			return
		}
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.HTML(http.StatusOK, "readings", gin.H{
		"Active": "readings",
		"Empty":  false,
		"Page":   page,
	})
}

func (rs *RestfulServer) GetAPIOverview(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	tiles, err := rs.Dash.Overview.GetTiles()
	if err != nil && !errors.Is(err, dashboard.ErrEmptyDataset) {
		c.JSON(http.StatusInternalServerError, err)
		return
	}
	if tiles == nil {
		tiles = []dashboard.Tile{}
	}

	c.JSON(http.StatusOK, gin.H{
		"empty": errors.Is(err, dashboard.ErrEmptyDataset),
		"tiles": tiles,
		"info":  rs.Dash.Overview.GetInfoPanel(),
	})
}

func (rs *RestfulServer) GetAPIParameters(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	keys := rs.Dash.Registry.Keys()
	descriptors := make(map[models.ParameterKey]models.ParameterDescriptor, len(keys))
	for _, key := range keys {
		desc, _ := rs.Dash.Registry.Get(key)
		descriptors[key] = desc
	}

	c.JSON(http.StatusOK, gin.H{"order": keys, "descriptors": descriptors})
}

func (rs *RestfulServer) GetAPIChart(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	selection := rs.Dash.Graphs.NormalizeSelection(selectionFromQuery(c))

	data, err := rs.Dash.Graphs.GetChart(selection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"selection": selection,
		"chart":     data,
		"svg":       chart.RenderSVG(data, chart.DefaultConfig()),
	})
}

type ToggleRequest struct {
	Selection []string `json:"selection"`
	Key       string   `json:"key"`
}

var toggleRequestSchema = z.Struct(z.Shape{
	"Selection": z.Slice(z.String()).Optional(),
	"Key":       z.String().Required(),
})

func (rs *RestfulServer) PostAPIToggle(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req ToggleRequest
	if err := toggleRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	var keys []models.ParameterKey
	if req.Selection != nil {
		keys = common.Mapper(req.Selection, func(s string) models.ParameterKey {
			return models.ParameterKey(s)
		})
	}

	toggled, err := rs.Dash.Graphs.Toggle(rs.Dash.Graphs.NormalizeSelection(keys), models.ParameterKey(req.Key))
	if err != nil {
		if errors.Is(err, dashboard.ErrUnknownParameter) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"selection": toggled})
}

func (rs *RestfulServer) GetAPIReading(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return
	}

	page, err := rs.Dash.Readings.GetPage(index)
	if err != nil {
		if errors.Is(err, dashboard.ErrEmptyDataset) {
			c.JSON(http.StatusOK, gin.H{"empty": true})
			return
		}
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"empty": false, "reading": page})
}

type LimiterRequest struct {
	Client string  `json:"client"`
	Rate   float64 `json:"rate"`
	Burst  int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"Client": z.String().Optional(),
	"Rate":   z.Float64().Required(),
	"Burst":  z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	client := req.Client
	if client == "" {
		client = c.ClientIP()
	}
	rs.SetLimiter(client, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "readings": len(rs.Dash.Dataset())})
}
