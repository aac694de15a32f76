package trackers

import (
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"sfneuman.com/gridnav/experiment/tracker"
	ts "sfneuman.com/gridnav/timestep"
)

// Chart tracks the episodic return in an experiment and saves it as an
// HTML line chart, one point per completed episode. It accumulates
// returns the same way the Return Tracker does, but renders a learning
// curve instead of encoding raw data.
type Chart struct {
	currentReturn  float64
	episodeReturns []float64
	title          string
	filename       string
}

// NewChart creates a Chart Tracker that renders the learning curve
// titled title to the HTML file at filename
func NewChart(title, filename string) tracker.Tracker {
	return &Chart{title: title, filename: filename}
}

// Track accumulates the reward seen on a timestep into the current
// episode's return, caching the return whenever an episode ends
func (c *Chart) Track(step ts.TimeStep) {
	c.currentReturn += step.Reward
	if step.Last() {
		c.episodeReturns = append(c.episodeReturns, c.currentReturn)
		c.currentReturn = 0.0
	}
}

// Save renders the tracked learning curve to disk as an HTML page
func (c *Chart) Save() {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: c.title,
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	episodes := make([]string, len(c.episodeReturns))
	items := make([]opts.LineData, len(c.episodeReturns))
	for i, episodeReturn := range c.episodeReturns {
		episodes[i] = fmt.Sprintf("%d", i+1)
		items[i] = opts.LineData{Value: episodeReturn}
	}

	line.SetXAxis(episodes)
	line.AddSeries("episodic return", items)

	page := components.NewPage()
	page.AddCharts(line)

	file, err := os.Create(c.filename)
	if err != nil {
		log.Fatalf("could not open save file: %v", err)
	}
	defer file.Close()

	if err := page.Render(file); err != nil {
		log.Fatalf("could not render return chart: %v", err)
	}
}
