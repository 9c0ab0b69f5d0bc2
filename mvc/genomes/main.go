package genomes

import (
	"fmt"
	"net/http"
	"time"

	"igv/api/contexts"
	"igv/api/mvc"
	genomesService "igv/api/services/genomes"

	"github.com/labstack/echo"
)

func GetGenomes(c echo.Context) error {
	fmt.Printf("[%s] - GetGenomes hit!\n", time.Now())

	ids, err := genomesService.PublicGenomeIds()
	if err != nil {
		return mvc.RespondWithError(c, err)
	}
	return c.JSON(http.StatusOK, ids)
}

// GetGenome returns a freshly instantiated public genome with its tracks
// inlined, as nothing references them yet.
func GetGenome(c echo.Context) error {
	fmt.Printf("[%s] - GetGenome hit!\n", time.Now())
	serializer := c.(*contexts.IgvContext).SessionService.Serializer

	genome, warnings, err := genomesService.NewPublicGenome(c.Param("genomeId"))
	if err != nil {
		return mvc.RespondWithError(c, err)
	}

	state := serializer.State(genome)
	tracks := make([]interface{}, 0, len(genome.Tracks))
	for _, t := range genome.Tracks {
		tracks = append(tracks, serializer.State(t))
	}
	state["tracks"] = tracks

	return c.JSON(http.StatusOK, map[string]interface{}{
		"genome":   state,
		"warnings": warnings,
	})
}
