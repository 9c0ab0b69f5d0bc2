package browsers

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"igv/api/contexts"
	"igv/api/models/dtos"
	e "igv/api/models/dtos/errors"
	"igv/api/mvc"

	"github.com/labstack/echo"
)

func CreateBrowser(c echo.Context) error {
	fmt.Printf("[%s] - CreateBrowser hit!\n", time.Now())
	gc := c.(*contexts.IgvContext)

	var req dtos.CreateBrowserRequestDto
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, e.CreateSimpleBadRequest(fmt.Sprintf("invalid browser request : %v", err)))
	}

	session, warnings, err := gc.SessionService.CreateBrowser(c.Request().Context(), req)
	if err != nil {
		return mvc.RespondWithError(c, err)
	}

	state, err := gc.SessionService.BrowserState(session.Id.String())
	if err != nil {
		return mvc.RespondWithError(c, err)
	}

	return c.JSON(http.StatusCreated, dtos.BrowserResponseDto{
		Id:       session.Id.String(),
		ModelId:  session.Browser.GetModelId(),
		GenomeId: session.GenomeId,
		State:    state,
		Warnings: warnings,
	})
}

func GetBrowser(c echo.Context) error {
	fmt.Printf("[%s] - GetBrowser hit!\n", time.Now())
	ss, browserId := mvc.RetrieveSessionElements(c)

	session, err := ss.GetSession(browserId)
	if err != nil {
		return mvc.RespondWithError(c, err)
	}
	state, err := ss.BrowserState(browserId)
	if err != nil {
		return mvc.RespondWithError(c, err)
	}

	return c.JSON(http.StatusOK, dtos.BrowserResponseDto{
		Id:       browserId,
		ModelId:  session.Browser.GetModelId(),
		GenomeId: session.GenomeId,
		State:    state,
		Warnings: []string{},
	})
}

func DeleteBrowser(c echo.Context) error {
	fmt.Printf("[%s] - DeleteBrowser hit!\n", time.Now())
	ss, browserId := mvc.RetrieveSessionElements(c)

	if err := ss.DeleteSession(c.Request().Context(), browserId); err != nil {
		return mvc.RespondWithError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func GetBrowserEmbedState(c echo.Context) error {
	fmt.Printf("[%s] - GetBrowserEmbedState hit!\n", time.Now())
	ss, browserId := mvc.RetrieveSessionElements(c)

	state, err := ss.EmbedState(c.Request().Context(), browserId)
	if err != nil {
		return mvc.RespondWithError(c, err)
	}
	return c.JSON(http.StatusOK, state)
}

func Search(c echo.Context) error {
	fmt.Printf("[%s] - Search hit!\n", time.Now())
	ss, browserId := mvc.RetrieveSessionElements(c)

	if err := ss.Search(browserId, strings.TrimSpace(c.QueryParam("symbol"))); err != nil {
		return mvc.RespondWithError(c, err)
	}
	return c.NoContent(http.StatusAccepted)
}

func DumpJson(c echo.Context) error {
	fmt.Printf("[%s] - DumpJson hit!\n", time.Now())
	ss, browserId := mvc.RetrieveSessionElements(c)

	if err := ss.DumpJson(browserId); err != nil {
		return mvc.RespondWithError(c, err)
	}
	return c.NoContent(http.StatusAccepted)
}

func GetMessages(c echo.Context) error {
	fmt.Printf("[%s] - GetMessages hit!\n", time.Now())
	ss, browserId := mvc.RetrieveSessionElements(c)

	messages, err := ss.DrainMessages(browserId)
	if err != nil {
		return mvc.RespondWithError(c, err)
	}
	return c.JSON(http.StatusOK, dtos.MessagesResponseDto{
		Count:    len(messages),
		Messages: messages,
	})
}

func PostEvent(c echo.Context) error {
	fmt.Printf("[%s] - PostEvent hit!\n", time.Now())
	ss, browserId := mvc.RetrieveSessionElements(c)

	body, err := io.ReadAll(c.Request().Body)
	if err != nil || len(body) == 0 {
		return c.JSON(http.StatusBadRequest, e.CreateSimpleBadRequest("Missing event body"))
	}

	if err := ss.HandleEvent(c.Request().Context(), browserId, body); err != nil {
		return mvc.RespondWithError(c, err)
	}
	return c.NoContent(http.StatusAccepted)
}

func GetLastDump(c echo.Context) error {
	fmt.Printf("[%s] - GetLastDump hit!\n", time.Now())
	ss, browserId := mvc.RetrieveSessionElements(c)

	dump, err := ss.LastDump(c.Request().Context(), browserId)
	if err != nil {
		return mvc.RespondWithError(c, err)
	}
	if dump == nil {
		return c.JSON(http.StatusNotFound, e.CreateSimpleNotFound("No json was returned by the browser yet"))
	}
	return c.JSON(http.StatusOK, dump)
}
