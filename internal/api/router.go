package api

import (
	"github.com/gin-gonic/gin"

	"github.com/losefr9/egyptian-mind-arena-sub001/internal/constants"
)

// NewRouter wires the game handlers under the API prefix.
func NewRouter(handler *GameHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger())

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteGames, handler.ListGames)
		apiRoutes.GET(constants.RouteGameByID, handler.GetGame)
		apiRoutes.GET(constants.RouteGameByKey, handler.GetGameByKey)
		apiRoutes.GET(constants.RouteRegistryStatus, handler.RegistryStatus)
		apiRoutes.GET(constants.RouteVersion, Version)
	}
	return router
}
